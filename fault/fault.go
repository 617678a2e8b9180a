// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type AuthorityError GenericError
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// instruction and record errors - keep in alphabetic order
var (
	ErrAccountAlreadyInitialized = ExistsError("account already initialized")
	ErrIncorrectAuthority        = AuthorityError("incorrect authority")
	ErrInvalidAccountData        = LengthError("invalid account data")
	ErrInvalidArgument           = InvalidError("invalid argument")
	ErrInvalidInstructionData    = InvalidError("invalid instruction data")
	ErrMissingRequiredSignature  = AuthorityError("missing required signature")
	ErrNotEnoughAccountKeys      = InvalidError("not enough account keys")
	ErrOverflow                  = RecordError("overflow")
	ErrReadOutOfBounds           = LengthError("read out of bounds")
	ErrThresholdNotMet           = RecordError("threshold not met")
	ErrUninitializedAccount      = RecordError("uninitialized account")
)

// host errors - keep in alphabetic order
var (
	ErrAccountAlreadyExists         = ExistsError("account already exists")
	ErrAccountNotFound              = NotFoundError("account not found")
	ErrAccountNotWritable           = ProcessError("account not writable")
	ErrAlreadyInitialised           = ExistsError("already initialised")
	ErrCertificateFileAlreadyExists = ExistsError("certificate file already exists")
	ErrCreateNotAllowed             = ProcessError("account creation not allowed")
	ErrDatabaseIsNotSet             = ProcessError("database is not set")
	ErrInvalidConfiguration         = InvalidError("invalid configuration")
	ErrInvalidCount                 = InvalidError("invalid count")
	ErrInvalidCursor                = InvalidError("invalid cursor")
	ErrInvalidDatabaseName          = InvalidError("invalid database name")
	ErrInvalidDataDirectory         = InvalidError("invalid data directory")
	ErrInvalidIPAddress             = InvalidError("invalid IP address")
	ErrInvalidKeyLength             = InvalidError("invalid key length")
	ErrInvalidSignature             = InvalidError("invalid signature")
	ErrInvalidStructPointer         = InvalidError("invalid struct pointer")
	ErrKeyFileAlreadyExists         = ExistsError("key file already exists")
	ErrMissingParameters            = InvalidError("missing parameters")
	ErrNotADirectory                = InvalidError("not a directory")
	ErrNotInitialised               = ProcessError("not initialised")
	ErrNotTransactionPack           = InvalidError("not transaction pack")
	ErrRateLimiting                 = ProcessError("rate limiting")
	ErrReceiptAlreadyExists         = ExistsError("receipt already exists")
	ErrReceiptNotFound              = NotFoundError("receipt not found")
	ErrSignatureCountMismatch       = InvalidError("signature count mismatch")
	ErrStorageAlreadyInUse          = ProcessError("storage batch already in use")
	ErrStorageNotInUse              = ProcessError("storage batch not in use")
	ErrTooManyAccounts              = InvalidError("too many accounts")
	ErrUnbalancedTransaction        = ProcessError("unbalanced transaction")
	ErrWrongDatabaseVersion         = ProcessError("wrong database version")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e AuthorityError) Error() string { return string(e) }
func (e ExistsError) Error() string    { return string(e) }
func (e InvalidError) Error() string   { return string(e) }
func (e LengthError) Error() string    { return string(e) }
func (e NotFoundError) Error() string  { return string(e) }
func (e ProcessError) Error() string   { return string(e) }
func (e RecordError) Error() string    { return string(e) }

// determine the class of an error
func IsErrAuthority(e error) bool { _, ok := e.(AuthorityError); return ok }
func IsErrExists(e error) bool    { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool   { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool    { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool  { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool   { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool    { _, ok := e.(RecordError); return ok }

// table of every instance, used to recover the instance from its text
// after it has crossed a JSON-RPC connection
var byMessage = map[string]error{}

func init() {
	for _, e := range []error{
		ErrAccountAlreadyInitialized,
		ErrIncorrectAuthority,
		ErrInvalidAccountData,
		ErrInvalidArgument,
		ErrInvalidInstructionData,
		ErrMissingRequiredSignature,
		ErrNotEnoughAccountKeys,
		ErrOverflow,
		ErrReadOutOfBounds,
		ErrThresholdNotMet,
		ErrUninitializedAccount,
		ErrAccountAlreadyExists,
		ErrAccountNotFound,
		ErrAccountNotWritable,
		ErrCreateNotAllowed,
		ErrInvalidCount,
		ErrInvalidIPAddress,
		ErrInvalidKeyLength,
		ErrInvalidSignature,
		ErrMissingParameters,
		ErrNotTransactionPack,
		ErrRateLimiting,
		ErrReceiptAlreadyExists,
		ErrReceiptNotFound,
		ErrSignatureCountMismatch,
		ErrTooManyAccounts,
		ErrUnbalancedTransaction,
	} {
		byMessage[e.Error()] = e
	}
}

// FromMessage - map an error text back to its single instance
//
// returns nil if the text does not name a known error
func FromMessage(message string) error {
	return byMessage[message]
}
