// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package processor - apply one record instruction to a set of accounts
//
// every function validates all of its preconditions before the first
// write, so a returned error never leaves a partial change behind
package processor

import (
	"encoding/binary"
	"math/bits"

	"github.com/bitmark-inc/recordd/account"
	"github.com/bitmark-inc/recordd/fault"
	"github.com/bitmark-inc/recordd/instruction"
	"github.com/bitmark-inc/recordd/recorddata"
)

// Process - decode an instruction, bind the accounts and apply it
//
// the decoded instruction is returned even if applying it fails
func Process(input []byte, handles []Handle) (instruction.Instruction, error) {
	in, err := instruction.Unpack(input)
	if nil != err {
		return nil, err
	}

	request, err := bind(in, handles)
	if nil != err {
		return in, err
	}

	switch r := request.(type) {
	case *InitializeRequest:
		err = Initialize(r)
	case *WriteRequest:
		err = WriteU64(r)
	case *CheckAddRequest:
		err = CheckAdd(r)
	case *SetAuthorityRequest:
		err = SetAuthority(r)
	case *CloseRequest:
		err = CloseAccount(r)
	default:
		err = fault.ErrInvalidInstructionData
	}
	return in, err
}

// Initialize - set the authority of a zeroed record
func Initialize(request *InitializeRequest) error {
	header, err := recorddata.Unpack(request.Record.Data())
	if nil != err {
		return err
	}
	if header.IsInitialized() {
		return fault.ErrAccountAlreadyInitialized
	}

	data, err := mutableData(request.Record)
	if nil != err {
		return err
	}

	header.Initialise(request.Authority.Key())
	return header.Pack(data)
}

// WriteU64 - copy 8 bytes from the source account into the record
func WriteU64(request *WriteRequest) error {
	header, err := initialisedHeader(request.Record)
	if nil != err {
		return err
	}
	if err := checkAuthority(request.Authority, header.Authority); nil != err {
		return err
	}
	if !recorddata.HasValue(request.Record.Data()) {
		return fault.ErrInvalidAccountData
	}

	// copied out before the record is touched, source may be the record
	value, err := readSource(request.Source, request.Offset)
	if nil != err {
		return err
	}

	data, err := mutableData(request.Record)
	if nil != err {
		return err
	}
	return recorddata.PutValue(data, value)
}

// CheckAdd - succeed only if source value >= record value + addition
//
// nothing is written
func CheckAdd(request *CheckAddRequest) error {
	header, err := initialisedHeader(request.Record)
	if nil != err {
		return err
	}
	if err := checkAuthority(request.Authority, header.Authority); nil != err {
		return err
	}

	oldValue, err := recorddata.Value(request.Record.Data())
	if nil != err {
		return err
	}

	raw, err := readSource(request.Source, request.Offset)
	if nil != err {
		return err
	}
	newValue := binary.LittleEndian.Uint64(raw[:])

	// a carry means the threshold is beyond any 64 bit value
	threshold, carry := bits.Add64(oldValue, request.Addition, 0)
	if 0 != carry || newValue < threshold {
		return fault.ErrThresholdNotMet
	}
	return nil
}

// SetAuthority - replace the record authority
//
// the new authority is not checked, it may equal the current one
func SetAuthority(request *SetAuthorityRequest) error {
	header, err := initialisedHeader(request.Record)
	if nil != err {
		return err
	}
	if err := checkAuthority(request.Authority, header.Authority); nil != err {
		return err
	}

	data, err := mutableData(request.Record)
	if nil != err {
		return err
	}

	header.Authority = request.NewAuthority.Key()
	return header.Pack(data)
}

// CloseAccount - move the whole record balance to the destination
//
// the record header is cleared so nothing in the same transaction can
// use the record after it is closed
func CloseAccount(request *CloseRequest) error {
	header, err := initialisedHeader(request.Record)
	if nil != err {
		return err
	}
	if err := checkAuthority(request.Authority, header.Authority); nil != err {
		return err
	}

	if request.Destination.Key() == request.Record.Key() {
		return fault.ErrInvalidArgument
	}
	if !request.Destination.IsWritable() {
		return fault.ErrAccountNotWritable
	}

	total, carry := bits.Add64(request.Destination.Balance(), request.Record.Balance(), 0)
	if 0 != carry {
		return fault.ErrOverflow
	}

	data, err := mutableData(request.Record)
	if nil != err {
		return err
	}

	header.Clear()
	if err := header.Pack(data); nil != err {
		return err
	}
	if err := request.Record.SetBalance(0); nil != err {
		return err
	}
	return request.Destination.SetBalance(total)
}

// fetch the header of a record that must already be initialised
func initialisedHeader(record Handle) (*recorddata.Header, error) {
	header, err := recorddata.Unpack(record.Data())
	if nil != err {
		return nil, err
	}
	if !header.IsInitialized() {
		return nil, fault.ErrUninitializedAccount
	}
	return header, nil
}

// identity first, then signature
func checkAuthority(authority Handle, expected account.Key) error {
	if authority.Key() != expected {
		return fault.ErrIncorrectAuthority
	}
	if !authority.IsSigner() {
		return fault.ErrMissingRequiredSignature
	}
	return nil
}

// read the 8 bytes at offset in the source data
func readSource(source Handle, offset uint64) ([recorddata.ValueSize]byte, error) {
	value := [recorddata.ValueSize]byte{}
	data := source.Data()
	length := uint64(len(data))
	if length < recorddata.ValueSize || offset > length-recorddata.ValueSize {
		return value, fault.ErrReadOutOfBounds
	}
	copy(value[:], data[offset:offset+recorddata.ValueSize])
	return value, nil
}

// a read-only handle is never written, even if its host would allow it
func mutableData(h Handle) ([]byte, error) {
	if !h.IsWritable() {
		return nil, fault.ErrAccountNotWritable
	}
	return h.MutableData()
}
