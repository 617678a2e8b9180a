// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/bitmark-inc/recordd/account"
	"github.com/bitmark-inc/recordd/fault"
)

// limits
const (
	MaxAccounts   = 16
	MaxDataLength = 1024
)

// account flags
const (
	signerFlag   = 0x01
	writableFlag = 0x02
	allFlags     = signerFlag | writableFlag
)

// AccountMeta - one positional account of a transaction
type AccountMeta struct {
	Key        account.Key `json:"key"`
	IsSigner   bool        `json:"signer"`
	IsWritable bool        `json:"writable"`
}

// Transaction - an instruction, the accounts it runs on and the
// signatures of its signer accounts
//
// signatures are in the order of the signer accounts
type Transaction struct {
	Accounts   []AccountMeta       `json:"accounts"`
	Data       []byte              `json:"data"`
	Signatures []account.Signature `json:"signatures"`
}

// Packed - packed transaction bytes
type Packed []byte

// Message - the signed part of the transaction
//
//   uvarint(n) ++ n × (key ++ flags) ++ uvarint(len) ++ data
func (transaction *Transaction) Message() ([]byte, error) {
	if len(transaction.Accounts) > MaxAccounts {
		return nil, fault.ErrTooManyAccounts
	}
	if len(transaction.Data) > MaxDataLength {
		return nil, fault.ErrInvalidInstructionData
	}

	size := binary.MaxVarintLen64*2 + len(transaction.Accounts)*(account.KeySize+1) + len(transaction.Data)
	buffer := make([]byte, 0, size)

	buffer = appendUvarint(buffer, uint64(len(transaction.Accounts)))
	for _, meta := range transaction.Accounts {
		flags := byte(0)
		if meta.IsSigner {
			flags |= signerFlag
		}
		if meta.IsWritable {
			flags |= writableFlag
		}
		buffer = append(buffer, meta.Key[:]...)
		buffer = append(buffer, flags)
	}

	buffer = appendUvarint(buffer, uint64(len(transaction.Data)))
	buffer = append(buffer, transaction.Data...)

	return buffer, nil
}

// Pack - message ++ uvarint(s) ++ s × signature
func (transaction *Transaction) Pack() (Packed, error) {
	buffer, err := transaction.Message()
	if nil != err {
		return nil, err
	}

	buffer = appendUvarint(buffer, uint64(len(transaction.Signatures)))
	for _, signature := range transaction.Signatures {
		if account.SignatureSize != len(signature) {
			return nil, fault.ErrInvalidSignature
		}
		buffer = append(buffer, signature...)
	}
	return buffer, nil
}

// Sign - replace the signatures with ones made by the given keys
//
// every signer account must have a matching private key
func (transaction *Transaction) Sign(keys ...*account.PrivateKey) error {
	message, err := transaction.Message()
	if nil != err {
		return err
	}

	signatures := make([]account.Signature, 0, len(keys))
signers:
	for _, meta := range transaction.Accounts {
		if !meta.IsSigner {
			continue signers
		}
		for _, key := range keys {
			if key.Account() == meta.Key {
				signatures = append(signatures, key.Sign(message))
				continue signers
			}
		}
		return fault.ErrMissingParameters
	}

	transaction.Signatures = signatures
	return nil
}

// Verify - check there is one valid signature per signer account
func (transaction *Transaction) Verify() error {
	message, err := transaction.Message()
	if nil != err {
		return err
	}

	signers := make([]account.Key, 0, len(transaction.Accounts))
	for _, meta := range transaction.Accounts {
		if meta.IsSigner {
			signers = append(signers, meta.Key)
		}
	}

	if len(signers) != len(transaction.Signatures) {
		return fault.ErrSignatureCountMismatch
	}

	for i, key := range signers {
		err := key.CheckSignature(message, transaction.Signatures[i])
		if nil != err {
			return err
		}
	}
	return nil
}

// Unpack - turn a byte slice into a transaction
//
// the whole buffer must be consumed
func (packed Packed) Unpack() (*Transaction, error) {
	n := 0

	count, l := binary.Uvarint(packed[n:])
	if l <= 0 {
		return nil, fault.ErrNotTransactionPack
	}
	n += l
	if count > MaxAccounts {
		return nil, fault.ErrTooManyAccounts
	}

	transaction := &Transaction{
		Accounts: make([]AccountMeta, 0, count),
	}

	for i := uint64(0); i < count; i += 1 {
		if len(packed)-n < account.KeySize+1 {
			return nil, fault.ErrNotTransactionPack
		}
		meta := AccountMeta{}
		copy(meta.Key[:], packed[n:n+account.KeySize])
		n += account.KeySize

		flags := packed[n]
		n += 1
		if 0 != flags&^allFlags {
			return nil, fault.ErrNotTransactionPack
		}
		meta.IsSigner = 0 != flags&signerFlag
		meta.IsWritable = 0 != flags&writableFlag

		transaction.Accounts = append(transaction.Accounts, meta)
	}

	dataLength, l := binary.Uvarint(packed[n:])
	if l <= 0 {
		return nil, fault.ErrNotTransactionPack
	}
	n += l
	if dataLength > MaxDataLength {
		return nil, fault.ErrInvalidInstructionData
	}
	if uint64(len(packed)-n) < dataLength {
		return nil, fault.ErrNotTransactionPack
	}
	transaction.Data = make([]byte, dataLength)
	copy(transaction.Data, packed[n:])
	n += int(dataLength)

	signatureCount, l := binary.Uvarint(packed[n:])
	if l <= 0 {
		return nil, fault.ErrNotTransactionPack
	}
	n += l
	if signatureCount > MaxAccounts {
		return nil, fault.ErrSignatureCountMismatch
	}

	transaction.Signatures = make([]account.Signature, 0, signatureCount)
	for i := uint64(0); i < signatureCount; i += 1 {
		if len(packed)-n < account.SignatureSize {
			return nil, fault.ErrNotTransactionPack
		}
		signature := make(account.Signature, account.SignatureSize)
		copy(signature, packed[n:])
		n += account.SignatureSize
		transaction.Signatures = append(transaction.Signatures, signature)
	}

	if n != len(packed) {
		return nil, fault.ErrNotTransactionPack
	}
	return transaction, nil
}

// String - hex form used by the RPC
func (packed Packed) String() string {
	return hex.EncodeToString(packed)
}

func appendUvarint(buffer []byte, value uint64) []byte {
	b := make([]byte, binary.MaxVarintLen64)
	l := binary.PutUvarint(b, value)
	return append(buffer, b[:l]...)
}
