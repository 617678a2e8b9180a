// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/recordd/fault"
)

// KeySize - bytes in an account identity
const KeySize = ed25519.PublicKeySize

// Key - the identity of an account: an ed25519 public key
//
// used both as the storage key of an account and as the authority
// value held in a record header
type Key [KeySize]byte

// KeyFromBytes - copy an exact length byte slice to a key
func KeyFromBytes(buffer []byte) (Key, error) {
	key := Key{}
	if KeySize != len(buffer) {
		return key, fault.ErrInvalidKeyLength
	}
	copy(key[:], buffer)
	return key, nil
}

// KeyFromBase58 - decode the text form of a key
func KeyFromBase58(s string) (Key, error) {
	buffer, err := base58.Decode(s)
	if nil != err {
		return Key{}, fault.ErrInvalidKeyLength
	}
	return KeyFromBytes(buffer)
}

// Bytes - key as a byte slice
func (key Key) Bytes() []byte {
	return key[:]
}

// IsZero - true if all bytes are zero
func (key Key) IsZero() bool {
	return key == Key{}
}

// Equal - compare two keys
func (key Key) Equal(other Key) bool {
	return bytes.Equal(key[:], other[:])
}

// String - base58 text form for use by the fmt package (for %s)
func (key Key) String() string {
	return base58.Encode(key[:])
}

// GoString - for use by the fmt package (for %#v)
func (key Key) GoString() string {
	return "<account:" + key.String() + ">"
}

// MarshalText - convert a key to its base58 JSON form
func (key Key) MarshalText() ([]byte, error) {
	return []byte(key.String()), nil
}

// UnmarshalText - convert base58 text into a key
func (key *Key) UnmarshalText(s []byte) error {
	k, err := KeyFromBase58(string(s))
	if nil != err {
		return err
	}
	*key = k
	return nil
}

// CheckSignature - verify an ed25519 signature of a message by this key
func (key Key) CheckSignature(message []byte, signature Signature) error {
	if ed25519.SignatureSize != len(signature) {
		return fault.ErrInvalidSignature
	}
	if !ed25519.Verify(ed25519.PublicKey(key[:]), message, signature) {
		return fault.ErrInvalidSignature
	}
	return nil
}
