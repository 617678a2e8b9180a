// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"crypto/rand"
	"encoding/hex"

	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/recordd/fault"
)

// SeedSize - bytes in a private key seed
const SeedSize = ed25519.SeedSize

// PrivateKey - an ed25519 signing key
type PrivateKey struct {
	key ed25519.PrivateKey
}

// NewPrivateKey - create a new random private key
func NewPrivateKey() (*PrivateKey, error) {
	_, privateKey, err := ed25519.GenerateKey(rand.Reader)
	if nil != err {
		return nil, err
	}
	return &PrivateKey{key: privateKey}, nil
}

// PrivateKeyFromSeed - deterministic private key from a 32 byte seed
func PrivateKeyFromSeed(seed []byte) (*PrivateKey, error) {
	if SeedSize != len(seed) {
		return nil, fault.ErrInvalidKeyLength
	}
	return &PrivateKey{key: ed25519.NewKeyFromSeed(seed)}, nil
}

// PrivateKeyFromHex - decode a hex seed
func PrivateKeyFromHex(s string) (*PrivateKey, error) {
	seed, err := hex.DecodeString(s)
	if nil != err {
		return nil, fault.ErrInvalidKeyLength
	}
	return PrivateKeyFromSeed(seed)
}

// Account - the public identity for this private key
func (privateKey *PrivateKey) Account() Key {
	key := Key{}
	copy(key[:], privateKey.key.Public().(ed25519.PublicKey))
	return key
}

// Seed - the 32 byte seed this key was derived from
func (privateKey *PrivateKey) Seed() []byte {
	return privateKey.key.Seed()
}

// Sign - sign a message
func (privateKey *PrivateKey) Sign(message []byte) Signature {
	return ed25519.Sign(privateKey.key, message)
}

// String - hex seed, so only print this deliberately
func (privateKey *PrivateKey) String() string {
	return hex.EncodeToString(privateKey.Seed())
}
