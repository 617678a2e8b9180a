// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"strings"

	"github.com/bitmark-inc/recordd/account"
)

// decode a public key from base58, or derive it from a hex seed
func parseKey(s string) (account.Key, error) {
	s = strings.TrimSpace(s)
	if "" == s {
		return account.Key{}, ErrMissingAccount
	}

	key, err := account.KeyFromBase58(s)
	if nil == err {
		return key, nil
	}

	privateKey, err := account.PrivateKeyFromHex(s)
	if nil == err {
		return privateKey.Account(), nil
	}
	return account.Key{}, ErrInvalidKey
}

// decode a hex seed
func parsePrivateKey(s string) (*account.PrivateKey, error) {
	s = strings.TrimSpace(s)
	if "" == s {
		return nil, ErrMissingSeed
	}
	return account.PrivateKeyFromHex(s)
}
