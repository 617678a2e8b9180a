// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package processor

import (
	"github.com/bitmark-inc/recordd/account"
)

// Handle - an account supplied by the host for one instruction
//
// the host guarantees serialised access for the duration of the
// instruction; the same account may be supplied in more than one
// position, in which case all handles share the same data and balance
type Handle interface {
	// identity of the account
	Key() account.Key

	// true if the transaction carries a valid signature by Key()
	IsSigner() bool

	// true if the caller declared the account writable
	IsWritable() bool

	// read-only view of the account data
	Data() []byte

	// writable view of the account data
	// fails with fault.ErrAccountNotWritable for read-only handles
	MutableData() ([]byte, error)

	// current balance
	Balance() uint64

	// replace the balance
	// fails with fault.ErrAccountNotWritable for read-only handles
	SetBalance(uint64) error
}
