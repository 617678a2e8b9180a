// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/recordd/account"
	"github.com/bitmark-inc/recordd/fault"
	"github.com/bitmark-inc/recordd/storage"
)

// the in-memory copy of one account for the current unit of work
//
// every position naming the same key shares one entry
type entry struct {
	key      account.Key
	balance  uint64
	data     []byte
	writable bool
	dirty    bool
}

// a positional view of an entry with the flags of that position
type handle struct {
	*entry
	signer   bool
	writable bool
}

// load each distinct key once and make one handle per position
func loadHandles(trx storage.Transaction, metas []AccountMeta) ([]*entry, []*handle) {
	byKey := make(map[account.Key]*entry, len(metas))
	entries := make([]*entry, 0, len(metas))
	handles := make([]*handle, 0, len(metas))

	for _, meta := range metas {
		e, ok := byKey[meta.Key]
		if !ok {
			balance, data := trx.GetNB(storage.Pool.Accounts, meta.Key[:])
			e = &entry{
				key:     meta.Key,
				balance: balance,
				data:    make([]byte, len(data)),
			}
			copy(e.data, data)
			byKey[meta.Key] = e
			entries = append(entries, e)
		}
		if meta.IsWritable {
			e.writable = true
		}
		handles = append(handles, &handle{
			entry:    e,
			signer:   meta.IsSigner,
			writable: meta.IsWritable,
		})
	}
	return entries, handles
}

func (h *handle) Key() account.Key {
	return h.key
}

func (h *handle) IsSigner() bool {
	return h.signer
}

func (h *handle) IsWritable() bool {
	return h.writable
}

func (h *handle) Data() []byte {
	return h.data
}

func (h *handle) MutableData() ([]byte, error) {
	if !h.writable {
		return nil, fault.ErrAccountNotWritable
	}
	h.dirty = true
	return h.data, nil
}

func (h *handle) Balance() uint64 {
	return h.balance
}

func (h *handle) SetBalance(balance uint64) error {
	if !h.writable {
		return fault.ErrAccountNotWritable
	}
	h.dirty = true
	h.balance = balance
	return nil
}
