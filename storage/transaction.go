// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

// Transaction - one batch of pool writes
//
// reads see the writes already queued on the batch
type Transaction interface {
	Abort()
	Commit() error
	Delete(*PoolHandle, []byte)
	Get(*PoolHandle, []byte) []byte
	GetNB(*PoolHandle, []byte) (uint64, []byte)
	Has(*PoolHandle, []byte) bool
	Put(*PoolHandle, []byte, []byte)
	PutNB(*PoolHandle, []byte, uint64, []byte)
}

// TransactionData - a transaction over the shared database access
type TransactionData struct {
	access Access
}

func newTransaction(access Access) Transaction {
	return &TransactionData{
		access: access,
	}
}

// Abort - discard everything queued
func (t *TransactionData) Abort() {
	t.access.Abort()
}

// Commit - write everything queued atomically
func (t *TransactionData) Commit() error {
	return t.access.Commit()
}

func (t *TransactionData) Delete(p *PoolHandle, key []byte) {
	p.remove(key)
}

func (t *TransactionData) Get(p *PoolHandle, key []byte) []byte {
	return p.Get(key)
}

func (t *TransactionData) GetNB(p *PoolHandle, key []byte) (uint64, []byte) {
	return p.GetNB(key)
}

func (t *TransactionData) Has(p *PoolHandle, key []byte) bool {
	return p.Has(key)
}

func (t *TransactionData) Put(p *PoolHandle, key []byte, value []byte) {
	p.put(key, value)
}

func (t *TransactionData) PutNB(p *PoolHandle, key []byte, n uint64, data []byte) {
	p.putNB(key, n, data)
}
