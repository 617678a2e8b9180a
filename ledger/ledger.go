// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - host for the record processor
//
// accounts are kept in the storage Accounts pool as:
//
//   balance (big endian uint64) ++ data
//
// each Execute is one unit of work: all accounts are loaded into
// memory, the instruction is applied, and only if it succeeds and the
// total balance is unchanged are the writable accounts written back in
// a single storage batch together with the receipt
package ledger

import (
	"math/bits"
	"sync"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/recordd/account"
	"github.com/bitmark-inc/recordd/fault"
	"github.com/bitmark-inc/recordd/processor"
	"github.com/bitmark-inc/recordd/storage"
)

const (
	maximumReceiptCount = 100
)

// Ledger - serialised access to the stored accounts
type Ledger struct {
	sync.Mutex
	log *logger.L
}

// Account - the stored state of one account
type Account struct {
	Key     account.Key `json:"key"`
	Balance uint64      `json:"balance"`
	Data    []byte      `json:"data"`
}

// New - create a ledger over the initialised storage
func New() *Ledger {
	return &Ledger{
		log: logger.New("ledger"),
	}
}

// CreateAccount - fund a new account with zeroed data of a given size
func (ledger *Ledger) CreateAccount(key account.Key, balance uint64, space int) error {
	if 0 == balance || space < 0 || space > MaxDataLength {
		return fault.ErrInvalidArgument
	}

	ledger.Lock()
	defer ledger.Unlock()

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}

	if trx.Has(storage.Pool.Accounts, key[:]) {
		trx.Abort()
		return fault.ErrAccountAlreadyExists
	}

	trx.PutNB(storage.Pool.Accounts, key[:], balance, make([]byte, space))

	err = trx.Commit()
	if nil != err {
		ledger.log.Errorf("create: %s  error: %s", key, err)
		return err
	}

	ledger.log.Infof("create: %s  balance: %d  space: %d", key, balance, space)
	return nil
}

// Get - the stored state of an account
func (ledger *Ledger) Get(key account.Key) (*Account, error) {
	balance, data := storage.Pool.Accounts.GetNB(key[:])
	if nil == data {
		return nil, fault.ErrAccountNotFound
	}

	a := &Account{
		Key:     key,
		Balance: balance,
		Data:    make([]byte, len(data)),
	}
	copy(a.Data, data)
	return a, nil
}

// Execute - verify and apply one packed transaction
//
// a receipt is stored and returned even when the instruction fails,
// in which case the error is also returned and no account changes
func (ledger *Ledger) Execute(packed []byte) (*Receipt, error) {
	transaction, err := Packed(packed).Unpack()
	if nil != err {
		return nil, err
	}

	err = transaction.Verify()
	if nil != err {
		return nil, err
	}

	ledger.Lock()
	defer ledger.Unlock()

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return nil, err
	}

	name, err := ledger.apply(trx, transaction)
	if nil != err {
		ledger.log.Debugf("execute: %s  error: %s", name, err)
	}

	receipt := newReceipt(name, transaction.Accounts, err)
	if e := putReceipt(trx, receipt); nil != e {
		trx.Abort()
		return nil, e
	}

	if e := trx.Commit(); nil != e {
		ledger.log.Errorf("execute: %s  commit error: %s", name, e)
		return nil, e
	}

	ledger.log.Infof("execute: %s  receipt: %s  ok: %t", name, receipt.ID, receipt.OK())
	return receipt, err
}

// run the processor on the loaded accounts and queue the changes
//
// nothing is queued on failure
func (ledger *Ledger) apply(trx storage.Transaction, transaction *Transaction) (string, error) {
	entries, handles := loadHandles(trx, transaction.Accounts)

	before, err := totalBalance(entries)
	if nil != err {
		return "", err
	}

	processorHandles := make([]processor.Handle, 0, len(handles))
	for _, h := range handles {
		processorHandles = append(processorHandles, h)
	}

	name := ""
	in, err := processor.Process(transaction.Data, processorHandles)
	if nil != in {
		name = in.Tag().String()
	}
	if nil != err {
		return name, err
	}

	after, err := totalBalance(entries)
	if nil != err {
		return name, err
	}
	if before != after {
		ledger.log.Criticalf("execute: %s  balance before: %d  after: %d", name, before, after)
		return name, fault.ErrUnbalancedTransaction
	}

	for _, e := range entries {
		if !e.writable || !e.dirty {
			continue
		}
		if 0 == e.balance {
			trx.Delete(storage.Pool.Accounts, e.key[:])
			ledger.log.Debugf("reclaim: %s", e.key)
			continue
		}
		trx.PutNB(storage.Pool.Accounts, e.key[:], e.balance, e.data)
	}
	return name, nil
}

func totalBalance(entries []*entry) (uint64, error) {
	total := uint64(0)
	for _, e := range entries {
		sum, carry := bits.Add64(total, e.balance, 0)
		if 0 != carry {
			return 0, fault.ErrOverflow
		}
		total = sum
	}
	return total, nil
}
