// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/bitmark-inc/recordd/account"
	"github.com/bitmark-inc/recordd/fault"
	"github.com/bitmark-inc/recordd/storage"
)

// SnapshotVersion - current snapshot format
const SnapshotVersion = 1

// Snapshot - every stored account and receipt
type Snapshot struct {
	Version  int               `msgpack:"v"`
	Accounts []SnapshotAccount `msgpack:"a"`
	Receipts []*Receipt        `msgpack:"r"`
}

// SnapshotAccount - one account of a snapshot
type SnapshotAccount struct {
	Key     []byte `msgpack:"k"`
	Balance uint64 `msgpack:"b"`
	Data    []byte `msgpack:"d"`
}

// Export - write a msgpack snapshot of the committed state
func (ledger *Ledger) Export(w io.Writer) error {
	ledger.Lock()
	defer ledger.Unlock()

	snapshot := Snapshot{
		Version:  SnapshotVersion,
		Accounts: []SnapshotAccount{},
		Receipts: []*Receipt{},
	}

	err := storage.Pool.Accounts.NewFetchCursor().Map(func(key []byte, value []byte) error {
		if account.KeySize != len(key) || len(value) < 8 {
			return fault.ErrInvalidAccountData
		}
		snapshot.Accounts = append(snapshot.Accounts, SnapshotAccount{
			Key:     key,
			Balance: binary.BigEndian.Uint64(value[:8]),
			Data:    value[8:],
		})
		return nil
	})
	if nil != err {
		return err
	}

	err = storage.Pool.Receipts.NewFetchCursor().Map(func(key []byte, value []byte) error {
		receipt, err := unpackReceipt(value)
		if nil != err {
			return err
		}
		snapshot.Receipts = append(snapshot.Receipts, receipt)
		return nil
	})
	if nil != err {
		return err
	}

	ledger.log.Infof("export: accounts: %d  receipts: %d", len(snapshot.Accounts), len(snapshot.Receipts))
	return msgpack.NewEncoder(w).Encode(&snapshot)
}

// Import - add the contents of a snapshot in a single batch
//
// existing accounts with the same key are replaced, a receipt id that
// is already stored must hold the same receipt
func (ledger *Ledger) Import(r io.Reader) error {
	snapshot := Snapshot{}
	err := msgpack.NewDecoder(r).Decode(&snapshot)
	if nil != err {
		return err
	}
	if SnapshotVersion != snapshot.Version {
		return fault.ErrWrongDatabaseVersion
	}

	ledger.Lock()
	defer ledger.Unlock()

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}

	for _, a := range snapshot.Accounts {
		if account.KeySize != len(a.Key) {
			trx.Abort()
			return fault.ErrInvalidKeyLength
		}
		if 0 == a.Balance {
			trx.Abort()
			return fault.ErrInvalidArgument
		}
		trx.PutNB(storage.Pool.Accounts, a.Key, a.Balance, a.Data)
	}

	for _, receipt := range snapshot.Receipts {
		if nil == receipt {
			trx.Abort()
			return fault.ErrInvalidArgument
		}
		buffer, err := receipt.pack()
		if nil != err {
			trx.Abort()
			return err
		}

		// receipts never change, the same one may be imported again
		existing := trx.Get(storage.Pool.Receipts, receipt.ID[:])
		if nil != existing {
			if !bytes.Equal(existing, buffer) {
				trx.Abort()
				return fault.ErrReceiptAlreadyExists
			}
			continue
		}
		trx.Put(storage.Pool.Receipts, receipt.ID[:], buffer)
	}

	err = trx.Commit()
	if nil != err {
		return err
	}

	ledger.log.Infof("import: accounts: %d  receipts: %d", len(snapshot.Accounts), len(snapshot.Receipts))
	return nil
}
