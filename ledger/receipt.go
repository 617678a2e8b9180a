// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"bytes"
	"time"

	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/bitmark-inc/recordd/account"
	"github.com/bitmark-inc/recordd/fault"
	"github.com/bitmark-inc/recordd/storage"
)

// Receipt - outcome of one executed transaction
//
// a failed transaction changes no account but still has a receipt
type Receipt struct {
	ID          uuid.UUID     `msgpack:"id" json:"id"`
	Instruction string        `msgpack:"instruction" json:"instruction"`
	Accounts    []account.Key `msgpack:"accounts" json:"accounts"`
	Error       string        `msgpack:"error" json:"error,omitempty"`
	Timestamp   time.Time     `msgpack:"timestamp" json:"timestamp"`
}

// OK - true if the transaction was applied
func (receipt *Receipt) OK() bool {
	return "" == receipt.Error
}

// ids are version 7 so the receipt pool is in time order
func newReceipt(instruction string, metas []AccountMeta, err error) *Receipt {
	keys := make([]account.Key, 0, len(metas))
	for _, meta := range metas {
		keys = append(keys, meta.Key)
	}

	receipt := &Receipt{
		ID:          uuid.Must(uuid.NewV7()),
		Instruction: instruction,
		Accounts:    keys,
		Timestamp:   time.Now().UTC(),
	}
	if nil != err {
		receipt.Error = err.Error()
	}
	return receipt
}

func (receipt *Receipt) pack() ([]byte, error) {
	buffer := &bytes.Buffer{}
	err := msgpack.NewEncoder(buffer).Encode(receipt)
	if nil != err {
		return nil, err
	}
	return buffer.Bytes(), nil
}

func unpackReceipt(buffer []byte) (*Receipt, error) {
	receipt := &Receipt{}
	err := msgpack.NewDecoder(bytes.NewReader(buffer)).Decode(receipt)
	if nil != err {
		return nil, err
	}
	return receipt, nil
}

// queue a receipt on the current batch
func putReceipt(trx storage.Transaction, receipt *Receipt) error {
	buffer, err := receipt.pack()
	if nil != err {
		return err
	}
	trx.Put(storage.Pool.Receipts, receipt.ID[:], buffer)
	return nil
}

// Receipt - fetch one receipt
func (ledger *Ledger) Receipt(id uuid.UUID) (*Receipt, error) {
	buffer := storage.Pool.Receipts.Get(id[:])
	if nil == buffer {
		return nil, fault.ErrReceiptNotFound
	}
	return unpackReceipt(buffer)
}

// LastReceipt - the most recent receipt
func (ledger *Ledger) LastReceipt() (*Receipt, error) {
	element, found := storage.Pool.Receipts.LastElement()
	if !found {
		return nil, fault.ErrReceiptNotFound
	}
	return unpackReceipt(element.Value)
}

// Receipts - up to count receipts in time order, starting after a
// previous id or from the oldest if start is nil
func (ledger *Ledger) Receipts(start *uuid.UUID, count int) ([]*Receipt, error) {
	if count <= 0 || count > maximumReceiptCount {
		return nil, fault.ErrInvalidCount
	}

	cursor := storage.Pool.Receipts.NewFetchCursor()
	if nil != start {
		cursor.Seek(append(start[:], 0x00))
	}

	elements, err := cursor.Fetch(count)
	if nil != err {
		return nil, err
	}

	receipts := make([]*Receipt, 0, len(elements))
	for _, e := range elements {
		receipt, err := unpackReceipt(e.Value)
		if nil != err {
			return nil, err
		}
		receipts = append(receipts, receipt)
	}
	return receipts, nil
}
