// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record_test

import (
	"encoding/binary"
	"os"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/recordd/fault"
	"github.com/bitmark-inc/recordd/fixtures"
	"github.com/bitmark-inc/recordd/ledger"
	"github.com/bitmark-inc/recordd/recorddata"
	"github.com/bitmark-inc/recordd/rpc/mocks"
	"github.com/bitmark-inc/recordd/rpc/record"
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	result := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(result)
}

func setupRecord(t *testing.T, allowCreate bool) (*record.Record, *mocks.MockLedger, *gomock.Controller) {
	ctl := gomock.NewController(t)
	l := mocks.NewMockLedger(ctl)
	return record.New(logger.New(fixtures.LogCategory), l, allowCreate), l, ctl
}

func TestExecute(t *testing.T) {
	r, l, ctl := setupRecord(t, false)
	defer ctl.Finish()

	receipt := &ledger.Receipt{
		ID:          uuid.Must(uuid.NewV7()),
		Instruction: "WriteU64",
	}
	l.EXPECT().Execute([]byte{0x01, 0x02}).Return(receipt, nil).Times(1)

	var reply record.ExecuteReply
	err := r.Execute(&record.ExecuteArguments{Packed: "0102"}, &reply)
	assert.Nil(t, err, "execute error")
	assert.Equal(t, receipt, reply.Receipt, "receipt")
}

func TestExecuteError(t *testing.T) {
	r, l, ctl := setupRecord(t, false)
	defer ctl.Finish()

	receipt := &ledger.Receipt{
		ID:    uuid.Must(uuid.NewV7()),
		Error: fault.ErrIncorrectAuthority.Error(),
	}
	l.EXPECT().Execute(gomock.Any()).Return(receipt, fault.ErrIncorrectAuthority).Times(1)

	var reply record.ExecuteReply
	err := r.Execute(&record.ExecuteArguments{Packed: "00"}, &reply)
	assert.Equal(t, fault.ErrIncorrectAuthority, err, "error not passed through")
	assert.Nil(t, reply.Receipt, "reply set on error")

	err = r.Execute(&record.ExecuteArguments{Packed: "zz"}, &reply)
	assert.Equal(t, fault.ErrNotTransactionPack, err, "bad hex")

	err = r.Execute(&record.ExecuteArguments{}, &reply)
	assert.Equal(t, fault.ErrMissingParameters, err, "empty")
}

func TestGetRecord(t *testing.T) {
	r, l, ctl := setupRecord(t, false)
	defer ctl.Finish()

	key := fixtures.MakeKey(0x11)
	authority := fixtures.Authority.Account()

	data := make([]byte, recorddata.WritableStartIndex+recorddata.ValueSize)
	header := recorddata.Header{}
	header.Initialise(authority)
	_ = header.Pack(data)
	binary.LittleEndian.PutUint64(data[recorddata.WritableStartIndex:], 999)

	l.EXPECT().Get(key).Return(&ledger.Account{Key: key, Balance: 1000, Data: data}, nil).Times(1)

	var reply record.GetReply
	err := r.Get(&record.GetArguments{Key: &key}, &reply)
	assert.Nil(t, err, "get error")
	assert.Equal(t, key, reply.Key, "key")
	assert.Equal(t, uint64(1000), reply.Balance, "balance")
	assert.Equal(t, "initialized", reply.Status, "status")
	assert.Equal(t, authority, *reply.Authority, "authority")
	assert.Equal(t, uint64(999), *reply.Value, "value")
}

func TestGetPlainAccount(t *testing.T) {
	r, l, ctl := setupRecord(t, false)
	defer ctl.Finish()

	key := fixtures.MakeKey(0xdd)
	l.EXPECT().Get(key).Return(&ledger.Account{Key: key, Balance: 5, Data: []byte{}}, nil).Times(1)

	var reply record.GetReply
	err := r.Get(&record.GetArguments{Key: &key}, &reply)
	assert.Nil(t, err, "get error")
	assert.Equal(t, "uninitialized", reply.Status, "status")
	assert.Nil(t, reply.Authority, "authority")
	assert.Nil(t, reply.Value, "value")
	assert.Equal(t, "", reply.Data, "data")

	missing := fixtures.MakeKey(0x22)
	l.EXPECT().Get(missing).Return(nil, fault.ErrAccountNotFound).Times(1)
	err = r.Get(&record.GetArguments{Key: &missing}, &reply)
	assert.Equal(t, fault.ErrAccountNotFound, err, "missing")

	err = r.Get(&record.GetArguments{}, &reply)
	assert.Equal(t, fault.ErrMissingParameters, err, "no key")
}

func TestCreate(t *testing.T) {
	key := fixtures.MakeKey(0x11)

	r, _, ctl := setupRecord(t, false)
	var reply record.CreateReply
	err := r.Create(&record.CreateArguments{Key: &key, Balance: 10, Space: 41}, &reply)
	assert.Equal(t, fault.ErrCreateNotAllowed, err, "create disabled")
	ctl.Finish()

	r, l, ctl := setupRecord(t, true)
	defer ctl.Finish()

	l.EXPECT().CreateAccount(key, uint64(10), 41).Return(nil).Times(1)
	err = r.Create(&record.CreateArguments{Key: &key, Balance: 10, Space: 41}, &reply)
	assert.Nil(t, err, "create error")
	assert.Equal(t, key, reply.Key, "key")

	l.EXPECT().CreateAccount(key, uint64(10), 41).Return(fault.ErrAccountAlreadyExists).Times(1)
	err = r.Create(&record.CreateArguments{Key: &key, Balance: 10, Space: 41}, &reply)
	assert.Equal(t, fault.ErrAccountAlreadyExists, err, "duplicate")
}

func TestReceipts(t *testing.T) {
	r, l, ctl := setupRecord(t, false)
	defer ctl.Finish()

	first := &ledger.Receipt{ID: uuid.Must(uuid.NewV7())}
	second := &ledger.Receipt{ID: uuid.Must(uuid.NewV7())}

	l.EXPECT().Receipts(nil, 2).Return([]*ledger.Receipt{first, second}, nil).Times(1)

	var reply record.ReceiptsReply
	err := r.Receipts(&record.ReceiptsArguments{Count: 2}, &reply)
	assert.Nil(t, err, "receipts error")
	assert.Equal(t, 2, len(reply.Receipts), "count")
	assert.Equal(t, second.ID, *reply.Next, "next")

	err = r.Receipts(&record.ReceiptsArguments{Count: record.MaximumReceiptCount + 1}, &reply)
	assert.Equal(t, fault.ErrInvalidCount, err, "too many")

	l.EXPECT().Receipt(first.ID).Return(first, nil).Times(1)
	var one record.ReceiptReply
	err = r.Receipt(&record.ReceiptArguments{ID: first.ID}, &one)
	assert.Nil(t, err, "receipt error")
	assert.Equal(t, first, one.Receipt, "receipt")
}
