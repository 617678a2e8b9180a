// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package processor_test

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/recordd/account"
	"github.com/bitmark-inc/recordd/fault"
	"github.com/bitmark-inc/recordd/instruction"
	"github.com/bitmark-inc/recordd/processor"
	"github.com/bitmark-inc/recordd/processor/mocks"
	"github.com/bitmark-inc/recordd/recorddata"
)

// in-memory account shared by one or more handles
type testAccount struct {
	key     account.Key
	data    []byte
	balance uint64
}

// a positional view of a test account
type testHandle struct {
	*testAccount
	signer   bool
	writable bool
}

func (h *testHandle) Key() account.Key { return h.key }
func (h *testHandle) IsSigner() bool   { return h.signer }
func (h *testHandle) IsWritable() bool { return h.writable }
func (h *testHandle) Data() []byte     { return h.data }
func (h *testHandle) Balance() uint64  { return h.balance }

func (h *testHandle) MutableData() ([]byte, error) {
	if !h.writable {
		return nil, fault.ErrAccountNotWritable
	}
	return h.data, nil
}

func (h *testHandle) SetBalance(balance uint64) error {
	if !h.writable {
		return fault.ErrAccountNotWritable
	}
	h.balance = balance
	return nil
}

func makeKey(b byte) account.Key {
	k := account.Key{}
	for i := range k {
		k[i] = b
	}
	return k
}

// source data laid out like a token account: 64 bytes then an amount
func makeSource(amount uint64) *testAccount {
	data := make([]byte, 165)
	binary.LittleEndian.PutUint64(data[64:], amount)
	return &testAccount{key: makeKey(0xee), data: data, balance: 100}
}

func makeRecord() *testAccount {
	return &testAccount{
		key:     makeKey(0x11),
		data:    make([]byte, recorddata.WritableStartIndex+recorddata.ValueSize),
		balance: 1000,
	}
}

func writable(a *testAccount) processor.Handle { return &testHandle{a, false, true} }
func readOnly(a *testAccount) processor.Handle { return &testHandle{a, false, false} }
func signer(a *testAccount) processor.Handle   { return &testHandle{a, true, false} }

func identity(k account.Key) *testAccount {
	return &testAccount{key: k}
}

// create an initialised record with the value 999 from the source
func setupRecord(t *testing.T, authority account.Key) (*testAccount, *testAccount) {
	record := makeRecord()
	source := makeSource(999)

	_, err := processor.Process(instruction.Initialize{}.Pack(), []processor.Handle{
		writable(record),
		readOnly(identity(authority)),
	})
	if nil != err {
		t.Fatalf("initialize error: %s", err)
	}

	_, err = processor.Process(instruction.WriteU64{Offset: 64}.Pack(), []processor.Handle{
		writable(record),
		signer(identity(authority)),
		readOnly(source),
	})
	if nil != err {
		t.Fatalf("write error: %s", err)
	}
	return record, source
}

func storedValue(record *testAccount) uint64 {
	return binary.LittleEndian.Uint64(record.data[recorddata.WritableStartIndex:])
}

func TestInitialize(t *testing.T) {
	authority := makeKey(0xaa)
	record := makeRecord()

	in, err := processor.Process([]byte{0x00}, []processor.Handle{
		writable(record),
		readOnly(identity(authority)),
	})
	assert.Nil(t, err, "initialize error")
	assert.Equal(t, instruction.Initialize{}, in, "wrong instruction")

	header, err := recorddata.Unpack(record.data)
	assert.Nil(t, err, "unpack error")
	assert.True(t, header.IsInitialized(), "not initialized")
	assert.Equal(t, authority, header.Authority, "wrong authority")
	assert.Equal(t, uint8(recorddata.CurrentVersion), header.Version, "wrong version")

	// a second initialise must fail and leave the authority unchanged
	_, err = processor.Process([]byte{0x00}, []processor.Handle{
		writable(record),
		readOnly(identity(makeKey(0xbb))),
	})
	assert.Equal(t, fault.ErrAccountAlreadyInitialized, err, "second initialize")

	header, _ = recorddata.Unpack(record.data)
	assert.Equal(t, authority, header.Authority, "authority changed")
}

func TestInitializeShortData(t *testing.T) {
	record := &testAccount{key: makeKey(0x11), data: make([]byte, recorddata.WritableStartIndex-1)}

	err := processor.Initialize(&processor.InitializeRequest{
		Record:    writable(record),
		Authority: readOnly(identity(makeKey(0xaa))),
	})
	assert.Equal(t, fault.ErrInvalidAccountData, err, "wrong error")
}

func TestInitializeReadOnlyRecord(t *testing.T) {
	record := makeRecord()

	err := processor.Initialize(&processor.InitializeRequest{
		Record:    readOnly(record),
		Authority: readOnly(identity(makeKey(0xaa))),
	})
	assert.Equal(t, fault.ErrAccountNotWritable, err, "wrong error")
	assert.Equal(t, make([]byte, len(record.data)), record.data, "record modified")
}

func TestWriteU64(t *testing.T) {
	authority := makeKey(0xaa)
	record, _ := setupRecord(t, authority)

	expected := make([]byte, 8)
	binary.LittleEndian.PutUint64(expected, 999)
	assert.Equal(t, expected, record.data[recorddata.WritableStartIndex:recorddata.WritableStartIndex+8], "window bytes")
}

func TestWriteU64Uninitialized(t *testing.T) {
	authority := makeKey(0xaa)
	record := makeRecord()

	_, err := processor.Process(instruction.WriteU64{Offset: 64}.Pack(), []processor.Handle{
		writable(record),
		signer(identity(authority)),
		readOnly(makeSource(999)),
	})
	assert.Equal(t, fault.ErrUninitializedAccount, err, "wrong error")
}

func TestWriteU64OutOfBounds(t *testing.T) {
	authority := makeKey(0xaa)
	record, source := setupRecord(t, authority)

	for _, offset := range []uint64{158, 165, math.MaxUint64, math.MaxUint64 - 7} {
		err := processor.WriteU64(&processor.WriteRequest{
			Record:    writable(record),
			Authority: signer(identity(authority)),
			Source:    readOnly(source),
			Offset:    offset,
		})
		assert.Equal(t, fault.ErrReadOutOfBounds, err, "offset: %d", offset)
	}
	assert.Equal(t, uint64(999), storedValue(record), "value changed")

	// last complete 8 bytes
	err := processor.WriteU64(&processor.WriteRequest{
		Record:    writable(record),
		Authority: signer(identity(authority)),
		Source:    readOnly(source),
		Offset:    157,
	})
	assert.Nil(t, err, "offset 157")
	assert.Equal(t, uint64(0), storedValue(record), "value")
}

func TestWriteU64RecordAsOwnSource(t *testing.T) {
	authority := makeKey(0xaa)
	record, _ := setupRecord(t, authority)

	// copy the window onto itself
	err := processor.WriteU64(&processor.WriteRequest{
		Record:    writable(record),
		Authority: signer(identity(authority)),
		Source:    readOnly(record),
		Offset:    recorddata.WritableStartIndex,
	})
	assert.Nil(t, err, "write error")
	assert.Equal(t, uint64(999), storedValue(record), "value")

	// only 7 bytes remain after this offset
	err = processor.WriteU64(&processor.WriteRequest{
		Record:    writable(record),
		Authority: signer(identity(authority)),
		Source:    readOnly(record),
		Offset:    recorddata.WritableStartIndex + 1,
	})
	assert.Equal(t, fault.ErrReadOutOfBounds, err, "overlap error")

	// read the version byte and part of the window
	err = processor.WriteU64(&processor.WriteRequest{
		Record:    writable(record),
		Authority: signer(identity(authority)),
		Source:    readOnly(record),
		Offset:    recorddata.WritableStartIndex - 1,
	})
	assert.Nil(t, err, "write error")
	expected := []byte{0x01, 0xe7, 0x03, 0x00, 0x00, 0x00, 0x00, 0x00}
	assert.Equal(t, expected, record.data[recorddata.WritableStartIndex:], "window bytes")
}

func TestCheckAdd(t *testing.T) {
	authority := makeKey(0xaa)
	record, source := setupRecord(t, authority)

	items := []struct {
		addition uint64
		err      error
	}{
		{0, nil},
		{1, fault.ErrThresholdNotMet},
		{math.MaxUint64, fault.ErrThresholdNotMet},
	}
	for _, item := range items {
		_, err := processor.Process(instruction.CheckAdd{Offset: 64, Addition: item.addition}.Pack(), []processor.Handle{
			readOnly(record),
			signer(identity(authority)),
			readOnly(source),
		})
		assert.Equal(t, item.err, err, "addition: %d", item.addition)
	}

	binary.LittleEndian.PutUint64(source.data[64:], 1999)
	err := processor.CheckAdd(&processor.CheckAddRequest{
		Record:    readOnly(record),
		Authority: signer(identity(authority)),
		Source:    readOnly(source),
		Offset:    64,
		Addition:  1000,
	})
	assert.Nil(t, err, "check add 999+1000 <= 1999")
	assert.Equal(t, uint64(999), storedValue(record), "check add modified record")
}

func TestCheckAddUninitialized(t *testing.T) {
	_, err := processor.Process(instruction.CheckAdd{Offset: 64}.Pack(), []processor.Handle{
		readOnly(makeRecord()),
		signer(identity(makeKey(0xaa))),
		readOnly(makeSource(999)),
	})
	assert.Equal(t, fault.ErrUninitializedAccount, err, "wrong error")
}

func TestAuthorityCheck(t *testing.T) {
	authority := makeKey(0xaa)
	wrong := makeKey(0xbb)
	record, source := setupRecord(t, authority)
	destination := &testAccount{key: makeKey(0xdd)}

	packed := []instruction.Packed{
		instruction.WriteU64{Offset: 64}.Pack(),
		instruction.CheckAdd{Offset: 64}.Pack(),
		instruction.SetAuthority{}.Pack(),
		instruction.CloseAccount{}.Pack(),
	}

	for _, p := range packed {
		third := writable(source)
		if instruction.CloseAccountTag == p.Type() {
			third = writable(destination)
		}

		// wrong identity fails even when signed
		_, err := processor.Process(p, []processor.Handle{
			writable(record),
			signer(identity(wrong)),
			third,
		})
		assert.Equal(t, fault.ErrIncorrectAuthority, err, "%s: wrong identity", p.Type())

		// right identity without signature
		_, err = processor.Process(p, []processor.Handle{
			writable(record),
			readOnly(identity(authority)),
			third,
		})
		assert.Equal(t, fault.ErrMissingRequiredSignature, err, "%s: missing signature", p.Type())
	}

	assert.Equal(t, uint64(1000), record.balance, "record balance changed")
	assert.Equal(t, uint64(0), destination.balance, "destination balance changed")
	assert.Equal(t, uint64(999), storedValue(record), "value changed")
}

func TestSetAuthority(t *testing.T) {
	authority := makeKey(0xaa)
	newAuthority := makeKey(0xbb)
	record, source := setupRecord(t, authority)

	_, err := processor.Process(instruction.SetAuthority{}.Pack(), []processor.Handle{
		writable(record),
		signer(identity(authority)),
		readOnly(identity(newAuthority)),
	})
	assert.Nil(t, err, "set authority error")

	header, _ := recorddata.Unpack(record.data)
	assert.Equal(t, newAuthority, header.Authority, "authority not replaced")
	assert.Equal(t, uint64(999), storedValue(record), "value changed")

	// old authority is no longer accepted
	_, err = processor.Process(instruction.WriteU64{Offset: 64}.Pack(), []processor.Handle{
		writable(record),
		signer(identity(authority)),
		readOnly(source),
	})
	assert.Equal(t, fault.ErrIncorrectAuthority, err, "old authority")

	// new one is
	_, err = processor.Process(instruction.CheckAdd{Offset: 64}.Pack(), []processor.Handle{
		readOnly(record),
		signer(identity(newAuthority)),
		readOnly(source),
	})
	assert.Nil(t, err, "new authority")
}

func TestCloseAccount(t *testing.T) {
	authority := makeKey(0xaa)
	record, source := setupRecord(t, authority)
	destination := &testAccount{key: makeKey(0xdd), balance: 5}

	_, err := processor.Process(instruction.CloseAccount{}.Pack(), []processor.Handle{
		writable(record),
		signer(identity(authority)),
		writable(destination),
	})
	assert.Nil(t, err, "close error")
	assert.Equal(t, uint64(0), record.balance, "record balance")
	assert.Equal(t, uint64(1005), destination.balance, "destination balance")

	// closed record cannot be used again
	_, err = processor.Process(instruction.WriteU64{Offset: 64}.Pack(), []processor.Handle{
		writable(record),
		signer(identity(authority)),
		readOnly(source),
	})
	assert.Equal(t, fault.ErrUninitializedAccount, err, "use after close")
}

func TestCloseAccountOverflow(t *testing.T) {
	authority := makeKey(0xaa)
	record, _ := setupRecord(t, authority)
	destination := &testAccount{key: makeKey(0xdd), balance: math.MaxUint64 - 999}

	err := processor.CloseAccount(&processor.CloseRequest{
		Record:      writable(record),
		Authority:   signer(identity(authority)),
		Destination: writable(destination),
	})
	assert.Equal(t, fault.ErrOverflow, err, "wrong error")
	assert.Equal(t, uint64(1000), record.balance, "record balance")
	assert.Equal(t, uint64(math.MaxUint64-999), destination.balance, "destination balance")

	header, _ := recorddata.Unpack(record.data)
	assert.True(t, header.IsInitialized(), "header cleared on failure")
}

func TestCloseAccountDestinationChecks(t *testing.T) {
	authority := makeKey(0xaa)
	record, _ := setupRecord(t, authority)

	err := processor.CloseAccount(&processor.CloseRequest{
		Record:      writable(record),
		Authority:   signer(identity(authority)),
		Destination: writable(record),
	})
	assert.Equal(t, fault.ErrInvalidArgument, err, "destination is record")

	err = processor.CloseAccount(&processor.CloseRequest{
		Record:      writable(record),
		Authority:   signer(identity(authority)),
		Destination: readOnly(&testAccount{key: makeKey(0xdd)}),
	})
	assert.Equal(t, fault.ErrAccountNotWritable, err, "read-only destination")
	assert.Equal(t, uint64(1000), record.balance, "record balance")
}

func TestProcessArity(t *testing.T) {
	record := makeRecord()

	_, err := processor.Process(instruction.Initialize{}.Pack(), []processor.Handle{writable(record)})
	assert.Equal(t, fault.ErrNotEnoughAccountKeys, err, "one account")

	_, err = processor.Process(instruction.WriteU64{}.Pack(), []processor.Handle{writable(record), nil, nil})
	assert.Equal(t, fault.ErrNotEnoughAccountKeys, err, "nil accounts")

	in, err := processor.Process([]byte{0x09}, nil)
	assert.Equal(t, fault.ErrInvalidInstructionData, err, "bad tag")
	assert.Nil(t, in, "bad tag instruction")
}

// failing authority must not reach any mutating method
func TestNoWriteOnFailure(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	authority := makeKey(0xaa)
	data := make([]byte, recorddata.WritableStartIndex+recorddata.ValueSize)
	header := recorddata.Header{}
	header.Initialise(authority)
	_ = header.Pack(data)

	record := mocks.NewMockHandle(ctl)
	claimed := mocks.NewMockHandle(ctl)
	destination := mocks.NewMockHandle(ctl)

	record.EXPECT().Data().Return(data).AnyTimes()
	claimed.EXPECT().Key().Return(makeKey(0xbb)).AnyTimes()

	// no MutableData, SetBalance or Balance expectations: any call fails the test
	err := processor.CloseAccount(&processor.CloseRequest{
		Record:      record,
		Authority:   claimed,
		Destination: destination,
	})
	assert.Equal(t, fault.ErrIncorrectAuthority, err, "wrong error")
}

// any non-zero version byte marks the record as initialised
func TestOtherVersionIsInitialized(t *testing.T) {
	authority := makeKey(0xaa)
	record := makeRecord()
	copy(record.data, authority[:])
	record.data[32] = 2
	source := makeSource(777)

	_, err := processor.Process(instruction.Initialize{}.Pack(), []processor.Handle{
		writable(record),
		readOnly(identity(makeKey(0xbb))),
	})
	assert.Equal(t, fault.ErrAccountAlreadyInitialized, err, "initialize")

	_, err = processor.Process(instruction.WriteU64{Offset: 64}.Pack(), []processor.Handle{
		writable(record),
		signer(identity(makeKey(0xbb))),
		readOnly(source),
	})
	assert.Equal(t, fault.ErrIncorrectAuthority, err, "write by other key")

	_, err = processor.Process(instruction.WriteU64{Offset: 64}.Pack(), []processor.Handle{
		writable(record),
		signer(identity(authority)),
		readOnly(source),
	})
	assert.Nil(t, err, "write by authority")
	assert.Equal(t, uint64(777), storedValue(record), "stored value")

	_, err = processor.Process(instruction.CheckAdd{Offset: 64, Addition: 0}.Pack(), []processor.Handle{
		readOnly(record),
		signer(identity(authority)),
		readOnly(source),
	})
	assert.Nil(t, err, "check add")

	newAuthority := makeKey(0xcc)
	_, err = processor.Process(instruction.SetAuthority{}.Pack(), []processor.Handle{
		writable(record),
		signer(identity(authority)),
		readOnly(identity(newAuthority)),
	})
	assert.Nil(t, err, "set authority")
	assert.Equal(t, newAuthority[:], record.data[:32], "authority not replaced")
	assert.Equal(t, byte(2), record.data[32], "version changed")

	destination := &testAccount{key: makeKey(0xdd), balance: 5}
	_, err = processor.Process(instruction.CloseAccount{}.Pack(), []processor.Handle{
		writable(record),
		signer(identity(newAuthority)),
		writable(destination),
	})
	assert.Nil(t, err, "close")
	assert.Equal(t, uint64(1005), destination.balance, "destination balance")
	assert.Equal(t, uint64(0), record.balance, "record balance")
}
