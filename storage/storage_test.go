// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/recordd/fault"
	"github.com/bitmark-inc/recordd/fixtures"
	"github.com/bitmark-inc/recordd/storage"
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	result := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(result)
}

// configure for testing
func setup(t *testing.T) {
	_ = os.RemoveAll(fixtures.DatabaseName)
	err := storage.Initialise(fixtures.DatabaseName, storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
}

// post test cleanup
func teardown() {
	storage.Finalise()
	_ = os.RemoveAll(fixtures.DatabaseName)
}

// write some elements in one transaction
func putElements(t *testing.T, pool *storage.PoolHandle, elements []storage.Element) {
	trx, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("transaction error: %s", err)
	}
	for _, e := range elements {
		trx.Put(pool, e.Key, e.Value)
	}
	err = trx.Commit()
	if nil != err {
		t.Fatalf("commit error: %s", err)
	}
}

// a string data item
type stringElement struct {
	key   string
	value string
}

// make an element array
func makeElements(input []stringElement) []storage.Element {
	output := make([]storage.Element, 0, len(input))
	for _, e := range input {
		output = append(output, storage.Element{
			Key:   []byte(e.key),
			Value: []byte(e.value),
		})
	}
	return output
}

// this is the expected order
var expectedElements = makeElements([]stringElement{
	{"key-five", "data-five"},
	{"key-four", "data-four"},
	{"key-one", "data-one"},
	{"key-seven", "data-seven"},
	{"key-six", "data-six"},
	{"key-three", "data-three"},
	{"key-two", "data-two"},
})

func TestInitialiseTwice(t *testing.T) {
	setup(t)
	defer teardown()

	err := storage.Initialise(fixtures.DatabaseName, storage.ReadWrite)
	assert.Equal(t, fault.ErrAlreadyInitialised, err, "second initialise")
}

func TestNotInitialised(t *testing.T) {
	_, err := storage.NewDBTransaction()
	assert.Equal(t, fault.ErrDatabaseIsNotSet, err, "transaction without database")
}

func TestReopenReadOnly(t *testing.T) {
	setup(t)
	putElements(t, storage.Pool.Accounts, expectedElements[:1])
	storage.Finalise()

	err := storage.Initialise(fixtures.DatabaseName, storage.ReadOnly)
	assert.Nil(t, err, "read-only open")
	defer teardown()

	assert.Equal(t, expectedElements[0].Value, storage.Pool.Accounts.Get(expectedElements[0].Key), "value after reopen")
}

func TestWrongVersion(t *testing.T) {
	_ = os.RemoveAll(fixtures.DatabaseName)
	db, err := leveldb.OpenFile(fixtures.DatabaseName, nil)
	if nil != err {
		t.Fatalf("open error: %s", err)
	}
	_ = db.Put([]byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}, []byte{0x00, 0x00, 0xff, 0xff}, nil)
	_ = db.Close()
	defer teardown()

	err = storage.Initialise(fixtures.DatabaseName, storage.ReadWrite)
	assert.Equal(t, fault.ErrWrongDatabaseVersion, err, "newer database accepted")
}

func TestTransaction(t *testing.T) {
	setup(t)
	defer teardown()

	pool := storage.Pool.Accounts
	key := []byte("account")

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "begin error")

	_, err = storage.NewDBTransaction()
	assert.Equal(t, fault.ErrStorageAlreadyInUse, err, "second transaction")

	trx.PutNB(pool, key, 1234, []byte{1, 2, 3})
	assert.True(t, trx.Has(pool, key), "pending write not visible")

	n, data := trx.GetNB(pool, key)
	assert.Equal(t, uint64(1234), n, "pending balance")
	assert.Equal(t, []byte{1, 2, 3}, data, "pending data")

	trx.Abort()
	assert.False(t, pool.Has(key), "aborted write visible")

	n, data = pool.GetNB(key)
	assert.Equal(t, uint64(0), n, "missing balance")
	assert.Nil(t, data, "missing data")

	trx, err = storage.NewDBTransaction()
	assert.Nil(t, err, "begin after abort")
	trx.PutNB(pool, key, 99, nil)
	err = trx.Commit()
	assert.Nil(t, err, "commit error")

	n, data = pool.GetNB(key)
	assert.Equal(t, uint64(99), n, "committed balance")
	assert.Equal(t, []byte{}, data, "committed data")

	trx, _ = storage.NewDBTransaction()
	trx.Delete(pool, key)
	assert.False(t, trx.Has(pool, key), "pending delete visible")
	assert.Nil(t, trx.Get(pool, key), "pending delete value")
	_ = trx.Commit()

	assert.False(t, pool.Has(key), "delete not committed")
}

func TestPoolsAreSeparate(t *testing.T) {
	setup(t)
	defer teardown()

	putElements(t, storage.Pool.Accounts, expectedElements[:1])

	assert.True(t, storage.Pool.Accounts.Has(expectedElements[0].Key), "account missing")
	assert.False(t, storage.Pool.Receipts.Has(expectedElements[0].Key), "receipt pool has account")
}

func TestFetchCursor(t *testing.T) {
	setup(t)
	defer teardown()

	putElements(t, storage.Pool.Accounts, expectedElements)
	putElements(t, storage.Pool.Receipts, makeElements([]stringElement{{"zzz", "other pool"}}))

	cursor := storage.Pool.Accounts.NewFetchCursor()

	first, err := cursor.Fetch(3)
	assert.Nil(t, err, "fetch error")
	assert.Equal(t, expectedElements[:3], first, "first page")

	second, err := cursor.Fetch(3)
	assert.Nil(t, err, "fetch error")
	assert.Equal(t, expectedElements[3:6], second, "second page")

	third, err := cursor.Fetch(3)
	assert.Nil(t, err, "fetch error")
	assert.Equal(t, expectedElements[6:], third, "third page")

	empty, err := cursor.Fetch(3)
	assert.Nil(t, err, "fetch error")
	assert.Equal(t, 0, len(empty), "past the end")

	_, err = cursor.Fetch(0)
	assert.Equal(t, fault.ErrInvalidCount, err, "zero count")

	seeked, err := storage.Pool.Accounts.NewFetchCursor().Seek([]byte("key-s")).Fetch(2)
	assert.Nil(t, err, "fetch error")
	assert.Equal(t, expectedElements[3:5], seeked, "after seek")
}

func TestMap(t *testing.T) {
	setup(t)
	defer teardown()

	putElements(t, storage.Pool.Accounts, expectedElements)

	result := make([]storage.Element, 0, len(expectedElements))
	err := storage.Pool.Accounts.NewFetchCursor().Map(func(key []byte, value []byte) error {
		result = append(result, storage.Element{Key: key, Value: value})
		return nil
	})
	assert.Nil(t, err, "map error")
	assert.Equal(t, expectedElements, result, "map elements")

	count := 0
	err = storage.Pool.Accounts.NewFetchCursor().Map(func(key []byte, value []byte) error {
		count += 1
		return fault.ErrInvalidCount
	})
	assert.Equal(t, fault.ErrInvalidCount, err, "map error not returned")
	assert.Equal(t, 1, count, "map did not stop")
}

func TestLastElement(t *testing.T) {
	setup(t)
	defer teardown()

	_, found := storage.Pool.Receipts.LastElement()
	assert.False(t, found, "empty pool")

	putElements(t, storage.Pool.Receipts, expectedElements)
	last, found := storage.Pool.Receipts.LastElement()
	assert.True(t, found, "element not found")
	assert.Equal(t, expectedElements[6], last, "last element")
}
