// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. key          = 32 byte ed25519 public key
// 4. balance      = big endian uint64 (8 bytes)
// 5. receipt id   = 16 byte UUID (version 7, so ids sort by time)
//
// Accounts:
//
//   A ++ key                   - account state
//                                data: balance ++ account data
//
// Receipts:
//
//   R ++ receipt id            - result of an executed transaction
//                                data: msgpack encoded receipt
//
// Version:
//
//   0x00 ++ "VERSION"          - database version
//                                data: big endian uint32
//
// All writes go through a single batch: Begin, then any number of
// Put/Delete, then Commit or Abort.  Reads during a batch see the
// batch's own writes.
package storage
