// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"encoding/hex"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/recordd/account"
	"github.com/bitmark-inc/recordd/fault"
	"github.com/bitmark-inc/recordd/ledger"
	"github.com/bitmark-inc/recordd/recorddata"
	"github.com/bitmark-inc/recordd/rpc/ratelimit"
)

// Ledger - the ledger operations used by the RPC
type Ledger interface {
	CreateAccount(account.Key, uint64, int) error
	Execute([]byte) (*ledger.Receipt, error)
	Get(account.Key) (*ledger.Account, error)
	Receipt(uuid.UUID) (*ledger.Receipt, error)
	Receipts(*uuid.UUID, int) ([]*ledger.Receipt, error)
}

// Record - type for the RPC
type Record struct {
	Log         *logger.L
	Limiter     *rate.Limiter
	Ledger      Ledger
	AllowCreate bool
}

const (
	MaximumReceiptCount = 100
	rateLimitRecord     = 200
	rateBurstRecord     = 100
)

// New - create the record RPC
func New(log *logger.L, l Ledger, allowCreate bool) *Record {
	return &Record{
		Log:         log,
		Limiter:     rate.NewLimiter(rateLimitRecord, rateBurstRecord),
		Ledger:      l,
		AllowCreate: allowCreate,
	}
}

// Record execute
// --------------

// ExecuteArguments - arguments for RPC
type ExecuteArguments struct {
	Packed string `json:"packed"` // hex packed transaction
}

// ExecuteReply - result of execute RPC
type ExecuteReply struct {
	Receipt *ledger.Receipt `json:"receipt"`
}

// Execute - apply one signed transaction
func (record *Record) Execute(arguments *ExecuteArguments, reply *ExecuteReply) error {
	if err := ratelimit.Limit(record.Limiter); nil != err {
		return err
	}

	if nil == arguments || "" == arguments.Packed {
		return fault.ErrMissingParameters
	}

	packed, err := hex.DecodeString(arguments.Packed)
	if nil != err {
		return fault.ErrNotTransactionPack
	}

	record.Log.Debugf("execute: %x", packed)

	receipt, err := record.Ledger.Execute(packed)
	if nil != err {
		if nil != receipt {
			record.Log.Infof("execute: receipt: %s  error: %s", receipt.ID, err)
		}
		return err
	}

	reply.Receipt = receipt
	return nil
}

// Record get
// ----------

// GetArguments - arguments for RPC
type GetArguments struct {
	Key *account.Key `json:"key"` // base58
}

// GetReply - result of get RPC
type GetReply struct {
	Key       account.Key  `json:"key"`
	Balance   uint64       `json:"balance,string"`
	Data      string       `json:"data"` // hex
	Status    string       `json:"status"`
	Authority *account.Key `json:"authority,omitempty"`
	Value     *uint64      `json:"value,string,omitempty"`
}

// Get - state of an account, decoded as a record if possible
func (record *Record) Get(arguments *GetArguments, reply *GetReply) error {
	if err := ratelimit.Limit(record.Limiter); nil != err {
		return err
	}

	if nil == arguments || nil == arguments.Key {
		return fault.ErrMissingParameters
	}

	a, err := record.Ledger.Get(*arguments.Key)
	if nil != err {
		return err
	}

	reply.Key = a.Key
	reply.Balance = a.Balance
	reply.Data = hex.EncodeToString(a.Data)
	reply.Status = recorddata.Uninitialized.String()

	header, err := recorddata.Unpack(a.Data)
	if nil != err || !header.IsInitialized() {
		return nil
	}

	reply.Status = header.Status().String()
	authority := header.Authority
	reply.Authority = &authority
	if value, err := recorddata.Value(a.Data); nil == err {
		reply.Value = &value
	}
	return nil
}

// Record create
// -------------

// CreateArguments - arguments for RPC
type CreateArguments struct {
	Key     *account.Key `json:"key"` // base58
	Balance uint64       `json:"balance,string"`
	Space   int          `json:"space"`
}

// CreateReply - result of create RPC
type CreateReply struct {
	Key account.Key `json:"key"`
}

// Create - fund a new account, only if enabled in the configuration
func (record *Record) Create(arguments *CreateArguments, reply *CreateReply) error {
	if err := ratelimit.Limit(record.Limiter); nil != err {
		return err
	}

	if !record.AllowCreate {
		return fault.ErrCreateNotAllowed
	}

	if nil == arguments || nil == arguments.Key {
		return fault.ErrMissingParameters
	}

	err := record.Ledger.CreateAccount(*arguments.Key, arguments.Balance, arguments.Space)
	if nil != err {
		return err
	}

	record.Log.Infof("create: %s  balance: %d  space: %d", arguments.Key, arguments.Balance, arguments.Space)
	reply.Key = *arguments.Key
	return nil
}

// Record receipts
// ---------------

// ReceiptArguments - arguments for RPC
type ReceiptArguments struct {
	ID uuid.UUID `json:"id"`
}

// ReceiptReply - result of receipt RPC
type ReceiptReply struct {
	Receipt *ledger.Receipt `json:"receipt"`
}

// Receipt - fetch the receipt of an executed transaction
func (record *Record) Receipt(arguments *ReceiptArguments, reply *ReceiptReply) error {
	if err := ratelimit.Limit(record.Limiter); nil != err {
		return err
	}

	if nil == arguments {
		return fault.ErrMissingParameters
	}

	receipt, err := record.Ledger.Receipt(arguments.ID)
	if nil != err {
		return err
	}
	reply.Receipt = receipt
	return nil
}

// ReceiptsArguments - arguments for RPC
type ReceiptsArguments struct {
	Start *uuid.UUID `json:"start"` // list after this id, nil for oldest
	Count int        `json:"count"`
}

// ReceiptsReply - result of receipts RPC
type ReceiptsReply struct {
	Receipts []*ledger.Receipt `json:"receipts"`
	Next     *uuid.UUID        `json:"next,omitempty"` // Start value for the next call
}

// Receipts - list receipts in execution order
func (record *Record) Receipts(arguments *ReceiptsArguments, reply *ReceiptsReply) error {
	if nil == arguments {
		return fault.ErrMissingParameters
	}

	if err := ratelimit.LimitN(record.Limiter, arguments.Count, MaximumReceiptCount); nil != err {
		return err
	}

	receipts, err := record.Ledger.Receipts(arguments.Start, arguments.Count)
	if nil != err {
		return err
	}

	reply.Receipts = receipts
	if 0 != len(receipts) {
		next := receipts[len(receipts)-1].ID
		reply.Next = &next
	}
	return nil
}
