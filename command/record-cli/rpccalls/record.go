// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/google/uuid"

	"github.com/bitmark-inc/recordd/account"
	"github.com/bitmark-inc/recordd/ledger"
	"github.com/bitmark-inc/recordd/rpc/node"
	"github.com/bitmark-inc/recordd/rpc/record"
)

// Info - request status from recordd
func (client *Client) Info() (*node.InfoReply, error) {
	var reply node.InfoReply
	if err := client.call("Node.Info", node.InfoArguments{}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Create - fund a new account
func (client *Client) Create(key account.Key, balance uint64, space int) (*record.CreateReply, error) {
	arguments := record.CreateArguments{
		Key:     &key,
		Balance: balance,
		Space:   space,
	}
	var reply record.CreateReply
	if err := client.call("Record.Create", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Execute - send a signed transaction and return its receipt
func (client *Client) Execute(packed ledger.Packed) (*ledger.Receipt, error) {
	arguments := record.ExecuteArguments{
		Packed: packed.String(),
	}
	var reply record.ExecuteReply
	if err := client.call("Record.Execute", arguments, &reply); nil != err {
		return nil, err
	}
	return reply.Receipt, nil
}

// Get - fetch an account and its decoded record header
func (client *Client) Get(key account.Key) (*record.GetReply, error) {
	arguments := record.GetArguments{
		Key: &key,
	}
	var reply record.GetReply
	if err := client.call("Record.Get", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Receipt - fetch one receipt
func (client *Client) Receipt(id uuid.UUID) (*ledger.Receipt, error) {
	arguments := record.ReceiptArguments{
		ID: id,
	}
	var reply record.ReceiptReply
	if err := client.call("Record.Receipt", arguments, &reply); nil != err {
		return nil, err
	}
	return reply.Receipt, nil
}

// Receipts - list receipts after start
func (client *Client) Receipts(start *uuid.UUID, count int) (*record.ReceiptsReply, error) {
	arguments := record.ReceiptsArguments{
		Start: start,
		Count: count,
	}
	var reply record.ReceiptsReply
	if err := client.call("Record.Receipts", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}
