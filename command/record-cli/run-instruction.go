// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/recordd/account"
	"github.com/bitmark-inc/recordd/command/record-cli/rpccalls"
	"github.com/bitmark-inc/recordd/instruction"
	"github.com/bitmark-inc/recordd/ledger"
)

func runInitialize(c *cli.Context) error {
	record, err := parseKey(c.String("record"))
	if nil != err {
		return err
	}
	authority, err := parseKey(c.String("authority"))
	if nil != err {
		return err
	}

	metas := []ledger.AccountMeta{
		{Key: record, IsWritable: true},
		{Key: authority},
	}
	return sendInstruction(c, instruction.Initialize{}, metas)
}

func runWrite(c *cli.Context) error {
	record, err := parseKey(c.String("record"))
	if nil != err {
		return err
	}
	authority, err := parsePrivateKey(c.String("authority"))
	if nil != err {
		return err
	}
	source, err := parseKey(c.String("source"))
	if nil != err {
		return err
	}

	in := instruction.WriteU64{
		Offset: c.Uint64("offset"),
	}
	metas := []ledger.AccountMeta{
		{Key: record, IsWritable: true},
		{Key: authority.Account(), IsSigner: true},
		{Key: source},
	}
	return sendInstruction(c, in, metas, authority)
}

func runCheck(c *cli.Context) error {
	record, err := parseKey(c.String("record"))
	if nil != err {
		return err
	}
	authority, err := parsePrivateKey(c.String("authority"))
	if nil != err {
		return err
	}
	source, err := parseKey(c.String("source"))
	if nil != err {
		return err
	}

	in := instruction.CheckAdd{
		Offset:   c.Uint64("offset"),
		Addition: c.Uint64("addition"),
	}
	metas := []ledger.AccountMeta{
		{Key: record},
		{Key: authority.Account(), IsSigner: true},
		{Key: source},
	}
	return sendInstruction(c, in, metas, authority)
}

func runSetAuthority(c *cli.Context) error {
	record, err := parseKey(c.String("record"))
	if nil != err {
		return err
	}
	authority, err := parsePrivateKey(c.String("authority"))
	if nil != err {
		return err
	}
	newAuthority, err := parseKey(c.String("new-authority"))
	if nil != err {
		return err
	}

	metas := []ledger.AccountMeta{
		{Key: record, IsWritable: true},
		{Key: authority.Account(), IsSigner: true},
		{Key: newAuthority},
	}
	return sendInstruction(c, instruction.SetAuthority{}, metas, authority)
}

func runClose(c *cli.Context) error {
	record, err := parseKey(c.String("record"))
	if nil != err {
		return err
	}
	authority, err := parsePrivateKey(c.String("authority"))
	if nil != err {
		return err
	}
	destination, err := parseKey(c.String("destination"))
	if nil != err {
		return err
	}

	metas := []ledger.AccountMeta{
		{Key: record, IsWritable: true},
		{Key: authority.Account(), IsSigner: true},
		{Key: destination, IsWritable: true},
	}
	return sendInstruction(c, instruction.CloseAccount{}, metas, authority)
}

// sign and send a single instruction, then print its receipt
func sendInstruction(c *cli.Context, in instruction.Instruction, metas []ledger.AccountMeta, keys ...*account.PrivateKey) error {

	m := c.App.Metadata["config"].(*metadata)

	packed, err := makeTransaction(in, metas, keys...)
	if nil != err {
		return err
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	receipt, err := client.Execute(packed)
	if nil != err {
		return err
	}

	return printJson(m.w, receipt)
}

// build the signed wire form of one instruction
func makeTransaction(in instruction.Instruction, metas []ledger.AccountMeta, keys ...*account.PrivateKey) (ledger.Packed, error) {
	transaction := &ledger.Transaction{
		Accounts: metas,
		Data:     in.Pack(),
	}
	if err := transaction.Sign(keys...); nil != err {
		return nil, err
	}
	return transaction.Pack()
}
