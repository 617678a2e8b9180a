// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/google/uuid"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/recordd/command/record-cli/rpccalls"
)

func runReceipts(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	var id *uuid.UUID
	if s := c.String("id"); "" != s {
		u, err := uuid.Parse(s)
		if nil != err {
			return ErrInvalidReceiptID
		}
		id = &u
	}

	var start *uuid.UUID
	if s := c.String("start"); "" != s {
		u, err := uuid.Parse(s)
		if nil != err {
			return ErrInvalidReceiptID
		}
		start = &u
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	if nil != id {
		receipt, err := client.Receipt(*id)
		if nil != err {
			return err
		}
		return printJson(m.w, receipt)
	}

	reply, err := client.Receipts(start, c.Int("count"))
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}
