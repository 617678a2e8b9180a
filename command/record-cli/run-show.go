// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/recordd/command/record-cli/rpccalls"
)

func runShow(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	key, err := parseKey(c.String("key"))
	if nil != err {
		return err
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Get(key)
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}
