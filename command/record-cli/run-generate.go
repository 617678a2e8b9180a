// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/recordd/account"
)

type generateReply struct {
	Seed string      `json:"seed"`
	Key  account.Key `json:"key"`
}

func runGenerate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	privateKey, err := account.NewPrivateKey()
	if nil != err {
		return err
	}

	return printJson(m.w, generateReply{
		Seed: privateKey.String(),
		Key:  privateKey.Account(),
	})
}
