// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"
)

type metadata struct {
	connect string
	verbose bool
	e       io.Writer
	w       io.Writer
}

const defaultConnect = "127.0.0.1:2130"

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp(os.Stdout, os.Stderr)
	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(exitStatus(err))
	}
}

func newApp(w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "record-cli"
	app.Usage = "manage records held by a recordd node"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	recordFlag := cli.StringFlag{
		Name:  "record, r",
		Value: "",
		Usage: "*record account `KEY`",
	}
	authorityFlag := cli.StringFlag{
		Name:  "authority, a",
		Value: "",
		Usage: "*authority private key `SEED`",
	}
	sourceFlag := cli.StringFlag{
		Name:  "source, s",
		Value: "",
		Usage: "*source account `KEY`",
	}
	offsetFlag := cli.Uint64Flag{
		Name:  "offset, o",
		Value: 0,
		Usage: " byte offset in the source data `NUMBER`",
	}

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "connect, c",
			Value: defaultConnect,
			Usage: " recordd host/IP and port, `HOST:PORT`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "generate",
			Usage:     "generate a new private key",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{},
			Action:    runGenerate,
		},
		{
			Name:      "info",
			Usage:     "display recordd info",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{},
			Action:    runInfo,
		},
		{
			Name:      "create",
			Usage:     "fund a new account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "key, k",
					Value: "",
					Usage: "*account `KEY` base58 public key or hex seed",
				},
				cli.Uint64Flag{
					Name:  "balance, b",
					Value: 0,
					Usage: "*initial balance `NUMBER`",
				},
				cli.IntFlag{
					Name:  "space, s",
					Value: defaultSpace,
					Usage: " data size in bytes `NUMBER`",
				},
			},
			Action: runCreate,
		},
		{
			Name:      "initialize",
			Usage:     "set the authority of a new record",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				recordFlag,
				cli.StringFlag{
					Name:  "authority, a",
					Value: "",
					Usage: "*authority `KEY` base58 public key or hex seed",
				},
			},
			Action: runInitialize,
		},
		{
			Name:      "write",
			Usage:     "copy 8 bytes from a source account into a record",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				recordFlag,
				authorityFlag,
				sourceFlag,
				offsetFlag,
			},
			Action: runWrite,
		},
		{
			Name:      "check",
			Usage:     "check a source value against the record value plus an addition",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				recordFlag,
				authorityFlag,
				sourceFlag,
				offsetFlag,
				cli.Uint64Flag{
					Name:  "addition, n",
					Value: 0,
					Usage: " amount added to the record value `NUMBER`",
				},
			},
			Action: runCheck,
		},
		{
			Name:      "set-authority",
			Usage:     "replace the authority of a record",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				recordFlag,
				authorityFlag,
				cli.StringFlag{
					Name:  "new-authority, N",
					Value: "",
					Usage: "*new authority `KEY` base58 public key or hex seed",
				},
			},
			Action: runSetAuthority,
		},
		{
			Name:      "close",
			Usage:     "close a record and move its balance",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				recordFlag,
				authorityFlag,
				cli.StringFlag{
					Name:  "destination, d",
					Value: "",
					Usage: "*destination account `KEY`",
				},
			},
			Action: runClose,
		},
		{
			Name:      "show",
			Usage:     "display an account and its record header",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "key, k",
					Value: "",
					Usage: "*account `KEY` base58 public key or hex seed",
				},
			},
			Action: runShow,
		},
		{
			Name:      "receipts",
			Usage:     "list transaction receipts",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "id, i",
					Value: "",
					Usage: " fetch only receipt `ID`",
				},
				cli.StringFlag{
					Name:  "start, s",
					Value: "",
					Usage: " list after receipt `ID`",
				},
				cli.IntFlag{
					Name:  "count, n",
					Value: 20,
					Usage: " maximum receipts to output `COUNT`",
				},
			},
			Action: runReceipts,
		},
		{
			Name:      "version",
			Usage:     "display record-cli version",
			ArgsUsage: "\n   (* = required)",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {
		c.App.Metadata["config"] = &metadata{
			connect: c.GlobalString("connect"),
			verbose: c.GlobalBool("verbose"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}
		return nil
	}

	return app
}
