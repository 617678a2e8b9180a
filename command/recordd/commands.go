// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/recordd/ledger"
	"github.com/bitmark-inc/recordd/rpc/certificate"
)

// setup command handler
//
// commands that cannot access any internal database or states or the
// configuration file
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {

	case "gen-rpc-cert", "rpc":
		if len(arguments) < 2 {
			exitwithstatus.Message("missing directory argument")
		}
		dir := arguments[1]
		extraHosts := arguments[2:]

		certificateFileName := filepath.Join(dir, defaultRPCCertificate)
		keyFileName := filepath.Join(dir, defaultRPCKey)
		err := certificate.MakeSelfSigned("recordd", certificateFileName, keyFileName, extraHosts)
		if nil != err {
			exitwithstatus.Message("generate RPC key: %q and certificate: %q  error: %s", keyFileName, certificateFileName, err)
		}
		fmt.Printf("generated RPC key: %q and certificate: %q\n", keyFileName, certificateFileName)

	case "start", "run":
		return false // continue processing

	case "export", "save", "import", "load":
		return false // defer processing until database is loaded

	case "config-test", "cfg":
		return false

	case "version", "v":
		fmt.Printf("%s\n", version)
		return true

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %q\n", command)
		}
		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [[command|help] arguments...]\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)      - display this message\n\n")
		fmt.Printf("  version                    (v)      - display version sting\n\n")

		fmt.Printf("  gen-rpc-cert DIR [IPs...]  (rpc)    - create the self-signed TLS certificate for RPC\n")
		fmt.Printf("                                        optionally adding extra IP addresses to the certificate\n")
		fmt.Printf("\n")

		fmt.Printf("  start                      (run)    - just run the program, same as no arguments\n")
		fmt.Printf("                                        for convienience when passing script arguments\n")
		fmt.Printf("\n")

		fmt.Printf("  config-test                (cfg)    - just check the configuration file\n")
		fmt.Printf("\n")

		fmt.Printf("  export FILE                (save)   - write all accounts and receipts to a snapshot file\n")
		fmt.Printf("\n")

		fmt.Printf("  import FILE                (load)   - restore accounts and receipts from a snapshot file\n")
		fmt.Printf("\n")

		exitwithstatus.Exit(1)
	}

	// command recognised
	return true
}

// configuration command handler
//
// commands that only need the configuration file
func processConfigCommand(arguments []string, options *Configuration) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {

	case "config-test", "cfg":
		text, err := json.MarshalIndent(options, "", "  ")
		if nil != err {
			exitwithstatus.Message("error: %s", err)
		}
		fmt.Printf("configuration: %s\n", text)
		return true

	default:
		return false
	}
}

// data command handler
//
// the internal database is open
func processDataCommand(log *logger.L, arguments []string, theLedger *ledger.Ledger) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {

	case "export", "save":
		if len(arguments) < 1 {
			exitwithstatus.Message("missing file name")
		}
		fileName := arguments[0]

		log.Infof("export to: %q", fileName)
		err := writeSnapshot(fileName, theLedger.Export)
		if nil != err {
			log.Errorf("export error: %s", err)
			exitwithstatus.Message("export to: %q  error: %s", fileName, err)
		}
		fmt.Printf("exported to: %q\n", fileName)

	case "import", "load":
		if len(arguments) < 1 {
			exitwithstatus.Message("missing file name")
		}
		fileName := arguments[0]

		fh, err := os.Open(fileName)
		if nil != err {
			exitwithstatus.Message("cannot open: %q  error: %s", fileName, err)
		}
		defer fh.Close()

		log.Infof("import from: %q", fileName)
		err = theLedger.Import(fh)
		if nil != err {
			log.Errorf("import error: %s", err)
			exitwithstatus.Message("import from: %q  error: %s", fileName, err)
		}
		fmt.Printf("imported from: %q\n", fileName)

	default:
		return false
	}

	return true
}

// create a new snapshot file, it is only complete if the file closes
// without error, a partial file is removed
func writeSnapshot(fileName string, export func(io.Writer) error) error {
	fh, err := os.OpenFile(fileName, os.O_WRONLY|os.O_EXCL|os.O_CREATE, 0600)
	if nil != err {
		return err
	}

	err = export(fh)
	if e := fh.Close(); nil == err {
		err = e
	}
	if nil != err {
		_ = os.Remove(fileName)
		return err
	}
	return nil
}
