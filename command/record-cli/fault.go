// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/recordd/fault"
)

// common errors - keep in alphabetic order
const (
	ErrInvalidKey       = fault.InvalidError("key is not base58 or hex seed")
	ErrInvalidReceiptID = fault.InvalidError("invalid receipt id")
	ErrMissingAccount   = fault.InvalidError("missing account key")
	ErrMissingSeed      = fault.InvalidError("missing private key seed")
)

// process exit status for each class of error
const (
	exitFailure   = 1
	exitInvalid   = 2
	exitLength    = 3
	exitAuthority = 4
	exitRecord    = 5
	exitExists    = 6
	exitNotFound  = 7
	exitProcess   = 8
)

// select an exit status from the class of an error, errors returned
// by recordd keep their class as they are restored from the message
func exitStatus(err error) int {
	switch {
	case fault.IsErrInvalid(err):
		return exitInvalid
	case fault.IsErrLength(err):
		return exitLength
	case fault.IsErrAuthority(err):
		return exitAuthority
	case fault.IsErrRecord(err):
		return exitRecord
	case fault.IsErrExists(err):
		return exitExists
	case fault.IsErrNotFound(err):
		return exitNotFound
	case fault.IsErrProcess(err):
		return exitProcess
	default:
		return exitFailure
	}
}
