// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared setup for tests
package fixtures

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/recordd/account"
	"github.com/bitmark-inc/recordd/rpc/certificate"
)

const (
	dir         = "testing"
	LogCategory = "testing"
)

// DatabaseName - leveldb directory removed by TeardownTestLogger
var DatabaseName = filepath.Join(dir, "test.leveldb")

// deterministic keys
var (
	Authority    *account.PrivateKey
	NewAuthority *account.PrivateKey
	Payer        *account.PrivateKey
)

func init() {
	Authority = mustKey(0x01)
	NewAuthority = mustKey(0x02)
	Payer = mustKey(0x03)
}

func mustKey(b byte) *account.PrivateKey {
	key, err := account.PrivateKeyFromSeed(bytes.Repeat([]byte{b}, account.SeedSize))
	if nil != err {
		panic(err)
	}
	return key
}

// MakeKey - a public key with every byte set to b
func MakeKey(b byte) account.Key {
	k := account.Key{}
	for i := range k {
		k[i] = b
	}
	return k
}

// CertificateFiles - a new self-signed certificate and key in the
// testing directory, SetupTestLogger must be called first
func CertificateFiles() (string, string, error) {
	certificateFileName := filepath.Join(dir, "rpc.crt")
	keyFileName := filepath.Join(dir, "rpc.key")

	_ = os.Remove(certificateFileName)
	_ = os.Remove(keyFileName)

	err := certificate.MakeSelfSigned(LogCategory, certificateFileName, keyFileName, []string{"127.0.0.1"})
	if nil != err {
		return "", "", err
	}
	return certificateFileName, keyFileName, nil
}

// SetupTestLogger - start logging to the testing directory
func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

// TeardownTestLogger - stop logging and remove the testing directory
func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}
