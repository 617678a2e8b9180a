// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/recordd/counter"
	"github.com/bitmark-inc/recordd/rpc/node"
	"github.com/bitmark-inc/recordd/rpc/record"
)

// Create - an RPC server with every service registered
func Create(log *logger.L, version string, rpcCount *counter.Counter, l record.Ledger, allowCreate bool) *rpc.Server {
	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(record.New(log, l, allowCreate))
	_ = server.Register(node.New(log, start, version, rpcCount))

	return server
}
