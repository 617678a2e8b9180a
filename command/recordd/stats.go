// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"runtime"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/recordd/rpc"
)

const (
	statsDelay = 60 * time.Second
	mega       = 1048576
)

// periodic log of memory use and client connections
type memstats struct {
	log *logger.L
}

func (state *memstats) Run(args interface{}, shutdown <-chan struct{}) {

	delay := args.(time.Duration)

	state.log.Info("starting…")

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-time.After(delay):
		}

		var m runtime.MemStats
		runtime.ReadMemStats(&m)

		a := m.Alloc / mega
		t := m.TotalAlloc / mega
		s := m.Sys / mega
		state.log.Infof("allocated: %d M  cumulative: %d M  OS virtual: %d M", a, t, s)
		state.log.Infof("rpc connections: %d", rpc.ConnectionCount())
	}

	state.log.Info("shutting down…")
	state.log.Flush()
}
