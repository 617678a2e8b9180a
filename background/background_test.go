// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/recordd/background"
)

type ticker struct {
	count    int64
	finished int64
}

func (state *ticker) Run(args interface{}, shutdown <-chan struct{}) {
	delay := args.(time.Duration)

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-time.After(delay):
			atomic.AddInt64(&state.count, 1)
		}
	}
	atomic.StoreInt64(&state.finished, 1)
}

func TestBackground(t *testing.T) {
	proc1 := &ticker{}
	proc2 := &ticker{}

	p := background.Start(background.Processes{proc1, proc2}, time.Millisecond)
	time.Sleep(50 * time.Millisecond)
	p.Stop()

	assert.Equal(t, int64(1), atomic.LoadInt64(&proc1.finished), "first process did not finish")
	assert.Equal(t, int64(1), atomic.LoadInt64(&proc2.finished), "second process did not finish")
	assert.True(t, atomic.LoadInt64(&proc1.count) > 0, "first process did not run")
	assert.True(t, atomic.LoadInt64(&proc2.count) > 0, "second process did not run")

	// counts are fixed once stopped
	c1 := atomic.LoadInt64(&proc1.count)
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, c1, atomic.LoadInt64(&proc1.count), "process still running")
}

func TestStopTwice(t *testing.T) {
	p := background.Start(background.Processes{&ticker{}}, time.Millisecond)
	p.Stop()
	p.Stop()
}

func TestStartEmpty(t *testing.T) {
	p := background.Start(nil, nil)
	p.Stop()
}
