// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package counter - a bounded count of things in use
package counter

import (
	"sync/atomic"
)

// Counter - number of items currently in use
type Counter uint64

// Acquire - take one slot if fewer than maximum are in use
func (c *Counter) Acquire(maximum uint64) bool {
	if atomic.AddUint64((*uint64)(c), 1) <= maximum {
		return true
	}
	c.Release()
	return false
}

// Release - give back a slot taken by Acquire
func (c *Counter) Release() {
	atomic.AddUint64((*uint64)(c), ^uint64(0))
}

// Uint64 - current number in use
func (c *Counter) Uint64() uint64 {
	return atomic.LoadUint64((*uint64)(c))
}
