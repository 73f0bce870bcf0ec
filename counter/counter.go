// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package counter - lock free tallies shared between goroutines
//
// used for open RPC connections, RPC calls and emitted or dropped events
package counter

import (
	"sync/atomic"
)

// Counter - unsigned 64 bit tally, zero value is ready to use
type Counter uint64

func (c *Counter) p() *uint64 { return (*uint64)(c) }

// Increment - returns the value after adding one
func (c *Counter) Increment() uint64 {
	return atomic.AddUint64(c.p(), 1)
}

// Decrement - returns the value after subtracting one
func (c *Counter) Decrement() uint64 {
	return atomic.AddUint64(c.p(), ^uint64(0))
}

// Next - sequence number: the value before adding one
func (c *Counter) Next() uint64 {
	return c.Increment() - 1
}

// Acquire - take one slot if fewer than limit are held
//
// a successful Acquire must be paired with Decrement
func (c *Counter) Acquire(limit uint64) bool {
	for {
		n := atomic.LoadUint64(c.p())
		if n >= limit {
			return false
		}
		if atomic.CompareAndSwapUint64(c.p(), n, n+1) {
			return true
		}
	}
}

// Uint64 - current value
func (c *Counter) Uint64() uint64 {
	return atomic.LoadUint64(c.p())
}

// IsZero - nothing counted
func (c *Counter) IsZero() bool {
	return 0 == c.Uint64()
}
