// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package counter - a 64 bit unsigned counter that can be shared
// between go routines without a lock
//
// the counter also remembers the highest value it has reached, used
// for pool sizes and connection counts
package counter

import (
	"sync/atomic"
)

// Counter - synchronously incremented or decremented value
//
// the zero value is ready to use; a Counter must not be copied
type Counter struct {
	value atomic.Uint64
	peak  atomic.Uint64
}

// New - counter starting at n
func New(n uint64) *Counter {
	c := &Counter{}
	c.Add(n)
	return c
}

// Increment - add 1 to a counter, returns new value
func (c *Counter) Increment() uint64 {
	return c.Add(1)
}

// Decrement - subtract 1 from a counter, returns new value
func (c *Counter) Decrement() uint64 {
	return c.value.Add(^uint64(0))
}

// Add - add n to a counter, returns new value
func (c *Counter) Add(n uint64) uint64 {
	v := c.value.Add(n)
	c.raisePeak(v)
	return v
}

// Reset - set the counter back to zero, returns the previous value
//
// the peak is kept
func (c *Counter) Reset() uint64 {
	return c.value.Swap(0)
}

// Uint64 - returns current value
func (c *Counter) Uint64() uint64 {
	return c.value.Load()
}

// IsZero - check if zero
func (c *Counter) IsZero() bool {
	return 0 == c.value.Load()
}

// Peak - highest value reached by Increment or Add
func (c *Counter) Peak() uint64 {
	return c.peak.Load()
}

func (c *Counter) raisePeak(v uint64) {
	for {
		p := c.peak.Load()
		if v <= p || c.peak.CompareAndSwap(p, v) {
			return
		}
	}
}
