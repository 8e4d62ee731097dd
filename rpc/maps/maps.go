// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package maps - RPC access to the ordered store
package maps

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/ordmap/fault"
	"github.com/bitmark-inc/ordmap/rpc/ratelimit"
	"github.com/bitmark-inc/ordmap/store"
)

const (
	MaximumRangeCount = 100
	rateLimitMap      = 500
	rateBurstMap      = 200
)

// Map - type for the RPC
type Map struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Store   store.Store
}

// New - create the Map RPC service
func New(log *logger.L, s store.Store) *Map {
	return &Map{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitMap, rateBurstMap),
		Store:   s,
	}
}

// Map put
// -------

// PutArguments - arguments for RPC
type PutArguments struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// PutReply - result of put
type PutReply struct {
	Inserted bool `json:"inserted"`
}

// Put - set the value of a key, replacing any existing value
func (m *Map) Put(arguments *PutArguments, reply *PutReply) error {
	if err := ratelimit.Limit(m.Limiter); nil != err {
		return err
	}

	if nil == arguments || "" == arguments.Key {
		return fault.ErrMissingParameters
	}

	m.Log.Debugf("Map.Put: key: %q  value bytes: %d", arguments.Key, len(arguments.Value))

	inserted, err := m.Store.Put(arguments.Key, arguments.Value)
	if nil != err {
		m.Log.Warnf("Map.Put: key: %q  error: %s", arguments.Key, err)
		return err
	}
	reply.Inserted = inserted
	return nil
}

// Map get
// -------

// KeyArguments - arguments for RPC calls taking a single key
type KeyArguments struct {
	Key string `json:"key"`
}

// GetReply - result of get
type GetReply struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Get - fetch the value of a key
func (m *Map) Get(arguments *KeyArguments, reply *GetReply) error {
	if err := ratelimit.Limit(m.Limiter); nil != err {
		return err
	}

	if nil == arguments {
		return fault.ErrMissingParameters
	}

	value, err := m.Store.Get(arguments.Key)
	if nil != err {
		return err
	}
	reply.Key = arguments.Key
	reply.Value = value
	return nil
}

// Map delete
// ----------

// DeleteReply - result of delete
type DeleteReply struct {
	Deleted bool `json:"deleted"`
}

// Delete - remove a key
func (m *Map) Delete(arguments *KeyArguments, reply *DeleteReply) error {
	if err := ratelimit.Limit(m.Limiter); nil != err {
		return err
	}

	if nil == arguments {
		return fault.ErrMissingParameters
	}

	m.Log.Debugf("Map.Delete: key: %q", arguments.Key)

	reply.Deleted = m.Store.Delete(arguments.Key)
	return nil
}

// Map range
// ---------

// RangeArguments - arguments for RPC
type RangeArguments struct {
	Start     string `json:"start"`     // first key to consider
	Count     int    `json:"count"`     // number of entries
	Inclusive bool   `json:"inclusive"` // include an entry equal to Start
}

// RangeReply - result of range
type RangeReply struct {
	Entries []store.Entry `json:"entries"`
	Next    string        `json:"next"` // Start value for the next call
	More    bool          `json:"more"`
}

// Range - list entries in key order
func (m *Map) Range(arguments *RangeArguments, reply *RangeReply) error {
	if nil == arguments {
		return fault.ErrMissingParameters
	}

	if err := ratelimit.LimitN(m.Limiter, arguments.Count, MaximumRangeCount); nil != err {
		return err
	}

	m.Log.Debugf("Map.Range: %+v", arguments)

	entries, next, more := m.Store.Range(arguments.Start, arguments.Count, arguments.Inclusive)
	reply.Entries = entries
	reply.Next = next
	reply.More = more
	return nil
}

// Map bounds
// ----------

// BoundsReply - result of bounds
type BoundsReply struct {
	Lower *store.Entry `json:"lower"` // first entry not before the key
	Upper *store.Entry `json:"upper"` // first entry after the key
}

// Bounds - lower and upper bound entries of a key
func (m *Map) Bounds(arguments *KeyArguments, reply *BoundsReply) error {
	if err := ratelimit.Limit(m.Limiter); nil != err {
		return err
	}

	if nil == arguments {
		return fault.ErrMissingParameters
	}

	reply.Lower, reply.Upper = m.Store.Bounds(arguments.Key)
	return nil
}
