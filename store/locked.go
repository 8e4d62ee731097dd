// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package store

import (
	"sync"

	"github.com/bitmark-inc/ordmap/avl"
	"github.com/bitmark-inc/ordmap/fault"
	"github.com/bitmark-inc/ordmap/ordmap"
)

// Locked - Store implementation using a single lock
type Locked struct {
	sync.RWMutex
	m    *ordmap.Map[string, string]
	pool *avl.Pool[ordmap.Entry[string, string]]
}

// New - create an empty store holding at most poolSize entries, zero
// for no limit
func New(poolSize int) (*Locked, error) {
	pool, err := avl.NewPool[ordmap.Entry[string, string]](poolSize)
	if nil != err {
		return nil, err
	}
	return &Locked{
		m:    ordmap.NewWithAllocator[string, string](func(a, b string) bool { return a < b }, pool),
		pool: pool,
	}, nil
}

// Put - store a value, replacing any previous one
//
// returns true if the key was not already present
func (s *Locked) Put(key string, value string) (bool, error) {
	if len(key) > MaximumKeyLength {
		return false, fault.ErrKeyTooLong
	}
	if len(value) > MaximumValueLength {
		return false, fault.ErrValueTooLong
	}

	s.Lock()
	defer s.Unlock()

	it, inserted, err := s.m.Insert(key, value)
	if nil != err {
		return false, err
	}
	if !inserted {
		*it.Ref() = value
	}
	return inserted, nil
}

// Get - value for a key
func (s *Locked) Get(key string) (string, error) {
	s.RLock()
	defer s.RUnlock()

	return s.m.At(key)
}

// Delete - remove a key, true if it was present
func (s *Locked) Delete(key string) bool {
	s.Lock()
	defer s.Unlock()

	return 1 == s.m.Erase(key)
}

// Range - up to count entries in key order starting at start
//
// if inclusive is false an entry equal to start is skipped, so the
// returned next key can be passed back to continue a listing; more is
// true when entries remain after next
func (s *Locked) Range(start string, count int, inclusive bool) ([]Entry, string, bool) {
	if count < 0 {
		count = 0
	}

	s.RLock()
	defer s.RUnlock()

	it := s.m.LowerBound(start)
	if !inclusive {
		it = s.m.UpperBound(start)
	}

	entries := make([]Entry, 0, count)
	for ; !it.IsEnd() && len(entries) < count; it = it.Next() {
		entries = append(entries, Entry{
			Key:   it.Key(),
			Value: it.Value(),
		})
	}

	if 0 == len(entries) {
		return entries, start, false
	}
	return entries, entries[len(entries)-1].Key, !it.IsEnd()
}

// Bounds - first entry with key not before the given key and first
// entry with key after it, nil where no such entry exists
func (s *Locked) Bounds(key string) (*Entry, *Entry) {
	s.RLock()
	defer s.RUnlock()

	lo, hi := s.m.EqualRange(key)
	return entryAt(lo), entryAt(hi)
}

func entryAt(it ordmap.Iterator[string, string]) *Entry {
	if it.IsEnd() {
		return nil
	}
	return &Entry{
		Key:   it.Key(),
		Value: it.Value(),
	}
}

// Len - number of entries
func (s *Locked) Len() int {
	s.RLock()
	defer s.RUnlock()

	return s.m.Len()
}

// Statistics - size of the store and pool usage
func (s *Locked) Statistics() Statistics {
	s.RLock()
	defer s.RUnlock()

	return Statistics{
		Entries: s.m.Len(),
		Height:  s.m.Height(),
		Limit:   s.pool.Limit(),
		Pool:    s.pool.Statistics(),
	}
}

// Check - verify the structure of the underlying tree
func (s *Locked) Check() error {
	s.RLock()
	defer s.RUnlock()

	return s.m.Check()
}
