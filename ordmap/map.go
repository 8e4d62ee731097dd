// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ordmap

import (
	"cmp"
	"math"

	"github.com/bitmark-inc/ordmap/avl"
	"github.com/bitmark-inc/ordmap/fault"
)

// Entry - a key and its value as stored in the tree
type Entry[K any, V any] struct {
	Key   K
	Value V
}

// Map - ordered map from K to V
type Map[K any, V any] struct {
	keyLess func(a K, b K) bool
	tree    *avl.Tree[Entry[K, V]]
}

// New - create an empty map using the natural order of K
func New[K cmp.Ordered, V any]() *Map[K, V] {
	return NewFunc[K, V](cmp.Less[K])
}

// NewFunc - create an empty map with a key ordering
func NewFunc[K any, V any](less func(a K, b K) bool) *Map[K, V] {
	return NewWithAllocator[K, V](less, nil)
}

// NewWithAllocator - create an empty map with a key ordering and a
// node allocator, nil selects the heap
func NewWithAllocator[K any, V any](less func(a K, b K) bool, alloc avl.Allocator[Entry[K, V]]) *Map[K, V] {
	if nil == less {
		panic("ordmap: nil less function")
	}
	m := &Map[K, V]{
		keyLess: less,
	}
	m.tree = avl.NewWithAllocator[Entry[K, V]](m.ValueComp(), alloc)
	return m
}

// KeyComp - the key ordering
func (m *Map[K, V]) KeyComp() func(a K, b K) bool {
	return m.keyLess
}

// ValueComp - the key ordering lifted to whole entries
func (m *Map[K, V]) ValueComp() func(a Entry[K, V], b Entry[K, V]) bool {
	less := m.keyLess
	return func(a Entry[K, V], b Entry[K, V]) bool {
		return less(a.Key, b.Key)
	}
}

// Len - number of entries
func (m *Map[K, V]) Len() int {
	return m.tree.Len()
}

// IsEmpty - true if there are no entries
func (m *Map[K, V]) IsEmpty() bool {
	return m.tree.IsEmpty()
}

// Height - height of the underlying tree
func (m *Map[K, V]) Height() int {
	return m.tree.Height()
}

// MaxSize - the largest number of entries the allocator can provide
func (m *Map[K, V]) MaxSize() int {
	type limiter interface {
		Limit() int
	}
	if l, ok := m.tree.Allocator().(limiter); ok && l.Limit() > 0 {
		return l.Limit()
	}
	return math.MaxInt
}

// Check - verify the structure of the underlying tree
func (m *Map[K, V]) Check() error {
	return m.tree.Check()
}

// Insert - add a key and value if the key is not present
//
// if the key exists the stored value is unchanged and inserted is
// false
func (m *Map[K, V]) Insert(key K, value V) (Iterator[K, V], bool, error) {
	it, inserted, err := m.tree.Insert(Entry[K, V]{Key: key, Value: value})
	return Iterator[K, V]{it: it}, inserted, err
}

// InsertHint - Insert with a hint of the entry that will follow the key
func (m *Map[K, V]) InsertHint(hint Iterator[K, V], key K, value V) (Iterator[K, V], bool, error) {
	it, inserted, err := m.tree.InsertHint(hint.it, Entry[K, V]{Key: key, Value: value})
	return Iterator[K, V]{it: it}, inserted, err
}

// InsertEntries - insert several entries, returns the number of new keys
//
// stops at the first allocation error
func (m *Map[K, V]) InsertEntries(entries ...Entry[K, V]) (int, error) {
	n := 0
	for _, e := range entries {
		_, inserted, err := m.tree.Insert(e)
		if nil != err {
			return n, err
		}
		if inserted {
			n += 1
		}
	}
	return n, nil
}

// InsertRange - insert the entries in [first, last) of another map
//
// the source is in order so each insert is hinted at End
func (m *Map[K, V]) InsertRange(first Iterator[K, V], last Iterator[K, V]) (int, error) {
	n := 0
	for it := first; !it.Equal(last) && !it.IsEnd(); it = it.Next() {
		_, inserted, err := m.tree.InsertHint(m.tree.End(), it.Entry())
		if nil != err {
			return n, err
		}
		if inserted {
			n += 1
		}
	}
	return n, nil
}

// Find - iterator to the entry for key, or End
func (m *Map[K, V]) Find(key K) Iterator[K, V] {
	return Iterator[K, V]{it: m.tree.Find(Entry[K, V]{Key: key})}
}

// Contains - true if the key is present
func (m *Map[K, V]) Contains(key K) bool {
	return m.tree.Contains(Entry[K, V]{Key: key})
}

// Count - number of entries with the key, zero or one
func (m *Map[K, V]) Count(key K) int {
	if m.Contains(key) {
		return 1
	}
	return 0
}

// At - value for a key
func (m *Map[K, V]) At(key K) (V, error) {
	it := m.tree.Find(Entry[K, V]{Key: key})
	if it.IsEnd() {
		var zero V
		return zero, fault.ErrKeyNotFound
	}
	return it.Pointer().Value, nil
}

// Lookup - value for a key and whether it was present
func (m *Map[K, V]) Lookup(key K) (V, bool) {
	e, ok := m.tree.Find(Entry[K, V]{Key: key}).Get()
	return e.Value, ok
}

// Ref - reference to the value for a key, inserting the zero value if
// the key is absent
//
// the reference stays valid until the entry is erased
func (m *Map[K, V]) Ref(key K) (*V, error) {
	it, _, err := m.tree.Insert(Entry[K, V]{Key: key})
	if nil != err {
		return nil, err
	}
	return &it.Pointer().Value, nil
}

// Erase - remove a key, returns the number of entries removed
func (m *Map[K, V]) Erase(key K) int {
	return m.tree.Delete(Entry[K, V]{Key: key})
}

// EraseAt - remove the entry at an iterator, returns the following one
func (m *Map[K, V]) EraseAt(it Iterator[K, V]) (Iterator[K, V], error) {
	next, err := m.tree.Erase(it.it)
	return Iterator[K, V]{it: next}, err
}

// EraseRange - remove the entries in [first, last), returns last
func (m *Map[K, V]) EraseRange(first Iterator[K, V], last Iterator[K, V]) (Iterator[K, V], error) {
	it, err := m.tree.EraseRange(first.it, last.it)
	return Iterator[K, V]{it: it}, err
}

// LowerBound - first entry whose key is not before key
func (m *Map[K, V]) LowerBound(key K) Iterator[K, V] {
	return Iterator[K, V]{it: m.tree.LowerBound(Entry[K, V]{Key: key})}
}

// UpperBound - first entry whose key is after key
func (m *Map[K, V]) UpperBound(key K) Iterator[K, V] {
	return Iterator[K, V]{it: m.tree.UpperBound(Entry[K, V]{Key: key})}
}

// EqualRange - LowerBound and UpperBound of key
func (m *Map[K, V]) EqualRange(key K) (Iterator[K, V], Iterator[K, V]) {
	return m.LowerBound(key), m.UpperBound(key)
}

// Get - iterator to the entry at a position in key order, End if out
// of range
func (m *Map[K, V]) Get(index int) Iterator[K, V] {
	return Iterator[K, V]{it: m.tree.Get(index)}
}

// Rank - position of an iterator in key order, Len() for End
func (m *Map[K, V]) Rank(it Iterator[K, V]) int {
	return m.tree.Rank(it.it)
}

// Clear - remove all entries
func (m *Map[K, V]) Clear() {
	m.tree.Clear()
}

// Clone - copy of the map sharing its ordering and allocator
func (m *Map[K, V]) Clone() (*Map[K, V], error) {
	tree, err := m.tree.Clone()
	if nil != err {
		return nil, err
	}
	return &Map[K, V]{
		keyLess: m.keyLess,
		tree:    tree,
	}, nil
}

// Swap - exchange the contents of two maps
func (m *Map[K, V]) Swap(other *Map[K, V]) {
	*m, *other = *other, *m
}
