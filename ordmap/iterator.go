// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ordmap

import (
	"iter"

	"github.com/bitmark-inc/ordmap/avl"
)

// Iterator - position of an entry in a map, or End
//
// remains valid until its own entry is erased
type Iterator[K any, V any] struct {
	it avl.Iterator[Entry[K, V]]
}

// ReverseIterator - position that moves from the highest key down
type ReverseIterator[K any, V any] struct {
	r avl.ReverseIterator[Entry[K, V]]
}

// Begin - entry with the lowest key
func (m *Map[K, V]) Begin() Iterator[K, V] {
	return Iterator[K, V]{it: m.tree.Begin()}
}

// End - one past the highest key
func (m *Map[K, V]) End() Iterator[K, V] {
	return Iterator[K, V]{it: m.tree.End()}
}

// RBegin - entry with the highest key
func (m *Map[K, V]) RBegin() ReverseIterator[K, V] {
	return ReverseIterator[K, V]{r: m.tree.RBegin()}
}

// REnd - one before the lowest key
func (m *Map[K, V]) REnd() ReverseIterator[K, V] {
	return ReverseIterator[K, V]{r: m.tree.REnd()}
}

// IsEnd - true if positioned at End
func (i Iterator[K, V]) IsEnd() bool {
	return i.it.IsEnd()
}

// Key - key of the entry, panics at End
func (i Iterator[K, V]) Key() K {
	return i.it.Pointer().Key
}

// Value - value of the entry, panics at End
func (i Iterator[K, V]) Value() V {
	return i.it.Pointer().Value
}

// Ref - modifiable reference to the value, panics at End
func (i Iterator[K, V]) Ref() *V {
	return &i.it.Pointer().Value
}

// Entry - copy of the key and value, panics at End
func (i Iterator[K, V]) Entry() Entry[K, V] {
	return i.it.Value()
}

// Next - following entry
func (i Iterator[K, V]) Next() Iterator[K, V] {
	return Iterator[K, V]{it: i.it.Next()}
}

// Prev - preceding entry, from End this is the highest key
func (i Iterator[K, V]) Prev() Iterator[K, V] {
	return Iterator[K, V]{it: i.it.Prev()}
}

// Equal - true if both refer to the same entry
func (i Iterator[K, V]) Equal(other Iterator[K, V]) bool {
	return i.it.Equal(other.it)
}

// IsEnd - true if positioned at REnd
func (r ReverseIterator[K, V]) IsEnd() bool {
	return r.r.IsEnd()
}

// Base - forward iterator one after this entry
func (r ReverseIterator[K, V]) Base() Iterator[K, V] {
	return Iterator[K, V]{it: r.r.Base()}
}

// Key - key of the entry
func (r ReverseIterator[K, V]) Key() K {
	return r.r.Pointer().Key
}

// Value - value of the entry
func (r ReverseIterator[K, V]) Value() V {
	return r.r.Pointer().Value
}

// Ref - modifiable reference to the value
func (r ReverseIterator[K, V]) Ref() *V {
	return &r.r.Pointer().Value
}

// Next - entry with the next lower key
func (r ReverseIterator[K, V]) Next() ReverseIterator[K, V] {
	return ReverseIterator[K, V]{r: r.r.Next()}
}

// Prev - entry with the next higher key
func (r ReverseIterator[K, V]) Prev() ReverseIterator[K, V] {
	return ReverseIterator[K, V]{r: r.r.Prev()}
}

// Equal - true if both refer to the same position
func (r ReverseIterator[K, V]) Equal(other ReverseIterator[K, V]) bool {
	return r.r.Equal(other.r)
}

// All - keys and values in ascending key order
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for e := range m.tree.All() {
			if !yield(e.Key, e.Value) {
				return
			}
		}
	}
}

// Backward - keys and values in descending key order
func (m *Map[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for e := range m.tree.Backward() {
			if !yield(e.Key, e.Value) {
				return
			}
		}
	}
}

// Keys - keys in ascending order
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for e := range m.tree.All() {
			if !yield(e.Key) {
				return
			}
		}
	}
}

// Values - values in ascending key order
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for e := range m.tree.All() {
			if !yield(e.Value) {
				return
			}
		}
	}
}

// Scan - keys and values with lo <= key < hi
//
// the map must not be modified during the scan
func (m *Map[K, V]) Scan(lo K, hi K) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if !m.keyLess(lo, hi) {
			return
		}
		m.tree.Ascend(m.tree.LowerBound(Entry[K, V]{Key: lo}), m.tree.LowerBound(Entry[K, V]{Key: hi}), func(e Entry[K, V]) bool {
			return yield(e.Key, e.Value)
		})
	}
}
