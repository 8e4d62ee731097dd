// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"iter"

	"github.com/bitmark-inc/ordmap/fault"
)

// Iterator - bidirectional cursor over the nodes of a tree
//
// an iterator with no node is positioned one past the highest node,
// i.e. at End.  Two iterators are equal when they refer to the same
// node, not when their values are equivalent.
type Iterator[T any] struct {
	h    *header[T]
	node *Node[T]
}

// First - iterator to the node with the lowest value, End if empty
func (tree *Tree[T]) First() Iterator[T] {
	return Iterator[T]{h: tree.h, node: tree.h.root.first()}
}

// Last - iterator to the node with the highest value, End if empty
func (tree *Tree[T]) Last() Iterator[T] {
	return Iterator[T]{h: tree.h, node: tree.h.root.last()}
}

// Begin - same as First
func (tree *Tree[T]) Begin() Iterator[T] {
	return tree.First()
}

// End - the position one past the highest node
func (tree *Tree[T]) End() Iterator[T] {
	return Iterator[T]{h: tree.h}
}

// RBegin - reverse iterator to the highest node
func (tree *Tree[T]) RBegin() ReverseIterator[T] {
	return ReverseIterator[T]{base: tree.End()}
}

// REnd - the reverse position one before the lowest node
func (tree *Tree[T]) REnd() ReverseIterator[T] {
	return ReverseIterator[T]{base: tree.First()}
}

// IsEnd - true if positioned at End
func (it Iterator[T]) IsEnd() bool {
	return nil == it.node
}

// Node - the referenced node, nil at End
func (it Iterator[T]) Node() *Node[T] {
	return it.node
}

// Value - the referenced value
//
// panics with fault.ErrInvalidIterator at End or if the node has been
// erased
func (it Iterator[T]) Value() T {
	return *it.Pointer()
}

// Pointer - reference to the stored value, which may be modified as
// long as its ordering is unchanged
func (it Iterator[T]) Pointer() *T {
	if nil == it.node || it.node.detached() {
		panic(fault.ErrInvalidIterator)
	}
	return &it.node.value
}

// Get - the referenced value and true, or false at End
func (it Iterator[T]) Get() (T, bool) {
	if nil == it.node || it.node.detached() {
		var zero T
		return zero, false
	}
	return it.node.value, true
}

// Next - iterator to the in-order successor, End after the highest
// node
//
// panics with fault.ErrInvalidIterator if already at End
func (it Iterator[T]) Next() Iterator[T] {
	if nil == it.node || it.node.detached() {
		panic(fault.ErrInvalidIterator)
	}
	return Iterator[T]{h: it.h, node: it.node.next()}
}

// Prev - iterator to the in-order predecessor; from End this is the
// highest node
//
// panics with fault.ErrInvalidIterator at the lowest node or at End of
// an empty tree
func (it Iterator[T]) Prev() Iterator[T] {
	if nil == it.node {
		if nil == it.h || nil == it.h.root {
			panic(fault.ErrInvalidIterator)
		}
		return Iterator[T]{h: it.h, node: it.h.root.last()}
	}
	if it.node.detached() {
		panic(fault.ErrInvalidIterator)
	}
	p := it.node.prev()
	if nil == p {
		panic(fault.ErrInvalidIterator)
	}
	return Iterator[T]{h: it.h, node: p}
}

// Equal - true if both refer to the same node, or both are End of the
// same tree
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	if nil == it.node {
		return nil == other.node && it.h == other.h
	}
	return it.node == other.node
}

// ReverseIterator - iterator that moves from the highest to the lowest
// node
//
// it wraps a forward iterator positioned one after the referenced
// node, so RBegin wraps End and REnd wraps First
type ReverseIterator[T any] struct {
	base Iterator[T]
}

// Base - the underlying forward iterator
func (r ReverseIterator[T]) Base() Iterator[T] {
	return r.base
}

// IsEnd - true if positioned at REnd
func (r ReverseIterator[T]) IsEnd() bool {
	if nil == r.base.h {
		return true
	}
	return r.base.node == r.base.h.root.first()
}

// Value - the referenced value
func (r ReverseIterator[T]) Value() T {
	return r.base.Prev().Value()
}

// Pointer - reference to the stored value
func (r ReverseIterator[T]) Pointer() *T {
	return r.base.Prev().Pointer()
}

// Next - move towards lower values
func (r ReverseIterator[T]) Next() ReverseIterator[T] {
	return ReverseIterator[T]{base: r.base.Prev()}
}

// Prev - move towards higher values
func (r ReverseIterator[T]) Prev() ReverseIterator[T] {
	return ReverseIterator[T]{base: r.base.Next()}
}

// Equal - true if both wrap equal forward iterators
func (r ReverseIterator[T]) Equal(other ReverseIterator[T]) bool {
	return r.base.Equal(other.base)
}

// All - values in ascending order
//
// the node following the current one is fetched before yielding, so
// the loop body may erase the current node
func (tree *Tree[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for p := tree.h.root.first(); nil != p; {
			q := p.next()
			if !yield(p.value) {
				return
			}
			p = q
		}
	}
}

// Backward - values in descending order
func (tree *Tree[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for p := tree.h.root.last(); nil != p; {
			q := p.prev()
			if !yield(p.value) {
				return
			}
			p = q
		}
	}
}

// Ascend - call f for each value in [first, last) until it returns false
func (tree *Tree[T]) Ascend(first Iterator[T], last Iterator[T], f func(T) bool) {
	for it := first; !it.Equal(last) && !it.IsEnd(); it = it.Next() {
		if !f(it.node.value) {
			return
		}
	}
}
