// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// LessFunc - strict weak ordering of tree values
type LessFunc[T any] func(a T, b T) bool

// the part of a tree that iterators refer to, kept separate so that
// Swap leaves existing iterators attached to their nodes
type header[T any] struct {
	root  *Node[T]
	count int
}

// Tree - type to hold the root node of a tree
type Tree[T any] struct {
	h     *header[T]
	less  LessFunc[T]
	alloc Allocator[T]
}

// New - create an initially empty tree that allocates from the heap
func New[T any](less LessFunc[T]) *Tree[T] {
	return NewWithAllocator[T](less, HeapAllocator[T]{})
}

// NewWithAllocator - create an initially empty tree using the given
// node allocator
func NewWithAllocator[T any](less LessFunc[T], alloc Allocator[T]) *Tree[T] {
	if nil == less {
		panic("avl: nil less function")
	}
	if nil == alloc {
		alloc = HeapAllocator[T]{}
	}
	return &Tree[T]{
		h:     &header[T]{},
		less:  less,
		alloc: alloc,
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree[T]) IsEmpty() bool {
	return nil == tree.h.root
}

// Len - number of nodes currently in the tree
func (tree *Tree[T]) Len() int {
	return tree.h.count
}

// Root - return the root node of the tree
func (tree *Tree[T]) Root() *Node[T] {
	return tree.h.root
}

// Height - height of the tree, zero when empty
func (tree *Tree[T]) Height() int {
	return tree.h.root.safeHeight()
}

// Less - the ordering used by the tree
func (tree *Tree[T]) Less() LessFunc[T] {
	return tree.less
}

// Allocator - the node allocator used by the tree
func (tree *Tree[T]) Allocator() Allocator[T] {
	return tree.alloc
}

// Clear - remove every node, returning each to the allocator
//
// all iterators into the tree are invalidated
func (tree *Tree[T]) Clear() {
	stack := make([]*Node[T], 0, 2*tree.Height()+1)
	if nil != tree.h.root {
		stack = append(stack, tree.h.root)
	}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if nil != p.left {
			stack = append(stack, p.left)
		}
		if nil != p.right {
			stack = append(stack, p.right)
		}
		tree.alloc.Free(p)
	}
	tree.h.root = nil
	tree.h.count = 0
}

// Clone - copy every value into a new tree with the same ordering and
// allocator
//
// values are inserted one at a time in ascending order, so the copy is
// balanced independently of the source shape.  On an allocation error
// the partial copy is released and the error returned.
func (tree *Tree[T]) Clone() (*Tree[T], error) {
	other := NewWithAllocator[T](tree.less, tree.alloc)
	for p := tree.h.root.first(); nil != p; p = p.next() {
		if _, _, err := other.Insert(p.value); nil != err {
			other.Clear()
			return nil, err
		}
	}
	return other, nil
}

// Swap - exchange the contents of two trees
//
// iterators keep referring to the same nodes, which now belong to the
// other tree
func (tree *Tree[T]) Swap(other *Tree[T]) {
	*tree, *other = *other, *tree
}
