// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Find - iterator to the node equivalent to value, or End
func (tree *Tree[T]) Find(value T) Iterator[T] {
	it, _ := tree.Search(value)
	return it
}

// Search - find a specific item and its position in sorted order
//
// returns End and -1 if the value is not present
func (tree *Tree[T]) Search(value T) (Iterator[T], int) {
	index := 0
	p := tree.h.root
	for nil != p {
		switch {
		case tree.less(value, p.value):
			p = p.left
		case tree.less(p.value, value):
			index += p.left.safeCount() + 1
			p = p.right
		default:
			return Iterator[T]{h: tree.h, node: p}, index + p.left.safeCount()
		}
	}
	return tree.End(), -1
}

// Contains - true if an equivalent value is present
func (tree *Tree[T]) Contains(value T) bool {
	return !tree.Find(value).IsEnd()
}

// LowerBound - first node that does not order before value, or End
func (tree *Tree[T]) LowerBound(value T) Iterator[T] {
	var best *Node[T]
	p := tree.h.root
	for nil != p {
		switch {
		case tree.less(p.value, value):
			p = p.right
		case tree.less(value, p.value):
			best = p
			p = p.left
		default:
			return Iterator[T]{h: tree.h, node: p}
		}
	}
	return Iterator[T]{h: tree.h, node: best}
}

// UpperBound - first node that orders strictly after value, or End
func (tree *Tree[T]) UpperBound(value T) Iterator[T] {
	var best *Node[T]
	p := tree.h.root
	for nil != p {
		if tree.less(value, p.value) {
			best = p
			p = p.left
		} else {
			p = p.right
		}
	}
	return Iterator[T]{h: tree.h, node: best}
}

// EqualRange - LowerBound and UpperBound of value
func (tree *Tree[T]) EqualRange(value T) (Iterator[T], Iterator[T]) {
	return tree.LowerBound(value), tree.UpperBound(value)
}

// Get - iterator to the node at a position in sorted order
//
// returns End if the index is out of range
func (tree *Tree[T]) Get(index int) Iterator[T] {
	if index < 0 || index >= tree.h.count {
		return tree.End()
	}
	p := tree.h.root
	for nil != p {
		nl := p.left.safeCount()
		switch {
		case index < nl:
			p = p.left
		case index > nl:
			index -= nl + 1 // left nodes + this node
			p = p.right
		default:
			return Iterator[T]{h: tree.h, node: p}
		}
	}
	panic("corrupt avl count")
}

// Rank - position of an iterator in sorted order, Len() for End
func (tree *Tree[T]) Rank(it Iterator[T]) int {
	p := it.node
	if nil == p {
		return tree.h.count
	}
	index := p.left.safeCount()
	for nil != p.up {
		if p.up.right == p {
			index += p.up.left.safeCount() + 1
		}
		p = p.up
	}
	return index
}
