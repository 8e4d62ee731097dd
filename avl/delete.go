// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/ordmap/fault"
)

// Erase - remove the node referenced by an iterator
//
// returns an iterator to the following node, which was captured before
// the node was unlinked.  Only iterators to the erased node become
// invalid.
func (tree *Tree[T]) Erase(it Iterator[T]) (Iterator[T], error) {
	if it.h != tree.h {
		return tree.End(), fault.ErrWrongIteratorOwner
	}
	q := it.node
	if nil == q || q.detached() {
		return tree.End(), fault.ErrInvalidIterator
	}

	next := q.next()
	tree.unlink(q)
	tree.h.count -= 1
	tree.alloc.Free(q)

	return Iterator[T]{h: tree.h, node: next}, nil
}

// EraseRange - remove the nodes in [first, last)
//
// returns last; an invalid range is rejected before any node is
// removed
func (tree *Tree[T]) EraseRange(first Iterator[T], last Iterator[T]) (Iterator[T], error) {
	if first.h != tree.h || last.h != tree.h {
		return tree.End(), fault.ErrWrongIteratorOwner
	}
	if !first.IsEnd() && first.node.detached() || !last.IsEnd() && last.node.detached() {
		return tree.End(), fault.ErrInvalidIterator
	}
	if tree.Rank(first) > tree.Rank(last) {
		return tree.End(), fault.ErrInvalidIterator
	}
	for !first.Equal(last) {
		var err error
		first, err = tree.Erase(first)
		if nil != err {
			return tree.End(), err
		}
	}
	return last, nil
}

// Delete - remove the value equivalent to the given one
//
// returns the number of nodes removed (zero or one)
func (tree *Tree[T]) Delete(value T) int {
	it := tree.Find(value)
	if it.IsEnd() {
		return 0
	}
	if _, err := tree.Erase(it); nil != err {
		panic("avl corrupt: " + err.Error())
	}
	return 1
}

// internal: detach q from the tree and rebalance the modified path
func (tree *Tree[T]) unlink(q *Node[T]) {
	p := q.up
	switch {
	case nil == q.left:
		tree.replaceChild(p, q, q.right)
		tree.rebalanceUp(p)

	case nil == q.right:
		tree.replaceChild(p, q, q.left)
		tree.rebalanceUp(p)

	default:
		// the successor r is the lowest node of the right sub-tree
		// and has no left child; relink r into q's position
		r := q.right.first()
		from := r
		if r.up != q {
			from = r.up
			from.setLeft(r.right)
			r.setRight(q.right)
		}
		r.setLeft(q.left)
		tree.replaceChild(p, q, r)
		tree.rebalanceUp(from)
	}
}
