// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - insert a new value into the tree
//
// if an equivalent value is already present the tree is unchanged and
// the iterator refers to the existing node with inserted == false.  An
// error is only returned when the allocator fails, in which case the
// tree is exactly as it was before the call.
func (tree *Tree[T]) Insert(value T) (it Iterator[T], inserted bool, err error) {
	var parent *Node[T]
	isLeft := false
	p := tree.h.root
	for nil != p {
		switch {
		case tree.less(value, p.value):
			parent, isLeft, p = p, true, p.left
		case tree.less(p.value, value):
			parent, isLeft, p = p, false, p.right
		default:
			return Iterator[T]{h: tree.h, node: p}, false, nil
		}
	}

	n, err := tree.link(parent, isLeft, value)
	if nil != err {
		return tree.End(), false, err
	}
	return Iterator[T]{h: tree.h, node: n}, true, nil
}

// InsertHint - insert a value using an iterator to the element that is
// expected to follow it
//
// when the hint is correct the search is skipped; otherwise this is
// the same as Insert
func (tree *Tree[T]) InsertHint(hint Iterator[T], value T) (Iterator[T], bool, error) {
	if hint.h != tree.h || (nil != hint.node && hint.node.detached()) {
		return tree.Insert(value)
	}

	// find the neighbours on either side of the hint position
	after := hint.node
	var before *Node[T]
	if nil == after {
		before = tree.h.root.last()
	} else {
		if !tree.less(value, after.value) {
			return tree.Insert(value)
		}
		before = after.prev()
	}
	if nil != before && !tree.less(before.value, value) {
		return tree.Insert(value)
	}

	// before < value < after so the new node becomes either the left
	// child of after or the right child of before; exactly one of
	// these slots must be empty
	var (
		n   *Node[T]
		err error
	)
	switch {
	case nil == before && nil == after:
		n, err = tree.link(nil, false, value)
	case nil != after && nil == after.left:
		n, err = tree.link(after, true, value)
	default:
		n, err = tree.link(before, false, value)
	}
	if nil != err {
		return tree.End(), false, err
	}
	return Iterator[T]{h: tree.h, node: n}, true, nil
}

// link - allocate a node and attach it below parent, the commit point
// is after the allocation has succeeded
func (tree *Tree[T]) link(parent *Node[T], isLeft bool, value T) (*Node[T], error) {
	n, err := tree.alloc.Allocate(value)
	if nil != err {
		return nil, err
	}
	n.left = nil
	n.right = nil
	n.up = parent
	n.height = 1
	n.count = 1

	switch {
	case nil == parent:
		tree.h.root = n
	case isLeft:
		parent.left = n
	default:
		parent.right = n
	}
	tree.h.count += 1
	tree.rebalanceUp(parent)
	return n, nil
}
