// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Node - a node in the tree
type Node[T any] struct {
	left   *Node[T] // left sub-tree
	right  *Node[T] // right sub-tree
	up     *Node[T] // points to parent node
	value  T        // the stored item
	height int      // height of this sub-tree, leaf = 1, 0 = not in a tree
	count  int      // number of nodes in this sub-tree
}

// Value - read the value from a node
func (p *Node[T]) Value() T {
	return p.value
}

// Parent - return parent node of a node
func (p *Node[T]) Parent() *Node[T] {
	return p.up
}

// Left - return the left child of a node
func (p *Node[T]) Left() *Node[T] {
	return p.left
}

// Right - return the right child of a node
func (p *Node[T]) Right() *Node[T] {
	return p.right
}

// Height - height of the sub-tree rooted at this node
func (p *Node[T]) Height() int {
	return p.safeHeight()
}

// Depth - get the depth of a node, the root is at depth zero
func (p *Node[T]) Depth() uint {
	count := uint(0)
	parent := p.up
	for parent != nil {
		count += 1
		parent = parent.up
	}
	return count
}

// internal: height that treats an absent child as zero
func (p *Node[T]) safeHeight() int {
	if nil == p {
		return 0
	}
	return p.height
}

// internal: count that treats an absent child as zero
func (p *Node[T]) safeCount() int {
	if nil == p {
		return 0
	}
	return p.count
}

// internal: height(right) - height(left)
func (p *Node[T]) balance() int {
	return p.right.safeHeight() - p.left.safeHeight()
}

// internal: recompute height and count from the children
func (p *Node[T]) update() {
	lh, rh := p.left.safeHeight(), p.right.safeHeight()
	if lh > rh {
		p.height = 1 + lh
	} else {
		p.height = 1 + rh
	}
	p.count = 1 + p.left.safeCount() + p.right.safeCount()
}

// internal: a node that has been returned to its allocator
func (p *Node[T]) detached() bool {
	return 0 == p.height
}

func (p *Node[T]) setLeft(q *Node[T]) {
	p.left = q
	if nil != q {
		q.up = p
	}
}

func (p *Node[T]) setRight(q *Node[T]) {
	p.right = q
	if nil != q {
		q.up = p
	}
}

// internal: lowest node in a sub-tree
func (p *Node[T]) first() *Node[T] {
	if nil == p {
		return nil
	}
	for nil != p.left {
		p = p.left
	}
	return p
}

// internal: highest node in a sub-tree
func (p *Node[T]) last() *Node[T] {
	if nil == p {
		return nil
	}
	for nil != p.right {
		p = p.right
	}
	return p
}

// internal: in-order successor or nil after the highest node
func (p *Node[T]) next() *Node[T] {
	if nil != p.right {
		return p.right.first()
	}
	for nil != p.up && p.up.right == p {
		p = p.up
	}
	return p.up
}

// internal: in-order predecessor or nil before the lowest node
func (p *Node[T]) prev() *Node[T] {
	if nil != p.left {
		return p.left.last()
	}
	for nil != p.up && p.up.left == p {
		p = p.up
	}
	return p.up
}

// GetChildrenByDepth - returns all nodes at a specific depth below this
// node, depth zero is the node itself
func (p *Node[T]) GetChildrenByDepth(depth uint) []*Node[T] {
	if 0 == depth {
		return []*Node[T]{p}
	}
	nodes := []*Node[T]{}
	if nil != p.left {
		nodes = append(nodes, p.left.GetChildrenByDepth(depth-1)...)
	}
	if nil != p.right {
		nodes = append(nodes, p.right.GetChildrenByDepth(depth-1)...)
	}
	return nodes
}
