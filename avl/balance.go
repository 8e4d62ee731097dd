// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// put x where old was below p (p == nil means the root)
func (tree *Tree[T]) replaceChild(p *Node[T], old *Node[T], x *Node[T]) {
	switch {
	case nil == p:
		if tree.h.root != old {
			panic("corrupt avl")
		}
		tree.h.root = x
		if nil != x {
			x.up = nil
		}
	case p.left == old:
		p.setLeft(x)
	case p.right == old:
		p.setRight(x)
	default:
		panic("corrupt avl")
	}
}

// rebalanceUp - walk from p to the root fixing heights and counts and
// rotating any node whose balance factor has reached ±2
//
// counts change all the way up so the walk always reaches the root
func (tree *Tree[T]) rebalanceUp(p *Node[T]) {
	for nil != p {
		p.update()
		switch p.balance() {
		case -2:
			if p.left.balance() > 0 {
				tree.rotateLeft(p.left) // LR case
			}
			p = tree.rotateRight(p)
		case +2:
			if p.right.balance() < 0 {
				tree.rotateRight(p.right) // RL case
			}
			p = tree.rotateLeft(p)
		}
		p = p.up
	}
}

// rotateRight rotates the sub-tree rooted at node y
// turning (y (x a b) c) into (x a (y b c)) and returns x
func (tree *Tree[T]) rotateRight(y *Node[T]) *Node[T] {
	p := y.up
	x := y.left
	b := x.right

	x.setRight(y)
	y.setLeft(b)
	tree.replaceChild(p, y, x)

	y.update()
	x.update()
	return x
}

// rotateLeft rotates the sub-tree rooted at node x
// turning (x a (y b c)) into (y (x a b) c) and returns y
func (tree *Tree[T]) rotateLeft(x *Node[T]) *Node[T] {
	p := x.up
	y := x.right
	b := y.left

	y.setLeft(x)
	x.setRight(b)
	tree.replaceChild(p, x, y)

	x.update()
	y.update()
	return y
}
