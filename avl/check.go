// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"

	"github.com/bitmark-inc/ordmap/fault"
)

// CheckUp - check the up pointers for consistency
func (tree *Tree[T]) CheckUp() bool {
	return checkup(tree.h.root, nil)
}

// internal: consistency checker
func checkup[T any](p *Node[T], up *Node[T]) bool {
	if nil == p {
		return true
	}
	if p.up != up {
		return false
	}
	if !checkup(p.left, p) {
		return false
	}
	return checkup(p.right, p)
}

// Check - verify every structural invariant of the tree
//
// parent links, strictly increasing order, heights, balance factors
// in {-1, 0, +1} and sub-tree counts are all examined; the first
// violation is returned wrapped with the offending value
func (tree *Tree[T]) Check() error {
	if nil != tree.h.root && nil != tree.h.root.up {
		return fault.ErrCorruptParent
	}

	c := checker[T]{less: tree.less}
	n, err := c.walk(tree.h.root, nil)
	if nil != err {
		return err
	}
	if n != tree.h.count {
		return fmt.Errorf("%w: tree count: %d  reachable: %d", fault.ErrCorruptCount, tree.h.count, n)
	}
	return nil
}

type checker[T any] struct {
	less     LessFunc[T]
	previous *Node[T]
}

// in-order walk returning the number of nodes in the sub-tree
func (c *checker[T]) walk(p *Node[T], up *Node[T]) (int, error) {
	if nil == p {
		return 0, nil
	}
	if p.up != up {
		return 0, fmt.Errorf("%w: at: %v", fault.ErrCorruptParent, p.value)
	}

	nl, err := c.walk(p.left, p)
	if nil != err {
		return 0, err
	}

	if nil != c.previous && !c.less(c.previous.value, p.value) {
		return 0, fmt.Errorf("%w: %v is not before %v", fault.ErrCorruptOrder, c.previous.value, p.value)
	}
	c.previous = p

	nr, err := c.walk(p.right, p)
	if nil != err {
		return 0, err
	}

	lh, rh := p.left.safeHeight(), p.right.safeHeight()
	h := 1 + lh
	if rh > lh {
		h = 1 + rh
	}
	if p.height != h {
		return 0, fmt.Errorf("%w: at: %v  stored: %d  actual: %d", fault.ErrCorruptHeight, p.value, p.height, h)
	}
	if b := rh - lh; b < -1 || b > 1 {
		return 0, fmt.Errorf("%w: at: %v  balance: %+d", fault.ErrCorruptBalance, p.value, b)
	}
	if p.count != 1+nl+nr {
		return 0, fmt.Errorf("%w: at: %v  stored: %d  actual: %d", fault.ErrCorruptCount, p.value, p.count, 1+nl+nr)
	}
	return 1 + nl + nr, nil
}
