// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"io"
	"strings"
)

// to control the print routine
type branch int

const (
	root  branch = iota
	left  branch = iota
	right branch = iota
)

// Print - display an ASCII graphic representation of the tree
//
// the highest values are at the top; returns the depth of the tree
func (tree *Tree[T]) Print(w io.Writer, printData bool) int {
	return printTree(w, tree.h.root, "", root, printData)
}

// internal print - returns the maximum depth of the tree
func printTree[T any](w io.Writer, tree *Node[T], prefix string, br branch, printData bool) int {
	if nil == tree {
		return 0
	}
	rd := 0
	ld := 0
	if nil != tree.right {
		t := "       "
		if left == br {
			t = "|      "
		}
		rd = printTree(w, tree.right, prefix+t, right, printData)
	}
	switch br {
	case root:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case left:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case right:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	up := interface{}(nil)
	if nil != tree.up {
		up = tree.up.value
	}
	if printData {
		fmt.Fprintf(w, "%v ^%v %+2d/h%d/n%d\n", tree.value, up, tree.balance(), tree.height, tree.count)
	} else {
		fmt.Fprintf(w, "%v\n", tree.value)
	}
	if nil != tree.left {
		t := "       "
		if right == br {
			t = "|      "
		}
		ld = printTree(w, tree.left, prefix+t, left, printData)
	}
	if rd > ld {
		return 1 + rd
	}
	return 1 + ld
}

// Dump - write the values in ascending order, one per line, indented
// by the depth of their node
func (tree *Tree[T]) Dump(w io.Writer) {
	for p := tree.h.root.first(); nil != p; p = p.next() {
		fmt.Fprintf(w, "%s%v\n", strings.Repeat("  ", int(p.Depth())), p.value)
	}
}
