// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree with the addition of parent
// pointers to allow iteration through the nodes
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// The tree holds unique values ordered by a strict weak ordering
// supplied when the tree is created; two values a and b are the same
// when neither less(a, b) nor less(b, a) holds.  Every node records the
// height and the node count of its sub-tree, so in addition to search,
// lower/upper bound and ordered iteration the tree can index a value by
// its position.
//
// Deletion never copies values between nodes: a node with two children
// is replaced by relinking its in-order successor.  Iterators therefore
// identify nodes, and an iterator stays valid until the node it points
// at is erased or the tree is cleared.
//
// Nodes are obtained from an Allocator, one call per node, so a tree
// can be backed by a pool of reclaimed nodes.
package avl
