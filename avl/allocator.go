// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"sync"

	"github.com/bitmark-inc/ordmap/counter"
	"github.com/bitmark-inc/ordmap/fault"
)

// Allocator - source of tree nodes
//
// Allocate must return a node holding value with no links, or an
// error; the tree is not modified when an error is returned.  Free is
// called exactly once for each node the tree no longer uses.
type Allocator[T any] interface {
	Allocate(value T) (*Node[T], error)
	Free(node *Node[T])
}

// HeapAllocator - allocate every node from the Go heap
type HeapAllocator[T any] struct{}

// Allocate - create a new node
func (HeapAllocator[T]) Allocate(value T) (*Node[T], error) {
	return &Node[T]{
		value:  value,
		height: 1,
		count:  1,
	}, nil
}

// Free - detach the node so stale iterators can detect it
func (HeapAllocator[T]) Free(node *Node[T]) {
	clearNode(node)
}

// PoolStatistics - snapshot of pool usage
type PoolStatistics struct {
	Total uint64 `json:"total"` // nodes created by the pool
	Free  uint64 `json:"free"`  // reclaimed nodes waiting for reuse
	InUse uint64 `json:"inUse"` // nodes currently linked into trees
}

// Pool - allocator that keeps reclaimed nodes in a free list
//
// A pool may be shared by several trees; it is safe for concurrent use
// even though the trees themselves are not.
type Pool[T any] struct {
	sync.Mutex
	pool  *Node[T]        // linked list of reclaimed nodes, via up
	limit uint64          // maximum nodes to create, zero = unlimited
	total counter.Counter // total nodes created
	free  counter.Counter // number of nodes in the pool
}

// NewPool - create a pool, limit is the maximum number of nodes that
// may exist at once (zero for no limit)
func NewPool[T any](limit int) (*Pool[T], error) {
	if limit < 0 {
		return nil, fault.ErrInvalidPoolSize
	}
	return &Pool[T]{
		limit: uint64(limit),
	}, nil
}

// Allocate - get a node, reuses reclaimed nodes if any are available
func (m *Pool[T]) Allocate(value T) (*Node[T], error) {
	m.Lock()
	defer m.Unlock()

	if nil == m.pool {
		if !m.free.IsZero() {
			panic("pool corrupt")
		}
		if 0 != m.limit && m.total.Uint64() >= m.limit {
			return nil, fault.ErrPoolExhausted
		}
		m.total.Increment()
		return &Node[T]{
			value:  value,
			height: 1,
			count:  1,
		}, nil
	}

	p := m.pool
	m.pool = p.up
	p.up = nil // ensure freelist pointer is cleared
	p.value = value
	p.height = 1
	p.count = 1
	m.free.Decrement()
	return p, nil
}

// Free - reclaim a node and keep it in the pool
func (m *Pool[T]) Free(node *Node[T]) {
	clearNode(node)

	m.Lock()
	node.up = m.pool // use as free list pointer
	m.pool = node
	m.free.Increment()
	m.Unlock()
}

// Limit - maximum number of nodes, zero if unlimited
func (m *Pool[T]) Limit() int {
	return int(m.limit)
}

// Statistics - current usage of the pool
func (m *Pool[T]) Statistics() PoolStatistics {
	m.Lock()
	defer m.Unlock()

	total := m.total.Uint64()
	free := m.free.Uint64()
	return PoolStatistics{
		Total: total,
		Free:  free,
		InUse: total - free,
	}
}

// Drain - release all reclaimed nodes to the garbage collector
func (m *Pool[T]) Drain() int {
	m.Lock()
	defer m.Unlock()

	n := 0
	for p := m.pool; nil != p; {
		q := p.up
		p.up = nil
		p = q
		n += 1
	}
	m.pool = nil
	m.free.Reset()
	m.total.Add(-uint64(n)) // wraps: subtracts n
	return n
}

// internal: drop links and value, mark as not in a tree
func clearNode[T any](node *Node[T]) {
	var zero T
	node.left = nil
	node.right = nil
	node.up = nil
	node.value = zero
	node.height = 0
	node.count = 0
}
