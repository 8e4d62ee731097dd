// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package node - RPC information about the running daemon
package node

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/ordmap/avl"
	"github.com/bitmark-inc/ordmap/counter"
	"github.com/bitmark-inc/ordmap/rpc/ratelimit"
	"github.com/bitmark-inc/ordmap/store"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Node - type for RPC calls
type Node struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Start   time.Time
	Version string
	Store   store.Store
	counter *counter.Counter
}

// New - create the Node RPC service
func New(log *logger.L, start time.Time, version string, counter *counter.Counter, s store.Store) *Node {
	return &Node{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitNode, rateBurstNode),
		Start:   start,
		Version: version,
		Store:   s,
		counter: counter,
	}
}

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Version string             `json:"version"`
	Uptime  string             `json:"uptime"`
	RPCs    uint64             `json:"rpcs"`
	PeakRPC uint64             `json:"peakRpcs"` // includes connections rejected at the limit
	Entries int                `json:"entries"`
	Height  int                `json:"height"`
	Limit   int                `json:"limit"`
	Pool    avl.PoolStatistics `json:"pool"`
}

// Info - return some information about this node
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {
	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	stats := node.Store.Statistics()

	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	reply.RPCs = node.counter.Uint64()
	reply.PeakRPC = node.counter.Peak()
	reply.Entries = stats.Entries
	reply.Height = stats.Height
	reply.Limit = stats.Limit
	reply.Pool = stats.Pool
	return nil
}
