// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package server - the RPC server and its registered services
package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/ordmap/counter"
	"github.com/bitmark-inc/ordmap/fault"
	"github.com/bitmark-inc/ordmap/rpc/maps"
	"github.com/bitmark-inc/ordmap/rpc/node"
	"github.com/bitmark-inc/ordmap/store"
)

// Create - RPC server offering the Map and Node services
func Create(log *logger.L, version string, rpcCount *counter.Counter, s store.Store) *rpc.Server {
	start := time.Now().UTC()

	server := rpc.NewServer()

	err := server.Register(maps.New(log, s))
	fault.PanicIfError("register Map service", err)
	err = server.Register(node.New(log, start, version, rpcCount, s))
	fault.PanicIfError("register Node service", err)

	return server
}
