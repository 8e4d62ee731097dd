// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package listeners - network listeners that feed the RPC server
package listeners

// Listener - something that accepts connections in the background
type Listener interface {
	Serve() error
	Close() error
}
