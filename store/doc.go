// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package store - thread safe ordered string store
//
// the daemon keeps all entries in a single ordered map guarded by a
// read/write lock; nodes come from a bounded pool so the maximum
// number of entries is fixed by configuration
package store
