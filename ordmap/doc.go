// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ordmap - an ordered key to value map
//
// The map stores Entry values in an avl.Tree whose ordering compares
// only the keys.  Keys are unique; inserting an existing key leaves
// the stored value unchanged and returns an iterator to it.
//
// A Map is not safe for concurrent use.
package ordmap
