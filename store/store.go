// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package store

import (
	"github.com/bitmark-inc/ordmap/avl"
)

// maximum sizes accepted by Put
const (
	MaximumKeyLength   = 1024
	MaximumValueLength = 65536
)

// Entry - a key and its value
type Entry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Statistics - current state of a store
type Statistics struct {
	Entries int                `json:"entries"`
	Height  int                `json:"height"`
	Limit   int                `json:"limit"`
	Pool    avl.PoolStatistics `json:"pool"`
}

//go:generate mockgen -source=store.go -destination=mocks/store.go -package=mocks

// Store - operations on an ordered string store
type Store interface {
	Put(key string, value string) (bool, error)
	Get(key string) (string, error)
	Delete(key string) bool
	Range(start string, count int, inclusive bool) ([]Entry, string, bool)
	Bounds(key string) (*Entry, *Entry)
	Len() int
	Statistics() Statistics
}
