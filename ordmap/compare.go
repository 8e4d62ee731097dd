// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ordmap

// Equal - true if both maps have equivalent keys in the same order and
// eq reports their values equal
//
// keys are compared with the ordering of a
func Equal[K any, V any](a *Map[K, V], b *Map[K, V], eq func(x V, y V) bool) bool {
	if a.Len() != b.Len() {
		return false
	}
	less := a.keyLess
	i, j := a.tree.First(), b.tree.First()
	for !i.IsEnd() {
		x, y := i.Pointer(), j.Pointer()
		if less(x.Key, y.Key) || less(y.Key, x.Key) || !eq(x.Value, y.Value) {
			return false
		}
		i, j = i.Next(), j.Next()
	}
	return true
}

// Compare - lexicographic comparison of the entries of two maps,
// returns -1, 0 or +1
//
// entries are ordered by key first and then by cmpValue; a map that is
// a prefix of the other is the lesser
func Compare[K any, V any](a *Map[K, V], b *Map[K, V], cmpValue func(x V, y V) int) int {
	less := a.keyLess
	i, j := a.tree.First(), b.tree.First()
	for !i.IsEnd() && !j.IsEnd() {
		x, y := i.Pointer(), j.Pointer()
		switch {
		case less(x.Key, y.Key):
			return -1
		case less(y.Key, x.Key):
			return +1
		}
		if c := cmpValue(x.Value, y.Value); c < 0 {
			return -1
		} else if c > 0 {
			return +1
		}
		i, j = i.Next(), j.Next()
	}
	switch {
	case i.IsEnd() && j.IsEnd():
		return 0
	case i.IsEnd():
		return -1
	default:
		return +1
	}
}
