// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"bytes"
	"errors"
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/ordmap/avl"
	"github.com/bitmark-inc/ordmap/fault"
)

func intLess(a int, b int) bool {
	return a < b
}

func floatLess(a float64, b float64) bool {
	return a < b
}

func intTree(t *testing.T, values ...int) *avl.Tree[int] {
	tree := avl.New(intLess)
	for _, v := range values {
		_, inserted, err := tree.Insert(v)
		require.NoError(t, err)
		require.True(t, inserted, "insert: %d", v)
	}
	require.NoError(t, tree.Check())
	return tree
}

func TestInsertEraseScenario(t *testing.T) {
	tree := intTree(t, 5, 3, 8, 1, 4, 7, 9, 2, 6)

	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9}, slices.Collect(tree.All()))
	assert.LessOrEqual(t, tree.Height(), 4, "height")
	assert.Equal(t, 9, tree.Len())

	it := tree.Find(5)
	require.False(t, it.IsEnd())
	require.NotNil(t, it.Node().Left(), "5 should have two children")
	require.NotNil(t, it.Node().Right(), "5 should have two children")

	next, err := tree.Erase(it)
	require.NoError(t, err)
	assert.Equal(t, 6, next.Value(), "erase returns following node")
	require.NoError(t, tree.Check())
	assert.Equal(t, []int{1, 2, 3, 4, 6, 7, 8, 9}, slices.Collect(tree.All()))
	assert.Equal(t, 8, tree.Len())
}

func TestBounds(t *testing.T) {
	ftree := avl.New(floatLess)
	for _, v := range []float64{1, 2, 3, 4, 6, 7, 8, 9} {
		_, _, err := ftree.Insert(v)
		require.NoError(t, err)
	}

	assert.Equal(t, 6.0, ftree.LowerBound(4.5).Value(), "lower bound 4.5")
	assert.Equal(t, 6.0, ftree.UpperBound(4).Value(), "upper bound 4")
	assert.Equal(t, 4.0, ftree.LowerBound(4).Value(), "lower bound 4")
	assert.Equal(t, 1.0, ftree.LowerBound(-10).Value(), "lower bound below")
	assert.True(t, ftree.LowerBound(10).IsEnd(), "lower bound above")
	assert.True(t, ftree.UpperBound(9).IsEnd(), "upper bound of highest")

	lo, hi := ftree.EqualRange(7)
	assert.Equal(t, 7.0, lo.Value())
	assert.Equal(t, 8.0, hi.Value())

	lo, hi = ftree.EqualRange(5)
	assert.True(t, lo.Equal(hi), "absent value gives empty range")

	empty := avl.New(intLess)
	assert.True(t, empty.LowerBound(1).IsEnd())
	assert.True(t, empty.UpperBound(1).IsEnd())
}

func TestIterators(t *testing.T) {
	tree := intTree(t, 10, 20, 30, 40)

	assert.Equal(t, 40, tree.End().Prev().Value(), "prev of end")
	assert.Equal(t, 10, tree.Begin().Value())
	assert.True(t, tree.Last().Next().IsEnd(), "next of last")
	assert.True(t, tree.Begin().Equal(tree.First()))
	assert.True(t, tree.End().Equal(tree.End()))
	assert.False(t, tree.End().Equal(tree.First()))

	// every step forward can be undone
	for it := tree.First(); !it.IsEnd(); it = it.Next() {
		if !it.Next().IsEnd() {
			assert.True(t, it.Equal(it.Next().Prev()))
		}
	}

	v, ok := tree.First().Get()
	assert.True(t, ok)
	assert.Equal(t, 10, v)
	_, ok = tree.End().Get()
	assert.False(t, ok)

	assert.Equal(t, []int{40, 30, 20, 10}, slices.Collect(tree.Backward()))

	values := []int{}
	for r := tree.RBegin(); !r.Equal(tree.REnd()); r = r.Next() {
		values = append(values, r.Value())
	}
	assert.Equal(t, []int{40, 30, 20, 10}, values)
	assert.True(t, tree.RBegin().Base().IsEnd())
	assert.Equal(t, 40, tree.REnd().Prev().Prev().Prev().Prev().Value())
	assert.True(t, tree.REnd().IsEnd())

	values = values[:0]
	tree.Ascend(tree.Find(20), tree.End(), func(v int) bool {
		values = append(values, v)
		return v < 30
	})
	assert.Equal(t, []int{20, 30}, values, "ascend stops when f returns false")
}

func TestIteratorPanics(t *testing.T) {
	tree := intTree(t, 1, 2, 3)
	empty := avl.New(intLess)

	assert.PanicsWithValue(t, fault.ErrInvalidIterator, func() { tree.End().Value() })
	assert.PanicsWithValue(t, fault.ErrInvalidIterator, func() { tree.End().Next() })
	assert.PanicsWithValue(t, fault.ErrInvalidIterator, func() { tree.First().Prev() })
	assert.PanicsWithValue(t, fault.ErrInvalidIterator, func() { empty.End().Prev() })
	assert.PanicsWithValue(t, fault.ErrInvalidIterator, func() { tree.REnd().Next() })

	stale := tree.Find(2)
	_, err := tree.Erase(stale)
	require.NoError(t, err)
	assert.PanicsWithValue(t, fault.ErrInvalidIterator, func() { stale.Value() })
	assert.PanicsWithValue(t, fault.ErrInvalidIterator, func() { stale.Next() })

	_, err = tree.Erase(stale)
	assert.ErrorIs(t, err, fault.ErrInvalidIterator, "erase of erased node")
	_, err = tree.Erase(tree.End())
	assert.ErrorIs(t, err, fault.ErrInvalidIterator, "erase of end")
}

func TestEraseOtherTree(t *testing.T) {
	a := intTree(t, 1, 2)
	b := intTree(t, 1, 2)

	_, err := a.Erase(b.First())
	assert.ErrorIs(t, err, fault.ErrWrongIteratorOwner)
	assert.Equal(t, 2, b.Len())
}

func TestIteratorsSurviveOtherErase(t *testing.T) {
	tree := intTree(t, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10)

	kept := map[int]avl.Iterator[int]{}
	for it := tree.First(); !it.IsEnd(); it = it.Next() {
		kept[it.Value()] = it
	}

	for _, v := range []int{4, 8, 1, 6} {
		require.Equal(t, 1, tree.Delete(v))
		delete(kept, v)
		require.NoError(t, tree.Check())
		for k, it := range kept {
			assert.Equal(t, k, it.Value(), "iterator moved after erasing %d", v)
		}
	}
}

func TestEraseRange(t *testing.T) {
	tree := intTree(t, 1, 2, 3, 4, 5, 6, 7, 8)

	last, err := tree.EraseRange(tree.Find(3), tree.Find(7))
	require.NoError(t, err)
	assert.Equal(t, 7, last.Value())
	assert.Equal(t, []int{1, 2, 7, 8}, slices.Collect(tree.All()))
	require.NoError(t, tree.Check())

	last, err = tree.EraseRange(tree.Find(2), tree.Find(2))
	require.NoError(t, err)
	assert.Equal(t, 2, last.Value(), "empty range")
	assert.Equal(t, 4, tree.Len())

	last, err = tree.EraseRange(tree.Begin(), tree.End())
	require.NoError(t, err)
	assert.True(t, last.IsEnd())
	assert.True(t, tree.IsEmpty())

	// reversed range leaves the tree unchanged
	tree = intTree(t, 1, 2, 3, 4, 5, 6)
	_, err = tree.EraseRange(tree.Find(4), tree.Find(2))
	assert.ErrorIs(t, err, fault.ErrInvalidIterator)
	assert.Equal(t, 6, tree.Len())
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, slices.Collect(tree.All()))

	_, err = tree.EraseRange(tree.End(), tree.Find(1))
	assert.ErrorIs(t, err, fault.ErrInvalidIterator)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, slices.Collect(tree.All()))

	// erased iterator
	stale := tree.Find(3)
	assert.Equal(t, 1, tree.Delete(3))
	_, err = tree.EraseRange(stale, tree.End())
	assert.ErrorIs(t, err, fault.ErrInvalidIterator)
	assert.Equal(t, []int{1, 2, 4, 5, 6}, slices.Collect(tree.All()))
	require.NoError(t, tree.Check())
}

func TestInsertHint(t *testing.T) {
	tree := intTree(t, 10, 20, 30)

	// correct hint
	it, inserted, err := tree.InsertHint(tree.Find(20), 15)
	require.NoError(t, err)
	assert.True(t, inserted)
	assert.Equal(t, 15, it.Value())

	// hint at end for an ascending sequence
	for v := 31; v < 100; v += 1 {
		_, inserted, err := tree.InsertHint(tree.End(), v)
		require.NoError(t, err)
		require.True(t, inserted)
		require.NoError(t, tree.Check())
	}

	// wrong hint falls back to a full search
	it, inserted, err = tree.InsertHint(tree.Find(10), 25)
	require.NoError(t, err)
	assert.True(t, inserted)
	assert.Equal(t, 25, it.Value())

	// duplicate through a hint
	it, inserted, err = tree.InsertHint(tree.Find(30), 20)
	require.NoError(t, err)
	assert.False(t, inserted)
	assert.True(t, it.Equal(tree.Find(20)))

	// hint from another tree
	other := intTree(t, 1)
	_, inserted, err = tree.InsertHint(other.First(), 5)
	require.NoError(t, err)
	assert.True(t, inserted)

	require.NoError(t, tree.Check())
	assert.Equal(t, 5, tree.First().Value())
	assert.Equal(t, 99, tree.Last().Value())
	assert.Equal(t, 75, tree.Len())
}

func TestCloneAndSwap(t *testing.T) {
	a := intTree(t, 1, 2, 3)
	b := intTree(t, 7, 8)

	c, err := a.Clone()
	require.NoError(t, err)
	require.NoError(t, c.Check())
	assert.Equal(t, slices.Collect(a.All()), slices.Collect(c.All()))

	c.Delete(2)
	assert.True(t, a.Contains(2), "clone shares nodes")

	held := a.Find(2)
	a.Swap(b)
	assert.Equal(t, []int{7, 8}, slices.Collect(a.All()))
	assert.Equal(t, []int{1, 2, 3}, slices.Collect(b.All()))
	assert.Equal(t, 2, held.Value(), "iterator after swap")

	// the held iterator now belongs to b
	_, err = b.Erase(held)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, slices.Collect(b.All()))
}

func TestClear(t *testing.T) {
	tree := intTree(t, 3, 1, 2)
	it := tree.Find(1)
	tree.Clear()
	assert.True(t, tree.IsEmpty())
	assert.Equal(t, 0, tree.Len())
	assert.Equal(t, 0, tree.Height())
	assert.PanicsWithValue(t, fault.ErrInvalidIterator, func() { it.Value() })
	assert.Empty(t, slices.Collect(tree.All()))

	_, _, err := tree.Insert(4)
	require.NoError(t, err)
	assert.Equal(t, []int{4}, slices.Collect(tree.All()))
}

func TestAllowsEraseDuringRange(t *testing.T) {
	tree := intTree(t, 1, 2, 3, 4, 5, 6)
	for v := range tree.All() {
		if 0 == v%2 {
			tree.Delete(v)
		}
	}
	assert.Equal(t, []int{1, 3, 5}, slices.Collect(tree.All()))
	require.NoError(t, tree.Check())
}

func TestRandomisedInvariants(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	tree := avl.New(intLess)
	shadow := map[int]struct{}{}

	for i := 0; i < 4000; i += 1 {
		v := r.IntN(500)
		if r.IntN(3) == 0 {
			n := tree.Delete(v)
			_, present := shadow[v]
			if present {
				assert.Equal(t, 1, n)
			} else {
				assert.Equal(t, 0, n)
			}
			delete(shadow, v)
		} else {
			_, inserted, err := tree.Insert(v)
			require.NoError(t, err)
			_, present := shadow[v]
			require.Equal(t, !present, inserted)
			shadow[v] = struct{}{}
		}
		if err := tree.Check(); nil != err {
			t.Fatalf("step %d: %s", i, err)
		}
		require.Equal(t, len(shadow), tree.Len())
	}

	expected := make([]int, 0, len(shadow))
	for v := range shadow {
		expected = append(expected, v)
	}
	slices.Sort(expected)
	assert.Equal(t, expected, slices.Collect(tree.All()))
	for i, v := range expected {
		assert.Equal(t, v, tree.Get(i).Value())
	}
}

func TestPrint(t *testing.T) {
	tree := intTree(t, 2, 1, 3)

	var buffer bytes.Buffer
	depth := tree.Print(&buffer, false)
	assert.Equal(t, 2, depth)
	s := buffer.String()
	for _, v := range []string{"1", "2", "3"} {
		assert.Contains(t, s, v)
	}

	buffer.Reset()
	tree.Dump(&buffer)
	lines := strings.Split(strings.TrimSpace(buffer.String()), "\n")
	assert.Len(t, lines, 3)

	buffer.Reset()
	assert.Equal(t, 0, avl.New(intLess).Print(&buffer, true))
	assert.Empty(t, buffer.String())
}

func TestCheckDetectsCorruption(t *testing.T) {
	tree := intTree(t, 1, 2, 3)
	assert.NoError(t, tree.Check())

	// values modified through Pointer may break the ordering
	*tree.First().Pointer() = 5
	err := tree.Check()
	require.Error(t, err)
	assert.True(t, errors.Is(err, fault.ErrCorruptOrder))
	assert.True(t, fault.IsErrRecord(err))
}
