// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package maps_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/ordmap/fault"
	"github.com/bitmark-inc/ordmap/fixtures"
	"github.com/bitmark-inc/ordmap/rpc/maps"
	"github.com/bitmark-inc/ordmap/store"
	"github.com/bitmark-inc/ordmap/store/mocks"
)

func setup(t *testing.T) (*gomock.Controller, *mocks.MockStore, *maps.Map) {
	fixtures.SetupTestLogger()

	ctl := gomock.NewController(t)
	s := mocks.NewMockStore(ctl)
	m := maps.New(logger.New(fixtures.LogCategory), s)

	return ctl, s, m
}

func teardown(ctl *gomock.Controller) {
	ctl.Finish()
	fixtures.TeardownTestLogger()
}

func TestMapPut(t *testing.T) {
	ctl, s, m := setup(t)
	defer teardown(ctl)

	s.EXPECT().Put("apple", "red").Return(true, nil).Times(1)
	s.EXPECT().Put("apple", "green").Return(false, nil).Times(1)

	var reply maps.PutReply
	err := m.Put(&maps.PutArguments{Key: "apple", Value: "red"}, &reply)
	assert.Nil(t, err, "wrong Put")
	assert.True(t, reply.Inserted, "wrong inserted")

	err = m.Put(&maps.PutArguments{Key: "apple", Value: "green"}, &reply)
	assert.Nil(t, err, "wrong Put")
	assert.False(t, reply.Inserted, "wrong inserted")
}

func TestMapPutErrors(t *testing.T) {
	ctl, s, m := setup(t)
	defer teardown(ctl)

	s.EXPECT().Put("pear", gomock.Any()).Return(false, fault.ErrValueTooLong).Times(1)

	var reply maps.PutReply
	err := m.Put(&maps.PutArguments{Key: "", Value: "x"}, &reply)
	assert.Equal(t, fault.ErrMissingParameters, err, "wrong empty key error")

	err = m.Put(&maps.PutArguments{Key: "pear", Value: "big"}, &reply)
	assert.Equal(t, fault.ErrValueTooLong, err, "wrong store error")
	assert.False(t, reply.Inserted, "wrong inserted")
}

func TestMapGet(t *testing.T) {
	ctl, s, m := setup(t)
	defer teardown(ctl)

	s.EXPECT().Get("apple").Return("red", nil).Times(1)
	s.EXPECT().Get("kiwi").Return("", fault.ErrKeyNotFound).Times(1)

	var reply maps.GetReply
	err := m.Get(&maps.KeyArguments{Key: "apple"}, &reply)
	assert.Nil(t, err, "wrong Get")
	assert.Equal(t, maps.GetReply{Key: "apple", Value: "red"}, reply, "wrong reply")

	err = m.Get(&maps.KeyArguments{Key: "kiwi"}, &maps.GetReply{})
	assert.Equal(t, fault.ErrKeyNotFound, err, "wrong missing key error")
}

func TestMapDelete(t *testing.T) {
	ctl, s, m := setup(t)
	defer teardown(ctl)

	gomock.InOrder(
		s.EXPECT().Delete("apple").Return(true),
		s.EXPECT().Delete("apple").Return(false),
	)

	var reply maps.DeleteReply
	err := m.Delete(&maps.KeyArguments{Key: "apple"}, &reply)
	assert.Nil(t, err, "wrong Delete")
	assert.True(t, reply.Deleted, "wrong first delete")

	err = m.Delete(&maps.KeyArguments{Key: "apple"}, &reply)
	assert.Nil(t, err, "wrong Delete")
	assert.False(t, reply.Deleted, "wrong second delete")
}

func TestMapRange(t *testing.T) {
	ctl, s, m := setup(t)
	defer teardown(ctl)

	entries := []store.Entry{
		{Key: "b", Value: "2"},
		{Key: "c", Value: "3"},
	}
	s.EXPECT().Range("a", 2, false).Return(entries, "c", true).Times(1)

	var reply maps.RangeReply
	err := m.Range(&maps.RangeArguments{Start: "a", Count: 2}, &reply)
	assert.Nil(t, err, "wrong Range")
	assert.Equal(t, entries, reply.Entries, "wrong entries")
	assert.Equal(t, "c", reply.Next, "wrong next")
	assert.True(t, reply.More, "wrong more")
}

func TestMapRangeInvalidCount(t *testing.T) {
	ctl, _, m := setup(t)
	defer teardown(ctl)

	var reply maps.RangeReply
	err := m.Range(&maps.RangeArguments{Start: "a", Count: 0}, &reply)
	assert.Equal(t, fault.ErrInvalidCount, err, "wrong zero count error")

	err = m.Range(&maps.RangeArguments{Start: "a", Count: maps.MaximumRangeCount + 1}, &reply)
	assert.Equal(t, fault.ErrInvalidCount, err, "wrong large count error")
}

func TestMapBounds(t *testing.T) {
	ctl, s, m := setup(t)
	defer teardown(ctl)

	lower := &store.Entry{Key: "c", Value: "3"}
	s.EXPECT().Bounds("bb").Return(lower, lower).Times(1)
	s.EXPECT().Bounds("z").Return(nil, nil).Times(1)

	var reply maps.BoundsReply
	err := m.Bounds(&maps.KeyArguments{Key: "bb"}, &reply)
	assert.Nil(t, err, "wrong Bounds")
	assert.Equal(t, lower, reply.Lower, "wrong lower")
	assert.Equal(t, lower, reply.Upper, "wrong upper")

	reply = maps.BoundsReply{}
	err = m.Bounds(&maps.KeyArguments{Key: "z"}, &reply)
	assert.Nil(t, err, "wrong Bounds")
	assert.Nil(t, reply.Lower, "wrong lower")
	assert.Nil(t, reply.Upper, "wrong upper")
}
