// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/ordmap/fault"
)

var (
	ErrExistsOne   = fault.ExistsError("exists one ")
	ErrExistsTwo   = fault.ExistsError("exists two")
	ErrInvalidOne  = fault.InvalidError("invalid one")
	ErrInvalidTwo  = fault.InvalidError("invalid two")
	ErrLengthOne   = fault.LengthError("length one")
	ErrLengthTwo   = fault.LengthError("length two")
	ErrNotFoundOne = fault.NotFoundError("not found one")
	ErrNotFoundTwo = fault.NotFoundError("not found two")
	ErrProcessOne  = fault.ProcessError("process one")
	ErrProcessTwo  = fault.ProcessError("process two")
	ErrRecordOne   = fault.RecordError("record one")
	ErrRecordTwo   = fault.RecordError("record two")
)

// test that the various errors can be classified
func TestClasses(t *testing.T) {
	errorList := []struct {
		err      error
		exists   bool
		invalid  bool
		length   bool
		notFound bool
		process  bool
		record   bool
	}{
		{ErrExistsOne, true, false, false, false, false, false},
		{ErrExistsTwo, true, false, false, false, false, false},
		{ErrInvalidOne, false, true, false, false, false, false},
		{ErrInvalidTwo, false, true, false, false, false, false},
		{ErrLengthOne, false, false, true, false, false, false},
		{ErrLengthTwo, false, false, true, false, false, false},
		{ErrNotFoundOne, false, false, false, true, false, false},
		{ErrNotFoundTwo, false, false, false, true, false, false},
		{ErrProcessOne, false, false, false, false, true, false},
		{ErrProcessTwo, false, false, false, false, true, false},
		{ErrRecordOne, false, false, false, false, false, true},
		{ErrRecordTwo, false, false, false, false, false, true},

		{fault.ErrKeyNotFound, false, false, false, true, false, false},
		{fault.ErrInvalidIterator, false, true, false, false, false, false},
		{fault.ErrAllocationFailed, false, false, false, false, true, false},
		{fault.ErrCorruptBalance, false, false, false, false, false, true},
		{fmt.Errorf("wrapped: %w", fault.ErrCorruptOrder), false, false, false, false, false, true},
		{fmt.Errorf("wrapped: %w", fault.ErrPoolExhausted), false, false, false, false, true, false},
	}

	for i, e := range errorList {
		err := e.err
		assert.Equal(t, e.exists, fault.IsErrExists(err), "%d: exists: %v", i, err)
		assert.Equal(t, e.invalid, fault.IsErrInvalid(err), "%d: invalid: %v", i, err)
		assert.Equal(t, e.length, fault.IsErrLength(err), "%d: length: %v", i, err)
		assert.Equal(t, e.notFound, fault.IsErrNotFound(err), "%d: not found: %v", i, err)
		assert.Equal(t, e.process, fault.IsErrProcess(err), "%d: process: %v", i, err)
		assert.Equal(t, e.record, fault.IsErrRecord(err), "%d: record: %v", i, err)
	}
}

func TestMessages(t *testing.T) {
	assert.Equal(t, "key not found", fault.ErrKeyNotFound.Error())
	assert.Equal(t, "invalid iterator", fault.ErrInvalidIterator.Error())
	assert.Equal(t, "generic", fault.GenericError("generic").Error())
}

func TestPanicIfError(t *testing.T) {
	assert.NotPanics(t, func() { fault.PanicIfError("nothing", nil) })
	assert.Panics(t, func() { fault.PanicIfError("something", fault.ErrPoolExhausted) })
}
