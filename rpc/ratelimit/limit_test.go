// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ratelimit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/ordmap/fault"
	"github.com/bitmark-inc/ordmap/rpc/ratelimit"
)

func TestLimit(t *testing.T) {
	l := rate.NewLimiter(rate.Inf, 1)
	assert.Nil(t, ratelimit.Limit(l), "wrong Limit")
}

func TestLimitZeroBurst(t *testing.T) {
	l := rate.NewLimiter(10, 0)
	assert.Equal(t, fault.ErrRateLimiting, ratelimit.Limit(l), "wrong error")
}

func TestLimitN(t *testing.T) {
	l := rate.NewLimiter(1000, 100)

	assert.Nil(t, ratelimit.LimitN(l, 10, 100), "wrong LimitN")
	assert.Equal(t, fault.ErrInvalidCount, ratelimit.LimitN(l, 0, 100), "wrong zero count")
	assert.Equal(t, fault.ErrInvalidCount, ratelimit.LimitN(l, -1, 100), "wrong negative count")
	assert.Equal(t, fault.ErrInvalidCount, ratelimit.LimitN(l, 101, 100), "wrong large count")
}

func TestLimitNBeyondBurst(t *testing.T) {
	l := rate.NewLimiter(1000, 5)
	assert.Equal(t, fault.ErrRateLimiting, ratelimit.LimitN(l, 6, 100), "wrong error")
}
