// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package store

import (
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/ordmap/background"
	"github.com/bitmark-inc/ordmap/fault"
)

// stores that can verify their own structure
type checker interface {
	Check() error
}

// Reporter - background process that logs store statistics
type Reporter struct {
	log       *logger.L
	store     Store
	interval  time.Duration
	intervals chan time.Duration
}

var _ background.Process = (*Reporter)(nil)

// NewReporter - log store statistics every interval
func NewReporter(log *logger.L, store Store, interval time.Duration) *Reporter {
	return &Reporter{
		log:       log,
		store:     store,
		interval:  interval,
		intervals: make(chan time.Duration, 1),
	}
}

// SetInterval - change the reporting interval of a running reporter
//
// only the most recent unapplied value is kept
func (r *Reporter) SetInterval(interval time.Duration) {
	if interval <= 0 {
		return
	}
	for {
		select {
		case r.intervals <- interval:
			return
		default:
		}
		select {
		case <-r.intervals:
		default:
		}
	}
}

// Run - report until shutdown, then report once more
func (r *Reporter) Run(args interface{}, shutdown <-chan struct{}) {

	r.log.Info("starting…")

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case interval := <-r.intervals:
			r.log.Infof("interval: %s", interval)
			ticker.Reset(interval)
		case <-ticker.C:
			r.report()
		}
	}

	r.report()
	r.verify()
	r.log.Info("stopped")
}

func (r *Reporter) report() {
	s := r.store.Statistics()
	r.log.Infof("entries: %d  height: %d  limit: %d", s.Entries, s.Height, s.Limit)
	r.log.Debugf("pool: total: %d  free: %d  in use: %d", s.Pool.Total, s.Pool.Free, s.Pool.InUse)
	if 0 != s.Limit && s.Entries >= s.Limit*9/10 {
		r.log.Warnf("store is %d%% full", 100*s.Entries/s.Limit)
	}
}

// walk the whole store under its lock
func (r *Reporter) verify() {
	c, ok := r.store.(checker)
	if !ok {
		return
	}
	if err := c.Check(); nil != err {
		fault.Criticalf("store structure error: %s", err)
		return
	}
	r.log.Info("store structure verified")
}
