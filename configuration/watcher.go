// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"

	"github.com/bitmark-inc/ordmap/background"
)

// Watcher - background process that calls a function whenever the
// configuration file is written or replaced
type Watcher struct {
	log      *logger.L
	watcher  *fsnotify.Watcher
	filePath string
	changed  func()
}

var _ background.Process = (*Watcher)(nil)

// NewWatcher - watch fileName for changes
//
// the containing directory is watched so that editors which replace
// the file by renaming are also detected
func NewWatcher(log *logger.L, fileName string, changed func()) (*Watcher, error) {
	filePath, err := filepath.Abs(filepath.Clean(fileName))
	if nil != err {
		return nil, err
	}

	if _, err := os.Stat(filePath); nil != err {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		log.Errorf("new watcher with error: %s", err)
		return nil, err
	}

	err = watcher.Add(filepath.Dir(filePath))
	if nil != err {
		_ = watcher.Close()
		log.Errorf("watcher add error: %s", err)
		return nil, err
	}

	return &Watcher{
		log:      log,
		watcher:  watcher,
		filePath: filePath,
		changed:  changed,
	}, nil
}

// Run - deliver change notifications until shutdown
func (w *Watcher) Run(args interface{}, shutdown <-chan struct{}) {
	w.log.Infof("watching: %s", w.filePath)

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case event, ok := <-w.watcher.Events:
			if !ok {
				break loop
			}
			if filepath.Clean(event.Name) != w.filePath {
				continue
			}
			w.log.Debugf("file event: %s", event)
			if isChange(event) {
				w.log.Info("configuration changed")
				w.changed()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				break loop
			}
			w.log.Errorf("watcher error: %s", err)
		}
	}

	_ = w.watcher.Close()
	w.log.Info("stopped")
}

func isChange(event fsnotify.Event) bool {
	return event.Op&(fsnotify.Write|fsnotify.Create) != 0
}
