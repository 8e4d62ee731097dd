// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/ordmap/counter"
	"github.com/bitmark-inc/ordmap/fixtures"
	"github.com/bitmark-inc/ordmap/rpc/certificate"
	"github.com/bitmark-inc/ordmap/rpc/listeners"
	"github.com/bitmark-inc/ordmap/rpc/server"
	"github.com/bitmark-inc/ordmap/store"
)

func run(t *testing.T, args ...string) (string, error) {
	var out, e bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &e
	err := app.Run(append([]string{"ordmap-cli"}, args...))
	return out.String(), err
}

func TestCommands(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	cer, key, err := fixtures.CertificatePair()
	require.Nil(t, err, "certificate pair")

	log := logger.New(fixtures.LogCategory)
	tlsConfig, fin, err := certificate.Get(log, "test", cer, key)
	require.Nil(t, err, "certificate")

	s, err := store.New(0)
	require.Nil(t, err, "store")

	listen := fmt.Sprintf("127.0.0.1:%d", rand.IntN(30000)+30000)
	con := listeners.RPCConfiguration{
		MaximumConnections: 100,
		Bandwidth:          10000000,
		Listen:             []string{listen},
	}
	var count counter.Counter
	l, err := listeners.NewRPC(&con, log, &count, server.Create(log, "3.0", &count, s), tlsConfig, fin)
	require.Nil(t, err, "listener")
	require.Nil(t, l.Serve(), "serve")
	defer l.Close()

	connect := "--connect=" + listen
	pin := fmt.Sprintf("--fingerprint=%x", fin)

	for i := 0; i < 30; i += 1 {
		_, err := run(t, connect, "put", fmt.Sprintf("key-%02d", i), fmt.Sprintf("%d", i))
		require.Nil(t, err, "put")
	}

	out, err := run(t, connect, pin, "get", "key-07")
	require.Nil(t, err, "get")
	assert.Contains(t, out, `"value": "7"`, "wrong get output")

	out, err = run(t, connect, "range", "--start=key-10", "--count=5", "--all")
	require.Nil(t, err, "range")
	var entries []store.Entry
	require.Nil(t, json.Unmarshal([]byte(out), &entries), "range output")
	assert.Equal(t, 20, len(entries), "wrong paged entry count")
	assert.Equal(t, "key-10", entries[0].Key, "wrong first key")
	assert.Equal(t, "key-29", entries[19].Key, "wrong last key")

	_, err = run(t, connect, "range", "--count=0")
	assert.NotNil(t, err, "zero count accepted")

	_, err = run(t, connect, "delete", "key-07")
	assert.Nil(t, err, "delete")
	_, err = run(t, connect, "get", "key-07")
	assert.NotNil(t, err, "deleted key found")

	out, err = run(t, connect, "info")
	require.Nil(t, err, "info")
	assert.Contains(t, out, `"entries": 29`, "wrong info output")

	_, err = run(t, connect, "put", "only-key")
	assert.NotNil(t, err, "missing value accepted")

	_, err = run(t, connect, "--fingerprint=zz", "info")
	assert.NotNil(t, err, "bad fingerprint accepted")
}
