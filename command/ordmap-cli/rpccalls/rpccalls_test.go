// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls_test

import (
	"bytes"
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/ordmap/command/ordmap-cli/rpccalls"
	"github.com/bitmark-inc/ordmap/counter"
	"github.com/bitmark-inc/ordmap/fixtures"
	"github.com/bitmark-inc/ordmap/rpc/certificate"
	"github.com/bitmark-inc/ordmap/rpc/listeners"
	"github.com/bitmark-inc/ordmap/rpc/server"
	"github.com/bitmark-inc/ordmap/store"
)

func startServer(t *testing.T) (string, [32]byte, func()) {
	cer, key, err := fixtures.CertificatePair()
	require.Nil(t, err, "certificate pair")

	log := logger.New(fixtures.LogCategory)
	tlsConfig, fin, err := certificate.Get(log, "test", cer, key)
	require.Nil(t, err, "certificate")

	s, err := store.New(0)
	require.Nil(t, err, "store")

	listen := fmt.Sprintf("127.0.0.1:%d", rand.IntN(30000)+30000)
	con := listeners.RPCConfiguration{
		MaximumConnections: 5,
		Bandwidth:          10000000,
		Listen:             []string{listen},
	}

	var count counter.Counter
	l, err := listeners.NewRPC(&con, log, &count, server.Create(log, "2.0", &count, s), tlsConfig, fin)
	require.Nil(t, err, "listener")
	require.Nil(t, l.Serve(), "serve")

	return listen, fin, func() { _ = l.Close() }
}

func TestClient(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	listen, fin, stop := startServer(t)
	defer stop()

	var verbose bytes.Buffer
	client, err := rpccalls.NewClient(listen, &fin, true, &verbose)
	require.Nil(t, err, "wrong NewClient")
	defer client.Close()

	for _, k := range []string{"delta", "alpha", "charlie", "bravo"} {
		put, err := client.Put(k, "<"+k+">")
		require.Nil(t, err, "wrong Put")
		assert.True(t, put.Inserted, "wrong inserted")
	}
	assert.Contains(t, verbose.String(), "Put Reply", "missing verbose output")

	get, err := client.Get("charlie")
	assert.Nil(t, err, "wrong Get")
	assert.Equal(t, "<charlie>", get.Value, "wrong value")

	r, err := client.Range("", 3, true)
	assert.Nil(t, err, "wrong Range")
	keys := []string{}
	for _, e := range r.Entries {
		keys = append(keys, e.Key)
	}
	assert.Equal(t, []string{"alpha", "bravo", "charlie"}, keys, "wrong keys")
	assert.True(t, r.More, "wrong more")

	r, err = client.Range(r.Next, 3, false)
	assert.Nil(t, err, "wrong Range")
	assert.Equal(t, 1, len(r.Entries), "wrong second page")
	assert.False(t, r.More, "wrong more")

	b, err := client.Bounds("b")
	assert.Nil(t, err, "wrong Bounds")
	assert.Equal(t, "bravo", b.Lower.Key, "wrong lower")
	assert.Equal(t, "bravo", b.Upper.Key, "wrong upper")

	d, err := client.Delete("alpha")
	assert.Nil(t, err, "wrong Delete")
	assert.True(t, d.Deleted, "wrong deleted")

	info, err := client.GetInfo()
	assert.Nil(t, err, "wrong GetInfo")
	assert.Equal(t, "2.0", info.Version, "wrong version")
	assert.Equal(t, 3, info.Entries, "wrong entries")
	assert.Equal(t, uint64(1), info.RPCs, "wrong connection count")
}

func TestClientFingerprintMismatch(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	listen, _, stop := startServer(t)
	defer stop()

	wrong := [32]byte{1, 2, 3}
	_, err := rpccalls.NewClient(listen, &wrong, false, nil)
	assert.Equal(t, rpccalls.ErrFingerprintMismatch, err, "wrong error")
}
