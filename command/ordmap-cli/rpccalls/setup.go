// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpccalls - client side of the ordmapd JSON RPC services
package rpccalls

import (
	"crypto/tls"
	"io"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"

	"github.com/bitmark-inc/ordmap/fault"
	"github.com/bitmark-inc/ordmap/rpc/certificate"
)

// ErrFingerprintMismatch - server certificate is not the expected one
var ErrFingerprintMismatch = fault.InvalidError("server certificate fingerprint mismatch")

// Client - to hold RPC connections streams
type Client struct {
	conn    net.Conn
	client  *rpc.Client
	verbose bool
	handle  io.Writer // if verbose is set output items here
}

// NewClient - create a RPC connection to an ordmapd
//
// the server certificate is normally self signed so it is not
// verified against a CA; if fingerprint is not nil the SHA3-256 of the
// server certificate must match it
func NewClient(connect string, fingerprint *[32]byte, verbose bool, handle io.Writer) (*Client, error) {

	tlsConfig := &tls.Config{
		InsecureSkipVerify: true,
	}

	conn, err := tls.Dial("tcp", connect, tlsConfig)
	if err != nil {
		return nil, err
	}

	if nil != fingerprint {
		state := conn.ConnectionState()
		if 0 == len(state.PeerCertificates) || certificate.Fingerprint(state.PeerCertificates[0].Raw) != *fingerprint {
			_ = conn.Close()
			return nil, ErrFingerprintMismatch
		}
	}

	r := &Client{
		conn:    conn,
		client:  jsonrpc.NewClient(conn),
		verbose: verbose,
		handle:  handle,
	}
	return r, nil
}

// Close - shutdown the ordmapd connection
func (c *Client) Close() {
	_ = c.client.Close()
	_ = c.conn.Close()
}
