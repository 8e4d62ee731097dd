// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/ordmap/rpc/maps"
	"github.com/bitmark-inc/ordmap/store"
)

func runPut(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if 2 != c.NArg() {
		return fmt.Errorf("put requires KEY and VALUE")
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Put(c.Args().Get(0), c.Args().Get(1))
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runGet(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if 1 != c.NArg() {
		return fmt.Errorf("get requires KEY")
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Get(c.Args().Get(0))
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runDelete(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if 1 != c.NArg() {
		return fmt.Errorf("delete requires KEY")
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Delete(c.Args().Get(0))
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runRange(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	start := c.String("start")
	count := c.Int("count")
	if count <= 0 || count > maps.MaximumRangeCount {
		return fmt.Errorf("invalid count: %d  must be 1..%d", count, maps.MaximumRangeCount)
	}
	inclusive := !c.Bool("exclusive")
	all := c.Bool("all")

	if m.verbose {
		fmt.Fprintf(m.e, "start: %q\n", start)
		fmt.Fprintf(m.e, "count: %d\n", count)
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	if !all {
		response, err := client.Range(start, count, inclusive)
		if nil != err {
			return err
		}
		return printJson(m.w, response)
	}

	// page through the store, later pages start after the last key seen
	entries := []store.Entry{}
	for {
		response, err := client.Range(start, count, inclusive)
		if nil != err {
			return err
		}
		entries = append(entries, response.Entries...)
		if !response.More {
			break
		}
		start = response.Next
		inclusive = false
	}

	return printJson(m.w, entries)
}

func runBounds(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if 1 != c.NArg() {
		return fmt.Errorf("bounds requires KEY")
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Bounds(c.Args().Get(0))
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runInfo(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetInfo()
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}
