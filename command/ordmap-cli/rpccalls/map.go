// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/ordmap/rpc/maps"
)

// Put - store a value
func (client *Client) Put(key string, value string) (*maps.PutReply, error) {
	arguments := maps.PutArguments{
		Key:   key,
		Value: value,
	}
	client.printJson("Put Request", arguments)

	var reply maps.PutReply
	if err := client.client.Call("Map.Put", &arguments, &reply); err != nil {
		return nil, err
	}

	client.printJson("Put Reply", reply)

	return &reply, nil
}

// Get - fetch a value
func (client *Client) Get(key string) (*maps.GetReply, error) {
	arguments := maps.KeyArguments{
		Key: key,
	}

	var reply maps.GetReply
	if err := client.client.Call("Map.Get", &arguments, &reply); err != nil {
		return nil, err
	}

	client.printJson("Get Reply", reply)

	return &reply, nil
}

// Delete - remove a key
func (client *Client) Delete(key string) (*maps.DeleteReply, error) {
	arguments := maps.KeyArguments{
		Key: key,
	}

	var reply maps.DeleteReply
	if err := client.client.Call("Map.Delete", &arguments, &reply); err != nil {
		return nil, err
	}

	client.printJson("Delete Reply", reply)

	return &reply, nil
}

// Range - list up to count entries from start
func (client *Client) Range(start string, count int, inclusive bool) (*maps.RangeReply, error) {
	arguments := maps.RangeArguments{
		Start:     start,
		Count:     count,
		Inclusive: inclusive,
	}
	client.printJson("Range Request", arguments)

	var reply maps.RangeReply
	if err := client.client.Call("Map.Range", &arguments, &reply); err != nil {
		return nil, err
	}

	client.printJson("Range Reply", reply)

	return &reply, nil
}

// Bounds - entries at the lower and upper bound of a key
func (client *Client) Bounds(key string) (*maps.BoundsReply, error) {
	arguments := maps.KeyArguments{
		Key: key,
	}

	var reply maps.BoundsReply
	if err := client.client.Call("Map.Bounds", &arguments, &reply); err != nil {
		return nil, err
	}

	client.printJson("Bounds Reply", reply)

	return &reply, nil
}
