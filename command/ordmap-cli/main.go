// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/ordmap/command/ordmap-cli/rpccalls"
)

const (
	defaultConnect = "127.0.0.1:2130"
)

type metadata struct {
	connect     string
	fingerprint *[32]byte
	verbose     bool
	e           io.Writer
	w           io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp()

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {

	app := cli.NewApp()
	app.Name = "ordmap-cli"
	app.Usage = "access an ordmapd ordered store"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:   "connect, c",
			Value:  defaultConnect,
			EnvVar: "ORDMAP_CONNECT",
			Usage:  " ordmapd host/IP and port, `HOST:PORT`",
		},
		cli.StringFlag{
			Name:   "fingerprint, f",
			Value:  "",
			EnvVar: "ORDMAP_FINGERPRINT",
			Usage:  " expected SHA3-256 server certificate fingerprint `HEX`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "put",
			Usage:     "set the value of a key",
			ArgsUsage: "KEY VALUE",
			Action:    runPut,
		},
		{
			Name:      "get",
			Usage:     "display the value of a key",
			ArgsUsage: "KEY",
			Action:    runGet,
		},
		{
			Name:      "delete",
			Usage:     "remove a key",
			ArgsUsage: "KEY",
			Action:    runDelete,
		},
		{
			Name:      "range",
			Usage:     "list entries in key order",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "start, s",
					Value: "",
					Usage: " first `KEY` to list",
				},
				cli.IntFlag{
					Name:  "count, n",
					Value: 20,
					Usage: " maximum entries per request `COUNT`",
				},
				cli.BoolFlag{
					Name:  "exclusive, x",
					Usage: " skip an entry equal to the start key",
				},
				cli.BoolFlag{
					Name:  "all, a",
					Usage: " keep requesting until the end of the store",
				},
			},
			Action: runRange,
		},
		{
			Name:      "bounds",
			Usage:     "display the lower and upper bound entries of a key",
			ArgsUsage: "KEY",
			Action:    runBounds,
		},
		{
			Name:   "info",
			Usage:  "display ordmapd status",
			Action: runInfo,
		},
		{
			Name:  "version",
			Usage: "display ordmap-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// decode the connection flags
	app.Before = func(c *cli.Context) error {

		m := &metadata{
			connect: c.GlobalString("connect"),
			verbose: c.GlobalBool("verbose"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}

		if f := c.GlobalString("fingerprint"); "" != f {
			b, err := hex.DecodeString(f)
			if nil != err || 32 != len(b) {
				return fmt.Errorf("fingerprint: %q is not 64 hex digits", f)
			}
			var fingerprint [32]byte
			copy(fingerprint[:], b)
			m.fingerprint = &fingerprint
		}

		if m.verbose {
			fmt.Fprintf(m.e, "connect: %s\n", m.connect)
		}

		c.App.Metadata = map[string]interface{}{
			"config": m,
		}
		return nil
	}

	return app
}

func connect(m *metadata) (*rpccalls.Client, error) {
	return rpccalls.NewClient(m.connect, m.fingerprint, m.verbose, m.e)
}
