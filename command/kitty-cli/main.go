// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/kittyd/chain"
)

const defaultConnect = "127.0.0.1:2130"

type metadata struct {
	connect string
	plain   bool
	keyFile string
	verbose bool
	e       io.Writer
	w       io.Writer
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
	app.Name = "kitty-cli"
	app.Usage = "kittyd client"
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
			EnvVar: "KITTY_CONNECT",
			Usage:  " kittyd RPC `HOST:PORT`",
		},
		cli.BoolFlag{
			Name:  "plain",
			Usage: " connect without TLS",
		},
		cli.StringFlag{
			Name:   "key-file, k",
			Value:  "",
			EnvVar: "KITTY_KEY_FILE",
			Usage:  " identity key `FILE`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "generate",
			Usage:     "generate a new identity key",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "network, n",
					Value: chain.Testing,
					Usage: " key for `NETWORK` [live|testing|local]",
				},
				cli.StringFlag{
					Name:  "output, o",
					Value: "",
					Usage: " write key to `FILE` instead of printing it",
				},
			},
			Action: runGenerate,
		},
		{
			Name:   "create",
			Usage:  "create a new kitty for the key's account",
			Action: runCreate,
		},
		{
			Name:      "transfer",
			Usage:     "transfer a kitty to another account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "id, i",
					Value: "",
					Usage: "*kitty to transfer `ID`",
				},
				cli.StringFlag{
					Name:  "receiver, r",
					Value: "",
					Usage: "*account to receive the kitty `ACCOUNT`",
				},
			},
			Action: runTransfer,
		},
		{
			Name:      "breed",
			Usage:     "breed two owned kitties",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "parent1, a",
					Value: "",
					Usage: "*first parent `ID`",
				},
				cli.StringFlag{
					Name:  "parent2, b",
					Value: "",
					Usage: "*second parent `ID`",
				},
			},
			Action: runBreed,
		},
		{
			Name:      "get",
			Usage:     "display a kitty and its owner",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "id, i",
					Value: "",
					Usage: "*kitty `ID`",
				},
			},
			Action: runGet,
		},
		{
			Name:   "count",
			Usage:  "number of kitties",
			Action: runCount,
		},
		{
			Name:      "owned",
			Usage:     "list kitties owned by an account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " `ACCOUNT` to list [default key file account]",
				},
				cli.Uint64Flag{
					Name:  "start, s",
					Value: 0,
					Usage: " continue from `NEXT` of a previous page",
				},
				cli.IntFlag{
					Name:  "count, n",
					Value: 20,
					Usage: " maximum kitties to list `COUNT`",
				},
			},
			Action: runOwned,
		},
		{
			Name:      "family",
			Usage:     "parents, siblings and spouses of a kitty",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "id, i",
					Value: "",
					Usage: "*kitty `ID`",
				},
			},
			Action: runFamily,
		},
		{
			Name:      "children",
			Usage:     "children of a pair of kitties",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "parent1, a",
					Value: "",
					Usage: "*first parent `ID`",
				},
				cli.StringFlag{
					Name:  "parent2, b",
					Value: "",
					Usage: "*second parent `ID`",
				},
			},
			Action: runChildren,
		},
		{
			Name:      "balance",
			Usage:     "free and reserved balance of an account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " `ACCOUNT` to query [default key file account]",
				},
			},
			Action: runBalance,
		},
		{
			Name:   "info",
			Usage:  "display kittyd status",
			Action: runInfo,
		},
		{
			Name:  "version",
			Usage: "display kitty-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {
		c.App.Metadata["config"] = &metadata{
			connect: c.GlobalString("connect"),
			plain:   c.GlobalBool("plain"),
			keyFile: c.GlobalString("key-file"),
			verbose: c.GlobalBool("verbose"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}
		return nil
	}

	return app
}
