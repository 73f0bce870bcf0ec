// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/command/kitty-cli/rpccalls"
	"github.com/bitmark-inc/kittyd/kitty"
)

// client - connect to the node named by the global flags
func (m *metadata) client() (*rpccalls.Client, error) {
	if "" == m.connect {
		return nil, fmt.Errorf("missing --connect HOST:PORT")
	}
	if m.verbose {
		fmt.Fprintf(m.e, "connect: %s  plain: %v\n", m.connect, m.plain)
	}
	return rpccalls.NewClient(m.connect, m.plain, m.verbose, m.e)
}

// privateKey - the signing identity from --key-file
func (m *metadata) privateKey() (*account.PrivateKey, error) {
	if "" == m.keyFile {
		return nil, fmt.Errorf("missing --key-file FILE")
	}
	privateKey, err := readKeyFile(m.keyFile)
	if nil != err {
		return nil, fmt.Errorf("key file: %q  error: %s", m.keyFile, err)
	}
	return privateKey, nil
}

// account - an explicit base58 account, or the key file's account
func (m *metadata) account(name string) (*account.Account, error) {
	if "" != name {
		return account.AccountFromBase58(name)
	}
	privateKey, err := m.privateKey()
	if nil != err {
		return nil, err
	}
	return privateKey.Account(), nil
}

// kittyIndex - a required decimal kitty id flag
func kittyIndex(c *cli.Context, name string) (kitty.Index, error) {
	s := c.String(name)
	if "" == s {
		return 0, fmt.Errorf("missing --%s ID", name)
	}
	n, err := strconv.ParseUint(s, 10, 32)
	if nil != err {
		return 0, fmt.Errorf("invalid %s: %q", name, s)
	}
	return kitty.Index(n), nil
}
