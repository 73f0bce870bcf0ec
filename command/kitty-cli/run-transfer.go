// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/kittyd/account"
)

func runTransfer(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	id, err := kittyIndex(c, "id")
	if nil != err {
		return err
	}

	receiver := c.String("receiver")
	if "" == receiver {
		return fmt.Errorf("missing --receiver ACCOUNT")
	}
	to, err := account.AccountFromBase58(receiver)
	if nil != err {
		return fmt.Errorf("receiver: %q  error: %s", receiver, err)
	}

	privateKey, err := m.privateKey()
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "id: %d\n", id)
		fmt.Fprintf(m.e, "receiver: %s\n", to)
	}

	client, err := m.client()
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Transfer(privateKey, to, id)
	if nil != err {
		return err
	}

	return m.printJSON(response)
}
