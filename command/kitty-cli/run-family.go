// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

func runFamily(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	id, err := kittyIndex(c, "id")
	if nil != err {
		return err
	}

	client, err := m.client()
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Family(id)
	if nil != err {
		return err
	}

	return m.printJSON(response)
}

func runChildren(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	parent1, err := kittyIndex(c, "parent1")
	if nil != err {
		return err
	}
	parent2, err := kittyIndex(c, "parent2")
	if nil != err {
		return err
	}

	client, err := m.client()
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Children(parent1, parent2)
	if nil != err {
		return err
	}

	return m.printJSON(response)
}
