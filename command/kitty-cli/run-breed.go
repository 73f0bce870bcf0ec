// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func runBreed(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	parent1, err := kittyIndex(c, "parent1")
	if nil != err {
		return err
	}
	parent2, err := kittyIndex(c, "parent2")
	if nil != err {
		return err
	}

	privateKey, err := m.privateKey()
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "parents: %d and %d\n", parent1, parent2)
	}

	client, err := m.client()
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Breed(privateKey, parent1, parent2)
	if nil != err {
		return err
	}

	return m.printJSON(response)
}
