// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/chain"
)

func runGenerate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	network := c.String("network")
	if !chain.Valid(network) {
		return fmt.Errorf("network: %q can only be live/testing/local", network)
	}

	privateKey, err := account.NewPrivateKey(chain.IsTesting(network))
	if nil != err {
		return err
	}

	output := c.String("output")
	if "" == output {
		return m.printJSON(newKeyFile(privateKey))
	}

	if err := writeKeyFile(output, privateKey); nil != err {
		return fmt.Errorf("key file: %q  error: %s", output, err)
	}
	if m.verbose {
		fmt.Fprintf(m.e, "wrote key file: %q\n", output)
	}

	return m.printJSON(struct {
		Account string `json:"account"`
	}{
		Account: privateKey.Account().String(),
	})
}
