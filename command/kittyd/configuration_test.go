// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/fixtures"
)

const testingConfiguration = `
local M = {}

M.data_directory = "."
M.chain = "Testing"
M.nonce_window = 60

M.fees = {
    create_reserve = 10,
    breed_reserve = 25,
}

M.endowments = {
    ["%s"] = 100,
    ["%s"] = 50,
}

M.client_rpc = {
    maximum_connections = 5,
    listen = { "127.0.0.1:2130" },
}

M.https_rpc = {
    listen = { "127.0.0.1:2131" },
    allow = {
        details = { "127.0.0.1/32", "::1/128" },
    },
}

return M
`

func writeConfiguration(t *testing.T, content string) string {
	fileName := filepath.Join(t.TempDir(), "kittyd.conf")
	require.Nil(t, os.WriteFile(fileName, []byte(content), 0600), "write configuration")
	return fileName
}

func TestGetConfiguration(t *testing.T) {
	alice := fixtures.Alice.Account().String()
	bob := fixtures.Bob.Account().String()
	fileName := writeConfiguration(t, fmt.Sprintf(testingConfiguration, alice, bob))
	dir := filepath.Dir(fileName)

	c, err := getConfiguration(fileName)
	require.Nil(t, err, "configuration")

	assert.Equal(t, "testing", c.Chain, "chain is lower cased")
	assert.True(t, c.testing(), "testing chain")
	assert.Equal(t, dir, c.DataDirectory, "data directory")
	assert.Equal(t, filepath.Join(dir, "data", "testing.leveldb"), c.Database.Name, "database switched for chain")
	assert.DirExists(t, filepath.Join(dir, "data"), "database directory")
	assert.DirExists(t, filepath.Join(dir, "log"), "log directory")
	assert.Equal(t, "kittyd:testing", c.RandomSeed, "default seed")
	assert.Equal(t, time.Minute, c.nonceWindow(), "nonce window")
	assert.Equal(t, uint64(10), c.Fees.CreateReserve, "create fee")
	assert.Equal(t, uint64(25), c.Fees.BreedReserve, "breed fee")
	assert.Equal(t, uint64(5), c.ClientRPC.MaximumConnections, "connections")
	assert.Equal(t, []string{"127.0.0.1:2130"}, c.ClientRPC.Listen, "listen")
	assert.Equal(t, []string{"127.0.0.1:2131"}, c.HTTPSRPC.Listen, "https listen")
	assert.Equal(t, uint64(defaultRPCClients), c.HTTPSRPC.MaximumConnections, "https default connections")
	assert.Equal(t, []string{"127.0.0.1/32", "::1/128"}, c.HTTPSRPC.Allow["details"], "https allow")

	endowments, err := c.endowments()
	require.Nil(t, err, "endowments")
	require.Equal(t, 2, len(endowments), "endowment count")
	for _, e := range endowments {
		switch e.Owner.String() {
		case alice:
			assert.Equal(t, uint64(100), e.Amount, "alice amount")
		case bob:
			assert.Equal(t, uint64(50), e.Amount, "bob amount")
		default:
			t.Errorf("unexpected owner: %s", e.Owner)
		}
	}
	assert.Less(t, endowments[0].Owner.String(), endowments[1].Owner.String(), "endowments sorted")
}

func TestGetConfigurationDefaults(t *testing.T) {
	fileName := writeConfiguration(t, `return { data_directory = "." }`)

	c, err := getConfiguration(fileName)
	require.Nil(t, err, "configuration")

	assert.Equal(t, "live", c.Chain, "default chain")
	assert.False(t, c.testing(), "live chain")
	assert.Equal(t, "live.leveldb", filepath.Base(c.Database.Name), "default database")
	assert.Equal(t, defaultNonceWindow, c.NonceWindow, "default window")
	assert.Equal(t, uint64(defaultRPCClients), c.ClientRPC.MaximumConnections, "default connections")
	assert.Equal(t, "", c.PidFile, "no pid file")
}

func TestGetConfigurationRejects(t *testing.T) {
	testnet := fixtures.Alice.Account().String()

	items := []struct {
		name    string
		content string
	}{
		{"no data directory", `return { chain = "local" }`},
		{"unknown chain", `return { data_directory = ".", chain = "moon" }`},
		{"zero window", `return { data_directory = ".", chain = "local", nonce_window = 0 }`},
		{"database path", `return { data_directory = ".", database = { name = "a/b.leveldb" } }`},
		{"bad account", `return { data_directory = ".", chain = "local", endowments = { ["not-an-account"] = 1 } }`},
		{"wrong network", fmt.Sprintf(`return { data_directory = ".", endowments = { ["%s"] = 1 } }`, testnet)},
	}

	for _, item := range items {
		fileName := writeConfiguration(t, item.content)
		_, err := getConfiguration(fileName)
		assert.NotNil(t, err, item.name)
	}
}

func TestGetConfigurationWrongNetworkMessage(t *testing.T) {
	testnet := fixtures.Alice.Account().String()
	fileName := writeConfiguration(t, fmt.Sprintf(`return { data_directory = ".", endowments = { ["%s"] = 1 } }`, testnet))

	_, err := getConfiguration(fileName)
	require.NotNil(t, err, "live chain with test account")
	assert.Contains(t, err.Error(), fault.WrongNetwork.Error(), "error message")
}
