// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls_test

import (
	"bytes"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/kittyd/authentication"
	"github.com/bitmark-inc/kittyd/command/kitty-cli/rpccalls"
	"github.com/bitmark-inc/kittyd/counter"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/fixtures"
	"github.com/bitmark-inc/kittyd/kitties"
	"github.com/bitmark-inc/kittyd/kitty"
	"github.com/bitmark-inc/kittyd/ledger"
	"github.com/bitmark-inc/kittyd/messagebus"
	"github.com/bitmark-inc/kittyd/randomness"
	"github.com/bitmark-inc/kittyd/rpc/server"
	"github.com/bitmark-inc/kittyd/storage"
	"github.com/bitmark-inc/logger"
)

// a plain TCP node with alice funded
func setup(t *testing.T, verbose *bytes.Buffer) *rpccalls.Client {
	fixtures.SetupTestStorage(t)

	l := ledger.New()
	trx, err := storage.NewDBTransaction()
	require.Nil(t, err, "begin")
	require.Nil(t, l.Deposit(trx, fixtures.Alice.Account(), 100), "deposit")
	require.Nil(t, trx.Commit(), "commit")

	module := kitties.New(
		logger.New(fixtures.LogCategory),
		authentication.New(true, authentication.DefaultWindow),
		l,
		randomness.New([]byte("rpccalls test")),
		kitties.NewBusEmitter(messagebus.NewQueue(10)),
		kitties.Fees{CreateReserve: 10, BreedReserve: 25},
	)

	c := counter.Counter(0)
	s := server.Create(logger.New(fixtures.LogCategory), module, l, "1.0", true, &c)

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.Nil(t, err, "listen")
	go s.Accept(listener)

	client, err := rpccalls.NewClient(listener.Addr().String(), true, nil != verbose, verbose)
	require.Nil(t, err, "client")

	t.Cleanup(func() {
		client.Close()
		_ = listener.Close()
		fixtures.TeardownTestStorage()
	})
	return client
}

func TestClientTransitions(t *testing.T) {
	client := setup(t, nil)

	// back to back calls must not reuse a nonce
	r1, err := client.Create(fixtures.Alice)
	require.Nil(t, err, "create 1")
	r2, err := client.Create(fixtures.Alice)
	require.Nil(t, err, "create 2")
	assert.Equal(t, kitty.Index(1), r1.Id, "first id")
	assert.Equal(t, kitty.Index(2), r2.Id, "second id")

	child, err := client.Breed(fixtures.Alice, r1.Id, r2.Id)
	require.Nil(t, err, "breed")
	assert.Equal(t, kitty.Index(3), child.Id, "child id")

	moved, err := client.Transfer(fixtures.Alice, fixtures.Bob.Account(), child.Id)
	require.Nil(t, err, "transfer")
	assert.Equal(t, child.Id, moved.Id, "transferred id")

	_, err = client.Transfer(fixtures.Alice, fixtures.Bob.Account(), child.Id)
	require.NotNil(t, err, "second transfer")
	assert.Equal(t, fault.NotOwner.Error(), err.Error(), "not owner")

	_, err = client.Create(fixtures.Carol)
	require.NotNil(t, err, "unfunded create")
	assert.Equal(t, fault.InsufficientBalance.Error(), err.Error(), "insufficient balance")
}

func TestClientQueries(t *testing.T) {
	client := setup(t, nil)

	r1, err := client.Create(fixtures.Alice)
	require.Nil(t, err, "create 1")
	r2, err := client.Create(fixtures.Alice)
	require.Nil(t, err, "create 2")
	child, err := client.Breed(fixtures.Alice, r2.Id, r1.Id)
	require.Nil(t, err, "breed")

	get, err := client.Get(child.Id)
	require.Nil(t, err, "get")
	assert.Equal(t, fixtures.Alice.Account().String(), get.Owner.String(), "owner")

	count, err := client.Count()
	require.Nil(t, err, "count")
	assert.Equal(t, uint64(3), count.Count, "count")

	owned, err := client.Owned(fixtures.Alice.Account(), 0, 2)
	require.Nil(t, err, "owned")
	assert.Equal(t, 2, len(owned.Data), "first page")
	owned, err = client.Owned(fixtures.Alice.Account(), owned.Next, 2)
	require.Nil(t, err, "owned")
	assert.Equal(t, 1, len(owned.Data), "second page")

	family, err := client.Family(child.Id)
	require.Nil(t, err, "family")
	assert.Equal(t, 2, len(family.Parents), "parents")

	children, err := client.Children(r1.Id, r2.Id)
	require.Nil(t, err, "children")
	assert.Equal(t, []kitty.Index{child.Id}, children.Children, "children either order")

	b, err := client.Balance(fixtures.Alice.Account())
	require.Nil(t, err, "balance")
	assert.Equal(t, uint64(55), b.Free, "free")
	assert.Equal(t, uint64(45), b.Reserved, "reserved")

	info, err := client.Info()
	require.Nil(t, err, "info")
	assert.Equal(t, "testing", info.Chain, "chain")
	assert.Equal(t, uint64(3), info.Kitties, "kitties")
}

func TestClientVerbose(t *testing.T) {
	var trace bytes.Buffer
	client := setup(t, &trace)

	_, err := client.Count()
	require.Nil(t, err, "count")
	assert.Contains(t, trace.String(), "Kitties.Count Request", "request traced")
	assert.Contains(t, trace.String(), "Kitties.Count Reply", "reply traced")
}

func TestNewClientFails(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.Nil(t, err, "listen")
	address := listener.Addr().String()
	_ = listener.Close()

	_, err = rpccalls.NewClient(address, true, false, nil)
	assert.NotNil(t, err, "dial closed port")
}
