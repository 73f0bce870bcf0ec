// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc_test

import (
	"net"
	"net/rpc/jsonrpc"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/kittyd/authentication"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/fixtures"
	"github.com/bitmark-inc/kittyd/kitties"
	"github.com/bitmark-inc/kittyd/ledger"
	"github.com/bitmark-inc/kittyd/messagebus"
	"github.com/bitmark-inc/kittyd/randomness"
	"github.com/bitmark-inc/kittyd/rpc"
	handler "github.com/bitmark-inc/kittyd/rpc/kitties"
	"github.com/bitmark-inc/kittyd/rpc/listeners"
	"github.com/bitmark-inc/logger"
)

func TestInitialiseServesAndFinaliseStops(t *testing.T) {
	fixtures.SetupTestStorage(t)
	defer fixtures.TeardownTestStorage()

	free, err := net.Listen("tcp4", "127.0.0.1:0")
	require.Nil(t, err, "listen")
	listen := free.Addr().String()
	_ = free.Close()

	l := ledger.New()
	module := kitties.New(
		logger.New(fixtures.LogCategory),
		authentication.New(true, authentication.DefaultWindow),
		l,
		randomness.New([]byte("setup test")),
		kitties.NewBusEmitter(messagebus.NewQueue(10)),
		kitties.Fees{},
	)

	configuration := listeners.RPCConfiguration{
		MaximumConnections: 2,
		Listen:             []string{listen},
	}

	err = rpc.Initialise(&configuration, nil, module, l, "1.0", true)
	require.Nil(t, err, "initialise")

	err = rpc.Initialise(&configuration, nil, module, l, "1.0", true)
	assert.Equal(t, fault.AlreadyInitialised, err, "second initialise")

	conn, err := net.Dial("tcp", listen)
	require.Nil(t, err, "dial")
	client := jsonrpc.NewClient(conn)

	// free creation with zero fees
	request := kitties.Sign(fixtures.Alice, authentication.Nonce(), kitties.CreateMethod, kitties.CreateArguments())
	var reply handler.IdReply
	err = client.Call("Kitties.Create", &handler.CreateArguments{Request: request}, &reply)
	assert.Nil(t, err, "create")
	_ = client.Close()

	assert.Nil(t, rpc.Finalise(), "finalise")
	assert.Equal(t, fault.NotInitialised, rpc.Finalise(), "second finalise")

	_, err = net.Dial("tcp", listen)
	assert.NotNil(t, err, "still accepting after finalise")
}
