// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package balance_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/fixtures"
	"github.com/bitmark-inc/kittyd/ledger"
	"github.com/bitmark-inc/kittyd/rpc/balance"
	"github.com/bitmark-inc/kittyd/storage"
	"github.com/bitmark-inc/logger"
)

func TestBalanceGet(t *testing.T) {
	fixtures.SetupTestStorage(t)
	defer fixtures.TeardownTestStorage()

	l := ledger.New()
	alice := fixtures.Alice.Account()

	trx, err := storage.NewDBTransaction()
	require.Nil(t, err, "begin")
	require.Nil(t, l.Deposit(trx, alice, 100), "deposit")
	require.Nil(t, l.Reserve(trx, alice, 30), "reserve")
	require.Nil(t, trx.Commit(), "commit")

	b := balance.New(logger.New(fixtures.LogCategory), l)

	var reply balance.GetReply
	err = b.Get(&balance.GetArguments{Owner: alice}, &reply)
	assert.Nil(t, err, "wrong Get")
	assert.Equal(t, uint64(70), reply.Free, "wrong free")
	assert.Equal(t, uint64(30), reply.Reserved, "wrong reserved")

	err = b.Get(&balance.GetArguments{Owner: fixtures.Bob.Account()}, &reply)
	assert.Nil(t, err, "wrong Get")
	assert.Equal(t, uint64(0), reply.Free, "unfunded free")
	assert.Equal(t, uint64(0), reply.Reserved, "unfunded reserved")

	err = b.Get(&balance.GetArguments{}, &reply)
	assert.Equal(t, fault.InvalidAccount, err, "missing owner")
}
