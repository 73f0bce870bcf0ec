// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/dna"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/fixtures"
	"github.com/bitmark-inc/kittyd/kitty"
	"github.com/bitmark-inc/kittyd/ledger"
	"github.com/bitmark-inc/kittyd/ownership"
	"github.com/bitmark-inc/kittyd/registry"
	"github.com/bitmark-inc/kittyd/storage"
)

const fee = 10

var seed = []byte("registry seed")

func fund(t *testing.T, l *ledger.Ledger, owner *account.Account, amount uint64) {
	trx, err := storage.NewDBTransaction()
	require.Nil(t, err, "begin")
	require.Nil(t, l.Deposit(trx, owner, amount), "deposit")
	require.Nil(t, trx.Commit(), "commit")
}

func create(t *testing.T, l *ledger.Ledger, owner *account.Account, callIndex uint32) *kitty.Kitty {
	trx, err := storage.NewDBTransaction()
	require.Nil(t, err, "begin")
	defer trx.Abort()

	k, err := registry.Create(trx, l, fee, owner, seed, callIndex)
	require.Nil(t, err, "create")
	require.Nil(t, trx.Commit(), "commit")
	return k
}

func ids(t *testing.T, owner *account.Account) []kitty.Index {
	records, err := ownership.ListFor(owner, 0, 100)
	require.Nil(t, err, "list")
	result := make([]kitty.Index, len(records))
	for i, r := range records {
		result[i] = r.Id
	}
	return result
}

func TestCreate(t *testing.T) {
	fixtures.SetupTestStorage(t)
	defer fixtures.TeardownTestStorage()

	alice := fixtures.Alice.Account()
	l := ledger.New()
	fund(t, l, alice, 100)

	assert.Equal(t, kitty.Index(0), registry.Count(nil), "initial count")

	k0 := create(t, l, alice, 7)
	k1 := create(t, l, alice, 8)

	assert.Equal(t, kitty.Index(0), k0.Id, "first id")
	assert.Equal(t, kitty.Index(1), k1.Id, "second id")
	assert.Equal(t, kitty.Index(2), registry.Count(nil), "count")
	assert.Equal(t, dna.Selector(seed, alice.Bytes(), 7), k0.DNA, "dna from selector")

	stored, err := registry.Get(nil, k1.Id)
	require.Nil(t, err, "get")
	assert.Equal(t, k1, stored, "stored kitty")

	assert.True(t, alice.Equal(ownership.OwnerOf(nil, k0.Id)), "owner")
	assert.Equal(t, []kitty.Index{0, 1}, ids(t, alice), "owner list")

	free, reserved := l.Balance(alice)
	assert.Equal(t, uint64(80), free, "free")
	assert.Equal(t, uint64(20), reserved, "reserved")

	_, err = registry.Get(nil, 2)
	assert.Equal(t, fault.AssetNotFound, err, "missing kitty")
}

func TestCreateInsufficientBalance(t *testing.T) {
	fixtures.SetupTestStorage(t)
	defer fixtures.TeardownTestStorage()

	bob := fixtures.Bob.Account()
	l := ledger.New()

	trx, err := storage.NewDBTransaction()
	require.Nil(t, err, "begin")
	_, err = registry.Create(trx, l, fee, bob, seed, 0)
	assert.Equal(t, fault.InsufficientBalance, err, "create without funds")
	trx.Abort()

	assert.Equal(t, kitty.Index(0), registry.Count(nil), "count changed")
	assert.Equal(t, 0, len(ids(t, bob)), "owner list changed")
	assert.Nil(t, ownership.OwnerOf(nil, 0), "owner recorded")
}

func TestCreateOverflow(t *testing.T) {
	fixtures.SetupTestStorage(t)
	defer fixtures.TeardownTestStorage()

	alice := fixtures.Alice.Account()
	l := ledger.New()
	fund(t, l, alice, 100)

	trx, err := storage.NewDBTransaction()
	require.Nil(t, err, "begin")
	trx.PutN(storage.Pool.KittiesCount, []byte{}, uint64(kitty.MaximumIndex))
	require.Nil(t, trx.Commit(), "commit")

	trx, err = storage.NewDBTransaction()
	require.Nil(t, err, "begin")
	_, err = registry.NextKittyIndex(trx)
	assert.Equal(t, fault.CountOverflow, err, "next index")

	_, err = registry.Create(trx, l, fee, alice, seed, 0)
	assert.Equal(t, fault.CountOverflow, err, "create")
	trx.Abort()

	free, _ := l.Balance(alice)
	assert.Equal(t, uint64(100), free, "fee taken on overflow")
}

func TestCreateLastIndex(t *testing.T) {
	fixtures.SetupTestStorage(t)
	defer fixtures.TeardownTestStorage()

	alice := fixtures.Alice.Account()
	l := ledger.New()
	fund(t, l, alice, 100)

	trx, err := storage.NewDBTransaction()
	require.Nil(t, err, "begin")
	trx.PutN(storage.Pool.KittiesCount, []byte{}, uint64(kitty.MaximumIndex-1))
	require.Nil(t, trx.Commit(), "commit")

	k := create(t, l, alice, 0)
	assert.Equal(t, kitty.MaximumIndex-1, k.Id, "last id")
	assert.Equal(t, kitty.MaximumIndex, registry.Count(nil), "count at maximum")
}

func TestTransfer(t *testing.T) {
	fixtures.SetupTestStorage(t)
	defer fixtures.TeardownTestStorage()

	alice := fixtures.Alice.Account()
	bob := fixtures.Bob.Account()
	l := ledger.New()
	fund(t, l, alice, 100)

	create(t, l, alice, 0)
	create(t, l, alice, 1)
	create(t, l, alice, 2)

	trx, err := storage.NewDBTransaction()
	require.Nil(t, err, "begin")
	require.Nil(t, registry.Transfer(trx, alice, bob, 1), "transfer")
	require.Nil(t, trx.Commit(), "commit")

	assert.True(t, bob.Equal(ownership.OwnerOf(nil, 1)), "new owner")
	assert.Equal(t, []kitty.Index{0, 2}, ids(t, alice), "sender list")
	assert.Equal(t, []kitty.Index{1}, ids(t, bob), "recipient list")

	// and back again appends to the end
	trx, err = storage.NewDBTransaction()
	require.Nil(t, err, "begin")
	require.Nil(t, registry.Transfer(trx, bob, alice, 1), "transfer back")
	require.Nil(t, trx.Commit(), "commit")

	assert.Equal(t, []kitty.Index{0, 2, 1}, ids(t, alice), "sender list after return")
	assert.Equal(t, 0, len(ids(t, bob)), "recipient list after return")
}

func TestTransferErrors(t *testing.T) {
	fixtures.SetupTestStorage(t)
	defer fixtures.TeardownTestStorage()

	alice := fixtures.Alice.Account()
	bob := fixtures.Bob.Account()
	l := ledger.New()
	fund(t, l, alice, 100)
	create(t, l, alice, 0)

	trx, err := storage.NewDBTransaction()
	require.Nil(t, err, "begin")
	defer trx.Abort()

	// self transfer is rejected before existence is checked
	assert.Equal(t, fault.TransferToSelf, registry.Transfer(trx, bob, bob, 99), "self transfer")
	assert.Equal(t, fault.AssetNotFound, registry.Transfer(trx, alice, bob, 99), "missing kitty")
	assert.Equal(t, fault.NotOwner, registry.Transfer(trx, bob, alice, 0), "not owner")
}
