// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package registry - kitty records, id allocation, creation and transfer
package registry

import (
	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/dna"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/kitty"
	"github.com/bitmark-inc/kittyd/ledger"
	"github.com/bitmark-inc/kittyd/ownership"
	"github.com/bitmark-inc/kittyd/storage"
	"github.com/bitmark-inc/logger"
)

// from storage/doc.go:
//
//   K ⧺ id               - kitty record
//                          data: dna
//   C                    - number of kitties ever created, also the next id
//                          data: count

// the count has no key of its own, the pool prefix is the whole key
var countKey = []byte{}

// Count - number of kitties ever created
//
// a nil trx reads committed data
func Count(trx storage.Transaction) kitty.Index {
	count, _ := storage.ReadN(trx, storage.Pool.KittiesCount, countKey)
	if count > uint64(kitty.MaximumIndex) {
		logger.Panicf("registry.Count: count: %d exceeds maximum", count)
	}
	return kitty.Index(count)
}

// NextKittyIndex - the id the next inserted kitty will receive
//
// the count is not advanced here, only Insert does that
func NextKittyIndex(trx storage.Transaction) (kitty.Index, error) {
	next := Count(trx)
	if kitty.MaximumIndex == next {
		return 0, fault.CountOverflow
	}
	return next, nil
}

// Insert - persist a new kitty with its owner and advance the count
func Insert(trx storage.Transaction, owner *account.Account, k *kitty.Kitty) {
	trx.Put(storage.Pool.Kitties, k.Id.Bytes(), k.DNA[:])
	trx.PutN(storage.Pool.KittiesCount, countKey, uint64(k.Id)+1)
	ownership.Create(trx, owner, k.Id)
}

// Get - fetch a kitty record
//
// a nil trx reads committed data
func Get(trx storage.Transaction, id kitty.Index) (*kitty.Kitty, error) {
	packed := storage.Read(trx, storage.Pool.Kitties, id.Bytes())
	if nil == packed {
		return nil, fault.AssetNotFound
	}
	d, err := dna.FromBytes(packed)
	logger.PanicIfError("registry.Get", err)

	return &kitty.Kitty{
		Id:  id,
		DNA: d,
	}, nil
}

// Create - issue a new kitty with random dna
//
// checks: the id space is not exhausted then the fee can be reserved
func Create(
	trx storage.Transaction,
	reserver ledger.Reserver,
	fee uint64,
	owner *account.Account,
	seed []byte,
	callIndex uint32,
) (*kitty.Kitty, error) {

	id, err := NextKittyIndex(trx)
	if nil != err {
		return nil, err
	}

	selector := dna.Selector(seed, owner.Bytes(), callIndex)

	if err := reserver.Reserve(trx, owner, fee); nil != err {
		return nil, err
	}

	k := &kitty.Kitty{
		Id:  id,
		DNA: selector,
	}
	Insert(trx, owner, k)
	return k, nil
}

// Transfer - change the owner of a kitty
//
// checks, in order: not to self, kitty exists, sender is the owner
func Transfer(trx storage.Transaction, from *account.Account, to *account.Account, id kitty.Index) error {
	if from.Equal(to) {
		return fault.TransferToSelf
	}

	owner := ownership.OwnerOf(trx, id)
	if nil == owner {
		return fault.AssetNotFound
	}
	if !owner.Equal(from) {
		return fault.NotOwner
	}

	ownership.Transfer(trx, from, to, id)
	return nil
}
