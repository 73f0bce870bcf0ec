// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package breeding - produce a child kitty from two parents
package breeding

import (
	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/dna"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/genealogy"
	"github.com/bitmark-inc/kittyd/kitty"
	"github.com/bitmark-inc/kittyd/ledger"
	"github.com/bitmark-inc/kittyd/ownership"
	"github.com/bitmark-inc/kittyd/registry"
	"github.com/bitmark-inc/kittyd/storage"
)

// Breed - create a child of id1 and id2 owned by caller
//
// the fee is reserved before any kitty state is read, so on error the
// caller must abort trx to return it
func Breed(
	trx storage.Transaction,
	reserver ledger.Reserver,
	fee uint64,
	caller *account.Account,
	id1 kitty.Index,
	id2 kitty.Index,
	seed []byte,
	callIndex uint32,
) (*kitty.Kitty, error) {

	if id1 == id2 {
		return nil, fault.SameParentNotAllowed
	}

	if err := reserver.Reserve(trx, caller, fee); nil != err {
		return nil, err
	}

	kitty1, err := registry.Get(trx, id1)
	if nil != err {
		return nil, fault.InvalidAssetId
	}
	kitty2, err := registry.Get(trx, id2)
	if nil != err {
		return nil, fault.InvalidAssetId
	}

	owner1 := ownership.OwnerOf(trx, id1)
	owner2 := ownership.OwnerOf(trx, id2)
	if nil == owner1 || nil == owner2 {
		return nil, fault.AssetNotFound
	}
	if !owner1.Equal(caller) || !owner2.Equal(caller) {
		return nil, fault.NotOwner
	}

	childId, err := registry.NextKittyIndex(trx)
	if nil != err {
		return nil, err
	}

	selector := dna.Selector(seed, caller.Bytes(), callIndex)
	child := &kitty.Kitty{
		Id:  childId,
		DNA: dna.Combine(kitty1.DNA, kitty2.DNA, selector),
	}
	registry.Insert(trx, caller, child)

	genealogy.RecordSpouse(trx, id1, id2)
	genealogy.RecordSpouse(trx, id2, id1)
	genealogy.RecordParents(trx, childId, id1, id2)
	genealogy.RecordChild(trx, id1, id2, childId)
	genealogy.ComputeSiblings(trx, childId)

	return child, nil
}
