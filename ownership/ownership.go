// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ownership - owner of each kitty and the per-owner list of kitties
package ownership

import (
	"encoding/binary"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/kitty"
	"github.com/bitmark-inc/kittyd/storage"
	"github.com/bitmark-inc/logger"
)

// from storage/doc.go:
//
//   O ⧺ id               - current owner
//                          data: owner account bytes
//   N ⧺ owner            - next count value to use for appending to owned items
//                          data: count
//   L ⧺ owner ⧺ count    - list of owned items
//                          data: id
//   D ⧺ owner ⧺ id       - position in list of owned items, for delete after transfer
//                          data: count

const (
	uint64ByteSize = 8
)

// Create - record the first owner of a newly inserted kitty
func Create(trx storage.Transaction, owner *account.Account, id kitty.Index) {
	trx.Put(storage.Pool.KittyOwner, id.Bytes(), owner.Bytes())
	appendItem(trx, owner, id)
}

// Transfer - move a kitty from its current owner to a new one
//
// the caller must already have checked that currentOwner owns the kitty
func Transfer(trx storage.Transaction, currentOwner *account.Account, newOwner *account.Account, id kitty.Index) {
	removeItem(trx, currentOwner, id)
	trx.Put(storage.Pool.KittyOwner, id.Bytes(), newOwner.Bytes())
	appendItem(trx, newOwner, id)
}

// OwnerOf - find the owner of a specific kitty
//
// returns nil if the kitty does not exist, a nil trx reads committed data
func OwnerOf(trx storage.Transaction, id kitty.Index) *account.Account {
	ownerBytes := storage.Read(trx, storage.Pool.KittyOwner, id.Bytes())
	if nil == ownerBytes {
		return nil
	}
	owner, err := account.AccountFromBytes(ownerBytes)
	logger.PanicIfError("ownership.OwnerOf", err)
	return owner
}

// adds the item to the end of the owner's list
func appendItem(trx storage.Transaction, owner *account.Account, id kitty.Index) {
	nKey := owner.Bytes()
	count, _ := trx.GetN(storage.Pool.OwnerNextCount, nKey)
	trx.PutN(storage.Pool.OwnerNextCount, nKey, count+1)

	countBytes := make([]byte, uint64ByteSize)
	binary.BigEndian.PutUint64(countBytes, count)

	oKey := append(owner.Bytes(), countBytes...)
	trx.Put(storage.Pool.OwnerList, oKey, id.Bytes())

	dKey := append(owner.Bytes(), id.Bytes()...)
	trx.Put(storage.Pool.OwnerIndex, dKey, countBytes)
}

// deletes both the list entry and its position record
func removeItem(trx storage.Transaction, owner *account.Account, id kitty.Index) {
	dKey := append(owner.Bytes(), id.Bytes()...)
	dCount := trx.Get(storage.Pool.OwnerIndex, dKey)
	if nil == dCount {
		logger.Criticalf("ownership.Transfer: dKey: %x", dKey)
		logger.Criticalf("ownership.Transfer: kitty: %d  owner: %s", id, owner)
		logger.Panic("ownership.Transfer: OwnerIndex database corrupt")
	}

	oKey := append(owner.Bytes(), dCount...)
	trx.Delete(storage.Pool.OwnerList, oKey)
	trx.Delete(storage.Pool.OwnerIndex, dKey)
}
