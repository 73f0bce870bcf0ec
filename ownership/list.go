// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ownership

import (
	"encoding/binary"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/kitty"
	"github.com/bitmark-inc/kittyd/storage"
	"github.com/bitmark-inc/logger"
)

// Ownership - type to represent an ownership record
type Ownership struct {
	N  uint64      `json:"n,string"`
	Id kitty.Index `json:"id"`
}

// ListFor - fetch a list of kitties for an owner
//
// start is the list position to resume from, i.e. the N of the last
// record returned by a previous call plus one
func ListFor(owner *account.Account, start uint64, count int) ([]Ownership, error) {

	startBytes := make([]byte, uint64ByteSize)
	binary.BigEndian.PutUint64(startBytes, start)

	ownerBytes := owner.Bytes()
	prefix := append(owner.Bytes(), startBytes...)

	cursor := storage.Pool.OwnerList.NewFetchCursor().Seek(prefix).Limit(ownerBytes)

	// owner ⧺ count → id
	items, err := cursor.Fetch(count)
	if nil != err {
		return nil, err
	}

	records := make([]Ownership, 0, len(items))
	for _, item := range items {
		split := len(item.Key) - uint64ByteSize
		if split <= 0 {
			logger.Panicf("ownership.ListFor: key too short: %x", item.Key)
		}

		id, err := kitty.IndexFromBytes(item.Value)
		logger.PanicIfError("ownership.ListFor", err)

		records = append(records, Ownership{
			N:  binary.BigEndian.Uint64(item.Key[split:]),
			Id: id,
		})
	}

	return records, nil
}
