// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/kittyd/fault"
)

// FetchCursor - cursor structure
type FetchCursor struct {
	pool     *PoolHandle
	maxRange util.Range
}

// NewFetchCursor - initialise a cursor to the start of a key range
func (p *PoolHandle) NewFetchCursor() *FetchCursor {
	return &FetchCursor{
		pool: p,
		maxRange: util.Range{
			Start: []byte{p.prefix}, // Start of key range, included in the range
			Limit: p.limit,          // Limit of key range, excluded from the range
		},
	}
}

// Seek - move cursor to specific key position
func (cursor *FetchCursor) Seek(key []byte) *FetchCursor {
	cursor.maxRange.Start = cursor.pool.prefixKey(key)
	return cursor
}

// Limit - stop before the first key having a prefix after key
//
// e.g. Seek(owner).Limit(owner) visits only the owner's records
func (cursor *FetchCursor) Limit(key []byte) *FetchCursor {
	limit := cursor.pool.prefixKey(key)
	for i := len(limit) - 1; i >= 0; i -= 1 {
		if limit[i] < 0xff {
			limit[i] += 1
			cursor.maxRange.Limit = limit[:i+1]
			return cursor
		}
	}
	return cursor
}

// Fetch - up to count elements from the current position
//
// the cursor advances past the returned elements
func (cursor *FetchCursor) Fetch(count int) ([]Element, error) {
	if nil == cursor {
		return nil, fault.InvalidCursor
	}
	if count <= 0 {
		return nil, fault.InvalidCount
	}

	results := make([]Element, 0, count)
	var last []byte
	err := cursor.each(func(key []byte, dataKey []byte, value []byte) (bool, error) {
		last = append(last[:0], key...)
		results = append(results, Element{Key: dataKey, Value: value})
		return len(results) < count, nil
	})

	// resume at the immediate successor of the last key
	if nil != last {
		cursor.maxRange.Start = append(last, 0x00)
	}
	return results, err
}

// Map - call f for every remaining element, stopping at its first error
func (cursor *FetchCursor) Map(f func(key []byte, value []byte) error) error {
	if nil == cursor {
		return fault.InvalidCursor
	}
	return cursor.each(func(_ []byte, dataKey []byte, value []byte) (bool, error) {
		if err := f(dataKey, value); nil != err {
			return false, err
		}
		return true, nil
	})
}

// iterate the range, visit gets the raw key (valid only during the
// call) plus copies of the unprefixed key and the value
func (cursor *FetchCursor) each(visit func(key []byte, dataKey []byte, value []byte) (bool, error)) error {
	if nil == cursor.pool.dataAccess {
		return nil
	}

	poolData.RLock()
	defer poolData.RUnlock()

	iter := cursor.pool.dataAccess.Iterator(&cursor.maxRange)
	defer iter.Release()

	for iter.Next() {
		key := iter.Key()
		dataKey := append([]byte{}, key[1:]...)
		value := append([]byte{}, iter.Value()...)

		more, err := visit(key, dataKey, value)
		if nil != err {
			return err
		}
		if !more {
			break
		}
	}
	return iter.Error()
}
