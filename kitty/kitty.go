// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package kitty - the kitty record and its identifier
package kitty

import (
	"encoding/binary"
	"math"
	"strconv"

	"github.com/bitmark-inc/kittyd/dna"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/util"
)

// Index - kitty identifier
type Index uint32

// MaximumIndex - once the count reaches this no more kitties can be issued
const MaximumIndex = Index(math.MaxUint32)

// IndexLength - bytes in the key form of an Index
const IndexLength = 4

// Kitty - immutable once created
type Kitty struct {
	Id  Index   `json:"id"`
	DNA dna.DNA `json:"dna"`
}

// Bytes - big endian so keys sort in id order
func (index Index) Bytes() []byte {
	buffer := make([]byte, IndexLength)
	binary.BigEndian.PutUint32(buffer, uint32(index))
	return buffer
}

// String - decimal form
func (index Index) String() string {
	return strconv.FormatUint(uint64(index), 10)
}

// IndexFromBytes - decode the key form
func IndexFromBytes(buffer []byte) (Index, error) {
	if IndexLength != len(buffer) {
		return 0, fault.InvalidAssetId
	}
	return Index(binary.BigEndian.Uint32(buffer)), nil
}

// PackList - varint count followed by varint ids
func PackList(list []Index) []byte {
	buffer := util.ToVarint64(uint64(len(list)))
	for _, index := range list {
		buffer = util.AppendVarint64(buffer, uint64(index))
	}
	return buffer
}

// UnpackList - reverse of PackList
//
// an empty buffer is an empty list
func UnpackList(buffer []byte) ([]Index, error) {
	if 0 == len(buffer) {
		return []Index{}, nil
	}

	count, n := util.FromVarint64(buffer)
	if 0 == n || count > uint64(len(buffer)) {
		return nil, fault.InvalidCount
	}
	buffer = buffer[n:]

	list := make([]Index, 0, count)
	for i := uint64(0); i < count; i += 1 {
		value, n := util.FromVarint64(buffer)
		if 0 == n || value > math.MaxUint32 {
			return nil, fault.InvalidAssetId
		}
		list = append(list, Index(value))
		buffer = buffer[n:]
	}
	if 0 != len(buffer) {
		return nil, fault.InvalidCount
	}
	return list, nil
}
