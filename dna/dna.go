// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package dna - genetic payload of a kitty
//
// everything here is pure: the same inputs always give the same
// output and no state is read or written
package dna

import (
	"encoding/binary"
	"encoding/hex"

	"golang.org/x/crypto/blake2b"

	"github.com/bitmark-inc/kittyd/fault"
)

// Length - bytes in a genetic payload
const Length = 16

// DNA - the genetic payload
type DNA [Length]byte

// Combine - per-bit choice between two parents
//
// a set selector bit takes the bit from dna1, a clear one from dna2
func Combine(dna1 DNA, dna2 DNA, selector DNA) DNA {
	var result DNA
	for i := 0; i < Length; i += 1 {
		result[i] = (selector[i] & dna1[i]) | (^selector[i] & dna2[i])
	}
	return result
}

// Selector - derive a payload from a seed, the caller and the call index
//
// BLAKE2b with a 16 byte digest over:
//   seed ⧺ caller ⧺ little endian uint32 call index
// used directly as the dna of a created kitty and as the selector
// for a bred one
func Selector(seed []byte, caller []byte, callIndex uint32) DNA {
	h, err := blake2b.New(Length, nil)
	if nil != err {
		// only fails for an invalid size or key
		panic(err)
	}

	index := make([]byte, 4)
	binary.LittleEndian.PutUint32(index, callIndex)

	h.Write(seed)
	h.Write(caller)
	h.Write(index)

	var result DNA
	copy(result[:], h.Sum(nil))
	return result
}

// FromBytes - convert a stored record
func FromBytes(buffer []byte) (DNA, error) {
	var result DNA
	if Length != len(buffer) {
		return result, fault.InvalidDNA
	}
	copy(result[:], buffer)
	return result, nil
}

// String - hex for the fmt package
func (d DNA) String() string {
	return hex.EncodeToString(d[:])
}

// MarshalText - hex form for JSON
func (d DNA) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText - convert hex form
func (d *DNA) UnmarshalText(s []byte) error {
	buffer, err := hex.DecodeString(string(s))
	if nil != err {
		return err
	}
	result, err := FromBytes(buffer)
	if nil != err {
		return err
	}
	*d = result
	return nil
}
