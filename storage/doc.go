// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ⧺              = concatenation of byte data
// 3. kitty id       = big endian uint32 (4 bytes)
// 4. pair           = kitty id ⧺ kitty id, lower id first
// 5. count          = successive index value as big endian uint64 (8 bytes)
// 6. owner          = account bytes (key variant ⧺ 32 byte public key)
// 7. id list        = varint count ⧺ varint kitty ids
// 8. amount         = big endian uint64 (8 bytes)
//
// Kitties:
//
//   K ⧺ kitty id           - kitty record
//                            data: 16 byte dna
//   C                      - next kitty id to allocate (single record, empty key)
//                            data: kitty id
//   O ⧺ kitty id           - current owner
//                            data: owner
//
// Ownership:
//
//   N ⧺ owner              - next count value to use for appending to owned items
//                            data: count
//   L ⧺ owner ⧺ count      - list of owned items
//                            data: kitty id
//   D ⧺ owner ⧺ kitty id   - position in list of owned items, for delete after transfer
//                            data: count
//
// Genealogy:
//
//   P ⧺ kitty id           - parents, in the order given to breed
//                            data: kitty id ⧺ kitty id
//   H ⧺ pair               - children of a parent pair
//                            data: id list
//   S ⧺ kitty id           - siblings at the time of birth
//                            data: id list
//   M ⧺ kitty id           - spouses
//                            data: id list
//
// Ledger:
//
//   B ⧺ owner              - free balance
//                            data: amount
//   R ⧺ owner              - reserved balance
//                            data: amount
//   E                      - endowments applied (single record, empty key)
//                            data: count
//
// Authentication:
//
//   A ⧺ nonce ⧺ owner      - accepted request, nonce as big endian uint64
//                            data: none
//
// Testing:
//
//   Z ⧺ key                - testing data
package storage
