// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package genealogy - parent, child, sibling and spouse relations
//
// every read takes an optional transaction, nil reads committed data
package genealogy

import (
	"github.com/bitmark-inc/kittyd/kitty"
	"github.com/bitmark-inc/kittyd/storage"
	"github.com/bitmark-inc/logger"
)

// from storage/doc.go:
//
//   P ⧺ child            - parents in the order given to breed
//                          data: parent1 ⧺ parent2
//   H ⧺ min ⧺ max        - children of a parent pair, normalised order
//                          data: packed id list
//   S ⧺ id               - siblings at time of birth
//                          data: packed id list
//   M ⧺ id               - distinct breeding partners
//                          data: packed id list

// RecordParents - store the parent pair of a child
func RecordParents(trx storage.Transaction, child kitty.Index, parent1 kitty.Index, parent2 kitty.Index) {
	trx.Put(storage.Pool.Parents, child.Bytes(), append(parent1.Bytes(), parent2.Bytes()...))
}

// Parents - the parents of a kitty in breeding order
//
// found is false for a kitty that was created rather than bred
func Parents(trx storage.Transaction, child kitty.Index) (parent1 kitty.Index, parent2 kitty.Index, found bool) {
	packed := storage.Read(trx, storage.Pool.Parents, child.Bytes())
	if nil == packed {
		return 0, 0, false
	}
	if 2*kitty.IndexLength != len(packed) {
		logger.Panicf("genealogy.Parents: corrupt record for: %d: %x", child, packed)
	}
	parent1, _ = kitty.IndexFromBytes(packed[:kitty.IndexLength])
	parent2, _ = kitty.IndexFromBytes(packed[kitty.IndexLength:])
	return parent1, parent2, true
}

// RecordChild - append a child to the list for its parent pair
func RecordChild(trx storage.Transaction, parent1 kitty.Index, parent2 kitty.Index, child kitty.Index) {
	key := pairKey(parent1, parent2)
	children := readList(trx, storage.Pool.Children, key)
	trx.Put(storage.Pool.Children, key, kitty.PackList(append(children, child)))
}

// Children - all children of a parent pair in birth order
//
// the pair is unordered, (a, b) and (b, a) give the same list
func Children(trx storage.Transaction, parent1 kitty.Index, parent2 kitty.Index) []kitty.Index {
	return readList(trx, storage.Pool.Children, pairKey(parent1, parent2))
}

// ComputeSiblings - snapshot the other children of a kitty's parents
//
// must follow RecordChild for the same child
func ComputeSiblings(trx storage.Transaction, child kitty.Index) {
	siblings := []kitty.Index{}

	parent1, parent2, found := Parents(trx, child)
	if found {
		for _, id := range Children(trx, parent1, parent2) {
			if id != child {
				siblings = append(siblings, id)
			}
		}
	}
	trx.Put(storage.Pool.Siblings, child.Bytes(), kitty.PackList(siblings))
}

// Siblings - the siblings recorded when the kitty was born
func Siblings(trx storage.Transaction, id kitty.Index) []kitty.Index {
	return readList(trx, storage.Pool.Siblings, id.Bytes())
}

// RecordSpouse - add partner to the spouses of id unless already there
//
// one direction only, breeding calls it for both
func RecordSpouse(trx storage.Transaction, id kitty.Index, partner kitty.Index) {
	key := id.Bytes()
	spouses := readList(trx, storage.Pool.Spouses, key)
	for _, s := range spouses {
		if s == partner {
			return
		}
	}
	trx.Put(storage.Pool.Spouses, key, kitty.PackList(append(spouses, partner)))
}

// Spouses - distinct partners in order of first breeding
func Spouses(trx storage.Transaction, id kitty.Index) []kitty.Index {
	return readList(trx, storage.Pool.Spouses, id.Bytes())
}

// smaller id first so both orders share a key
func pairKey(parent1 kitty.Index, parent2 kitty.Index) []byte {
	if parent2 < parent1 {
		parent1, parent2 = parent2, parent1
	}
	return append(parent1.Bytes(), parent2.Bytes()...)
}

func readList(trx storage.Transaction, handle storage.Handle, key []byte) []kitty.Index {
	list, err := kitty.UnpackList(storage.Read(trx, handle, key))
	if nil != err {
		logger.Criticalf("genealogy: corrupt list for key: %x  error: %s", key, err)
		logger.Panic("genealogy: database corrupt")
	}
	return list
}
