// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package genealogy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/kittyd/fixtures"
	"github.com/bitmark-inc/kittyd/genealogy"
	"github.com/bitmark-inc/kittyd/kitty"
	"github.com/bitmark-inc/kittyd/storage"
)

func TestParents(t *testing.T) {
	fixtures.SetupTestStorage(t)
	defer fixtures.TeardownTestStorage()

	trx, err := storage.NewDBTransaction()
	require.Nil(t, err, "begin")
	genealogy.RecordParents(trx, 5, 3, 1)

	p1, p2, found := genealogy.Parents(trx, 5)
	assert.True(t, found, "pending parents")
	assert.Equal(t, kitty.Index(3), p1, "pending parent 1")
	assert.Equal(t, kitty.Index(1), p2, "pending parent 2")

	_, _, found = genealogy.Parents(nil, 5)
	assert.False(t, found, "uncommitted parents visible")
	require.Nil(t, trx.Commit(), "commit")

	p1, p2, found = genealogy.Parents(nil, 5)
	assert.True(t, found, "parents")
	assert.Equal(t, kitty.Index(3), p1, "breeding order kept")
	assert.Equal(t, kitty.Index(1), p2, "breeding order kept")

	_, _, found = genealogy.Parents(nil, 3)
	assert.False(t, found, "created kitty has parents")
}

func TestChildrenAndSiblings(t *testing.T) {
	fixtures.SetupTestStorage(t)
	defer fixtures.TeardownTestStorage()

	trx, err := storage.NewDBTransaction()
	require.Nil(t, err, "begin")

	birth := func(parent1 kitty.Index, parent2 kitty.Index, child kitty.Index) {
		genealogy.RecordParents(trx, child, parent1, parent2)
		genealogy.RecordChild(trx, parent1, parent2, child)
		genealogy.ComputeSiblings(trx, child)
	}

	birth(0, 1, 2)
	birth(1, 0, 3) // reversed pair
	birth(0, 1, 4)
	birth(0, 2, 5)
	require.Nil(t, trx.Commit(), "commit")

	assert.Equal(t, []kitty.Index{2, 3, 4}, genealogy.Children(nil, 0, 1), "children")
	assert.Equal(t, []kitty.Index{2, 3, 4}, genealogy.Children(nil, 1, 0), "children reversed")
	assert.Equal(t, []kitty.Index{5}, genealogy.Children(nil, 2, 0), "other pair")
	assert.Equal(t, []kitty.Index{}, genealogy.Children(nil, 3, 4), "no children")

	// snapshots taken at birth
	assert.Equal(t, []kitty.Index{}, genealogy.Siblings(nil, 2), "first child")
	assert.Equal(t, []kitty.Index{2}, genealogy.Siblings(nil, 3), "second child")
	assert.Equal(t, []kitty.Index{2, 3}, genealogy.Siblings(nil, 4), "third child")
	assert.Equal(t, []kitty.Index{}, genealogy.Siblings(nil, 5), "only child")
}

func TestComputeSiblingsWithoutParents(t *testing.T) {
	fixtures.SetupTestStorage(t)
	defer fixtures.TeardownTestStorage()

	trx, err := storage.NewDBTransaction()
	require.Nil(t, err, "begin")
	genealogy.ComputeSiblings(trx, 9)
	require.Nil(t, trx.Commit(), "commit")

	assert.True(t, storage.Pool.Siblings.Has(kitty.Index(9).Bytes()), "empty list stored")
	assert.Equal(t, []kitty.Index{}, genealogy.Siblings(nil, 9), "siblings")
}

func TestSpouses(t *testing.T) {
	fixtures.SetupTestStorage(t)
	defer fixtures.TeardownTestStorage()

	trx, err := storage.NewDBTransaction()
	require.Nil(t, err, "begin")
	for _, pair := range [][2]kitty.Index{{0, 1}, {0, 1}, {1, 0}, {0, 2}} {
		genealogy.RecordSpouse(trx, pair[0], pair[1])
		genealogy.RecordSpouse(trx, pair[1], pair[0])
	}
	require.Nil(t, trx.Commit(), "commit")

	assert.Equal(t, []kitty.Index{1, 2}, genealogy.Spouses(nil, 0), "spouses of 0")
	assert.Equal(t, []kitty.Index{0}, genealogy.Spouses(nil, 1), "spouses of 1")
	assert.Equal(t, []kitty.Index{0}, genealogy.Spouses(nil, 2), "spouses of 2")
	assert.Equal(t, []kitty.Index{}, genealogy.Spouses(nil, 3), "no spouses")
}
