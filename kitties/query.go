// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package kitties

import (
	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/genealogy"
	"github.com/bitmark-inc/kittyd/kitty"
	"github.com/bitmark-inc/kittyd/ownership"
	"github.com/bitmark-inc/kittyd/registry"
)

// Kitty - fetch a kitty by id
func (m *Module) Kitty(id kitty.Index) (*kitty.Kitty, error) {
	return registry.Get(nil, id)
}

// Owner - current owner of a kitty
func (m *Module) Owner(id kitty.Index) (*account.Account, error) {
	owner := ownership.OwnerOf(nil, id)
	if nil == owner {
		return nil, fault.AssetNotFound
	}
	return owner, nil
}

// KittiesOf - a page of the kitties held by an account
func (m *Module) KittiesOf(owner *account.Account, start uint64, count int) ([]ownership.Ownership, error) {
	if nil == owner {
		return nil, fault.InvalidAccount
	}
	return ownership.ListFor(owner, start, count)
}

// Parents - parents of a bred kitty in breeding order
//
// found is false for a created kitty
func (m *Module) Parents(id kitty.Index) (parent1 kitty.Index, parent2 kitty.Index, found bool) {
	return genealogy.Parents(nil, id)
}

// Children - children of a parent pair, in either order
func (m *Module) Children(parent1 kitty.Index, parent2 kitty.Index) []kitty.Index {
	return genealogy.Children(nil, parent1, parent2)
}

// Siblings - siblings recorded at birth
func (m *Module) Siblings(id kitty.Index) []kitty.Index {
	return genealogy.Siblings(nil, id)
}

// Spouses - distinct breeding partners
func (m *Module) Spouses(id kitty.Index) []kitty.Index {
	return genealogy.Spouses(nil, id)
}

// Count - number of kitties ever issued
func (m *Module) Count() kitty.Index {
	return registry.Count(nil)
}
