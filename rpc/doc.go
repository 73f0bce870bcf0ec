// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - JSON RPC service for clients
//
// services offered:
//
//   Kitties.Create      signed: issue a new kitty
//   Kitties.Transfer    signed: give a kitty to another account
//   Kitties.Breed       signed: breed two kitties
//   Kitties.Get         kitty data and owner
//   Kitties.Count       number of kitties issued
//   Owner.Kitties       page through an account's kitties
//   Genealogy.Family    parents, siblings and spouses
//   Genealogy.Children  children of a pair
//   Balance.Get         free and reserved amounts
//   Node.Info           node status
package rpc
