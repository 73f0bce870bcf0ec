// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/kitty"
	"github.com/bitmark-inc/kittyd/rpc/balance"
	"github.com/bitmark-inc/kittyd/rpc/genealogy"
	handler "github.com/bitmark-inc/kittyd/rpc/kitties"
	"github.com/bitmark-inc/kittyd/rpc/node"
	"github.com/bitmark-inc/kittyd/rpc/owner"
)

// Get - one kitty and its owner
func (c *Client) Get(id kitty.Index) (*handler.GetReply, error) {
	reply := &handler.GetReply{}
	err := c.call("Kitties.Get", handler.GetArguments{Id: id}, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}

// Count - number of kitties in existence
func (c *Client) Count() (*handler.CountReply, error) {
	reply := &handler.CountReply{}
	err := c.call("Kitties.Count", handler.CountArguments{}, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}

// Owned - one page of an account's kitties
func (c *Client) Owned(account *account.Account, start uint64, count int) (*owner.KittiesReply, error) {
	arguments := owner.KittiesArguments{
		Owner: account,
		Start: start,
		Count: count,
	}
	reply := &owner.KittiesReply{}
	err := c.call("Owner.Kitties", arguments, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}

// Family - parents, siblings and spouses of a kitty
func (c *Client) Family(id kitty.Index) (*genealogy.FamilyReply, error) {
	reply := &genealogy.FamilyReply{}
	err := c.call("Genealogy.Family", genealogy.FamilyArguments{Id: id}, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}

// Children - kitties bred from a pair
func (c *Client) Children(parent1 kitty.Index, parent2 kitty.Index) (*genealogy.ChildrenReply, error) {
	arguments := genealogy.ChildrenArguments{
		Parent1: parent1,
		Parent2: parent2,
	}
	reply := &genealogy.ChildrenReply{}
	err := c.call("Genealogy.Children", arguments, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}

// Balance - free and reserved amounts of an account
func (c *Client) Balance(account *account.Account) (*balance.GetReply, error) {
	reply := &balance.GetReply{}
	err := c.call("Balance.Get", balance.GetArguments{Owner: account}, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}

// Info - node status
func (c *Client) Info() (*node.InfoReply, error) {
	reply := &node.InfoReply{}
	err := c.call("Node.Info", node.InfoArguments{}, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}
