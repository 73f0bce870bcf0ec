// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/kitties"
	"github.com/bitmark-inc/kittyd/kitty"
	handler "github.com/bitmark-inc/kittyd/rpc/kitties"
)

// Create - issue a new kitty to the key's account
func (c *Client) Create(privateKey *account.PrivateKey) (*handler.IdReply, error) {
	request := kitties.Sign(privateKey, c.nextNonce(), kitties.CreateMethod, kitties.CreateArguments())

	arguments := handler.CreateArguments{
		Request: request,
	}
	reply := &handler.IdReply{}
	if err := c.call(kitties.CreateMethod, arguments, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// Transfer - move a kitty owned by the key's account
func (c *Client) Transfer(privateKey *account.PrivateKey, to *account.Account, id kitty.Index) (*handler.IdReply, error) {
	request := kitties.Sign(privateKey, c.nextNonce(), kitties.TransferMethod, kitties.TransferArguments(to, id))

	arguments := handler.TransferArguments{
		Request: request,
		To:      to,
		Id:      id,
	}
	reply := &handler.IdReply{}
	if err := c.call(kitties.TransferMethod, arguments, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// Breed - produce a child from two kitties owned by the key's account
func (c *Client) Breed(privateKey *account.PrivateKey, parent1 kitty.Index, parent2 kitty.Index) (*handler.IdReply, error) {
	request := kitties.Sign(privateKey, c.nextNonce(), kitties.BreedMethod, kitties.BreedArguments(parent1, parent2))

	arguments := handler.BreedArguments{
		Request: request,
		Parent1: parent1,
		Parent2: parent2,
	}
	reply := &handler.IdReply{}
	if err := c.call(kitties.BreedMethod, arguments, reply); nil != err {
		return nil, err
	}
	return reply, nil
}
