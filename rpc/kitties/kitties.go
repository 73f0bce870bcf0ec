// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package kitties - RPC access to the kitty transitions
//
// the service name matches the method names bound into request
// signatures, e.g. "Kitties.Create"
package kitties

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/kitties"
	"github.com/bitmark-inc/kittyd/kitty"
	"github.com/bitmark-inc/kittyd/rpc/ratelimit"
	"github.com/bitmark-inc/logger"
)

const (
	rateLimitKitties = 200
	rateBurstKitties = 100
)

// Transitions - the part of the kitties module served here
type Transitions interface {
	Create(*kitties.Request) (kitty.Index, error)
	Transfer(*kitties.Request, *account.Account, kitty.Index) error
	Breed(*kitties.Request, kitty.Index, kitty.Index) (kitty.Index, error)
	Kitty(kitty.Index) (*kitty.Kitty, error)
	Owner(kitty.Index) (*account.Account, error)
	Count() kitty.Index
}

//go:generate mockgen -destination=../mocks/transitions.go -package=mocks github.com/bitmark-inc/kittyd/rpc/kitties Transitions

// Kitties - type for the RPC
type Kitties struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Module  Transitions
}

// New - create the RPC handler
func New(log *logger.L, module Transitions) *Kitties {
	return &Kitties{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitKitties, rateBurstKitties),
		Module:  module,
	}
}

// ---

// CreateArguments - a signed create request
type CreateArguments struct {
	Request *kitties.Request `json:"request"`
}

// IdReply - the kitty produced or moved by a transition
type IdReply struct {
	Id kitty.Index `json:"id"`
}

// Create - issue a new kitty to the signer
func (k *Kitties) Create(arguments *CreateArguments, reply *IdReply) error {
	if err := ratelimit.Limit(k.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.MissingParameters
	}

	id, err := k.Module.Create(arguments.Request)
	if nil != err {
		return err
	}
	reply.Id = id
	return nil
}

// ---

// TransferArguments - a signed transfer request
type TransferArguments struct {
	Request *kitties.Request `json:"request"`
	To      *account.Account `json:"to"`
	Id      kitty.Index      `json:"id"`
}

// Transfer - give one of the signer's kitties to another account
func (k *Kitties) Transfer(arguments *TransferArguments, reply *IdReply) error {
	if err := ratelimit.Limit(k.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.MissingParameters
	}

	err := k.Module.Transfer(arguments.Request, arguments.To, arguments.Id)
	if nil != err {
		return err
	}
	reply.Id = arguments.Id
	return nil
}

// ---

// BreedArguments - a signed breed request
type BreedArguments struct {
	Request *kitties.Request `json:"request"`
	Parent1 kitty.Index      `json:"parent1"`
	Parent2 kitty.Index      `json:"parent2"`
}

// Breed - produce a child of two of the signer's kitties
func (k *Kitties) Breed(arguments *BreedArguments, reply *IdReply) error {
	if err := ratelimit.Limit(k.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.MissingParameters
	}

	id, err := k.Module.Breed(arguments.Request, arguments.Parent1, arguments.Parent2)
	if nil != err {
		return err
	}
	reply.Id = id
	return nil
}

// ---

// GetArguments - kitty to look up
type GetArguments struct {
	Id kitty.Index `json:"id"`
}

// GetReply - a kitty and its current owner
type GetReply struct {
	Kitty *kitty.Kitty     `json:"kitty"`
	Owner *account.Account `json:"owner"`
}

// Get - fetch a kitty
func (k *Kitties) Get(arguments *GetArguments, reply *GetReply) error {
	if err := ratelimit.Limit(k.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.MissingParameters
	}

	record, err := k.Module.Kitty(arguments.Id)
	if nil != err {
		return err
	}
	owner, err := k.Module.Owner(arguments.Id)
	if nil != err {
		return err
	}

	reply.Kitty = record
	reply.Owner = owner
	return nil
}

// ---

// CountArguments - empty arguments for count request
type CountArguments struct{}

// CountReply - number of kitties ever issued
type CountReply struct {
	Count uint64 `json:"count,string"`
}

// Count - number of kitties
func (k *Kitties) Count(_ *CountArguments, reply *CountReply) error {
	if err := ratelimit.Limit(k.Limiter); nil != err {
		return err
	}
	reply.Count = uint64(k.Module.Count())
	return nil
}
