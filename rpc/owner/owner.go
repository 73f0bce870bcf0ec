// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package owner

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/ownership"
	"github.com/bitmark-inc/kittyd/rpc/ratelimit"
	"github.com/bitmark-inc/logger"
)

const (
	rateLimitOwner = 200
	rateBurstOwner = 100

	maximumKittiesCount = 100
)

// Lister - pages through the kitties held by an account
type Lister interface {
	KittiesOf(owner *account.Account, start uint64, count int) ([]ownership.Ownership, error)
}

//go:generate mockgen -destination=../mocks/lister.go -package=mocks github.com/bitmark-inc/kittyd/rpc/owner Lister

// Owner - type for the RPC
type Owner struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Lister  Lister
}

// New - create the RPC handler
func New(log *logger.L, lister Lister) *Owner {
	return &Owner{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitOwner, rateBurstOwner),
		Lister:  lister,
	}
}

// KittiesArguments - arguments for RPC
type KittiesArguments struct {
	Owner *account.Account `json:"owner"`
	Start uint64           `json:"start,string"`
	Count int              `json:"count"`
}

// KittiesReply - result of owned kitties RPC
type KittiesReply struct {
	Next uint64                `json:"next,string"`
	Data []ownership.Ownership `json:"data"`
}

// Kitties - list kitties held by an account
//
// Next is the Start value for the following page
func (owner *Owner) Kitties(arguments *KittiesArguments, reply *KittiesReply) error {

	if err := ratelimit.LimitN(owner.Limiter, arguments.Count, maximumKittiesCount); nil != err {
		return err
	}

	if nil == arguments.Owner {
		return fault.InvalidAccount
	}

	log := owner.Log
	log.Debugf("start: %d  count: %d  owner: %s", arguments.Start, arguments.Count, arguments.Owner)

	records, err := owner.Lister.KittiesOf(arguments.Owner, arguments.Start, arguments.Count)
	if nil != err {
		return err
	}

	start := arguments.Start
	if n := len(records); n > 0 {
		start = records[n-1].N + 1
	}

	reply.Next = start
	reply.Data = records
	return nil
}
