// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package balance

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/rpc/ratelimit"
	"github.com/bitmark-inc/logger"
)

const (
	rateLimitBalance = 200
	rateBurstBalance = 100
)

// Balancer - committed amounts for an account
type Balancer interface {
	Balance(owner *account.Account) (free uint64, reserved uint64)
}

// Balance - type for the RPC
type Balance struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Balancer Balancer
}

// New - create the RPC handler
func New(log *logger.L, balancer Balancer) *Balance {
	return &Balance{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitBalance, rateBurstBalance),
		Balancer: balancer,
	}
}

// GetArguments - account to query
type GetArguments struct {
	Owner *account.Account `json:"owner"`
}

// GetReply - free and reserved amounts
type GetReply struct {
	Free     uint64 `json:"free,string"`
	Reserved uint64 `json:"reserved,string"`
}

// Get - balances of one account
func (balance *Balance) Get(arguments *GetArguments, reply *GetReply) error {
	if err := ratelimit.Limit(balance.Limiter); nil != err {
		return err
	}

	if nil == arguments || nil == arguments.Owner {
		return fault.InvalidAccount
	}

	reply.Free, reply.Reserved = balance.Balancer.Balance(arguments.Owner)
	return nil
}
