// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package server - register every RPC handler
package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/kittyd/counter"
	"github.com/bitmark-inc/kittyd/kitties"
	"github.com/bitmark-inc/kittyd/publish"
	"github.com/bitmark-inc/kittyd/rpc/balance"
	"github.com/bitmark-inc/kittyd/rpc/genealogy"
	handler "github.com/bitmark-inc/kittyd/rpc/kitties"
	"github.com/bitmark-inc/kittyd/rpc/node"
	"github.com/bitmark-inc/kittyd/rpc/owner"
	"github.com/bitmark-inc/logger"
)

// Create - an RPC server offering the kitty services
func Create(log *logger.L, module *kitties.Module, balancer balance.Balancer, version string, testing bool, rpcCount *counter.Counter) *rpc.Server {

	start := time.Now().UTC()
	status := node.Status{
		Testing:   testing,
		Kitties:   func() uint64 { return uint64(module.Count()) },
		Published: publish.Published,
	}

	server := rpc.NewServer()

	_ = server.Register(handler.New(log, module))
	_ = server.Register(owner.New(log, module))
	_ = server.Register(genealogy.New(log, module))
	_ = server.Register(balance.New(log, balancer))
	_ = server.Register(node.New(log, start, version, rpcCount, status))

	return server
}
