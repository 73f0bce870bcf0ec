// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"crypto/tls"
	"sync"

	"github.com/bitmark-inc/kittyd/counter"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/kitties"
	"github.com/bitmark-inc/kittyd/rpc/balance"
	"github.com/bitmark-inc/kittyd/rpc/certificate"
	"github.com/bitmark-inc/kittyd/rpc/handler"
	"github.com/bitmark-inc/kittyd/rpc/listeners"
	"github.com/bitmark-inc/kittyd/rpc/server"
	"github.com/bitmark-inc/logger"
)

const (
	tlsName      = "client_rpc"
	httpsTLSName = "https_rpc"
)

// globals
type rpcData struct {
	sync.RWMutex // to allow locking

	log *logger.L // logger

	listener listeners.Listener
	https    listeners.Listener // nil when not configured

	// set once during initialise
	initialised bool
}

// global data
var globalData rpcData

// number of open client connections
var connectionCountRPC counter.Counter
var connectionCountHTTPS counter.Counter

// Initialise - start the client RPC listeners and, if it has listen
// addresses, the HTTPS query listener
func Initialise(
	configuration *listeners.RPCConfiguration,
	httpsConfiguration *listeners.HTTPSConfiguration,
	module *kitties.Module,
	balancer balance.Balancer,
	version string,
	testing bool,
) error {

	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	log := logger.New("rpc")
	globalData.log = log
	log.Info("starting…")

	var tlsConfig *tls.Config
	if "" != configuration.Certificate || "" != configuration.PrivateKey {
		var fingerprint [32]byte
		var err error
		tlsConfig, fingerprint, err = certificate.Get(log, tlsName, configuration.Certificate, configuration.PrivateKey)
		if nil != err {
			return err
		}
		log.Infof("%s: SHA3-256 fingerprint: %x", tlsName, fingerprint)
	}

	rpcServer := server.Create(log, module, balancer, version, testing, &connectionCountRPC)

	listener, err := listeners.NewRPC(
		configuration,
		log,
		&connectionCountRPC,
		rpcServer,
		tlsConfig,
	)
	if nil != err {
		return err
	}

	var https listeners.Listener
	if nil != httpsConfiguration && 0 != len(httpsConfiguration.Listen) {
		httpsTLS, fingerprint, err := certificate.Get(log, httpsTLSName, httpsConfiguration.Certificate, httpsConfiguration.PrivateKey)
		if nil != err {
			return err
		}
		log.Infof("%s: SHA3-256 fingerprint: %x", httpsTLSName, fingerprint)

		https, err = listeners.NewHTTPS(
			httpsConfiguration,
			log,
			&connectionCountHTTPS,
			httpsTLS,
			handler.New(log, rpcServer),
		)
		if nil != err {
			return err
		}
	}

	err = listener.Serve()
	if nil != err {
		return err
	}
	if nil != https {
		if err := https.Serve(); nil != err {
			listener.Stop()
			return err
		}
	}
	globalData.listener = listener
	globalData.https = https

	// all data initialised
	globalData.initialised = true

	return nil
}

// Finalise - stop accepting connections
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.listener.Stop()
	if nil != globalData.https {
		globalData.https.Stop()
	}

	// finally...
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}
