// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/kittyd/configuration"
	"github.com/bitmark-inc/kittyd/kitties"
	"github.com/bitmark-inc/logger"
)

// feeSetter - receives the fees from a reloaded configuration
type feeSetter interface {
	Fees() kitties.Fees
	SetFees(kitties.Fees)
}

// feeReloader - re-reads the fees section whenever the
// configuration file changes; other settings need a restart
type feeReloader struct {
	log      *logger.L
	fileName string
	changes  <-chan struct{}
	module   feeSetter
}

// Run - background process
func (r *feeReloader) Run(args interface{}, shutdown <-chan struct{}) {

	r.log.Info("starting…")

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-r.changes:
			r.reload()
		}
	}
	r.log.Info("stopped")
}

func (r *feeReloader) reload() {
	options := &Configuration{
		Fees: r.module.Fees(),
	}
	err := configuration.ParseConfigurationFile(r.fileName, options)
	if nil != err {
		r.log.Errorf("reload: %q  error: %s", r.fileName, err)
		return
	}

	if options.Fees == r.module.Fees() {
		r.log.Debug("fees unchanged")
		return
	}
	r.module.SetFees(options.Fees)
}
