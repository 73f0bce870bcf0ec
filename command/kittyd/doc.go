// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// kittyd - kitty registry node
//
// create a data directory and RPC certificate:
//
//   kittyd gen-rpc-cert /var/lib/kittyd
//
// copy kittyd.conf.sample to the data directory, adjust it, then run:
//
//   kittyd --config-file=/var/lib/kittyd/kittyd.conf
//
// edits to the fees section of the configuration file take effect
// without a restart
package main
