// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package listeners - accept loops for the JSON-RPC and HTTPS servers
package listeners

// Listener - a configured server that can be started and stopped
type Listener interface {
	Serve() error
	Stop()
}
