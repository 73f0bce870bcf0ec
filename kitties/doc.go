// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package kitties - the state transitions and queries of the registry
//
// each transition authenticates the caller, runs inside a single
// storage transaction and emits one event after a successful commit;
// any error aborts the transaction so no partial state is written
//
// queries only see committed state
package kitties
