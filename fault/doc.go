// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - kittyd error values
//
// Every error returned across the RPC boundary is one of the values
// declared here, so clients and tests compare with == instead of
// matching message text.  Each value has a class type:
//
//   AuthorisationError  bad or missing signature, wrong owner
//   BalanceError        not enough free tokens to reserve
//   ExistsError         duplicate nonce, file or initialisation
//   InvalidError        malformed arguments or configuration
//   LimitError          counter overflow or RPC rate limit
//   NotFoundError       unknown kitty or uninitialised module
//   ProcessError        database or transaction misuse
//
// and the IsErr* helpers test the class of any error.
package fault
