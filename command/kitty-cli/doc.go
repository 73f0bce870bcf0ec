// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// kitty-cli - command line client for kittyd
//
// create a key and request a kitty:
//
//   kitty-cli generate --network=testing --output=alice.key
//   kitty-cli --key-file=alice.key --connect=127.0.0.1:2130 create
//
// the key file and node address can also be given by the
// KITTY_KEY_FILE and KITTY_CONNECT environment variables
package main
