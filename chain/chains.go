// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chain - networks a kittyd node can serve
//
// the chain selects the account network flag, the default database
// file and the default randomness seed
package chain

// chain names as written in the configuration file
const (
	Live    = "live"
	Testing = "testing"
	Local   = "local"
)

// Valid - true for a known chain name, names are lower case
func Valid(name string) bool {
	return Live == name || Testing == name || Local == name
}

// IsTesting - every chain except live uses test accounts
func IsTesting(name string) bool {
	return Live != name
}

// DatabaseName - default leveldb file for a chain
func DatabaseName(name string) string {
	return name + ".leveldb"
}

// RandomSeed - default seed so each chain breeds its own sequence
func RandomSeed(name string) string {
	return "kittyd:" + name
}
