// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"io/ioutil"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/util"
)

// keyFile - on disk form of an identity
type keyFile struct {
	Account    string `json:"account"`
	PrivateKey string `json:"private_key"`
}

func newKeyFile(privateKey *account.PrivateKey) *keyFile {
	return &keyFile{
		Account:    privateKey.Account().String(),
		PrivateKey: privateKey.String(),
	}
}

// readKeyFile - load a private key, checking it matches the stored account
func readKeyFile(fileName string) (*account.PrivateKey, error) {
	data, err := ioutil.ReadFile(fileName)
	if nil != err {
		return nil, err
	}

	var k keyFile
	if err := json.Unmarshal(data, &k); nil != err {
		return nil, err
	}

	privateKey, err := account.PrivateKeyFromHex(k.PrivateKey)
	if nil != err {
		return nil, err
	}
	if privateKey.Account().String() != k.Account {
		return nil, fault.InvalidPublicKeyFile
	}
	return privateKey, nil
}

// writeKeyFile - never replaces an existing file
func writeKeyFile(fileName string, privateKey *account.PrivateKey) error {
	if util.EnsureFileExists(fileName) {
		return fault.FileAlreadyExists
	}

	data, err := json.MarshalIndent(newKeyFile(privateKey), "", "  ")
	if nil != err {
		return err
	}
	return ioutil.WriteFile(fileName, append(data, '\n'), 0600)
}
