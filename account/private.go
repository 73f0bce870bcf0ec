// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"crypto/rand"
	"encoding/hex"
	"io"

	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/kittyd/fault"
)

// PrivateKey - an ed25519 signing key and its network
type PrivateKey struct {
	Test       bool
	PrivateKey ed25519.PrivateKey
}

// NewPrivateKey - generate a fresh key from the system random source
func NewPrivateKey(test bool) (*PrivateKey, error) {
	return newPrivateKey(test, rand.Reader)
}

func newPrivateKey(test bool, random io.Reader) (*PrivateKey, error) {
	_, priv, err := ed25519.GenerateKey(random)
	if nil != err {
		return nil, err
	}
	return &PrivateKey{
		Test:       test,
		PrivateKey: priv,
	}, nil
}

// PrivateKeyFromHex - decode the form written by String
//
// a leading "test:" marks a testing network key
func PrivateKeyFromHex(s string) (*PrivateKey, error) {
	test := false
	if len(s) > 5 && "test:" == s[:5] {
		test = true
		s = s[5:]
	}
	buffer, err := hex.DecodeString(s)
	if nil != err {
		return nil, err
	}
	if ed25519.PrivateKeySize != len(buffer) {
		return nil, fault.InvalidKeyLength
	}
	return &PrivateKey{
		Test:       test,
		PrivateKey: buffer,
	}, nil
}

// Account - the public account matching this key
func (privateKey *PrivateKey) Account() *Account {
	publicKey := privateKey.PrivateKey.Public().(ed25519.PublicKey)
	return &Account{
		AccountInterface: &ED25519Account{
			Test:      privateKey.Test,
			PublicKey: []byte(publicKey),
		},
	}
}

// Sign - produce an ed25519 signature of message
func (privateKey *PrivateKey) Sign(message []byte) Signature {
	return ed25519.Sign(privateKey.PrivateKey, message)
}

// String - hex form suitable for a key file
func (privateKey *PrivateKey) String() string {
	s := hex.EncodeToString(privateKey.PrivateKey)
	if privateKey.Test {
		return "test:" + s
	}
	return s
}
