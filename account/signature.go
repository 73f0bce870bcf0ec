// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"encoding/hex"
)

// Signature - ed25519 signature over a request message, hex in JSON
type Signature []byte

// String - hex for %s
func (signature Signature) String() string {
	return hex.EncodeToString(signature)
}

// GoString - tagged hex for %#v
func (signature Signature) GoString() string {
	return "<signature:" + signature.String() + ">"
}

// MarshalText - hex text form
func (signature Signature) MarshalText() ([]byte, error) {
	return []byte(signature.String()), nil
}

// UnmarshalText - decode hex text, length is checked on verification
func (signature *Signature) UnmarshalText(s []byte) error {
	sig, err := hex.DecodeString(string(s))
	if nil != err {
		return err
	}
	*signature = sig
	return nil
}
