// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package kitties

import (
	"encoding/binary"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/kitty"
)

// names bound into every signature
const (
	CreateMethod   = "Kitties.Create"
	TransferMethod = "Kitties.Transfer"
	BreedMethod    = "Kitties.Breed"
)

// Request - the caller's claim of identity for one transition
//
// Method and Arguments are filled in by the Module so a signature
// cannot be replayed against a different operation
type Request struct {
	Account   *account.Account  `json:"account"`
	Nonce     uint64            `json:"nonce,string"`
	Signature account.Signature `json:"signature"`
	Method    string            `json:"-"`
	Arguments []byte            `json:"-"`
}

// Message - the bytes covered by the signature
//
//   method ⧺ 0x00 ⧺ arguments ⧺ nonce (8 bytes big endian)
func (request *Request) Message() []byte {
	nonce := make([]byte, 8)
	binary.BigEndian.PutUint64(nonce, request.Nonce)

	message := make([]byte, 0, len(request.Method)+1+len(request.Arguments)+len(nonce))
	message = append(message, request.Method...)
	message = append(message, 0x00)
	message = append(message, request.Arguments...)
	return append(message, nonce...)
}

// CreateArguments - create takes no arguments
func CreateArguments() []byte {
	return []byte{}
}

// TransferArguments - recipient account bytes ⧺ id
func TransferArguments(to *account.Account, id kitty.Index) []byte {
	return append(to.Bytes(), id.Bytes()...)
}

// BreedArguments - id1 ⧺ id2
func BreedArguments(id1 kitty.Index, id2 kitty.Index) []byte {
	return append(id1.Bytes(), id2.Bytes()...)
}

// Sign - build a signed request, used by clients and tests
func Sign(privateKey *account.PrivateKey, nonce uint64, method string, arguments []byte) *Request {
	request := &Request{
		Account:   privateKey.Account(),
		Nonce:     nonce,
		Method:    method,
		Arguments: arguments,
	}
	request.Signature = privateKey.Sign(request.Message())
	return request
}
