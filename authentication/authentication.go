// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package authentication - ed25519 signed requests with replay protection
//
// the nonce is the sender's clock in milliseconds since the Unix epoch;
// it must be within the window of the local clock and each
// account/nonce pair is accepted once, even across a restart
package authentication

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/kitties"
	"github.com/bitmark-inc/kittyd/storage"
)

// expired nonces deleted per accepted request
const pruneBatch = 100

// DefaultWindow - allowed clock difference between client and node
const DefaultWindow = 5 * time.Minute

// Authenticator - verifies requests for one network
type Authenticator struct {
	testing bool
	window  time.Duration
	seen    *cache.Cache
	now     func() time.Time
}

// New - create an authenticator
//
// testing selects which network's accounts are accepted
func New(testing bool, window time.Duration) *Authenticator {
	return newAuthenticator(testing, window, time.Now)
}

func newAuthenticator(testing bool, window time.Duration, now func() time.Time) *Authenticator {
	return &Authenticator{
		testing: testing,
		window:  window,
		seen:    cache.New(2*window, window),
		now:     now,
	}
}

// Authenticate - check the request signature and return the signer
func (a *Authenticator) Authenticate(request *kitties.Request) (*account.Account, error) {
	if nil == request || nil == request.Account || nil == request.Account.AccountInterface || 0 == len(request.Signature) {
		return nil, fault.UnsignedRequest
	}

	signer := request.Account
	if signer.IsTesting() != a.testing {
		return nil, fault.WrongNetwork
	}

	if !a.nonceInWindow(request.Nonce) {
		return nil, fault.InvalidNonce
	}

	if err := signer.CheckSignature(request.Message(), request.Signature); nil != err {
		return nil, err
	}

	// only record nonces of genuine requests
	key := nonceKey(request.Nonce, signer)
	if _, found := a.seen.Get(string(key)); found {
		return nil, fault.NonceReused
	}
	if err := a.record(key); nil != err {
		return nil, err
	}
	a.seen.SetDefault(string(key), struct{}{})

	return signer, nil
}

// persist an accepted nonce and drop some that are past the window
func (a *Authenticator) record(key []byte) error {
	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}
	defer trx.Abort()

	if trx.Has(storage.Pool.Nonces, key) {
		return fault.NonceReused
	}
	trx.Put(storage.Pool.Nonces, key, []byte{})

	if err := a.prune(trx); nil != err {
		return err
	}
	return trx.Commit()
}

func (a *Authenticator) prune(trx storage.Transaction) error {
	oldest := a.now().Add(-a.window).UnixNano() / int64(time.Millisecond)
	if oldest <= 1 {
		return nil
	}
	limit := make([]byte, 8)
	binary.BigEndian.PutUint64(limit, uint64(oldest-2))

	expired, err := storage.Pool.Nonces.NewFetchCursor().Limit(limit).Fetch(pruneBatch)
	if nil != err {
		return err
	}
	for _, e := range expired {
		trx.Delete(storage.Pool.Nonces, e.Key)
	}
	return nil
}

// nonce first so expired entries are a prefix of the pool
func nonceKey(nonce uint64, signer *account.Account) []byte {
	key := make([]byte, 8, 8+64)
	binary.BigEndian.PutUint64(key, nonce)
	return append(key, signer.Bytes()...)
}

func (a *Authenticator) nonceInWindow(nonce uint64) bool {
	if nonce > math.MaxInt64/uint64(time.Millisecond) {
		return false
	}
	sent := time.Unix(0, int64(nonce)*int64(time.Millisecond))
	difference := a.now().Sub(sent)
	if difference < 0 {
		difference = -difference
	}
	return difference <= a.window
}

// Nonce - a nonce for the current time, used by clients
func Nonce() uint64 {
	return uint64(time.Now().UnixNano() / int64(time.Millisecond))
}
