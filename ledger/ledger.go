// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - free and reserved balances per account
//
// reservation moves value from free to reserved, nothing here ever
// releases a reservation
package ledger

import (
	"math"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/storage"
)

// Reserver - escrow collaborator used by create and breed
type Reserver interface {
	Reserve(trx storage.Transaction, owner *account.Account, amount uint64) error
}

// Ledger - reserver backed by the balance pools
type Ledger struct{}

// New - create a ledger over the global storage pools
func New() *Ledger {
	return &Ledger{}
}

// Reserve - move amount from the free balance to the reserved balance
//
// a zero amount always succeeds and writes nothing
func (l *Ledger) Reserve(trx storage.Transaction, owner *account.Account, amount uint64) error {
	if 0 == amount {
		return nil
	}

	key := owner.Bytes()
	free, _ := trx.GetN(storage.Pool.Balances, key)
	if free < amount {
		return fault.InsufficientBalance
	}

	reserved, _ := trx.GetN(storage.Pool.Reserved, key)
	if reserved > math.MaxUint64-amount {
		return fault.BalanceOverflow
	}

	putBalance(trx, storage.Pool.Balances, key, free-amount)
	trx.PutN(storage.Pool.Reserved, key, reserved+amount)
	return nil
}

// Deposit - add to the free balance
func (l *Ledger) Deposit(trx storage.Transaction, owner *account.Account, amount uint64) error {
	key := owner.Bytes()
	free, _ := trx.GetN(storage.Pool.Balances, key)
	if free > math.MaxUint64-amount {
		return fault.BalanceOverflow
	}
	putBalance(trx, storage.Pool.Balances, key, free+amount)
	return nil
}

// Balance - committed free and reserved amounts
func (l *Ledger) Balance(owner *account.Account) (free uint64, reserved uint64) {
	key := owner.Bytes()
	free, _ = storage.Pool.Balances.GetN(key)
	reserved, _ = storage.Pool.Reserved.GetN(key)
	return free, reserved
}

// zero balances are removed rather than stored
func putBalance(trx storage.Transaction, handle storage.Handle, key []byte, value uint64) {
	if 0 == value {
		trx.Delete(handle, key)
		return
	}
	trx.PutN(handle, key, value)
}
