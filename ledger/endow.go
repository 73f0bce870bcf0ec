// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/storage"
)

// Endowment - an opening balance
type Endowment struct {
	Owner  *account.Account
	Amount uint64
}

var endowedKey = []byte{}

// Endow - credit opening balances, once per database
//
// returns false when an earlier run already endowed this database
func (l *Ledger) Endow(endowments []Endowment) (bool, error) {
	trx, err := storage.NewDBTransaction()
	if nil != err {
		return false, err
	}
	defer trx.Abort()

	if trx.Has(storage.Pool.Endowed, endowedKey) {
		return false, nil
	}

	for _, e := range endowments {
		if err := l.Deposit(trx, e.Owner, e.Amount); nil != err {
			return false, err
		}
	}
	trx.PutN(storage.Pool.Endowed, endowedKey, uint64(len(endowments)))

	if err := trx.Commit(); nil != err {
		return false, err
	}
	return true, nil
}
