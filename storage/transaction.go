// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/logger"
)

// Transaction - a single atomic state transition
//
// writes are held in a batch until Commit; Abort discards them all
type Transaction interface {
	Put(Handle, []byte, []byte)
	PutN(Handle, []byte, uint64)
	Delete(Handle, []byte)
	Get(Handle, []byte) []byte
	GetN(Handle, []byte) (uint64, bool)
	Has(Handle, []byte) bool
	Commit() error
	Abort()
}

type transaction struct {
	sync.Mutex
	access   DataAccess
	writer   *sync.Mutex
	finished bool
}

func newTransaction(access DataAccess, writer *sync.Mutex) *transaction {
	access.Begin()
	return &transaction{
		access: access,
		writer: writer,
	}
}

func (t *transaction) Put(handle Handle, key []byte, value []byte) {
	t.check("Put")
	t.access.Put(handle.prefixKey(key), value)
}

func (t *transaction) PutN(handle Handle, key []byte, value uint64) {
	t.Put(handle, key, encodeN(value))
}

func (t *transaction) Delete(handle Handle, key []byte) {
	t.check("Delete")
	t.access.Delete(handle.prefixKey(key))
}

func (t *transaction) Get(handle Handle, key []byte) []byte {
	t.check("Get")
	value, err := t.access.Get(handle.prefixKey(key))
	if leveldb.ErrNotFound == err {
		return nil
	}
	logger.PanicIfError("transaction.Get", err)
	return value
}

func (t *transaction) GetN(handle Handle, key []byte) (uint64, bool) {
	return decodeN(key, t.Get(handle, key))
}

func (t *transaction) Has(handle Handle, key []byte) bool {
	t.check("Has")
	found, err := t.access.Has(handle.prefixKey(key))
	logger.PanicIfError("transaction.Has", err)
	return found
}

// Commit - write all pending data and release the writer lock
func (t *transaction) Commit() error {
	t.Lock()
	defer t.Unlock()

	if t.finished {
		return fault.TransactionAlreadyFinished
	}
	t.finished = true
	defer t.writer.Unlock()

	return t.access.Commit()
}

// Abort - drop all pending data and release the writer lock
//
// safe to call after Commit, so it can be deferred
func (t *transaction) Abort() {
	t.Lock()
	defer t.Unlock()

	if t.finished {
		return
	}
	t.finished = true
	t.access.Abort()
	t.writer.Unlock()
}

func (t *transaction) check(operation string) {
	t.Lock()
	finished := t.finished
	t.Unlock()
	if finished {
		logger.Panicf("transaction.%s: used after commit or abort", operation)
	}
}
