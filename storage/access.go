// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"
)

// DataAccess - batched writes over a database with read-your-writes
type DataAccess interface {
	Begin()
	Put([]byte, []byte)
	Delete([]byte)
	Commit() error
	Abort()

	// see pending writes
	Get([]byte) ([]byte, error)
	Has([]byte) (bool, error)

	// committed data only
	GetCommitted([]byte) ([]byte, error)
	HasCommitted([]byte) (bool, error)
	Iterator(*ldb_util.Range) iterator.Iterator
}

type accessData struct {
	db    *leveldb.DB
	batch *leveldb.Batch
	cache Cache
}

func newDA(db *leveldb.DB) DataAccess {
	return &accessData{
		db:    db,
		batch: new(leveldb.Batch),
		cache: newCache(),
	}
}

func (d *accessData) Begin() {
	d.batch.Reset()
	d.cache.Clear()
}

func (d *accessData) Put(key []byte, value []byte) {
	v := make([]byte, len(value))
	copy(v, value)
	d.cache.Set(dbPut, string(key), v)
	d.batch.Put(key, v)
}

func (d *accessData) Delete(key []byte) {
	d.cache.Set(dbDelete, string(key), nil)
	d.batch.Delete(key)
}

// Commit - write the whole batch atomically
func (d *accessData) Commit() error {
	err := d.db.Write(d.batch, nil)
	d.Begin()
	return err
}

// Abort - discard every pending write
func (d *accessData) Abort() {
	d.Begin()
}

func (d *accessData) Get(key []byte) ([]byte, error) {
	value, op, found := d.cache.Get(string(key))
	if found {
		if dbDelete == op {
			return nil, leveldb.ErrNotFound
		}
		return value, nil
	}
	return d.db.Get(key, nil)
}

func (d *accessData) Has(key []byte) (bool, error) {
	_, op, found := d.cache.Get(string(key))
	if found {
		return dbPut == op, nil
	}
	return d.db.Has(key, nil)
}

func (d *accessData) GetCommitted(key []byte) ([]byte, error) {
	return d.db.Get(key, nil)
}

func (d *accessData) HasCommitted(key []byte) (bool, error) {
	return d.db.Has(key, nil)
}

func (d *accessData) Iterator(searchRange *ldb_util.Range) iterator.Iterator {
	return d.db.NewIterator(searchRange, nil)
}
