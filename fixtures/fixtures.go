// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared set up for package tests
package fixtures

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/storage"
	"github.com/bitmark-inc/logger"
)

const (
	dir         = "testing"
	LogCategory = "testing"
)

// deterministic keys so failures are repeatable
var (
	Alice = privateKey(0x11)
	Bob   = privateKey(0x22)
	Carol = privateKey(0x33)
)

func privateKey(fill byte) *account.PrivateKey {
	seed := make([]byte, ed25519.SeedSize)
	for i := range seed {
		seed[i] = fill
	}
	return &account.PrivateKey{
		Test:       true,
		PrivateKey: ed25519.NewKeyFromSeed(seed),
	}
}

// SetupTestLogger - log to a scratch directory, critical only
func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

// TeardownTestLogger - stop logging and remove its files
func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

// database of the current test
var databaseName string

// SetupTestStorage - logger plus an empty database in a temporary directory
func SetupTestStorage(t *testing.T) {
	SetupTestLogger()
	databaseName = filepath.Join(t.TempDir(), "test.leveldb")
	if err := storage.Initialise(databaseName, storage.ReadWrite); nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
}

// ReopenTestStorage - close and reopen the database, as a node restart does
func ReopenTestStorage(t *testing.T) {
	storage.Finalise()
	if err := storage.Initialise(databaseName, storage.ReadWrite); nil != err {
		t.Fatalf("storage reopen error: %s", err)
	}
}

// TeardownTestStorage - reverse of SetupTestStorage
func TeardownTestStorage() {
	storage.Finalise()
	TeardownTestLogger()
}

func removeFiles() {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}
