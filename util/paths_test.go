// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/kittyd/util"
)

func TestEnsureAbsolute(t *testing.T) {
	assert.Equal(t, "/data/kittyd.leveldb", util.EnsureAbsolute("/data", "kittyd.leveldb"), "relative")
	assert.Equal(t, "/etc/rpc.crt", util.EnsureAbsolute("/data", "/etc/rpc.crt"), "absolute")
	assert.Equal(t, "/data/log", util.EnsureAbsolute("/data/", "./log/"), "cleaned")
}

func TestEnsureFileExists(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "present")
	assert.False(t, util.EnsureFileExists(name), "before create")
	assert.Nil(t, os.WriteFile(name, []byte{}, 0600), "create")
	assert.True(t, util.EnsureFileExists(name), "after create")
}

func TestMakeDirectory(t *testing.T) {
	base := t.TempDir()

	path, err := util.MakeDirectory(base, "data/sub")
	assert.Nil(t, err, "relative")
	assert.Equal(t, filepath.Join(base, "data", "sub"), path, "resolved")
	assert.DirExists(t, path, "created")

	again, err := util.MakeDirectory(base, path)
	assert.Nil(t, err, "existing absolute")
	assert.Equal(t, path, again, "unchanged")

	name := filepath.Join(base, "file")
	assert.Nil(t, os.WriteFile(name, []byte{}, 0600), "create file")
	_, err = util.MakeDirectory(base, "file")
	assert.NotNil(t, err, "file in the way")
}
