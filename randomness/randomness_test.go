// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package randomness_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/kittyd/randomness"
)

func TestHashChain(t *testing.T) {
	chain := randomness.New([]byte("kitties"))

	first := sha3.Sum256([]byte("kitties"))
	first = sha3.Sum256(first[:])
	second := sha3.Sum256(first[:])

	s1 := chain.RandomSeed()
	s2 := chain.RandomSeed()

	assert.Equal(t, first[:], s1, "first seed")
	assert.Equal(t, second[:], s2, "second seed")

	// returned slices are copies
	s1[0] ^= 0xff
	assert.Equal(t, second[:], s2, "seed aliased chain state")
}

func TestSameInitialSameSequence(t *testing.T) {
	a := randomness.New([]byte{1, 2, 3})
	b := randomness.New([]byte{1, 2, 3})
	c := randomness.New([]byte{1, 2, 4})

	for i := 0; i < 10; i += 1 {
		sa := a.RandomSeed()
		assert.Equal(t, sa, b.RandomSeed(), "sequence %d", i)
		assert.NotEqual(t, sa, c.RandomSeed(), "sequence %d", i)
	}
}
