// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package randomness - seed values for dna selection
package randomness

import (
	"sync"

	"golang.org/x/crypto/sha3"
)

// Source - supplies the seed mixed into every dna selector
type Source interface {
	RandomSeed() []byte
}

// HashChain - each seed is the SHA3-256 of the previous one
//
// the sequence is fully determined by the initial value
type HashChain struct {
	sync.Mutex
	state [32]byte
}

// New - start a chain from an initial value
func New(initial []byte) *HashChain {
	return &HashChain{
		state: sha3.Sum256(initial),
	}
}

// RandomSeed - advance the chain and return the new link
func (chain *HashChain) RandomSeed() []byte {
	chain.Lock()
	defer chain.Unlock()

	chain.state = sha3.Sum256(chain.state[:])
	seed := make([]byte, len(chain.state))
	copy(seed, chain.state[:])
	return seed
}
