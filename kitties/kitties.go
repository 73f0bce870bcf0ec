// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package kitties

import (
	"sync"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/breeding"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/kitty"
	"github.com/bitmark-inc/kittyd/ledger"
	"github.com/bitmark-inc/kittyd/randomness"
	"github.com/bitmark-inc/kittyd/registry"
	"github.com/bitmark-inc/kittyd/storage"
	"github.com/bitmark-inc/logger"
)

// Authenticator - establishes who sent a request
type Authenticator interface {
	Authenticate(*Request) (*account.Account, error)
}

// Fees - amounts reserved from the caller by each transition
type Fees struct {
	CreateReserve uint64 `gluamapper:"create_reserve" json:"create_reserve"`
	BreedReserve  uint64 `gluamapper:"breed_reserve" json:"breed_reserve"`
}

//go:generate mockgen -destination=mocks/authenticator.go -package=mocks github.com/bitmark-inc/kittyd/kitties Authenticator
//go:generate mockgen -destination=mocks/emitter.go -package=mocks github.com/bitmark-inc/kittyd/kitties Emitter
//go:generate mockgen -destination=mocks/reserver.go -package=mocks github.com/bitmark-inc/kittyd/ledger Reserver
//go:generate mockgen -destination=mocks/source.go -package=mocks github.com/bitmark-inc/kittyd/randomness Source

// Module - the transition API
type Module struct {
	log           *logger.L
	authenticator Authenticator
	reserver      ledger.Reserver
	random        randomness.Source
	emitter       Emitter

	// fees can be replaced by a configuration reload
	feesLock sync.RWMutex
	fees     Fees
}

// New - create the module from its collaborators
func New(
	log *logger.L,
	authenticator Authenticator,
	reserver ledger.Reserver,
	random randomness.Source,
	emitter Emitter,
	fees Fees,
) *Module {
	return &Module{
		log:           log,
		authenticator: authenticator,
		reserver:      reserver,
		random:        random,
		emitter:       emitter,
		fees:          fees,
	}
}

// Fees - the amounts currently charged
func (m *Module) Fees() Fees {
	m.feesLock.RLock()
	defer m.feesLock.RUnlock()
	return m.fees
}

// SetFees - charge different amounts from the next transition
func (m *Module) SetFees(fees Fees) {
	m.feesLock.Lock()
	m.fees = fees
	m.feesLock.Unlock()
	m.log.Infof("fees: create: %d  breed: %d", fees.CreateReserve, fees.BreedReserve)
}

// Create - issue a new kitty to the caller
func (m *Module) Create(request *Request) (kitty.Index, error) {
	owner, err := m.authenticate(request, CreateMethod, CreateArguments())
	if nil != err {
		return 0, err
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return 0, err
	}
	defer trx.Abort()

	k, err := registry.Create(trx, m.reserver, m.Fees().CreateReserve, owner, m.random.RandomSeed(), callIndex(trx))
	if nil != err {
		m.log.Debugf("create: owner: %s  error: %s", owner, err)
		return 0, err
	}

	if err := trx.Commit(); nil != err {
		m.log.Errorf("create: commit error: %s", err)
		return 0, err
	}

	m.log.Infof("created: %d  owner: %s  dna: %s", k.Id, owner, k.DNA)
	m.emitter.Emit(Created{
		Owner: owner,
		Id:    k.Id,
	})
	return k.Id, nil
}

// Transfer - give a kitty owned by the caller to another account
func (m *Module) Transfer(request *Request, to *account.Account, id kitty.Index) error {
	if nil == to {
		return fault.InvalidAccount
	}

	from, err := m.authenticate(request, TransferMethod, TransferArguments(to, id))
	if nil != err {
		return err
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}
	defer trx.Abort()

	if err := registry.Transfer(trx, from, to, id); nil != err {
		m.log.Debugf("transfer: %d  from: %s  to: %s  error: %s", id, from, to, err)
		return err
	}

	if err := trx.Commit(); nil != err {
		m.log.Errorf("transfer: commit error: %s", err)
		return err
	}

	m.log.Infof("transferred: %d  from: %s  to: %s", id, from, to)
	m.emitter.Emit(Transferred{
		From: from,
		To:   to,
		Id:   id,
	})
	return nil
}

// Breed - produce a child of two kitties owned by the caller
func (m *Module) Breed(request *Request, id1 kitty.Index, id2 kitty.Index) (kitty.Index, error) {
	owner, err := m.authenticate(request, BreedMethod, BreedArguments(id1, id2))
	if nil != err {
		return 0, err
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return 0, err
	}
	defer trx.Abort()

	child, err := breeding.Breed(trx, m.reserver, m.Fees().BreedReserve, owner, id1, id2, m.random.RandomSeed(), callIndex(trx))
	if nil != err {
		m.log.Debugf("breed: %d × %d  owner: %s  error: %s", id1, id2, owner, err)
		return 0, err
	}

	if err := trx.Commit(); nil != err {
		m.log.Errorf("breed: commit error: %s", err)
		return 0, err
	}

	m.log.Infof("bred: %d × %d → %d  owner: %s  dna: %s", id1, id2, child.Id, owner, child.DNA)
	m.emitter.Emit(Bred{
		Owner:   owner,
		Parent1: id1,
		Parent2: id2,
		Child:   child.Id,
	})
	return child.Id, nil
}

// bind the operation into the request before checking its signature
func (m *Module) authenticate(request *Request, method string, arguments []byte) (*account.Account, error) {
	if nil == request {
		return nil, fault.UnsignedRequest
	}
	request.Method = method
	request.Arguments = arguments
	return m.authenticator.Authenticate(request)
}

// the persisted kitty count, unique per issued kitty across restarts
func callIndex(trx storage.Transaction) uint32 {
	return uint32(registry.Count(trx))
}
