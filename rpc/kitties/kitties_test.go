// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package kitties_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/kittyd/dna"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/fixtures"
	"github.com/bitmark-inc/kittyd/kitties"
	"github.com/bitmark-inc/kittyd/kitty"
	handler "github.com/bitmark-inc/kittyd/rpc/kitties"
	"github.com/bitmark-inc/kittyd/rpc/mocks"
	"github.com/bitmark-inc/logger"
)

func setup(t *testing.T) (*handler.Kitties, *mocks.MockTransitions, func()) {
	fixtures.SetupTestLogger()
	ctl := gomock.NewController(t)
	m := mocks.NewMockTransitions(ctl)
	k := handler.New(logger.New(fixtures.LogCategory), m)
	return k, m, func() {
		ctl.Finish()
		fixtures.TeardownTestLogger()
	}
}

func TestKittiesCreate(t *testing.T) {
	k, m, teardown := setup(t)
	defer teardown()

	request := kitties.Sign(fixtures.Alice, 1, kitties.CreateMethod, kitties.CreateArguments())
	m.EXPECT().Create(request).Return(kitty.Index(7), nil).Times(1)

	var reply handler.IdReply
	err := k.Create(&handler.CreateArguments{Request: request}, &reply)
	assert.Nil(t, err, "wrong Create")
	assert.Equal(t, kitty.Index(7), reply.Id, "wrong id")
}

func TestKittiesCreateError(t *testing.T) {
	k, m, teardown := setup(t)
	defer teardown()

	m.EXPECT().Create(gomock.Any()).Return(kitty.Index(0), fault.InsufficientBalance).Times(1)

	var reply handler.IdReply
	err := k.Create(&handler.CreateArguments{}, &reply)
	assert.Equal(t, fault.InsufficientBalance, err, "wrong error")
}

func TestKittiesTransfer(t *testing.T) {
	k, m, teardown := setup(t)
	defer teardown()

	to := fixtures.Bob.Account()
	request := kitties.Sign(fixtures.Alice, 1, kitties.TransferMethod, kitties.TransferArguments(to, 3))
	m.EXPECT().Transfer(request, to, kitty.Index(3)).Return(nil).Times(1)

	arguments := handler.TransferArguments{
		Request: request,
		To:      to,
		Id:      3,
	}
	var reply handler.IdReply
	err := k.Transfer(&arguments, &reply)
	assert.Nil(t, err, "wrong Transfer")
	assert.Equal(t, kitty.Index(3), reply.Id, "wrong id")

	m.EXPECT().Transfer(request, to, kitty.Index(3)).Return(fault.NotOwner).Times(1)
	err = k.Transfer(&arguments, &reply)
	assert.Equal(t, fault.NotOwner, err, "wrong error")
}

func TestKittiesBreed(t *testing.T) {
	k, m, teardown := setup(t)
	defer teardown()

	request := kitties.Sign(fixtures.Alice, 1, kitties.BreedMethod, kitties.BreedArguments(1, 2))
	m.EXPECT().Breed(request, kitty.Index(1), kitty.Index(2)).Return(kitty.Index(9), nil).Times(1)

	var reply handler.IdReply
	err := k.Breed(&handler.BreedArguments{Request: request, Parent1: 1, Parent2: 2}, &reply)
	assert.Nil(t, err, "wrong Breed")
	assert.Equal(t, kitty.Index(9), reply.Id, "wrong id")
}

func TestKittiesGet(t *testing.T) {
	k, m, teardown := setup(t)
	defer teardown()

	record := &kitty.Kitty{Id: 4, DNA: dna.DNA{1, 2, 3}}
	owner := fixtures.Carol.Account()
	m.EXPECT().Kitty(kitty.Index(4)).Return(record, nil).Times(1)
	m.EXPECT().Owner(kitty.Index(4)).Return(owner, nil).Times(1)

	var reply handler.GetReply
	err := k.Get(&handler.GetArguments{Id: 4}, &reply)
	assert.Nil(t, err, "wrong Get")
	assert.Equal(t, record, reply.Kitty, "wrong kitty")
	assert.Equal(t, owner, reply.Owner, "wrong owner")

	m.EXPECT().Kitty(kitty.Index(5)).Return(nil, fault.AssetNotFound).Times(1)
	err = k.Get(&handler.GetArguments{Id: 5}, &reply)
	assert.Equal(t, fault.AssetNotFound, err, "wrong error")
}

func TestKittiesCount(t *testing.T) {
	k, m, teardown := setup(t)
	defer teardown()

	m.EXPECT().Count().Return(kitty.Index(12)).Times(1)

	var reply handler.CountReply
	err := k.Count(&handler.CountArguments{}, &reply)
	assert.Nil(t, err, "wrong Count")
	assert.Equal(t, uint64(12), reply.Count, "wrong count")
}

func TestKittiesMissingArguments(t *testing.T) {
	k, _, teardown := setup(t)
	defer teardown()

	var reply handler.IdReply
	assert.Equal(t, fault.MissingParameters, k.Create(nil, &reply), "create")
	assert.Equal(t, fault.MissingParameters, k.Transfer(nil, &reply), "transfer")
	assert.Equal(t, fault.MissingParameters, k.Breed(nil, &reply), "breed")
}
