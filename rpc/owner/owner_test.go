// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package owner_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/fixtures"
	"github.com/bitmark-inc/kittyd/ownership"
	"github.com/bitmark-inc/kittyd/rpc/mocks"
	"github.com/bitmark-inc/kittyd/rpc/owner"
	"github.com/bitmark-inc/logger"
)

func TestOwnerKitties(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	lister := mocks.NewMockLister(ctl)
	o := owner.New(logger.New(fixtures.LogCategory), lister)

	arg := owner.KittiesArguments{
		Owner: fixtures.Alice.Account(),
		Start: 5,
		Count: 10,
	}

	records := []ownership.Ownership{
		{N: 5, Id: 2},
		{N: 8, Id: 11},
	}
	lister.EXPECT().KittiesOf(arg.Owner, arg.Start, arg.Count).Return(records, nil).Times(1)

	var reply owner.KittiesReply
	err := o.Kitties(&arg, &reply)
	assert.Nil(t, err, "wrong Kitties")
	assert.Equal(t, uint64(9), reply.Next, "wrong next")
	assert.Equal(t, records, reply.Data, "wrong records")
}

func TestOwnerKittiesEmptyPageKeepsStart(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	lister := mocks.NewMockLister(ctl)
	o := owner.New(logger.New(fixtures.LogCategory), lister)

	arg := owner.KittiesArguments{
		Owner: fixtures.Bob.Account(),
		Start: 3,
		Count: 1,
	}
	lister.EXPECT().KittiesOf(arg.Owner, arg.Start, arg.Count).Return([]ownership.Ownership{}, nil).Times(1)

	var reply owner.KittiesReply
	err := o.Kitties(&arg, &reply)
	assert.Nil(t, err, "wrong Kitties")
	assert.Equal(t, uint64(3), reply.Next, "wrong next")
	assert.Equal(t, 0, len(reply.Data), "wrong record count")
}

func TestOwnerKittiesInvalid(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	o := owner.New(logger.New(fixtures.LogCategory), mocks.NewMockLister(ctl))

	var reply owner.KittiesReply
	err := o.Kitties(&owner.KittiesArguments{Owner: fixtures.Alice.Account(), Count: 101}, &reply)
	assert.Equal(t, fault.InvalidCount, err, "count too large")

	err = o.Kitties(&owner.KittiesArguments{Owner: fixtures.Alice.Account(), Count: 0}, &reply)
	assert.Equal(t, fault.InvalidCount, err, "zero count")

	err = o.Kitties(&owner.KittiesArguments{Count: 10}, &reply)
	assert.Equal(t, fault.InvalidAccount, err, "missing owner")
}
