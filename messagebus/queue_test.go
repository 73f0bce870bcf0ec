// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/kittyd/messagebus"
)

func TestQueue(t *testing.T) {

	items := []messagebus.Message{
		{Command: "c1", Item: 1},
		{Command: "c2", Item: "two"},
		{Command: "c3", Item: nil},
	}

	for _, item := range items {
		messagebus.Bus.TestQueue.Send(item.Command, item.Item)
	}

	queue := messagebus.Bus.TestQueue.Chan()
	for _, item := range items {
		received := <-queue
		assert.Equal(t, item.Command, received.Command, "command")
		assert.Equal(t, item.Item, received.Item, "item")
	}
}

func TestQueueFullDrops(t *testing.T) {
	queue := messagebus.NewQueue(2)

	queue.Send("a", nil)
	queue.Send("b", nil)
	queue.Send("c", nil) // must not block

	assert.Equal(t, uint64(1), queue.Dropped(), "dropped count")
	assert.Equal(t, "a", (<-queue.Chan()).Command, "first")
	assert.Equal(t, "b", (<-queue.Chan()).Command, "second")
}
