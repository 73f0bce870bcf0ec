// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package kitties

import (
	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/kitty"
	"github.com/bitmark-inc/kittyd/messagebus"
)

// Event - notification of a committed transition
type Event interface {
	EventName() string
}

// Created - a kitty was created
type Created struct {
	Owner *account.Account `json:"owner"`
	Id    kitty.Index      `json:"id"`
}

// Transferred - a kitty changed owner
type Transferred struct {
	From *account.Account `json:"from"`
	To   *account.Account `json:"to"`
	Id   kitty.Index      `json:"id"`
}

// Bred - a kitty was born from two parents
type Bred struct {
	Owner   *account.Account `json:"owner"`
	Parent1 kitty.Index      `json:"parent1"`
	Parent2 kitty.Index      `json:"parent2"`
	Child   kitty.Index      `json:"child"`
}

// EventName - for message bus routing
func (Created) EventName() string     { return "created" }
func (Transferred) EventName() string { return "transferred" }
func (Bred) EventName() string        { return "bred" }

// Emitter - fire and forget delivery of committed events
type Emitter interface {
	Emit(Event)
}

type busEmitter struct {
	queue *messagebus.Queue
}

// NewBusEmitter - deliver events onto a message bus queue
func NewBusEmitter(queue *messagebus.Queue) Emitter {
	return &busEmitter{
		queue: queue,
	}
}

func (e *busEmitter) Emit(event Event) {
	e.queue.Send(event.EventName(), event)
}
