// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

import (
	"github.com/bitmark-inc/kittyd/counter"
)

// internal constants
const (
	queueSize = 1000
)

// Message - an item on a queue
type Message struct {
	Command string
	Item    interface{}
}

// Queue - a buffered queue that never blocks the sender
type Queue struct {
	c       chan Message
	dropped counter.Counter
}

// Bus - the queues of this process
var Bus = struct {
	Events    *Queue // committed kitty events
	TestQueue *Queue // for testing use only
}{
	Events:    NewQueue(queueSize),
	TestQueue: NewQueue(queueSize),
}

// NewQueue - create a queue with a given buffer size
func NewQueue(size int) *Queue {
	return &Queue{
		c: make(chan Message, size),
	}
}

// Send - queue a message
//
// if the queue is full the message is dropped and counted
func (queue *Queue) Send(command string, item interface{}) {
	select {
	case queue.c <- Message{Command: command, Item: item}:
	default:
		queue.dropped.Increment()
	}
}

// Chan - channel to read from
func (queue *Queue) Chan() <-chan Message {
	return queue.c
}

// Dropped - number of messages lost because the queue was full
func (queue *Queue) Dropped() uint64 {
	return queue.dropped.Uint64()
}
