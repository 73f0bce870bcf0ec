// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	"encoding/json"

	"github.com/bitmark-inc/kittyd/counter"
	"github.com/bitmark-inc/kittyd/messagebus"
	"github.com/bitmark-inc/logger"
)

type eventLogger struct {
	log   *logger.L
	queue *messagebus.Queue
	count counter.Counter
}

// Run - write each event as a JSON line on the events channel
func (e *eventLogger) Run(args interface{}, shutdown <-chan struct{}) {

	log := e.log
	log.Info("starting…")

	queue := e.queue.Chan()

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case item := <-queue:
			e.publish(item)
		}
	}

	// anything still queued was committed, so do not lose it
drain:
	for {
		select {
		case item := <-queue:
			e.publish(item)
		default:
			break drain
		}
	}

	if dropped := e.queue.Dropped(); 0 != dropped {
		log.Warnf("events dropped by full queue: %d", dropped)
	}
	log.Info("finished")
}

func (e *eventLogger) publish(item messagebus.Message) {
	data, err := json.Marshal(item.Item)
	if nil != err {
		e.log.Errorf("%s: marshal error: %s", item.Command, err)
		return
	}
	e.log.Infof("%s: %s", item.Command, data)
	e.count.Increment()
}
