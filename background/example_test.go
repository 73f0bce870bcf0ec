// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background_test

import (
	"fmt"

	"github.com/bitmark-inc/kittyd/background"
)

// drains birth notifications until shutdown
type birthCounter struct {
	births <-chan uint64
	total  int
}

func Example() {
	births := make(chan uint64)
	counter := &birthCounter{births: births}

	p := background.Start(background.Processes{counter}, nil)

	births <- 1
	births <- 2
	births <- 3

	p.Stop()
	fmt.Printf("births: %d\n", counter.total)

	// Output:
	// watching births
	// kitty: 1
	// kitty: 2
	// kitty: 3
	// stopped
	// births: 3
}

func (c *birthCounter) Run(args interface{}, shutdown <-chan struct{}) {
	fmt.Println("watching births")
loop:
	for {
		select {
		case <-shutdown:
			break loop
		case id := <-c.births:
			c.total += 1
			fmt.Printf("kitty: %d\n", id)
		}
	}
	fmt.Println("stopped")
}
