// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package authentication

import (
	"time"
)

// NewWithClock - authenticator with a fixed clock
func NewWithClock(testing bool, window time.Duration, now func() time.Time) *Authenticator {
	return newAuthenticator(testing, window, now)
}
