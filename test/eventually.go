// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package test

import "time"

const (
	eventuallyTimeout  = 500 * time.Millisecond
	eventuallyInterval = 5 * time.Millisecond
)

func Eventually(condition func() bool) bool {
	return EventuallyWithin(eventuallyTimeout, condition)
}

// EventuallyWithin polls condition until it holds or timeout passes, checking once more at the deadline.
func EventuallyWithin(timeout time.Duration, condition func() bool) bool {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if condition() {
			return true
		}
		time.Sleep(eventuallyInterval)
	}
	return condition()
}
