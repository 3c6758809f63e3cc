// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

// AssertCmpEqual compares with go-cmp and reports the diff, which reads better than testify's dump for nested byte slices.
func AssertCmpEqual(tb testing.TB, expected interface{}, actual interface{}, msgAndArgs ...interface{}) bool {
	tb.Helper()
	if diff := cmp.Diff(expected, actual); diff != "" {
		return assert.Fail(tb, "values differ (-expected +actual):\n"+diff, msgAndArgs...)
	}
	return true
}

func RequireCmpEqual(tb testing.TB, expected interface{}, actual interface{}, msgAndArgs ...interface{}) {
	tb.Helper()
	if !AssertCmpEqual(tb, expected, actual, msgAndArgs...) {
		tb.FailNow()
	}
}
