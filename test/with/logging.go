// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package with

import (
	"testing"

	"github.com/orbs-network/scribe/log"
)

// LoggingHarness hands a test a logger whose error lines fail the test unless explicitly allowed.
type LoggingHarness struct {
	Logger log.Logger
	output *log.TestOutput
}

func (h *LoggingHarness) AllowErrorsMatching(patterns ...string) {
	for _, pattern := range patterns {
		h.output.AllowErrorsMatching(pattern)
	}
}

func Logging(tb testing.TB, f func(harness *LoggingHarness)) {
	output := log.NewTestOutput(tb, log.NewHumanReadableFormatter())
	defer output.TestTerminated()

	h := &LoggingHarness{
		Logger: log.GetLogger(log.String("test", tb.Name())).WithOutput(output),
		output: output,
	}
	f(h)

	if output.HasErrors() {
		tb.Fatal("test logged unexpected errors")
	}
}
