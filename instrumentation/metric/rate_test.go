// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package metric

import (
	"testing"
	"time"

	"github.com/orbs-network/scribe/log"
	"github.com/stretchr/testify/require"
)

func TestRate_IsZeroBeforeFirstTick(t *testing.T) {
	start := time.Now()
	rate := newRateWithStart("PublicApi.SendTransaction.Rate", start)
	rate.Measure(50)

	rate.maybeRotateAsOf(start.Add(500 * time.Millisecond))
	require.Zero(t, rate.export().Rate, "events are only averaged in once a tick completes")
}

func TestRate_AveragesEventsPerTickAndDecays(t *testing.T) {
	start := time.Now()
	rate := newRateWithStart("PublicApi.SendTransaction.Rate", start)
	for i := 0; i < 100; i++ {
		rate.Measure(1)
	}

	rate.maybeRotateAsOf(start.Add(1100 * time.Millisecond))
	require.EqualValues(t, 100, rate.export().Rate)

	rate.maybeRotateAsOf(start.Add(10 * time.Second))
	require.True(t, rate.export().Rate < 100, "idle ticks must pull the average down")
}

func TestRate_LogRowCarriesName(t *testing.T) {
	rate := newRate("PublicApi.SendTransaction.Rate")
	row := rate.Export().LogRow()

	require.Len(t, row, 3)
	require.Equal(t, log.String("metric", "PublicApi.SendTransaction.Rate"), row[0])
}
