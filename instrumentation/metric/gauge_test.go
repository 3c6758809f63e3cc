// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package metric

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGauge_CountsConcurrentIncrements(t *testing.T) {
	g := &Gauge{}
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				g.Inc()
			}
		}()
	}
	wg.Wait()

	require.EqualValues(t, 800, g.Value())
}

func TestGauge_UpdateReplacesAccumulatedValue(t *testing.T) {
	g := &Gauge{}
	g.Add(5)
	g.Update(3)

	require.EqualValues(t, 3, g.Value())
}

func TestGauge_UpdateUint64ClampsAtMaxInt64(t *testing.T) {
	g := &Gauge{}
	g.UpdateUint64(math.MaxUint64)
	require.EqualValues(t, math.MaxInt64, g.Value())

	g.UpdateUint64(42)
	require.EqualValues(t, 42, g.Value())
}

func TestGauge_ExportsNameAndValue(t *testing.T) {
	r := NewRegistry()
	g := r.NewGauge("StateStorage.StateHeight")
	g.UpdateUint64(7)

	exported := g.Export().(gaugeExport)
	require.Equal(t, "StateStorage.StateHeight", exported.Name)
	require.EqualValues(t, 7, exported.Value)
}
