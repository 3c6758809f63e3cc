// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package metric

import (
	"encoding/json"
	"github.com/orbs-network/ticketchain/config"
	"github.com/stretchr/testify/require"
	"testing"
	"time"
)

func TestInMemoryRegistry_ExportAll(t *testing.T) {
	registry := NewRegistry()
	gauge := registry.NewGauge("hello")
	gauge.Add(1)

	gaugeValue := registry.ExportAll()["hello"].(gaugeExport)
	require.EqualValues(t, 1, gaugeValue.Value)
}

func TestInMemoryRegistry_Get(t *testing.T) {
	registry := NewRegistry()
	text := registry.NewText("Version.Semantic", "v1.0.0")

	require.Equal(t, text, registry.Get("Version.Semantic"))
	require.Nil(t, registry.Get("nope"))
}

func TestInMemoryRegistry_ExportIsJsonSerializable(t *testing.T) {
	registry := NewRegistry()
	registry.NewGauge("Gauge.Count").Inc()
	registry.NewLatency("Some.Latency.Millis", time.Second).Record(int64(2 * time.Millisecond))
	registry.NewText("Some.Text", "hi")
	registry.NewRate("Some.Rate").Measure(1)

	raw, err := json.Marshal(registry.ExportAll())
	require.NoError(t, err)

	decoded := make(map[string]map[string]interface{})
	require.NoError(t, json.Unmarshal(raw, &decoded))
	require.EqualValues(t, 1, decoded["Gauge.Count"]["Value"])
	require.EqualValues(t, 1, decoded["Some.Latency.Millis"]["Samples"])
	require.Equal(t, "hi", decoded["Some.Text"]["Value"])
	require.Contains(t, decoded, "Some.Rate")
}

func TestHistogram_RecordsInMillis(t *testing.T) {
	h := newHistogram("latency", int64(time.Second))
	h.Record(int64(10 * time.Millisecond))
	h.Record(int64(20 * time.Millisecond))

	export := h.Export().(histogramExport)
	require.EqualValues(t, 2, export.Samples)
	require.InDelta(t, 10, export.Min, 0.1)
	require.InDelta(t, 20, export.Max, 0.1)
	require.InDelta(t, 15, export.Avg, 0.1)
}

func TestHistogram_OverflowIsCounted(t *testing.T) {
	h := newHistogram("latency", int64(time.Millisecond))
	h.Record(int64(time.Hour))

	require.EqualValues(t, 1, h.OverflowCount())
	require.EqualValues(t, 0, h.CurrentSamples())
}

func TestHistogram_RotationKeepsWindow(t *testing.T) {
	h := newHistogram("latency", int64(time.Second))
	h.Record(int64(time.Millisecond))
	h.Rotate()

	require.EqualValues(t, 0, h.CurrentSamples(), "rotation starts a fresh bucket")
	require.EqualValues(t, 1, h.Export().(histogramExport).Samples, "export covers the whole window")
	require.Nil(t, histogramExport{}.LogRow(), "empty histograms are not reported")
}

func TestRegisterConfigIndicators_ExportsNodeIdentity(t *testing.T) {
	r := NewRegistry()
	RegisterConfigIndicators(r, config.ForTests())

	require.Equal(t, "memory", r.Get("StateStorage.Backend").(*Text).Value())
	require.Equal(t, "42", r.Get("Node.VirtualChainId").(*Text).Value())
	require.NotEmpty(t, r.Get("Version.Semantic").(*Text).Value())
}

func TestInMemoryRegistry_StringIsSortedByName(t *testing.T) {
	registry := NewRegistry()
	registry.NewGauge("VirtualMachine.CommittedPool.TransactionCount").Inc()
	registry.NewGauge("StateStorage.StateHeight").Update(3)

	require.Equal(t,
		"metric StateStorage.StateHeight: 3\nmetric VirtualMachine.CommittedPool.TransactionCount: 1\n",
		registry.String())
}

func TestInMemoryRegistry_ReRegisteringReplaces(t *testing.T) {
	registry := NewRegistry()
	registry.NewGauge("StateStoragePersistence.TotalNumberOfKeys.Count").Update(5)
	fresh := registry.NewGauge("StateStoragePersistence.TotalNumberOfKeys.Count")

	require.Equal(t, fresh, registry.Get("StateStoragePersistence.TotalNumberOfKeys.Count"))
	require.Len(t, registry.ExportAll(), 1)
}
