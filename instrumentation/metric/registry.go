// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package metric

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/orbs-network/scribe/log"
	"github.com/orbs-network/ticketchain/synchronization"
)

type Factory interface {
	NewLatency(name string, maxDuration time.Duration) *Histogram
	NewGauge(name string) *Gauge
	NewRate(name string) *Rate
	NewText(name string, defaultValue ...string) *Text
}

type Registry interface {
	Factory
	String() string
	ExportAll() map[string]exportedMetric
	Get(name string) metric
	ReportEvery(ctx context.Context, interval time.Duration, logger log.Logger) *synchronization.PeriodicalTrigger
}

type exportedMetric interface {
	LogRow() []*log.Field
}

type metric interface {
	fmt.Stringer
	Name() string
	Export() exportedMetric
}

// windowed metrics start a new bucket on every report
type windowed interface {
	Rotate()
}

type namedMetric struct {
	name string
}

func (m *namedMetric) Name() string {
	return m.name
}

// NewRegistry returns a registry keyed by metric name; registering a name twice replaces the earlier metric.
func NewRegistry() Registry {
	return &inMemoryRegistry{metrics: make(map[string]metric)}
}

type inMemoryRegistry struct {
	sync.RWMutex
	metrics map[string]metric
}

func (r *inMemoryRegistry) register(m metric) {
	r.Lock()
	defer r.Unlock()
	r.metrics[m.Name()] = m
}

func (r *inMemoryRegistry) NewRate(name string) *Rate {
	rate := newRate(name)
	r.register(rate)
	return rate
}

func (r *inMemoryRegistry) NewGauge(name string) *Gauge {
	g := &Gauge{namedMetric: namedMetric{name: name}}
	r.register(g)
	return g
}

func (r *inMemoryRegistry) NewLatency(name string, maxDuration time.Duration) *Histogram {
	h := newHistogram(name, maxDuration.Nanoseconds())
	r.register(h)
	return h
}

func (r *inMemoryRegistry) NewText(name string, defaultValue ...string) *Text {
	t := newText(name, defaultValue...)
	r.register(t)
	return t
}

func (r *inMemoryRegistry) Get(name string) metric {
	r.RLock()
	defer r.RUnlock()
	return r.metrics[name]
}

func (r *inMemoryRegistry) snapshot() []metric {
	r.RLock()
	defer r.RUnlock()

	all := make([]metric, 0, len(r.metrics))
	for _, m := range r.metrics {
		all = append(all, m)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name() < all[j].Name() })
	return all
}

func (r *inMemoryRegistry) String() string {
	var b strings.Builder
	for _, m := range r.snapshot() {
		b.WriteString(m.String())
	}
	return b.String()
}

func (r *inMemoryRegistry) ExportAll() map[string]exportedMetric {
	all := make(map[string]exportedMetric)
	for _, m := range r.snapshot() {
		all[m.Name()] = m.Export()
	}
	return all
}

func (r *inMemoryRegistry) report(logger log.Logger, rotate bool) {
	for _, m := range r.snapshot() {
		if row := m.Export().LogRow(); row != nil {
			logger.Metric(row...)
		}
		if w, ok := m.(windowed); ok && rotate {
			w.Rotate()
		}
	}
}

// ReportEvery logs every metric at each interval and once more when ctx is done.
func (r *inMemoryRegistry) ReportEvery(ctx context.Context, interval time.Duration, logger log.Logger) *synchronization.PeriodicalTrigger {
	return synchronization.NewPeriodicalTrigger(ctx, "metric reporter", interval, logger,
		func() { r.report(logger, true) },
		func() { r.report(logger, false) })
}
