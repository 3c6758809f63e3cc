// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/orbs-network/ticketchain/instrumentation/metric"
	"github.com/orbs-network/ticketchain/primitives"
	"github.com/orbs-network/ticketchain/services/statestorage/adapter"
	"github.com/pkg/errors"
)

var ErrClosed = errors.New("in-memory state persistence is closed")

type metrics struct {
	numberOfKeys      *metric.Gauge
	numberOfContracts *metric.Gauge
}

func newMetrics(m metric.Factory) *metrics {
	return &metrics{
		numberOfKeys:      m.NewGauge("StateStoragePersistence.TotalNumberOfKeys.Count"),
		numberOfContracts: m.NewGauge("StateStoragePersistence.TotalNumberOfContracts.Count"),
	}
}

// InMemoryStatePersistence keeps records under the same namespaced keys the durable backends use.
type InMemoryStatePersistence struct {
	sync.RWMutex
	metrics   *metrics
	records   map[string][]byte
	contracts map[primitives.ContractName]int
	height    primitives.BlockHeight
	closed    bool
}

func NewStatePersistence(metricFactory metric.Factory) *InMemoryStatePersistence {
	return &InMemoryStatePersistence{
		metrics:   newMetrics(metricFactory),
		records:   make(map[string][]byte),
		contracts: make(map[primitives.ContractName]int),
	}
}

func (sp *InMemoryStatePersistence) Write(ctx context.Context, height primitives.BlockHeight, diff adapter.ChainState) error {
	sp.Lock()
	defer sp.Unlock()

	if sp.closed {
		return ErrClosed
	}

	for contract, records := range diff {
		for key, value := range records {
			namespaced := adapter.NamespacedKey(contract, key)
			if _, exists := sp.records[namespaced]; !exists {
				sp.contracts[contract]++
			}
			sp.records[namespaced] = append([]byte(nil), value...)
		}
	}
	sp.height = height

	sp.metrics.numberOfKeys.Update(int64(len(sp.records)))
	sp.metrics.numberOfContracts.Update(int64(len(sp.contracts)))
	return nil
}

func (sp *InMemoryStatePersistence) Read(ctx context.Context, contract primitives.ContractName, key string) ([]byte, bool, error) {
	sp.RLock()
	defer sp.RUnlock()

	if sp.closed {
		return nil, false, ErrClosed
	}

	record, found := sp.records[adapter.NamespacedKey(contract, key)]
	if !found {
		return nil, false, nil
	}
	return append([]byte(nil), record...), true, nil
}

func (sp *InMemoryStatePersistence) ReadMetadata(ctx context.Context) (primitives.BlockHeight, error) {
	sp.RLock()
	defer sp.RUnlock()

	if sp.closed {
		return 0, ErrClosed
	}
	return sp.height, nil
}

func (sp *InMemoryStatePersistence) Close() error {
	sp.Lock()
	defer sp.Unlock()
	sp.closed = true
	return nil
}

// Dump lists the height followed by every record as "contract/key=hex", sorted by key.
func (sp *InMemoryStatePersistence) Dump() string {
	sp.RLock()
	defer sp.RUnlock()

	keys := make([]string, 0, len(sp.records))
	for k := range sp.records {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	fmt.Fprintf(&b, "height=%d\n", sp.height)
	for _, k := range keys {
		fmt.Fprintf(&b, "%s=%x\n", k, sp.records[k])
	}
	return b.String()
}
