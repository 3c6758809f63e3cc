// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package testkit

import (
	"context"
	"github.com/orbs-network/ticketchain/instrumentation/metric"
	"github.com/orbs-network/ticketchain/primitives"
	"github.com/orbs-network/ticketchain/services/statestorage/adapter"
	"github.com/orbs-network/ticketchain/services/statestorage/adapter/memory"
	"github.com/pkg/errors"
	"sync"
)

type TamperingStatePersistence interface {
	adapter.StatePersistence
	FailNextWrites()
	FailNextReads()
	Heal()
	Dump() string
}

func NewStatePersistence(metricFactory metric.Factory) *tamperingStatePersistence {
	return &tamperingStatePersistence{
		InMemoryStatePersistence: memory.NewStatePersistence(metricFactory),
	}
}

type tamperingStatePersistence struct {
	*memory.InMemoryStatePersistence
	mutex      sync.Mutex
	failWrites bool
	failReads  bool
}

func (sp *tamperingStatePersistence) FailNextWrites() {
	sp.mutex.Lock()
	defer sp.mutex.Unlock()
	sp.failWrites = true
}

func (sp *tamperingStatePersistence) FailNextReads() {
	sp.mutex.Lock()
	defer sp.mutex.Unlock()
	sp.failReads = true
}

func (sp *tamperingStatePersistence) Heal() {
	sp.mutex.Lock()
	defer sp.mutex.Unlock()
	sp.failWrites = false
	sp.failReads = false
}

func (sp *tamperingStatePersistence) Write(ctx context.Context, height primitives.BlockHeight, diff adapter.ChainState) error {
	sp.mutex.Lock()
	fail := sp.failWrites
	sp.mutex.Unlock()

	if fail {
		return errors.New("could not write state diff")
	}
	return sp.InMemoryStatePersistence.Write(ctx, height, diff)
}

func (sp *tamperingStatePersistence) Read(ctx context.Context, contract primitives.ContractName, key string) ([]byte, bool, error) {
	sp.mutex.Lock()
	fail := sp.failReads
	sp.mutex.Unlock()

	if fail {
		return nil, false, errors.New("could not read state")
	}
	return sp.InMemoryStatePersistence.Read(ctx, contract, key)
}
