// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package statestorage

import (
	"context"
	"github.com/orbs-network/scribe/log"
	"github.com/orbs-network/ticketchain/instrumentation/logfields"
	"github.com/orbs-network/ticketchain/instrumentation/metric"
	"github.com/orbs-network/ticketchain/instrumentation/trace"
	"github.com/orbs-network/ticketchain/primitives"
	"github.com/orbs-network/ticketchain/services/statestorage/adapter"
	"github.com/pkg/errors"
	"sync"
	"time"
)

var LogTag = log.Service("state-storage")

type StateStorage interface {
	ReadKey(ctx context.Context, contract primitives.ContractName, key string) (value []byte, found bool, err error)
	CommitStateDiff(ctx context.Context, diff adapter.ChainState) (primitives.BlockHeight, error)
	GetStateHeight(ctx context.Context) (primitives.BlockHeight, error)
}

type metrics struct {
	commitTime  *metric.Histogram
	stateHeight *metric.Gauge
	readKeys    *metric.Rate
}

func newMetrics(m metric.Factory) *metrics {
	return &metrics{
		commitTime:  m.NewLatency("StateStorage.CommitStateDiffTime.Millis", 10*time.Second),
		stateHeight: m.NewGauge("StateStorage.StateHeight"),
		readKeys:    m.NewRate("StateStorage.ReadKeys.PerSecond"),
	}
}

type service struct {
	logger      log.Logger
	persistence adapter.StatePersistence
	metrics     *metrics

	commitMutex sync.Mutex
}

func NewStateStorage(persistence adapter.StatePersistence, parentLogger log.Logger, metricFactory metric.Factory) StateStorage {
	s := &service{
		logger:      parentLogger.WithTags(LogTag),
		persistence: persistence,
		metrics:     newMetrics(metricFactory),
	}

	if height, err := persistence.ReadMetadata(context.Background()); err == nil {
		s.metrics.stateHeight.UpdateUint64(uint64(height))
		s.logger.Info("state storage loaded", logfields.StateHeight(height))
	} else {
		s.logger.Error("could not read state height", log.Error(err))
	}

	return s
}

func (s *service) ReadKey(ctx context.Context, contract primitives.ContractName, key string) ([]byte, bool, error) {
	if contract == "" {
		return nil, false, errors.New("missing contract name")
	}

	s.metrics.readKeys.Measure(1)
	return s.persistence.Read(ctx, contract, key)
}

// each non-empty diff moves the state one height forward
func (s *service) CommitStateDiff(ctx context.Context, diff adapter.ChainState) (primitives.BlockHeight, error) {
	logger := s.logger.WithTags(trace.LogFieldFrom(ctx))

	s.commitMutex.Lock()
	defer s.commitMutex.Unlock()

	height, err := s.persistence.ReadMetadata(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "could not read state height before commit")
	}

	if diff.NumberOfKeys() == 0 {
		return height, nil
	}

	start := time.Now()
	defer s.metrics.commitTime.RecordSince(start)

	next := height + 1
	if err := s.persistence.Write(ctx, next, diff); err != nil {
		logger.Error("failed to commit state diff", log.Error(err), logfields.StateHeight(next))
		return height, err
	}

	s.metrics.stateHeight.UpdateUint64(uint64(next))
	logger.Info("committed state diff", logfields.StateHeight(next), log.Int("keys", diff.NumberOfKeys()))

	return next, nil
}

func (s *service) GetStateHeight(ctx context.Context) (primitives.BlockHeight, error) {
	return s.persistence.ReadMetadata(ctx)
}
