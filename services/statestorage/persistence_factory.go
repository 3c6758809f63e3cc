// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package statestorage

import (
	"context"
	"github.com/orbs-network/scribe/log"
	"github.com/orbs-network/ticketchain/config"
	"github.com/orbs-network/ticketchain/instrumentation/metric"
	"github.com/orbs-network/ticketchain/services/statestorage/adapter"
	"github.com/orbs-network/ticketchain/services/statestorage/adapter/leveldb"
	"github.com/orbs-network/ticketchain/services/statestorage/adapter/memory"
	"github.com/orbs-network/ticketchain/services/statestorage/adapter/redis"
	"github.com/pkg/errors"
)

func NewStatePersistence(ctx context.Context, cfg config.StateStorageConfig, logger log.Logger, metricFactory metric.Factory) (adapter.StatePersistence, error) {
	switch cfg.StateStorageBackend() {
	case config.STATE_STORAGE_BACKEND_MEMORY:
		return memory.NewStatePersistence(metricFactory), nil
	case config.STATE_STORAGE_BACKEND_LEVELDB:
		sp, err := leveldb.NewStatePersistence(cfg.StateStorageLevelDbPath(), logger, metricFactory)
		if err != nil {
			return nil, err
		}
		return sp, nil
	case config.STATE_STORAGE_BACKEND_REDIS:
		sp, err := redis.NewStatePersistence(ctx, cfg.StateStorageRedisAddress(), cfg.StateStorageRedisKeyPrefix(), logger, metricFactory)
		if err != nil {
			return nil, err
		}
		return sp, nil
	}
	return nil, errors.Errorf("unknown state storage backend %q", cfg.StateStorageBackend())
}
