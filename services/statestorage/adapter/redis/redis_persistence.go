// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package redis

import (
	"context"
	"github.com/orbs-network/scribe/log"
	"github.com/orbs-network/ticketchain/instrumentation/metric"
	"github.com/orbs-network/ticketchain/primitives"
	"github.com/orbs-network/ticketchain/services/statestorage/adapter"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"strconv"
	"time"
)

const (
	stateKeyPrefix = "state:"
	heightKey      = "meta:height"
)

type metrics struct {
	writeTime *metric.Histogram
	readTime  *metric.Histogram
}

func newMetrics(m metric.Factory) *metrics {
	return &metrics{
		writeTime: m.NewLatency("StateStoragePersistence.Redis.WriteTime.Millis", 5*time.Second),
		readTime:  m.NewLatency("StateStoragePersistence.Redis.ReadTime.Millis", 5*time.Second),
	}
}

type RedisStatePersistence struct {
	client  redis.UniversalClient
	prefix  string
	logger  log.Logger
	metrics *metrics
}

func NewStatePersistence(ctx context.Context, address string, prefix string, parent log.Logger, metricFactory metric.Factory) (*RedisStatePersistence, error) {
	client := redis.NewUniversalClient(&redis.UniversalOptions{
		Addrs: []string{address},
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.Wrapf(err, "could not reach redis at %s", address)
	}

	return NewStatePersistenceWithClient(client, prefix, parent, metricFactory), nil
}

func NewStatePersistenceWithClient(client redis.UniversalClient, prefix string, parent log.Logger, metricFactory metric.Factory) *RedisStatePersistence {
	return &RedisStatePersistence{
		client:  client,
		prefix:  prefix,
		logger:  parent.WithTags(log.String("adapter", "redis"), log.String("prefix", prefix)),
		metrics: newMetrics(metricFactory),
	}
}

func (sp *RedisStatePersistence) stateKey(contract primitives.ContractName, key string) string {
	return sp.prefix + stateKeyPrefix + adapter.NamespacedKey(contract, key)
}

// MULTI/EXEC so readers never see a diff without its height
func (sp *RedisStatePersistence) Write(ctx context.Context, height primitives.BlockHeight, diff adapter.ChainState) error {
	start := time.Now()
	defer sp.metrics.writeTime.RecordSince(start)

	_, err := sp.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for contract, records := range diff {
			for key, value := range records {
				pipe.Set(ctx, sp.stateKey(contract, key), value, 0)
			}
		}
		pipe.Set(ctx, sp.prefix+heightKey, strconv.FormatUint(uint64(height), 10), 0)
		return nil
	})
	if err != nil {
		return errors.Wrapf(err, "could not write state diff for height %d", height)
	}
	return nil
}

func (sp *RedisStatePersistence) Read(ctx context.Context, contract primitives.ContractName, key string) ([]byte, bool, error) {
	start := time.Now()
	defer sp.metrics.readTime.RecordSince(start)

	value, err := sp.client.Get(ctx, sp.stateKey(contract, key)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrapf(err, "could not read key %s", adapter.NamespacedKey(contract, key))
	}
	return value, true, nil
}

func (sp *RedisStatePersistence) ReadMetadata(ctx context.Context) (primitives.BlockHeight, error) {
	height, err := sp.client.Get(ctx, sp.prefix+heightKey).Uint64()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, errors.Wrap(err, "could not read state height")
	}
	return primitives.BlockHeight(height), nil
}

func (sp *RedisStatePersistence) Close() error {
	sp.logger.Info("closing state persistence")
	return sp.client.Close()
}
