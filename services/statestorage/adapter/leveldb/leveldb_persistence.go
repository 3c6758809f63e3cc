// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package leveldb

import (
	"context"
	"github.com/orbs-network/membuffers/go"
	"github.com/orbs-network/scribe/log"
	"github.com/orbs-network/ticketchain/instrumentation/metric"
	"github.com/orbs-network/ticketchain/primitives"
	"github.com/orbs-network/ticketchain/services/statestorage/adapter"
	"github.com/pkg/errors"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/util"
	"time"
)

const (
	statePrefix = "s:"
	heightKey   = "m:height"
)

type metrics struct {
	writeTime    *metric.Histogram
	numberOfKeys *metric.Gauge
}

func newMetrics(m metric.Factory) *metrics {
	return &metrics{
		writeTime:    m.NewLatency("StateStoragePersistence.LevelDb.WriteTime.Millis", 5*time.Second),
		numberOfKeys: m.NewGauge("StateStoragePersistence.TotalNumberOfKeys.Count"),
	}
}

type LevelDbStatePersistence struct {
	db      *leveldb.DB
	logger  log.Logger
	metrics *metrics
}

func NewStatePersistence(path string, parent log.Logger, metricFactory metric.Factory) (*LevelDbStatePersistence, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open leveldb state at %s", path)
	}

	sp := &LevelDbStatePersistence{
		db:      db,
		logger:  parent.WithTags(log.String("adapter", "leveldb"), log.String("path", path)),
		metrics: newMetrics(metricFactory),
	}
	sp.reportSize()
	sp.logger.Info("opened state persistence", log.Int64("keys", sp.metrics.numberOfKeys.Value()))

	return sp, nil
}

func (sp *LevelDbStatePersistence) reportSize() {
	sp.metrics.numberOfKeys.Update(int64(sp.countStateKeys()))
}

func (sp *LevelDbStatePersistence) countStateKeys() int {
	iter := sp.db.NewIterator(util.BytesPrefix([]byte(statePrefix)), nil)
	defer iter.Release()

	n := 0
	for iter.Next() {
		n++
	}
	return n
}

func stateKey(contract primitives.ContractName, key string) []byte {
	return []byte(statePrefix + adapter.NamespacedKey(contract, key))
}

func (sp *LevelDbStatePersistence) Write(ctx context.Context, height primitives.BlockHeight, diff adapter.ChainState) error {
	start := time.Now()
	defer sp.metrics.writeTime.RecordSince(start)

	batch := new(leveldb.Batch)
	for contract, records := range diff {
		for key, value := range records {
			batch.Put(stateKey(contract, key), value)
		}
	}

	encodedHeight := make([]byte, 8)
	membuffers.WriteUint64(encodedHeight, uint64(height))
	batch.Put([]byte(heightKey), encodedHeight)

	if err := sp.db.Write(batch, &opt.WriteOptions{Sync: true}); err != nil {
		return errors.Wrapf(err, "could not write state diff for height %d", height)
	}
	sp.reportSize()
	return nil
}

func (sp *LevelDbStatePersistence) Read(ctx context.Context, contract primitives.ContractName, key string) ([]byte, bool, error) {
	value, err := sp.db.Get(stateKey(contract, key), nil)
	if err == leveldb.ErrNotFound {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrapf(err, "could not read key %s", adapter.NamespacedKey(contract, key))
	}
	return value, true, nil
}

func (sp *LevelDbStatePersistence) ReadMetadata(ctx context.Context) (primitives.BlockHeight, error) {
	value, err := sp.db.Get([]byte(heightKey), nil)
	if err == leveldb.ErrNotFound {
		return 0, nil
	}
	if err != nil {
		return 0, errors.Wrap(err, "could not read state height")
	}
	if len(value) != 8 {
		return 0, errors.Errorf("corrupt state height of %d bytes", len(value))
	}
	return primitives.BlockHeight(membuffers.GetUint64(value)), nil
}

func (sp *LevelDbStatePersistence) Close() error {
	sp.logger.Info("closing state persistence")
	return sp.db.Close()
}
