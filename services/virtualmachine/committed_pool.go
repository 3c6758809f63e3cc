// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package virtualmachine

import (
	"github.com/orbs-network/ticketchain/instrumentation/metric"
	"github.com/orbs-network/ticketchain/primitives"
	"github.com/orbs-network/ticketchain/protocol"
	"sync"
	"time"
)

// receipts of executed transactions, kept for as long as a resubmission could pass the expiration check
type committedTxPool struct {
	transactions map[string]*committedTransaction
	lock         *sync.RWMutex

	metrics *committedPoolMetrics
}

type committedPoolMetrics struct {
	transactionCountGauge *metric.Gauge
}

func newCommittedPoolMetrics(factory metric.Factory) *committedPoolMetrics {
	return &committedPoolMetrics{
		transactionCountGauge: factory.NewGauge("VirtualMachine.CommittedPool.TransactionCount"),
	}
}

func newCommittedPool(metricFactory metric.Factory) *committedTxPool {
	return &committedTxPool{
		transactions: make(map[string]*committedTransaction),
		lock:         &sync.RWMutex{},
		metrics:      newCommittedPoolMetrics(metricFactory),
	}
}

type committedTransaction struct {
	receipt     *protocol.TransactionReceipt
	stateHeight primitives.BlockHeight
	timestamp   primitives.TimestampNano
}

func (p *committedTxPool) add(receipt *protocol.TransactionReceipt, stateHeight primitives.BlockHeight, ts primitives.TimestampNano) {
	p.lock.Lock()
	defer p.lock.Unlock()

	key := receipt.Txhash.KeyForMap()
	if _, found := p.transactions[key]; !found {
		p.metrics.transactionCountGauge.Inc()
	}
	p.transactions[key] = &committedTransaction{
		receipt:     receipt,
		stateHeight: stateHeight,
		timestamp:   ts,
	}
}

func (p *committedTxPool) get(txHash primitives.Sha256) *committedTransaction {
	p.lock.RLock()
	defer p.lock.RUnlock()

	return p.transactions[txHash.KeyForMap()]
}

func (p *committedTxPool) clearTransactionsOlderThan(t time.Time) int {
	p.lock.Lock()
	defer p.lock.Unlock()

	cleared := 0
	for key, tx := range p.transactions {
		if int64(tx.timestamp) < t.UnixNano() {
			delete(p.transactions, key)
			cleared++
		}
	}
	p.metrics.transactionCountGauge.Update(int64(len(p.transactions)))
	return cleared
}

func (p *committedTxPool) size() int {
	p.lock.RLock()
	defer p.lock.RUnlock()

	return len(p.transactions)
}
