// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package publicapi

import (
	"context"
	"github.com/orbs-network/scribe/log"
	"github.com/orbs-network/ticketchain/config"
	"github.com/orbs-network/ticketchain/instrumentation/metric"
	"github.com/orbs-network/ticketchain/primitives"
	"github.com/orbs-network/ticketchain/protocol"
	"github.com/orbs-network/ticketchain/services/virtualmachine"
	"golang.org/x/time/rate"
	"time"
)

var LogTag = log.Service("public-api")

type PublicApi interface {
	SendTransaction(ctx context.Context, transaction *protocol.SignedTransaction) (*protocol.TransactionOutput, error)
	RunQuery(ctx context.Context, query *protocol.Query) (*protocol.QueryOutput, error)
	GetTotals(ctx context.Context) (*TotalsOutput, error)
	BuildMintTransaction(ctx context.Context, input *BuildMintTransactionInput) (*BuildMintTransactionOutput, error)
}

type TotalsOutput struct {
	Total       uint32
	LastOwner   primitives.ClientAddress // nil until the first mint
	StateHeight primitives.BlockHeight
}

type BuildMintTransactionInput struct {
	Signer protocol.Signer
	Owner  primitives.ClientAddress
	Amount uint32
}

type BuildMintTransactionOutput struct {
	Transaction *protocol.Transaction
	TxHash      primitives.Sha256
}

type service struct {
	config         config.PublicApiConfig
	virtualMachine virtualmachine.VirtualMachine
	limiter        *rate.Limiter
	logger         log.Logger

	metrics *metrics
}

type metrics struct {
	sendTransactionTime                *metric.Histogram
	runQueryTime                       *metric.Histogram
	totalTransactionsFromClients       *metric.Gauge
	totalTransactionsErrNilRequest     *metric.Gauge
	totalTransactionsErrInvalidRequest *metric.Gauge
	totalTransactionsErrCongestion     *metric.Gauge
	totalTransactionsErrTimeout        *metric.Gauge
	totalTransactionsErrDuplicate      *metric.Gauge
}

func newMetrics(factory metric.Factory, sendTransactionTimeout time.Duration, runQueryTimeout time.Duration) *metrics {
	return &metrics{
		sendTransactionTime:                factory.NewLatency("PublicApi.SendTransactionProcessingTime.Millis", sendTransactionTimeout),
		runQueryTime:                       factory.NewLatency("PublicApi.RunQueryProcessingTime.Millis", runQueryTimeout),
		totalTransactionsFromClients:       factory.NewGauge("PublicApi.TotalTransactionsFromClients.Count"),
		totalTransactionsErrNilRequest:     factory.NewGauge("PublicApi.TotalTransactionsErrNilRequest.Count"),
		totalTransactionsErrInvalidRequest: factory.NewGauge("PublicApi.TotalTransactionsErrInvalidRequest.Count"),
		totalTransactionsErrCongestion:     factory.NewGauge("PublicApi.TotalTransactionsErrCongestion.Count"),
		totalTransactionsErrTimeout:        factory.NewGauge("PublicApi.TotalTransactionsErrTimeout.Count"),
		totalTransactionsErrDuplicate:      factory.NewGauge("PublicApi.TotalTransactionsErrDuplicate.Count"),
	}
}

func NewPublicApi(
	config config.PublicApiConfig,
	virtualMachine virtualmachine.VirtualMachine,
	logger log.Logger,
	metricFactory metric.Factory,
) PublicApi {
	return &service{
		config:         config,
		virtualMachine: virtualMachine,
		limiter:        rate.NewLimiter(rate.Limit(config.PublicApiRateLimitPerSecond()), int(config.PublicApiRateLimitBurst())),
		logger:         logger.WithTags(LogTag),

		metrics: newMetrics(metricFactory, config.SendTransactionTimeout(), 1*time.Second),
	}
}
