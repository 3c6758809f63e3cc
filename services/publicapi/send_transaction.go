// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package publicapi

import (
	"context"
	"github.com/orbs-network/govnr"
	"github.com/orbs-network/scribe/log"
	"github.com/orbs-network/ticketchain/crypto/digest"
	"github.com/orbs-network/ticketchain/instrumentation/logfields"
	"github.com/orbs-network/ticketchain/instrumentation/trace"
	"github.com/orbs-network/ticketchain/primitives"
	"github.com/orbs-network/ticketchain/protocol"
	"github.com/pkg/errors"
	"time"
)

type txResult struct {
	output *protocol.TransactionOutput
	err    error
}

func (s *service) SendTransaction(parentCtx context.Context, transaction *protocol.SignedTransaction) (*protocol.TransactionOutput, error) {
	ctx := trace.NewContext(parentCtx, "PublicApi.SendTransaction")
	start := time.Now()
	out, err := s.sendTransaction(ctx, transaction)
	if out != nil && out.TransactionStatus == protocol.TRANSACTION_STATUS_COMMITTED {
		s.metrics.sendTransactionTime.RecordSince(start)
	}
	return out, err
}

func (s *service) sendTransaction(ctx context.Context, transaction *protocol.SignedTransaction) (*protocol.TransactionOutput, error) {
	s.metrics.totalTransactionsFromClients.Inc()
	if transaction == nil || transaction.Transaction == nil {
		s.metrics.totalTransactionsErrNilRequest.Inc()
		err := errors.Errorf("client request is nil")
		s.logger.Info("send transaction received missing input", log.Error(err))
		return nil, err
	}

	tx := transaction.Transaction
	txHash, err := digest.CalcTxHash(tx)
	if err != nil {
		s.metrics.totalTransactionsErrInvalidRequest.Inc()
		return nil, err
	}
	logger := s.logger.WithTags(trace.LogFieldFrom(ctx), logfields.Transaction(txHash), log.String("flow", "checkpoint"))

	if txStatus, err := validateRequest(s.config, tx.ProtocolVersion, tx.VirtualChainId); err != nil {
		s.metrics.totalTransactionsErrInvalidRequest.Inc()
		logger.Info("send transaction received input failed", log.Error(err))
		return &protocol.TransactionOutput{TransactionStatus: txStatus, Timestamp: now()}, err
	}

	if !s.limiter.Allow() {
		s.metrics.totalTransactionsErrCongestion.Inc()
		err := errors.New("too many transactions, try again later")
		logger.Info("send transaction rate limited", log.Error(err))
		return &protocol.TransactionOutput{TransactionStatus: protocol.TRANSACTION_STATUS_REJECTED_CONGESTION, Timestamp: now()}, err
	}

	logger.Info("send transaction request received")

	ctx, cancel := context.WithTimeout(ctx, s.config.SendTransactionTimeout())
	defer cancel()

	results := make(chan *txResult, 1)
	govnr.Once(logfields.GovnrErrorer(logger), func() {
		output, err := s.virtualMachine.RunTransaction(ctx, transaction)
		results <- &txResult{output, err}
	})

	select {
	case res := <-results:
		if res.err != nil {
			logger.Info("running transaction failed", log.Error(res.err))
		}
		if res.output != nil && res.output.TransactionStatus == protocol.TRANSACTION_STATUS_DUPLICATE_TRANSACTION_ALREADY_COMMITTED {
			s.metrics.totalTransactionsErrDuplicate.Inc()
		}
		return res.output, res.err
	case <-ctx.Done():
		s.metrics.totalTransactionsErrTimeout.Inc()
		logger.Info("waiting for transaction to be processed failed", log.Error(ctx.Err()))
		return nil, errors.Wrap(ctx.Err(), "timed out waiting for transaction to be processed")
	}
}

func now() primitives.TimestampNano {
	return primitives.TimestampNano(time.Now().UnixNano())
}
