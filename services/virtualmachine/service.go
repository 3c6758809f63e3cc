// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package virtualmachine

import (
	"context"
	"github.com/orbs-network/govnr"
	"github.com/orbs-network/scribe/log"
	"github.com/orbs-network/ticketchain/config"
	"github.com/orbs-network/ticketchain/crypto/digest"
	"github.com/orbs-network/ticketchain/instrumentation/logfields"
	"github.com/orbs-network/ticketchain/instrumentation/metric"
	"github.com/orbs-network/ticketchain/instrumentation/trace"
	"github.com/orbs-network/ticketchain/primitives"
	"github.com/orbs-network/ticketchain/protocol"
	"github.com/orbs-network/ticketchain/services/processor/native"
	"github.com/orbs-network/ticketchain/services/statestorage"
	"github.com/orbs-network/ticketchain/synchronization"
	"github.com/pkg/errors"
	"sync"
	"time"
)

var LogTag = log.Service("virtual-machine")

type VirtualMachine interface {
	RunTransaction(ctx context.Context, transaction *protocol.SignedTransaction) (*protocol.TransactionOutput, error)
	RunQuery(ctx context.Context, query *protocol.Query) (*protocol.QueryOutput, error)
}

type metrics struct {
	runTransactionTime    *metric.Histogram
	runQueryTime          *metric.Histogram
	committedTransactions *metric.Rate
	rejectedTransactions  *metric.Rate
	duplicateTransactions *metric.Rate
	hostFaults            *metric.Rate
}

func newMetrics(m metric.Factory) *metrics {
	return &metrics{
		runTransactionTime:    m.NewLatency("VirtualMachine.RunTransactionTime.Millis", 10*time.Second),
		runQueryTime:          m.NewLatency("VirtualMachine.RunQueryTime.Millis", 10*time.Second),
		committedTransactions: m.NewRate("VirtualMachine.CommittedTransactions.PerSecond"),
		rejectedTransactions:  m.NewRate("VirtualMachine.RejectedTransactions.PerSecond"),
		duplicateTransactions: m.NewRate("VirtualMachine.DuplicateTransactions.PerSecond"),
		hostFaults:            m.NewRate("VirtualMachine.HostFaults.PerSecond"),
	}
}

type service struct {
	govnr.TreeSupervisor

	stateStorage  statestorage.StateStorage
	processor     native.Processor
	validation    *validationContext
	committedPool *committedTxPool
	logger        log.Logger
	metrics       *metrics

	// one mutating invocation at a time, queries do not take it
	mutations sync.RWMutex
}

func NewVirtualMachine(
	ctx context.Context,
	cfg config.VirtualMachineConfig,
	stateStorage statestorage.StateStorage,
	processor native.Processor,
	parentLogger log.Logger,
	metricFactory metric.Factory,
) *service {
	logger := parentLogger.WithTags(LogTag)

	s := &service{
		stateStorage: stateStorage,
		processor:    processor,
		validation: &validationContext{
			protocolVersion:      cfg.ProtocolVersion(),
			virtualChainId:       cfg.VirtualChainId(),
			expiryWindow:         cfg.TransactionExpirationWindow(),
			futureTimestampGrace: cfg.TransactionFutureTimestampGraceTimeout(),
		},
		committedPool: newCommittedPool(metricFactory),
		logger:        logger,
		metrics:       newMetrics(metricFactory),
	}

	s.Supervise(s.startCleaningProcess(ctx, cfg.CommittedPoolClearExpiredInterval(), cfg.TransactionExpirationWindow()))

	return s
}

func (s *service) startCleaningProcess(ctx context.Context, interval time.Duration, expiration time.Duration) *synchronization.PeriodicalTrigger {
	return synchronization.NewPeriodicalTrigger(ctx, "committed pool cleaner", interval, s.logger, func() {
		if cleared := s.committedPool.clearTransactionsOlderThan(time.Now().Add(-expiration)); cleared > 0 {
			s.logger.Info("cleared expired transactions from committed pool", log.Int("count", cleared))
		}
	}, nil)
}

func (s *service) RunTransaction(ctx context.Context, transaction *protocol.SignedTransaction) (*protocol.TransactionOutput, error) {
	if transaction == nil || transaction.Transaction == nil {
		return nil, errors.New("transaction is missing")
	}
	txHash, err := digest.CalcTxHash(transaction.Transaction)
	if err != nil {
		return nil, err
	}
	logger := s.logger.WithTags(trace.LogFieldFrom(ctx), logfields.Transaction(txHash))

	start := time.Now()
	defer s.metrics.runTransactionTime.RecordSince(start)

	if rejected := s.validation.validateTransaction(transaction, txHash, start); rejected != nil {
		logger.Info("transaction rejected", append(rejected.LogFields(), log.Stringable("status", rejected.TransactionStatus))...)
		s.metrics.rejectedTransactions.Measure(1)
		return &protocol.TransactionOutput{
			TransactionStatus: rejected.TransactionStatus,
			StateHeight:       s.currentHeight(ctx, logger),
			Timestamp:         now(),
		}, rejected
	}

	s.mutations.Lock()
	defer s.mutations.Unlock()

	if committed := s.committedPool.get(txHash); committed != nil {
		logger.Info("transaction already committed", logfields.StateHeight(committed.stateHeight))
		s.metrics.duplicateTransactions.Measure(1)
		return &protocol.TransactionOutput{
			TransactionStatus: protocol.TRANSACTION_STATUS_DUPLICATE_TRANSACTION_ALREADY_COMMITTED,
			Receipt:           committed.receipt,
			StateHeight:       committed.stateHeight,
			Timestamp:         now(),
		}, nil
	}

	signer, err := digest.CalcClientAddressOfSigner(transaction.Transaction.Signer)
	if err != nil {
		return nil, errors.Wrap(err, "signer address of a verified transaction")
	}

	tx := transaction.Transaction
	transient := newTransientState()
	state := newStateSdk(tx.ContractName, transient, s.stateStorage)
	output, contractErr := s.processor.ProcessCall(ctx, &native.ProcessCallInput{
		ContractName:   tx.ContractName,
		MethodName:     tx.MethodName,
		InputArguments: tx.InputArguments,
		AccessScope:    protocol.ACCESS_SCOPE_READ_WRITE,
		State:          state,
		Auth:           &signerAuth{signer: signer},
	})
	if state.hostFault != nil || output == nil {
		return s.hostFault(ctx, logger, txHash, errors.WithStack(firstError(state.hostFault, contractErr)))
	}

	receipt := &protocol.TransactionReceipt{
		Txhash:          txHash,
		ExecutionResult: output.CallResult,
		OutputArguments: output.OutputArguments,
	}

	var height primitives.BlockHeight
	if output.CallResult == protocol.EXECUTION_RESULT_SUCCESS {
		height, err = s.stateStorage.CommitStateDiff(ctx, transient.stateDiff())
		if err != nil {
			return s.hostFault(ctx, logger, txHash, err)
		}
	} else {
		logger.Info("transaction failed, state changes discarded", log.Stringable("execution-result", output.CallResult), log.String("reason", errorMessage(contractErr)))
		height = s.currentHeight(ctx, logger)
	}

	s.committedPool.add(receipt, height, tx.Timestamp)
	s.metrics.committedTransactions.Measure(1)
	logger.Info("transaction committed", log.Stringable("execution-result", receipt.ExecutionResult), logfields.StateHeight(height))

	return &protocol.TransactionOutput{
		TransactionStatus: protocol.TRANSACTION_STATUS_COMMITTED,
		Receipt:           receipt,
		StateHeight:       height,
		Timestamp:         now(),
	}, nil
}

func (s *service) RunQuery(ctx context.Context, query *protocol.Query) (*protocol.QueryOutput, error) {
	if query == nil {
		return nil, errors.New("query is missing")
	}
	queryHash, err := digest.CalcQueryHash(query)
	if err != nil {
		return nil, err
	}
	logger := s.logger.WithTags(trace.LogFieldFrom(ctx), logfields.Query(queryHash))

	start := time.Now()
	defer s.metrics.runQueryTime.RecordSince(start)

	if query.ProtocolVersion != s.validation.protocolVersion || query.VirtualChainId != s.validation.virtualChainId {
		err := errors.Errorf("query for protocol version %d and virtual chain %d is not served by this node", query.ProtocolVersion, query.VirtualChainId)
		logger.Info("query rejected", log.Error(err))
		return &protocol.QueryOutput{
			ExecutionResult: protocol.EXECUTION_RESULT_ERROR_INPUT,
			StateHeight:     s.currentHeight(ctx, logger),
			Timestamp:       now(),
		}, err
	}

	// queries never observe a half committed diff, so the reported height matches what was read
	s.mutations.RLock()
	defer s.mutations.RUnlock()

	height := s.currentHeight(ctx, logger)
	state := newStateSdk(query.ContractName, newTransientState(), s.stateStorage)
	output, contractErr := s.processor.ProcessCall(ctx, &native.ProcessCallInput{
		ContractName:   query.ContractName,
		MethodName:     query.MethodName,
		InputArguments: query.InputArguments,
		AccessScope:    protocol.ACCESS_SCOPE_READ_ONLY,
		State:          state,
		Auth:           &signerAuth{},
	})
	if state.hostFault != nil || output == nil {
		err := errors.WithStack(firstError(state.hostFault, contractErr))
		logger.Error("query hit a host fault", log.Error(err))
		s.metrics.hostFaults.Measure(1)
		return &protocol.QueryOutput{
			ExecutionResult: protocol.EXECUTION_RESULT_ERROR_UNEXPECTED,
			StateHeight:     height,
			Timestamp:       now(),
		}, err
	}

	return &protocol.QueryOutput{
		ExecutionResult: output.CallResult,
		OutputArguments: output.OutputArguments,
		StateHeight:     height,
		Timestamp:       now(),
	}, contractErr
}

// the transient state is dropped and the hash is not remembered, so the same transaction may be retried
func (s *service) hostFault(ctx context.Context, logger log.Logger, txHash primitives.Sha256, err error) (*protocol.TransactionOutput, error) {
	logger.Error("transaction hit a host fault, state changes discarded", log.Error(err))
	s.metrics.hostFaults.Measure(1)
	return &protocol.TransactionOutput{
		TransactionStatus: protocol.TRANSACTION_STATUS_RESERVED,
		Receipt: &protocol.TransactionReceipt{
			Txhash:          txHash,
			ExecutionResult: protocol.EXECUTION_RESULT_ERROR_UNEXPECTED,
		},
		StateHeight: s.currentHeight(ctx, logger),
		Timestamp:   now(),
	}, err
}

func (s *service) currentHeight(ctx context.Context, logger log.Logger) primitives.BlockHeight {
	height, err := s.stateStorage.GetStateHeight(ctx)
	if err != nil {
		logger.Info("could not read state height", log.Error(err))
	}
	return height
}

func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return errors.New("processor returned no output")
}

func errorMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

func now() primitives.TimestampNano {
	return primitives.TimestampNano(time.Now().UnixNano())
}
