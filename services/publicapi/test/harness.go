// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package test

import (
	"context"
	"github.com/orbs-network/go-mock"
	"github.com/orbs-network/scribe/log"
	"github.com/orbs-network/ticketchain/config"
	"github.com/orbs-network/ticketchain/instrumentation/metric"
	"github.com/orbs-network/ticketchain/primitives"
	"github.com/orbs-network/ticketchain/protocol"
	"github.com/orbs-network/ticketchain/services/publicapi"
	"github.com/orbs-network/ticketchain/services/virtualmachine"
	"github.com/orbs-network/ticketchain/test/builders"
	"time"
)

type harness struct {
	papi     publicapi.PublicApi
	vmMock   *virtualmachine.MockVirtualMachine
	registry metric.Registry
}

func newPublicApiHarness(logger log.Logger, txTimeout time.Duration, ratePerSecond uint32, burst uint32) *harness {
	cfg := config.ForPublicApiTests(txTimeout, ratePerSecond, burst)
	vmMock := &virtualmachine.MockVirtualMachine{}
	registry := metric.NewRegistry()
	return &harness{
		papi:     publicapi.NewPublicApi(cfg, vmMock, logger, registry),
		vmMock:   vmMock,
		registry: registry,
	}
}

func newDefaultPublicApiHarness(logger log.Logger) *harness {
	return newPublicApiHarness(logger, time.Second, 1000, 1000)
}

func (h *harness) transactionIsCommitted() *protocol.TransactionOutput {
	output := &protocol.TransactionOutput{
		TransactionStatus: protocol.TRANSACTION_STATUS_COMMITTED,
		Receipt: &protocol.TransactionReceipt{
			Txhash:          []byte{0x01, 0x02},
			ExecutionResult: protocol.EXECUTION_RESULT_SUCCESS,
		},
		StateHeight: 3,
	}
	h.vmMock.When("RunTransaction", mock.Any, mock.Any).Return(output, nil).Times(1)
	return output
}

func (h *harness) transactionNeverReachesVirtualMachine() {
	h.vmMock.Never("RunTransaction", mock.Any, mock.Any)
}

func (h *harness) transactionBlocksUntilCancelled() {
	h.vmMock.When("RunTransaction", mock.Any, mock.Any).Times(1).
		Call(func(ctx context.Context, transaction *protocol.SignedTransaction) (*protocol.TransactionOutput, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		})
}

func (h *harness) ledgerHolds(total uint32, lastOwner []byte) {
	h.vmMock.When("RunQuery", mock.Any, mock.Any).Times(2).
		Call(func(ctx context.Context, query *protocol.Query) (*protocol.QueryOutput, error) {
			output := &protocol.QueryOutput{ExecutionResult: protocol.EXECUTION_RESULT_SUCCESS, StateHeight: 5}
			switch query.MethodName {
			case "get_total_tickets":
				output.OutputArguments = builders.Arguments(total)
			case "get_last_ticket_owner":
				output.OutputArguments = builders.Arguments(lastOwner)
			}
			return output, nil
		})
}

type ledgerRead struct {
	height primitives.BlockHeight
	total  uint32
	owner  []byte
}

// ledgerAdvances answers the n-th query from reads[n], as if mints committed between queries
func (h *harness) ledgerAdvances(reads ...ledgerRead) {
	next := 0
	h.vmMock.When("RunQuery", mock.Any, mock.Any).Times(len(reads)).
		Call(func(ctx context.Context, query *protocol.Query) (*protocol.QueryOutput, error) {
			read := reads[next]
			next++
			output := &protocol.QueryOutput{ExecutionResult: protocol.EXECUTION_RESULT_SUCCESS, StateHeight: read.height}
			switch query.MethodName {
			case "get_total_tickets":
				output.OutputArguments = builders.Arguments(read.total)
			case "get_last_ticket_owner":
				output.OutputArguments = builders.Arguments(read.owner)
			}
			return output, nil
		})
}
