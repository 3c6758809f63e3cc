// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package virtualmachine

import (
	"context"
	"github.com/orbs-network/ticketchain/config"
	"github.com/orbs-network/ticketchain/instrumentation/metric"
	"github.com/orbs-network/ticketchain/primitives"
	"github.com/orbs-network/ticketchain/protocol"
	"github.com/orbs-network/ticketchain/services/processor/native"
	"github.com/orbs-network/ticketchain/services/processor/native/repository"
	"github.com/orbs-network/ticketchain/services/statestorage"
	"github.com/orbs-network/ticketchain/services/statestorage/adapter/testkit"
	"github.com/orbs-network/ticketchain/test/builders"
	"github.com/orbs-network/ticketchain/test/with"
	"github.com/stretchr/testify/require"
	"testing"
	"time"
)

type harness struct {
	vm          *service
	persistence testkit.TamperingStatePersistence
	registry    metric.Registry
}

func newHarness(ctx context.Context, logging *with.LoggingHarness) *harness {
	return newHarnessWithConfig(ctx, logging, config.ForVirtualMachineTests(30*time.Minute, 3*time.Minute))
}

func newHarnessWithConfig(ctx context.Context, logging *with.LoggingHarness, cfg config.VirtualMachineConfig) *harness {
	registry := metric.NewRegistry()
	persistence := testkit.NewStatePersistence(registry)
	stateStorage := statestorage.NewStateStorage(persistence, logging.Logger, registry)
	processor := native.NewNativeProcessor(repository.Contracts, logging.Logger, registry)

	return &harness{
		vm:          NewVirtualMachine(ctx, cfg, stateStorage, processor, logging.Logger, registry),
		persistence: persistence,
		registry:    registry,
	}
}

func (h *harness) runTransaction(t *testing.T, ctx context.Context, tx *protocol.SignedTransaction) *protocol.TransactionOutput {
	output, err := h.vm.RunTransaction(ctx, tx)
	require.NoError(t, err, "transaction should not fail")
	require.Equal(t, protocol.TRANSACTION_STATUS_COMMITTED, output.TransactionStatus, "transaction should be committed")
	return output
}

func (h *harness) totalTickets(t *testing.T, ctx context.Context) uint32 {
	output, err := h.vm.RunQuery(ctx, builders.Query("get_total_tickets"))
	require.NoError(t, err, "query should succeed")
	require.Equal(t, protocol.EXECUTION_RESULT_SUCCESS, output.ExecutionResult)
	require.Len(t, output.OutputArguments, 1)
	return output.OutputArguments[0].Uint32Value
}

func (h *harness) lastTicketOwner(t *testing.T, ctx context.Context) primitives.ClientAddress {
	output, err := h.vm.RunQuery(ctx, builders.Query("get_last_ticket_owner"))
	require.NoError(t, err, "query should succeed")
	require.Equal(t, protocol.EXECUTION_RESULT_SUCCESS, output.ExecutionResult)
	require.Len(t, output.OutputArguments, 1)
	return output.OutputArguments[0].BytesValue
}
