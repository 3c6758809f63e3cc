// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package publicapi

import (
	"context"
	"github.com/orbs-network/ticketchain/instrumentation/trace"
	"github.com/orbs-network/ticketchain/primitives"
	"github.com/orbs-network/ticketchain/protocol"
	"github.com/orbs-network/ticketchain/services/processor/native/repository/TicketChain"
	"github.com/pkg/errors"
)

const maxTotalsReadAttempts = 3

// GetTotals reads both ledger entries at one state height, retrying when a mint commits between the two reads.
// An empty owner output means nobody minted yet.
func (s *service) GetTotals(parentCtx context.Context) (*TotalsOutput, error) {
	ctx := trace.NewContext(parentCtx, "PublicApi.GetTotals")

	for attempt := 1; ; attempt++ {
		totalOutput, err := s.RunQuery(ctx, s.ticketChainQuery(ticketchain.METHOD_NAME_GET_TOTAL_TICKETS))
		if err != nil {
			return nil, errors.Wrap(err, "failed reading total tickets")
		}
		if len(totalOutput.OutputArguments) != 1 || totalOutput.OutputArguments[0].Type != protocol.ARGUMENT_TYPE_UINT_32_VALUE {
			return nil, errors.Errorf("unexpected total tickets output %s", protocol.ArgumentsString(totalOutput.OutputArguments))
		}

		ownerOutput, err := s.RunQuery(ctx, s.ticketChainQuery(ticketchain.METHOD_NAME_GET_LAST_TICKET_OWNER))
		if err != nil {
			return nil, errors.Wrap(err, "failed reading last ticket owner")
		}
		if len(ownerOutput.OutputArguments) != 1 || ownerOutput.OutputArguments[0].Type != protocol.ARGUMENT_TYPE_BYTES_VALUE {
			return nil, errors.Errorf("unexpected last ticket owner output %s", protocol.ArgumentsString(ownerOutput.OutputArguments))
		}

		if totalOutput.StateHeight != ownerOutput.StateHeight {
			if attempt < maxTotalsReadAttempts {
				continue
			}
			return nil, errors.Errorf("state kept changing while reading totals (heights %d and %d)", totalOutput.StateHeight, ownerOutput.StateHeight)
		}

		res := &TotalsOutput{
			Total:       totalOutput.OutputArguments[0].Uint32Value,
			StateHeight: totalOutput.StateHeight,
		}
		if owner := ownerOutput.OutputArguments[0].BytesValue; len(owner) > 0 {
			res.LastOwner = primitives.ClientAddress(owner)
		}
		return res, nil
	}
}

func (s *service) ticketChainQuery(method primitives.MethodName) *protocol.Query {
	return &protocol.Query{
		ProtocolVersion: s.config.ProtocolVersion(),
		VirtualChainId:  s.config.VirtualChainId(),
		Timestamp:       now(),
		ContractName:    ticketchain.CONTRACT_NAME,
		MethodName:      method,
		InputArguments:  []protocol.Argument{},
	}
}
