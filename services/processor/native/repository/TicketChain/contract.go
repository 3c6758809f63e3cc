// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package ticketchain

import (
	"context"
	"github.com/orbs-network/ticketchain/primitives"
	"github.com/orbs-network/ticketchain/protocol"
	"github.com/orbs-network/ticketchain/services/processor/native/types"
	"github.com/orbs-network/ticketchain/services/ticketledger"
)

const CONTRACT_NAME = "TicketChain"

const (
	METHOD_NAME_MINT_TICKET           = "mint_ticket"
	METHOD_NAME_GET_TOTAL_TICKETS     = "get_total_tickets"
	METHOD_NAME_GET_LAST_TICKET_OWNER = "get_last_ticket_owner"
)

var CONTRACT = types.ContractInfo{
	Name: CONTRACT_NAME,
	Methods: map[primitives.MethodName]types.MethodInfo{
		METHOD_MINT_TICKET.Name:           METHOD_MINT_TICKET,
		METHOD_GET_TOTAL_TICKETS.Name:     METHOD_GET_TOTAL_TICKETS,
		METHOD_GET_LAST_TICKET_OWNER.Name: METHOD_GET_LAST_TICKET_OWNER,
	},
	InitSingleton: newContract,
}

func newContract(base *types.BaseContract) types.ContractInstance {
	return &contract{
		BaseContract: base,
		ledger:       ticketledger.NewLedger(base.State, base.Auth, base.Logger),
	}
}

type contract struct {
	*types.BaseContract
	ledger *ticketledger.Ledger
}

///////////////////////////////////////////////////////////////////////////

var METHOD_MINT_TICKET = types.MethodInfo{
	Name:           METHOD_NAME_MINT_TICKET,
	External:       true,
	Access:         protocol.ACCESS_SCOPE_READ_WRITE,
	Implementation: (*contract).mintTicket,
}

func (c *contract) mintTicket(ctx context.Context, owner []byte, amount uint32) error {
	return c.ledger.MintTicket(ctx, primitives.ClientAddress(owner), amount)
}

///////////////////////////////////////////////////////////////////////////

var METHOD_GET_TOTAL_TICKETS = types.MethodInfo{
	Name:           METHOD_NAME_GET_TOTAL_TICKETS,
	External:       true,
	Access:         protocol.ACCESS_SCOPE_READ_ONLY,
	Implementation: (*contract).getTotalTickets,
}

func (c *contract) getTotalTickets(ctx context.Context) (uint32, error) {
	return c.ledger.GetTotalTickets(ctx)
}

///////////////////////////////////////////////////////////////////////////

var METHOD_GET_LAST_TICKET_OWNER = types.MethodInfo{
	Name:           METHOD_NAME_GET_LAST_TICKET_OWNER,
	External:       true,
	Access:         protocol.ACCESS_SCOPE_READ_ONLY,
	Implementation: (*contract).getLastTicketOwner,
}

// empty output means no ticket was minted yet
func (c *contract) getLastTicketOwner(ctx context.Context) ([]byte, error) {
	owner, found, err := c.ledger.GetLastTicketOwner(ctx)
	if err != nil {
		return nil, err
	}
	if !found {
		return []byte{}, nil
	}
	return owner, nil
}
