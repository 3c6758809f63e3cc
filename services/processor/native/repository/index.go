// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package repository

import (
	"github.com/orbs-network/ticketchain/primitives"
	"github.com/orbs-network/ticketchain/services/processor/native/repository/TicketChain"
	"github.com/orbs-network/ticketchain/services/processor/native/types"
)

var Contracts = map[primitives.ContractName]types.ContractInfo{
	ticketchain.CONTRACT.Name: ticketchain.CONTRACT,
	// add new native contracts here
}
