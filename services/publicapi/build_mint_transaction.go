// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package publicapi

import (
	"context"
	"github.com/orbs-network/scribe/log"
	"github.com/orbs-network/ticketchain/crypto/digest"
	"github.com/orbs-network/ticketchain/instrumentation/logfields"
	"github.com/orbs-network/ticketchain/instrumentation/trace"
	"github.com/orbs-network/ticketchain/protocol"
	"github.com/orbs-network/ticketchain/services/processor/native/repository/TicketChain"
	"github.com/pkg/errors"
)

// the returned transaction is unsigned, the client signs TxHash and submits it with SendTransaction
func (s *service) BuildMintTransaction(parentCtx context.Context, input *BuildMintTransactionInput) (*BuildMintTransactionOutput, error) {
	ctx := trace.NewContext(parentCtx, "PublicApi.BuildMintTransaction")
	logger := s.logger.WithTags(trace.LogFieldFrom(ctx))

	if input == nil {
		return nil, errors.New("client request is nil")
	}
	if _, err := digest.CalcClientAddressOfSigner(input.Signer); err != nil {
		return nil, errors.Wrap(err, "invalid signer")
	}
	if len(input.Owner) != digest.CLIENT_ADDRESS_SIZE_BYTES {
		return nil, errors.Errorf("owner address must be %d bytes, got %d", digest.CLIENT_ADDRESS_SIZE_BYTES, len(input.Owner))
	}

	args, err := protocol.ArgumentsFromNatives([]byte(input.Owner), input.Amount)
	if err != nil {
		return nil, err
	}

	tx := &protocol.Transaction{
		ProtocolVersion: s.config.ProtocolVersion(),
		VirtualChainId:  s.config.VirtualChainId(),
		Timestamp:       now(),
		Signer:          input.Signer,
		ContractName:    ticketchain.CONTRACT_NAME,
		MethodName:      ticketchain.METHOD_NAME_MINT_TICKET,
		InputArguments:  args,
	}
	txHash, err := digest.CalcTxHash(tx)
	if err != nil {
		return nil, err
	}

	logger.Info("built mint transaction", logfields.Transaction(txHash), logfields.ClientAddress("owner", input.Owner), log.Uint32("amount", input.Amount))

	return &BuildMintTransactionOutput{
		Transaction: tx,
		TxHash:      txHash,
	}, nil
}
