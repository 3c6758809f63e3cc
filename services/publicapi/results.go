// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package publicapi

import (
	"github.com/orbs-network/ticketchain/config"
	"github.com/orbs-network/ticketchain/primitives"
	"github.com/orbs-network/ticketchain/protocol"
	"github.com/pkg/errors"
)

func validateRequest(config config.PublicApiConfig, protocolVersion primitives.ProtocolVersion, vcId primitives.VirtualChainId) (protocol.TransactionStatus, error) {
	if config.ProtocolVersion() != protocolVersion {
		return protocol.TRANSACTION_STATUS_REJECTED_UNSUPPORTED_VERSION, errors.Errorf("invalid protocol version %d", protocolVersion)
	}

	if config.VirtualChainId() != vcId {
		return protocol.TRANSACTION_STATUS_REJECTED_VIRTUAL_CHAIN_MISMATCH, errors.Errorf("virtual chain mismatch received %d but expected %d", vcId, config.VirtualChainId())
	}

	return protocol.TRANSACTION_STATUS_RESERVED, nil
}

func TransactionRequestStatus(output *protocol.TransactionOutput) protocol.RequestStatus {
	if output == nil {
		return protocol.REQUEST_STATUS_SYSTEM_ERROR
	}
	executionResult := protocol.EXECUTION_RESULT_RESERVED
	if output.Receipt != nil {
		executionResult = output.Receipt.ExecutionResult
	}
	return translateTransactionStatusToRequestStatus(output.TransactionStatus, executionResult)
}

func QueryRequestStatus(output *protocol.QueryOutput) protocol.RequestStatus {
	if output == nil {
		return protocol.REQUEST_STATUS_SYSTEM_ERROR
	}
	return translateExecutionStatusToRequestStatus(output.ExecutionResult)
}

func translateTransactionStatusToRequestStatus(txStatus protocol.TransactionStatus, executionResult protocol.ExecutionResult) protocol.RequestStatus {
	switch txStatus {
	case protocol.TRANSACTION_STATUS_COMMITTED:
		return translateExecutionStatusToRequestStatus(executionResult)
	case protocol.TRANSACTION_STATUS_DUPLICATE_TRANSACTION_ALREADY_COMMITTED:
		return translateExecutionStatusToRequestStatus(executionResult)
	case protocol.TRANSACTION_STATUS_REJECTED_CONGESTION:
		return protocol.REQUEST_STATUS_CONGESTION
	case protocol.TRANSACTION_STATUS_REJECTED_NODE_OUT_OF_SYNC:
		return protocol.REQUEST_STATUS_SYSTEM_ERROR
	}
	if txStatus.IsRejected() {
		return protocol.REQUEST_STATUS_REJECTED
	}
	return protocol.REQUEST_STATUS_SYSTEM_ERROR
}

func translateExecutionStatusToRequestStatus(executionResult protocol.ExecutionResult) protocol.RequestStatus {
	switch executionResult {
	case protocol.EXECUTION_RESULT_SUCCESS:
		return protocol.REQUEST_STATUS_COMPLETED
	case protocol.EXECUTION_RESULT_ERROR_SMART_CONTRACT:
		return protocol.REQUEST_STATUS_BAD_REQUEST
	case protocol.EXECUTION_RESULT_ERROR_INPUT:
		return protocol.REQUEST_STATUS_BAD_REQUEST
	case protocol.EXECUTION_RESULT_ERROR_CONTRACT_NOT_DEPLOYED:
		return protocol.REQUEST_STATUS_BAD_REQUEST
	case protocol.EXECUTION_RESULT_ERROR_UNAUTHORIZED:
		return protocol.REQUEST_STATUS_UNAUTHORIZED
	}
	return protocol.REQUEST_STATUS_SYSTEM_ERROR
}
