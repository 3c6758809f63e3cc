// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package protocol

type ExecutionResult uint16

const (
	EXECUTION_RESULT_RESERVED                    ExecutionResult = 0
	EXECUTION_RESULT_SUCCESS                     ExecutionResult = 1
	EXECUTION_RESULT_ERROR_SMART_CONTRACT        ExecutionResult = 2
	EXECUTION_RESULT_ERROR_INPUT                 ExecutionResult = 3
	EXECUTION_RESULT_ERROR_CONTRACT_NOT_DEPLOYED ExecutionResult = 4
	EXECUTION_RESULT_ERROR_UNAUTHORIZED          ExecutionResult = 5
	EXECUTION_RESULT_ERROR_UNEXPECTED            ExecutionResult = 6
	EXECUTION_RESULT_NOT_EXECUTED                ExecutionResult = 7
)

func (r ExecutionResult) String() string {
	switch r {
	case EXECUTION_RESULT_RESERVED:
		return "EXECUTION_RESULT_RESERVED"
	case EXECUTION_RESULT_SUCCESS:
		return "EXECUTION_RESULT_SUCCESS"
	case EXECUTION_RESULT_ERROR_SMART_CONTRACT:
		return "EXECUTION_RESULT_ERROR_SMART_CONTRACT"
	case EXECUTION_RESULT_ERROR_INPUT:
		return "EXECUTION_RESULT_ERROR_INPUT"
	case EXECUTION_RESULT_ERROR_CONTRACT_NOT_DEPLOYED:
		return "EXECUTION_RESULT_ERROR_CONTRACT_NOT_DEPLOYED"
	case EXECUTION_RESULT_ERROR_UNAUTHORIZED:
		return "EXECUTION_RESULT_ERROR_UNAUTHORIZED"
	case EXECUTION_RESULT_ERROR_UNEXPECTED:
		return "EXECUTION_RESULT_ERROR_UNEXPECTED"
	case EXECUTION_RESULT_NOT_EXECUTED:
		return "EXECUTION_RESULT_NOT_EXECUTED"
	}
	return "UNKNOWN"
}

type TransactionStatus uint16

const (
	TRANSACTION_STATUS_RESERVED                                TransactionStatus = 0
	TRANSACTION_STATUS_COMMITTED                               TransactionStatus = 1
	TRANSACTION_STATUS_DUPLICATE_TRANSACTION_ALREADY_COMMITTED TransactionStatus = 2
	TRANSACTION_STATUS_REJECTED_UNSUPPORTED_VERSION            TransactionStatus = 3
	TRANSACTION_STATUS_REJECTED_VIRTUAL_CHAIN_MISMATCH         TransactionStatus = 4
	TRANSACTION_STATUS_REJECTED_TIMESTAMP_WINDOW_EXCEEDED      TransactionStatus = 5
	TRANSACTION_STATUS_REJECTED_TIMESTAMP_AHEAD_OF_NODE_TIME   TransactionStatus = 6
	TRANSACTION_STATUS_REJECTED_UNKNOWN_SIGNER_SCHEME          TransactionStatus = 7
	TRANSACTION_STATUS_REJECTED_SIGNATURE_MISMATCH             TransactionStatus = 8
	TRANSACTION_STATUS_REJECTED_CONGESTION                     TransactionStatus = 9
	TRANSACTION_STATUS_REJECTED_NODE_OUT_OF_SYNC               TransactionStatus = 10
)

var transactionStatusNames = map[TransactionStatus]string{
	TRANSACTION_STATUS_RESERVED:                                "TRANSACTION_STATUS_RESERVED",
	TRANSACTION_STATUS_COMMITTED:                               "TRANSACTION_STATUS_COMMITTED",
	TRANSACTION_STATUS_DUPLICATE_TRANSACTION_ALREADY_COMMITTED: "TRANSACTION_STATUS_DUPLICATE_TRANSACTION_ALREADY_COMMITTED",
	TRANSACTION_STATUS_REJECTED_UNSUPPORTED_VERSION:            "TRANSACTION_STATUS_REJECTED_UNSUPPORTED_VERSION",
	TRANSACTION_STATUS_REJECTED_VIRTUAL_CHAIN_MISMATCH:         "TRANSACTION_STATUS_REJECTED_VIRTUAL_CHAIN_MISMATCH",
	TRANSACTION_STATUS_REJECTED_TIMESTAMP_WINDOW_EXCEEDED:      "TRANSACTION_STATUS_REJECTED_TIMESTAMP_WINDOW_EXCEEDED",
	TRANSACTION_STATUS_REJECTED_TIMESTAMP_AHEAD_OF_NODE_TIME:   "TRANSACTION_STATUS_REJECTED_TIMESTAMP_AHEAD_OF_NODE_TIME",
	TRANSACTION_STATUS_REJECTED_UNKNOWN_SIGNER_SCHEME:          "TRANSACTION_STATUS_REJECTED_UNKNOWN_SIGNER_SCHEME",
	TRANSACTION_STATUS_REJECTED_SIGNATURE_MISMATCH:             "TRANSACTION_STATUS_REJECTED_SIGNATURE_MISMATCH",
	TRANSACTION_STATUS_REJECTED_CONGESTION:                     "TRANSACTION_STATUS_REJECTED_CONGESTION",
	TRANSACTION_STATUS_REJECTED_NODE_OUT_OF_SYNC:               "TRANSACTION_STATUS_REJECTED_NODE_OUT_OF_SYNC",
}

func (s TransactionStatus) String() string {
	if name, found := transactionStatusNames[s]; found {
		return name
	}
	return "UNKNOWN"
}

func (s TransactionStatus) IsRejected() bool {
	return s >= TRANSACTION_STATUS_REJECTED_UNSUPPORTED_VERSION
}

func TransactionStatusFromString(name string) (TransactionStatus, bool) {
	for status, n := range transactionStatusNames {
		if n == name {
			return status, true
		}
	}
	return TRANSACTION_STATUS_RESERVED, false
}

func ExecutionResultFromString(name string) (ExecutionResult, bool) {
	for r := EXECUTION_RESULT_RESERVED; r <= EXECUTION_RESULT_NOT_EXECUTED; r++ {
		if r.String() == name {
			return r, true
		}
	}
	return EXECUTION_RESULT_RESERVED, false
}
