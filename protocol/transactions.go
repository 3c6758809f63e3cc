// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package protocol

import (
	"github.com/orbs-network/ticketchain/primitives"
)

type SignerScheme uint16

const (
	SIGNER_SCHEME_RESERVED        SignerScheme = 0
	SIGNER_SCHEME_EDDSA           SignerScheme = 1
	SIGNER_SCHEME_ECDSA_SECP256K1 SignerScheme = 2
)

func (s SignerScheme) String() string {
	switch s {
	case SIGNER_SCHEME_RESERVED:
		return "SIGNER_SCHEME_RESERVED"
	case SIGNER_SCHEME_EDDSA:
		return "SIGNER_SCHEME_EDDSA"
	case SIGNER_SCHEME_ECDSA_SECP256K1:
		return "SIGNER_SCHEME_ECDSA_SECP256K1"
	}
	return "UNKNOWN"
}

type Signer struct {
	Scheme    SignerScheme
	PublicKey []byte
}

// field order is part of the transaction hash, do not reorder
type Transaction struct {
	ProtocolVersion primitives.ProtocolVersion
	VirtualChainId  primitives.VirtualChainId
	Timestamp       primitives.TimestampNano
	Signer          Signer
	ContractName    primitives.ContractName
	MethodName      primitives.MethodName
	InputArguments  []Argument
}

type SignedTransaction struct {
	Transaction *Transaction
	Signature   []byte
}

type Query struct {
	ProtocolVersion primitives.ProtocolVersion
	VirtualChainId  primitives.VirtualChainId
	Timestamp       primitives.TimestampNano
	ContractName    primitives.ContractName
	MethodName      primitives.MethodName
	InputArguments  []Argument
}

type TransactionReceipt struct {
	Txhash          primitives.Sha256
	ExecutionResult ExecutionResult
	OutputArguments []Argument
}

type TransactionOutput struct {
	TransactionStatus TransactionStatus
	Receipt           *TransactionReceipt
	StateHeight       primitives.BlockHeight
	Timestamp         primitives.TimestampNano
}

type QueryOutput struct {
	ExecutionResult ExecutionResult
	OutputArguments []Argument
	StateHeight     primitives.BlockHeight
	Timestamp       primitives.TimestampNano
}
