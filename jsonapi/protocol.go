// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

// Package jsonapi is the JSON wire format of the node's http api and a client for it.
// Byte values travel as 0x prefixed hex, 64 bit numbers as decimal strings.
package jsonapi

import (
	"encoding/json"
	"github.com/orbs-network/ticketchain/crypto/encoding"
	"github.com/orbs-network/ticketchain/primitives"
	"github.com/orbs-network/ticketchain/protocol"
	"github.com/pkg/errors"
	"strconv"
)

const (
	ARGUMENT_TYPE_UINT32 = "uint32"
	ARGUMENT_TYPE_UINT64 = "uint64"
	ARGUMENT_TYPE_STRING = "string"
	ARGUMENT_TYPE_BYTES  = "bytes"

	SIGNER_SCHEME_EDDSA           = "eddsa"
	SIGNER_SCHEME_ECDSA_SECP256K1 = "ecdsa-secp256k1"
)

type Argument struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type Signer struct {
	Scheme    string `json:"scheme"`
	PublicKey string `json:"publicKey"`
}

type Transaction struct {
	ProtocolVersion uint32     `json:"protocolVersion"`
	VirtualChainId  uint32     `json:"virtualChainId"`
	Timestamp       uint64     `json:"timestamp,string"`
	Signer          Signer     `json:"signer"`
	ContractName    string     `json:"contractName"`
	MethodName      string     `json:"methodName"`
	Arguments       []Argument `json:"arguments"`
}

type Query struct {
	ProtocolVersion uint32     `json:"protocolVersion"`
	VirtualChainId  uint32     `json:"virtualChainId"`
	Timestamp       uint64     `json:"timestamp,string"`
	ContractName    string     `json:"contractName"`
	MethodName      string     `json:"methodName"`
	Arguments       []Argument `json:"arguments"`
}

type SendTransactionRequest struct {
	Transaction *Transaction `json:"transaction"`
	Signature   string       `json:"signature"`
}

type TransactionReceipt struct {
	TxHash          string     `json:"txHash"`
	ExecutionResult string     `json:"executionResult"`
	OutputArguments []Argument `json:"outputArguments"`
}

type SendTransactionResponse struct {
	RequestStatus     string              `json:"requestStatus"`
	TransactionStatus string              `json:"transactionStatus"`
	Receipt           *TransactionReceipt `json:"receipt"`
	StateHeight       uint64              `json:"stateHeight,string"`
	Timestamp         uint64              `json:"timestamp,string"`
	Error             string              `json:"error,omitempty"`
}

type RunQueryRequest struct {
	Query *Query `json:"query"`
}

type RunQueryResponse struct {
	RequestStatus   string     `json:"requestStatus"`
	ExecutionResult string     `json:"executionResult"`
	OutputArguments []Argument `json:"outputArguments"`
	StateHeight     uint64     `json:"stateHeight,string"`
	Timestamp       uint64     `json:"timestamp,string"`
	Error           string     `json:"error,omitempty"`
}

type TotalsResponse struct {
	Total       uint32  `json:"total"`
	LastOwner   *string `json:"lastOwner"`
	StateHeight uint64  `json:"stateHeight,string"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// the single route web clients use, dispatching on method
type TicketChainRequest struct {
	Method string          `json:"method"`
	Params json.RawMessage `json:"params"`
}

const (
	METHOD_GET_TOTALS    = "getTotals"
	METHOD_BUILD_MINT_TX = "buildMintTxXdr"
	METHOD_SUBMIT_TX     = "submitTx"

	// short form accepted as an alias of METHOD_BUILD_MINT_TX
	METHOD_BUILD_MINT_TX_SHORT = "buildMintTx"
)

type BuildMintTxParams struct {
	Signer    Signer  `json:"signer"`
	Recipient string  `json:"recipient"`
	Amount    *uint32 `json:"amount"`
}

type BuildMintTxResponse struct {
	Transaction *Transaction `json:"transaction"`
	TxHash      string       `json:"txHash"`
}

type SubmitTxParams struct {
	SignedTx *SendTransactionRequest `json:"signedTx"`
}

type SubmitTxResponse struct {
	Status string `json:"status"`
	Hash   string `json:"hash"`
	Error  string `json:"error,omitempty"`
}

func ToProtocolArguments(args []Argument) ([]protocol.Argument, error) {
	res := make([]protocol.Argument, 0, len(args))
	for i, arg := range args {
		a, err := toProtocolArgument(arg)
		if err != nil {
			return nil, errors.Wrapf(err, "argument %d", i)
		}
		res = append(res, a)
	}
	return res, nil
}

func toProtocolArgument(arg Argument) (protocol.Argument, error) {
	switch arg.Type {
	case ARGUMENT_TYPE_UINT32:
		v, err := strconv.ParseUint(arg.Value, 10, 32)
		if err != nil {
			return protocol.Argument{}, errors.Wrapf(err, "invalid uint32 value '%s'", arg.Value)
		}
		return protocol.Argument{Type: protocol.ARGUMENT_TYPE_UINT_32_VALUE, Uint32Value: uint32(v)}, nil
	case ARGUMENT_TYPE_UINT64:
		v, err := strconv.ParseUint(arg.Value, 10, 64)
		if err != nil {
			return protocol.Argument{}, errors.Wrapf(err, "invalid uint64 value '%s'", arg.Value)
		}
		return protocol.Argument{Type: protocol.ARGUMENT_TYPE_UINT_64_VALUE, Uint64Value: v}, nil
	case ARGUMENT_TYPE_STRING:
		return protocol.Argument{Type: protocol.ARGUMENT_TYPE_STRING_VALUE, StringValue: arg.Value}, nil
	case ARGUMENT_TYPE_BYTES:
		v, err := decodeBytes(arg.Value)
		if err != nil {
			return protocol.Argument{}, err
		}
		return protocol.Argument{Type: protocol.ARGUMENT_TYPE_BYTES_VALUE, BytesValue: v}, nil
	}
	return protocol.Argument{}, errors.Errorf("unknown argument type '%s'", arg.Type)
}

func FromProtocolArguments(args []protocol.Argument) []Argument {
	res := make([]Argument, 0, len(args))
	for _, arg := range args {
		switch arg.Type {
		case protocol.ARGUMENT_TYPE_UINT_32_VALUE:
			res = append(res, Argument{ARGUMENT_TYPE_UINT32, strconv.FormatUint(uint64(arg.Uint32Value), 10)})
		case protocol.ARGUMENT_TYPE_UINT_64_VALUE:
			res = append(res, Argument{ARGUMENT_TYPE_UINT64, strconv.FormatUint(arg.Uint64Value, 10)})
		case protocol.ARGUMENT_TYPE_STRING_VALUE:
			res = append(res, Argument{ARGUMENT_TYPE_STRING, arg.StringValue})
		case protocol.ARGUMENT_TYPE_BYTES_VALUE:
			res = append(res, Argument{ARGUMENT_TYPE_BYTES, encodeBytes(arg.BytesValue)})
		}
	}
	return res
}

func ToProtocolSigner(signer Signer) (protocol.Signer, error) {
	publicKey, err := decodeBytes(signer.PublicKey)
	if err != nil {
		return protocol.Signer{}, errors.Wrap(err, "invalid signer public key")
	}
	switch signer.Scheme {
	case SIGNER_SCHEME_EDDSA:
		return protocol.Signer{Scheme: protocol.SIGNER_SCHEME_EDDSA, PublicKey: publicKey}, nil
	case SIGNER_SCHEME_ECDSA_SECP256K1:
		return protocol.Signer{Scheme: protocol.SIGNER_SCHEME_ECDSA_SECP256K1, PublicKey: publicKey}, nil
	}
	return protocol.Signer{}, errors.Errorf("unknown signer scheme '%s'", signer.Scheme)
}

func FromProtocolSigner(signer protocol.Signer) Signer {
	scheme := ""
	switch signer.Scheme {
	case protocol.SIGNER_SCHEME_EDDSA:
		scheme = SIGNER_SCHEME_EDDSA
	case protocol.SIGNER_SCHEME_ECDSA_SECP256K1:
		scheme = SIGNER_SCHEME_ECDSA_SECP256K1
	}
	return Signer{Scheme: scheme, PublicKey: encodeBytes(signer.PublicKey)}
}

func ToProtocolTransaction(tx *Transaction) (*protocol.Transaction, error) {
	if tx == nil {
		return nil, errors.New("transaction is missing")
	}
	signer, err := ToProtocolSigner(tx.Signer)
	if err != nil {
		return nil, err
	}
	args, err := ToProtocolArguments(tx.Arguments)
	if err != nil {
		return nil, err
	}
	return &protocol.Transaction{
		ProtocolVersion: primitives.ProtocolVersion(tx.ProtocolVersion),
		VirtualChainId:  primitives.VirtualChainId(tx.VirtualChainId),
		Timestamp:       primitives.TimestampNano(tx.Timestamp),
		Signer:          signer,
		ContractName:    primitives.ContractName(tx.ContractName),
		MethodName:      primitives.MethodName(tx.MethodName),
		InputArguments:  args,
	}, nil
}

func FromProtocolTransaction(tx *protocol.Transaction) *Transaction {
	return &Transaction{
		ProtocolVersion: uint32(tx.ProtocolVersion),
		VirtualChainId:  uint32(tx.VirtualChainId),
		Timestamp:       uint64(tx.Timestamp),
		Signer:          FromProtocolSigner(tx.Signer),
		ContractName:    string(tx.ContractName),
		MethodName:      string(tx.MethodName),
		Arguments:       FromProtocolArguments(tx.InputArguments),
	}
}

func ToProtocolSignedTransaction(request *SendTransactionRequest) (*protocol.SignedTransaction, error) {
	if request == nil {
		return nil, errors.New("signed transaction is missing")
	}
	tx, err := ToProtocolTransaction(request.Transaction)
	if err != nil {
		return nil, err
	}
	sig, err := decodeBytes(request.Signature)
	if err != nil {
		return nil, errors.Wrap(err, "invalid signature")
	}
	return &protocol.SignedTransaction{Transaction: tx, Signature: sig}, nil
}

func FromProtocolSignedTransaction(tx *protocol.SignedTransaction) *SendTransactionRequest {
	return &SendTransactionRequest{
		Transaction: FromProtocolTransaction(tx.Transaction),
		Signature:   encodeBytes(tx.Signature),
	}
}

func ToProtocolQuery(query *Query) (*protocol.Query, error) {
	if query == nil {
		return nil, errors.New("query is missing")
	}
	args, err := ToProtocolArguments(query.Arguments)
	if err != nil {
		return nil, err
	}
	return &protocol.Query{
		ProtocolVersion: primitives.ProtocolVersion(query.ProtocolVersion),
		VirtualChainId:  primitives.VirtualChainId(query.VirtualChainId),
		Timestamp:       primitives.TimestampNano(query.Timestamp),
		ContractName:    primitives.ContractName(query.ContractName),
		MethodName:      primitives.MethodName(query.MethodName),
		InputArguments:  args,
	}, nil
}

func FromProtocolQuery(query *protocol.Query) *Query {
	return &Query{
		ProtocolVersion: uint32(query.ProtocolVersion),
		VirtualChainId:  uint32(query.VirtualChainId),
		Timestamp:       uint64(query.Timestamp),
		ContractName:    string(query.ContractName),
		MethodName:      string(query.MethodName),
		Arguments:       FromProtocolArguments(query.InputArguments),
	}
}

func FromTransactionOutput(output *protocol.TransactionOutput, requestStatus protocol.RequestStatus) *SendTransactionResponse {
	res := &SendTransactionResponse{
		RequestStatus:     requestStatus.String(),
		TransactionStatus: output.TransactionStatus.String(),
		StateHeight:       uint64(output.StateHeight),
		Timestamp:         uint64(output.Timestamp),
	}
	if output.Receipt != nil {
		res.Receipt = &TransactionReceipt{
			TxHash:          encodeBytes(output.Receipt.Txhash),
			ExecutionResult: output.Receipt.ExecutionResult.String(),
			OutputArguments: FromProtocolArguments(output.Receipt.OutputArguments),
		}
	}
	return res
}

func FromQueryOutput(output *protocol.QueryOutput, requestStatus protocol.RequestStatus) *RunQueryResponse {
	return &RunQueryResponse{
		RequestStatus:   requestStatus.String(),
		ExecutionResult: output.ExecutionResult.String(),
		OutputArguments: FromProtocolArguments(output.OutputArguments),
		StateHeight:     uint64(output.StateHeight),
		Timestamp:       uint64(output.Timestamp),
	}
}

func EncodeAddress(address primitives.ClientAddress) *string {
	if len(address) == 0 {
		return nil
	}
	res := encoding.EncodeAddress(address)
	return &res
}

func encodeBytes(data []byte) string {
	return encoding.EncodeHex(data)
}

func decodeBytes(str string) ([]byte, error) {
	return encoding.DecodeHex(str)
}
