// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package builders

import (
	"github.com/orbs-network/ticketchain/crypto/digest"
	"github.com/orbs-network/ticketchain/crypto/signature"
	"github.com/orbs-network/ticketchain/primitives"
	"github.com/orbs-network/ticketchain/protocol"
	"github.com/orbs-network/ticketchain/test/crypto/keys"
	"time"
)

const (
	DEFAULT_PROTOCOL_VERSION = primitives.ProtocolVersion(1)
	DEFAULT_VIRTUAL_CHAIN_ID = primitives.VirtualChainId(42)
	TICKET_CHAIN_CONTRACT    = primitives.ContractName("TicketChain")
)

// protocol.SignedTransaction

type transaction struct {
	scheme        protocol.SignerScheme
	ed25519Signer primitives.Ed25519PrivateKey
	ecdsaSigner   primitives.EcdsaSecp256K1PrivateKey
	tx            *protocol.Transaction
	signature     []byte
}

func Transaction() *transaction {
	keyPair := keys.Ed25519KeyPairForTests(1)
	return &transaction{
		scheme:        protocol.SIGNER_SCHEME_EDDSA,
		ed25519Signer: keyPair.PrivateKey(),
		tx: &protocol.Transaction{
			ProtocolVersion: DEFAULT_PROTOCOL_VERSION,
			VirtualChainId:  DEFAULT_VIRTUAL_CHAIN_ID,
			Timestamp:       primitives.TimestampNano(time.Now().UnixNano()),
			Signer: protocol.Signer{
				Scheme:    protocol.SIGNER_SCHEME_EDDSA,
				PublicKey: keyPair.PublicKey(),
			},
			ContractName:   TICKET_CHAIN_CONTRACT,
			MethodName:     "get_total_tickets",
			InputArguments: []protocol.Argument{},
		},
	}
}

func (t *transaction) Build() *protocol.SignedTransaction {
	if t.signature != nil {
		return &protocol.SignedTransaction{Transaction: t.tx, Signature: t.signature}
	}
	txHash, err := digest.CalcTxHash(t.tx)
	if err != nil {
		panic(err)
	}
	var sig []byte
	switch t.scheme {
	case protocol.SIGNER_SCHEME_ECDSA_SECP256K1:
		sig, err = signature.SignEcdsaSecp256K1(t.ecdsaSigner, txHash)
	default:
		sig, err = signature.SignEd25519(t.ed25519Signer, txHash)
	}
	if err != nil {
		panic(err)
	}
	return &protocol.SignedTransaction{Transaction: t.tx, Signature: sig}
}

func (t *transaction) WithSigner(publicKey primitives.Ed25519PublicKey, privateKey primitives.Ed25519PrivateKey) *transaction {
	t.scheme = protocol.SIGNER_SCHEME_EDDSA
	t.tx.Signer = protocol.Signer{Scheme: protocol.SIGNER_SCHEME_EDDSA, PublicKey: publicKey}
	t.ed25519Signer = privateKey
	return t
}

func (t *transaction) WithEcdsaSecp256K1Signer(publicKey primitives.EcdsaSecp256K1PublicKey, privateKey primitives.EcdsaSecp256K1PrivateKey) *transaction {
	t.scheme = protocol.SIGNER_SCHEME_ECDSA_SECP256K1
	t.tx.Signer = protocol.Signer{Scheme: protocol.SIGNER_SCHEME_ECDSA_SECP256K1, PublicKey: publicKey}
	t.ecdsaSigner = privateKey
	return t
}

// signs with a different key than the one declared in the transaction
func (t *transaction) WithInvalidSignature() *transaction {
	t.ed25519Signer = keys.Ed25519KeyPairForTests(7).PrivateKey()
	return t
}

func (t *transaction) WithSignature(sig []byte) *transaction {
	t.signature = sig
	return t
}

func (t *transaction) WithTimestamp(timestamp primitives.TimestampNano) *transaction {
	t.tx.Timestamp = timestamp
	return t
}

func (t *transaction) WithTimestampInFarFuture() *transaction {
	t.tx.Timestamp = primitives.TimestampNano(time.Now().Add(35 * time.Minute).UnixNano())
	return t
}

func (t *transaction) WithVirtualChainId(vcid primitives.VirtualChainId) *transaction {
	t.tx.VirtualChainId = vcid
	return t
}

func (t *transaction) WithProtocolVersion(version primitives.ProtocolVersion) *transaction {
	t.tx.ProtocolVersion = version
	return t
}

func (t *transaction) WithMethod(contractName primitives.ContractName, methodName primitives.MethodName) *transaction {
	t.tx.ContractName = contractName
	t.tx.MethodName = methodName
	return t
}

func (t *transaction) WithArgs(args ...interface{}) *transaction {
	t.tx.InputArguments = Arguments(args...)
	return t
}

// TicketChain.mint_ticket, minting to the signer's own address unless WithOwner is used

type mintTransaction struct {
	*transaction
	owner  primitives.ClientAddress
	amount uint32
}

func MintTransaction() *mintTransaction {
	t := &mintTransaction{transaction: Transaction(), amount: 1}
	t.tx.MethodName = "mint_ticket"
	return t
}

func (t *mintTransaction) WithAmount(amount uint32) *mintTransaction {
	t.amount = amount
	return t
}

func (t *mintTransaction) WithOwner(owner primitives.ClientAddress) *mintTransaction {
	t.owner = owner
	return t
}

func (t *mintTransaction) WithSigner(publicKey primitives.Ed25519PublicKey, privateKey primitives.Ed25519PrivateKey) *mintTransaction {
	t.transaction.WithSigner(publicKey, privateKey)
	return t
}

func (t *mintTransaction) WithEcdsaSecp256K1Signer(publicKey primitives.EcdsaSecp256K1PublicKey, privateKey primitives.EcdsaSecp256K1PrivateKey) *mintTransaction {
	t.transaction.WithEcdsaSecp256K1Signer(publicKey, privateKey)
	return t
}

func (t *mintTransaction) WithTimestamp(timestamp primitives.TimestampNano) *mintTransaction {
	t.transaction.WithTimestamp(timestamp)
	return t
}

func (t *mintTransaction) Build() *protocol.SignedTransaction {
	owner := t.owner
	if owner == nil {
		var err error
		owner, err = digest.CalcClientAddressOfSigner(t.tx.Signer)
		if err != nil {
			panic(err)
		}
	}
	t.tx.InputArguments = Arguments([]byte(owner), t.amount)
	return t.transaction.Build()
}

// protocol.Query

func Query(methodName primitives.MethodName, args ...interface{}) *protocol.Query {
	return &protocol.Query{
		ProtocolVersion: DEFAULT_PROTOCOL_VERSION,
		VirtualChainId:  DEFAULT_VIRTUAL_CHAIN_ID,
		Timestamp:       primitives.TimestampNano(time.Now().UnixNano()),
		ContractName:    TICKET_CHAIN_CONTRACT,
		MethodName:      methodName,
		InputArguments:  Arguments(args...),
	}
}

func ClientAddressForEd25519SignerForTests(setIndex int) primitives.ClientAddress {
	res, err := digest.CalcClientAddressOfEd25519PublicKey(keys.Ed25519KeyPairForTests(setIndex).PublicKey())
	if err != nil {
		panic(err)
	}
	return res
}
