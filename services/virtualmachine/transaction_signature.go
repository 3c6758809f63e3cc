// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package virtualmachine

import (
	"github.com/orbs-network/scribe/log"
	"github.com/orbs-network/ticketchain/crypto/keys"
	"github.com/orbs-network/ticketchain/crypto/signature"
	"github.com/orbs-network/ticketchain/primitives"
	"github.com/orbs-network/ticketchain/protocol"
)

func verifyTransactionSignature(transaction *protocol.SignedTransaction, txHash primitives.Sha256) *ErrTransactionRejected {
	signer := transaction.Transaction.Signer

	var valid bool
	switch signer.Scheme {
	case protocol.SIGNER_SCHEME_EDDSA:
		valid = len(signer.PublicKey) == keys.ED25519_PUBLIC_KEY_SIZE_BYTES &&
			signature.VerifyEd25519(signer.PublicKey, txHash, transaction.Signature)
	case protocol.SIGNER_SCHEME_ECDSA_SECP256K1:
		valid = len(signer.PublicKey) == keys.ECDSA_SECP256K1_PUBLIC_KEY_SIZE_BYTES &&
			signature.VerifyEcdsaSecp256K1(signer.PublicKey, txHash, transaction.Signature)
	default:
		return &ErrTransactionRejected{protocol.TRANSACTION_STATUS_REJECTED_UNKNOWN_SIGNER_SCHEME, []*log.Field{log.Stringable("signer-scheme", signer.Scheme)}}
	}

	if !valid {
		return &ErrTransactionRejected{protocol.TRANSACTION_STATUS_REJECTED_SIGNATURE_MISMATCH, []*log.Field{log.Stringable("signer-scheme", signer.Scheme), log.Int("signature-length", len(transaction.Signature))}}
	}
	return nil
}
