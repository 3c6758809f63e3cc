// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package signature

import (
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/orbs-network/ticketchain/crypto/keys"
	"github.com/orbs-network/ticketchain/primitives"
	"github.com/pkg/errors"
)

const (
	ECDSA_SECP256K1_SIGNATURE_SIZE_BYTES = 65 // with recovery, without recovery we can skip the last byte
)

// the given data must not be controlled by an adversary, it must be a 32 byte hash over given data
func SignEcdsaSecp256K1(privateKey primitives.EcdsaSecp256K1PrivateKey, data []byte) (primitives.EcdsaSecp256K1Sig, error) {
	if len(privateKey) != keys.ECDSA_SECP256K1_PRIVATE_KEY_SIZE_BYTES {
		return nil, errors.New("cannot sign with ecdsa secp256k1, private key invalid")
	}
	key, err := crypto.ToECDSA(privateKey)
	if err != nil {
		return nil, errors.Wrap(err, "cannot sign with ecdsa secp256k1")
	}
	return crypto.Sign(data, key)
}

func VerifyEcdsaSecp256K1(publicKey primitives.EcdsaSecp256K1PublicKey, data []byte, signature primitives.EcdsaSecp256K1Sig) bool {
	if len(signature) == ECDSA_SECP256K1_SIGNATURE_SIZE_BYTES {
		signature = signature[:len(signature)-1]
	}
	if len(publicKey) != keys.ECDSA_SECP256K1_PUBLIC_KEY_SIZE_BYTES {
		return false
	}
	publicKeyWithBytePrefix := append([]byte{0x04}, publicKey...)
	return crypto.VerifySignature(publicKeyWithBytePrefix, data, signature)
}

func RecoverEcdsaSecp256K1(data []byte, signature primitives.EcdsaSecp256K1Sig) (primitives.EcdsaSecp256K1PublicKey, error) {
	if len(signature) != ECDSA_SECP256K1_SIGNATURE_SIZE_BYTES {
		return nil, errors.New("invalid signature size")
	}
	publicKeyWithBytePrefix, err := crypto.Ecrecover(data, signature)
	if err != nil {
		return nil, err
	}
	if len(publicKeyWithBytePrefix) != keys.ECDSA_SECP256K1_PUBLIC_KEY_SIZE_BYTES+1 {
		return nil, errors.Errorf("recovered public key with len %d", len(publicKeyWithBytePrefix))
	}
	return publicKeyWithBytePrefix[1:], nil
}
