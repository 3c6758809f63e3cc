// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package keys

import (
	"encoding/hex"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/orbs-network/ticketchain/primitives"
	"github.com/pkg/errors"
)

const (
	ECDSA_SECP256K1_PUBLIC_KEY_SIZE_BYTES  = 64 // uncompressed, without the 0x04 prefix
	ECDSA_SECP256K1_PRIVATE_KEY_SIZE_BYTES = 32
)

type EcdsaSecp256K1KeyPair struct {
	publicKey  primitives.EcdsaSecp256K1PublicKey
	privateKey primitives.EcdsaSecp256K1PrivateKey
}

func NewEcdsaSecp256K1KeyPair(publicKey primitives.EcdsaSecp256K1PublicKey, privateKey primitives.EcdsaSecp256K1PrivateKey) *EcdsaSecp256K1KeyPair {
	return &EcdsaSecp256K1KeyPair{publicKey, privateKey}
}

func (k *EcdsaSecp256K1KeyPair) PublicKey() primitives.EcdsaSecp256K1PublicKey {
	return k.publicKey
}

func (k *EcdsaSecp256K1KeyPair) PrivateKey() primitives.EcdsaSecp256K1PrivateKey {
	return k.privateKey
}

func (k *EcdsaSecp256K1KeyPair) PublicKeyHex() string {
	return hex.EncodeToString(k.publicKey)
}

func (k *EcdsaSecp256K1KeyPair) PrivateKeyHex() string {
	return hex.EncodeToString(k.privateKey)
}

func GenerateEcdsaSecp256K1Key() (*EcdsaSecp256K1KeyPair, error) {
	key, err := crypto.GenerateKey()
	if err != nil {
		return nil, errors.Wrap(err, "failed generating secp256k1 key pair")
	}
	return EcdsaSecp256K1KeyPairFromPrivateKey(crypto.FromECDSA(key))
}

func EcdsaSecp256K1KeyPairFromPrivateKey(privateKey []byte) (*EcdsaSecp256K1KeyPair, error) {
	key, err := crypto.ToECDSA(privateKey)
	if err != nil {
		return nil, errors.Wrap(err, "invalid secp256k1 private key")
	}
	publicKeyWithBytePrefix := crypto.FromECDSAPub(&key.PublicKey)
	return NewEcdsaSecp256K1KeyPair(publicKeyWithBytePrefix[1:], privateKey), nil
}
