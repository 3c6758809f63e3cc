// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package digest

import (
	"github.com/orbs-network/ticketchain/crypto/hash"
	"github.com/orbs-network/ticketchain/crypto/keys"
	"github.com/orbs-network/ticketchain/primitives"
	"github.com/orbs-network/ticketchain/protocol"
	"github.com/pkg/errors"
)

const (
	CLIENT_ADDRESS_SIZE_BYTES       = 20
	CLIENT_ADDRESS_SHA256_OFFSET    = hash.SHA256_HASH_SIZE_BYTES - CLIENT_ADDRESS_SIZE_BYTES
	CLIENT_ADDRESS_KECCAK256_OFFSET = hash.KECCAK256_HASH_SIZE_BYTES - CLIENT_ADDRESS_SIZE_BYTES
)

func CalcClientAddressOfEd25519PublicKey(publicKey primitives.Ed25519PublicKey) (primitives.ClientAddress, error) {
	if len(publicKey) != keys.ED25519_PUBLIC_KEY_SIZE_BYTES {
		return nil, errors.New("transaction is not signed by a valid Signer")
	}
	res := hash.CalcSha256(publicKey)[CLIENT_ADDRESS_SHA256_OFFSET:]
	return primitives.ClientAddress(res), nil
}

// same derivation as an ethereum account address
func CalcClientAddressOfEcdsaSecp256K1PublicKey(publicKey primitives.EcdsaSecp256K1PublicKey) (primitives.ClientAddress, error) {
	if len(publicKey) != keys.ECDSA_SECP256K1_PUBLIC_KEY_SIZE_BYTES {
		return nil, errors.New("transaction is not signed by a valid Signer")
	}
	res := hash.CalcKeccak256(publicKey)[CLIENT_ADDRESS_KECCAK256_OFFSET:]
	return primitives.ClientAddress(res), nil
}

func CalcClientAddressOfSigner(signer protocol.Signer) (primitives.ClientAddress, error) {
	switch signer.Scheme {
	case protocol.SIGNER_SCHEME_EDDSA:
		return CalcClientAddressOfEd25519PublicKey(signer.PublicKey)
	case protocol.SIGNER_SCHEME_ECDSA_SECP256K1:
		return CalcClientAddressOfEcdsaSecp256K1PublicKey(signer.PublicKey)
	}
	return nil, errors.Errorf("signer scheme %s is not supported", signer.Scheme)
}
