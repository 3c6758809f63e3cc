// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package primitives

import (
	"bytes"
	"encoding/hex"
	"fmt"
)

type ProtocolVersion uint32
type VirtualChainId uint32
type TimestampNano uint64
type BlockHeight uint64
type ContractName string
type MethodName string

// 20 byte identity of a signer, derived from its public key
type ClientAddress []byte

type Sha256 []byte
type Keccak256 []byte
type Ripemd160Sha256 []byte

type Ed25519PublicKey []byte
type Ed25519PrivateKey []byte
type Ed25519Sig []byte

type EcdsaSecp256K1PublicKey []byte
type EcdsaSecp256K1PrivateKey []byte
type EcdsaSecp256K1Sig []byte

func (x ClientAddress) String() string {
	return hex.EncodeToString(x)
}

func (x ClientAddress) Equal(y ClientAddress) bool {
	return bytes.Equal(x, y)
}

func (x ClientAddress) KeyForMap() string {
	return string(x)
}

func (x Sha256) String() string {
	return hex.EncodeToString(x)
}

func (x Sha256) Equal(y Sha256) bool {
	return bytes.Equal(x, y)
}

func (x Sha256) KeyForMap() string {
	return string(x)
}

func (x Keccak256) String() string {
	return hex.EncodeToString(x)
}

func (x Ripemd160Sha256) String() string {
	return hex.EncodeToString(x)
}

func (x Ed25519PublicKey) String() string {
	return hex.EncodeToString(x)
}

func (x EcdsaSecp256K1PublicKey) String() string {
	return hex.EncodeToString(x)
}

func (x BlockHeight) String() string {
	return fmt.Sprintf("%d", uint64(x))
}

func (x TimestampNano) String() string {
	return fmt.Sprintf("%d", uint64(x))
}

func (x VirtualChainId) String() string {
	return fmt.Sprintf("%d", uint32(x))
}

func (x ContractName) String() string {
	return string(x)
}

func (x MethodName) String() string {
	return string(x)
}
