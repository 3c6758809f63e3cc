// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package digest_test

import (
	"encoding/hex"
	"github.com/orbs-network/ticketchain/crypto/digest"
	"github.com/orbs-network/ticketchain/crypto/hash"
	cryptokeys "github.com/orbs-network/ticketchain/crypto/keys"
	"github.com/orbs-network/ticketchain/protocol"
	"github.com/orbs-network/ticketchain/test/crypto/keys"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestCalcClientAddressOfEd25519PublicKey(t *testing.T) {
	kp := keys.Ed25519KeyPairForTests(0)

	address, err := digest.CalcClientAddressOfEd25519PublicKey(kp.PublicKey())
	require.NoError(t, err)
	require.Len(t, address, digest.CLIENT_ADDRESS_SIZE_BYTES)
	require.Equal(t, []byte(hash.CalcSha256(kp.PublicKey())[12:]), []byte(address))
}

func TestCalcClientAddressOfEcdsaSecp256K1PublicKey_MatchesEthereumAddress(t *testing.T) {
	// well known private key 0x...01 maps to ethereum address 0x7E5F4552091A69125d5DfCb7b8C2659029395Bdf
	pri, err := hex.DecodeString("0000000000000000000000000000000000000000000000000000000000000001")
	require.NoError(t, err)
	kp, err := cryptokeys.EcdsaSecp256K1KeyPairFromPrivateKey(pri)
	require.NoError(t, err)

	address, err := digest.CalcClientAddressOfEcdsaSecp256K1PublicKey(kp.PublicKey())
	require.NoError(t, err)
	require.Equal(t, "7e5f4552091a69125d5dfcb7b8c2659029395bdf", address.String())
}

func TestCalcClientAddressOfSigner_RejectsBadInput(t *testing.T) {
	_, err := digest.CalcClientAddressOfSigner(protocol.Signer{Scheme: protocol.SIGNER_SCHEME_EDDSA, PublicKey: []byte{0x01}})
	require.Error(t, err, "short public key must be rejected")

	_, err = digest.CalcClientAddressOfSigner(protocol.Signer{Scheme: protocol.SIGNER_SCHEME_RESERVED, PublicKey: keys.Ed25519KeyPairForTests(0).PublicKey()})
	require.Error(t, err, "unknown scheme must be rejected")
}
