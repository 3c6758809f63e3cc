// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package keys

import (
	"encoding/hex"
	"github.com/orbs-network/ticketchain/crypto/keys"
)

var ecdsaSecp256K1PrivateKeys = []string{
	"901a1a0bfbe217593062a054e561e708707cb814a123474c25fd567a0fe088f8",
	"87a210586f57890ae3642c62ceb58f0f0a54e787891054a5a54c80e1da418253",
	"426308c4d11a6348a62b4fdfb30e2cad70ab039174e2e8ea707895e4c644c4ec",
	"1e404ba4e421cedf58dcc3dddcee656569afc7904e209612f7de93e1ad710300",
	"0860f557af1b29639b680a5934e2080d204d08f753679e606f1bcb4b53d00efe",
	"a8ca24ef5d3dc54df3a692ee5b27a9bfa06c4ae8ecf77e20db55acd7637087e1",
	"a414d64a2246e394019f37544c17a8cae94b8f2104b9a5957c7af8691cb3302c",
	"97809939376f2cb7d0d0cdf6531b3389080f1342ed7ccc46d55aa3b0445fc906",
	"f4cd604644c170c487643c22121270415356b6f791c32887b5d22b42bbf83505",
	"c2ee571d81465cfcea039092a717b8460f8c96b82923b2ea7bb9765da8d013d6",
}

func EcdsaSecp256K1KeyPairForTests(setIndex int) *keys.EcdsaSecp256K1KeyPair {
	if setIndex >= len(ecdsaSecp256K1PrivateKeys) {
		return nil
	}

	pri, err := hex.DecodeString(ecdsaSecp256K1PrivateKeys[setIndex])
	if err != nil {
		return nil
	}

	kp, err := keys.EcdsaSecp256K1KeyPairFromPrivateKey(pri)
	if err != nil {
		return nil
	}
	return kp
}
