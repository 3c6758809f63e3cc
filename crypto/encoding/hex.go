// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package encoding

import (
	"encoding/hex"
	"github.com/orbs-network/ticketchain/crypto/hash"
	"github.com/orbs-network/ticketchain/primitives"
	"github.com/pkg/errors"
	"strings"
)

const CLIENT_ADDRESS_SIZE_BYTES = 20

// EIP-55 style mixed case checksum, computed over sha256 of the raw bytes
func EncodeHex(data []byte) string {
	result := []byte(hex.EncodeToString(data))
	hashed := hash.CalcSha256(data)

	for i := 0; i < len(result); i++ {
		hashByte := hashed[(i/2)%hash.SHA256_HASH_SIZE_BYTES]
		if i%2 == 0 {
			hashByte = hashByte >> 4
		} else {
			hashByte &= 0xf
		}

		if result[i] > '9' && hashByte > 7 {
			result[i] -= 32
		}
	}

	return "0x" + string(result)
}

// on decode error returns nil and the error
// on checksum failure returns the decoded value with an error, so callers may only warn
// strings in uniform case (all lower or all upper) skip the checksum check
func DecodeHex(str string) ([]byte, error) {
	str = strings.TrimPrefix(str, "0x")

	data, err := hex.DecodeString(str)
	if err != nil {
		return nil, errors.Wrap(err, "invalid hex string")
	}

	encoded := EncodeHex(data)
	if encoded[2:] != str {
		if strings.ToUpper(str) == str || strings.ToLower(str) == str {
			return data, nil
		} else {
			return data, errors.New("invalid checksum")
		}
	}

	return data, nil
}

func EncodeAddress(address primitives.ClientAddress) string {
	return EncodeHex(address)
}

// strict: a bad checksum or a wrong length is an error
func DecodeAddress(str string) (primitives.ClientAddress, error) {
	data, err := DecodeHex(str)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid address %s", str)
	}
	if len(data) != CLIENT_ADDRESS_SIZE_BYTES {
		return nil, errors.Errorf("invalid address %s: expected %d bytes but got %d", str, CLIENT_ADDRESS_SIZE_BYTES, len(data))
	}
	return primitives.ClientAddress(data), nil
}
