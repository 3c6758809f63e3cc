// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package ticketledger

import (
	"github.com/orbs-network/membuffers/go"
	"github.com/orbs-network/ticketchain/primitives"
	"github.com/pkg/errors"
)

const totalValueSizeBytes = 4

func encodeTotal(total uint32) []byte {
	res := make([]byte, totalValueSizeBytes)
	membuffers.WriteUint32(res, total)
	return res
}

func decodeTotal(value []byte) (uint32, error) {
	if len(value) != totalValueSizeBytes {
		return 0, errors.Errorf("stored value of key %s is corrupt, expected %d bytes but got %d", TOTAL_KEY, totalValueSizeBytes, len(value))
	}
	return membuffers.GetUint32(value), nil
}

func encodeOwner(owner primitives.ClientAddress) []byte {
	res := make([]byte, len(owner))
	copy(res, owner)
	return res
}

func decodeOwner(value []byte) primitives.ClientAddress {
	return primitives.ClientAddress(encodeOwner(value))
}
