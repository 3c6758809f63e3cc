// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package digest

import (
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/orbs-network/membuffers/go"
	"github.com/orbs-network/ticketchain/crypto/hash"
	"github.com/orbs-network/ticketchain/primitives"
	"github.com/orbs-network/ticketchain/protocol"
	"github.com/pkg/errors"
)

// sha256 over the rlp encoding of the transaction body, the signature is not part of the hash
func CalcTxHash(transaction *protocol.Transaction) (primitives.Sha256, error) {
	if transaction == nil {
		return nil, errors.New("transaction is missing")
	}
	raw, err := rlp.EncodeToBytes(transaction)
	if err != nil {
		return nil, errors.Wrap(err, "failed encoding transaction")
	}
	return hash.CalcSha256(raw), nil
}

func CalcTxId(transaction *protocol.Transaction) ([]byte, error) {
	txHash, err := CalcTxHash(transaction)
	if err != nil {
		return nil, err
	}
	result := make([]byte, 8+hash.SHA256_HASH_SIZE_BYTES)
	membuffers.WriteUint64(result, uint64(transaction.Timestamp))
	copy(result[8:], txHash)
	return result, nil
}

func CalcQueryHash(query *protocol.Query) (primitives.Sha256, error) {
	if query == nil {
		return nil, errors.New("query is missing")
	}
	raw, err := rlp.EncodeToBytes(query)
	if err != nil {
		return nil, errors.Wrap(err, "failed encoding query")
	}
	return hash.CalcSha256(raw), nil
}
