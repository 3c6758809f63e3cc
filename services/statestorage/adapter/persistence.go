// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package adapter

import (
	"context"
	"github.com/orbs-network/ticketchain/primitives"
)

type ContractState map[string][]byte

// ChainState holds the keys written by one invocation, grouped by contract.
type ChainState map[primitives.ContractName]ContractState

func (s ChainState) NumberOfKeys() int {
	n := 0
	for _, records := range s {
		n += len(records)
	}
	return n
}

// Write stores the whole diff together with its height or nothing at all.
type StatePersistence interface {
	Write(ctx context.Context, height primitives.BlockHeight, diff ChainState) error
	Read(ctx context.Context, contract primitives.ContractName, key string) ([]byte, bool, error)
	ReadMetadata(ctx context.Context) (primitives.BlockHeight, error)
	Close() error
}

// NamespacedKey is the flat form of a contract key used by the key-value backends.
func NamespacedKey(contract primitives.ContractName, key string) string {
	return string(contract) + "/" + key
}
