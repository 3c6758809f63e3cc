// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package virtualmachine

import (
	"github.com/orbs-network/ticketchain/primitives"
	"github.com/orbs-network/ticketchain/services/statestorage/adapter"
)

type transientState struct {
	contracts map[primitives.ContractName]*transientContract
}

type transientContract struct {
	keys map[string]*keyValuePair
}

type keyValuePair struct {
	key     string
	value   []byte
	isDirty bool
}

func newTransientState() *transientState {
	return &transientState{
		contracts: make(map[primitives.ContractName]*transientContract),
	}
}

func (t *transientState) getValue(contract primitives.ContractName, key string) ([]byte, bool) {
	c, found := t.contracts[contract]
	if !found {
		return nil, false
	}
	record, found := c.keys[key]
	if !found {
		return nil, false
	}
	return record.value, true
}

func (t *transientState) setValue(contract primitives.ContractName, key string, value []byte, isDirty bool) {
	c, found := t.contracts[contract]
	if !found {
		c = &transientContract{keys: make(map[string]*keyValuePair)}
		t.contracts[contract] = c
	}
	c.keys[key] = &keyValuePair{key, value, isDirty}
}

func (t *transientState) forDirty(contract primitives.ContractName, f func(key string, value []byte)) {
	c, found := t.contracts[contract]
	if !found {
		return
	}
	for _, record := range c.keys {
		if record.isDirty {
			f(record.key, record.value)
		}
	}
}

// dirty keys of all contracts, in the shape state storage commits
func (t *transientState) stateDiff() adapter.ChainState {
	diff := make(adapter.ChainState)
	for contract := range t.contracts {
		t.forDirty(contract, func(key string, value []byte) {
			if _, found := diff[contract]; !found {
				diff[contract] = make(adapter.ContractState)
			}
			diff[contract][key] = value
		})
	}
	return diff
}
