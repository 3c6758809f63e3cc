// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package virtualmachine

import (
	"github.com/orbs-network/ticketchain/primitives"
	"github.com/orbs-network/ticketchain/services/statestorage/adapter"
	"github.com/stretchr/testify/require"
	"testing"
)

func requireDirtyPairs(t *testing.T, s *transientState, contract primitives.ContractName, expected []keyValuePair) {
	d := []keyValuePair{}
	s.forDirty(contract, func(key string, value []byte) {
		d = append(d, keyValuePair{key, value, true})
	})
	require.ElementsMatch(t, expected, d, "dirty keys should be equal")
}

func TestTransientStateReadMissingContract(t *testing.T) {
	s := newTransientState()

	_, found := s.getValue("Contract1", "total")
	require.False(t, found, "key should not be found")

	requireDirtyPairs(t, s, "Contract1", []keyValuePair{})
}

func TestTransientStateReadMissingKey(t *testing.T) {
	s := newTransientState()
	s.setValue("Contract1", "last", []byte{0x77, 0x88}, false)

	_, found := s.getValue("Contract1", "total")
	require.False(t, found, "key should not be found")

	requireDirtyPairs(t, s, "Contract1", []keyValuePair{})
}

func TestTransientStateWriteReadKey(t *testing.T) {
	s := newTransientState()
	s.setValue("Contract1", "total", []byte{0x77, 0x88}, false)

	v, found := s.getValue("Contract1", "total")
	require.True(t, found, "key should be found")
	require.Equal(t, []byte{0x77, 0x88}, v, "value should be equal")

	requireDirtyPairs(t, s, "Contract1", []keyValuePair{})
}

func TestTransientStateReplaceKey(t *testing.T) {
	s := newTransientState()
	s.setValue("Contract1", "total", []byte{0x77, 0x88}, false)
	s.setValue("Contract1", "total", []byte{0x99, 0xaa, 0xbb}, false)

	v, found := s.getValue("Contract1", "total")
	require.True(t, found, "key should be found")
	require.Equal(t, []byte{0x99, 0xaa, 0xbb}, v, "value should be equal")

	requireDirtyPairs(t, s, "Contract1", []keyValuePair{})
}

func TestTransientStateWriteDirtyReadKeys(t *testing.T) {
	s := newTransientState()
	s.setValue("Contract1", "a", []byte{0x22, 0x33}, true)
	s.setValue("Contract1", "b", []byte{0x33, 0x44}, false)
	s.setValue("Contract1", "c", []byte{0x44, 0x55}, false)
	s.setValue("Contract1", "c", []byte{0x55, 0x66}, true)
	s.setValue("Contract1", "d", []byte{0x66, 0x77}, true)
	s.setValue("Contract1", "d", []byte{0x77, 0x88}, false)
	s.setValue("Contract1", "e", []byte{0x88, 0x99}, true)
	s.setValue("Contract1", "e", []byte{0x99, 0xaa}, true)

	v, found := s.getValue("Contract1", "a")
	require.True(t, found, "key should be found")
	require.Equal(t, []byte{0x22, 0x33}, v, "value should be equal")

	requireDirtyPairs(t, s, "Contract1", []keyValuePair{
		{"a", []byte{0x22, 0x33}, true},
		{"c", []byte{0x55, 0x66}, true},
		{"e", []byte{0x99, 0xaa}, true},
	})
}

func TestTransientStateDiffContainsOnlyDirtyKeys(t *testing.T) {
	s := newTransientState()
	s.setValue("Contract1", "a", []byte{0x01}, true)
	s.setValue("Contract1", "b", []byte{0x02}, false)
	s.setValue("Contract2", "a", []byte{0x03}, true)
	s.setValue("Contract3", "a", []byte{0x04}, false)

	require.Equal(t, adapter.ChainState{
		"Contract1": {"a": []byte{0x01}},
		"Contract2": {"a": []byte{0x03}},
	}, s.stateDiff(), "diff should hold dirty keys grouped by contract")
}
