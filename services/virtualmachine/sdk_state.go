// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package virtualmachine

import (
	"context"
	"github.com/orbs-network/ticketchain/primitives"
	"github.com/orbs-network/ticketchain/services/statestorage"
	"github.com/pkg/errors"
)

// reads go through the transient state first so a call sees its own writes,
// writes only mark keys dirty until the invocation commits
type stateSdk struct {
	contract     primitives.ContractName
	transient    *transientState
	stateStorage statestorage.StateStorage
	hostFault    error
}

func newStateSdk(contract primitives.ContractName, transient *transientState, stateStorage statestorage.StateStorage) *stateSdk {
	return &stateSdk{
		contract:     contract,
		transient:    transient,
		stateStorage: stateStorage,
	}
}

func (s *stateSdk) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if value, found := s.transient.getValue(s.contract, key); found {
		return value, true, nil
	}

	value, found, err := s.stateStorage.ReadKey(ctx, s.contract, key)
	if err != nil {
		s.hostFault = errors.Wrapf(err, "state read of key '%s' failed", key)
		return nil, false, s.hostFault
	}
	if found {
		s.transient.setValue(s.contract, key, value, false)
	}
	return value, found, nil
}

func (s *stateSdk) Set(ctx context.Context, key string, value []byte) error {
	stored := make([]byte, len(value))
	copy(stored, value)
	s.transient.setValue(s.contract, key, stored, true)
	return nil
}
