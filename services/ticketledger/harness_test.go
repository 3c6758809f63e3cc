// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package ticketledger

import (
	"context"
	"github.com/orbs-network/go-mock"
	"github.com/orbs-network/scribe/log"
	"github.com/orbs-network/ticketchain/primitives"
	"github.com/pkg/errors"
	"sync"
)

type authProviderMock struct {
	mock.Mock
}

func (a *authProviderMock) RequireAuth(ctx context.Context, address primitives.ClientAddress) error {
	return a.Called(ctx, address).Error(0)
}

func allowingAuth() *authProviderMock {
	a := &authProviderMock{}
	a.When("RequireAuth", mock.Any, mock.Any).Return(nil)
	return a
}

func denyingAuth() *authProviderMock {
	a := &authProviderMock{}
	a.When("RequireAuth", mock.Any, mock.Any).Return(errors.New("signer does not match"))
	return a
}

type memoryStore struct {
	sync.Mutex
	values map[string][]byte
	reads  int
	writes int
}

func newMemoryStore() *memoryStore {
	return &memoryStore{values: make(map[string][]byte)}
}

func (s *memoryStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	s.Lock()
	defer s.Unlock()
	s.reads++
	value, found := s.values[key]
	return value, found, nil
}

func (s *memoryStore) Set(ctx context.Context, key string, value []byte) error {
	s.Lock()
	defer s.Unlock()
	s.writes++
	s.values[key] = value
	return nil
}

func (s *memoryStore) accesses() int {
	s.Lock()
	defer s.Unlock()
	return s.reads + s.writes
}

type failingStore struct {
	failReads  bool
	failWrites bool
	*memoryStore
}

func (s *failingStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if s.failReads {
		return nil, false, errors.New("disk on fire")
	}
	return s.memoryStore.Get(ctx, key)
}

func (s *failingStore) Set(ctx context.Context, key string, value []byte) error {
	if s.failWrites {
		return errors.New("disk on fire")
	}
	return s.memoryStore.Set(ctx, key, value)
}

func address(b byte) primitives.ClientAddress {
	res := make([]byte, 20)
	for i := range res {
		res[i] = b
	}
	return res
}

var alice = address(0xaa)
var bob = address(0xbb)

func newLedgerForTests(logger log.Logger, auth AuthProvider) (*Ledger, *memoryStore) {
	store := newMemoryStore()
	return NewLedger(store, auth, logger), store
}
