// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package virtualmachine

import (
	"context"
	"github.com/orbs-network/go-mock"
	"github.com/orbs-network/ticketchain/protocol"
)

type MockVirtualMachine struct {
	mock.Mock
}

func (s *MockVirtualMachine) RunTransaction(ctx context.Context, transaction *protocol.SignedTransaction) (*protocol.TransactionOutput, error) {
	ret := s.Called(ctx, transaction)
	if out := ret.Get(0); out != nil {
		return out.(*protocol.TransactionOutput), ret.Error(1)
	} else {
		return nil, ret.Error(1)
	}
}

func (s *MockVirtualMachine) RunQuery(ctx context.Context, query *protocol.Query) (*protocol.QueryOutput, error) {
	ret := s.Called(ctx, query)
	if out := ret.Get(0); out != nil {
		return out.(*protocol.QueryOutput), ret.Error(1)
	} else {
		return nil, ret.Error(1)
	}
}
