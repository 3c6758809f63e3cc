// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package publicapi

import (
	"context"
	"github.com/orbs-network/go-mock"
	"github.com/orbs-network/ticketchain/protocol"
)

type MockPublicApi struct {
	mock.Mock
}

func (s *MockPublicApi) SendTransaction(ctx context.Context, transaction *protocol.SignedTransaction) (*protocol.TransactionOutput, error) {
	ret := s.Called(ctx, transaction)
	if out := ret.Get(0); out != nil {
		return out.(*protocol.TransactionOutput), ret.Error(1)
	} else {
		return nil, ret.Error(1)
	}
}

func (s *MockPublicApi) RunQuery(ctx context.Context, query *protocol.Query) (*protocol.QueryOutput, error) {
	ret := s.Called(ctx, query)
	if out := ret.Get(0); out != nil {
		return out.(*protocol.QueryOutput), ret.Error(1)
	} else {
		return nil, ret.Error(1)
	}
}

func (s *MockPublicApi) GetTotals(ctx context.Context) (*TotalsOutput, error) {
	ret := s.Called(ctx)
	if out := ret.Get(0); out != nil {
		return out.(*TotalsOutput), ret.Error(1)
	} else {
		return nil, ret.Error(1)
	}
}

func (s *MockPublicApi) BuildMintTransaction(ctx context.Context, input *BuildMintTransactionInput) (*BuildMintTransactionOutput, error) {
	ret := s.Called(ctx, input)
	if out := ret.Get(0); out != nil {
		return out.(*BuildMintTransactionOutput), ret.Error(1)
	} else {
		return nil, ret.Error(1)
	}
}
