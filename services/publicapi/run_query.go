// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package publicapi

import (
	"context"
	"github.com/orbs-network/scribe/log"
	"github.com/orbs-network/ticketchain/instrumentation/trace"
	"github.com/orbs-network/ticketchain/protocol"
	"github.com/pkg/errors"
	"time"
)

func (s *service) RunQuery(parentCtx context.Context, query *protocol.Query) (*protocol.QueryOutput, error) {
	ctx := trace.NewContext(parentCtx, "PublicApi.RunQuery")
	logger := s.logger.WithTags(trace.LogFieldFrom(ctx))

	if query == nil {
		err := errors.Errorf("client request is nil")
		logger.Info("run query received missing input", log.Error(err))
		return nil, err
	}

	if _, err := validateRequest(s.config, query.ProtocolVersion, query.VirtualChainId); err != nil {
		logger.Info("run query received input failed", log.Error(err))
		return &protocol.QueryOutput{ExecutionResult: protocol.EXECUTION_RESULT_ERROR_INPUT, Timestamp: now()}, err
	}

	logger.Info("run query request received", log.Stringable("contract", query.ContractName), log.Stringable("method", query.MethodName))

	start := time.Now()
	defer s.metrics.runQueryTime.RecordSince(start)

	out, err := s.virtualMachine.RunQuery(ctx, query)
	if err != nil {
		logger.Info("run query request failed", log.Error(err))
	}
	return out, err
}
