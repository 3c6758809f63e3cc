// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package native

import (
	"context"
	"fmt"
	"github.com/orbs-network/scribe/log"
	"github.com/orbs-network/ticketchain/instrumentation/metric"
	"github.com/orbs-network/ticketchain/instrumentation/trace"
	"github.com/orbs-network/ticketchain/primitives"
	"github.com/orbs-network/ticketchain/protocol"
	"github.com/orbs-network/ticketchain/services/processor/native/types"
	"github.com/pkg/errors"
	"time"
)

var LogTag = log.Service("processor-native")

type ProcessCallInput struct {
	ContractName   primitives.ContractName
	MethodName     primitives.MethodName
	InputArguments []protocol.Argument
	AccessScope    protocol.ExecutionAccessScope
	State          types.StateSdk
	Auth           types.AuthSdk
}

type ProcessCallOutput struct {
	OutputArguments []protocol.Argument
	CallResult      protocol.ExecutionResult
}

type Processor interface {
	ProcessCall(ctx context.Context, input *ProcessCallInput) (*ProcessCallOutput, error)
}

// unauthorized is implemented by contract errors caused by a failed caller authorization
type unauthorized interface {
	Unauthorized() bool
}

type service struct {
	logger    log.Logger
	contracts map[primitives.ContractName]types.ContractInfo

	metrics *metrics
}

type metrics struct {
	processCallTime *metric.Histogram
	contractErrors  *metric.Rate
}

func getMetrics(m metric.Factory) *metrics {
	return &metrics{
		processCallTime: m.NewLatency("Processor.Native.ProcessCallTime.Millis", 10*time.Second),
		contractErrors:  m.NewRate("Processor.Native.ContractErrors.PerSecond"),
	}
}

func NewNativeProcessor(contracts map[primitives.ContractName]types.ContractInfo, parentLogger log.Logger, metricFactory metric.Factory) Processor {
	return &service{
		contracts: contracts,
		logger:    parentLogger.WithTags(LogTag),
		metrics:   getMetrics(metricFactory),
	}
}

func (s *service) ProcessCall(ctx context.Context, input *ProcessCallInput) (*ProcessCallOutput, error) {
	logger := s.logger.WithTags(trace.LogFieldFrom(ctx))

	// retrieve code
	contractInfo, found := s.contracts[input.ContractName]
	if !found {
		err := errors.Errorf("contract '%s' is not deployed", input.ContractName)
		return &ProcessCallOutput{
			OutputArguments: createMethodOutputArgsWithString(err.Error()),
			CallResult:      protocol.EXECUTION_RESULT_ERROR_CONTRACT_NOT_DEPLOYED,
		}, err
	}

	// get the method and check permissions
	methodInfo, err := retrieveMethod(&contractInfo, input.MethodName, input.AccessScope)
	if err != nil {
		return &ProcessCallOutput{
			OutputArguments: createMethodOutputArgsWithString(err.Error()),
			CallResult:      protocol.EXECUTION_RESULT_ERROR_INPUT,
		}, err
	}

	state := input.State
	if input.AccessScope != protocol.ACCESS_SCOPE_READ_WRITE || methodInfo.Access != protocol.ACCESS_SCOPE_READ_WRITE {
		state = &readOnlyState{state}
	}
	contractInstance := contractInfo.InitSingleton(types.NewBaseContract(state, input.Auth, logger))

	start := time.Now()
	defer s.metrics.processCallTime.RecordSince(start)

	// execute
	logger.Info("processor executing contract", log.Stringable("contract", input.ContractName), log.Stringable("method", input.MethodName))

	functionNameForErrors := fmt.Sprintf("%s.%s", input.ContractName, input.MethodName)
	outputArgs, contractErr, err := s.processMethodCall(ctx, contractInstance, methodInfo.Implementation, input.InputArguments, functionNameForErrors)
	if err != nil {
		logger.Info("contract execution failed", log.Stringable("contract", input.ContractName), log.Stringable("method", input.MethodName), log.Error(err))

		return &ProcessCallOutput{
			OutputArguments: createMethodOutputArgsWithString(err.Error()),
			CallResult:      protocol.EXECUTION_RESULT_ERROR_INPUT,
		}, err
	}

	// result
	callResult := protocol.EXECUTION_RESULT_SUCCESS
	if contractErr != nil {
		logger.Info("contract returned error", log.Stringable("contract", input.ContractName), log.Stringable("method", input.MethodName), log.Error(contractErr))

		s.metrics.contractErrors.Measure(1)
		callResult = protocol.EXECUTION_RESULT_ERROR_SMART_CONTRACT
		if u, ok := errors.Cause(contractErr).(unauthorized); ok && u.Unauthorized() {
			callResult = protocol.EXECUTION_RESULT_ERROR_UNAUTHORIZED
		}
	}
	return &ProcessCallOutput{
		OutputArguments: outputArgs,
		CallResult:      callResult,
	}, contractErr
}

func retrieveMethod(contractInfo *types.ContractInfo, methodName primitives.MethodName, accessScope protocol.ExecutionAccessScope) (*types.MethodInfo, error) {
	methodInfo, found := contractInfo.Methods[methodName]
	if !found || !methodInfo.External {
		return nil, errors.Errorf("method '%s' not found on contract '%s'", methodName, contractInfo.Name)
	}

	if methodInfo.Access == protocol.ACCESS_SCOPE_READ_WRITE && accessScope != protocol.ACCESS_SCOPE_READ_WRITE {
		return nil, errors.Errorf("method '%s' writes state and cannot run in %s", methodName, accessScope)
	}

	if err := verifyMethodSignature(methodInfo.Implementation, fmt.Sprintf("%s.%s", contractInfo.Name, methodName)); err != nil {
		return nil, err
	}

	return &methodInfo, nil
}

type readOnlyState struct {
	types.StateSdk
}

func (s *readOnlyState) Set(ctx context.Context, key string, value []byte) error {
	return errors.Errorf("write to key '%s' attempted in a read only call", key)
}
