// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package native

import (
	"context"
	"github.com/orbs-network/go-mock"
	"github.com/orbs-network/ticketchain/instrumentation/metric"
	"github.com/orbs-network/ticketchain/primitives"
	"github.com/orbs-network/ticketchain/protocol"
	"github.com/orbs-network/ticketchain/services/processor/native/types"
	"github.com/orbs-network/ticketchain/test/builders"
	"github.com/orbs-network/ticketchain/test/with"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"testing"
)

type stateSdkStub struct {
	values map[string][]byte
}

func newStateSdkStub() *stateSdkStub {
	return &stateSdkStub{values: make(map[string][]byte)}
}

func (s *stateSdkStub) Get(ctx context.Context, key string) ([]byte, bool, error) {
	v, found := s.values[key]
	return v, found, nil
}

func (s *stateSdkStub) Set(ctx context.Context, key string, value []byte) error {
	s.values[key] = value
	return nil
}

type authSdkMock struct {
	mock.Mock
}

func (a *authSdkMock) RequireAuth(ctx context.Context, address primitives.ClientAddress) error {
	return a.Called(ctx, address).Error(0)
}

type deniedError struct{}

func (deniedError) Error() string      { return "denied" }
func (deniedError) Unauthorized() bool { return true }

type exampleContract struct{ *types.BaseContract }

func (c *exampleContract) add(ctx context.Context, a uint64, b uint64) (uint64, error) {
	return a + b, nil
}

func (c *exampleContract) echo(ctx context.Context, s string, b []byte, n uint32) (string, []byte, uint32, error) {
	return s, b, n, nil
}

func (c *exampleContract) set(ctx context.Context, value []byte) error {
	return c.State.Set(ctx, "example-key", value)
}

func (c *exampleContract) sneakySet(ctx context.Context) error {
	return c.State.Set(ctx, "example-key", []byte("sneaky"))
}

func (c *exampleContract) throw(ctx context.Context) error {
	return errors.New("example error")
}

func (c *exampleContract) throwWrappedUnauthorized(ctx context.Context) error {
	return errors.Wrap(deniedError{}, "mint refused")
}

func (c *exampleContract) panics(ctx context.Context) error {
	panic("example panic")
}

func (c *exampleContract) internal(ctx context.Context) error {
	return nil
}

func (c *exampleContract) noContext(a uint32) error {
	return nil
}

var exampleContractInfo = types.ContractInfo{
	Name: "ExampleContract",
	Methods: map[primitives.MethodName]types.MethodInfo{
		"add":               {Name: "add", External: true, Access: protocol.ACCESS_SCOPE_READ_ONLY, Implementation: (*exampleContract).add},
		"echo":              {Name: "echo", External: true, Access: protocol.ACCESS_SCOPE_READ_ONLY, Implementation: (*exampleContract).echo},
		"set":               {Name: "set", External: true, Access: protocol.ACCESS_SCOPE_READ_WRITE, Implementation: (*exampleContract).set},
		"sneakySet":         {Name: "sneakySet", External: true, Access: protocol.ACCESS_SCOPE_READ_ONLY, Implementation: (*exampleContract).sneakySet},
		"throw":             {Name: "throw", External: true, Access: protocol.ACCESS_SCOPE_READ_ONLY, Implementation: (*exampleContract).throw},
		"throwUnauthorized": {Name: "throwUnauthorized", External: true, Access: protocol.ACCESS_SCOPE_READ_ONLY, Implementation: (*exampleContract).throwWrappedUnauthorized},
		"panics":            {Name: "panics", External: true, Access: protocol.ACCESS_SCOPE_READ_ONLY, Implementation: (*exampleContract).panics},
		"internal":          {Name: "internal", External: false, Access: protocol.ACCESS_SCOPE_READ_ONLY, Implementation: (*exampleContract).internal},
		"noContext":         {Name: "noContext", External: true, Access: protocol.ACCESS_SCOPE_READ_ONLY, Implementation: (*exampleContract).noContext},
	},
	InitSingleton: func(base *types.BaseContract) types.ContractInstance {
		return &exampleContract{base}
	},
}

type harness struct {
	processor Processor
	state     *stateSdkStub
	auth      *authSdkMock
}

func newHarness(h *with.LoggingHarness) *harness {
	return &harness{
		processor: NewNativeProcessor(map[primitives.ContractName]types.ContractInfo{exampleContractInfo.Name: exampleContractInfo}, h.Logger, metric.NewRegistry()),
		state:     newStateSdkStub(),
		auth:      &authSdkMock{},
	}
}

func (h *harness) call(ctx context.Context, scope protocol.ExecutionAccessScope, contract primitives.ContractName, method primitives.MethodName, args ...interface{}) (*ProcessCallOutput, error) {
	return h.processor.ProcessCall(ctx, &ProcessCallInput{
		ContractName:   contract,
		MethodName:     method,
		InputArguments: builders.Arguments(args...),
		AccessScope:    scope,
		State:          h.state,
		Auth:           h.auth,
	})
}

func TestProcessCall_BindsArgumentsAndPacksOutputs(t *testing.T) {
	with.Logging(t, func(parent *with.LoggingHarness) {
		h := newHarness(parent)
		ctx := context.Background()

		out, err := h.call(ctx, protocol.ACCESS_SCOPE_READ_ONLY, "ExampleContract", "add", uint64(12), uint64(30))
		require.NoError(t, err)
		require.Equal(t, protocol.EXECUTION_RESULT_SUCCESS, out.CallResult)
		require.Equal(t, builders.Arguments(uint64(42)), out.OutputArguments)

		out, err = h.call(ctx, protocol.ACCESS_SCOPE_READ_ONLY, "ExampleContract", "echo", "hello", []byte{0x01, 0x02}, uint32(7))
		require.NoError(t, err)
		require.Equal(t, builders.Arguments("hello", []byte{0x01, 0x02}, uint32(7)), out.OutputArguments)
	})
}

func TestProcessCall_UnknownContract(t *testing.T) {
	with.Logging(t, func(parent *with.LoggingHarness) {
		h := newHarness(parent)

		out, err := h.call(context.Background(), protocol.ACCESS_SCOPE_READ_ONLY, "NoSuchContract", "add")
		require.Error(t, err)
		require.Equal(t, protocol.EXECUTION_RESULT_ERROR_CONTRACT_NOT_DEPLOYED, out.CallResult)
	})
}

func TestProcessCall_InputErrors(t *testing.T) {
	with.Logging(t, func(parent *with.LoggingHarness) {
		h := newHarness(parent)
		ctx := context.Background()

		cases := []struct {
			name   string
			method primitives.MethodName
			args   []interface{}
		}{
			{"unknown method", "nope", nil},
			{"internal method", "internal", nil},
			{"too few args", "add", []interface{}{uint64(1)}},
			{"too many args", "add", []interface{}{uint64(1), uint64(2), uint64(3)}},
			{"wrong arg type", "add", []interface{}{uint32(1), uint64(2)}},
			{"method without context", "noContext", []interface{}{uint32(1)}},
		}

		for _, c := range cases {
			out, err := h.call(ctx, protocol.ACCESS_SCOPE_READ_ONLY, "ExampleContract", c.method, c.args...)
			require.Error(t, err, c.name)
			require.Equal(t, protocol.EXECUTION_RESULT_ERROR_INPUT, out.CallResult, c.name)
			require.Len(t, out.OutputArguments, 1, c.name)
			require.Equal(t, protocol.ARGUMENT_TYPE_STRING_VALUE, out.OutputArguments[0].Type, c.name)
		}
	})
}

func TestProcessCall_WritingMethodRejectedInReadOnlyScope(t *testing.T) {
	with.Logging(t, func(parent *with.LoggingHarness) {
		h := newHarness(parent)

		out, err := h.call(context.Background(), protocol.ACCESS_SCOPE_READ_ONLY, "ExampleContract", "set", []byte("v"))
		require.Error(t, err)
		require.Equal(t, protocol.EXECUTION_RESULT_ERROR_INPUT, out.CallResult)
		require.Empty(t, h.state.values)
	})
}

func TestProcessCall_WritingMethodUpdatesStateInReadWriteScope(t *testing.T) {
	with.Logging(t, func(parent *with.LoggingHarness) {
		h := newHarness(parent)

		out, err := h.call(context.Background(), protocol.ACCESS_SCOPE_READ_WRITE, "ExampleContract", "set", []byte("v"))
		require.NoError(t, err)
		require.Equal(t, protocol.EXECUTION_RESULT_SUCCESS, out.CallResult)
		require.Empty(t, out.OutputArguments)
		require.Equal(t, []byte("v"), h.state.values["example-key"])
	})
}

func TestProcessCall_ReadOnlyMethodCannotWrite(t *testing.T) {
	with.Logging(t, func(parent *with.LoggingHarness) {
		h := newHarness(parent)

		out, err := h.call(context.Background(), protocol.ACCESS_SCOPE_READ_WRITE, "ExampleContract", "sneakySet")
		require.Error(t, err)
		require.Equal(t, protocol.EXECUTION_RESULT_ERROR_SMART_CONTRACT, out.CallResult)
		require.Empty(t, h.state.values)
	})
}

func TestProcessCall_ContractErrors(t *testing.T) {
	with.Logging(t, func(parent *with.LoggingHarness) {
		h := newHarness(parent)
		ctx := context.Background()

		out, err := h.call(ctx, protocol.ACCESS_SCOPE_READ_ONLY, "ExampleContract", "throw")
		require.EqualError(t, err, "example error")
		require.Equal(t, protocol.EXECUTION_RESULT_ERROR_SMART_CONTRACT, out.CallResult)
		require.Equal(t, builders.Arguments("example error"), out.OutputArguments)

		out, err = h.call(ctx, protocol.ACCESS_SCOPE_READ_ONLY, "ExampleContract", "throwUnauthorized")
		require.Error(t, err)
		require.Equal(t, protocol.EXECUTION_RESULT_ERROR_UNAUTHORIZED, out.CallResult)
	})
}

func TestProcessCall_PanicBecomesContractError(t *testing.T) {
	with.Logging(t, func(parent *with.LoggingHarness) {
		h := newHarness(parent)

		out, err := h.call(context.Background(), protocol.ACCESS_SCOPE_READ_ONLY, "ExampleContract", "panics")
		require.EqualError(t, err, "example panic")
		require.Equal(t, protocol.EXECUTION_RESULT_ERROR_SMART_CONTRACT, out.CallResult)
		require.Equal(t, builders.Arguments("example panic"), out.OutputArguments)
	})
}
