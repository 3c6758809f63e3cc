// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package trace

import (
	"context"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"net/http"
	"testing"
)

func TestEntryPoint_DecoratesContext(t *testing.T) {
	ctx := NewContext(context.Background(), "foo")

	ep, ok := FromContext(ctx)

	require.True(t, ok)
	require.Equal(t, "foo", ep.name)
	_, err := uuid.Parse(ep.RequestId())
	require.NoError(t, err, "request id should be a uuid")
}

func TestNestedContextsRetainValue(t *testing.T) {
	ctx := NewContext(context.Background(), "foo")
	childCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	ep, ok := FromContext(childCtx)

	require.True(t, ok)
	require.Equal(t, "foo", ep.name)
	require.NotEmpty(t, ep.requestId)
}

func TestTwoEntryPointsGetDifferentIds(t *testing.T) {
	ep1, _ := FromContext(NewContext(context.Background(), "foo"))
	ep2, _ := FromContext(NewContext(context.Background(), "foo"))

	require.NotEqual(t, ep1.RequestId(), ep2.RequestId())
}

func TestTranslateToRequestAndBack(t *testing.T) {
	ctx := NewContext(context.Background(), "foo")
	ep, _ := FromContext(ctx)

	request, err := http.NewRequest("GET", "http://localhost", nil)
	require.NoError(t, err)
	ep.WriteTraceToRequest(request)

	require.Equal(t, "foo", request.Header.Get(RequestTraceName))

	fctx := NewFromRequest(context.Background(), request, "bar")
	ep2, ok := FromContext(fctx)
	require.True(t, ok)
	require.Equal(t, ep.name, ep2.name)
	require.Equal(t, ep.requestId, ep2.requestId)
	require.True(t, ep.created.Equal(ep2.created))
}

func TestNewFromRequestWithoutTraceStartsNewOne(t *testing.T) {
	request, err := http.NewRequest("GET", "http://localhost", nil)
	require.NoError(t, err)

	ep, ok := FromContext(NewFromRequest(context.Background(), request, "bar"))
	require.True(t, ok)
	require.Equal(t, "bar", ep.name)
	require.NotEmpty(t, ep.requestId)
}

func TestLogFieldFrom_WithoutContext(t *testing.T) {
	field := LogFieldFrom(context.Background())
	require.Equal(t, "trace", field.Key)
}
