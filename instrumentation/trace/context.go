// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package trace

import (
	"context"
	"github.com/google/uuid"
	"github.com/orbs-network/scribe/log"
	"net/http"
	"strconv"
	"time"
)

type entryPointKeyType string

const entryPointKey entryPointKeyType = "ep"

const RequestId = "request-id"

const (
	RequestTraceName    = "X-Trace-Name"
	RequestTraceId      = "X-Request-Id"
	RequestTraceCreated = "X-Trace-Created"
)

// identifies one request from the moment it entered the node
type Context struct {
	created   time.Time
	name      string
	requestId string
}

func NewContext(parent context.Context, name string) context.Context {
	ep := &Context{
		name:      name,
		created:   time.Now(),
		requestId: uuid.New().String(),
	}
	return context.WithValue(parent, entryPointKey, ep)
}

func PropagateContext(parent context.Context, tracingContext *Context) context.Context {
	return context.WithValue(parent, entryPointKey, tracingContext)
}

func FromContext(ctx context.Context) (e *Context, ok bool) {
	e, ok = ctx.Value(entryPointKey).(*Context)
	return
}

func (c *Context) RequestId() string {
	return c.requestId
}

func (c *Context) NestedFields() []*log.Field {
	if c == nil {
		return nil
	}

	return []*log.Field{
		log.String("entry-point", c.name),
		log.String(RequestId, c.requestId),
	}
}

func (c *Context) WriteTraceToRequest(request *http.Request) {
	request.Header.Set(RequestTraceName, c.name)
	request.Header.Set(RequestTraceId, c.requestId)
	request.Header.Set(RequestTraceCreated, strconv.FormatInt(c.created.UnixNano(), 10))
}

// continues the caller's trace when the request carries one, otherwise starts a new trace named fallbackName
func NewFromRequest(parent context.Context, request *http.Request, fallbackName string) context.Context {
	requestId := request.Header.Get(RequestTraceId)
	if requestId == "" {
		return NewContext(parent, fallbackName)
	}

	created := time.Now()
	if nanos, err := strconv.ParseInt(request.Header.Get(RequestTraceCreated), 10, 64); err == nil {
		created = time.Unix(0, nanos)
	}
	name := request.Header.Get(RequestTraceName)
	if name == "" {
		name = fallbackName
	}

	return PropagateContext(parent, &Context{name: name, created: created, requestId: requestId})
}

func LogFieldFrom(ctx context.Context) *log.Field {
	if trace, ok := FromContext(ctx); ok {
		return &log.Field{Key: "trace", Nested: trace, Type: log.AggregateType}
	}
	return log.String("trace", "NO-CONTEXT")
}
