// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package logfields

import (
	"github.com/orbs-network/govnr"
	"github.com/orbs-network/scribe/log"
	"github.com/orbs-network/ticketchain/primitives"
	"runtime/debug"
)

func Transaction(txHash primitives.Sha256) *log.Field {
	return log.Stringable("txHash", txHash)
}

func Query(queryHash primitives.Sha256) *log.Field {
	return log.Stringable("queryHash", queryHash)
}

func TimestampNano(key string, value primitives.TimestampNano) *log.Field {
	return &log.Field{Key: key, Int: int64(value), Type: log.TimeType}
}

func StateHeight(value primitives.BlockHeight) *log.Field {
	return &log.Field{Key: "state-height", Uint: uint64(value), Type: log.UintType}
}

func VirtualChainId(value primitives.VirtualChainId) *log.Field {
	return &log.Field{Key: "vcid", Uint: uint64(value), Type: log.UintType}
}

func ClientAddress(key string, address primitives.ClientAddress) *log.Field {
	return log.Stringable(key, address)
}

type Errorer interface {
	Error(message string, fields ...*log.Field)
}

type govnrErrorer struct {
	logger Errorer
}

func (h *govnrErrorer) Error(err error) {
	h.logger.Error("recovered panic", log.Error(err), log.String("panic", "true"), log.String("stack-trace", string(debug.Stack())))
}

func GovnrErrorer(logger Errorer) govnr.Errorer {
	return &govnrErrorer{logger}
}
