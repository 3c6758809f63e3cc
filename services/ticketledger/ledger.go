// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

// Package ticketledger keeps a single global ticket counter together with the
// address of whoever minted last. It knows nothing about transactions or
// signatures: durable storage and caller authorization are handed to it.
package ticketledger

import (
	"context"
	"github.com/orbs-network/scribe/log"
	"github.com/orbs-network/ticketchain/primitives"
)

var LogTag = log.Service("ticket-ledger")

const (
	TOTAL_KEY      = "total"
	LAST_OWNER_KEY = "last"
)

// an error returned here is a host fault, never a ledger outcome
type DurableStore interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte) error
}

// nil means the current caller proved control of address
type AuthProvider interface {
	RequireAuth(ctx context.Context, address primitives.ClientAddress) error
}

type Ledger struct {
	store  DurableStore
	auth   AuthProvider
	logger log.Logger
}

func NewLedger(store DurableStore, auth AuthProvider, parentLogger log.Logger) *Ledger {
	return &Ledger{
		store:  store,
		auth:   auth,
		logger: parentLogger.WithTags(LogTag),
	}
}
