// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package ticketledger

import (
	"context"
	"github.com/orbs-network/ticketchain/primitives"
	"github.com/pkg/errors"
)

func (l *Ledger) GetTotalTickets(ctx context.Context) (uint32, error) {
	return l.readTotal(ctx)
}

// found is false until the first successful mint
func (l *Ledger) GetLastTicketOwner(ctx context.Context) (owner primitives.ClientAddress, found bool, err error) {
	value, found, err := l.store.Get(ctx, LAST_OWNER_KEY)
	if err != nil {
		return nil, false, errors.Wrapf(err, "failed reading key %s", LAST_OWNER_KEY)
	}
	if !found {
		return nil, false, nil
	}
	return decodeOwner(value), true, nil
}

func (l *Ledger) readTotal(ctx context.Context) (uint32, error) {
	value, found, err := l.store.Get(ctx, TOTAL_KEY)
	if err != nil {
		return 0, errors.Wrapf(err, "failed reading key %s", TOTAL_KEY)
	}
	if !found {
		return 0, nil
	}
	return decodeTotal(value)
}
