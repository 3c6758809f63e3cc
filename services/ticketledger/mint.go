// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package ticketledger

import (
	"context"
	"github.com/orbs-network/scribe/log"
	"github.com/orbs-network/ticketchain/primitives"
	"github.com/pkg/errors"
	"math"
)

func (l *Ledger) MintTicket(ctx context.Context, owner primitives.ClientAddress, amount uint32) error {
	if err := l.auth.RequireAuth(ctx, owner); err != nil {
		l.logger.Info("mint rejected, caller does not control owner", log.Stringable("owner", owner), log.Error(err))
		return &AuthorizationError{Owner: owner, Cause: err}
	}

	total, err := l.readTotal(ctx)
	if err != nil {
		return err
	}

	newTotal := saturatingAdd(total, amount)

	if err := l.store.Set(ctx, TOTAL_KEY, encodeTotal(newTotal)); err != nil {
		return errors.Wrapf(err, "failed writing key %s", TOTAL_KEY)
	}
	if err := l.store.Set(ctx, LAST_OWNER_KEY, encodeOwner(owner)); err != nil {
		return errors.Wrapf(err, "failed writing key %s", LAST_OWNER_KEY)
	}

	l.logger.Info("minted tickets", log.Stringable("owner", owner), log.Uint32("amount", amount), log.Uint32("total", newTotal))
	return nil
}

// clamps at math.MaxUint32 instead of wrapping around
func saturatingAdd(a uint32, b uint32) uint32 {
	if sum := a + b; sum >= a {
		return sum
	}
	return math.MaxUint32
}
