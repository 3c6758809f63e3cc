// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package ticketledger

import (
	"context"
	"github.com/orbs-network/ticketchain/primitives"
	"github.com/orbs-network/ticketchain/test"
	"github.com/orbs-network/ticketchain/test/with"
	"github.com/stretchr/testify/require"
	"math"
	"testing"
)

// total after any sequence of authorized mints is the saturating fold of the amounts
func TestMintTicket_RandomSequencesFoldWithSaturation(t *testing.T) {
	ctrlRand := test.NewControlledRand(t)
	with.Logging(t, func(harness *with.LoggingHarness) {
		test.WithContext(func(ctx context.Context) {
			for round := 0; round < 50; round++ {
				ledger, _ := newLedgerForTests(harness.Logger, allowingAuth())

				var expected uint64
				var lastOwner primitives.ClientAddress
				previous := uint32(0)
				mints := 1 + ctrlRand.Intn(20)
				for i := 0; i < mints; i++ {
					amount := ctrlRand.TicketAmount()
					owner := ctrlRand.ClientAddress()
					require.NoError(t, ledger.MintTicket(ctx, owner, amount))

					expected += uint64(amount)
					if expected > math.MaxUint32 {
						expected = math.MaxUint32
					}
					lastOwner = owner

					total, err := ledger.GetTotalTickets(ctx)
					require.NoError(t, err)
					require.True(t, total >= previous, "total must never decrease")
					previous = total
				}

				requireTotal(t, ctx, ledger, uint32(expected))
				requireLastOwner(t, ctx, ledger, lastOwner)
			}
		})
	})
}

func TestSaturatingAdd(t *testing.T) {
	require.EqualValues(t, 3, saturatingAdd(1, 2))
	require.EqualValues(t, math.MaxUint32, saturatingAdd(math.MaxUint32, 0))
	require.EqualValues(t, math.MaxUint32, saturatingAdd(math.MaxUint32-1, 1))
	require.EqualValues(t, math.MaxUint32, saturatingAdd(math.MaxUint32-1, 2))
	require.EqualValues(t, math.MaxUint32, saturatingAdd(math.MaxUint32, math.MaxUint32))
}
