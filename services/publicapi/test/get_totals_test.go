// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package test

import (
	"context"
	"testing"

	"github.com/orbs-network/ticketchain/primitives"
	"github.com/orbs-network/ticketchain/test"
	"github.com/orbs-network/ticketchain/test/builders"
	"github.com/orbs-network/ticketchain/test/with"
	"github.com/stretchr/testify/require"
)

func TestGetTotals_RereadsWhenMintCommitsBetweenReads(t *testing.T) {
	with.Logging(t, func(parent *with.LoggingHarness) {
		test.WithContext(func(ctx context.Context) {
			h := newDefaultPublicApiHarness(parent.Logger)
			alice := builders.ClientAddressForEd25519SignerForTests(1)
			bob := builders.ClientAddressForEd25519SignerForTests(2)
			h.ledgerAdvances(
				ledgerRead{height: 5, total: 3, owner: alice},
				ledgerRead{height: 6, total: 7, owner: bob},
				ledgerRead{height: 6, total: 7, owner: bob},
				ledgerRead{height: 6, total: 7, owner: bob},
			)

			totals, err := h.papi.GetTotals(ctx)
			require.NoError(t, err)
			require.EqualValues(t, 7, totals.Total, "total must come from the same height as the owner")
			require.EqualValues(t, bob, totals.LastOwner)
			require.EqualValues(t, 6, totals.StateHeight)
			ok, err := h.vmMock.Verify()
			require.True(t, ok, "%v", err)
		})
	})
}

func TestGetTotals_FailsWhenStateNeverSettles(t *testing.T) {
	with.Logging(t, func(parent *with.LoggingHarness) {
		test.WithContext(func(ctx context.Context) {
			h := newDefaultPublicApiHarness(parent.Logger)
			owner := builders.ClientAddressForEd25519SignerForTests(1)
			var reads []ledgerRead
			for height := 1; height <= 6; height++ {
				reads = append(reads, ledgerRead{height: primitives.BlockHeight(height), total: uint32(height), owner: owner})
			}
			h.ledgerAdvances(reads...)

			_, err := h.papi.GetTotals(ctx)
			require.Error(t, err)
			ok, err := h.vmMock.Verify()
			require.True(t, ok, "%v", err)
		})
	})
}
