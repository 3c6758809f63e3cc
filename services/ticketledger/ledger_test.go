// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package ticketledger

import (
	"context"
	"github.com/orbs-network/go-mock"
	"github.com/orbs-network/ticketchain/test"
	"github.com/orbs-network/ticketchain/test/with"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"math"
	"testing"
)

func TestMintTicket_FirstMintCreatesBothEntries(t *testing.T) {
	with.Logging(t, func(harness *with.LoggingHarness) {
		test.WithContext(func(ctx context.Context) {
			ledger, store := newLedgerForTests(harness.Logger, allowingAuth())

			require.NoError(t, ledger.MintTicket(ctx, alice, 3))

			require.Contains(t, store.values, TOTAL_KEY)
			require.Contains(t, store.values, LAST_OWNER_KEY)
			requireTotal(t, ctx, ledger, 3)
			requireLastOwner(t, ctx, ledger, alice)
		})
	})
}

func TestQueries_EmptyLedger(t *testing.T) {
	with.Logging(t, func(harness *with.LoggingHarness) {
		test.WithContext(func(ctx context.Context) {
			auth := &authProviderMock{}
			auth.When("RequireAuth", mock.Any, mock.Any).Return(nil).Times(0)
			ledger, store := newLedgerForTests(harness.Logger, auth)

			requireTotal(t, ctx, ledger, 0)
			owner, found, err := ledger.GetLastTicketOwner(ctx)
			require.NoError(t, err)
			require.False(t, found, "no owner before the first mint")
			require.Nil(t, owner)

			require.Empty(t, store.values, "reads must not create entries")
			ok, err := auth.Verify()
			require.True(t, ok, "queries must not ask for authorization: %v", err)
		})
	})
}

func TestMintTicket_AccumulatesAndOverwritesOwner(t *testing.T) {
	with.Logging(t, func(harness *with.LoggingHarness) {
		test.WithContext(func(ctx context.Context) {
			ledger, _ := newLedgerForTests(harness.Logger, allowingAuth())

			require.NoError(t, ledger.MintTicket(ctx, alice, 5))
			require.NoError(t, ledger.MintTicket(ctx, bob, 7))

			requireTotal(t, ctx, ledger, 12)
			requireLastOwner(t, ctx, ledger, bob)
		})
	})
}

func TestMintTicket_ZeroAmountStillUpdatesOwner(t *testing.T) {
	with.Logging(t, func(harness *with.LoggingHarness) {
		test.WithContext(func(ctx context.Context) {
			ledger, _ := newLedgerForTests(harness.Logger, allowingAuth())

			require.NoError(t, ledger.MintTicket(ctx, alice, 5))
			require.NoError(t, ledger.MintTicket(ctx, bob, 0))

			requireTotal(t, ctx, ledger, 5)
			requireLastOwner(t, ctx, ledger, bob)
		})
	})
}

func TestMintTicket_SaturatesAtMaxUint32(t *testing.T) {
	with.Logging(t, func(harness *with.LoggingHarness) {
		test.WithContext(func(ctx context.Context) {
			ledger, _ := newLedgerForTests(harness.Logger, allowingAuth())

			require.NoError(t, ledger.MintTicket(ctx, alice, 1))
			requireTotal(t, ctx, ledger, 1)
			requireLastOwner(t, ctx, ledger, alice)

			require.NoError(t, ledger.MintTicket(ctx, bob, math.MaxUint32))
			requireTotal(t, ctx, ledger, math.MaxUint32)
			requireLastOwner(t, ctx, ledger, bob)

			require.NoError(t, ledger.MintTicket(ctx, alice, 1), "minting at the cap is not rejected")
			requireTotal(t, ctx, ledger, math.MaxUint32)
			requireLastOwner(t, ctx, ledger, alice)
		})
	})
}

func TestMintTicket_UnauthorizedCallerTouchesNothing(t *testing.T) {
	with.Logging(t, func(harness *with.LoggingHarness) {
		test.WithContext(func(ctx context.Context) {
			auth := denyingAuth()
			ledger, store := newLedgerForTests(harness.Logger, auth)

			err := ledger.MintTicket(ctx, alice, 10)
			require.Error(t, err)
			require.True(t, IsAuthorizationError(err), "expected an authorization error, got %v", err)
			require.Equal(t, alice, err.(*AuthorizationError).Owner)
			require.Zero(t, store.accesses(), "failed authorization must not read or write state")
		})
	})
}

func TestMintTicket_UnauthorizedAfterMintKeepsState(t *testing.T) {
	with.Logging(t, func(harness *with.LoggingHarness) {
		test.WithContext(func(ctx context.Context) {
			store := newMemoryStore()
			require.NoError(t, NewLedger(store, allowingAuth(), harness.Logger).MintTicket(ctx, alice, 2))

			denied := NewLedger(store, denyingAuth(), harness.Logger)
			err := denied.MintTicket(ctx, bob, 100)
			require.True(t, IsAuthorizationError(err))

			requireTotal(t, ctx, denied, 2)
			requireLastOwner(t, ctx, denied, alice)
		})
	})
}

func TestMintTicket_AsksAuthorizationForTheOwner(t *testing.T) {
	with.Logging(t, func(harness *with.LoggingHarness) {
		test.WithContext(func(ctx context.Context) {
			auth := &authProviderMock{}
			auth.When("RequireAuth", mock.Any, bob).Return(nil).Times(1)
			ledger, _ := newLedgerForTests(harness.Logger, auth)

			require.NoError(t, ledger.MintTicket(ctx, bob, 1))

			ok, err := auth.Verify()
			require.True(t, ok, "authorization must be required for the owner argument: %v", err)
		})
	})
}

func TestMintTicket_StorageFaultIsNotAnAuthorizationError(t *testing.T) {
	with.Logging(t, func(harness *with.LoggingHarness) {
		test.WithContext(func(ctx context.Context) {
			store := &failingStore{failWrites: true, memoryStore: newMemoryStore()}
			ledger := NewLedger(store, allowingAuth(), harness.Logger)

			err := ledger.MintTicket(ctx, alice, 1)
			require.Error(t, err)
			require.False(t, IsAuthorizationError(err))

			store.failReads = true
			_, err = ledger.GetTotalTickets(ctx)
			require.Error(t, err, "read fault must surface")
			_, _, err = ledger.GetLastTicketOwner(ctx)
			require.Error(t, err, "read fault must surface")
		})
	})
}

func TestMintTicket_RepeatedZeroMintsBySameOwnerKeepTotal(t *testing.T) {
	with.Logging(t, func(harness *with.LoggingHarness) {
		test.WithContext(func(ctx context.Context) {
			ledger, _ := newLedgerForTests(harness.Logger, allowingAuth())
			require.NoError(t, ledger.MintTicket(ctx, bob, 9))

			require.NoError(t, ledger.MintTicket(ctx, alice, 0))
			requireTotal(t, ctx, ledger, 9)
			requireLastOwner(t, ctx, ledger, alice)

			require.NoError(t, ledger.MintTicket(ctx, alice, 0))
			requireTotal(t, ctx, ledger, 9)
			requireLastOwner(t, ctx, ledger, alice)
		})
	})
}

func TestGetTotalTickets_CorruptValue(t *testing.T) {
	with.Logging(t, func(harness *with.LoggingHarness) {
		test.WithContext(func(ctx context.Context) {
			ledger, store := newLedgerForTests(harness.Logger, allowingAuth())
			store.values[TOTAL_KEY] = []byte{0x01}

			_, err := ledger.GetTotalTickets(ctx)
			require.Error(t, err)
		})
	})
}

func TestGetLastTicketOwner_ReturnsCopy(t *testing.T) {
	with.Logging(t, func(harness *with.LoggingHarness) {
		test.WithContext(func(ctx context.Context) {
			ledger, _ := newLedgerForTests(harness.Logger, allowingAuth())
			owner := address(0x11)
			require.NoError(t, ledger.MintTicket(ctx, owner, 1))
			owner[0] = 0x22

			requireLastOwner(t, ctx, ledger, address(0x11))
		})
	})
}

func TestIsAuthorizationError_SeesThroughWrapping(t *testing.T) {
	err := &AuthorizationError{Owner: alice, Cause: denyingAuthCause}
	require.True(t, IsAuthorizationError(wrap(err)))
	require.False(t, IsAuthorizationError(denyingAuthCause))
	require.False(t, IsAuthorizationError(nil))
}

func requireTotal(t *testing.T, ctx context.Context, ledger *Ledger, expected uint32) {
	total, err := ledger.GetTotalTickets(ctx)
	require.NoError(t, err)
	require.EqualValues(t, expected, total)
}

func requireLastOwner(t *testing.T, ctx context.Context, ledger *Ledger, expected []byte) {
	owner, found, err := ledger.GetLastTicketOwner(ctx)
	require.NoError(t, err)
	require.True(t, found)
	require.EqualValues(t, expected, owner)
}

var denyingAuthCause = errors.New("signer does not match")

func wrap(err error) error {
	return errors.Wrap(err, "contract call failed")
}
