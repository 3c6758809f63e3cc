// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package testkit

import (
	"context"
	"github.com/orbs-network/ticketchain/services/statestorage/adapter"
	"github.com/stretchr/testify/require"
	"testing"
)

// RequireStatePersistenceContract runs the behaviour every StatePersistence must share.
// newPersistence must return an empty persistence on every call.
func RequireStatePersistenceContract(t *testing.T, newPersistence func() adapter.StatePersistence) {
	t.Run("EmptyPersistence", func(t *testing.T) {
		sp := newPersistence()
		defer sp.Close()
		ctx := context.Background()

		height, err := sp.ReadMetadata(ctx)
		require.NoError(t, err)
		require.EqualValues(t, 0, height)

		_, found, err := sp.Read(ctx, "TicketChain", "total")
		require.NoError(t, err)
		require.False(t, found)
	})

	t.Run("WriteThenRead", func(t *testing.T) {
		sp := newPersistence()
		defer sp.Close()
		ctx := context.Background()

		err := sp.Write(ctx, 1, adapter.ChainState{
			"TicketChain": {"total": []byte{1, 0, 0, 0}, "last": []byte{0xaa}},
			"Other":       {"total": []byte{9}},
		})
		require.NoError(t, err)

		height, err := sp.ReadMetadata(ctx)
		require.NoError(t, err)
		require.EqualValues(t, 1, height)

		value, found, err := sp.Read(ctx, "TicketChain", "total")
		require.NoError(t, err)
		require.True(t, found)
		require.Equal(t, []byte{1, 0, 0, 0}, value)

		value, found, err = sp.Read(ctx, "Other", "total")
		require.NoError(t, err)
		require.True(t, found)
		require.Equal(t, []byte{9}, value, "contracts must not share keys")
	})

	t.Run("LaterWriteOverwritesAndKeepsUntouchedKeys", func(t *testing.T) {
		sp := newPersistence()
		defer sp.Close()
		ctx := context.Background()

		require.NoError(t, sp.Write(ctx, 1, adapter.ChainState{"TicketChain": {"total": []byte{1}, "last": []byte{0xaa}}}))
		require.NoError(t, sp.Write(ctx, 2, adapter.ChainState{"TicketChain": {"last": []byte{0xbb}}}))

		height, err := sp.ReadMetadata(ctx)
		require.NoError(t, err)
		require.EqualValues(t, 2, height)

		value, _, err := sp.Read(ctx, "TicketChain", "total")
		require.NoError(t, err)
		require.Equal(t, []byte{1}, value)

		value, _, err = sp.Read(ctx, "TicketChain", "last")
		require.NoError(t, err)
		require.Equal(t, []byte{0xbb}, value)
	})
}
