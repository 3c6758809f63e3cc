// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package virtualmachine

import (
	"context"
	"github.com/orbs-network/ticketchain/config"
	"github.com/orbs-network/ticketchain/crypto/digest"
	"github.com/orbs-network/ticketchain/primitives"
	"github.com/orbs-network/ticketchain/protocol"
	"github.com/orbs-network/ticketchain/test"
	"github.com/orbs-network/ticketchain/test/builders"
	"github.com/orbs-network/ticketchain/test/crypto/keys"
	"github.com/orbs-network/ticketchain/test/with"
	"github.com/stretchr/testify/require"
	"math"
	"sync"
	"testing"
	"time"
)

func TestRunTransaction_MintIsCommittedAndVisibleToQueries(t *testing.T) {
	with.Logging(t, func(logging *with.LoggingHarness) {
		test.WithContext(func(ctx context.Context) {
			h := newHarness(ctx, logging)

			output := h.runTransaction(t, ctx, builders.MintTransaction().WithAmount(3).Build())
			require.Equal(t, protocol.EXECUTION_RESULT_SUCCESS, output.Receipt.ExecutionResult)
			require.EqualValues(t, 1, output.StateHeight, "mint should move state one height forward")

			require.EqualValues(t, 3, h.totalTickets(t, ctx))
			require.Equal(t, builders.ClientAddressForEd25519SignerForTests(1), h.lastTicketOwner(t, ctx))
		})
	})
}

func TestRunQuery_EmptyLedger(t *testing.T) {
	with.Logging(t, func(logging *with.LoggingHarness) {
		test.WithContext(func(ctx context.Context) {
			h := newHarness(ctx, logging)

			require.EqualValues(t, 0, h.totalTickets(t, ctx))
			require.Empty(t, h.lastTicketOwner(t, ctx), "no owner before the first mint")
		})
	})
}

func TestRunTransaction_SaturatesTotalAndTracksLastOwner(t *testing.T) {
	with.Logging(t, func(logging *with.LoggingHarness) {
		test.WithContext(func(ctx context.Context) {
			h := newHarness(ctx, logging)
			bob := keys.Ed25519KeyPairForTests(2)

			h.runTransaction(t, ctx, builders.MintTransaction().WithAmount(1).Build())
			h.runTransaction(t, ctx, builders.MintTransaction().WithSigner(bob.PublicKey(), bob.PrivateKey()).WithAmount(math.MaxUint32).Build())

			require.EqualValues(t, uint32(math.MaxUint32), h.totalTickets(t, ctx), "total should be clamped, not wrapped")
			require.Equal(t, builders.ClientAddressForEd25519SignerForTests(2), h.lastTicketOwner(t, ctx))
		})
	})
}

func TestRunTransaction_UnauthorizedMintLeavesStateUntouched(t *testing.T) {
	with.Logging(t, func(logging *with.LoggingHarness) {
		test.WithContext(func(ctx context.Context) {
			h := newHarness(ctx, logging)
			h.runTransaction(t, ctx, builders.MintTransaction().WithAmount(5).Build())

			output := h.runTransaction(t, ctx, builders.MintTransaction().
				WithOwner(builders.ClientAddressForEd25519SignerForTests(2)).
				WithAmount(10).
				Build())

			require.Equal(t, protocol.EXECUTION_RESULT_ERROR_UNAUTHORIZED, output.Receipt.ExecutionResult)
			require.EqualValues(t, 1, output.StateHeight, "failed mint should not commit state")
			require.EqualValues(t, 5, h.totalTickets(t, ctx))
			require.Equal(t, builders.ClientAddressForEd25519SignerForTests(1), h.lastTicketOwner(t, ctx))
		})
	})
}

func TestRunTransaction_EcdsaSignerMintsToItsEthereumAddress(t *testing.T) {
	with.Logging(t, func(logging *with.LoggingHarness) {
		test.WithContext(func(ctx context.Context) {
			h := newHarness(ctx, logging)
			keyPair := keys.EcdsaSecp256K1KeyPairForTests(1)

			output := h.runTransaction(t, ctx, builders.MintTransaction().
				WithEcdsaSecp256K1Signer(keyPair.PublicKey(), keyPair.PrivateKey()).
				WithAmount(2).
				Build())
			require.Equal(t, protocol.EXECUTION_RESULT_SUCCESS, output.Receipt.ExecutionResult)

			expectedOwner, err := digest.CalcClientAddressOfEcdsaSecp256K1PublicKey(keyPair.PublicKey())
			require.NoError(t, err)
			require.Equal(t, expectedOwner, h.lastTicketOwner(t, ctx))
		})
	})
}

func TestRunTransaction_ResubmissionReturnsOriginalReceipt(t *testing.T) {
	with.Logging(t, func(logging *with.LoggingHarness) {
		test.WithContext(func(ctx context.Context) {
			h := newHarness(ctx, logging)
			tx := builders.MintTransaction().WithAmount(4).Build()

			first := h.runTransaction(t, ctx, tx)

			second, err := h.vm.RunTransaction(ctx, tx)
			require.NoError(t, err)
			require.Equal(t, protocol.TRANSACTION_STATUS_DUPLICATE_TRANSACTION_ALREADY_COMMITTED, second.TransactionStatus)
			require.Equal(t, first.Receipt, second.Receipt, "duplicate should carry the original receipt")
			require.Equal(t, first.StateHeight, second.StateHeight)

			require.EqualValues(t, 4, h.totalTickets(t, ctx), "duplicate should not mint again")
		})
	})
}

func TestRunTransaction_PreOrderRejections(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name   string
		tx     *protocol.SignedTransaction
		status protocol.TransactionStatus
	}{
		{"protocol version", builders.Transaction().WithProtocolVersion(2).Build(), protocol.TRANSACTION_STATUS_REJECTED_UNSUPPORTED_VERSION},
		{"virtual chain", builders.Transaction().WithVirtualChainId(43).Build(), protocol.TRANSACTION_STATUS_REJECTED_VIRTUAL_CHAIN_MISMATCH},
		{"expired", builders.Transaction().WithTimestamp(primitives.TimestampNano(now.Add(-31 * time.Minute).UnixNano())).Build(), protocol.TRANSACTION_STATUS_REJECTED_TIMESTAMP_WINDOW_EXCEEDED},
		{"future", builders.Transaction().WithTimestampInFarFuture().Build(), protocol.TRANSACTION_STATUS_REJECTED_TIMESTAMP_AHEAD_OF_NODE_TIME},
		{"signature", builders.Transaction().WithInvalidSignature().Build(), protocol.TRANSACTION_STATUS_REJECTED_SIGNATURE_MISMATCH},
		{"signer scheme", withSignerScheme(builders.Transaction().Build(), 9), protocol.TRANSACTION_STATUS_REJECTED_UNKNOWN_SIGNER_SCHEME},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			with.Logging(t, func(logging *with.LoggingHarness) {
				test.WithContext(func(ctx context.Context) {
					h := newHarness(ctx, logging)

					output, err := h.vm.RunTransaction(ctx, tt.tx)
					require.Error(t, err)
					require.IsType(t, &ErrTransactionRejected{}, err)
					require.Equal(t, tt.status, output.TransactionStatus)
					require.Nil(t, output.Receipt, "rejected transactions are not executed")
				})
			})
		})
	}
}

func withSignerScheme(tx *protocol.SignedTransaction, scheme protocol.SignerScheme) *protocol.SignedTransaction {
	tx.Transaction.Signer.Scheme = scheme
	return tx
}

func TestRunTransaction_FailedCommitIsReportedAndCanBeRetried(t *testing.T) {
	with.Logging(t, func(logging *with.LoggingHarness) {
		test.WithContext(func(ctx context.Context) {
			logging.AllowErrorsMatching("failed to commit state diff")
			logging.AllowErrorsMatching("transaction hit a host fault")
			h := newHarness(ctx, logging)
			tx := builders.MintTransaction().WithAmount(7).Build()

			h.persistence.FailNextWrites()
			output, err := h.vm.RunTransaction(ctx, tx)
			require.Error(t, err)
			require.Equal(t, protocol.EXECUTION_RESULT_ERROR_UNEXPECTED, output.Receipt.ExecutionResult)
			require.NotEqual(t, protocol.TRANSACTION_STATUS_COMMITTED, output.TransactionStatus)

			h.persistence.Heal()
			require.EqualValues(t, 0, h.totalTickets(t, ctx), "nothing should be visible after a failed commit")

			retry := h.runTransaction(t, ctx, tx)
			require.Equal(t, protocol.EXECUTION_RESULT_SUCCESS, retry.Receipt.ExecutionResult)
			require.EqualValues(t, 7, h.totalTickets(t, ctx))
		})
	})
}

func TestRunTransaction_FailedReadAbortsMint(t *testing.T) {
	with.Logging(t, func(logging *with.LoggingHarness) {
		test.WithContext(func(ctx context.Context) {
			logging.AllowErrorsMatching("transaction hit a host fault")
			h := newHarness(ctx, logging)

			h.persistence.FailNextReads()
			output, err := h.vm.RunTransaction(ctx, builders.MintTransaction().Build())
			require.Error(t, err)
			require.Equal(t, protocol.EXECUTION_RESULT_ERROR_UNEXPECTED, output.Receipt.ExecutionResult)

			h.persistence.Heal()
			height, err := h.vm.stateStorage.GetStateHeight(ctx)
			require.NoError(t, err)
			require.EqualValues(t, 0, height)
		})
	})
}

func TestRunQuery_FailedReadIsUnexpected(t *testing.T) {
	with.Logging(t, func(logging *with.LoggingHarness) {
		test.WithContext(func(ctx context.Context) {
			logging.AllowErrorsMatching("query hit a host fault")
			h := newHarness(ctx, logging)

			h.persistence.FailNextReads()
			output, err := h.vm.RunQuery(ctx, builders.Query("get_total_tickets"))
			require.Error(t, err)
			require.Equal(t, protocol.EXECUTION_RESULT_ERROR_UNEXPECTED, output.ExecutionResult)
		})
	})
}

func TestRunQuery_CannotMint(t *testing.T) {
	with.Logging(t, func(logging *with.LoggingHarness) {
		test.WithContext(func(ctx context.Context) {
			h := newHarness(ctx, logging)

			output, err := h.vm.RunQuery(ctx, builders.Query("mint_ticket", []byte(builders.ClientAddressForEd25519SignerForTests(1)), uint32(1)))
			require.Error(t, err)
			require.Equal(t, protocol.EXECUTION_RESULT_ERROR_INPUT, output.ExecutionResult)
			require.EqualValues(t, 0, h.totalTickets(t, ctx))
		})
	})
}

func TestRunQuery_RejectsOtherVirtualChain(t *testing.T) {
	with.Logging(t, func(logging *with.LoggingHarness) {
		test.WithContext(func(ctx context.Context) {
			h := newHarness(ctx, logging)
			query := builders.Query("get_total_tickets")
			query.VirtualChainId = 43

			output, err := h.vm.RunQuery(ctx, query)
			require.Error(t, err)
			require.Equal(t, protocol.EXECUTION_RESULT_ERROR_INPUT, output.ExecutionResult)
		})
	})
}

func TestRunTransaction_ConcurrentMintsAreSerialized(t *testing.T) {
	with.Logging(t, func(logging *with.LoggingHarness) {
		test.WithContext(func(ctx context.Context) {
			h := newHarness(ctx, logging)
			base := time.Now().UnixNano()

			const mints = 20
			var wg sync.WaitGroup
			for i := 0; i < mints; i++ {
				tx := builders.MintTransaction().WithTimestamp(primitives.TimestampNano(base + int64(i))).Build()
				wg.Add(1)
				go func() {
					defer wg.Done()
					output, err := h.vm.RunTransaction(ctx, tx)
					if err == nil && output.Receipt.ExecutionResult != protocol.EXECUTION_RESULT_SUCCESS {
						t.Errorf("mint failed with %s", output.Receipt.ExecutionResult)
					}
				}()
			}
			wg.Wait()

			require.EqualValues(t, mints, h.totalTickets(t, ctx), "no increment should be lost")
		})
	})
}

func TestCommittedPool_ExpiredTransactionsAreCleared(t *testing.T) {
	with.Logging(t, func(logging *with.LoggingHarness) {
		test.WithContext(func(ctx context.Context) {
			h := newHarnessWithConfig(ctx, logging, config.ForVirtualMachineTests(50*time.Millisecond, time.Second))

			h.runTransaction(t, ctx, builders.MintTransaction().Build())
			require.Equal(t, 1, h.vm.committedPool.size())

			require.True(t, test.Eventually(func() bool {
				return h.vm.committedPool.size() == 0
			}), "committed pool should be cleared after the expiration window")
		})
	})
}
