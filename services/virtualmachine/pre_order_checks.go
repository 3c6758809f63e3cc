// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package virtualmachine

import (
	"fmt"
	"github.com/orbs-network/scribe/log"
	"github.com/orbs-network/ticketchain/instrumentation/logfields"
	"github.com/orbs-network/ticketchain/primitives"
	"github.com/orbs-network/ticketchain/protocol"
	"time"
)

type ErrTransactionRejected struct {
	TransactionStatus protocol.TransactionStatus
	logFields         []*log.Field
}

func (e *ErrTransactionRejected) Error() string {
	return fmt.Sprintf("transaction rejected: %s", e.TransactionStatus)
}

func (e *ErrTransactionRejected) LogFields() []*log.Field {
	return e.logFields
}

type validationContext struct {
	protocolVersion      primitives.ProtocolVersion
	virtualChainId       primitives.VirtualChainId
	expiryWindow         time.Duration
	futureTimestampGrace time.Duration
}

func (c *validationContext) validateTransaction(transaction *protocol.SignedTransaction, txHash primitives.Sha256, currentTime time.Time) *ErrTransactionRejected {
	now := primitives.TimestampNano(currentTime.UnixNano())

	if err := c.validateProtocolVersion(transaction.Transaction); err != nil {
		return err
	}
	if err := c.validateTransactionVirtualChainId(transaction.Transaction); err != nil {
		return err
	}
	if err := c.validateTransactionNotExpired(transaction.Transaction, now); err != nil {
		return err
	}
	if err := c.validateTransactionNotInFuture(transaction.Transaction, now); err != nil {
		return err
	}
	return verifyTransactionSignature(transaction, txHash)
}

func (c *validationContext) validateProtocolVersion(tx *protocol.Transaction) *ErrTransactionRejected {
	if tx.ProtocolVersion != c.protocolVersion {
		return &ErrTransactionRejected{protocol.TRANSACTION_STATUS_REJECTED_UNSUPPORTED_VERSION, []*log.Field{log.Uint32("expected-protocol-version", uint32(c.protocolVersion)), log.Uint32("protocol-version", uint32(tx.ProtocolVersion))}}
	}
	return nil
}

func (c *validationContext) validateTransactionVirtualChainId(tx *protocol.Transaction) *ErrTransactionRejected {
	if tx.VirtualChainId != c.virtualChainId {
		return &ErrTransactionRejected{protocol.TRANSACTION_STATUS_REJECTED_VIRTUAL_CHAIN_MISMATCH, []*log.Field{logfields.VirtualChainId(c.virtualChainId), log.Uint32("tx-vcid", uint32(tx.VirtualChainId))}}
	}
	return nil
}

func (c *validationContext) validateTransactionNotExpired(tx *protocol.Transaction, now primitives.TimestampNano) *ErrTransactionRejected {
	threshold := now - primitives.TimestampNano(c.expiryWindow.Nanoseconds())
	if tx.Timestamp < threshold {
		return &ErrTransactionRejected{protocol.TRANSACTION_STATUS_REJECTED_TIMESTAMP_WINDOW_EXCEEDED, []*log.Field{logfields.TimestampNano("min-timestamp", threshold), logfields.TimestampNano("tx-timestamp", tx.Timestamp)}}
	}
	return nil
}

func (c *validationContext) validateTransactionNotInFuture(tx *protocol.Transaction, now primitives.TimestampNano) *ErrTransactionRejected {
	tsWithGrace := now + primitives.TimestampNano(c.futureTimestampGrace.Nanoseconds())
	if tx.Timestamp > tsWithGrace {
		return &ErrTransactionRejected{protocol.TRANSACTION_STATUS_REJECTED_TIMESTAMP_AHEAD_OF_NODE_TIME, []*log.Field{logfields.TimestampNano("max-timestamp", tsWithGrace), logfields.TimestampNano("tx-timestamp", tx.Timestamp)}}
	}
	return nil
}
