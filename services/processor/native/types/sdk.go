// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package types

import (
	"context"
	"github.com/orbs-network/ticketchain/primitives"
)

// StateSdk is the contract's view of its own keys. Errors are host faults.
type StateSdk interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte) error
}

type AuthSdk interface {
	RequireAuth(ctx context.Context, address primitives.ClientAddress) error
}
