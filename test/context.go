// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package test

import (
	"context"
	"time"
)

const testContextTimeout = 30 * time.Second

// WithContext runs f with a context that is cancelled when f returns and expires if f hangs.
func WithContext(f func(ctx context.Context)) {
	ctx, cancel := context.WithTimeout(context.Background(), testContextTimeout)
	defer cancel()
	f(ctx)
}
