// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package virtualmachine

import (
	"context"
	"github.com/orbs-network/ticketchain/primitives"
	"github.com/pkg/errors"
)

// succeeds only for the address of the signer whose signature was verified before the call
type signerAuth struct {
	signer primitives.ClientAddress
}

func (a *signerAuth) RequireAuth(ctx context.Context, address primitives.ClientAddress) error {
	if len(a.signer) == 0 {
		return errors.New("call has no signer")
	}
	if !a.signer.Equal(address) {
		return errors.Errorf("signer %s does not control address %s", a.signer, address)
	}
	return nil
}
