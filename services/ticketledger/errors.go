// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package ticketledger

import (
	"fmt"
	"github.com/orbs-network/ticketchain/primitives"
	"github.com/pkg/errors"
)

// the only error a mint can fail with on its own account
type AuthorizationError struct {
	Owner primitives.ClientAddress
	Cause error
}

func (e *AuthorizationError) Error() string {
	return fmt.Sprintf("caller is not authorized to mint for owner %s: %s", e.Owner, e.Cause)
}

// lets the host classify the failure without depending on this package
func (e *AuthorizationError) Unauthorized() bool {
	return true
}

func IsAuthorizationError(err error) bool {
	_, ok := errors.Cause(err).(*AuthorizationError)
	return ok
}
