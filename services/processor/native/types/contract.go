// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package types

import (
	"github.com/orbs-network/scribe/log"
)

// ContractInstance is whatever InitSingleton returns; its methods are bound through MethodInfo.Implementation.
type ContractInstance interface{}

type BaseContract struct {
	State  StateSdk
	Auth   AuthSdk
	Logger log.Logger
}

func NewBaseContract(
	state StateSdk,
	auth AuthSdk,
	logger log.Logger,
) *BaseContract {

	return &BaseContract{
		State:  state,
		Auth:   auth,
		Logger: logger,
	}
}
