// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package types

import (
	"github.com/orbs-network/ticketchain/primitives"
	"github.com/orbs-network/ticketchain/protocol"
)

type ContractInfo struct {
	Name          primitives.ContractName
	Methods       map[primitives.MethodName]MethodInfo
	InitSingleton func(*BaseContract) ContractInstance
}

// Implementation is a method expression such as (*contract).get whose
// first argument after the receiver is a context.Context and whose last
// result is an error.
type MethodInfo struct {
	Name           primitives.MethodName
	External       bool
	Access         protocol.ExecutionAccessScope
	Implementation interface{}
}
