// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package builders

import (
	"github.com/orbs-network/ticketchain/protocol"
)

// panics on unsupported types, test input is expected to be valid
func Arguments(args ...interface{}) []protocol.Argument {
	res, err := protocol.ArgumentsFromNatives(args...)
	if err != nil {
		panic(err)
	}
	return res
}
