// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package primitives

import (
	"github.com/stretchr/testify/require"
	"testing"
)

func TestClientAddress_StringIsLowercaseHex(t *testing.T) {
	address := ClientAddress{0xab, 0x01, 0xff}
	require.Equal(t, "ab01ff", address.String())
}

func TestClientAddress_Equal(t *testing.T) {
	require.True(t, ClientAddress{0x01, 0x02}.Equal(ClientAddress{0x01, 0x02}))
	require.False(t, ClientAddress{0x01, 0x02}.Equal(ClientAddress{0x01}))
	require.True(t, ClientAddress(nil).Equal(ClientAddress{}), "nil and empty addresses are the same identity")
}

func TestClientAddress_KeyForMapDistinguishesAddresses(t *testing.T) {
	m := map[string]bool{}
	m[ClientAddress{0x01}.KeyForMap()] = true

	require.True(t, m[ClientAddress{0x01}.KeyForMap()])
	require.False(t, m[ClientAddress{0x02}.KeyForMap()])
}
