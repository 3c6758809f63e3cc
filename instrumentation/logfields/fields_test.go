// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package logfields

import (
	"github.com/orbs-network/scribe/log"
	"github.com/orbs-network/ticketchain/primitives"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"testing"
)

type recordingErrorer struct {
	messages []string
	fields   [][]*log.Field
}

func (r *recordingErrorer) Error(message string, fields ...*log.Field) {
	r.messages = append(r.messages, message)
	r.fields = append(r.fields, fields)
}

func TestGovnrErrorer_ReportsRecoveredPanicAsError(t *testing.T) {
	recorder := &recordingErrorer{}
	GovnrErrorer(recorder).Error(errors.New("boom"))

	require.Equal(t, []string{"recovered panic"}, recorder.messages)
	require.NotEmpty(t, recorder.fields[0], "the panic must be attached to the log line")
}

func TestFieldKeys(t *testing.T) {
	require.Equal(t, "state-height", StateHeight(primitives.BlockHeight(3)).Key)
	require.EqualValues(t, 3, StateHeight(primitives.BlockHeight(3)).Uint)
	require.Equal(t, "vcid", VirtualChainId(42).Key)
	require.Equal(t, "owner", ClientAddress("owner", primitives.ClientAddress{0x01}).Key)
}
