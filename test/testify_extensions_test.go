// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package test

import (
	"testing"
)

type receipt struct {
	Hash   []byte
	Result string
	Args   []interface{}
}

func TestRequireCmpEqual_ComparesNestedValues(t *testing.T) {
	expected := &receipt{Hash: []byte{0x01}, Result: "SUCCESS", Args: []interface{}{uint32(3), []byte("owner")}}

	RequireCmpEqual(t, expected, &receipt{Hash: []byte{0x01}, Result: "SUCCESS", Args: []interface{}{uint32(3), []byte("owner")}})
}

type recordingTB struct {
	testing.TB
	failed bool
}

func (r *recordingTB) Helper() {}

func (r *recordingTB) Errorf(format string, args ...interface{}) {
	r.failed = true
}

func TestAssertCmpEqual_ReportsDifferentOwner(t *testing.T) {
	tb := &recordingTB{TB: t}
	ok := AssertCmpEqual(tb, &receipt{Result: "SUCCESS", Args: []interface{}{[]byte("alice")}}, &receipt{Result: "SUCCESS", Args: []interface{}{[]byte("bob")}})

	if ok || !tb.failed {
		t.Fatal("differing owners should fail the comparison")
	}
}
