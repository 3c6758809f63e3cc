// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package files

import (
	"io/ioutil"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// NewTempFileWithContent writes content to a fresh ticketchain-* temp file and returns its path.
func NewTempFileWithContent(tb testing.TB, content string) string {
	tb.Helper()
	file, err := ioutil.TempFile("", "ticketchain-*")
	require.NoError(tb, err, "failed creating temp file")
	defer file.Close()

	_, err = file.WriteString(content)
	require.NoError(tb, err, "failed writing temp file %s", file.Name())
	return file.Name()
}

func RemoveSilently(path string) {
	_ = os.Remove(path)
}
