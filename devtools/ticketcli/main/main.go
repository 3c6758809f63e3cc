// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package main

import (
	"context"
	"fmt"
	"github.com/orbs-network/scribe/log"
	"github.com/orbs-network/ticketchain/devtools/ticketcli"
	"os"
	"time"
)

func main() {
	logger := log.GetLogger().WithOutput()
	if os.Getenv("TICKETCLI_VERBOSE") != "" {
		logger = log.GetLogger().WithOutput(log.NewFormattingOutput(os.Stderr, log.NewHumanReadableFormatter()))
	}

	runner := ticketcli.NewCommandRunner(logger, 10*time.Second)
	output, err := runner.Run(context.Background(), os.Args[1:])
	if output != "" {
		fmt.Print(output)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
