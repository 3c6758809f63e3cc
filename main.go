// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/orbs-network/scribe/log"
	"github.com/orbs-network/ticketchain/bootstrap"
	"github.com/orbs-network/ticketchain/config"
	"github.com/orbs-network/ticketchain/instrumentation"
	"github.com/orbs-network/ticketchain/synchronization"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

const (
	shutdownTimeout  = 10 * time.Second
	bootstrapLogPath = "./ticketchain-bootstrap.log"
	dotEnvPath       = ".env"
)

const (
	exitConfig = 1 + iota
	exitLogger
	exitNode
	exitPanic = 8
)

type flags struct {
	configFiles config.FilesPaths
	httpAddress string
	logPath     string
	silent      bool
	version     bool
}

func parseFlags(args []string) *flags {
	f := &flags{}
	flagSet := pflag.NewFlagSet("ticketchain", pflag.ExitOnError)
	flagSet.StringVar(&f.httpAddress, "listen", "", "ip address and port for http server (overrides config)")
	flagSet.BoolVar(&f.silent, "silent", false, "disable output to stdout")
	flagSet.StringVar(&f.logPath, "log", "", "path/to/node.log")
	flagSet.BoolVar(&f.version, "version", false, "print version and exit")
	flagSet.Var(&f.configFiles, "config", "path/to/config.json (repeatable, later files override earlier ones)")
	_ = flagSet.Parse(args)
	return f
}

// startNode returns the running node or the exit code to fail with.
func startNode(f *flags, logger log.Logger) (*bootstrap.Node, log.Logger, int) {
	cfg, err := config.GetNodeConfigFromFiles(f.configFiles, f.httpAddress, dotEnvPath)
	if err != nil {
		logger.Error("error reading configuration", log.Error(err))
		return nil, logger, exitConfig
	}

	nodeLogger, err := instrumentation.GetLogger(f.logPath, f.silent, cfg)
	if err != nil {
		logger.Error("error creating logger", log.Error(err))
		return nil, logger, exitLogger
	}

	node, err := bootstrap.NewNode(cfg, nodeLogger)
	if err != nil {
		nodeLogger.Error("failed to start node", log.Error(err))
		return nil, nodeLogger, exitNode
	}
	return node, nodeLogger, 0
}

func exitOnPanic(logger *log.Logger, message string) {
	if r := recover(); r != nil {
		(*logger).Error(message, log.Error(errors.Errorf("unknown error: %v", r)))
		os.Exit(exitPanic)
	}
}

func main() {
	f := parseFlags(os.Args[1:])
	if f.version {
		fmt.Println(config.GetVersion())
		return
	}

	logger := instrumentation.GetBootstrapCrashLogger(bootstrapLogPath)
	defer exitOnPanic(&logger, "unexpected error in ticketchain node")

	node, logger, code := startNode(f, logger)
	if code != 0 {
		os.Exit(code)
	}

	synchronization.NewShutdownListener(logger, node, shutdownTimeout).ListenToOSShutdownSignal()
	node.WaitUntilShutdown(context.Background())
}
