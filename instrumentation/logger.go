// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package instrumentation

import (
	"os"

	"github.com/orbs-network/scribe/log"
	"github.com/orbs-network/ticketchain/config"
	"github.com/orbs-network/ticketchain/services/ticketledger"
	"github.com/pkg/errors"
)

const defaultBulkSize = 100

func openLogFile(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open log file %s", path)
	}
	return f, nil
}

// GetBootstrapCrashLogger writes human readable lines to stderr and, when path can be opened, to path.
func GetBootstrapCrashLogger(path string) log.Logger {
	outputs := []log.Output{log.NewFormattingOutput(os.Stderr, log.NewHumanReadableFormatter())}
	if f, err := openLogFile(path); err == nil {
		outputs = append(outputs, log.NewFormattingOutput(log.NewTruncatingFileWriter(f), log.NewHumanReadableFormatter()))
	}
	return log.GetLogger().WithOutput(outputs...)
}

// GetLogger builds the node logger. Unless full logging is on, only errors and ledger lines pass.
func GetLogger(path string, silent bool, cfg config.LoggerConfig) (log.Logger, error) {
	var outputs []log.Output

	if !silent {
		outputs = append(outputs, log.NewFormattingOutput(os.Stdout, log.NewJsonFormatter()))
	}

	if endpoint := cfg.LoggerHttpEndpoint(); endpoint != "" {
		bulkSize := int(cfg.LoggerBulkSize())
		if bulkSize == 0 {
			bulkSize = defaultBulkSize
		}
		formatter := log.NewJsonFormatter().WithTimestampColumn("@timestamp")
		outputs = append(outputs, log.NewBulkOutput(log.NewHttpWriter(endpoint), formatter, bulkSize))
	}

	if path != "" {
		f, err := openLogFile(path)
		if err != nil {
			return nil, err
		}
		writer := log.NewTruncatingFileWriter(f, cfg.LoggerFileTruncationInterval())
		outputs = append(outputs, log.NewFormattingOutput(writer, log.NewJsonFormatter()))
	}

	logger := log.GetLogger(log.Uint32("vcid", uint32(cfg.VirtualChainId()))).WithOutput(outputs...)
	if cfg.LoggerFullLog() {
		return logger, nil
	}
	return logger.WithFilters(log.NewConditionalFilter(true, log.Or(log.OnlyErrors(), log.MatchField(ticketledger.LogTag)))), nil
}
