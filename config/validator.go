// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package config

import (
	"github.com/pkg/errors"
	"reflect"
	"runtime"
	"strings"
	"time"
)

// ValidateConfig returns the first inconsistency found in cfg.
func ValidateConfig(cfg NodeConfig) error {
	if cfg.ProtocolVersion() == 0 {
		return errors.New("protocol version must be set")
	}

	if err := requirePositive(cfg.TransactionExpirationWindow); err != nil {
		return err
	}

	if err := requirePositive(cfg.CommittedPoolClearExpiredInterval); err != nil {
		return err
	}

	if err := requireGT(cfg.TransactionExpirationWindow, cfg.CommittedPoolClearExpiredInterval, "committed pool must be cleared more often than transactions expire"); err != nil {
		return err
	}

	if err := requirePositive(cfg.SendTransactionTimeout); err != nil {
		return err
	}

	if cfg.PublicApiRateLimitPerSecond() == 0 {
		return errors.New("public api rate limit must be positive")
	}

	switch cfg.StateStorageBackend() {
	case STATE_STORAGE_BACKEND_MEMORY:
	case STATE_STORAGE_BACKEND_LEVELDB:
		if cfg.StateStorageLevelDbPath() == "" {
			return errors.New("leveldb state storage requires a path")
		}
	case STATE_STORAGE_BACKEND_REDIS:
		if cfg.StateStorageRedisAddress() == "" {
			return errors.New("redis state storage requires an address")
		}
	default:
		return errors.Errorf("unknown state storage backend %q", cfg.StateStorageBackend())
	}

	return nil
}

func requirePositive(d func() time.Duration) error {
	if d() <= 0 {
		return errors.Errorf("%s must be positive, got %s", funcName(d), d())
	}
	return nil
}

func requireGT(d1 func() time.Duration, d2 func() time.Duration, msg string) error {
	if d1() <= d2() {
		return errors.Errorf("%s: %s=%s, %s=%s", msg, funcName(d1), d1(), funcName(d2), d2())
	}
	return nil
}

func funcName(i interface{}) string {
	fullName := runtime.FuncForPC(reflect.ValueOf(i).Pointer()).Name()
	lastDot := strings.LastIndex(fullName, ".")
	return strings.TrimSuffix(fullName[lastDot+1:], "-fm")
}
