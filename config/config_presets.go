// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package config

import (
	"time"
)

func defaultProductionConfig() mutableNodeConfig {
	cfg := emptyConfig()

	cfg.SetUint32(VIRTUAL_CHAIN_ID, 42)
	cfg.SetUint32(PROTOCOL_VERSION, 1)

	// replay protection must outlive the accepted timestamp window
	cfg.SetDuration(TRANSACTION_EXPIRATION_WINDOW, 30*time.Minute)
	cfg.SetDuration(TRANSACTION_FUTURE_TIMESTAMP_GRACE_TIMEOUT, 3*time.Minute)
	cfg.SetDuration(TRANSACTION_COMMITTED_POOL_CLEAR_EXPIRED_INTERVAL, 30*time.Second)

	cfg.SetDuration(PUBLIC_API_SEND_TRANSACTION_TIMEOUT, 30*time.Second)
	cfg.SetUint32(PUBLIC_API_RATE_LIMIT_PER_SECOND, 100)
	cfg.SetUint32(PUBLIC_API_RATE_LIMIT_BURST, 200)

	cfg.SetString(STATE_STORAGE_BACKEND, STATE_STORAGE_BACKEND_LEVELDB)
	cfg.SetString(STATE_STORAGE_LEVELDB_PATH, "/usr/local/var/ticketchain/state")
	cfg.SetString(STATE_STORAGE_REDIS_ADDRESS, "localhost:6379")
	cfg.SetString(STATE_STORAGE_REDIS_KEY_PREFIX, "ticketchain:")

	cfg.SetString(HTTP_ADDRESS, ":8080")
	cfg.SetUint32(HTTP_MAX_CONNECTIONS, 1024)
	cfg.SetString(HTTP_CORS_ALLOWED_ORIGINS, "*")
	cfg.SetBool(PROFILING, false)

	cfg.SetUint32(LOGGER_BULK_SIZE, 100)
	cfg.SetDuration(LOGGER_FILE_TRUNCATION_INTERVAL, 24*time.Hour)
	cfg.SetBool(LOGGER_FULL_LOG, false)

	cfg.SetDuration(METRICS_REPORT_INTERVAL, 30*time.Second)

	return cfg
}

func ForProduction() mutableNodeConfig {
	return defaultProductionConfig()
}

// in-memory node with short intervals, for tests running a whole node in process
func ForTests() mutableNodeConfig {
	cfg := defaultProductionConfig()

	cfg.SetString(STATE_STORAGE_BACKEND, STATE_STORAGE_BACKEND_MEMORY)
	cfg.SetString(HTTP_ADDRESS, "127.0.0.1:0")
	cfg.SetDuration(TRANSACTION_COMMITTED_POOL_CLEAR_EXPIRED_INTERVAL, 10*time.Millisecond)
	cfg.SetDuration(PUBLIC_API_SEND_TRANSACTION_TIMEOUT, 5*time.Second)
	cfg.SetUint32(PUBLIC_API_RATE_LIMIT_PER_SECOND, 1000)
	cfg.SetUint32(PUBLIC_API_RATE_LIMIT_BURST, 1000)
	cfg.SetDuration(METRICS_REPORT_INTERVAL, 0)
	cfg.SetBool(LOGGER_FULL_LOG, true)

	return cfg
}

func ForVirtualMachineTests(expirationWindow time.Duration, futureGrace time.Duration) VirtualMachineConfig {
	cfg := emptyConfig()

	cfg.SetUint32(VIRTUAL_CHAIN_ID, 42)
	cfg.SetUint32(PROTOCOL_VERSION, 1)
	cfg.SetDuration(TRANSACTION_EXPIRATION_WINDOW, expirationWindow)
	cfg.SetDuration(TRANSACTION_FUTURE_TIMESTAMP_GRACE_TIMEOUT, futureGrace)
	cfg.SetDuration(TRANSACTION_COMMITTED_POOL_CLEAR_EXPIRED_INTERVAL, 10*time.Millisecond)

	return cfg
}

func ForPublicApiTests(txTimeout time.Duration, ratePerSecond uint32, burst uint32) PublicApiConfig {
	cfg := emptyConfig()

	cfg.SetUint32(VIRTUAL_CHAIN_ID, 42)
	cfg.SetUint32(PROTOCOL_VERSION, 1)
	cfg.SetDuration(PUBLIC_API_SEND_TRANSACTION_TIMEOUT, txTimeout)
	cfg.SetUint32(PUBLIC_API_RATE_LIMIT_PER_SECOND, ratePerSecond)
	cfg.SetUint32(PUBLIC_API_RATE_LIMIT_BURST, burst)

	return cfg
}

func ForStateStorageTests(backend string, levelDbPath string, redisAddress string) StateStorageConfig {
	cfg := emptyConfig()

	cfg.SetString(STATE_STORAGE_BACKEND, backend)
	cfg.SetString(STATE_STORAGE_LEVELDB_PATH, levelDbPath)
	cfg.SetString(STATE_STORAGE_REDIS_ADDRESS, redisAddress)
	cfg.SetString(STATE_STORAGE_REDIS_KEY_PREFIX, "ticketchain-test:")

	return cfg
}

func ForHttpServerTests(maxConnections uint32, profiling bool) HttpServerConfig {
	cfg := emptyConfig()

	cfg.SetString(HTTP_ADDRESS, "127.0.0.1:0")
	cfg.SetUint32(HTTP_MAX_CONNECTIONS, maxConnections)
	cfg.SetString(HTTP_CORS_ALLOWED_ORIGINS, "*")
	cfg.SetBool(PROFILING, profiling)

	return cfg
}
