// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package config

import (
	"github.com/orbs-network/ticketchain/primitives"
	"strings"
	"time"
)

type NodeConfig interface {
	// shared
	VirtualChainId() primitives.VirtualChainId
	ProtocolVersion() primitives.ProtocolVersion

	// virtual machine
	TransactionExpirationWindow() time.Duration
	TransactionFutureTimestampGraceTimeout() time.Duration
	CommittedPoolClearExpiredInterval() time.Duration

	// public api
	SendTransactionTimeout() time.Duration
	PublicApiRateLimitPerSecond() uint32
	PublicApiRateLimitBurst() uint32

	// state storage
	StateStorageBackend() string
	StateStorageLevelDbPath() string
	StateStorageRedisAddress() string
	StateStorageRedisKeyPrefix() string

	// http
	HttpAddress() string
	HttpMaxConnections() uint32
	HttpCorsAllowedOrigins() []string
	Profiling() bool

	// logger
	LoggerHttpEndpoint() string
	LoggerBulkSize() uint32
	LoggerFileTruncationInterval() time.Duration
	LoggerFullLog() bool

	// metrics
	MetricsReportInterval() time.Duration
}

type mutableNodeConfig interface {
	NodeConfig
	Set(key string, value NodeConfigValue) mutableNodeConfig
	SetDuration(key string, value time.Duration) mutableNodeConfig
	SetUint32(key string, value uint32) mutableNodeConfig
	SetString(key string, value string) mutableNodeConfig
	SetBool(key string, value bool) mutableNodeConfig
	Modify(newValues ...NodeConfigKeyValue)
}

type VirtualMachineConfig interface {
	VirtualChainId() primitives.VirtualChainId
	ProtocolVersion() primitives.ProtocolVersion
	TransactionExpirationWindow() time.Duration
	TransactionFutureTimestampGraceTimeout() time.Duration
	CommittedPoolClearExpiredInterval() time.Duration
}

type PublicApiConfig interface {
	VirtualChainId() primitives.VirtualChainId
	ProtocolVersion() primitives.ProtocolVersion
	SendTransactionTimeout() time.Duration
	PublicApiRateLimitPerSecond() uint32
	PublicApiRateLimitBurst() uint32
}

type StateStorageConfig interface {
	StateStorageBackend() string
	StateStorageLevelDbPath() string
	StateStorageRedisAddress() string
	StateStorageRedisKeyPrefix() string
}

type HttpServerConfig interface {
	HttpAddress() string
	HttpMaxConnections() uint32
	HttpCorsAllowedOrigins() []string
	Profiling() bool
}

type LoggerConfig interface {
	VirtualChainId() primitives.VirtualChainId
	LoggerHttpEndpoint() string
	LoggerBulkSize() uint32
	LoggerFileTruncationInterval() time.Duration
	LoggerFullLog() bool
}

type NodeConfigKeyValue struct {
	Key   string
	Value NodeConfigValue
}

type NodeConfigValue struct {
	Uint32Value   uint32
	DurationValue time.Duration
	StringValue   string
	BoolValue     bool
}

const (
	VIRTUAL_CHAIN_ID = "VIRTUAL_CHAIN_ID"
	PROTOCOL_VERSION = "PROTOCOL_VERSION"

	TRANSACTION_EXPIRATION_WINDOW                     = "TRANSACTION_EXPIRATION_WINDOW"
	TRANSACTION_FUTURE_TIMESTAMP_GRACE_TIMEOUT        = "TRANSACTION_FUTURE_TIMESTAMP_GRACE_TIMEOUT"
	TRANSACTION_COMMITTED_POOL_CLEAR_EXPIRED_INTERVAL = "TRANSACTION_COMMITTED_POOL_CLEAR_EXPIRED_INTERVAL"

	PUBLIC_API_SEND_TRANSACTION_TIMEOUT = "PUBLIC_API_SEND_TRANSACTION_TIMEOUT"
	PUBLIC_API_RATE_LIMIT_PER_SECOND    = "PUBLIC_API_RATE_LIMIT_PER_SECOND"
	PUBLIC_API_RATE_LIMIT_BURST         = "PUBLIC_API_RATE_LIMIT_BURST"

	STATE_STORAGE_BACKEND          = "STATE_STORAGE_BACKEND"
	STATE_STORAGE_LEVELDB_PATH     = "STATE_STORAGE_LEVELDB_PATH"
	STATE_STORAGE_REDIS_ADDRESS    = "STATE_STORAGE_REDIS_ADDRESS"
	STATE_STORAGE_REDIS_KEY_PREFIX = "STATE_STORAGE_REDIS_KEY_PREFIX"

	HTTP_ADDRESS              = "HTTP_ADDRESS"
	HTTP_MAX_CONNECTIONS      = "HTTP_MAX_CONNECTIONS"
	HTTP_CORS_ALLOWED_ORIGINS = "HTTP_CORS_ALLOWED_ORIGINS"
	PROFILING                 = "PROFILING"

	LOGGER_HTTP_ENDPOINT            = "LOGGER_HTTP_ENDPOINT"
	LOGGER_BULK_SIZE                = "LOGGER_BULK_SIZE"
	LOGGER_FILE_TRUNCATION_INTERVAL = "LOGGER_FILE_TRUNCATION_INTERVAL"
	LOGGER_FULL_LOG                 = "LOGGER_FULL_LOG"

	METRICS_REPORT_INTERVAL = "METRICS_REPORT_INTERVAL"
)

const (
	STATE_STORAGE_BACKEND_MEMORY  = "memory"
	STATE_STORAGE_BACKEND_LEVELDB = "leveldb"
	STATE_STORAGE_BACKEND_REDIS   = "redis"
)

type config struct {
	kv map[string]NodeConfigValue
}

func emptyConfig() mutableNodeConfig {
	return &config{
		kv: make(map[string]NodeConfigValue),
	}
}

func (c *config) Set(key string, value NodeConfigValue) mutableNodeConfig {
	c.kv[key] = value
	return c
}

func (c *config) SetDuration(key string, value time.Duration) mutableNodeConfig {
	c.kv[key] = NodeConfigValue{DurationValue: value}
	return c
}

func (c *config) SetUint32(key string, value uint32) mutableNodeConfig {
	c.kv[key] = NodeConfigValue{Uint32Value: value}
	return c
}

func (c *config) SetString(key string, value string) mutableNodeConfig {
	c.kv[key] = NodeConfigValue{StringValue: value}
	return c
}

func (c *config) SetBool(key string, value bool) mutableNodeConfig {
	c.kv[key] = NodeConfigValue{BoolValue: value}
	return c
}

func (c *config) VirtualChainId() primitives.VirtualChainId {
	return primitives.VirtualChainId(c.kv[VIRTUAL_CHAIN_ID].Uint32Value)
}

func (c *config) ProtocolVersion() primitives.ProtocolVersion {
	return primitives.ProtocolVersion(c.kv[PROTOCOL_VERSION].Uint32Value)
}

func (c *config) TransactionExpirationWindow() time.Duration {
	return c.kv[TRANSACTION_EXPIRATION_WINDOW].DurationValue
}

func (c *config) TransactionFutureTimestampGraceTimeout() time.Duration {
	return c.kv[TRANSACTION_FUTURE_TIMESTAMP_GRACE_TIMEOUT].DurationValue
}

func (c *config) CommittedPoolClearExpiredInterval() time.Duration {
	return c.kv[TRANSACTION_COMMITTED_POOL_CLEAR_EXPIRED_INTERVAL].DurationValue
}

func (c *config) SendTransactionTimeout() time.Duration {
	return c.kv[PUBLIC_API_SEND_TRANSACTION_TIMEOUT].DurationValue
}

func (c *config) PublicApiRateLimitPerSecond() uint32 {
	return c.kv[PUBLIC_API_RATE_LIMIT_PER_SECOND].Uint32Value
}

func (c *config) PublicApiRateLimitBurst() uint32 {
	return c.kv[PUBLIC_API_RATE_LIMIT_BURST].Uint32Value
}

func (c *config) StateStorageBackend() string {
	return c.kv[STATE_STORAGE_BACKEND].StringValue
}

func (c *config) StateStorageLevelDbPath() string {
	return c.kv[STATE_STORAGE_LEVELDB_PATH].StringValue
}

func (c *config) StateStorageRedisAddress() string {
	return c.kv[STATE_STORAGE_REDIS_ADDRESS].StringValue
}

func (c *config) StateStorageRedisKeyPrefix() string {
	return c.kv[STATE_STORAGE_REDIS_KEY_PREFIX].StringValue
}

func (c *config) HttpAddress() string {
	return c.kv[HTTP_ADDRESS].StringValue
}

func (c *config) HttpMaxConnections() uint32 {
	return c.kv[HTTP_MAX_CONNECTIONS].Uint32Value
}

// comma separated in the underlying value
func (c *config) HttpCorsAllowedOrigins() []string {
	var origins []string
	for _, origin := range strings.Split(c.kv[HTTP_CORS_ALLOWED_ORIGINS].StringValue, ",") {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

func (c *config) Profiling() bool {
	return c.kv[PROFILING].BoolValue
}

func (c *config) LoggerHttpEndpoint() string {
	return c.kv[LOGGER_HTTP_ENDPOINT].StringValue
}

func (c *config) LoggerBulkSize() uint32 {
	return c.kv[LOGGER_BULK_SIZE].Uint32Value
}

func (c *config) LoggerFileTruncationInterval() time.Duration {
	return c.kv[LOGGER_FILE_TRUNCATION_INTERVAL].DurationValue
}

func (c *config) LoggerFullLog() bool {
	return c.kv[LOGGER_FULL_LOG].BoolValue
}

func (c *config) MetricsReportInterval() time.Duration {
	return c.kv[METRICS_REPORT_INTERVAL].DurationValue
}
