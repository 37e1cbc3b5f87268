package config

import "time"

// Store backends
const (
	StoreBackendFile     = "file"
	StoreBackendPostgres = "postgres"
	StoreBackendRedis    = "redis"
)

// Environments
const (
	EnvironmentDev        = "dev"
	EnvironmentProduction = "production"
)

// Defaults
const (
	DefaultPort                = 8080
	DefaultLogDir              = "logs"
	DefaultSaveDir             = "saves"
	DefaultDBMaxConns          = 20
	DefaultDBMaxConnIdleTime   = 5 * time.Minute
	DefaultDBMaxConnLifetime   = 30 * time.Minute
	DefaultRedisAddr           = "localhost:6379"
	DefaultAMQPExchange        = "dough_guardian.events"
	DefaultAutosaveInterval    = time.Minute
	DefaultPassiveTickInterval = time.Second
	DefaultSessionCacheSize    = 1024
	DefaultSessionTTL          = 30 * time.Minute
	DefaultEventMaxRetries     = 3
	DefaultEventRetryDelay     = 500 * time.Millisecond
	DefaultEventDeadLetterPath = "logs/event_deadletter.jsonl"
	DefaultWorkerCount         = 2
	DefaultWorkerQueueSize     = 16
	DefaultShutdownTimeout     = 15 * time.Second
	DefaultRateLimit           = 1000
	DefaultRateWindow          = 5 * time.Minute
)
