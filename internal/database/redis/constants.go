package redis

import "time"

// Keys
const (
	KeyPrefixProgress = "progress:"
	KeyPlayers        = "progress:players"
)

// Connection settings
const (
	ConnectMaxAttempts = 5
	ConnectRetryDelay  = 2 * time.Second
	PingTimeout        = 5 * time.Second
)

const (
	ErrMsgConnectFailed = "failed to connect to redis after %d attempts: %w"

	LogMsgConnected = "Connected to redis"
	LogMsgPingRetry = "Redis ping failed, retrying"
)
