package messaging

import "time"

const (
	DefaultExchange = "dough_guardian.events"
	ExchangeKind    = "topic"
	ContentTypeJSON = "application/json"
	PublishTimeout  = 5 * time.Second
)

// Error messages
const (
	ErrMsgDialFailed    = "failed to connect to rabbitmq: %w"
	ErrMsgChannelFailed = "failed to open a channel: %w"
	ErrMsgDeclareFailed = "failed to declare exchange '%s': %w"
	ErrMsgMarshalFailed = "failed to marshal %s event: %w"
	ErrMsgPublishFailed = "failed to publish %s event: %w"
)

// Log messages
const (
	LogMsgExchangeDeclared = "Event exchange declared"
	LogMsgEventForwarded   = "Event forwarded to broker"
	LogMsgPublishFailed    = "Failed to forward event to broker"
)
