// Package messaging forwards progression events to a RabbitMQ topic exchange.
package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/osse101/DoughGuardian_Go/internal/event"
	"github.com/osse101/DoughGuardian_Go/internal/logger"
)

// Channel is the subset of *amqp.Channel the forwarder uses
type Channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// Forwarder publishes every bus event to an exchange, using the event type
// as the routing key
type Forwarder struct {
	ch       Channel
	exchange string
	conn     *amqp.Connection
}

// Dial connects to the broker and opens a channel for a new forwarder
func Dial(url, exchange string) (*Forwarder, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgDialFailed, err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf(ErrMsgChannelFailed, err)
	}

	f, err := NewForwarder(ch, exchange)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	f.conn = conn
	return f, nil
}

// NewForwarder declares the exchange on an open channel
func NewForwarder(ch Channel, exchange string) (*Forwarder, error) {
	if exchange == "" {
		exchange = DefaultExchange
	}

	err := ch.ExchangeDeclare(
		exchange,
		ExchangeKind,
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		_ = ch.Close()
		return nil, fmt.Errorf(ErrMsgDeclareFailed, exchange, err)
	}

	slog.Default().Info(LogMsgExchangeDeclared, "exchange", exchange, "kind", ExchangeKind)
	return &Forwarder{ch: ch, exchange: exchange}, nil
}

// Register subscribes the forwarder to every progression event
func (f *Forwarder) Register(bus event.Bus) {
	event.SubscribeAll(bus, f.Handle)
}

// Handle publishes a single event
func (f *Forwarder) Handle(ctx context.Context, evt event.Event) error {
	body, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf(ErrMsgMarshalFailed, evt.Type, err)
	}

	pubCtx, cancel := context.WithTimeout(ctx, PublishTimeout)
	defer cancel()

	err = f.ch.PublishWithContext(pubCtx,
		f.exchange,
		string(evt.Type),
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  ContentTypeJSON,
			DeliveryMode: amqp.Persistent,
			MessageId:    uuid.NewString(),
			Type:         string(evt.Type),
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "type", evt.Type, "error", err)
		return fmt.Errorf(ErrMsgPublishFailed, evt.Type, err)
	}

	logger.FromContext(ctx).Debug(LogMsgEventForwarded, "type", evt.Type, "exchange", f.exchange)
	return nil
}

// Close closes the channel and, when the forwarder dialled it, the connection
func (f *Forwarder) Close() error {
	err := f.ch.Close()
	if f.conn != nil {
		if cerr := f.conn.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}
