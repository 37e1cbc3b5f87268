package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/osse101/DoughGuardian_Go/internal/config"
	"github.com/osse101/DoughGuardian_Go/internal/event"
	"github.com/osse101/DoughGuardian_Go/internal/messaging"
	"github.com/osse101/DoughGuardian_Go/internal/metrics"
	"github.com/osse101/DoughGuardian_Go/internal/sse"
)

// EventSystem is the in-process bus plus everything subscribed to it
type EventSystem struct {
	Bus       *event.MemoryBus
	Publisher *event.ResilientPublisher
	Hub       *sse.Hub

	forwarder    *messaging.Forwarder
	forwardRetry *event.ResilientPublisher
}

// InitializeEventSystem creates the bus and its retrying publisher, starts
// the SSE hub and registers the metrics, SSE and AMQP subscribers.
func InitializeEventSystem(cfg *config.Config) (*EventSystem, error) {
	bus := event.NewMemoryBus()

	publisher, err := newResilientPublisher(bus, cfg, cfg.EventDeadLetterPath)
	if err != nil {
		return nil, err
	}

	sys := &EventSystem{Bus: bus, Publisher: publisher, Hub: sse.NewHub()}
	if err := sys.registerHandlers(cfg); err != nil {
		_ = publisher.Shutdown(context.Background())
		return nil, err
	}
	sys.Hub.Start()

	slog.Info(LogMsgEventSystemInitialized,
		"max_retries", cfg.EventMaxRetries,
		"retry_delay", cfg.EventRetryDelay,
		"deadletter_path", cfg.EventDeadLetterPath)
	return sys, nil
}

func (s *EventSystem) registerHandlers(cfg *config.Config) error {
	if err := metrics.NewEventMetricsCollector().Register(s.Bus); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsCollectorReady)

	sse.NewSubscriber(s.Hub, s.Bus).Subscribe()
	slog.Info(LogMsgSSESubscriberReady)

	if cfg.AMQPURL == "" {
		slog.Info(LogMsgForwardingDisabled)
		return nil
	}

	fwd, err := messaging.Dial(cfg.AMQPURL, cfg.AMQPExchange)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgConnectForwarder, err)
	}

	// Broker failures are retried on a bus of their own so the other
	// subscribers never see an event twice.
	forwardBus := event.NewMemoryBus()
	fwd.Register(forwardBus)
	retry, err := newResilientPublisher(forwardBus, cfg, amqpDeadLetterPath(cfg.EventDeadLetterPath))
	if err != nil {
		_ = fwd.Close()
		return err
	}
	event.SubscribeAll(s.Bus, func(ctx context.Context, evt event.Event) error {
		retry.PublishWithRetry(ctx, evt)
		return nil
	})

	s.forwarder = fwd
	s.forwardRetry = retry
	slog.Info(LogMsgForwarderReady, "exchange", cfg.AMQPExchange)
	return nil
}

// Shutdown drains retries, closes the broker connection and stops the hub
func (s *EventSystem) Shutdown(ctx context.Context) error {
	slog.Info(LogMsgShuttingDownPublisher)
	var errs []error
	if err := s.Publisher.Shutdown(ctx); err != nil {
		errs = append(errs, err)
	}
	if s.forwardRetry != nil {
		if err := s.forwardRetry.Shutdown(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	if s.forwarder != nil {
		if err := s.forwarder.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	s.Hub.Stop()
	return joinErrors(errs)
}

func newResilientPublisher(bus event.Bus, cfg *config.Config, deadLetterPath string) (*event.ResilientPublisher, error) {
	if err := os.MkdirAll(filepath.Dir(deadLetterPath), DirPermission); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgCreateDeadLetterDir, err)
	}
	p, err := event.NewResilientPublisher(bus, cfg.EventMaxRetries, cfg.EventRetryDelay, deadLetterPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgCreateResilientPub, err)
	}
	return p, nil
}

func amqpDeadLetterPath(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + AMQPDeadLetterSuffix + ext
}
