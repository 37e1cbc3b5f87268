package event

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/osse101/DoughGuardian_Go/internal/logger"
)

var errShutdown = errors.New("publisher shut down")

type retryItem struct {
	event   Event
	attempt int
	lastErr error
}

// ResilientPublisher wraps a Bus with asynchronous retries. The first attempt
// is synchronous; failures are retried in the background with exponential
// backoff and written to a dead-letter file once retries are exhausted.
type ResilientPublisher struct {
	inner      Bus
	maxRetries int
	baseDelay  time.Duration
	deadLetter *DeadLetterWriter

	queue    chan retryItem
	shutdown chan struct{}
	once     sync.Once
	wg       sync.WaitGroup
}

// NewResilientPublisher creates a publisher and starts its retry worker
func NewResilientPublisher(inner Bus, maxRetries int, baseDelay time.Duration, deadLetterPath string) (*ResilientPublisher, error) {
	dlw, err := NewDeadLetterWriter(deadLetterPath)
	if err != nil {
		return nil, err
	}

	p := &ResilientPublisher{
		inner:      inner,
		maxRetries: maxRetries,
		baseDelay:  baseDelay,
		deadLetter: dlw,
		queue:      make(chan retryItem, RetryQueueBufferSize),
		shutdown:   make(chan struct{}),
	}

	p.wg.Add(1)
	go p.retryWorker()
	return p, nil
}

// PublishWithRetry publishes the event, queueing it for retry on failure.
// It never blocks on the retry path.
func (p *ResilientPublisher) PublishWithRetry(ctx context.Context, evt Event) {
	err := p.inner.Publish(ctx, evt)
	if err == nil {
		return
	}

	logger.FromContext(ctx).Warn(LogMsgEventPublishFailed, "event_type", evt.Type, "error", err)
	p.enqueue(retryItem{event: evt, attempt: 1, lastErr: err})
}

// Publish satisfies Bus. Delivery failures are handled by the retry path.
func (p *ResilientPublisher) Publish(ctx context.Context, evt Event) error {
	p.PublishWithRetry(ctx, evt)
	return nil
}

// Subscribe delegates to the inner bus
func (p *ResilientPublisher) Subscribe(eventType Type, handler Handler) {
	p.inner.Subscribe(eventType, handler)
}

func (p *ResilientPublisher) enqueue(item retryItem) {
	select {
	case <-p.shutdown:
		p.writeDeadLetter(item.event, item.attempt, errShutdown, LogMsgEventDroppedShutdown)
		return
	default:
	}

	select {
	case p.queue <- item:
	default:
		p.writeDeadLetter(item.event, item.attempt, item.lastErr, LogMsgRetryQueueFull)
	}
}

func (p *ResilientPublisher) retryWorker() {
	defer p.wg.Done()

	for {
		select {
		case <-p.shutdown:
			return
		case item := <-p.queue:
			p.retry(item)
		}
	}
}

func (p *ResilientPublisher) retry(item retryItem) {
	timer := time.NewTimer(CalculateRetryDelay(p.baseDelay, item.attempt))
	defer timer.Stop()

	select {
	case <-p.shutdown:
		p.writeDeadLetter(item.event, item.attempt, errShutdown, LogMsgEventDroppedShutdown)
		return
	case <-timer.C:
	}

	log := logger.FromContext(context.Background())
	err := p.inner.Publish(context.Background(), item.event)
	if err == nil {
		log.Info(LogMsgEventRetrySucceeded, "event_type", item.event.Type, "attempt", item.attempt)
		return
	}

	if item.attempt >= p.maxRetries {
		p.writeDeadLetter(item.event, item.attempt, err, LogMsgEventRetryExhausted)
		return
	}

	log.Warn(LogMsgEventRetryFailed, "event_type", item.event.Type, "attempt", item.attempt, "error", err)
	p.enqueue(retryItem{event: item.event, attempt: item.attempt + 1, lastErr: err})
}

func (p *ResilientPublisher) writeDeadLetter(evt Event, attempts int, lastErr error, reason string) {
	log := logger.FromContext(context.Background())
	log.Warn(reason, "event_type", evt.Type, "attempts", attempts)
	if err := p.deadLetter.Write(evt, attempts, lastErr); err != nil {
		log.Error(LogMsgDeadLetterWriteFailed, "event_type", evt.Type, "error", err)
	}
}

// Shutdown stops the retry worker and dead-letters anything still queued
func (p *ResilientPublisher) Shutdown(ctx context.Context) error {
	p.once.Do(func() { close(p.shutdown) })

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		logger.FromContext(ctx).Warn(LogMsgShutdownTimeout)
		return ctx.Err()
	}

	for {
		select {
		case item := <-p.queue:
			p.writeDeadLetter(item.event, item.attempt, errShutdown, LogMsgEventDroppedShutdown)
		default:
			return p.deadLetter.Close()
		}
	}
}
