package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/DoughGuardian_Go/internal/domain"
	"github.com/osse101/DoughGuardian_Go/internal/event"
)

type MockChannel struct {
	mock.Mock
}

func (m *MockChannel) ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error {
	return m.Called(name, kind, durable, autoDelete, internal, noWait, args).Error(0)
}

func (m *MockChannel) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error {
	return m.Called(ctx, exchange, key, mandatory, immediate, msg).Error(0)
}

func (m *MockChannel) Close() error {
	return m.Called().Error(0)
}

func TestNewForwarder_DeclaresTopicExchange(t *testing.T) {
	ch := new(MockChannel)
	ch.On("ExchangeDeclare", "custom", "topic", true, false, false, false, amqp.Table(nil)).Return(nil)

	f, err := NewForwarder(ch, "custom")
	require.NoError(t, err)
	assert.Equal(t, "custom", f.exchange)
	ch.AssertExpectations(t)
}

func TestNewForwarder_DefaultExchange(t *testing.T) {
	ch := new(MockChannel)
	ch.On("ExchangeDeclare", DefaultExchange, "topic", true, false, false, false, amqp.Table(nil)).Return(nil)

	f, err := NewForwarder(ch, "")
	require.NoError(t, err)
	assert.Equal(t, DefaultExchange, f.exchange)
}

func TestNewForwarder_DeclareFailureClosesChannel(t *testing.T) {
	ch := new(MockChannel)
	ch.On("ExchangeDeclare", mock.Anything, mock.Anything, mock.Anything, mock.Anything,
		mock.Anything, mock.Anything, mock.Anything).Return(errors.New("access refused"))
	ch.On("Close").Return(nil)

	_, err := NewForwarder(ch, "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "access refused")
	ch.AssertCalled(t, "Close")
}

func TestForwarder_HandlePublishesWithTypeAsRoutingKey(t *testing.T) {
	ch := new(MockChannel)
	ch.On("ExchangeDeclare", mock.Anything, mock.Anything, mock.Anything, mock.Anything,
		mock.Anything, mock.Anything, mock.Anything).Return(nil)

	var published amqp.Publishing
	ch.On("PublishWithContext", mock.Anything, "ex", "reward.issued", false, false, mock.Anything).
		Run(func(args mock.Arguments) {
			published = args.Get(5).(amqp.Publishing)
		}).Return(nil)

	f, err := NewForwarder(ch, "ex")
	require.NoError(t, err)

	evt := event.NewRewardIssuedEvent("alice", domain.Reward{ID: "cookie_1", EssenceYield: 2})
	require.NoError(t, f.Handle(context.Background(), evt))

	assert.Equal(t, ContentTypeJSON, published.ContentType)
	assert.Equal(t, "reward.issued", published.Type)
	assert.Equal(t, amqp.Persistent, published.DeliveryMode)
	assert.NotEmpty(t, published.MessageId)

	var decoded event.Event
	require.NoError(t, json.Unmarshal(published.Body, &decoded))
	assert.Equal(t, event.RewardIssued, decoded.Type)

	payload, err := event.DecodePayload[event.RewardIssuedPayloadV1](decoded.Payload)
	require.NoError(t, err)
	assert.Equal(t, "alice", payload.PlayerID)
	assert.Equal(t, "cookie_1", payload.RewardID)
}

func TestForwarder_HandleReturnsPublishError(t *testing.T) {
	ch := new(MockChannel)
	ch.On("ExchangeDeclare", mock.Anything, mock.Anything, mock.Anything, mock.Anything,
		mock.Anything, mock.Anything, mock.Anything).Return(nil)
	ch.On("PublishWithContext", mock.Anything, mock.Anything, mock.Anything, mock.Anything,
		mock.Anything, mock.Anything).Return(amqp.ErrClosed)

	f, err := NewForwarder(ch, "ex")
	require.NoError(t, err)

	err = f.Handle(context.Background(), event.NewProgressResetEvent("bob"))
	assert.ErrorIs(t, err, amqp.ErrClosed)
}

func TestForwarder_RegisterSubscribesAllTypes(t *testing.T) {
	ch := new(MockChannel)
	ch.On("ExchangeDeclare", mock.Anything, mock.Anything, mock.Anything, mock.Anything,
		mock.Anything, mock.Anything, mock.Anything).Return(nil)
	ch.On("PublishWithContext", mock.Anything, mock.Anything, mock.Anything, mock.Anything,
		mock.Anything, mock.Anything).Return(nil)

	f, err := NewForwarder(ch, "ex")
	require.NoError(t, err)

	bus := event.NewMemoryBus()
	f.Register(bus)

	for _, typ := range event.AllTypes {
		require.NoError(t, bus.Publish(context.Background(), event.Event{Version: "1.0", Type: typ}))
	}
	ch.AssertNumberOfCalls(t, "PublishWithContext", len(event.AllTypes))
}
