package sse

import (
	"context"
	"log/slog"

	"github.com/osse101/DoughGuardian_Go/internal/event"
)

// Subscriber bridges the internal event bus to the SSE hub
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{
		hub: hub,
		bus: bus,
	}
}

// Subscribe registers the bridge for every progression event type
func (s *Subscriber) Subscribe() {
	event.SubscribeAll(s.bus, s.handle)
	slog.Info(LogMsgSubscribed, "types", event.AllTypes)
}

func (s *Subscriber) handle(_ context.Context, evt event.Event) error {
	playerID, payload, err := s.translate(evt)
	if err != nil {
		// Stream delivery is best effort
		slog.Warn(LogMsgPayloadUnreadable, "type", evt.Type, "error", err)
		return nil
	}

	if !s.hub.Broadcast(string(evt.Type), playerID, payload) {
		slog.Warn(LogMsgEventDropped, "type", evt.Type, "player_id", playerID)
		return nil
	}

	slog.Debug(LogMsgEventBroadcast, "event_type", evt.Type, "player_id", playerID)
	return nil
}

// translate converts a bus payload into its stream form and player id
func (s *Subscriber) translate(evt event.Event) (string, interface{}, error) {
	switch evt.Type {
	case event.TierAdvanced:
		p, err := event.DecodePayload[event.TierAdvancedPayloadV1](evt.Payload)
		if err != nil {
			return "", nil, err
		}
		return p.PlayerID, DoughFormPayload{TierID: p.TierID, TierName: p.TierName, TierIndex: p.TierIndex}, nil

	case event.RewardIssued:
		p, err := event.DecodePayload[event.RewardIssuedPayloadV1](evt.Payload)
		if err != nil {
			return "", nil, err
		}
		return p.PlayerID, WisdomCookiePayload{
			RewardID:         p.RewardID,
			Proverb:          p.Proverb,
			MeditationPrompt: p.MeditationPrompt,
			EssenceYield:     p.EssenceYield,
		}, nil

	case event.UpgradePurchased:
		p, err := event.DecodePayload[event.UpgradePurchasedPayloadV1](evt.Payload)
		if err != nil {
			return "", nil, err
		}
		return p.PlayerID, p, nil

	case event.ProgressSaved:
		p, err := event.DecodePayload[event.ProgressSavedPayloadV1](evt.Payload)
		if err != nil {
			return "", nil, err
		}
		return p.PlayerID, p, nil

	case event.ProgressReset:
		p, err := event.DecodePayload[event.ProgressResetPayloadV1](evt.Payload)
		if err != nil {
			return "", nil, err
		}
		return p.PlayerID, p, nil
	}
	return "", evt.Payload, nil
}
