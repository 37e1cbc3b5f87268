package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/DoughGuardian_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata carries optional context such as the request id or the source
type Metadata map[string]interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata,omitempty"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if e.Metadata == nil {
		return nil
	}
	return e.Metadata[key]
}

// Progression event types, shared with the engine's event names
const (
	TierAdvanced     = Type(domain.EventTypeTierAdvanced)
	RewardIssued     = Type(domain.EventTypeRewardIssued)
	UpgradePurchased = Type(domain.EventTypeUpgradePurchased)
	ProgressSaved    = Type(domain.EventTypeProgressSaved)
	ProgressReset    = Type(domain.EventTypeProgressReset)
)

// AllTypes lists every event type the service publishes
var AllTypes = []Type{TierAdvanced, RewardIssued, UpgradePurchased, ProgressSaved, ProgressReset}

// TierAdvancedPayloadV1 is the typed payload for tier advance events
type TierAdvancedPayloadV1 struct {
	PlayerID  string `json:"player_id"`
	TierID    string `json:"tier_id"`
	TierName  string `json:"tier_name"`
	TierIndex int    `json:"tier_index"`
	Timestamp int64  `json:"timestamp"`
}

// RewardIssuedPayloadV1 is the typed payload for reward events
type RewardIssuedPayloadV1 struct {
	PlayerID         string  `json:"player_id"`
	RewardID         string  `json:"reward_id"`
	EssenceYield     float64 `json:"essence_yield"`
	Proverb          string  `json:"proverb,omitempty"`
	MeditationPrompt string  `json:"meditation_prompt,omitempty"`
	Timestamp        int64   `json:"timestamp"`
}

// UpgradePurchasedPayloadV1 is the typed payload for purchase events
type UpgradePurchasedPayloadV1 struct {
	PlayerID    string  `json:"player_id"`
	UpgradeID   string  `json:"upgrade_id"`
	Cost        float64 `json:"cost"`
	HarmonyRate float64 `json:"harmony_rate"`
	EssenceRate float64 `json:"essence_rate"`
	Timestamp   int64   `json:"timestamp"`
}

// ProgressSavedPayloadV1 is the typed payload for save events
type ProgressSavedPayloadV1 struct {
	PlayerID string    `json:"player_id"`
	SavedAt  time.Time `json:"saved_at"`
	Reason   string    `json:"reason"`
}

// ProgressResetPayloadV1 is the typed payload for reset events
type ProgressResetPayloadV1 struct {
	PlayerID  string `json:"player_id"`
	Timestamp int64  `json:"timestamp"`
}

// NewTierAdvancedEvent creates a tier advance event
func NewTierAdvancedEvent(playerID string, tier domain.Tier, index int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    TierAdvanced,
		Payload: TierAdvancedPayloadV1{
			PlayerID:  playerID,
			TierID:    tier.ID,
			TierName:  tier.Name,
			TierIndex: index,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewRewardIssuedEvent creates a reward event
func NewRewardIssuedEvent(playerID string, reward domain.Reward) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    RewardIssued,
		Payload: RewardIssuedPayloadV1{
			PlayerID:         playerID,
			RewardID:         reward.ID,
			EssenceYield:     reward.EssenceYield,
			Proverb:          reward.Proverb,
			MeditationPrompt: reward.MeditationPrompt,
			Timestamp:        time.Now().Unix(),
		},
	}
}

// NewUpgradePurchasedEvent creates a purchase event carrying the new rates
func NewUpgradePurchasedEvent(playerID string, upgrade domain.Upgrade, harmonyRate, essenceRate float64) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    UpgradePurchased,
		Payload: UpgradePurchasedPayloadV1{
			PlayerID:    playerID,
			UpgradeID:   upgrade.ID,
			Cost:        upgrade.Cost,
			HarmonyRate: harmonyRate,
			EssenceRate: essenceRate,
			Timestamp:   time.Now().Unix(),
		},
	}
}

// NewProgressSavedEvent creates a save event
func NewProgressSavedEvent(playerID string, savedAt time.Time, reason string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ProgressSaved,
		Payload: ProgressSavedPayloadV1{
			PlayerID: playerID,
			SavedAt:  savedAt,
			Reason:   reason,
		},
	}
}

// NewProgressResetEvent creates a reset event
func NewProgressResetEvent(playerID string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ProgressReset,
		Payload: ProgressResetPayloadV1{
			PlayerID:  playerID,
			Timestamp: time.Now().Unix(),
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus.
// Handlers run synchronously in subscription order.
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := b.handlers[event.Type]
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}
	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// SubscribeAll subscribes a handler to every progression event type
func SubscribeAll(bus Bus, handler Handler) {
	for _, t := range AllTypes {
		bus.Subscribe(t, handler)
	}
}
