package metrics

import (
	"context"
	"errors"

	"github.com/osse101/DoughGuardian_Go/internal/domain"
	"github.com/osse101/DoughGuardian_Go/internal/event"
	"github.com/osse101/DoughGuardian_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all progression events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	event.SubscribeAll(bus, e.HandleEvent)
	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	var err error
	switch evt.Type {
	case event.TierAdvanced:
		var p event.TierAdvancedPayloadV1
		if p, err = event.DecodePayload[event.TierAdvancedPayloadV1](evt.Payload); err == nil {
			TiersAdvanced.WithLabelValues(p.TierID).Inc()
		}

	case event.RewardIssued:
		var p event.RewardIssuedPayloadV1
		if p, err = event.DecodePayload[event.RewardIssuedPayloadV1](evt.Payload); err == nil {
			RewardsIssued.Inc()
			EssenceFromRewards.Add(p.EssenceYield)
		}

	case event.UpgradePurchased:
		var p event.UpgradePurchasedPayloadV1
		if p, err = event.DecodePayload[event.UpgradePurchasedPayloadV1](evt.Payload); err == nil {
			UpgradesPurchased.WithLabelValues(p.UpgradeID).Inc()
			HarmonySpent.Add(p.Cost)
		}

	case event.ProgressSaved:
		var p event.ProgressSavedPayloadV1
		if p, err = event.DecodePayload[event.ProgressSavedPayloadV1](evt.Payload); err == nil {
			ProgressSaves.WithLabelValues(p.Reason).Inc()
		}

	case event.ProgressReset:
		ProgressResets.Inc()
	}

	if err != nil {
		log.Debug(LogMsgEventPayloadUnreadable, "type", evt.Type, "error", err)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}

// RecordPurchaseFailure counts a rejected purchase by its cause
func RecordPurchaseFailure(err error) {
	reason := PurchaseFailureOther
	switch {
	case errors.Is(err, domain.ErrUpgradeNotFound):
		reason = PurchaseFailureNotFound
	case errors.Is(err, domain.ErrAlreadyPurchased):
		reason = PurchaseFailureAlreadyPurchased
	case errors.Is(err, domain.ErrInsufficientFunds):
		reason = PurchaseFailureInsufficientFunds
	}
	PurchaseFailures.WithLabelValues(reason).Inc()
}
