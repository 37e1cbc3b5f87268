package progression

import (
	"context"

	"github.com/osse101/DoughGuardian_Go/internal/catalog"
	"github.com/osse101/DoughGuardian_Go/internal/domain"
	"github.com/osse101/DoughGuardian_Go/internal/event"
	"github.com/osse101/DoughGuardian_Go/internal/logger"
)

// toBusEvent enriches an engine event with catalog data for subscribers
func toBusEvent(cat *catalog.Catalog, playerID string, pe domain.ProgressEvent, harmonyRate, essenceRate float64) (event.Event, bool) {
	switch pe.Type {
	case domain.EventTypeTierAdvanced:
		idx, ok := cat.TierIndex(pe.TierID)
		if !ok {
			return event.Event{}, false
		}
		return event.NewTierAdvancedEvent(playerID, cat.Tier(idx), idx), true

	case domain.EventTypeRewardIssued:
		reward, ok := cat.RewardByID(pe.RewardID)
		if !ok {
			return event.Event{}, false
		}
		return event.NewRewardIssuedEvent(playerID, reward), true

	case domain.EventTypeUpgradePurchased:
		upgrade, ok := cat.Upgrade(pe.UpgradeID)
		if !ok {
			return event.Event{}, false
		}
		return event.NewUpgradePurchasedEvent(playerID, upgrade, harmonyRate, essenceRate), true
	}
	return event.Event{}, false
}

// publish sends engine events to the bus. Publishing never fails the
// operation that produced the events.
func (s *service) publish(ctx context.Context, playerID, source string, sess *session, events []domain.ProgressEvent) {
	if len(events) == 0 {
		return
	}

	harmonyRate, essenceRate := sess.engine.Rates()
	for _, pe := range events {
		evt, ok := toBusEvent(s.catalog, playerID, pe, harmonyRate, essenceRate)
		if !ok {
			logger.FromContext(ctx).Warn(LogMsgUnknownEventRef, "type", pe.Type)
			continue
		}
		s.emit(ctx, evt, source)
	}
}

func (s *service) emit(ctx context.Context, evt event.Event, source string) {
	evt.Metadata = event.Metadata{MetadataKeySource: source}
	if requestID := logger.GetRequestID(ctx); requestID != "" {
		evt.Metadata[MetadataKeyRequestID] = requestID
	}

	if err := s.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "type", evt.Type, "error", err)
	}
}
