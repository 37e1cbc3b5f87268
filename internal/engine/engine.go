package engine

import (
	"fmt"
	"math"
	"time"

	"github.com/osse101/DoughGuardian_Go/internal/catalog"
	"github.com/osse101/DoughGuardian_Go/internal/domain"
)

// Engine is the progression state machine for a single player.
//
// It performs no I/O and holds no locks. Callers that share an Engine between
// goroutines must serialise access themselves.
type Engine struct {
	catalog *catalog.Catalog
	state   domain.ProgressionState
	owned   map[string]bool
}

// New creates an engine at the default starting state
func New(c *catalog.Catalog) *Engine {
	e := &Engine{catalog: c}
	e.Restore(domain.ProgressionState{})
	return e
}

// Catalog returns the catalog the engine runs against
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// Tick accrues passive resources for elapsedSeconds. Large values are valid
// and are how offline time is caught up after a load.
func (e *Engine) Tick(elapsedSeconds float64) ([]domain.ProgressEvent, error) {
	if !validAmount(elapsedSeconds) {
		return nil, fmt.Errorf("%w: elapsed seconds must be non-negative, got %v", domain.ErrInvalidInput, elapsedSeconds)
	}

	harmony := e.state.HarmonyRate * elapsedSeconds
	essence := e.state.EssenceRate * elapsedSeconds
	return e.gain(harmony, essence), nil
}

// ApplyInteraction adds the gains of one discrete player action
func (e *Engine) ApplyInteraction(harmonyGain, essenceGain float64) ([]domain.ProgressEvent, error) {
	if !validAmount(harmonyGain) || !validAmount(essenceGain) {
		return nil, fmt.Errorf("%w: gains must be non-negative, got harmony=%v essence=%v",
			domain.ErrInvalidInput, harmonyGain, essenceGain)
	}
	return e.gain(harmonyGain, essenceGain), nil
}

// PurchaseUpgrade buys the upgrade with the given id. A repeated purchase is
// reported as domain.ErrAlreadyPurchased rather than succeeding silently.
func (e *Engine) PurchaseUpgrade(upgradeID string) ([]domain.ProgressEvent, error) {
	upgrade, ok := e.catalog.Upgrade(upgradeID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUpgradeNotFound, upgradeID)
	}
	if e.owned[upgradeID] {
		return nil, fmt.Errorf("%w: %q", domain.ErrAlreadyPurchased, upgradeID)
	}
	if e.state.Essence < upgrade.Cost {
		return nil, fmt.Errorf("%w: %q costs %v, have %v", domain.ErrInsufficientFunds, upgradeID, upgrade.Cost, e.state.Essence)
	}

	e.state.Essence -= upgrade.Cost
	e.state.UpgradesPurchased = append(e.state.UpgradesPurchased, upgradeID)
	e.owned[upgradeID] = true
	e.recomputeRates()

	return []domain.ProgressEvent{domain.UpgradePurchased(upgradeID)}, nil
}

// Snapshot returns a deep copy of the current state, rates included
func (e *Engine) Snapshot() domain.ProgressionState {
	return e.state.Clone()
}

// MarkSaved records the time of the last successful save
func (e *Engine) MarkSaved(at time.Time) {
	e.state.LastSavedAt = at
}

// gain applies resource deltas then runs the tier and reward checks in that
// order. Both checks loop so a single large delta can cross several
// boundaries.
func (e *Engine) gain(harmony, essence float64) []domain.ProgressEvent {
	e.state.Harmony += harmony
	e.state.Essence += essence
	e.state.Accumulator += harmony

	var events []domain.ProgressEvent
	events = e.advanceTiers(events)
	events = e.issueRewards(events)
	return events
}

func (e *Engine) advanceTiers(events []domain.ProgressEvent) []domain.ProgressEvent {
	for e.state.CurrentTierIndex+1 < e.catalog.TierCount() {
		next := e.catalog.Tier(e.state.CurrentTierIndex + 1)
		if e.state.Harmony < next.RequiredHarmony {
			break
		}
		e.state.CurrentTierIndex++
		events = append(events, domain.TierAdvanced(next.ID))
	}
	return events
}

// issueRewards hands out rewards in catalog order while the accumulator
// covers the threshold. Once every reward is collected the accumulator keeps
// growing without effect.
func (e *Engine) issueRewards(events []domain.ProgressEvent) []domain.ProgressEvent {
	threshold := e.catalog.Balance().RewardThreshold
	for e.state.Accumulator >= threshold && len(e.state.RewardsCollected) < e.catalog.RewardCount() {
		reward := e.catalog.Reward(len(e.state.RewardsCollected))
		e.state.RewardsCollected = append(e.state.RewardsCollected, reward.ID)
		e.state.Essence += reward.EssenceYield
		e.state.Accumulator -= threshold
		events = append(events, domain.RewardIssued(reward.ID))
	}
	return events
}

func validAmount(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}
