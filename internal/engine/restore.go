package engine

import "github.com/osse101/DoughGuardian_Go/internal/domain"

// Restore replaces the engine state with a copy of s.
//
// Rates in s are ignored and re-derived. Data that no longer fits the catalog
// is clamped instead of rejected: the tier index is pulled into range,
// unknown or repeated upgrades are dropped and the reward list is cut to its
// longest prefix that matches issuance order.
func (e *Engine) Restore(s domain.ProgressionState) {
	state := s.Clone()

	state.Harmony = clampAmount(state.Harmony)
	state.Essence = clampAmount(state.Essence)
	state.Accumulator = clampAmount(state.Accumulator)
	state.CurrentTierIndex = clampIndex(state.CurrentTierIndex, e.catalog.TierCount())
	state.RewardsCollected = e.validRewardPrefix(state.RewardsCollected)

	e.owned = make(map[string]bool, len(state.UpgradesPurchased))
	upgrades := make([]string, 0, len(state.UpgradesPurchased))
	for _, id := range state.UpgradesPurchased {
		if _, ok := e.catalog.Upgrade(id); !ok || e.owned[id] {
			continue
		}
		e.owned[id] = true
		upgrades = append(upgrades, id)
	}
	state.UpgradesPurchased = upgrades

	e.state = state
	e.recomputeRates()
}

func (e *Engine) validRewardPrefix(ids []string) []string {
	n := 0
	for n < len(ids) && n < e.catalog.RewardCount() && ids[n] == e.catalog.Reward(n).ID {
		n++
	}
	return ids[:n]
}

func clampIndex(i, count int) int {
	if i < 0 {
		return 0
	}
	if i > count-1 {
		return count - 1
	}
	return i
}

func clampAmount(v float64) float64 {
	if !validAmount(v) {
		return 0
	}
	return v
}
