package domain

import "time"

// ProgressionState is the persisted save data of one player.
//
// HarmonyRate and EssenceRate are derived from UpgradesPurchased and the
// catalog. They are filled in by snapshots but never persisted.
type ProgressionState struct {
	Harmony           float64   `json:"harmony"`
	Essence           float64   `json:"essence"`
	CurrentTierIndex  int       `json:"current_tier_index"`
	Accumulator       float64   `json:"accumulator_since_last_reward"`
	RewardsCollected  []string  `json:"rewards_collected"`
	UpgradesPurchased []string  `json:"upgrades_purchased"`
	LastSavedAt       time.Time `json:"last_saved_at"`

	HarmonyRate float64 `json:"-"`
	EssenceRate float64 `json:"-"`
}

// Clone returns a deep copy so callers never share slices with the owner.
func (s ProgressionState) Clone() ProgressionState {
	out := s
	out.RewardsCollected = append(make([]string, 0, len(s.RewardsCollected)), s.RewardsCollected...)
	out.UpgradesPurchased = append(make([]string, 0, len(s.UpgradesPurchased)), s.UpgradesPurchased...)
	return out
}
