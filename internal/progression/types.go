package progression

import (
	"github.com/osse101/DoughGuardian_Go/internal/domain"
	"github.com/osse101/DoughGuardian_Go/internal/engine"
)

// Progress is a player's state together with the values derived from it
type Progress struct {
	PlayerID            string                  `json:"player_id"`
	State               domain.ProgressionState `json:"state"`
	HarmonyRate         float64                 `json:"harmony_rate"`
	EssenceRate         float64                 `json:"essence_rate"`
	CurrentTier         domain.Tier             `json:"current_tier"`
	NextTier            *domain.Tier            `json:"next_tier,omitempty"`
	HarmonyToNextTier   float64                 `json:"harmony_to_next_tier"`
	NextReward          *domain.Reward          `json:"next_reward,omitempty"`
	HarmonyToNextReward float64                 `json:"harmony_to_next_reward"`
}

// Result is returned by every mutating operation. Events lists what changed,
// including any offline catch-up applied when the player was loaded.
type Result struct {
	Progress
	Events []domain.ProgressEvent `json:"events"`
}

// SaveResult describes a completed save
type SaveResult struct {
	PlayerID string                  `json:"player_id"`
	State    domain.ProgressionState `json:"state"`
}

func buildProgress(playerID string, eng *engine.Engine) Progress {
	state := eng.Snapshot()
	threshold := eng.Catalog().Balance().RewardThreshold

	p := Progress{
		PlayerID:    playerID,
		State:       state,
		HarmonyRate: state.HarmonyRate,
		EssenceRate: state.EssenceRate,
		CurrentTier: eng.CurrentTier(),
	}

	if next, ok := eng.NextTier(); ok {
		p.NextTier = &next
		p.HarmonyToNextTier = positive(next.RequiredHarmony - state.Harmony)
	}
	if reward, ok := eng.NextReward(); ok {
		p.NextReward = &reward
		p.HarmonyToNextReward = positive(threshold - state.Accumulator)
	}
	return p
}

func positive(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
