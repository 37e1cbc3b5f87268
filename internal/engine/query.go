package engine

import "github.com/osse101/DoughGuardian_Go/internal/domain"

// CurrentTier returns the tier the player is in
func (e *Engine) CurrentTier() domain.Tier {
	return e.catalog.Tier(e.state.CurrentTierIndex)
}

// NextTier returns the following tier, or false at the final tier
func (e *Engine) NextTier() (domain.Tier, bool) {
	next := e.state.CurrentTierIndex + 1
	if next >= e.catalog.TierCount() {
		return domain.Tier{}, false
	}
	return e.catalog.Tier(next), true
}

// NextReward returns the reward the next threshold crossing will issue,
// or false once every reward has been collected
func (e *Engine) NextReward() (domain.Reward, bool) {
	n := len(e.state.RewardsCollected)
	if n >= e.catalog.RewardCount() {
		return domain.Reward{}, false
	}
	return e.catalog.Reward(n), true
}
