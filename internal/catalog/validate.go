package catalog

import (
	"fmt"
	"math"
	"sort"

	"github.com/osse101/DoughGuardian_Go/internal/domain"
)

// Validate returns a wrapped domain.ErrInvalidCatalog describing the first
// problem found. There is no lenient mode.
func Validate(config *domain.CatalogConfig) error {
	if config == nil {
		return invalid(ErrMsgCatalogNil)
	}

	if err := validateBalance(config.Balance); err != nil {
		return err
	}
	if err := validateTiers(config.Tiers); err != nil {
		return err
	}
	if err := validateRewards(config.Rewards); err != nil {
		return err
	}
	return validateUpgrades(config.Upgrades)
}

func validateBalance(b domain.Balance) error {
	fields := []struct {
		name  string
		value float64
	}{
		{"base_harmony_rate", b.BaseHarmonyRate},
		{"base_essence_rate", b.BaseEssenceRate},
		{"tap_harmony_gain", b.TapHarmonyGain},
		{"tap_essence_gain", b.TapEssenceGain},
	}
	for _, f := range fields {
		if !validAmount(f.value) {
			return invalid(ErrMsgNotFinite, f.name, f.value)
		}
	}

	if !validAmount(b.RewardThreshold) || b.RewardThreshold == 0 {
		return invalid(ErrMsgRewardThreshold, b.RewardThreshold)
	}
	return nil
}

func validateTiers(tiers []domain.Tier) error {
	if len(tiers) == 0 {
		return invalid(ErrMsgNoTiers)
	}

	seen := make(map[string]bool, len(tiers))
	for i, tier := range tiers {
		if tier.ID == "" {
			return invalid(ErrMsgEmptyID, entityTier, i)
		}
		if seen[tier.ID] {
			return invalid(ErrMsgDuplicateID, entityTier, tier.ID)
		}
		seen[tier.ID] = true

		if !validAmount(tier.RequiredHarmony) {
			return invalid(ErrMsgNotFinite, "tier "+tier.ID+" required_harmony", tier.RequiredHarmony)
		}

		if i == 0 {
			if tier.Order != 0 {
				return invalid(ErrMsgTierOrderStart, tier.Order)
			}
			if tier.RequiredHarmony != 0 {
				return invalid(ErrMsgFirstTierThreshold, tier.RequiredHarmony)
			}
			continue
		}

		prev := tiers[i-1]
		if tier.Order <= prev.Order {
			return invalid(ErrMsgTierOrder, tier.ID, tier.Order, prev.Order)
		}
		if tier.RequiredHarmony <= prev.RequiredHarmony {
			return invalid(ErrMsgTierThreshold, tier.ID, tier.RequiredHarmony, prev.RequiredHarmony)
		}
	}
	return nil
}

func validateRewards(rewards []domain.Reward) error {
	seen := make(map[string]bool, len(rewards))
	orders := make([]int, 0, len(rewards))

	for i, reward := range rewards {
		if reward.ID == "" {
			return invalid(ErrMsgEmptyID, entityReward, i)
		}
		if seen[reward.ID] {
			return invalid(ErrMsgDuplicateID, entityReward, reward.ID)
		}
		seen[reward.ID] = true

		if !validAmount(reward.EssenceYield) {
			return invalid(ErrMsgNotFinite, "reward "+reward.ID+" essence_yield", reward.EssenceYield)
		}
		orders = append(orders, reward.IssuanceOrder)
	}

	sort.Ints(orders)
	for want, got := range orders {
		if got != want {
			return invalid(ErrMsgIssuanceOrder, fmt.Sprintf("expected %d, found %d", want, got))
		}
	}
	return nil
}

func validateUpgrades(upgrades []domain.Upgrade) error {
	seen := make(map[string]bool, len(upgrades))
	for i, upgrade := range upgrades {
		if upgrade.ID == "" {
			return invalid(ErrMsgEmptyID, entityUpgrade, i)
		}
		if seen[upgrade.ID] {
			return invalid(ErrMsgDuplicateID, entityUpgrade, upgrade.ID)
		}
		seen[upgrade.ID] = true

		for name, value := range map[string]float64{
			"cost":          upgrade.Cost,
			"harmony_boost": upgrade.HarmonyBoost,
			"essence_boost": upgrade.EssenceBoost,
		} {
			if !validAmount(value) {
				return invalid(ErrMsgNotFinite, "upgrade "+upgrade.ID+" "+name, value)
			}
		}
	}
	return nil
}

func validAmount(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", domain.ErrInvalidCatalog, fmt.Sprintf(format, args...))
}
