package domain

// Tier is one dough form in the ordered progression.
type Tier struct {
	ID              string  `json:"id" yaml:"id"`
	Name            string  `json:"name" yaml:"name"`
	Description     string  `json:"description,omitempty" yaml:"description,omitempty"`
	Order           int     `json:"order" yaml:"order"`
	RequiredHarmony float64 `json:"required_harmony" yaml:"required_harmony"`
}

// Reward is a wisdom cookie. Rewards are issued strictly by IssuanceOrder.
type Reward struct {
	ID               string  `json:"id" yaml:"id"`
	IssuanceOrder    int     `json:"issuance_order" yaml:"issuance_order"`
	EssenceYield     float64 `json:"essence_yield" yaml:"essence_yield"`
	Proverb          string  `json:"proverb,omitempty" yaml:"proverb,omitempty"`
	MeditationPrompt string  `json:"meditation_prompt,omitempty" yaml:"meditation_prompt,omitempty"`
}

// Upgrade is a dojo item bought once with essence.
type Upgrade struct {
	ID           string  `json:"id" yaml:"id"`
	Name         string  `json:"name" yaml:"name"`
	Description  string  `json:"description,omitempty" yaml:"description,omitempty"`
	Cost         float64 `json:"cost" yaml:"cost"`
	HarmonyBoost float64 `json:"harmony_boost" yaml:"harmony_boost"`
	EssenceBoost float64 `json:"essence_boost" yaml:"essence_boost"`
}

// Balance holds the scalar tuning values of a catalog.
type Balance struct {
	BaseHarmonyRate float64 `json:"base_harmony_rate" yaml:"base_harmony_rate"`
	BaseEssenceRate float64 `json:"base_essence_rate" yaml:"base_essence_rate"`
	RewardThreshold float64 `json:"reward_threshold" yaml:"reward_threshold"`
	TapHarmonyGain  float64 `json:"tap_harmony_gain" yaml:"tap_harmony_gain"`
	TapEssenceGain  float64 `json:"tap_essence_gain" yaml:"tap_essence_gain"`
}

// CatalogConfig is the raw, unvalidated catalog as read from disk.
type CatalogConfig struct {
	Version  string    `json:"version" yaml:"version"`
	Balance  Balance   `json:"balance" yaml:"balance"`
	Tiers    []Tier    `json:"tiers" yaml:"tiers"`
	Rewards  []Reward  `json:"rewards" yaml:"rewards"`
	Upgrades []Upgrade `json:"upgrades" yaml:"upgrades"`
}
