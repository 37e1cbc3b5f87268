package catalog

import "github.com/osse101/DoughGuardian_Go/internal/domain"

// DefaultConfig is the built-in Dough Guardian catalog.
func DefaultConfig() domain.CatalogConfig {
	return domain.CatalogConfig{
		Version: "1",
		Balance: domain.Balance{
			BaseHarmonyRate: 0.1,
			BaseEssenceRate: 0.05,
			RewardThreshold: 100,
			TapHarmonyGain:  1.0,
			TapEssenceGain:  0.5,
		},
		Tiers: []domain.Tier{
			{ID: "humble_ball", Name: "humble ball", Description: "A quiet round of dough, waiting.", Order: 0, RequiredHarmony: 0},
			{ID: "rising_loaf", Name: "rising loaf", Description: "The dough stirs and begins to rise.", Order: 1, RequiredHarmony: 150},
			{ID: "braided_challah", Name: "braided challah", Description: "Three strands woven in patience.", Order: 2, RequiredHarmony: 600},
			{ID: "golden_boule", Name: "golden boule", Description: "A crust of calm, a crumb of light.", Order: 3, RequiredHarmony: 2000},
			{ID: "ancestral_sourdough", Name: "ancestral sourdough", Description: "The mother dough remembers every baker.", Order: 4, RequiredHarmony: 7500},
		},
		Rewards: []domain.Reward{
			{ID: "cookie_patience", IssuanceOrder: 0, EssenceYield: 5, Proverb: "Dough that is rushed will not rise.", MeditationPrompt: "Breathe in for four counts and notice what you are hurrying toward."},
			{ID: "cookie_warmth", IssuanceOrder: 1, EssenceYield: 8, Proverb: "Warm hands make soft bread.", MeditationPrompt: "Rest your palms together and feel their warmth for ten breaths."},
			{ID: "cookie_rest", IssuanceOrder: 2, EssenceYield: 10, Proverb: "Even the yeast must sleep.", MeditationPrompt: "Close your eyes and let your shoulders fall."},
			{ID: "cookie_fold", IssuanceOrder: 3, EssenceYield: 12, Proverb: "Strength is folded in, not forced.", MeditationPrompt: "Recall a difficulty you handled gently."},
			{ID: "cookie_salt", IssuanceOrder: 4, EssenceYield: 15, Proverb: "A pinch of salt, a pinch of humility.", MeditationPrompt: "Name one small thing you are grateful for today."},
			{ID: "cookie_crust", IssuanceOrder: 5, EssenceYield: 20, Proverb: "The crust protects what the crumb nourishes.", MeditationPrompt: "Consider what boundaries keep you well."},
			{ID: "cookie_starter", IssuanceOrder: 6, EssenceYield: 25, Proverb: "Feed the starter and it will feed you.", MeditationPrompt: "Think of someone who taught you, and thank them silently."},
			{ID: "cookie_oven", IssuanceOrder: 7, EssenceYield: 40, Proverb: "The oven does not hurry, and all is baked.", MeditationPrompt: "Sit with the stillness of this moment for one minute."},
		},
		Upgrades: []domain.Upgrade{
			{ID: "bamboo_mat", Name: "bamboo mat", Description: "A steady place to knead.", Cost: 10, HarmonyBoost: 0.1},
			{ID: "stone_lantern", Name: "stone lantern", Description: "Soft light for late proofing.", Cost: 25, EssenceBoost: 0.05},
			{ID: "koi_pond", Name: "koi pond", Description: "Ripples that slow the mind.", Cost: 60, HarmonyBoost: 0.3, EssenceBoost: 0.05},
			{ID: "zen_garden", Name: "zen garden", Description: "Raked sand, raked thoughts.", Cost: 150, HarmonyBoost: 0.6, EssenceBoost: 0.15},
			{ID: "temple_bell", Name: "temple bell", Description: "One clear note each dawn.", Cost: 400, HarmonyBoost: 1.5, EssenceBoost: 0.4},
		},
	}
}

// Default returns the built-in catalog. It panics if the built-in data is
// invalid, which the tests rule out.
func Default() *Catalog {
	c, err := New(DefaultConfig())
	if err != nil {
		panic(err)
	}
	return c
}
