package catalog

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/DoughGuardian_Go/internal/domain"
)

func baseConfig() domain.CatalogConfig {
	return domain.CatalogConfig{
		Balance: domain.Balance{RewardThreshold: 50},
		Tiers: []domain.Tier{
			{ID: "t0", Order: 0, RequiredHarmony: 0},
			{ID: "t1", Order: 1, RequiredHarmony: 100},
			{ID: "t2", Order: 2, RequiredHarmony: 250},
		},
		Rewards: []domain.Reward{
			{ID: "r0", IssuanceOrder: 0},
			{ID: "r1", IssuanceOrder: 1},
		},
		Upgrades: []domain.Upgrade{
			{ID: "u0", Cost: 100, HarmonyBoost: 1},
		},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *domain.CatalogConfig)
		wantMsg string
	}{
		{"valid", func(c *domain.CatalogConfig) {}, ""},
		{"no tiers", func(c *domain.CatalogConfig) { c.Tiers = nil }, "no tiers defined"},
		{"first threshold not zero", func(c *domain.CatalogConfig) { c.Tiers[0].RequiredHarmony = 5 }, "first tier must require 0"},
		{"first order not zero", func(c *domain.CatalogConfig) { c.Tiers[0].Order = 1; c.Tiers[1].Order = 2; c.Tiers[2].Order = 3 }, "first tier must have order 0"},
		{"order not increasing", func(c *domain.CatalogConfig) { c.Tiers[2].Order = 1 }, "does not follow"},
		{"threshold equal", func(c *domain.CatalogConfig) { c.Tiers[2].RequiredHarmony = 100 }, "does not exceed"},
		{"threshold decreasing", func(c *domain.CatalogConfig) { c.Tiers[2].RequiredHarmony = 50 }, "does not exceed"},
		{"duplicate tier id", func(c *domain.CatalogConfig) { c.Tiers[1].ID = "t0" }, "duplicate tier id"},
		{"empty tier id", func(c *domain.CatalogConfig) { c.Tiers[1].ID = "" }, "empty id"},
		{"duplicate reward id", func(c *domain.CatalogConfig) { c.Rewards[1].ID = "r0" }, "duplicate reward id"},
		{"issuance gap", func(c *domain.CatalogConfig) { c.Rewards[1].IssuanceOrder = 2 }, "0-based permutation"},
		{"issuance duplicate", func(c *domain.CatalogConfig) { c.Rewards[1].IssuanceOrder = 0 }, "0-based permutation"},
		{"issuance not from zero", func(c *domain.CatalogConfig) { c.Rewards[0].IssuanceOrder = 2 }, "0-based permutation"},
		{"duplicate upgrade id", func(c *domain.CatalogConfig) { c.Upgrades = append(c.Upgrades, domain.Upgrade{ID: "u0"}) }, "duplicate upgrade id"},
		{"negative cost", func(c *domain.CatalogConfig) { c.Upgrades[0].Cost = -1 }, "upgrade u0 cost"},
		{"NaN boost", func(c *domain.CatalogConfig) { c.Upgrades[0].EssenceBoost = math.NaN() }, "essence_boost"},
		{"zero reward threshold", func(c *domain.CatalogConfig) { c.Balance.RewardThreshold = 0 }, "reward threshold must be positive"},
		{"infinite base rate", func(c *domain.CatalogConfig) { c.Balance.BaseHarmonyRate = math.Inf(1) }, "base_harmony_rate"},
		{"no rewards is allowed", func(c *domain.CatalogConfig) { c.Rewards = nil }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := baseConfig()
			tt.mutate(&cfg)

			err := Validate(&cfg)
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidCatalog)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestValidate_Nil(t *testing.T) {
	err := Validate(nil)
	assert.ErrorIs(t, err, domain.ErrInvalidCatalog)
}

func TestDefault_IsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, Validate(&cfg))

	c := Default()
	assert.Equal(t, 0.0, c.Tier(0).RequiredHarmony)
	assert.InDelta(t, 100.0, c.Balance().RewardThreshold, 1e-9)
	assert.InDelta(t, 0.1, c.Balance().BaseHarmonyRate, 1e-9)
	assert.InDelta(t, 0.05, c.Balance().BaseEssenceRate, 1e-9)
}

func TestCatalog_AccessorsReturnCopies(t *testing.T) {
	c, err := New(baseConfig())
	require.NoError(t, err)

	tiers := c.Tiers()
	tiers[0].ID = "mutated"
	assert.Equal(t, "t0", c.Tier(0).ID)

	u, ok := c.Upgrade("u0")
	require.True(t, ok)
	assert.InDelta(t, 100.0, u.Cost, 1e-9)

	_, ok = c.Upgrade("missing")
	assert.False(t, ok)
}

func TestCatalog_LookupsByID(t *testing.T) {
	c := Default()

	i, ok := c.TierIndex("braided_challah")
	require.True(t, ok)
	assert.Equal(t, 2, i)

	_, ok = c.TierIndex("baguette")
	assert.False(t, ok)

	r, ok := c.RewardByID("cookie_salt")
	require.True(t, ok)
	assert.Equal(t, 4, r.IssuanceOrder)

	_, ok = c.RewardByID("cookie_missing")
	assert.False(t, ok)
}
