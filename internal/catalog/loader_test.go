package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/DoughGuardian_Go/internal/domain"
)

const validJSON = `{
	"version": "2",
	"balance": {"base_harmony_rate": 0.1, "base_essence_rate": 0.05, "reward_threshold": 50, "tap_harmony_gain": 1, "tap_essence_gain": 0.5},
	"tiers": [
		{"id": "ball", "name": "ball", "order": 0, "required_harmony": 0},
		{"id": "loaf", "name": "loaf", "order": 1, "required_harmony": 100}
	],
	"rewards": [
		{"id": "second", "issuance_order": 1, "essence_yield": 2},
		{"id": "first", "issuance_order": 0, "essence_yield": 1, "proverb": "slow is smooth"}
	],
	"upgrades": [{"id": "mat", "name": "mat", "cost": 10, "harmony_boost": 0.5}]
}`

const validYAML = `
version: "3"
balance:
  base_harmony_rate: 1
  base_essence_rate: 0
  reward_threshold: 10
tiers:
  - id: ball
    order: 0
    required_harmony: 0
  - id: loaf
    order: 1
    required_harmony: 20
rewards:
  - id: only
    issuance_order: 0
    essence_yield: 3
upgrades: []
`

func createTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoader_Load(t *testing.T) {
	loader := NewLoader()

	t.Run("valid JSON file", func(t *testing.T) {
		config, err := loader.Load(createTempFile(t, "catalog.json", validJSON))
		require.NoError(t, err)
		assert.Equal(t, "2", config.Version)
		assert.Len(t, config.Tiers, 2)
		assert.Len(t, config.Rewards, 2)
		assert.Equal(t, "slow is smooth", config.Rewards[1].Proverb)
		assert.InDelta(t, 0.5, config.Upgrades[0].HarmonyBoost, 1e-9)
	})

	t.Run("valid YAML file", func(t *testing.T) {
		config, err := loader.Load(createTempFile(t, "catalog.yaml", validYAML))
		require.NoError(t, err)
		assert.Equal(t, "3", config.Version)
		assert.InDelta(t, 20.0, config.Tiers[1].RequiredHarmony, 1e-9)
		assert.Empty(t, config.Upgrades)
	})

	t.Run("file not found", func(t *testing.T) {
		_, err := loader.Load("/nonexistent/catalog.json")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read catalog file")
	})

	t.Run("schema violation", func(t *testing.T) {
		_, err := loader.Load(createTempFile(t, "catalog.json", `{"balance": {}, "tiers": [], "rewards": [], "upgrades": []}`))
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidCatalog)
	})

	t.Run("invalid YAML", func(t *testing.T) {
		_, err := loader.Load(createTempFile(t, "catalog.yml", "tiers: [unclosed"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse catalog file")
	})

	t.Run("unsupported extension", func(t *testing.T) {
		_, err := loader.Load(createTempFile(t, "catalog.toml", "x = 1"))
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidCatalog)
	})
}

func TestLoadFile(t *testing.T) {
	t.Run("empty path uses built-in catalog", func(t *testing.T) {
		c, err := LoadFile("")
		require.NoError(t, err)
		assert.Equal(t, len(DefaultConfig().Tiers), c.TierCount())
	})

	t.Run("rewards are ordered by issuance", func(t *testing.T) {
		c, err := LoadFile(createTempFile(t, "catalog.json", validJSON))
		require.NoError(t, err)
		assert.Equal(t, "first", c.Reward(0).ID)
		assert.Equal(t, "second", c.Reward(1).ID)
	})

	t.Run("semantic error is fatal", func(t *testing.T) {
		bad := `{
			"balance": {"base_harmony_rate": 0, "base_essence_rate": 0, "reward_threshold": 1},
			"tiers": [{"id": "a", "order": 0, "required_harmony": 0}, {"id": "a", "order": 1, "required_harmony": 5}],
			"rewards": [], "upgrades": []
		}`
		_, err := LoadFile(createTempFile(t, "catalog.json", bad))
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidCatalog)
		assert.Contains(t, err.Error(), "duplicate tier id")
	})
}
