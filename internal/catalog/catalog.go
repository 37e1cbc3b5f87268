package catalog

import (
	"sort"

	"github.com/osse101/DoughGuardian_Go/internal/domain"
)

// Catalog is the validated, read-only game balance data.
// Accessors return copies so callers cannot mutate it.
type Catalog struct {
	version  string
	balance  domain.Balance
	tiers    []domain.Tier
	rewards  []domain.Reward // sorted by IssuanceOrder
	upgrades []domain.Upgrade
	byID     map[string]int // upgrade id -> index
	tierIdx  map[string]int
	rewardIx map[string]int // reward id -> issuance position
}

// New validates config and builds a Catalog from it
func New(config domain.CatalogConfig) (*Catalog, error) {
	if err := Validate(&config); err != nil {
		return nil, err
	}

	rewards := append([]domain.Reward(nil), config.Rewards...)
	sort.Slice(rewards, func(i, j int) bool {
		return rewards[i].IssuanceOrder < rewards[j].IssuanceOrder
	})

	c := &Catalog{
		version:  config.Version,
		balance:  config.Balance,
		tiers:    append([]domain.Tier(nil), config.Tiers...),
		rewards:  rewards,
		upgrades: append([]domain.Upgrade(nil), config.Upgrades...),
		byID:     make(map[string]int, len(config.Upgrades)),
		tierIdx:  make(map[string]int, len(config.Tiers)),
		rewardIx: make(map[string]int, len(rewards)),
	}
	for i, u := range c.upgrades {
		c.byID[u.ID] = i
	}
	for i, t := range c.tiers {
		c.tierIdx[t.ID] = i
	}
	for i, r := range c.rewards {
		c.rewardIx[r.ID] = i
	}
	return c, nil
}

func (c *Catalog) Version() string         { return c.version }
func (c *Catalog) Balance() domain.Balance { return c.balance }
func (c *Catalog) TierCount() int          { return len(c.tiers) }
func (c *Catalog) RewardCount() int        { return len(c.rewards) }

// Tier returns the tier at index i. i must be in [0, TierCount()).
func (c *Catalog) Tier(i int) domain.Tier {
	return c.tiers[i]
}

// Reward returns the reward issued at position i of the issuance order.
func (c *Catalog) Reward(i int) domain.Reward {
	return c.rewards[i]
}

func (c *Catalog) Tiers() []domain.Tier {
	return append([]domain.Tier(nil), c.tiers...)
}

// Rewards returns rewards in issuance order
func (c *Catalog) Rewards() []domain.Reward {
	return append([]domain.Reward(nil), c.rewards...)
}

func (c *Catalog) Upgrades() []domain.Upgrade {
	return append([]domain.Upgrade(nil), c.upgrades...)
}

// Upgrade looks up an upgrade by id
func (c *Catalog) Upgrade(id string) (domain.Upgrade, bool) {
	i, ok := c.byID[id]
	if !ok {
		return domain.Upgrade{}, false
	}
	return c.upgrades[i], true
}

// TierIndex returns the position of the tier with the given id
func (c *Catalog) TierIndex(id string) (int, bool) {
	i, ok := c.tierIdx[id]
	return i, ok
}

// RewardByID looks up a reward by id
func (c *Catalog) RewardByID(id string) (domain.Reward, bool) {
	i, ok := c.rewardIx[id]
	if !ok {
		return domain.Reward{}, false
	}
	return c.rewards[i], true
}

// Config returns the catalog in its serialisable form
func (c *Catalog) Config() domain.CatalogConfig {
	return domain.CatalogConfig{
		Version:  c.version,
		Balance:  c.balance,
		Tiers:    c.Tiers(),
		Rewards:  c.Rewards(),
		Upgrades: c.Upgrades(),
	}
}
