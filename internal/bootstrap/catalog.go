package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/DoughGuardian_Go/internal/catalog"
	"github.com/osse101/DoughGuardian_Go/internal/config"
)

// LoadCatalog loads CATALOG_PATH, or the built-in catalog when it is unset.
// A bad catalog is fatal.
func LoadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	if cfg.CatalogPath == "" {
		cat := catalog.Default()
		slog.Info(LogMsgCatalogLoaded, "source", "built-in", "tiers", cat.TierCount(), "rewards", cat.RewardCount())
		return cat, nil
	}

	cat, err := catalog.LoadFile(cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgLoadCatalog, err)
	}
	slog.Info(LogMsgCatalogLoaded,
		"source", cfg.CatalogPath,
		"version", cat.Version(),
		"tiers", cat.TierCount(),
		"rewards", cat.RewardCount(),
		"upgrades", len(cat.Upgrades()))
	return cat, nil
}
