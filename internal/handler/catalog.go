package handler

import (
	"net/http"

	"github.com/osse101/DoughGuardian_Go/internal/catalog"
	"github.com/osse101/DoughGuardian_Go/internal/domain"
)

// CatalogResponse exposes the balance data clients need to render the game
type CatalogResponse struct {
	Version  string           `json:"version,omitempty"`
	Balance  domain.Balance   `json:"balance"`
	Tiers    []domain.Tier    `json:"tiers"`
	Rewards  []domain.Reward  `json:"rewards"`
	Upgrades []domain.Upgrade `json:"upgrades"`
}

// HandleGetCatalog returns the loaded catalog
// @Summary Get catalog
// @Tags catalog
// @Produce json
// @Success 200 {object} CatalogResponse
// @Router /api/v1/catalog [get]
func HandleGetCatalog(cat *catalog.Catalog) http.HandlerFunc {
	cfg := cat.Config()
	resp := CatalogResponse{
		Version:  cfg.Version,
		Balance:  cfg.Balance,
		Tiers:    cfg.Tiers,
		Rewards:  cfg.Rewards,
		Upgrades: cfg.Upgrades,
	}
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, resp)
	}
}
