package handler

import (
	"net/http"

	"golang.org/x/text/language"

	"github.com/osse101/DoughGuardian_Go/internal/domain"
	"github.com/osse101/DoughGuardian_Go/internal/info"
	"github.com/osse101/DoughGuardian_Go/internal/logger"
	"github.com/osse101/DoughGuardian_Go/internal/progression"
)

// TickRequest advances passive production
type TickRequest struct {
	ElapsedSeconds *float64 `json:"elapsed_seconds" validate:"required,min=0"`
}

// InteractRequest credits an arbitrary interaction
type InteractRequest struct {
	Harmony float64 `json:"harmony" validate:"min=0"`
	Essence float64 `json:"essence" validate:"min=0"`
}

// PurchaseRequest buys a dojo upgrade
type PurchaseRequest struct {
	UpgradeID string `json:"upgrade_id" validate:"required,max=64,catalog_id"`
}

// RestoreRequest replaces a player's progress with client-held state.
// Ids the catalog does not know and out-of-range tiers are clamped by the
// engine rather than rejected here.
type RestoreRequest struct {
	Harmony           float64  `json:"harmony" validate:"min=0"`
	Essence           float64  `json:"essence" validate:"min=0"`
	CurrentTierIndex  int      `json:"current_tier_index" validate:"min=0"`
	Accumulator       float64  `json:"accumulator_since_last_reward" validate:"min=0"`
	RewardsCollected  []string `json:"rewards_collected" validate:"max=256,dive,required,max=64,catalog_id"`
	UpgradesPurchased []string `json:"upgrades_purchased" validate:"max=256,dive,required,max=64,catalog_id"`
}

func (r RestoreRequest) state() domain.ProgressionState {
	return domain.ProgressionState{
		Harmony:           r.Harmony,
		Essence:           r.Essence,
		CurrentTierIndex:  r.CurrentTierIndex,
		Accumulator:       r.Accumulator,
		RewardsCollected:  r.RewardsCollected,
		UpgradesPurchased: r.UpgradesPurchased,
	}
}

// SummaryResponse carries a formatted progress summary
type SummaryResponse struct {
	PlayerID string `json:"player_id"`
	Format   string `json:"format"`
	Summary  string `json:"summary"`
}

// ProgressHandlers serves the per-player progression endpoints
type ProgressHandlers struct {
	service   progression.Service
	formatter *info.Formatter
}

// NewProgressHandlers creates progress handlers backed by service
func NewProgressHandlers(service progression.Service) *ProgressHandlers {
	return &ProgressHandlers{
		service:   service,
		formatter: info.NewFormatter(language.English),
	}
}

// HandleGetProgress returns a player's progress, applying offline catch-up on first load
// @Summary Get progress
// @Tags progress
// @Produce json
// @Param playerID path string true "Player ID"
// @Success 200 {object} progression.Result
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/players/{playerID}/progress [get]
func (h *ProgressHandlers) HandleGetProgress() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := h.service.Get(r.Context(), playerIDParam(r))
		if err != nil {
			respondServiceError(w, r, "Get progress", err)
			return
		}
		respondJSON(w, http.StatusOK, result)
	}
}

// HandleGetSummary returns a human-readable summary
// @Summary Get progress summary
// @Tags progress
// @Produce json
// @Param playerID path string true "Player ID"
// @Param format query string false "text or markdown"
// @Success 200 {object} SummaryResponse
// @Router /api/v1/players/{playerID}/summary [get]
func (h *ProgressHandlers) HandleGetSummary() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		format := r.URL.Query().Get(QueryParamFormat)
		switch format {
		case "":
			format = info.FormatText
		case info.FormatText, info.FormatMarkdown:
		default:
			respondError(w, http.StatusBadRequest, "Invalid format query parameter")
			return
		}

		result, err := h.service.Get(r.Context(), playerIDParam(r))
		if err != nil {
			respondServiceError(w, r, "Get summary", err)
			return
		}

		respondJSON(w, http.StatusOK, SummaryResponse{
			PlayerID: result.PlayerID,
			Format:   format,
			Summary:  h.formatter.Summary(result.Progress, h.service.Catalog(), format),
		})
	}
}

// HandleTick advances passive production by elapsed_seconds
// @Summary Advance time
// @Tags progress
// @Accept json
// @Produce json
// @Param playerID path string true "Player ID"
// @Param request body TickRequest true "Elapsed time"
// @Success 200 {object} progression.Result
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/players/{playerID}/tick [post]
func (h *ProgressHandlers) HandleTick() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req TickRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Tick"); err != nil {
			return
		}

		result, err := h.service.Tick(r.Context(), playerIDParam(r), *req.ElapsedSeconds)
		if err != nil {
			respondServiceError(w, r, "Tick", err)
			return
		}
		respondJSON(w, http.StatusOK, result)
	}
}

// HandleInteract credits harmony and essence from an interaction
// @Summary Apply interaction
// @Tags progress
// @Accept json
// @Produce json
// @Param playerID path string true "Player ID"
// @Param request body InteractRequest true "Gains"
// @Success 200 {object} progression.Result
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/players/{playerID}/interact [post]
func (h *ProgressHandlers) HandleInteract() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req InteractRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Interact"); err != nil {
			return
		}

		result, err := h.service.Interact(r.Context(), playerIDParam(r), req.Harmony, req.Essence)
		if err != nil {
			respondServiceError(w, r, "Interact", err)
			return
		}
		respondJSON(w, http.StatusOK, result)
	}
}

// HandleTap applies the catalog's tap gains
// @Summary Tap the dough
// @Tags progress
// @Produce json
// @Param playerID path string true "Player ID"
// @Success 200 {object} progression.Result
// @Router /api/v1/players/{playerID}/tap [post]
func (h *ProgressHandlers) HandleTap() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := h.service.Tap(r.Context(), playerIDParam(r))
		if err != nil {
			respondServiceError(w, r, "Tap", err)
			return
		}
		respondJSON(w, http.StatusOK, result)
	}
}

// HandlePurchase buys an upgrade with essence
// @Summary Purchase upgrade
// @Tags progress
// @Accept json
// @Produce json
// @Param playerID path string true "Player ID"
// @Param request body PurchaseRequest true "Upgrade"
// @Success 200 {object} progression.Result
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /api/v1/players/{playerID}/upgrades [post]
func (h *ProgressHandlers) HandlePurchase() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req PurchaseRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Purchase"); err != nil {
			return
		}

		result, err := h.service.Purchase(r.Context(), playerIDParam(r), req.UpgradeID)
		if err != nil {
			respondServiceError(w, r, "Purchase", err)
			return
		}

		logger.ForPlayer(r.Context(), result.PlayerID).Info(LogMsgUpgradePurchased, "upgrade_id", req.UpgradeID)
		respondJSON(w, http.StatusOK, result)
	}
}

// HandleRestore replaces a player's progress with a client-pushed state
// @Summary Restore progress
// @Tags progress
// @Accept json
// @Produce json
// @Param playerID path string true "Player ID"
// @Param request body RestoreRequest true "Progress state"
// @Success 200 {object} progression.Result
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/players/{playerID}/progress [put]
func (h *ProgressHandlers) HandleRestore() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RestoreRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Restore"); err != nil {
			return
		}

		result, err := h.service.Restore(r.Context(), playerIDParam(r), req.state())
		if err != nil {
			respondServiceError(w, r, "Restore", err)
			return
		}
		respondJSON(w, http.StatusOK, result)
	}
}

// HandleSave persists a player's progress
// @Summary Save progress
// @Tags progress
// @Produce json
// @Param playerID path string true "Player ID"
// @Success 200 {object} progression.SaveResult
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/players/{playerID}/save [post]
func (h *ProgressHandlers) HandleSave() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := h.service.Save(r.Context(), playerIDParam(r))
		if err != nil {
			respondServiceError(w, r, "Save", err)
			return
		}
		respondJSON(w, http.StatusOK, result)
	}
}

// HandleReset deletes a player's progress
// @Summary Reset progress
// @Tags progress
// @Produce json
// @Param playerID path string true "Player ID"
// @Success 200 {object} SuccessResponse
// @Router /api/v1/players/{playerID}/progress [delete]
func (h *ProgressHandlers) HandleReset() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID := playerIDParam(r)
		if err := h.service.Reset(r.Context(), playerID); err != nil {
			respondServiceError(w, r, "Reset", err)
			return
		}

		logger.ForPlayer(r.Context(), playerID).Info(LogMsgProgressReset)
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgProgressReset})
	}
}
