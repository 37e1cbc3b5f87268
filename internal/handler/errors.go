package handler

import (
	"errors"
	"net/http"

	"github.com/osse101/DoughGuardian_Go/internal/domain"
	"github.com/osse101/DoughGuardian_Go/internal/logger"
)

// Generic HTTP error messages for client responses.
// Handlers and tests reference these constants; internal error details are never exposed.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInvalidQueryParam     = "Invalid %s query parameter"
)

// User-facing messages derived from domain errors
const (
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgInvalidInputError   = "Amounts and elapsed time must be finite and non-negative"
	ErrMsgInvalidPlayerError  = "Invalid player id"
	ErrMsgUpgradeNotFoundErr  = "Upgrade not found"
	ErrMsgAlreadyPurchasedErr = "Upgrade already purchased"
	ErrMsgNotEnoughEssenceErr = "Not enough essence"
	ErrMsgNoSavedProgressErr  = "No saved progress"
	ErrMsgSaveUnavailableErr  = "Progress could not be saved. Please try again later."
)

// Success messages
const (
	MsgProgressReset = "Progress reset"
)

// Log messages
const (
	LogMsgUpgradePurchased = "Upgrade purchased"
	LogMsgProgressReset    = "Progress reset"
)

// mapServiceError converts a service error to an HTTP status and a user-facing message
func mapServiceError(err error) (int, string) {
	switch {
	case err == nil:
		return http.StatusInternalServerError, ErrMsgGenericServerError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	case errors.Is(err, domain.ErrInvalidPlayerID):
		return http.StatusBadRequest, ErrMsgInvalidPlayerError
	case errors.Is(err, domain.ErrUpgradeNotFound):
		return http.StatusNotFound, ErrMsgUpgradeNotFoundErr
	case errors.Is(err, domain.ErrSaveNotFound):
		return http.StatusNotFound, ErrMsgNoSavedProgressErr
	case errors.Is(err, domain.ErrAlreadyPurchased):
		return http.StatusConflict, ErrMsgAlreadyPurchasedErr
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusUnprocessableEntity, ErrMsgNotEnoughEssenceErr
	case errors.Is(err, domain.ErrSaveFailed):
		return http.StatusServiceUnavailable, ErrMsgSaveUnavailableErr
	}
	return http.StatusInternalServerError, ErrMsgGenericServerError
}

// respondServiceError logs err and writes the mapped response.
// Expected outcomes are logged at warn, everything else at error.
func respondServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	status, msg := mapServiceError(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(op+" failed", "error", err, "status", status)
	} else {
		log.Warn(op+" rejected", "error", err, "status", status)
	}
	respondError(w, status, msg)
}
