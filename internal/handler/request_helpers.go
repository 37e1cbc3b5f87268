package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/DoughGuardian_Go/internal/logger"
)

// URL parameter and query names
const (
	URLParamPlayerID = "playerID"
	QueryParamFormat = "format"
)

// DecodeAndValidateRequest decodes a JSON body into req and validates it.
// An empty body is treated as an empty object. On failure the response has
// already been written and the handler should return.
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req any, actionName string) error {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil && !errors.Is(err, io.EOF) {
		log.Warn("Failed to decode request", "action", actionName, "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	if err := GetValidator().ValidateStruct(req); err != nil {
		log.Warn("Request validation failed", "action", actionName, "error", err)
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

func playerIDParam(r *http.Request) string {
	return chi.URLParam(r, URLParamPlayerID)
}
