package handler

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/DoughGuardian_Go/internal/domain"
)

func TestMapServiceError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"nil", nil, http.StatusInternalServerError},
		{"invalid input", domain.ErrInvalidInput, http.StatusBadRequest},
		{"wrapped invalid input", fmt.Errorf("tick: %w", domain.ErrInvalidInput), http.StatusBadRequest},
		{"invalid player", domain.ErrInvalidPlayerID, http.StatusBadRequest},
		{"upgrade not found", domain.ErrUpgradeNotFound, http.StatusNotFound},
		{"save not found", domain.ErrSaveNotFound, http.StatusNotFound},
		{"already purchased", domain.ErrAlreadyPurchased, http.StatusConflict},
		{"insufficient funds", domain.ErrInsufficientFunds, http.StatusUnprocessableEntity},
		{"save failed joined", errors.Join(domain.ErrSaveFailed, errors.New("io")), http.StatusServiceUnavailable},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := mapServiceError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.NotEmpty(t, msg)
		})
	}
}
