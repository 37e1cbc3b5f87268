package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Catalog errors
	ErrMsgInvalidCatalog = "invalid catalog"

	// Input errors
	ErrMsgInvalidInput    = "invalid input"
	ErrMsgInvalidPlayerID = "invalid player id"

	// Purchase errors
	ErrMsgUpgradeNotFound   = "upgrade not found"
	ErrMsgAlreadyPurchased  = "upgrade already purchased"
	ErrMsgInsufficientFunds = "insufficient funds"

	// Persistence errors
	ErrMsgSaveNotFound = "no saved progress"
	ErrMsgSaveFailed   = "failed to save progress"

	// Database errors
	ErrMsgTxClosed = "tx is closed"
)

// Domain errors shared by every layer.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// ErrInvalidCatalog is fatal and only returned while loading the catalog.
	ErrInvalidCatalog = errors.New(ErrMsgInvalidCatalog)

	// ErrInvalidInput is returned for negative or non-finite time and gains.
	// The state is left untouched.
	ErrInvalidInput    = errors.New(ErrMsgInvalidInput)
	ErrInvalidPlayerID = errors.New(ErrMsgInvalidPlayerID)

	// Purchase outcomes. These are expected results the caller branches on.
	ErrUpgradeNotFound   = errors.New(ErrMsgUpgradeNotFound)
	ErrAlreadyPurchased  = errors.New(ErrMsgAlreadyPurchased)
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)

	// ErrSaveNotFound means no prior save exists. Callers treat it as a fresh start.
	ErrSaveNotFound = errors.New(ErrMsgSaveNotFound)
	ErrSaveFailed   = errors.New(ErrMsgSaveFailed)
)
