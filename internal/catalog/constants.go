package catalog

// Error message fragments for catalog validation
const (
	ErrMsgReadCatalogFailed  = "failed to read catalog file: %w"
	ErrMsgParseCatalogFailed = "failed to parse catalog file: %w"
	ErrMsgUnsupportedFormat  = "unsupported catalog format %q"
	ErrMsgCatalogNil         = "catalog is nil"
	ErrMsgNoTiers            = "no tiers defined"
	ErrMsgEmptyID            = "%s at index %d has an empty id"
	ErrMsgDuplicateID        = "duplicate %s id %q"
	ErrMsgTierOrderStart     = "first tier must have order 0, got %d"
	ErrMsgTierOrder          = "tier %q order %d does not follow %d"
	ErrMsgFirstTierThreshold = "first tier must require 0 harmony, got %v"
	ErrMsgTierThreshold      = "tier %q threshold %v does not exceed %v"
	ErrMsgIssuanceOrder      = "reward issuance orders are not a 0-based permutation: %s"
	ErrMsgNotFinite          = "%s must be a finite, non-negative number, got %v"
	ErrMsgRewardThreshold    = "reward threshold must be positive, got %v"
)

// Entity names used in validation messages
const (
	entityTier    = "tier"
	entityReward  = "reward"
	entityUpgrade = "upgrade"
)

// Log messages
const (
	LogMsgCatalogLoaded  = "Catalog loaded"
	LogMsgDefaultCatalog = "No catalog path configured, using built-in catalog"
)
