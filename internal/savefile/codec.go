package savefile

import (
	"encoding/json"
	"fmt"

	"github.com/osse101/DoughGuardian_Go/internal/domain"
)

// Record is the persisted form of a ProgressionState. Passive rates are
// excluded by the state's JSON tags and re-derived on restore.
type Record struct {
	SchemaVersion int    `json:"schema_version"`
	PlayerID      string `json:"player_id"`
	domain.ProgressionState
}

// Encode serialises a player's state
func Encode(playerID string, state domain.ProgressionState) ([]byte, error) {
	rec := Record{
		SchemaVersion:    domain.SaveSchemaVersion,
		PlayerID:         playerID,
		ProgressionState: state.Clone(),
	}
	rec.HarmonyRate, rec.EssenceRate = 0, 0

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode save for %s: %w", playerID, err)
	}
	return data, nil
}

// Decode parses a record written by Encode. Records from a newer schema are
// rejected rather than half-read.
func Decode(data []byte) (Record, error) {
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return Record{}, fmt.Errorf(ErrMsgDecodeFailed, err)
	}
	if rec.SchemaVersion > domain.SaveSchemaVersion {
		return Record{}, fmt.Errorf(ErrMsgUnsupportedSchema, rec.SchemaVersion, domain.SaveSchemaVersion)
	}
	if rec.RewardsCollected == nil {
		rec.RewardsCollected = []string{}
	}
	if rec.UpgradesPurchased == nil {
		rec.UpgradesPurchased = []string{}
	}
	return rec, nil
}
