package domain

// DefaultPlayerID is the save slot used by single-player front ends.
const DefaultPlayerID = "local"

// MaxPlayerIDLength bounds player ids accepted by every store.
const MaxPlayerIDLength = 64

// SaveSchemaVersion is written into every persisted record.
const SaveSchemaVersion = 1
