package savefile

import "os"

// LegacyFileName is the save file used for the default local player
const LegacyFileName = "zenfarm_dough_guardian_save.json"

const (
	filePrefix = "progress_"
	fileSuffix = ".json"
	tempSuffix = ".tmp"

	filePermissions os.FileMode = 0o644
	dirPermissions  os.FileMode = 0o755
)

// Error messages
const (
	ErrMsgDecodeFailed      = "failed to decode save: %w"
	ErrMsgUnsupportedSchema = "save schema version %d is newer than supported version %d"
)

// Log messages
const (
	LogMsgProgressSaved   = "Progress saved to file"
	LogMsgProgressDeleted = "Progress file deleted"
	LogMsgTempCleanup     = "Failed to remove temporary save file"
)
