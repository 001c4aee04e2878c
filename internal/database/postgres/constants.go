package postgres

// Error messages
const (
	ErrMsgFailedToLoadSave   = "failed to load save"
	ErrMsgFailedToStoreSave  = "failed to store save"
	ErrMsgFailedToDecodeSave = "failed to decode save"
	ErrMsgFailedToEncodeSave = "failed to encode save"
	ErrMsgStaleSave          = "stored save is newer than version %d"
)

const (
	queryLoadSave = `SELECT data FROM saves WHERE player_id = $1`

	// A write only lands when it carries a newer version than the stored row
	queryStoreSave = `
INSERT INTO saves (player_id, version, data, updated_at)
VALUES ($1, $2, $3, $4)
ON CONFLICT (player_id) DO UPDATE
SET version = EXCLUDED.version, data = EXCLUDED.data, updated_at = EXCLUDED.updated_at
WHERE saves.version < EXCLUDED.version`
)
