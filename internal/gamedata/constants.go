package gamedata

// Error messages
const (
	ErrMsgDataNil          = "game data is nil"
	ErrMsgDuplicateSpecies = "%w: duplicate species id %d"
	ErrMsgUnknownRoot      = "%w: species %d has unknown root %d"
	ErrMsgReadFailed       = "failed to read game data file: %w"
	ErrMsgParseFailed      = "failed to parse game data: %w"
	ErrMsgSchemaFailed     = "schema validation failed for %s: %w"
	ErrMsgNoMatch          = "%w: no species matches %q"
)

// Display fallbacks
const (
	UnknownMoveFormat    = "Move #%d"
	UnknownAbilityFormat = "Ability #%d"
)

// SchemaName is the registered name of the embedded game data schema
const SchemaName = "gamedata.schema.json"
