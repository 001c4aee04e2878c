package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgMissingQueryParam     = "Missing %s query parameter"
	ErrMsgMissingPathParam      = "Missing %s path parameter"
	ErrMsgMenuNotFoundHTTP      = "Menu not found or expired"
	ErrMsgPlayersUnsupported    = "Player listing is not supported by this store"
)

// User-facing error messages derived from domain errors
const (
	ErrMsgGenericServerError      = "Something went wrong"
	ErrMsgInvalidInputError       = "Invalid request. Please check your inputs."
	ErrMsgSpeciesNotFoundError    = "Species not found"
	ErrMsgInvalidSelectionError   = "That choice is not on the current screen"
	ErrMsgMenuExitedError         = "That menu has already closed"
	ErrMsgCatalogUnavailableError = "The item catalog is unavailable right now"
	ErrMsgCommitFailedError       = "Saving failed and your progress was reloaded. Please try again."
	ErrMsgCommitPendingError      = "A save is already in progress"
	ErrMsgInsufficientCandyError  = "Not enough candy"
	ErrMsgNothingToUnlockError    = "Nothing left to unlock"
	ErrMsgSaveNotFoundError       = "Save not found"
	ErrMsgUnknownOptionError      = "Unknown setting option"
)

// Log messages
const (
	LogMsgServiceError      = "Service error"
	LogMsgReadinessFailed   = "Readiness check failed"
	LogMsgEncodeFailed      = "Failed to encode JSON response"
	LogMsgWriteFailed       = "Failed to write response buffer"
	LogMsgMenuOpened        = "Menu opened"
	LogMsgMenuClosed        = "Menu closed"
	LogMsgCommitFailedMenu  = "Commit failed, reloading session"
	LogMsgReloadFailed      = "Session reload failed"
	LogMsgSettingRejected   = "Setting option rejected"
	LogMsgDecodeFailed      = "Failed to decode %s request"
	LogMsgValidationFailed  = "%s request failed validation"
	LogMsgMissingQueryParam = "Missing query parameter"
)

// Query and path parameter names
const (
	ParamPlayerID = "playerID"
	ParamMenuID   = "menuID"
	ParamSpecies  = "species"
	ParamQuery    = "q"
)

// Menu kinds
const (
	MenuKindShop  = "shop"
	MenuKindItems = "items"
)
