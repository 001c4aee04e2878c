package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Ledger errors
	ErrMsgSpeciesNotFound   = "species not found"
	ErrMsgInvalidTier       = "invalid shiny tier"
	ErrMsgInvalidSlot       = "invalid slot"
	ErrMsgInsufficientCandy = "insufficient candy"
	ErrMsgNothingToUnlock   = "nothing left to unlock"

	// Catalog errors
	ErrMsgCatalogUnavailable = "catalog unavailable"

	// Menu errors
	ErrMsgInvalidSelection = "invalid selection"
	ErrMsgMenuExited       = "menu has exited"
	ErrMsgMenuNotFound     = "menu not found"

	// Persistence errors
	ErrMsgCommitFailed  = "commit failed"
	ErrMsgSaveNotFound  = "save not found"
	ErrMsgCommitPending = "a commit is already in flight"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrSpeciesNotFound   = errors.New(ErrMsgSpeciesNotFound)
	ErrInvalidTier       = errors.New(ErrMsgInvalidTier)
	ErrInvalidSlot       = errors.New(ErrMsgInvalidSlot)
	ErrInsufficientCandy = errors.New(ErrMsgInsufficientCandy)
	ErrNothingToUnlock   = errors.New(ErrMsgNothingToUnlock)

	ErrCatalogUnavailable = errors.New(ErrMsgCatalogUnavailable)

	ErrInvalidSelection = errors.New(ErrMsgInvalidSelection)
	ErrMenuExited       = errors.New(ErrMsgMenuExited)
	ErrMenuNotFound     = errors.New(ErrMsgMenuNotFound)

	ErrCommitFailed  = errors.New(ErrMsgCommitFailed)
	ErrSaveNotFound  = errors.New(ErrMsgSaveNotFound)
	ErrCommitPending = errors.New(ErrMsgCommitPending)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
