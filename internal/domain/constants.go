package domain

// Shiny rarity display names
const (
	VariantNameCommon = "common shiny"
	VariantNameRare   = "rare shiny"
	VariantNameEpic   = "epic shiny"
)

// Form key fragments that gate form-change items behind access modifiers
const (
	FormKeyMega       = "mega"
	FormKeyPrimal     = "primal"
	FormKeyGigantamax = "gigantamax"
	FormKeyEternamax  = "eternamax"
)

// Event type names published on the bus
const (
	EventTypeUnlockPurchased = "shop.unlock_purchased"
	EventTypeCommitFailed    = "save.commit_failed"
	EventTypeCatalogBuilt    = "catalog.built"
	EventTypeModifierApplied = "cheat.modifier_applied"
	EventTypeSettingChanged  = "settings.changed"
)

// UnlockKind names what a candy purchase unlocked
type UnlockKind string

const (
	UnlockEggMove UnlockKind = "egg_move"
	UnlockShiny   UnlockKind = "shiny"
	UnlockAbility UnlockKind = "ability"
	UnlockIV      UnlockKind = "iv"
	UnlockNature  UnlockKind = "nature"
)
