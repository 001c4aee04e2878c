package shop

// Screen titles
const (
	TitleShop      = "Candy Shop"
	TitleEggMoves  = "Egg Moves"
	TitleShinies   = "Shinies"
	TitleAbilities = "Abilities"
	TitleIVs       = "IVs"
	TitleNatures   = "Natures"
)

// Offer label formats: price then the unlocked thing
const (
	labelUnlockFormat  = "x%d Unlock %s"
	labelImproveFormat = "x%d Improve %s"
)

// Log messages
const (
	LogMsgShopOpened        = "Candy shop opened"
	LogMsgCannotAfford      = "Not enough candy for unlock"
	LogMsgUnlockPurchased   = "Unlock purchased"
	LogMsgPublishFailed     = "Failed to publish unlock event"
	LogMsgSpeciesLookupFail = "Species lookup failed"
	LogMsgRegenerated       = "Completed species rolled for regeneration"
)
