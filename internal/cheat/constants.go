package cheat

// NoTarget marks an unused party or move index on a Modifier
const NoTarget = -1

// Screen titles
const (
	TitleItems        = "Items"
	TitleSelectMember = "Choose a Pokémon"
	TitleSelectFusion = "Choose a Pokémon to splice with"
	TitleSelectMove   = "Choose a move"
)

const memberLabelFormat = "%s Lv.%d"

// Log messages
const (
	LogMsgMenuOpened      = "Item menu opened"
	LogMsgModifierApplied = "Modifier applied"
	LogMsgPublishFailed   = "Failed to publish modifier event"
)
