package catalog

// Top level categories
const (
	CategoryGlobalItems  = "Global Items"
	CategoryPokemonItems = "Pokemon Items"
)

// Static categories
const (
	CategoryHealing       = "Healing"
	CategoryHPHealing     = "HP Healing"
	CategoryPPRestoring   = "PP Restoring"
	CategoryRevives       = "Revives"
	CategoryStatusHealing = "Status Healing"
	CategoryPokeballs     = "Pokeballs"
	CategoryLures         = "Lures"
	CategoryMisc          = "Misc"
	CategoryExpItems      = "Exp Items"
	CategoryVouchers      = "Vouchers"
	CategoryMoneyItems    = "Money Items"
	CategoryMiscHeld      = "Misc Held Items"
	CategoryMiscGlobal    = "Misc Global Items"
)

// Generated categories
const (
	CategoryTMs             = "TMs (learned next battle)"
	CategoryEvolution       = "Evolution"
	CategoryTeraShards      = "Tera Shards"
	CategoryBerries         = "Berries"
	CategoryNatureMints     = "Nature Mints"
	CategoryStatBoosters    = "Stat Boosters"
	CategoryBaseStats       = "Base Stats"
	CategoryTemporary       = "Temporary"
	CategorySpeciesSpecific = "Species Specific"
	CategoryTypeBoosters    = "Type Boosters"
)

// Generated descriptor formats
const (
	tmKeyFormat          = "tm_%d"
	tmNameFormat         = "TM %s"
	teraKeyFormat        = "tera_shard_%s"
	teraNameFormat       = "%s Tera Shard"
	berryKeyFormat       = "berry_%s"
	mintKeyFormat        = "mint_%s"
	mintNameFormat       = "%s Mint"
	vitaminKeyFormat     = "base_stat_%s"
	tempStatKeyFormat    = "temp_stat_%s"
	typeBoosterKeyFormat = "type_booster_%s"
)

// typeBoosterPercent is the damage boost granted by attack type boosters
const typeBoosterPercent = 20

// Log messages
const (
	LogMsgCatalogBuilt       = "Item catalog built"
	LogMsgCatalogUnavailable = "Item catalog unavailable"
	LogMsgPublishFailed      = "Failed to publish catalog event"
)

// Error messages
const (
	ErrMsgExtensionNotConfigured = "catalog extension not configured"
	ErrMsgExtensionMissing       = "game data has no catalog extension"
)
