package catalog

import (
	"github.com/osse101/RogueMods_Go/internal/domain"
	"github.com/osse101/RogueMods_Go/internal/gamedata"
)

// Ruleset supplies the roster-dependent rules: evolution and form change tables and move names
type Ruleset interface {
	Evolutions(species domain.SpeciesID) []gamedata.Evolution
	FormChanges(species domain.SpeciesID) []gamedata.FormChange
	MoveName(move domain.MoveID) string
}

// Roster is the party snapshot a catalog is filtered by
type Roster struct {
	Party []*domain.Creature
	// MegaAccess unlocks mega and primal form change items
	MegaAccess bool
	// GigantamaxAccess unlocks gigantamax and eternamax form change items
	GigantamaxAccess bool
}

// group places descriptors matching any pass's kinds. Passes run in order,
// each scanning the whole universe, so pass order decides display order.
type group struct {
	name   string
	passes [][]domain.ItemKind
}

var healingGroups = []group{
	{CategoryHPHealing, [][]domain.ItemKind{{domain.KindHPRestore}}},
	{CategoryPPRestoring, [][]domain.ItemKind{{domain.KindPPRestore, domain.KindAllMovePPRestore}, {domain.KindPPUp}}},
	{CategoryRevives, [][]domain.ItemKind{{domain.KindRevive, domain.KindAllRevive}}},
	{CategoryStatusHealing, [][]domain.ItemKind{{domain.KindStatusHeal}}},
}

var (
	pokeballGroup = group{CategoryPokeballs, [][]domain.ItemKind{{domain.KindPokeball}}}
	lureGroup     = group{CategoryLures, [][]domain.ItemKind{{domain.KindLure}}}
	miscGroup     = group{CategoryMisc, [][]domain.ItemKind{{domain.KindFusion}, {domain.KindRememberMove}}}
	expGroup      = group{CategoryExpItems, [][]domain.ItemKind{
		{domain.KindExpBooster, domain.KindCreatureExpBooster},
		{domain.KindLevelIncrement, domain.KindAllLevelIncrement},
	}}
	voucherGroup = group{CategoryVouchers, [][]domain.ItemKind{{domain.KindVoucher}}}
	moneyGroup   = group{CategoryMoneyItems, [][]domain.ItemKind{{domain.KindMoneyReward}}}
)

// heldKinds send remaining static descriptors to Misc Held Items
var heldKinds = []domain.ItemKind{domain.KindHeldItem, domain.KindBerry}

// typeBoosterNames are the attack type booster items indexed by type
var typeBoosterNames = [domain.AttackTypeCount]string{
	"Silk Scarf", "Black Belt", "Sharp Beak", "Poison Barb", "Soft Sand", "Hard Stone",
	"Silver Powder", "Spell Tag", "Metal Coat", "Charcoal", "Mystic Water", "Miracle Seed",
	"Magnet", "Twisted Spoon", "Never-Melt Ice", "Dragon Fang", "Black Glasses", "Fairy Feather",
}

// Form key fragments gated behind each access modifier
var (
	megaFormKeys       = []string{domain.FormKeyMega, domain.FormKeyPrimal}
	gigantamaxFormKeys = []string{domain.FormKeyGigantamax, domain.FormKeyEternamax}
)
