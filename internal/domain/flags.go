package domain

// DexAttr is the set of caught attributes recorded on a dex entry.
// Bits 0-7 are fixed; every form owns one bit starting at bit 7 (see FormAttr).
type DexAttr uint64

const (
	DexAttrNonShiny       DexAttr = 1 << 0
	DexAttrShiny          DexAttr = 1 << 1
	DexAttrMale           DexAttr = 1 << 2
	DexAttrFemale         DexAttr = 1 << 3
	DexAttrDefaultVariant DexAttr = 1 << 4
	DexAttrVariant2       DexAttr = 1 << 5
	DexAttrVariant3       DexAttr = 1 << 6
	DexAttrDefaultForm    DexAttr = 1 << 7
)

// formAttrOffset is the bit index of form 0 (DexAttrDefaultForm)
const formAttrOffset = 7

// FormAttr returns the caught bit for the form at formIndex
func FormAttr(formIndex int) DexAttr {
	if formIndex < 0 || formIndex+formAttrOffset >= 64 {
		return 0
	}
	return DexAttr(1) << uint(formIndex+formAttrOffset)
}

// Has reports whether every bit of f is set
func (a DexAttr) Has(f DexAttr) bool { return f != 0 && a&f == f }

// HasAny reports whether at least one bit of f is set
func (a DexAttr) HasAny(f DexAttr) bool { return a&f != 0 }

// With returns a copy of the set with f added
func (a DexAttr) With(f DexAttr) DexAttr { return a | f }

// Without returns a copy of the set with f removed
func (a DexAttr) Without(f DexAttr) DexAttr { return a &^ f }

// VariantTier is a cumulative shiny rarity tier (1 common, 2 rare, 3 epic)
type VariantTier int

const (
	VariantCommon VariantTier = 1
	VariantRare   VariantTier = 2
	VariantEpic   VariantTier = 3
)

// VariantTiers lists every tier in ascending rarity
var VariantTiers = []VariantTier{VariantCommon, VariantRare, VariantEpic}

// Valid reports whether the tier is in 1..3
func (t VariantTier) Valid() bool { return t >= VariantCommon && t <= VariantEpic }

// Attr returns the dex bit backing the tier, or 0 for an invalid tier
func (t VariantTier) Attr() DexAttr {
	switch t {
	case VariantCommon:
		return DexAttrShiny
	case VariantRare:
		return DexAttrVariant2
	case VariantEpic:
		return DexAttrVariant3
	default:
		return 0
	}
}

// Cumulative returns the bits for this tier and every lower tier
func (t VariantTier) Cumulative() DexAttr {
	var out DexAttr
	for tier := VariantCommon; tier <= t && tier.Valid(); tier++ {
		out = out.With(tier.Attr())
	}
	return out
}

func (t VariantTier) String() string {
	switch t {
	case VariantCommon:
		return VariantNameCommon
	case VariantRare:
		return VariantNameRare
	case VariantEpic:
		return VariantNameEpic
	default:
		return "unknown shiny"
	}
}

// AbilityAttr is the set of unlocked ability slots on starter data
type AbilityAttr uint8

const (
	AbilityAttr1      AbilityAttr = 1 << 0
	AbilityAttr2      AbilityAttr = 1 << 1
	AbilityAttrHidden AbilityAttr = 1 << 2
)

// AbilitySlots lists the slots in display order
var AbilitySlots = []AbilityAttr{AbilityAttr1, AbilityAttr2, AbilityAttrHidden}

// Has reports whether every bit of f is set
func (a AbilityAttr) Has(f AbilityAttr) bool { return f != 0 && a&f == f }

// HasAny reports whether at least one bit of f is set
func (a AbilityAttr) HasAny(f AbilityAttr) bool { return a&f != 0 }

// With returns a copy of the set with f added
func (a AbilityAttr) With(f AbilityAttr) AbilityAttr { return a | f }

// IsHidden reports whether the slot is the hidden ability
func (a AbilityAttr) IsHidden() bool { return a == AbilityAttrHidden }

// Index returns the 0-based position of a single slot (A1=0, A2=1, hidden=2), -1 otherwise
func (a AbilityAttr) Index() int {
	switch a {
	case AbilityAttr1:
		return 0
	case AbilityAttr2:
		return 1
	case AbilityAttrHidden:
		return 2
	default:
		return -1
	}
}

// AbilityUnion folds a list of slots into one set
func AbilityUnion(slots ...AbilityAttr) AbilityAttr {
	var out AbilityAttr
	for _, s := range slots {
		out |= s
	}
	return out
}

// NatureAttr has one bit per nature at index nature+1. Bit 0 is reserved.
type NatureAttr uint32

// AllNatures is the mask of bits 1..25
const AllNatures NatureAttr = (1 << (NatureCount + 1)) - 2

// NatureBit returns the bit for a nature, or 0 when out of range
func NatureBit(n Nature) NatureAttr {
	if !n.Valid() {
		return 0
	}
	return NatureAttr(1) << uint(n+1)
}

// Has reports whether every bit of f is set
func (a NatureAttr) Has(f NatureAttr) bool { return f != 0 && a&f == f }

// HasNature reports whether the nature's bit is set
func (a NatureAttr) HasNature(n Nature) bool { return a.Has(NatureBit(n)) }

// With returns a copy of the set with f added
func (a NatureAttr) With(f NatureAttr) NatureAttr { return a | f }

// Complete reports whether bits 1..25 are all set; other bits are ignored
func (a NatureAttr) Complete() bool { return a&AllNatures == AllNatures }

// EggMoveAttr has one bit per egg-move slot (4 slots)
type EggMoveAttr uint8

// EggMoveSlots is the number of egg-move slots per species
const EggMoveSlots = 4

// EggMoveBit returns the bit for a slot, or 0 when out of range
func EggMoveBit(slot int) EggMoveAttr {
	if slot < 0 || slot >= EggMoveSlots {
		return 0
	}
	return EggMoveAttr(1) << uint(slot)
}

// HasSlot reports whether the slot is unlocked
func (a EggMoveAttr) HasSlot(slot int) bool {
	bit := EggMoveBit(slot)
	return bit != 0 && a&bit == bit
}

// With returns a copy of the set with f added
func (a EggMoveAttr) With(f EggMoveAttr) EggMoveAttr { return a | f }
