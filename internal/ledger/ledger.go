package ledger

import (
	"fmt"

	"github.com/osse101/RogueMods_Go/internal/domain"
)

// DefaultIVStep is how much one IV improvement raises a stat
const DefaultIVStep = 5

// SpeciesInfo resolves static species records
type SpeciesInfo interface {
	Species(id domain.SpeciesID) (*domain.Species, error)
}

// Ledger reads and mutates the unlock state of one save.
// It never checks funds: callers price, verify and spend before mutating.
type Ledger struct {
	save    *domain.Save
	species SpeciesInfo
}

// New returns a ledger over save
func New(save *domain.Save, species SpeciesInfo) *Ledger {
	return &Ledger{save: save, species: species}
}

// Save returns the underlying save
func (l *Ledger) Save() *domain.Save { return l.save }

// starter returns the mutable starter record of the species' root, creating it
func (l *Ledger) starter(id domain.SpeciesID) (*domain.Species, *domain.StarterData, error) {
	s, err := l.species.Species(id)
	if err != nil {
		return nil, nil, err
	}
	return s, l.save.Starter(s.Root()), nil
}

// peekStarter reads the starter record of the species' root without touching the save
func (l *Ledger) peekStarter(id domain.SpeciesID) (*domain.Species, domain.StarterData, error) {
	s, err := l.species.Species(id)
	if err != nil {
		return nil, domain.StarterData{}, err
	}
	return s, l.save.LookupStarter(s.Root()), nil
}

// HasVariant reports whether the shiny tier is caught. Invalid tiers report false.
func (l *Ledger) HasVariant(id domain.SpeciesID, tier domain.VariantTier) bool {
	if !tier.Valid() {
		return false
	}
	return l.save.LookupDex(id).CaughtAttr.Has(tier.Attr())
}

// UnlockVariant sets the tier and every lower tier
func (l *Ledger) UnlockVariant(id domain.SpeciesID, tier domain.VariantTier) error {
	if !tier.Valid() {
		return fmt.Errorf("%w: %d", domain.ErrInvalidTier, int(tier))
	}
	entry := l.save.DexEntry(id)
	entry.CaughtAttr = entry.CaughtAttr.With(tier.Cumulative())
	return nil
}

// ApplicableAbilitySlots lists the slots a species actually has, in unlock-menu order.
// A species with two abilities uses the hidden slot for its second ability.
func ApplicableAbilitySlots(s *domain.Species) []domain.AbilityAttr {
	switch s.AbilityCount() {
	case 1:
		return []domain.AbilityAttr{domain.AbilityAttr1}
	case 2:
		return []domain.AbilityAttr{domain.AbilityAttr1, domain.AbilityAttrHidden}
	default:
		return []domain.AbilityAttr{domain.AbilityAttr1, domain.AbilityAttrHidden, domain.AbilityAttr2}
	}
}

// UnlockedAbilitySlots lists the applicable slots that are unlocked
func (l *Ledger) UnlockedAbilitySlots(id domain.SpeciesID) ([]domain.AbilityAttr, error) {
	s, data, err := l.peekStarter(id)
	if err != nil {
		return nil, err
	}
	var out []domain.AbilityAttr
	for _, slot := range ApplicableAbilitySlots(s) {
		if data.AbilityAttr.Has(slot) {
			out = append(out, slot)
		}
	}
	return out, nil
}

// LockedAbilitySlots lists the applicable slots still locked
func (l *Ledger) LockedAbilitySlots(id domain.SpeciesID) ([]domain.AbilityAttr, error) {
	s, data, err := l.peekStarter(id)
	if err != nil {
		return nil, err
	}
	var out []domain.AbilityAttr
	for _, slot := range ApplicableAbilitySlots(s) {
		if !data.AbilityAttr.Has(slot) {
			out = append(out, slot)
		}
	}
	return out, nil
}

// AllAbilitiesUnlocked reports whether every applicable slot is unlocked
func (l *Ledger) AllAbilitiesUnlocked(id domain.SpeciesID) (bool, error) {
	locked, err := l.LockedAbilitySlots(id)
	if err != nil {
		return false, err
	}
	return len(locked) == 0, nil
}

// UnlockAbility sets one ability slot on the root species
func (l *Ledger) UnlockAbility(id domain.SpeciesID, slot domain.AbilityAttr) error {
	if slot.Index() < 0 {
		return fmt.Errorf("%w: ability slot %d", domain.ErrInvalidSlot, slot)
	}
	_, data, err := l.starter(id)
	if err != nil {
		return err
	}
	data.AbilityAttr = data.AbilityAttr.With(slot)
	return nil
}

// HasNature reports whether a nature is unlocked
func (l *Ledger) HasNature(id domain.SpeciesID, n domain.Nature) bool {
	return l.save.LookupDex(id).NatureAttr.HasNature(n)
}

// UnlockNature sets the nature's bit
func (l *Ledger) UnlockNature(id domain.SpeciesID, n domain.Nature) error {
	if !n.Valid() {
		return fmt.Errorf("%w: nature %d", domain.ErrInvalidInput, int(n))
	}
	entry := l.save.DexEntry(id)
	entry.NatureAttr = entry.NatureAttr.With(domain.NatureBit(n))
	return nil
}

// AllNaturesUnlocked reports whether all 25 nature bits are set
func (l *Ledger) AllNaturesUnlocked(id domain.SpeciesID) bool {
	return l.save.LookupDex(id).NatureAttr.Complete()
}

// IV returns the current IV of a stat
func (l *Ledger) IV(id domain.SpeciesID, stat domain.Stat) int {
	if !stat.Valid() {
		return 0
	}
	return l.save.LookupDex(id).IVs[stat]
}

// ImproveIV raises a stat by delta, capped at limit, and returns the new value
func (l *Ledger) ImproveIV(id domain.SpeciesID, stat domain.Stat, delta, limit int) (int, error) {
	if !stat.Valid() {
		return 0, fmt.Errorf("%w: stat %d", domain.ErrInvalidInput, int(stat))
	}
	entry := l.save.DexEntry(id)
	entry.IVs[stat] = max(entry.IVs[stat], min(entry.IVs[stat]+delta, limit))
	return entry.IVs[stat], nil
}

// HasEggMove reports whether the egg move slot is unlocked on the root species
func (l *Ledger) HasEggMove(id domain.SpeciesID, slot int) (bool, error) {
	_, data, err := l.peekStarter(id)
	if err != nil {
		return false, err
	}
	return data.EggMoves.HasSlot(slot), nil
}

// UnlockEggMove sets the egg move slot on the root species
func (l *Ledger) UnlockEggMove(id domain.SpeciesID, slot int) error {
	bit := domain.EggMoveBit(slot)
	if bit == 0 {
		return fmt.Errorf("%w: egg move slot %d", domain.ErrInvalidSlot, slot)
	}
	_, data, err := l.starter(id)
	if err != nil {
		return err
	}
	data.EggMoves = data.EggMoves.With(bit)
	return nil
}

// Candy returns the candy balance of the root species
func (l *Ledger) Candy(id domain.SpeciesID) (int, error) {
	_, data, err := l.peekStarter(id)
	if err != nil {
		return 0, err
	}
	return data.CandyCount, nil
}

// CanAfford reports whether the root species holds at least price candy
func (l *Ledger) CanAfford(id domain.SpeciesID, price int) (bool, error) {
	candy, err := l.Candy(id)
	if err != nil {
		return false, err
	}
	return candy >= price, nil
}

// SpendCandy deducts price from the root species. The balance never goes negative.
func (l *Ledger) SpendCandy(id domain.SpeciesID, price int) error {
	if price < 0 {
		return fmt.Errorf("%w: negative price %d", domain.ErrInvalidInput, price)
	}
	_, data, err := l.starter(id)
	if err != nil {
		return err
	}
	if data.CandyCount < price {
		return fmt.Errorf("%w: have %d, need %d", domain.ErrInsufficientCandy, data.CandyCount, price)
	}
	data.CandyCount -= price
	return nil
}

// AddCandy credits candy to the root species
func (l *Ledger) AddCandy(id domain.SpeciesID, amount int) error {
	if amount < 0 {
		return fmt.Errorf("%w: negative amount %d", domain.ErrInvalidInput, amount)
	}
	_, data, err := l.starter(id)
	if err != nil {
		return err
	}
	data.CandyCount += amount
	return nil
}
