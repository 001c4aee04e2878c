package domain

// SpeciesID identifies a species. The zero value means "none".
type SpeciesID int

// MoveID identifies a move. The zero value means "none".
type MoveID int

// AbilityID identifies an ability. The zero value means "none".
type AbilityID int

// Well-known ids referenced by catalog rules
const (
	SpeciesPikachu SpeciesID = 25
	MoveFling      MoveID    = 374
)

// Form is one alternate form of a species
type Form struct {
	Key  string `json:"key"`
	Name string `json:"name"`
	// FormChange marks forms only reachable through a form-change trigger (megas, gmax)
	FormChange bool `json:"form_change,omitempty"`
}

// Species is the static record of a species
type Species struct {
	ID            SpeciesID `json:"id"`
	Name          string    `json:"name"`
	RootID        SpeciesID `json:"root_id,omitempty"`
	StarterCost   int       `json:"starter_cost"`
	Ability1      AbilityID `json:"ability_1"`
	Ability2      AbilityID `json:"ability_2,omitempty"`
	AbilityHidden AbilityID `json:"ability_hidden,omitempty"`
	// Abilities overrides the derived ability count when non-zero
	Abilities   int                  `json:"ability_count,omitempty"`
	EggMoves    [EggMoveSlots]MoveID `json:"egg_moves"`
	MalePercent *float64             `json:"male_percent,omitempty"`
	Forms       []Form               `json:"forms,omitempty"`
}

// Root returns the species that owns shared unlock state
func (s *Species) Root() SpeciesID {
	if s.RootID == 0 {
		return s.ID
	}
	return s.RootID
}

// AbilityCount returns how many distinct ability slots the species has (1..3)
func (s *Species) AbilityCount() int {
	if s.Abilities > 0 {
		return s.Abilities
	}
	count := 1
	if s.Ability2 != 0 && s.Ability2 != s.Ability1 {
		count++
	}
	if s.AbilityHidden != 0 {
		count++
	}
	return count
}

// AbilityFor returns the ability occupying a slot. With two abilities the hidden
// slot falls back to ability 2 when no dedicated hidden ability is set.
func (s *Species) AbilityFor(slot AbilityAttr) AbilityID {
	switch slot {
	case AbilityAttr1:
		return s.Ability1
	case AbilityAttr2:
		return s.Ability2
	case AbilityAttrHidden:
		if s.AbilityHidden == 0 {
			return s.Ability2
		}
		return s.AbilityHidden
	default:
		return 0
	}
}

// IsGenderless reports whether the species has no gender ratio
func (s *Species) IsGenderless() bool { return s.MalePercent == nil }
