package domain

// Creature is one owned party member as seen by the catalog
type Creature struct {
	ID            int       `json:"id"`
	Nickname      string    `json:"nickname"`
	Species       SpeciesID `json:"species"`
	FormKey       string    `json:"form_key,omitempty"`
	FusionSpecies SpeciesID `json:"fusion_species,omitempty"`
	FusionFormKey string    `json:"fusion_form_key,omitempty"`
	Level         int       `json:"level"`
	Nature        Nature    `json:"nature"`
	Moveset       []MoveID  `json:"moveset"`
	CompatibleTMs []MoveID  `json:"compatible_tms,omitempty"`
	// HeldFormChangeItems lists form-change item keys already attached to this creature
	HeldFormChangeItems []string `json:"held_form_change_items,omitempty"`
}

// IsFusion reports whether a second species is fused in
func (c *Creature) IsFusion() bool { return c.FusionSpecies != 0 }

// Knows reports whether the move is in the current moveset
func (c *Creature) Knows(move MoveID) bool {
	for _, m := range c.Moveset {
		if m == move {
			return true
		}
	}
	return false
}

// HoldsFormChangeItem reports whether the item key is already attached
func (c *Creature) HoldsFormChangeItem(key string) bool {
	for _, k := range c.HeldFormChangeItems {
		if k == key {
			return true
		}
	}
	return false
}
