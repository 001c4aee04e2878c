package gamedata

import (
	"fmt"

	"github.com/osse101/RogueMods_Go/internal/domain"
)

// Data is the decoded game data document
type Data struct {
	Version     string               `json:"version"`
	Species     []*domain.Species    `json:"species"`
	Moves       []NamedID            `json:"moves"`
	Abilities   []NamedID            `json:"abilities"`
	Items       []*domain.Descriptor `json:"items"`
	Evolutions  []Evolution          `json:"evolutions"`
	FormChanges []FormChange         `json:"form_changes"`
	// Extension is optional; a document without it cannot back the item catalog
	Extension *Extension `json:"extension,omitempty"`
}

// NamedID pairs a numeric id with its display name
type NamedID struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Evolution is an item-triggered evolution of a species
type Evolution struct {
	Species  domain.SpeciesID `json:"species"`
	Into     domain.SpeciesID `json:"into"`
	ItemKey  string           `json:"item_key"`
	ItemName string           `json:"item_name"`
	// PreFormKey restricts the evolution to a specific current form when EvoFormKey is set
	PreFormKey string `json:"pre_form_key,omitempty"`
	EvoFormKey string `json:"evo_form_key,omitempty"`
	MinLevel   int    `json:"min_level,omitempty"`
}

// FormChange is an item-triggered form change
type FormChange struct {
	Species  domain.SpeciesID `json:"species"`
	FormKey  string           `json:"form_key"`
	ItemKey  string           `json:"item_key"`
	ItemName string           `json:"item_name"`
	// Active is false for triggers the game has disabled
	Active bool `json:"active"`
}

// SpeciesBooster is a stat booster only usable by the listed species
type SpeciesBooster struct {
	Key     string             `json:"key"`
	Name    string             `json:"name"`
	Species []domain.SpeciesID `json:"species"`
}

// Extension holds the optional catalog additions
type Extension struct {
	SpeciesBoosters []SpeciesBooster     `json:"species_boosters"`
	Items           []*domain.Descriptor `json:"items"`
}

// Registry indexes loaded game data for lookups
type Registry struct {
	data      *Data
	species   map[domain.SpeciesID]*domain.Species
	moves     map[domain.MoveID]string
	abilities map[domain.AbilityID]string
	evolution map[domain.SpeciesID][]Evolution
	forms     map[domain.SpeciesID][]FormChange
}

// NewRegistry indexes data, rejecting duplicate ids and dangling root references
func NewRegistry(data *Data) (*Registry, error) {
	if data == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgDataNil)
	}

	r := &Registry{
		data:      data,
		species:   make(map[domain.SpeciesID]*domain.Species, len(data.Species)),
		moves:     make(map[domain.MoveID]string, len(data.Moves)),
		abilities: make(map[domain.AbilityID]string, len(data.Abilities)),
		evolution: make(map[domain.SpeciesID][]Evolution),
		forms:     make(map[domain.SpeciesID][]FormChange),
	}

	for _, s := range data.Species {
		if _, dup := r.species[s.ID]; dup {
			return nil, fmt.Errorf(ErrMsgDuplicateSpecies, domain.ErrInvalidInput, s.ID)
		}
		r.species[s.ID] = s
	}
	for _, s := range data.Species {
		if _, ok := r.species[s.Root()]; !ok {
			return nil, fmt.Errorf(ErrMsgUnknownRoot, domain.ErrInvalidInput, s.ID, s.Root())
		}
	}
	for _, m := range data.Moves {
		r.moves[domain.MoveID(m.ID)] = m.Name
	}
	for _, a := range data.Abilities {
		r.abilities[domain.AbilityID(a.ID)] = a.Name
	}
	for _, e := range data.Evolutions {
		r.evolution[e.Species] = append(r.evolution[e.Species], e)
	}
	for _, fc := range data.FormChanges {
		r.forms[fc.Species] = append(r.forms[fc.Species], fc)
	}

	return r, nil
}

// Species returns the species record for id
func (r *Registry) Species(id domain.SpeciesID) (*domain.Species, error) {
	s, ok := r.species[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", domain.ErrSpeciesNotFound, id)
	}
	return s, nil
}

// AllSpecies returns every species in document order
func (r *Registry) AllSpecies() []*domain.Species {
	return r.data.Species
}

// Root returns the root species id sharing unlock state with id
func (r *Registry) Root(id domain.SpeciesID) domain.SpeciesID {
	if s, ok := r.species[id]; ok {
		return s.Root()
	}
	return id
}

// MoveName returns the display name of a move, or a placeholder
func (r *Registry) MoveName(id domain.MoveID) string {
	if name, ok := r.moves[id]; ok {
		return name
	}
	return fmt.Sprintf(UnknownMoveFormat, int(id))
}

// AbilityName returns the display name of an ability, or a placeholder
func (r *Registry) AbilityName(id domain.AbilityID) string {
	if name, ok := r.abilities[id]; ok {
		return name
	}
	return fmt.Sprintf(UnknownAbilityFormat, int(id))
}

// Items returns the static descriptor universe
func (r *Registry) Items() []*domain.Descriptor {
	return r.data.Items
}

// Evolutions returns the item evolutions of a species
func (r *Registry) Evolutions(id domain.SpeciesID) []Evolution {
	return r.evolution[id]
}

// FormChanges returns the item form changes of a species
func (r *Registry) FormChanges(id domain.SpeciesID) []FormChange {
	return r.forms[id]
}

// Extension returns the optional catalog extension, nil when the document has none
func (r *Registry) Extension() *Extension {
	return r.data.Extension
}
