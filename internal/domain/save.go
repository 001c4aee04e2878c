package domain

import "time"

// IVs holds one individual value per stat, each in [0, MaxIV]
type IVs [StatCount]int

// MaxIV is the highest individual value
const MaxIV = 31

// DexEntry is the per-species discovery record
type DexEntry struct {
	CaughtAttr DexAttr    `json:"caught_attr"`
	NatureAttr NatureAttr `json:"nature_attr"`
	IVs        IVs        `json:"ivs"`
}

// StarterData is the per-root-species progression record
type StarterData struct {
	AbilityAttr AbilityAttr `json:"ability_attr"`
	CandyCount  int         `json:"candy_count"`
	EggMoves    EggMoveAttr `json:"egg_moves"`
}

// Save is the persisted progression state of one player
type Save struct {
	PlayerID  string                     `json:"player_id"`
	Version   int                        `json:"version"`
	Dex       map[SpeciesID]*DexEntry    `json:"dex"`
	Starters  map[SpeciesID]*StarterData `json:"starters"`
	UpdatedAt time.Time                  `json:"updated_at"`
}

// NewSave returns an empty save for a player
func NewSave(playerID string) *Save {
	return &Save{
		PlayerID: playerID,
		Dex:      make(map[SpeciesID]*DexEntry),
		Starters: make(map[SpeciesID]*StarterData),
	}
}

// DexEntry returns the entry for a species, creating an empty one on first access
func (s *Save) DexEntry(id SpeciesID) *DexEntry {
	if s.Dex == nil {
		s.Dex = make(map[SpeciesID]*DexEntry)
	}
	entry, ok := s.Dex[id]
	if !ok {
		entry = &DexEntry{}
		s.Dex[id] = entry
	}
	return entry
}

// LookupDex returns a copy of the entry for a species, or the zero entry.
// It never modifies the save.
func (s *Save) LookupDex(id SpeciesID) DexEntry {
	if entry, ok := s.Dex[id]; ok {
		return *entry
	}
	return DexEntry{}
}

// LookupStarter returns a copy of the starter data for a root species, or the
// zero value. It never modifies the save.
func (s *Save) LookupStarter(root SpeciesID) StarterData {
	if data, ok := s.Starters[root]; ok {
		return *data
	}
	return StarterData{}
}

// Starter returns the starter data for a root species, creating it on first access
func (s *Save) Starter(root SpeciesID) *StarterData {
	if s.Starters == nil {
		s.Starters = make(map[SpeciesID]*StarterData)
	}
	data, ok := s.Starters[root]
	if !ok {
		data = &StarterData{}
		s.Starters[root] = data
	}
	return data
}

// Clone returns a deep copy of the save
func (s *Save) Clone() *Save {
	out := &Save{
		PlayerID:  s.PlayerID,
		Version:   s.Version,
		UpdatedAt: s.UpdatedAt,
		Dex:       make(map[SpeciesID]*DexEntry, len(s.Dex)),
		Starters:  make(map[SpeciesID]*StarterData, len(s.Starters)),
	}
	for id, entry := range s.Dex {
		e := *entry
		out.Dex[id] = &e
	}
	for id, data := range s.Starters {
		d := *data
		out.Starters[id] = &d
	}
	return out
}
