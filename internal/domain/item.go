package domain

import (
	"fmt"
	"strings"
)

// ItemKind is the closed set of item descriptor kinds.
// Adding a kind means adding it here, to itemKindNames and to ItemKind.Target.
type ItemKind int

const (
	KindUnknown ItemKind = iota
	KindHPRestore
	KindPPRestore
	KindAllMovePPRestore
	KindPPUp
	KindRevive
	KindAllRevive
	KindStatusHeal
	KindPokeball
	KindLure
	KindFusion
	KindRememberMove
	KindExpBooster
	KindCreatureExpBooster
	KindLevelIncrement
	KindAllLevelIncrement
	KindVoucher
	KindMoneyReward
	KindHeldItem
	KindGlobalItem
	KindTM
	KindEvolutionItem
	KindFormChangeItem
	KindTeraShard
	KindBerry
	KindNatureMint
	KindBaseStatBooster
	KindTempStatBooster
	KindSpeciesStatBooster
	KindTypeBooster
	kindSentinel
)

var itemKindNames = map[ItemKind]string{
	KindHPRestore:          "hp_restore",
	KindPPRestore:          "pp_restore",
	KindAllMovePPRestore:   "all_move_pp_restore",
	KindPPUp:               "pp_up",
	KindRevive:             "revive",
	KindAllRevive:          "all_revive",
	KindStatusHeal:         "status_heal",
	KindPokeball:           "pokeball",
	KindLure:               "lure",
	KindFusion:             "fusion",
	KindRememberMove:       "remember_move",
	KindExpBooster:         "exp_booster",
	KindCreatureExpBooster: "creature_exp_booster",
	KindLevelIncrement:     "level_increment",
	KindAllLevelIncrement:  "all_level_increment",
	KindVoucher:            "voucher",
	KindMoneyReward:        "money_reward",
	KindHeldItem:           "held_item",
	KindGlobalItem:         "global_item",
	KindTM:                 "tm",
	KindEvolutionItem:      "evolution_item",
	KindFormChangeItem:     "form_change_item",
	KindTeraShard:          "tera_shard",
	KindBerry:              "berry",
	KindNatureMint:         "nature_mint",
	KindBaseStatBooster:    "base_stat_booster",
	KindTempStatBooster:    "temp_stat_booster",
	KindSpeciesStatBooster: "species_stat_booster",
	KindTypeBooster:        "type_booster",
}

// ItemKinds returns every defined kind in declaration order
func ItemKinds() []ItemKind {
	out := make([]ItemKind, 0, int(kindSentinel)-1)
	for k := KindUnknown + 1; k < kindSentinel; k++ {
		out = append(out, k)
	}
	return out
}

func (k ItemKind) String() string {
	if name, ok := itemKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// MarshalText encodes the kind by name
func (k ItemKind) MarshalText() ([]byte, error) {
	name, ok := itemKindNames[k]
	if !ok {
		return nil, fmt.Errorf("%w: item kind %d", ErrInvalidInput, int(k))
	}
	return []byte(name), nil
}

// UnmarshalText decodes a kind name
func (k *ItemKind) UnmarshalText(text []byte) error {
	kind, err := ParseItemKind(string(text))
	if err != nil {
		return err
	}
	*k = kind
	return nil
}

// ParseItemKind resolves a kind name, case-insensitively
func ParseItemKind(name string) (ItemKind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for kind, n := range itemKindNames {
		if n == name {
			return kind, nil
		}
	}
	return KindUnknown, fmt.Errorf("%w: unknown item kind %q", ErrInvalidInput, name)
}

// Target says what an item must be pointed at when it is applied
type Target int

const (
	TargetNone     Target = iota // global effect
	TargetCreature               // one party member
	TargetMove                   // one party member and one of its moves
	TargetFusion                 // two distinct party members
)

// Target reports what the kind is applied to
func (k ItemKind) Target() Target {
	switch k {
	case KindPPRestore, KindPPUp:
		return TargetMove
	case KindFusion:
		return TargetFusion
	case KindHPRestore, KindAllMovePPRestore, KindRevive, KindStatusHeal, KindRememberMove,
		KindCreatureExpBooster, KindLevelIncrement, KindHeldItem, KindTM, KindEvolutionItem,
		KindFormChangeItem, KindTeraShard, KindBerry, KindNatureMint, KindBaseStatBooster,
		KindSpeciesStatBooster, KindTypeBooster:
		return TargetCreature
	case KindAllRevive, KindPokeball, KindLure, KindExpBooster, KindAllLevelIncrement,
		KindVoucher, KindMoneyReward, KindGlobalItem, KindTempStatBooster:
		return TargetNone
	default:
		return TargetNone
	}
}

// Descriptor describes one item that can be turned into a modifier.
// Only the payload fields relevant to Kind are meaningful.
type Descriptor struct {
	Key  string   `json:"key"`
	Name string   `json:"name"`
	Kind ItemKind `json:"kind"`
	// Hidden descriptors have no locale entry and never reach a catalog
	Hidden bool `json:"hidden,omitempty"`

	Amount   int      `json:"amount,omitempty"`
	Move     MoveID   `json:"move,omitempty"`
	Type     Type     `json:"type,omitempty"`
	Stat     Stat     `json:"stat,omitempty"`
	TempStat TempStat `json:"temp_stat,omitempty"`
	Nature   Nature   `json:"nature,omitempty"`
	Berry    Berry    `json:"berry,omitempty"`
	// ItemKey names the evolution, form-change or species booster item
	ItemKey string `json:"item_key,omitempty"`
}

func (d *Descriptor) String() string {
	return fmt.Sprintf("%s(%s)", d.Kind, d.Key)
}
