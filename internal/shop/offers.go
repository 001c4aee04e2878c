package shop

import (
	"fmt"

	"github.com/osse101/RogueMods_Go/internal/domain"
	"github.com/osse101/RogueMods_Go/internal/ledger"
)

// Offer is one purchasable unlock
type Offer struct {
	Kind  domain.UnlockKind `json:"kind"`
	Name  string            `json:"name"`
	Label string            `json:"label"`
	Price int               `json:"price"`

	unlock func(l *ledger.Ledger) error
}

func unlockLabel(price int, name string) string  { return fmt.Sprintf(labelUnlockFormat, price, name) }
func improveLabel(price int, name string) string { return fmt.Sprintf(labelImproveFormat, price, name) }

// offerSet lists the still lockable offers of every kind for one root species
type offerSet struct {
	data    GameData
	pricing ledger.Pricing
	ledger  *ledger.Ledger
	species *domain.Species
}

func (o offerSet) eggMoves() ([]Offer, error) {
	var out []Offer
	for slot := 0; slot < domain.EggMoveSlots; slot++ {
		has, err := o.ledger.HasEggMove(o.species.ID, slot)
		if err != nil {
			return nil, err
		}
		if has {
			continue
		}
		price, err := o.pricing.EggMove(o.species.StarterCost, slot)
		if err != nil {
			return nil, err
		}
		name := o.data.MoveName(o.species.EggMoves[slot])
		out = append(out, Offer{
			Kind:  domain.UnlockEggMove,
			Name:  name,
			Label: unlockLabel(price, name),
			Price: price,
			unlock: func(l *ledger.Ledger) error {
				return l.UnlockEggMove(o.species.ID, slot)
			},
		})
	}
	return out, nil
}

func (o offerSet) shinies() ([]Offer, error) {
	var out []Offer
	for _, tier := range domain.VariantTiers {
		if o.ledger.HasVariant(o.species.ID, tier) {
			continue
		}
		price, err := o.pricing.Shiny(o.species.StarterCost, tier)
		if err != nil {
			return nil, err
		}
		out = append(out, Offer{
			Kind:  domain.UnlockShiny,
			Name:  tier.String(),
			Label: unlockLabel(price, tier.String()),
			Price: price,
			unlock: func(l *ledger.Ledger) error {
				return l.UnlockVariant(o.species.ID, tier)
			},
		})
	}
	return out, nil
}

func (o offerSet) abilities() ([]Offer, error) {
	locked, err := o.ledger.LockedAbilitySlots(o.species.ID)
	if err != nil {
		return nil, err
	}
	out := make([]Offer, 0, len(locked))
	for _, slot := range locked {
		price := o.pricing.Ability(o.species.StarterCost, slot.IsHidden())
		name := o.data.AbilityName(o.species.AbilityFor(slot))
		out = append(out, Offer{
			Kind:  domain.UnlockAbility,
			Name:  name,
			Label: unlockLabel(price, name),
			Price: price,
			unlock: func(l *ledger.Ledger) error {
				return l.UnlockAbility(o.species.ID, slot)
			},
		})
	}
	return out, nil
}

func (o offerSet) ivs() []Offer {
	var out []Offer
	price := o.pricing.IV(o.species.StarterCost)
	for stat := domain.StatHP; stat.Valid(); stat++ {
		if o.ledger.IV(o.species.ID, stat) >= domain.MaxIV {
			continue
		}
		out = append(out, Offer{
			Kind:  domain.UnlockIV,
			Name:  stat.String(),
			Label: improveLabel(price, stat.String()),
			Price: price,
			unlock: func(l *ledger.Ledger) error {
				_, err := l.ImproveIV(o.species.ID, stat, ledger.DefaultIVStep, domain.MaxIV)
				return err
			},
		})
	}
	return out
}

func (o offerSet) natures() []Offer {
	var out []Offer
	price := o.pricing.Nature(o.species.StarterCost)
	for n := domain.NatureHardy; n.Valid(); n++ {
		if o.ledger.HasNature(o.species.ID, n) {
			continue
		}
		out = append(out, Offer{
			Kind:  domain.UnlockNature,
			Name:  n.String(),
			Label: improveLabel(price, n.String()),
			Price: price,
			unlock: func(l *ledger.Ledger) error {
				return l.UnlockNature(o.species.ID, n)
			},
		})
	}
	return out
}

// byKind returns the offers of one kind
func (o offerSet) byKind(kind domain.UnlockKind) ([]Offer, error) {
	switch kind {
	case domain.UnlockEggMove:
		return o.eggMoves()
	case domain.UnlockShiny:
		return o.shinies()
	case domain.UnlockAbility:
		return o.abilities()
	case domain.UnlockIV:
		return o.ivs(), nil
	case domain.UnlockNature:
		return o.natures(), nil
	default:
		return nil, fmt.Errorf("%w: unlock kind %q", domain.ErrInvalidInput, kind)
	}
}
