package ledger

import (
	"fmt"
	"math"

	"github.com/osse101/RogueMods_Go/internal/domain"
)

// Starter cost thresholds separating the three price bands
const (
	cheapBandAbove = 5 // cost > 5 is the cheapest band
	midBandAbove   = 3 // cost > 3 is the middle band
)

// Band prices indexed cheap, mid, expensive
var (
	unlockBand = [3]int{3, 4, 5}
	natureBand = [3]int{6, 8, 10}
)

// Shiny curve constants
const (
	shinyBase     = 50
	shinyStep     = 5
	shinyAdjustAt = 3
)

// Ability curve constants
const (
	abilityBase = 20.0
	abilityStep = 2.5
)

// Egg-move slots at or above this index carry the rare surcharge
const (
	rareEggMoveFrom  = 2
	rareEggMoveBonus = 1
)

// Pricing computes candy prices. All prices are >= 0.
type Pricing struct {
	Multiplier float64
}

// NewPricing returns a Pricing with the given global multiplier; negative values are treated as 0
func NewPricing(multiplier float64) Pricing {
	if multiplier < 0 || math.IsNaN(multiplier) {
		multiplier = 0
	}
	return Pricing{Multiplier: multiplier}
}

func band(starterCost int) int {
	switch {
	case starterCost > cheapBandAbove:
		return 0
	case starterCost > midBandAbove:
		return 1
	default:
		return 2
	}
}

// scale applies the multiplier to an already-rounded base price
func (p Pricing) scale(base float64) int {
	price := math.Round(base * p.Multiplier)
	if price < 0 || math.IsNaN(price) {
		return 0
	}
	return int(price)
}

// EggMove prices unlocking the egg move in slot (0..3)
func (p Pricing) EggMove(starterCost, slot int) (int, error) {
	if slot < 0 || slot >= domain.EggMoveSlots {
		return 0, fmt.Errorf("%w: egg move slot %d", domain.ErrInvalidSlot, slot)
	}
	base := unlockBand[band(starterCost)]
	if slot >= rareEggMoveFrom {
		base += rareEggMoveBonus
	}
	return p.scale(float64(base)), nil
}

// Shiny prices unlocking a shiny tier
func (p Pricing) Shiny(starterCost int, tier domain.VariantTier) (int, error) {
	if !tier.Valid() {
		return 0, fmt.Errorf("%w: %d", domain.ErrInvalidTier, int(tier))
	}
	adjusted := starterCost
	if starterCost > shinyAdjustAt {
		adjusted++
	}
	base := float64(shinyBase - shinyStep*(adjusted-1))
	return p.scale(math.Round(base * float64(1+tier) / 2)), nil
}

// Ability prices unlocking an ability slot; the hidden slot costs double
func (p Pricing) Ability(starterCost int, hidden bool) int {
	factor := 1.0
	if hidden {
		factor = 2
	}
	return p.scale(math.Ceil((abilityBase - abilityStep*float64(starterCost-1)) * factor))
}

// IV prices one IV improvement step
func (p Pricing) IV(starterCost int) int {
	return p.scale(float64(unlockBand[band(starterCost)]))
}

// Nature prices unlocking one nature
func (p Pricing) Nature(starterCost int) int {
	return p.scale(float64(natureBand[band(starterCost)]))
}
