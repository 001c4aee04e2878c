package ledger

import "github.com/osse101/RogueMods_Go/internal/domain"

// Roller draws a uniform integer in [0, n)
type Roller interface {
	IntN(n int) int
}

// IsComplete reports whether a species has nothing left to collect: both
// genders (as its ratio allows), every regular form and every applicable ability.
func (l *Ledger) IsComplete(id domain.SpeciesID) (bool, error) {
	s, err := l.species.Species(id)
	if err != nil {
		return false, err
	}

	root := s.Root()
	caught := l.save.LookupDex(root).CaughtAttr

	if !gendersCaught(s, caught) {
		return false, nil
	}

	for i, form := range s.Forms {
		if form.FormChange {
			continue
		}
		if !caught.Has(domain.FormAttr(i)) {
			return false, nil
		}
	}

	return l.AllAbilitiesUnlocked(root)
}

func gendersCaught(s *domain.Species, caught domain.DexAttr) bool {
	switch {
	case s.IsGenderless():
		return true
	case *s.MalePercent == 0:
		return caught.Has(domain.DexAttrFemale)
	case *s.MalePercent == 100:
		return caught.Has(domain.DexAttrMale)
	default:
		return caught.Has(domain.DexAttrMale | domain.DexAttrFemale)
	}
}

// RollRegeneration rolls chance percent and, on success, reports whether the
// species is complete and may be regenerated.
func (l *Ledger) RollRegeneration(id domain.SpeciesID, chance int, rng Roller) (bool, error) {
	if chance <= 0 || rng.IntN(100) >= chance {
		return false, nil
	}
	return l.IsComplete(id)
}
