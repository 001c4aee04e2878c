package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/RogueMods_Go/internal/domain"
)

type fixedRoll int

func (f fixedRoll) IntN(int) int { return int(f) }

func TestIsComplete(t *testing.T) {
	both := domain.DexAttrMale | domain.DexAttrFemale

	tests := []struct {
		name      string
		species   domain.SpeciesID
		caught    domain.DexAttr
		abilities []domain.AbilityAttr
		want      bool
	}{
		{"missing female", oneAbility, domain.DexAttrMale, []domain.AbilityAttr{domain.AbilityAttr1}, false},
		{"both genders one ability", oneAbility, both, []domain.AbilityAttr{domain.AbilityAttr1}, true},
		{"ability missing", twoAbilities, both, []domain.AbilityAttr{domain.AbilityAttr1}, false},
		{"genderless needs no gender", genderless, 0, []domain.AbilityAttr{domain.AbilityAttr1, domain.AbilityAttrHidden}, true},
		{"female only species", femaleOnly, domain.DexAttrFemale, []domain.AbilityAttr{domain.AbilityAttr1}, true},
		{"female only species male caught", femaleOnly, domain.DexAttrMale, []domain.AbilityAttr{domain.AbilityAttr1}, false},
		{"regular form missing", formedSpecies, both | domain.FormAttr(0), []domain.AbilityAttr{domain.AbilityAttr1}, false},
		{"form change forms are ignored", formedSpecies, both | domain.FormAttr(0) | domain.FormAttr(1), []domain.AbilityAttr{domain.AbilityAttr1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newTestLedger()
			l.Save().DexEntry(tt.species).CaughtAttr = tt.caught
			for _, slot := range tt.abilities {
				require.NoError(t, l.UnlockAbility(tt.species, slot))
			}

			got, err := l.IsComplete(tt.species)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRollRegeneration(t *testing.T) {
	l := newTestLedger()
	l.Save().DexEntry(oneAbility).CaughtAttr = domain.DexAttrMale | domain.DexAttrFemale
	require.NoError(t, l.UnlockAbility(oneAbility, domain.AbilityAttr1))

	tests := []struct {
		name   string
		chance int
		roll   fixedRoll
		want   bool
	}{
		{"zero chance never rolls", 0, 0, false},
		{"roll below chance", 25, 24, true},
		{"roll at chance fails", 25, 25, false},
		{"always", 100, 99, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := l.RollRegeneration(oneAbility, tt.chance, tt.roll)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	got, err := l.RollRegeneration(twoAbilities, 100, fixedRoll(0))
	require.NoError(t, err)
	assert.False(t, got, "incomplete species never regenerates")
}
