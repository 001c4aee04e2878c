package settings

// Key names one mod setting
type Key string

const (
	KeyShiny               Key = "SHINY"
	KeyHiddenAbility       Key = "HIDDEN_ABILITY"
	KeyInfiniteVouchers    Key = "INFINITE_VOUCHERS"
	KeyInfiniteBalls       Key = "INFINITE_BALLS"
	KeyCatchTrainerPokemon Key = "CATCH_TRAINER_POKEMON"
	KeyWaveEggHatch        Key = "WAVE_EGG_HATCH"
	KeyEggRarity           Key = "EGG_RARITY"
	KeyEggSpeciesPity      Key = "EGG_SPECIES_PITTY"
	KeyCandyCostMultiplier Key = "CANDY_COST_MULTIPLIER"
	KeyRegenPokemon        Key = "REGEN_POKEMON"
)

// Option is one selectable value of a setting
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Setting describes a mod setting and its options
type Setting struct {
	Key     Key      `json:"key"`
	Label   string   `json:"label"`
	Options []Option `json:"options"`
	Default int      `json:"default"`
}

var offOn = []Option{{optionOff, optionOff}, {optionOn, optionOn}}

// Definitions lists every mod setting in display order
var Definitions = []Setting{
	{
		Key:   KeyShiny,
		Label: "Shiny Chance",
		Options: []Option{
			{"1", "1x"}, {"2", "2x"}, {"4", "4x"}, {"6", "6x"}, {"256", "256x"}, {"2048", "2048x"},
		},
	},
	{
		Key:   KeyHiddenAbility,
		Label: "Hidden Ability Chance",
		Options: []Option{
			{"1", "1x"}, {"2", "2x"}, {"4", "4x"}, {"6", "6x"}, {"64", "64x"}, {"256", "256x"},
		},
	},
	{Key: KeyInfiniteVouchers, Label: "Infinite Gacha Vouchers", Options: offOn},
	{Key: KeyInfiniteBalls, Label: "Infinite Pokeballs", Options: offOn},
	{
		Key:     KeyCatchTrainerPokemon,
		Label:   "Catch Trainer Pokémon",
		Options: []Option{{"0", "Off"}, {"1", "On"}, {"2", "No Restriction"}},
	},
	{Key: KeyWaveEggHatch, Label: "One Wave Egg Hatch", Options: offOn},
	{
		Key:   KeyEggRarity,
		Label: "Increased Egg Rarity",
		Options: []Option{
			{"1", "1x"}, {"2", "2x"}, {"3", "3x"}, {"4", "Great"}, {"5", "Ultra"}, {"6", "Master"},
		},
	},
	{
		Key:     KeyEggSpeciesPity,
		Label:   "Egg Species Pitty After",
		Options: []Option{{"0", "0"}, {"3", "3"}, {"6", "6"}, {"9", "9"}},
		Default: 3,
	},
	{
		Key:     KeyCandyCostMultiplier,
		Label:   "Candy Cost Multiplier",
		Options: []Option{{"1.5", "1.5x"}, {"1", "1x"}, {"0.5", "0.5x"}, {"0", "0x"}},
		Default: 1,
	},
	{
		Key:     KeyRegenPokemon,
		Label:   "Regen Complete Pokémon",
		Options: []Option{{"25", "25%"}, {"50", "50%"}, {"75", "75%"}, {"100", "100%"}},
	},
}

// Index returns the position of key in Definitions, or -1
func Index(key Key) int {
	for i, s := range Definitions {
		if s.Key == key {
			return i
		}
	}
	return -1
}

// eggRarityTiers maps the named egg tiers onto their rarity multiplier
var eggRarityTiers = map[int]int{4: 5, 5: 32, 6: 256}
