package domain

// Nature is one of the 25 creature natures
type Nature int

// NatureCount is the size of the nature domain
const NatureCount = 25

const (
	NatureHardy Nature = iota
	NatureLonely
	NatureBrave
	NatureAdamant
	NatureNaughty
	NatureBold
	NatureDocile
	NatureRelaxed
	NatureImpish
	NatureLax
	NatureTimid
	NatureHasty
	NatureSerious
	NatureJolly
	NatureNaive
	NatureModest
	NatureMild
	NatureQuiet
	NatureBashful
	NatureRash
	NatureCalm
	NatureGentle
	NatureSassy
	NatureCareful
	NatureQuirky
)

var natureNames = [NatureCount]string{
	"Hardy", "Lonely", "Brave", "Adamant", "Naughty",
	"Bold", "Docile", "Relaxed", "Impish", "Lax",
	"Timid", "Hasty", "Serious", "Jolly", "Naive",
	"Modest", "Mild", "Quiet", "Bashful", "Rash",
	"Calm", "Gentle", "Sassy", "Careful", "Quirky",
}

// Valid reports whether n is one of the 25 natures
func (n Nature) Valid() bool { return n >= 0 && int(n) < NatureCount }

func (n Nature) String() string {
	if !n.Valid() {
		return "Unknown"
	}
	return natureNames[n]
}

// Stat is a permanent stat index, also the IV index
type Stat int

// StatCount is the number of permanent stats
const StatCount = 6

const (
	StatHP Stat = iota
	StatAttack
	StatDefense
	StatSpAttack
	StatSpDefense
	StatSpeed
)

var statNames = [StatCount]string{"HP", "Attack", "Defense", "Sp. Atk", "Sp. Def", "Speed"}

// base stat boosting vitamins, indexed by Stat
var vitaminNames = [StatCount]string{"HP Up", "Protein", "Iron", "Calcium", "Zinc", "Carbos"}

// Valid reports whether s indexes one of the six stats
func (s Stat) Valid() bool { return s >= 0 && int(s) < StatCount }

func (s Stat) String() string {
	if !s.Valid() {
		return "Unknown"
	}
	return statNames[s]
}

// VitaminName is the base-stat booster item that raises s
func (s Stat) VitaminName() string {
	if !s.Valid() {
		return ""
	}
	return vitaminNames[s]
}

// TempStat is a battle stat boosted by temporary X-items; TempStatCrit is the extra slot
type TempStat int

const (
	TempStatAttack TempStat = iota
	TempStatDefense
	TempStatSpAttack
	TempStatSpDefense
	TempStatSpeed
	TempStatAccuracy
	TempStatCrit
)

// TempStatCount counts the battle stats plus the critical-hit slot
const TempStatCount = 7

var tempStatItemNames = [TempStatCount]string{
	"X Attack", "X Defense", "X Sp. Atk", "X Sp. Def", "X Speed", "X Accuracy", "Dire Hit",
}

func (t TempStat) String() string {
	if t < 0 || int(t) >= TempStatCount {
		return "Unknown"
	}
	return tempStatItemNames[t]
}

// Type is an elemental type. TypeStellar only exists for terastallization.
type Type int

const (
	TypeNormal Type = iota
	TypeFighting
	TypeFlying
	TypePoison
	TypeGround
	TypeRock
	TypeBug
	TypeGhost
	TypeSteel
	TypeFire
	TypeWater
	TypeGrass
	TypeElectric
	TypePsychic
	TypeIce
	TypeDragon
	TypeDark
	TypeFairy
	TypeStellar
)

const (
	// AttackTypeCount excludes Stellar
	AttackTypeCount = 18
	// TeraTypeCount includes Stellar
	TeraTypeCount = 19
)

var typeNames = [TeraTypeCount]string{
	"Normal", "Fighting", "Flying", "Poison", "Ground", "Rock", "Bug", "Ghost", "Steel",
	"Fire", "Water", "Grass", "Electric", "Psychic", "Ice", "Dragon", "Dark", "Fairy", "Stellar",
}

func (t Type) String() string {
	if t < 0 || int(t) >= TeraTypeCount {
		return "Unknown"
	}
	return typeNames[t]
}

// Berry is a held berry kind
type Berry int

const (
	BerrySitrus Berry = iota
	BerryLum
	BerryEnigma
	BerryLiechi
	BerryGanlon
	BerryPetaya
	BerryApicot
	BerrySalac
	BerryLansat
	BerryStarf
	BerryLeppa
)

// BerryCount is the size of the berry domain
const BerryCount = 11

var berryNames = [BerryCount]string{
	"Sitrus", "Lum", "Enigma", "Liechi", "Ganlon", "Petaya", "Apicot", "Salac", "Lansat", "Starf", "Leppa",
}

func (b Berry) String() string {
	if b < 0 || int(b) >= BerryCount {
		return "Unknown"
	}
	return berryNames[b] + " Berry"
}
