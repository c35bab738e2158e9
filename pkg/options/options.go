// Package options declares every player-facing option, its domain and its
// default, and resolves raw user-supplied values into a validated immutable
// Set consumed by catalog, graph and rule construction.
package options

import (
	"github.com/redshift-games/tyrian-world/pkg/items"
)

// EpisodeMode is the role an episode plays in a seed.
type EpisodeMode int

const (
	EpisodeOff  EpisodeMode = 0
	EpisodeOn   EpisodeMode = 1
	EpisodeGoal EpisodeMode = 2
)

// ShopMode controls whether and how level shops exist.
type ShopMode int

const (
	ShopsNone     ShopMode = 0
	ShopsStandard ShopMode = 1
	ShopsHidden   ShopMode = 2 // purchases are blind until paid for
	ShopsOnly     ShopMode = 3 // all multiworld items in shops; levels hold only credits
)

// SpecialsMode controls special weapon availability.
type SpecialsMode int

const (
	SpecialsOff     SpecialsMode = 0
	SpecialsOn      SpecialsMode = 1 // one random special from the start
	SpecialsAsItems SpecialsMode = 2 // specials join the item pool
)

// TwiddlesMode controls twiddle (input code) generation.
type TwiddlesMode int

const (
	TwiddlesOff   TwiddlesMode = 0
	TwiddlesOn    TwiddlesMode = 1 // original game inputs and costs
	TwiddlesChaos TwiddlesMode = 2 // freshly rolled inputs, costs and behaviors
)

// Difficulty is the base game difficulty. Values match the game's internal
// difficulty numbering, which skips 5 and 7.
type Difficulty int

const (
	DifficultyEasy       Difficulty = 1 // 75% enemy health
	DifficultyNormal     Difficulty = 2
	DifficultyHard       Difficulty = 3 // 120% enemy health
	DifficultyImpossible Difficulty = 4 // 150% enemy health, fast bullets
	DifficultySuicide    Difficulty = 6 // 200% enemy health
	DifficultyLordOfGame Difficulty = 8 // 400% enemy health
)

// LogicDifficulty selects how demanding access rules are.
type LogicDifficulty int

const (
	LogicBeginner LogicDifficulty = 1
	LogicStandard LogicDifficulty = 2
	LogicExpert   LogicDifficulty = 3
	LogicMaster   LogicDifficulty = 4
	LogicNoLogic  LogicDifficulty = 5 // everything assumed beatable
)

// GameSpeed forces the in-game speed setting.
type GameSpeed int

const (
	SpeedOff    GameSpeed = -1 // freely choosable
	SpeedSlug   GameSpeed = 0
	SpeedSlower GameSpeed = 1
	SpeedSlow   GameSpeed = 2
	SpeedNormal GameSpeed = 3
	SpeedTurbo  GameSpeed = 4
)

// Weapon cost modes. Non-negative BaseWeaponCost values fix every weapon's
// base price to that amount instead.
const (
	WeaponCostOriginal   = -1
	WeaponCostBalanced   = -2
	WeaponCostRandomized = -3
)

// Set holds fully resolved option values. Immutable after resolution;
// shared read-only across generation, rule evaluation and output.
type Set struct {
	Tyrian2000Support bool
	Episodes          [5]EpisodeMode // indexed by episode number - 1
	BossWeaknesses    bool

	StartingMoney        int
	StartingMaxPower     int
	RandomStartingWeapon bool
	StartInventory       map[string]int
	RemoveFromItemPool   map[string]int

	ShopMode       ShopMode
	ShopItemCount  int // 1..330, or -1..-5 to force that many per shop
	MoneyPoolScale int // percentage, 20..400
	BaseWeaponCost int // fixed price, or one of the WeaponCost modes
	Progressive    bool
	Specials       SpecialsMode
	Twiddles       TwiddlesMode

	LogicDifficulty  LogicDifficulty
	LogicBossTimeout bool // bosses may be waited out; rules demand survivability instead
	Difficulty       Difficulty
	HardContact      bool // contact bypasses shields
	ExcessArmor      bool

	GameSpeed         GameSpeed
	ShowTwiddleInputs bool
	ArchipelagoRadar  bool
	Christmas         bool
	DeathLink         bool
}

// Episode returns the mode of the given episode.
func (s *Set) Episode(ep items.Episode) EpisodeMode {
	return s.Episodes[int(ep)-1]
}

// PlayEpisodes lists the episodes whose levels are in the seed, ascending.
func (s *Set) PlayEpisodes() []items.Episode {
	var out []items.Episode
	for i, mode := range s.Episodes {
		if mode != EpisodeOff {
			out = append(out, items.Episode(i+1))
		}
	}
	return out
}

// GoalEpisodes lists the episodes whose final boss must fall to win,
// ascending.
func (s *Set) GoalEpisodes() []items.Episode {
	var out []items.Episode
	for i, mode := range s.Episodes {
		if mode == EpisodeGoal {
			out = append(out, items.Episode(i+1))
		}
	}
	return out
}

// StartLevel returns the level precollected by default, taken from the
// lowest played episode.
func (s *Set) StartLevel() string {
	switch {
	case s.Episodes[0] != EpisodeOff:
		return "TYRIAN (Episode 1)"
	case s.Episodes[1] != EpisodeOff:
		return "TORM (Episode 2)"
	case s.Episodes[2] != EpisodeOff:
		return "GAUNTLET (Episode 3)"
	case s.Episodes[3] != EpisodeOff:
		return "SURFACE (Episode 4)"
	default:
		return "ASTEROIDS (Episode 5)"
	}
}
