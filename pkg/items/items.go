// Package items holds the static item catalog: levels, weapons, sidekicks,
// upgrades and credit caches, keyed by name with stable multiworld IDs.
package items

import "fmt"

// BaseID is the first multiworld item ID reserved for this game. Catalog
// local IDs are offset by it to form globally unique IDs.
const BaseID = 20031000

// Episode identifies one of the five campaigns.
type Episode int

const (
	EpisodeEscape         Episode = 1
	EpisodeTreachery      Episode = 2
	EpisodeMissionSuicide Episode = 3
	EpisodeAnEndToFate    Episode = 4
	EpisodeHazudraFodder  Episode = 5
)

// Subtitle returns the campaign name shown alongside the episode number.
func (e Episode) Subtitle() string {
	switch e {
	case EpisodeEscape:
		return "Escape"
	case EpisodeTreachery:
		return "Treachery"
	case EpisodeMissionSuicide:
		return "Mission: Suicide"
	case EpisodeAnEndToFate:
		return "An End to Fate"
	case EpisodeHazudraFodder:
		return "Hazudra Fodder"
	}
	return "Unknown"
}

// String formats the episode the way level and event names spell it,
// e.g. "Episode 1 (Escape)".
func (e Episode) String() string {
	return fmt.Sprintf("Episode %d (%s)", int(e), e.Subtitle())
}

// Class is an item's importance to the host's fill algorithm.
type Class uint8

const (
	ClassFiller Class = iota
	ClassUseful
	ClassProgression
	ClassTrap // reserved; the catalog currently defines no trap items
)

func (c Class) String() string {
	switch c {
	case ClassFiller:
		return "filler"
	case ClassUseful:
		return "useful"
	case ClassProgression:
		return "progression"
	case ClassTrap:
		return "trap"
	}
	return "unknown"
}

// Tag marks gameplay properties of weapons and sidekicks that access rules
// and pool assembly care about.
type Tag uint8

const (
	TagPierces    Tag = 1 << iota // shots pass through enemies, hitting targets behind them
	TagHighDPS                    // concentrated fire harmful to all enemy life
	TagSideways                   // reliably hits targets horizontally adjacent to the ship
	TagHasAmmo                    // sidekick with a limited, slowly recharging ammo supply
	TagRightOnly                  // sidekick that only mounts on the right side
	TagFullScreen                 // special that can deal damage anywhere on screen
	TagDefensive                  // provides some level of all-around defense
)

// Def describes one catalog entry.
type Def struct {
	Name       string
	LocalID    int
	Count      int // copies in the pool; 0 reserves the ID without adding any
	Class      Class
	Episode    Episode // set for level items only
	Tags       Tag
	Tyrian2000 bool // requires Tyrian 2000 support to enter the pool
	Value      int  // credit amount, for credit cache items only
}

// ID returns the item's multiworld ID.
func (d Def) ID() int { return BaseID + d.LocalID }

// HasTag reports whether the item carries the given gameplay tag.
func (d Def) HasTag(t Tag) bool { return d.Tags&t != 0 }

// Tossable reports whether the item may be trimmed from an overfull pool.
// Progression items are never tossed.
func (d Def) Tossable() bool { return d.Class != ClassProgression }

var byName = make(map[string]Def)

func index(defs []Def) {
	for _, d := range defs {
		if _, dup := byName[d.Name]; dup {
			panic("items: duplicate catalog name " + d.Name)
		}
		byName[d.Name] = d
	}
}

func init() {
	index(Levels)
	index(FrontPorts)
	index(RearPorts)
	index(SpecialWeapons)
	index(Sidekicks)
	index(Split)
	index(Progressive)
	index(Others)
	index(DataCubes)
}

// Get returns the catalog entry for name.
func Get(name string) (Def, bool) {
	d, ok := byName[name]
	return d, ok
}

// Names returns every catalog name keyed to its multiworld ID.
func Names() map[string]int {
	out := make(map[string]int, len(byName))
	for name, d := range byName {
		out[name] = d.ID()
	}
	return out
}

// AllNames returns every catalog name in category and ID order.
func AllNames() []string {
	var out []string
	for _, defs := range [][]Def{Levels, FrontPorts, RearPorts, SpecialWeapons, Sidekicks, Split, Progressive, Others, DataCubes} {
		for _, d := range defs {
			out = append(out, d.Name)
		}
	}
	return out
}

// ByTag returns the names of weapons and sidekicks carrying tag, in catalog
// order, honoring the Tyrian 2000 cutoff. Categories are scanned in the
// order front ports, rear ports, specials, sidekicks.
func ByTag(tag Tag, tyrian2000 bool) []string {
	var out []string
	for _, defs := range [][]Def{FrontPorts, RearPorts, SpecialWeapons, Sidekicks} {
		for _, d := range defs {
			if d.Tags&tag == 0 {
				continue
			}
			if d.Tyrian2000 && !tyrian2000 {
				continue
			}
			out = append(out, d.Name)
		}
	}
	return out
}

// PoolCount returns the number of copies of d the pool receives under the
// given Tyrian 2000 setting.
func (d Def) PoolCount(tyrian2000 bool) int {
	if d.Tyrian2000 && !tyrian2000 {
		return 0
	}
	return d.Count
}
