// Package locations holds the check layout for every playable level:
// which checks a level contains, how they nest behind gated sections,
// and how each level's shop prices its stock.
//
// Check IDs share the same base as item IDs. Level checks occupy the
// low range, shop slots start at local ID 1000 and each level owns
// five consecutive slots.
package locations

import (
	"fmt"
	"math/rand/v2"
	"sort"

	"github.com/redshift-games/tyrian-world/pkg/items"
)

const BaseID = items.BaseID

// ShopSlots is how many purchasable slots every level's shop exposes.
const ShopSlots = 5

// Entry is one node in a level's check tree. A plain check carries a
// LocalID. A shop stub expands into ShopSlots numbered checks starting
// at LocalID. A gate has Sub entries that are only in logical reach once
// the gate's requirements hold; gates become their own regions, wired to
// the parent by an entrance of the same name.
type Entry struct {
	Name    string
	LocalID int
	Shop    bool
	Sub     []Entry
}

// Gate reports whether the entry is a gated section rather than a check.
func (e Entry) Gate() bool { return e.Sub != nil }

// Level is one level's region data.
type Level struct {
	Name    string
	Episode items.Episode
	Entries []Entry

	// Shop pricing profiles, drawn from uniformly when stocking the
	// shop. Nil means defaultSetups. A trailing "!" promotes the slot
	// to priority, a trailing "#" excludes it from progression.
	ShopSetups []string
}

// PriceRange generates prices in [Min, Max) stepping by Step, the
// half-open convention keeping the table easy to eyeball against the
// in-game shop caps.
type PriceRange struct {
	Min, Max, Step int
}

// Tiered price profiles, roughly cheap to extortionate. Z always rolls
// the maximum the game can display.
var priceTiers = map[string]PriceRange{
	"A": {50, 501, 1},
	"B": {100, 1001, 1},
	"C": {200, 2001, 2},
	"D": {400, 3001, 2},
	"E": {750, 3001, 5},
	"F": {500, 5001, 5},
	"G": {1000, 7501, 5},
	"H": {2000, 7501, 10},
	"I": {3000, 9001, 10},
	"J": {2000, 10001, 5},
	"K": {3000, 10001, 10},
	"L": {5000, 10001, 25},
	"M": {3000, 15001, 10},
	"N": {5000, 15001, 25},
	"O": {7500, 15001, 50},
	"P": {4000, 20001, 10},
	"Q": {6000, 20001, 25},
	"R": {5000, 25001, 50},
	"S": {5000, 30001, 100},
	"T": {10000, 30001, 25},
	"U": {10000, 40001, 50},
	"V": {10000, 50001, 100},
	"W": {10000, 65601, 100},
	"X": {20000, 65601, 100},
	"Y": {30000, 65601, 100},
	"Z": {65535, 65536, 1},
}

var defaultSetups = []string{"F", "H", "K", "L"}

// MaxShopPrice is the largest price the game can show, and the clamp
// applied to every roll.
const MaxShopPrice = 65535

// ShopSetup is one parsed pricing profile.
type ShopSetup struct {
	Tier     string
	Priority bool
	Excluded bool
}

func parseSetup(s string) ShopSetup {
	setup := ShopSetup{Tier: s[:1]}
	if len(s) > 1 {
		setup.Priority = s[len(s)-1] == '!'
		setup.Excluded = s[len(s)-1] == '#'
	}
	return setup
}

// RollPrice draws a price from the setup's tier, clamped to what the
// shop screen can display.
func (s ShopSetup) RollPrice(rng *rand.Rand) int {
	r, ok := priceTiers[s.Tier]
	if !ok {
		return MaxShopPrice
	}
	steps := (r.Max - r.Min + r.Step - 1) / r.Step
	price := r.Min + r.Step*rng.IntN(steps)
	if price > MaxShopPrice {
		price = MaxShopPrice
	}
	return price
}

// Setups returns the level's parsed pricing profiles.
func (l *Level) Setups() []ShopSetup {
	raw := l.ShopSetups
	if raw == nil {
		raw = defaultSetups
	}
	setups := make([]ShopSetup, len(raw))
	for i, s := range raw {
		setups[i] = parseSetup(s)
	}
	return setups
}

// RandomSetup picks one pricing profile for a single shop slot.
func (l *Level) RandomSetup(rng *rand.Rand) ShopSetup {
	setups := l.Setups()
	return setups[rng.IntN(len(setups))]
}

// VisitFunc receives every entry of a level's tree along with the name
// of the region that owns it. Gates are visited before their contents.
type VisitFunc func(region string, e Entry)

// Visit walks the check tree in declaration order.
func (l *Level) Visit(fn VisitFunc) {
	visit(l.Name, l.Entries, fn)
}

func visit(region string, entries []Entry, fn VisitFunc) {
	for _, e := range entries {
		fn(region, e)
		if e.Gate() {
			visit(e.Name, e.Sub, fn)
		}
	}
}

// ShopItemName names one of a shop stub's expanded checks. Slots count
// from 1.
func ShopItemName(shop string, slot int) string {
	return fmt.Sprintf("%s - Item %d", shop, slot)
}

// LocationNames returns every check name the level can hold, shop slots
// expanded, in declaration order.
func (l *Level) LocationNames() []string {
	var names []string
	l.Visit(func(_ string, e Entry) {
		switch {
		case e.Gate():
		case e.Shop:
			for slot := 1; slot <= ShopSlots; slot++ {
				names = append(names, ShopItemName(e.Name, slot))
			}
		default:
			names = append(names, e.Name)
		}
	})
	return names
}

var (
	byName   = make(map[string]*Level)
	nameToID = make(map[string]int)
)

func init() {
	for i := range Levels {
		l := &Levels[i]
		if _, dup := byName[l.Name]; dup {
			panic("duplicate level " + l.Name)
		}
		byName[l.Name] = l
		l.Visit(func(_ string, e Entry) {
			switch {
			case e.Gate():
			case e.Shop:
				for slot := 1; slot <= ShopSlots; slot++ {
					nameToID[ShopItemName(e.Name, slot)] = BaseID + e.LocalID + slot - 1
				}
			default:
				nameToID[e.Name] = BaseID + e.LocalID
			}
		})
	}
}

// ByName looks up a level region by its full name.
func ByName(name string) (*Level, bool) {
	l, ok := byName[name]
	return l, ok
}

// NameToID maps every check name to its network ID.
func NameToID() map[string]int {
	out := make(map[string]int, len(nameToID))
	for name, id := range nameToID {
		out[name] = id
	}
	return out
}

// ID resolves one check name.
func ID(name string) (int, bool) {
	id, ok := nameToID[name]
	return id, ok
}

// AllNames returns every check name in the catalog, sorted by ID.
func AllNames() []string {
	names := make([]string, 0, len(nameToID))
	for name := range nameToID {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return nameToID[names[i]] < nameToID[names[j]]
	})
	return names
}

// ForEpisode returns the episode's levels in canonical order.
func ForEpisode(ep items.Episode) []*Level {
	var out []*Level
	for i := range Levels {
		if Levels[i].Episode == ep {
			out = append(out, &Levels[i])
		}
	}
	return out
}

// CompletionEvent names the victory event for an episode and the level
// whose endpoint awards it.
func CompletionEvent(ep items.Episode) (event, level string) {
	e := completionEvents[ep-1]
	return e.Event, e.Level
}

var completionEvents = [5]struct{ Event, Level string }{
	{"Episode 1 (Escape) Complete", "ASSASSIN (Episode 1)"},
	{"Episode 2 (Treachery) Complete", "GRYPHON (Episode 2)"},
	{"Episode 3 (Mission: Suicide) Complete", "FLEET (Episode 3)"},
	{"Episode 4 (An End to Fate) Complete", "NOSE DRIP (Episode 4)"},
	{"Episode 5 (Hazudra Fodder) Complete", "FRUIT (Episode 5)"},
}
