package world

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/redshift-games/tyrian-world/pkg/items"
	"github.com/redshift-games/tyrian-world/pkg/locations"
	"github.com/redshift-games/tyrian-world/pkg/logic"
	"github.com/redshift-games/tyrian-world/pkg/options"
	"github.com/redshift-games/tyrian-world/pkg/twiddles"
)

// Region is one node of the access graph. Reaching a region makes its
// locations candidates, subject to their own rules, and its exits
// candidates for expanding the search.
type Region struct {
	Name      string
	Locations []*Location
	Exits     []*Entrance
}

// Entrance is a one-way connection between regions. The zero Rule is
// open; rules attached later AND together.
type Entrance struct {
	Name   string
	Target *Region
	Rule   logic.Rule

	ruled bool
}

func (e *Entrance) addRule(r logic.Rule) {
	if e.ruled {
		e.Rule = logic.All(e.Rule, r)
		return
	}
	e.Rule, e.ruled = r, true
}

// Location is a single check. ID is the network ID the host and game
// exchange; event locations have ID zero and instead name, in Event,
// the real location whose reach completes their episode.
type Location struct {
	Name   string
	ID     int
	Region *Region
	Rule   logic.Rule

	Event       string
	ShopPrice   int // -1 unless the location is a shop slot
	Priority    bool
	Excluded    bool
	CreditsOnly bool

	ruled bool
}

func (l *Location) addRule(r logic.Rule) {
	if l.ruled {
		l.Rule = logic.All(l.Rule, r)
		return
	}
	l.Rule, l.ruled = r, true
}

// IsShop reports whether the location is a purchasable shop slot.
func (l *Location) IsShop() bool { return l.ShopPrice >= 0 }

// IsEvent reports whether the location is an episode completion event.
func (l *Location) IsEvent() bool { return l.Event != "" }

func (w *World) addRegion(name string) *Region {
	r := &Region{Name: name}
	w.Regions = append(w.Regions, r)
	w.regionByName[name] = r
	return r
}

func (w *World) connect(from, to *Region, name string) *Entrance {
	e := &Entrance{Name: name, Target: to}
	from.Exits = append(from.Exits, e)
	w.entranceByName[name] = e
	return e
}

func (w *World) place(r *Region, l *Location) *Location {
	l.Region = r
	r.Locations = append(r.Locations, l)
	w.locationByName[l.Name] = l
	if !l.IsEvent() {
		w.Locations = append(w.Locations, l)
	}
	return l
}

// shopStub remembers where a level's shop hangs off the check tree so
// slots can be stocked after the per-level counts are known.
type shopStub struct {
	level  *locations.Level
	region *Region // the "Shop - LEVEL" region itself
	nameID int     // LocalID of the stub; slot N is nameID + N - 1
	name   string
	slots  int
}

// buildGraph creates every region, entrance, and location for the
// played episodes: the menu and hub, one region per level behind an
// "Open LEVEL" entrance, gate sub-regions nested per the catalog, shop
// regions with their stocked slots, and completion events for the goal
// episodes. Shop slot prices consume the RNG here, in level order.
func (w *World) buildGraph(rng *rand.Rand) error {
	w.Menu = w.addRegion("Menu")
	hub := w.addRegion("Play Next Level")
	w.connect(w.Menu, hub, "Menu -> Play Next Level")

	var stubs []*shopStub
	creditsOnly := w.Options.ShopMode == options.ShopsOnly

	for _, ep := range w.Options.PlayEpisodes() {
		for _, level := range locations.ForEpisode(ep) {
			w.AllLevels = append(w.AllLevels, level.Name)

			levelRegion := w.addRegion(level.Name)
			open := w.connect(hub, levelRegion, "Open "+level.Name)
			open.addRule(logic.Has(level.Name))

			level.Visit(func(region string, e locations.Entry) {
				parent := w.regionByName[region]
				switch {
				case e.Gate():
					gate := w.addRegion(e.Name)
					w.connect(parent, gate, e.Name)
				case e.Shop:
					shop := w.addRegion(e.Name)
					w.connect(parent, shop, "Can shop at "+level.Name)
					stubs = append(stubs, &shopStub{
						level:  level,
						region: shop,
						nameID: e.LocalID,
						name:   e.Name,
					})
				default:
					w.place(parent, &Location{
						Name:        e.Name,
						ID:          locations.BaseID + e.LocalID,
						ShopPrice:   -1,
						CreditsOnly: creditsOnly,
					})
				}
			})
		}
	}

	if w.Options.ShopMode != options.ShopsNone {
		w.distributeShopItems(rng, stubs)
		w.stockShops(rng, stubs)
	}

	for _, ep := range w.Options.GoalEpisodes() {
		event, levelName := locations.CompletionEvent(ep)
		levelRegion := w.regionByName[levelName]
		if levelRegion == nil {
			return fmt.Errorf("goal episode %d: level %q: %w", ep, levelName, ErrUnknownName)
		}
		target := lastCheck(levelName)
		ev := w.place(levelRegion, &Location{
			Name:      event,
			Event:     target,
			ShopPrice: -1,
		})
		w.Events = append(w.Events, ev)
	}
	return nil
}

// lastCheck names the final in-level check of a level, the one that
// only opens up once the level is effectively beaten.
func lastCheck(levelName string) string {
	level, ok := locations.ByName(levelName)
	if !ok {
		return ""
	}
	last := ""
	level.Visit(func(_ string, e locations.Entry) {
		if !e.Gate() && !e.Shop {
			last = e.Name
		}
	})
	return last
}

// dataCubeName names the hint item a boss weakness adds to the pool.
func dataCubeName(ep items.Episode) string {
	return fmt.Sprintf("Data Cube (Episode %d)", ep)
}

// distributeShopItems decides how many slots each level's shop stocks.
// Negative option values force that many per shop. Otherwise every
// shop gets one slot once the budget covers all levels, and the
// remainder spreads randomly, at most five per shop.
func (w *World) distributeShopItems(rng *rand.Rand, stubs []*shopStub) {
	count := w.Options.ShopItemCount
	switch {
	case count <= -1:
		for _, s := range stubs {
			s.slots = -count
		}
	case count < len(stubs):
		for _, i := range rng.Perm(len(stubs))[:count] {
			stubs[i].slots = 1
		}
	default:
		total := count
		if max := len(stubs) * locations.ShopSlots; total > max {
			total = max
		}
		for _, s := range stubs {
			s.slots = 1
		}
		total -= len(stubs)
		pool := len(stubs) * (locations.ShopSlots - 1)
		for _, i := range rng.Perm(pool)[:total] {
			stubs[i%len(stubs)].slots++
		}
	}
}

// stockShops creates the slot locations and rolls each price from the
// level's pricing profiles. Prices count toward the money target so
// the junk fill can cover what the shops charge.
func (w *World) stockShops(rng *rand.Rand, stubs []*shopStub) {
	for _, s := range stubs {
		for slot := 1; slot <= s.slots; slot++ {
			setup := s.level.RandomSetup(rng)
			price := setup.RollPrice(rng)
			w.place(s.region, &Location{
				Name:      locations.ShopItemName(s.name, slot),
				ID:        locations.BaseID + s.nameID + slot - 1,
				ShopPrice: price,
				Priority:  setup.Priority,
				Excluded:  setup.Excluded,
			})
			w.TotalMoneyNeeded += price
		}
	}
}

// ruleSink receives the output of rule construction and attaches it to
// the graph. Unknown targets collect as construction errors instead of
// panicking mid-build.
type ruleSink struct {
	w    *World
	errs []error
}

var _ logic.Sink = (*ruleSink)(nil)

func (s *ruleSink) EntranceRule(name string, r logic.Rule) {
	e, ok := s.w.entranceByName[name]
	if !ok {
		s.errs = append(s.errs, fmt.Errorf("entrance rule %q: %w", name, ErrUnknownName))
		return
	}
	e.addRule(r)
}

func (s *ruleSink) LocationRule(name string, r logic.Rule) {
	l, ok := s.w.locationByName[name]
	if !ok {
		s.errs = append(s.errs, fmt.Errorf("location rule %q: %w", name, ErrUnknownName))
		return
	}
	l.addRule(r)
}

func (s *ruleSink) ExcludeLocation(name string) {
	l, ok := s.w.locationByName[name]
	if !ok {
		s.errs = append(s.errs, fmt.Errorf("exclude location %q: %w", name, ErrUnknownName))
		return
	}
	l.Excluded = true
}

func (s *ruleSink) ExcludeLocationsByPrefix(prefix string) {
	for _, l := range s.w.Locations {
		if strings.HasPrefix(l.Name, prefix) {
			l.Excluded = true
		}
	}
}

// applyRules runs rule construction for the world: per-level access
// requirements, boss weakness requirements on the goal bosses, and the
// shop exclusions that keep a lone goal level's shop out of
// progression.
func (w *World) applyRules() error {
	sink := &ruleSink{w: w}

	logic.SetLevelRules(logic.Config{
		Options:                w.Options,
		Tables:                 w.Tables,
		TwiddleInvulnerability: twiddles.Grants(w.Twiddles, twiddles.ActionInvulnerability),
		TwiddleRepulsor:        twiddles.Grants(w.Twiddles, twiddles.ActionRepulsor),
		StartInvulnerability:   w.hasPrecollected("Invulnerability"),
	}, sink)

	if w.Options.LogicDifficulty != options.LogicNoLogic {
		for _, ep := range w.Options.GoalEpisodes() {
			weapon, ok := w.BossWeaknesses[ep]
			if !ok {
				continue
			}
			target := w.Tables.MakeDPS(logic.DPS{Active: logic.MilliDPS})
			sink.LocationRule(w.bossLocation(ep), logic.All(
				logic.Has(dataCubeName(ep)),
				logic.WeaponDamage(weapon, target),
			))
		}
	}

	if goals := w.Options.GoalEpisodes(); len(goals) == 1 {
		_, level := locations.CompletionEvent(goals[0])
		sink.ExcludeLocationsByPrefix("Shop - " + level + " - ")
	}

	return errors.Join(sink.errs...)
}

// bossLocation names the check a goal episode's completion event
// watches.
func (w *World) bossLocation(ep items.Episode) string {
	_, level := locations.CompletionEvent(ep)
	return lastCheck(level)
}

func (w *World) hasPrecollected(name string) bool {
	for _, item := range w.Precollected {
		if item == name {
			return true
		}
	}
	return false
}
