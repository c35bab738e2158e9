// Package world assembles one randomized Tyrian world from a resolved
// option set and a seed: the region graph with its access rules, the
// item pool, shop stock and prices, twiddle loadouts, slot data, and
// spoiler output. Everything derives deterministically from the pair
// (options, seed); the host owns placement, so nothing here fills
// locations with items.
package world

import (
	"context"
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"hash/fnv"
	"math/rand/v2"

	"github.com/redshift-games/tyrian-world/pkg/items"
	"github.com/redshift-games/tyrian-world/pkg/locations"
	"github.com/redshift-games/tyrian-world/pkg/logic"
	"github.com/redshift-games/tyrian-world/pkg/options"
	"github.com/redshift-games/tyrian-world/pkg/twiddles"
)

var (
	// ErrEmptySeed is returned by Generate when no seed is supplied.
	// Callers that want a random world roll their own seed first.
	ErrEmptySeed = errors.New("seed must not be empty")

	// ErrUnknownName is wrapped into construction errors when a rule or
	// exclusion targets an entrance or location that does not exist.
	ErrUnknownName = errors.New("unknown name")

	// ErrPoolOverflow is wrapped into construction errors when more
	// items remain than locations exist to hold them, even after every
	// tossable filler item has been dropped.
	ErrPoolOverflow = errors.New("item pool exceeds location count")
)

// World is a fully generated Tyrian world. Regions, entrances, and
// locations form the access graph; Pool and Precollected partition the
// item multiset between the host's fill and the player's start state.
type World struct {
	Options *options.Set
	Seed    string
	Tables  *logic.DamageTables

	// Menu is the graph root. Regions holds every region in creation
	// order, Menu first; Locations holds every real (non-event)
	// location in creation order; Events holds the per-episode
	// completion events.
	Menu      *Region
	Regions   []*Region
	Locations []*Location
	Events    []*Location

	// AllLevels lists the level items for the played episodes in
	// catalog order. The first entry of Precollected order is not
	// meaningful; membership is.
	AllLevels    []string
	Pool         []string
	Precollected []string

	SingleSpecial  string
	Twiddles       []twiddles.Twiddle
	WeaponCosts    map[string]int
	BossWeaknesses map[items.Episode]string

	// TotalMoneyNeeded is the credit target the junk fill aims for:
	// the cost of maxing the priciest weapon plus every rolled shop
	// price, less starting money, floored at 400 per junk slot.
	TotalMoneyNeeded int

	regionByName   map[string]*Region
	entranceByName map[string]*Entrance
	locationByName map[string]*Location
}

// Generate builds the world for opts and seed. The same pair always
// produces the same world, down to shop prices, pool order, and slot
// data bytes. opts must already have passed options.Resolve.
func Generate(ctx context.Context, opts *options.Set, seed string) (*World, error) {
	if opts == nil {
		return nil, errors.New("generate: options must not be nil")
	}
	if seed == "" {
		return nil, fmt.Errorf("generate: %w", ErrEmptySeed)
	}

	w := &World{
		Options:        opts,
		Seed:           seed,
		Tables:         logic.NewDamageTables(opts.LogicDifficulty),
		WeaponCosts:    map[string]int{},
		BossWeaknesses: map[items.Episode]string{},
		regionByName:   map[string]*Region{},
		entranceByName: map[string]*Entrance{},
		locationByName: map[string]*Location{},
	}
	rng := seedRNG(seed)

	w.rollWeaponCosts(rng)
	w.TotalMoneyNeeded = items.MaxUpgradeCost(w.maxWeaponCost())
	if opts.Twiddles != options.TwiddlesOff {
		w.Twiddles = twiddles.Generate(rng, opts.Twiddles == options.TwiddlesChaos)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := w.buildGraph(rng); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := w.buildPool(rng); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := w.applyRules(); err != nil {
		return nil, err
	}
	return w, nil
}

// RandomSeed rolls a fresh seed for callers that did not supply one.
func RandomSeed() string {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		panic(err)
	}
	return fmt.Sprintf("%x", b[:])
}

// seedRNG folds the seed string into a PCG source. FNV-128a gives two
// independent words, so textually close seeds still diverge.
func seedRNG(seed string) *rand.Rand {
	h := fnv.New128a()
	h.Write([]byte(seed))
	sum := h.Sum(nil)
	hi := binary.BigEndian.Uint64(sum[:8])
	lo := binary.BigEndian.Uint64(sum[8:])
	return rand.New(rand.NewPCG(hi, lo))
}

// Region returns the named region, if it exists.
func (w *World) Region(name string) (*Region, bool) {
	r, ok := w.regionByName[name]
	return r, ok
}

// Entrance returns the named entrance, if it exists.
func (w *World) Entrance(name string) (*Entrance, bool) {
	e, ok := w.entranceByName[name]
	return e, ok
}

// Location returns the named real or event location, if it exists.
func (w *World) Location(name string) (*Location, bool) {
	l, ok := w.locationByName[name]
	return l, ok
}

// GoalLevels returns the completion level of every goal episode, in
// episode order.
func (w *World) GoalLevels() []string {
	var levels []string
	for _, ep := range w.Options.GoalEpisodes() {
		_, level := locations.CompletionEvent(ep)
		levels = append(levels, level)
	}
	return levels
}

// rollWeaponCosts fills WeaponCosts for every upgradable weapon. The
// randomized mode rolls each cost in catalog order so the sequence is
// reproducible; the other modes never touch the RNG.
func (w *World) rollWeaponCosts(rng *rand.Rand) {
	switch w.Options.BaseWeaponCost {
	case options.WeaponCostOriginal:
		for name, cost := range items.DefaultUpgradeCosts {
			w.WeaponCosts[name] = cost.Original
		}
	case options.WeaponCostBalanced:
		for name, cost := range items.DefaultUpgradeCosts {
			w.WeaponCosts[name] = cost.Balanced
		}
	case options.WeaponCostRandomized:
		for _, def := range items.FrontPorts {
			if _, ok := items.DefaultUpgradeCosts[def.Name]; ok {
				w.WeaponCosts[def.Name] = 400 + 50*rng.IntN(29)
			}
		}
		for _, def := range items.RearPorts {
			if _, ok := items.DefaultUpgradeCosts[def.Name]; ok {
				w.WeaponCosts[def.Name] = 400 + 50*rng.IntN(29)
			}
		}
	default:
		for name := range items.DefaultUpgradeCosts {
			w.WeaponCosts[name] = w.Options.BaseWeaponCost
		}
	}
}

func (w *World) maxWeaponCost() int {
	max := 0
	for _, cost := range w.WeaponCosts {
		if cost > max {
			max = cost
		}
	}
	return max
}
