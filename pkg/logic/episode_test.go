package logic

import (
	"strings"
	"testing"

	"github.com/redshift-games/tyrian-world/pkg/items"
	"github.com/redshift-games/tyrian-world/pkg/locations"
	"github.com/redshift-games/tyrian-world/pkg/options"
)

// ruleRecorder captures everything SetLevelRules emits.
type ruleRecorder struct {
	entrances map[string]Rule
	locations map[string]Rule
	excluded  map[string]bool
	prefixes  []string
}

func newRuleRecorder() *ruleRecorder {
	return &ruleRecorder{
		entrances: map[string]Rule{},
		locations: map[string]Rule{},
		excluded:  map[string]bool{},
	}
}

func (r *ruleRecorder) EntranceRule(name string, rule Rule) { r.entrances[name] = rule }
func (r *ruleRecorder) LocationRule(name string, rule Rule) { r.locations[name] = rule }
func (r *ruleRecorder) ExcludeLocation(name string)         { r.excluded[name] = true }
func (r *ruleRecorder) ExcludeLocationsByPrefix(p string)   { r.prefixes = append(r.prefixes, p) }

func levelRules(t *testing.T, mutate func(*options.Set)) *ruleRecorder {
	t.Helper()
	opts := options.Defaults()
	opts.Episodes = [5]options.EpisodeMode{
		options.EpisodeGoal, options.EpisodeOn, options.EpisodeOn,
		options.EpisodeOn, options.EpisodeOn,
	}
	if mutate != nil {
		mutate(opts)
	}
	rec := newRuleRecorder()
	SetLevelRules(Config{Options: opts, Tables: NewDamageTables(opts.LogicDifficulty)}, rec)
	return rec
}

// catalogNames gathers every gate and check name the level catalog
// defines, the namespace the emitted rules must land in.
func catalogNames() (gates, checks map[string]bool) {
	gates = map[string]bool{}
	checks = map[string]bool{}
	for i := range locations.Levels {
		l := &locations.Levels[i]
		l.Visit(func(_ string, e locations.Entry) {
			if e.Gate() {
				gates[e.Name] = true
			}
		})
		for _, name := range l.LocationNames() {
			checks[name] = true
		}
	}
	return gates, checks
}

func TestLevelRuleNamesResolve(t *testing.T) {
	gates, checks := catalogNames()

	logics := []options.LogicDifficulty{
		options.LogicBeginner, options.LogicStandard,
		options.LogicExpert, options.LogicMaster,
	}
	for _, logic := range logics {
		for _, timeout := range []bool{false, true} {
			for _, contact := range []bool{false, true} {
				rec := levelRules(t, func(s *options.Set) {
					s.LogicDifficulty = logic
					s.LogicBossTimeout = timeout
					s.HardContact = contact
					s.Difficulty = options.DifficultyHard
				})

				for name := range rec.entrances {
					if !gates[name] {
						t.Errorf("logic %v timeout %v: entrance rule targets unknown gate %q",
							logic, timeout, name)
					}
				}
				for name := range rec.locations {
					if !checks[name] {
						t.Errorf("logic %v timeout %v: location rule targets unknown check %q",
							logic, timeout, name)
					}
				}
				for name := range rec.excluded {
					if !checks[name] {
						t.Errorf("logic %v: exclusion targets unknown check %q", logic, name)
					}
				}
				for _, prefix := range rec.prefixes {
					found := false
					for name := range checks {
						if strings.HasPrefix(name, prefix) {
							found = true
							break
						}
					}
					if !found {
						t.Errorf("logic %v: exclusion prefix %q matches no checks", logic, prefix)
					}
				}
			}
		}
	}
}

func TestLevelRuleItemsExist(t *testing.T) {
	var walk func(Rule, func(Rule))
	walk = func(r Rule, fn func(Rule)) {
		fn(r)
		for _, sub := range r.Sub {
			walk(sub, fn)
		}
	}

	for _, specials := range []options.SpecialsMode{options.SpecialsOff, options.SpecialsAsItems} {
		rec := levelRules(t, func(s *options.Set) {
			s.Specials = specials
		})

		check := func(target string, r Rule) {
			walk(r, func(n Rule) {
				if n.Op != OpHas {
					return
				}
				if _, ok := items.Get(n.Item); !ok {
					t.Errorf("rule on %q wants unknown item %q", target, n.Item)
				}
			})
		}
		for name, r := range rec.entrances {
			check(name, r)
		}
		for name, r := range rec.locations {
			check(name, r)
		}
	}
}

func TestNoLogicEmitsNothing(t *testing.T) {
	rec := levelRules(t, func(s *options.Set) {
		s.LogicDifficulty = options.LogicNoLogic
	})
	total := len(rec.entrances) + len(rec.locations) + len(rec.excluded) + len(rec.prefixes)
	if total != 0 {
		t.Errorf("no_logic produced %d rules and exclusions, want none", total)
	}
}

func TestRulesOnlyForPlayedEpisodes(t *testing.T) {
	rec := levelRules(t, func(s *options.Set) {
		s.Episodes = [5]options.EpisodeMode{
			options.EpisodeGoal, options.EpisodeOff, options.EpisodeOff,
			options.EpisodeOff, options.EpisodeOff,
		}
	})

	assertEpisode1 := func(kind, name string) {
		if !strings.Contains(name, "(Episode 1)") {
			t.Errorf("%s %q produced while only episode 1 plays", kind, name)
		}
	}
	for name := range rec.entrances {
		assertEpisode1("entrance rule", name)
	}
	for name := range rec.locations {
		assertEpisode1("location rule", name)
	}
	for name := range rec.excluded {
		assertEpisode1("exclusion", name)
	}
	for _, prefix := range rec.prefixes {
		assertEpisode1("exclusion prefix", prefix)
	}
}

func TestBossTimeoutRules(t *testing.T) {
	strict := levelRules(t, func(s *options.Set) { s.LogicBossTimeout = false })
	lenient := levelRules(t, func(s *options.Set) { s.LogicBossTimeout = true })

	// With timeouts out of logic the kill is demanded at the entrance
	// and the boss check needs no rule of its own.
	if _, ok := strict.locations["TYRIAN (Episode 1) - Boss"]; ok {
		t.Error("strict timeout should gate the boss behind its entrance alone")
	}
	if _, ok := lenient.locations["TYRIAN (Episode 1) - Boss"]; !ok {
		t.Error("lenient timeout should give the boss check its own kill rule")
	}

	// TORM's timeout is attainable with an empty loadout, so the
	// lenient entrance carries no rule at all.
	if _, ok := lenient.entrances["TORM (Episode 2) @ Pass Boss (can time out)"]; ok {
		t.Error("TORM pass-boss should be unconditional when timeouts are in logic")
	}
	if _, ok := strict.entrances["TORM (Episode 2) @ Pass Boss (can time out)"]; !ok {
		t.Error("TORM pass-boss needs a kill rule when timeouts are out of logic")
	}
}

func TestExclusionsPerLogicDifficulty(t *testing.T) {
	beginner := levelRules(t, func(s *options.Set) {
		s.LogicDifficulty = options.LogicBeginner
	})
	wantExcluded := []string{
		"TYRIAN (Episode 1) - HOLES Warp Orb",
		"TYRIAN (Episode 1) - SOH JIN Warp Orb",
		"TYRIAN (Episode 1) - Tank Turn-and-fire Secret",
		"ASTEROID2 (Episode 1) - Tank Turn-around Secret 1",
		"WINDY (Episode 1) - Central Question Mark",
		"GYGES (Episode 2) - GEM WAR Warp Orb",
		"TORM (Episode 2) - Ship Fleeing Dragon Secret",
		"SAWBLADES (Episode 3) - SuperCarrot Secret Drop",
		"TYRIAN X (Episode 3) - First U-Ship Secret",
		"BONUS (Episode 3) - Sonic Wave Hell Turret",
	}
	for _, name := range wantExcluded {
		if !beginner.excluded[name] {
			t.Errorf("beginner should exclude %q", name)
		}
	}

	master := levelRules(t, func(s *options.Set) {
		s.LogicDifficulty = options.LogicMaster
	})
	if len(master.excluded) != 0 || len(master.prefixes) != 0 {
		t.Errorf("master should exclude nothing, got %v and %v",
			master.excluded, master.prefixes)
	}
}

// fullInventory is every weapon, special and upgrade a pool can grant.
// Every rule must pass with all of it collected, or a fully filled
// seed could still be unbeatable.
func fullInventory() inv {
	bag := inv{
		"Armor Up":             10,
		"Maximum Power Up":     10,
		"Gravitron Pulse-Wave": 1,
		"Invulnerability":      1,
		"Repulsor":             1,
	}
	for _, defs := range [][]items.Def{items.FrontPorts, items.RearPorts} {
		for _, d := range defs {
			bag[d.Name] = 1
		}
	}
	return bag
}

func TestFullInventorySatisfiesEveryRule(t *testing.T) {
	logics := []options.LogicDifficulty{
		options.LogicBeginner, options.LogicStandard,
		options.LogicExpert, options.LogicMaster,
	}
	difficulties := []options.Difficulty{
		options.DifficultyEasy, options.DifficultyNormal, options.DifficultyHard,
	}
	for _, logic := range logics {
		for _, difficulty := range difficulties {
			for _, contact := range []bool{false, true} {
				rec := levelRules(t, func(s *options.Set) {
					s.LogicDifficulty = logic
					s.Difficulty = difficulty
					s.HardContact = contact
					s.LogicBossTimeout = false
				})

				ctx := Context{Inv: fullInventory(), Damage: NewDamageTables(logic)}
				for name, r := range rec.entrances {
					if !r.Eval(ctx) {
						t.Errorf("logic %v difficulty %v contact %v: entrance %q fails with every item",
							logic, difficulty, contact, name)
					}
				}
				for name, r := range rec.locations {
					if !r.Eval(ctx) {
						t.Errorf("logic %v difficulty %v contact %v: check %q fails with every item",
							logic, difficulty, contact, name)
					}
				}
			}
		}
	}
}
