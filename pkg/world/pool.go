package world

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/redshift-games/tyrian-world/pkg/items"
	"github.com/redshift-games/tyrian-world/pkg/options"
)

// buildPool assembles the item pool and the precollected start state:
// base items per the option set, start inventory and removal requests,
// the starting level and weapon, boss weakness data cubes, and finally
// enough junk credits to cover the world's money target.
func (w *World) buildPool(rng *rand.Rand) error {
	// Level items entered the pool while the graph was built.
	w.Pool = append(w.Pool, w.AllLevels...)
	w.extendPool(items.FrontPorts)
	w.extendPool(items.RearPorts)
	w.extendPool(items.Sidekicks)
	w.extendPool(items.Others)
	if w.Options.Specials == options.SpecialsAsItems {
		w.extendPool(items.SpecialWeapons)
	}
	if w.Options.Progressive {
		w.extendPool(items.Progressive)
	} else {
		w.extendPool(items.Split)
	}

	precollectedLevel := false
	precollectedWeapon := false
	for _, name := range sortedKeys(w.Options.StartInventory) {
		for range w.Options.StartInventory[name] {
			if w.popFromPool(name) {
				d, _ := items.Get(name)
				switch {
				case d.Episode != 0:
					precollectedLevel = true
				case isFrontPort(name):
					precollectedWeapon = true
				}
			}
			w.Precollected = append(w.Precollected, name)
		}
	}

	for _, name := range sortedKeys(w.Options.RemoveFromItemPool) {
		if d, ok := items.Get(name); ok && d.Episode != 0 {
			return fmt.Errorf("cannot remove level %q from the item pool", name)
		}
		for range w.Options.RemoveFromItemPool[name] {
			w.popFromPool(name)
		}
	}

	if !precollectedLevel {
		start := w.Options.StartLevel()
		w.popFromPool(start)
		w.Precollected = append(w.Precollected, start)
	}

	if !precollectedWeapon {
		weapon := w.startingWeaponName(rng)
		if !w.popFromPool(weapon) {
			return fmt.Errorf("starting weapon %q not in pool", weapon)
		}
		w.Precollected = append(w.Precollected, weapon)
	}

	if w.Options.Specials == options.SpecialsOn {
		specials := expandNames(items.SpecialWeapons, w.Options.Tyrian2000Support)
		w.SingleSpecial = specials[rng.IntN(len(specials))]
		w.Precollected = append(w.Precollected, w.SingleSpecial)
	}

	for i := 1; i < w.Options.StartingMaxPower; i++ {
		if w.popFromPool("Maximum Power Up") {
			w.Precollected = append(w.Precollected, "Maximum Power Up")
		}
	}

	if w.Options.BossWeaknesses {
		for _, ep := range w.Options.GoalEpisodes() {
			w.BossWeaknesses[ep] = w.chooseBossWeapon(rng)
			w.Pool = append(w.Pool, dataCubeName(ep))
		}
	}

	return w.fillJunk(rng)
}

// fillJunk tops the pool up to the location count with credit caches
// worth at least the remaining money target. When the pool cannot stay
// under an average of 50000 credits per junk slot, tossable items are
// trimmed to make room for more caches.
func (w *World) fillJunk(rng *rand.Rand) error {
	w.TotalMoneyNeeded -= w.Options.StartingMoney

	rest := len(w.Locations) - len(w.Pool)
	if w.TotalMoneyNeeded <= 400*rest {
		w.TotalMoneyNeeded = 400 * rest
	}

	if minNeeded := ceilDiv(w.TotalMoneyNeeded, 50000); rest < minNeeded {
		rest += w.tossItems(rng, minNeeded-rest)
	}
	if rest < 0 {
		return fmt.Errorf("%d items for %d locations: %w", len(w.Pool), len(w.Locations), ErrPoolOverflow)
	}

	creditsOnly := w.Options.ShopMode == options.ShopsOnly
	if creditsOnly {
		inLevel := 0
		for _, l := range w.Locations {
			if l.CreditsOnly {
				inLevel++
			}
		}
		if rest < inLevel {
			rest += w.tossItems(rng, inLevel-rest)
		}
		if rest < inLevel {
			return fmt.Errorf("shops hold %d of %d non-credit items: %w",
				len(w.Locations)-inLevel, len(w.Pool), ErrPoolOverflow)
		}
	}

	w.Pool = append(w.Pool, junkCredits(rng, rest, w.TotalMoneyNeeded, w.Options.MoneyPoolScale, creditsOnly)...)
	return nil
}

// tossItems removes up to need randomly chosen tossable items from the
// pool and reports how many actually went. Progression items and boss
// weakness weapons stay.
func (w *World) tossItems(rng *rand.Rand, need int) int {
	var tossable []int
	for i, name := range w.Pool {
		if w.itemTossable(name) {
			tossable = append(tossable, i)
		}
	}
	if need > len(tossable) {
		need = len(tossable)
	}
	if need <= 0 {
		return 0
	}

	drop := make(map[int]bool, need)
	for _, pi := range rng.Perm(len(tossable))[:need] {
		drop[tossable[pi]] = true
	}
	kept := w.Pool[:0]
	for i, name := range w.Pool {
		if !drop[i] {
			kept = append(kept, name)
		}
	}
	w.Pool = kept
	return need
}

func (w *World) itemTossable(name string) bool {
	for _, weapon := range w.BossWeaknesses {
		if name == weapon {
			return false
		}
	}
	d, ok := items.Get(name)
	return ok && d.Tossable()
}

// junkCredits picks credit caches summing to at least the money
// target. The value window around the per-check average starts wide
// and tightens as checks run out, for variety early without straying
// far from the target; overshoot pads with SuperBombs. creditsOnly
// swaps every SuperBomb for the smallest cache, for worlds whose level
// checks may only hold credits.
func junkCredits(rng *rand.Rand, totalChecks, totalMoney, scalePercent int, creditsOnly bool) []string {
	totalMoney = totalMoney * scalePercent / 100
	valid := items.CreditValues

	bomb := func() string {
		if creditsOnly {
			return items.CreditName(valid[0])
		}
		return "SuperBomb"
	}

	var junk []string
	for totalChecks > 1 {
		if totalMoney <= 0 {
			for ; totalChecks > 0; totalChecks-- {
				junk = append(junk, bomb())
			}
			return junk
		}

		// Comparisons against the average cross-multiply so the
		// window stays exact in integers.
		var choices []int
		for _, v := range valid {
			if aboveWindowLow(v, totalMoney, totalChecks) && v*totalChecks < 5*totalMoney {
				choices = append(choices, v)
			}
		}
		if !creditsOnly && windowLowUnder20(totalMoney, totalChecks) {
			choices = append(choices, 0)
		}

		var pick int
		if len(choices) == 0 {
			pick = firstCoveringAverage(valid, totalMoney, totalChecks)
		} else {
			pick = choices[rng.IntN(len(choices))]
		}

		totalMoney -= pick
		totalChecks--
		if pick == 0 {
			junk = append(junk, bomb())
		} else {
			junk = append(junk, items.CreditName(pick))
		}
	}

	if totalChecks == 1 {
		junk = append(junk, items.CreditName(firstCovering(valid, totalMoney)))
	}
	return junk
}

// The window's low bound is average/divisor, where the divisor is
// checks/1.5 while more than three checks remain and 2 after.

func aboveWindowLow(v, money, checks int) bool {
	if checks > 3 {
		return 2*v*checks*checks > 3*money
	}
	return 2*v*checks > money
}

func windowLowUnder20(money, checks int) bool {
	if checks > 3 {
		return 3*money < 40*checks*checks
	}
	return money < 40*checks
}

func firstCoveringAverage(valid []int, money, checks int) int {
	for _, v := range valid {
		if v*checks >= money {
			return v
		}
	}
	return valid[len(valid)-1]
}

func firstCovering(valid []int, money int) int {
	for _, v := range valid {
		if v >= money {
			return v
		}
	}
	return valid[len(valid)-1]
}

func ceilDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a > 0) == (b > 0) {
		q++
	}
	return q
}

func (w *World) extendPool(defs []items.Def) {
	t2k := w.Options.Tyrian2000Support
	for _, d := range defs {
		for range d.PoolCount(t2k) {
			w.Pool = append(w.Pool, d.Name)
		}
	}
}

func (w *World) popFromPool(name string) bool {
	for i, n := range w.Pool {
		if n == name {
			w.Pool = slices.Delete(w.Pool, i, i+1)
			return true
		}
	}
	return false
}

func expandNames(defs []items.Def, t2k bool) []string {
	var out []string
	for _, d := range defs {
		for range d.PoolCount(t2k) {
			out = append(out, d.Name)
		}
	}
	return out
}

func isFrontPort(name string) bool {
	for _, d := range items.FrontPorts {
		if d.Name == name {
			return true
		}
	}
	return false
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
