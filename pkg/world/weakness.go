package world

import (
	"math/rand/v2"
)

// Both tables below are indexed by LogicDifficulty - 1, beginner
// through no logic.

// bossEligible marks which front weapons a boss weakness may demand at
// each logic difficulty. Order matters: fallback selection scans it
// top to bottom.
var bossEligible = []struct {
	name string
	cols [5]bool
}{
	{"Pulse-Cannon", [5]bool{true, true, true, true, true}},
	{"Multi-Cannon (Front)", [5]bool{false, false, false, true, true}},
	{"Mega Cannon", [5]bool{true, true, true, true, true}},
	{"Laser", [5]bool{true, true, true, true, true}},
	{"Zica Laser", [5]bool{true, true, true, true, true}},
	{"Protron Z", [5]bool{true, true, true, true, true}},
	{"Vulcan Cannon (Front)", [5]bool{true, true, true, true, true}},
	{"Lightning Cannon", [5]bool{true, true, true, true, true}},
	{"Protron (Front)", [5]bool{true, true, true, true, true}},
	{"Missile Launcher", [5]bool{false, false, true, true, true}},
	{"Mega Pulse (Front)", [5]bool{true, true, true, true, true}},
	{"Heavy Missile Launcher (Front)", [5]bool{true, true, true, true, true}},
	{"Banana Blast (Front)", [5]bool{true, true, true, true, true}},
	{"HotDog (Front)", [5]bool{true, true, true, true, true}},
	{"Hyper Pulse", [5]bool{true, true, true, true, true}},
	{"Guided Bombs", [5]bool{false, true, true, true, true}},
	{"Shuriken Field", [5]bool{true, true, true, true, true}},
	{"Poison Bomb", [5]bool{true, true, true, true, true}},
	{"Protron Wave", [5]bool{false, false, false, true, true}},
	{"The Orange Juicer", [5]bool{false, false, true, true, true}},
	{"NortShip Super Pulse", [5]bool{false, true, true, true, true}},
	{"Atomic RailGun", [5]bool{true, true, true, true, true}},
	{"Widget Beam", [5]bool{false, false, false, true, true}},
	{"Sonic Impulse", [5]bool{false, true, true, true, true}},
	{"RetroBall", [5]bool{false, false, false, true, true}},
	{"Needle Laser", [5]bool{true, true, true, true, true}},
	{"Pretzel Missile", [5]bool{true, true, true, true, true}},
	{"Dragon Frost", [5]bool{true, true, true, true, true}},
	{"Dragon Flame", [5]bool{true, true, true, true, true}},
}

// startWeights is the relative chance of each front weapon being the
// randomized starting weapon, per logic difficulty. Zero rules the
// weapon out at that difficulty.
var startWeights = []struct {
	name string
	cols [5]int
}{
	{"Pulse-Cannon", [5]int{1, 3, 2, 1, 1}},
	{"Multi-Cannon (Front)", [5]int{0, 1, 1, 1, 1}}, // low damage
	{"Mega Cannon", [5]int{1, 3, 2, 1, 1}},
	{"Laser", [5]int{1, 3, 2, 1, 1}},
	{"Zica Laser", [5]int{1, 3, 2, 1, 1}},
	{"Protron Z", [5]int{1, 3, 2, 1, 1}},
	{"Vulcan Cannon (Front)", [5]int{1, 3, 2, 1, 1}},
	{"Lightning Cannon", [5]int{1, 3, 2, 1, 1}},
	{"Protron (Front)", [5]int{1, 3, 2, 1, 1}},
	{"Missile Launcher", [5]int{0, 1, 1, 1, 1}}, // low damage
	{"Mega Pulse (Front)", [5]int{1, 3, 2, 1, 1}},
	{"Heavy Missile Launcher (Front)", [5]int{1, 3, 2, 1, 1}},
	{"Banana Blast (Front)", [5]int{1, 3, 2, 1, 1}},
	{"HotDog (Front)", [5]int{1, 3, 2, 1, 1}},
	{"Hyper Pulse", [5]int{1, 3, 2, 1, 1}},
	{"Guided Bombs", [5]int{1, 3, 2, 1, 1}},
	{"Shuriken Field", [5]int{0, 0, 2, 1, 1}},       // high energy cost
	{"Poison Bomb", [5]int{0, 0, 2, 1, 1}},          // high energy cost
	{"Protron Wave", [5]int{0, 1, 1, 1, 1}},         // low damage
	{"The Orange Juicer", [5]int{0, 0, 0, 1, 1}},    // level 1 is sideways only
	{"NortShip Super Pulse", [5]int{0, 0, 2, 1, 1}}, // high energy cost
	{"Atomic RailGun", [5]int{0, 0, 2, 1, 1}},       // high energy cost
	{"Widget Beam", [5]int{0, 1, 1, 1, 1}},          // low damage
	{"Sonic Impulse", [5]int{1, 3, 2, 1, 1}},
	{"RetroBall", [5]int{0, 1, 1, 1, 1}}, // low damage
	{"Needle Laser", [5]int{1, 3, 2, 1, 1}},
	{"Pretzel Missile", [5]int{1, 3, 2, 1, 1}},
	{"Dragon Frost", [5]int{1, 3, 2, 1, 1}},
	{"Dragon Flame", [5]int{1, 3, 2, 1, 1}},
}

// chooseBossWeapon picks the weapon a goal boss demands. Preference
// runs pool weapons eligible at this difficulty, then any eligible
// weapon not explicitly removed from the seed, then anything not
// removed; starting weapons are deliberately out, being absent from
// the pool by the time this runs.
func (w *World) chooseBossWeapon(rng *rand.Rand) string {
	col := int(w.Options.LogicDifficulty) - 1

	eligible := make(map[string]bool, len(bossEligible))
	for _, row := range bossEligible {
		eligible[row.name] = row.cols[col]
	}

	var choices []string
	for _, name := range w.Pool {
		if eligible[name] {
			choices = append(choices, name)
		}
	}

	if len(choices) == 0 {
		for _, row := range bossEligible {
			if _, removed := w.Options.RemoveFromItemPool[row.name]; !removed && row.cols[col] {
				choices = append(choices, row.name)
			}
		}
	}
	if len(choices) == 0 {
		for _, row := range bossEligible {
			if _, removed := w.Options.RemoveFromItemPool[row.name]; !removed {
				choices = append(choices, row.name)
			}
		}
	}

	return choices[rng.IntN(len(choices))]
}

// startingWeaponName picks what front weapon the player begins with.
// Without random_starting_weapon everyone gets the Pulse-Cannon;
// otherwise the difficulty-weighted table decides, falling back to any
// front port still in the pool when every weighted weapon is gone.
func (w *World) startingWeaponName(rng *rand.Rand) string {
	if !w.Options.RandomStartingWeapon {
		return "Pulse-Cannon"
	}
	col := int(w.Options.LogicDifficulty) - 1

	inPool := make(map[string]bool, len(w.Pool))
	for _, name := range w.Pool {
		inPool[name] = true
	}

	var choices []string
	for _, row := range startWeights {
		if !inPool[row.name] {
			continue
		}
		for range row.cols[col] {
			choices = append(choices, row.name)
		}
	}

	if len(choices) == 0 {
		for _, name := range w.Pool {
			if isFrontPort(name) {
				choices = append(choices, name)
			}
		}
	}

	return choices[rng.IntN(len(choices))]
}
