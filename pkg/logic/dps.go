// Package logic decides which checks a given loadout can reach. It
// models weapon damage output, generator power budgets and armor
// thresholds, and compiles per-level requirements into rule trees that
// evaluate against an inventory snapshot.
//
// All damage math is integer fixed-point. One DPS point is 1000 units,
// which keeps rule evaluation exact and hashable across platforms.
package logic

// MilliDPS is the fixed-point scale: 1 damage-per-second = 1000.
const MilliDPS = 1000

// DPS describes damage output split by firing profile, in MilliDPS
// units. Active is aimed fire at a single target, passive is spread
// coverage everywhere else, sideways is fire at right angles, piercing
// is damage that continues through solid objects.
type DPS struct {
	Active   int
	Passive  int
	Sideways int
	Piercing int
}

// Over converts an enemy health total and a kill-window divisor into a
// MilliDPS requirement. The divisor is given in thousandths, so a
// 2.5 second window is 2500.
func Over(health, divisorMilli int) int {
	return health * 1000 * MilliDPS / divisorMilli
}

// Sub subtracts what a loadout provides from a requirement, clamping
// each profile at zero. The result is the damage still owed.
func (d DPS) Sub(other DPS) DPS {
	return DPS{
		Active:   max(d.Active-other.Active, 0),
		Passive:  max(d.Passive-other.Passive, 0),
		Sideways: max(d.Sideways-other.Sideways, 0),
		Piercing: max(d.Piercing-other.Piercing, 0),
	}
}

// Distance weights, in tenths per MilliDPS of shortfall. Rear weapons
// cover passive and sideways requirements easily, active is much
// harder, and piercing cannot be delegated at all.
const (
	weightActive   = 40
	weightPassive  = 8
	weightSideways = 18

	// failDistance marks a requirement no front weapon can approach.
	failDistance = 999_990_000

	// worstTrackedDistance is the cutoff beyond which a candidate is
	// not worth remembering as a partial solution.
	worstTrackedDistance = 5_120_000
)

// DistanceTo measures how far short d falls of the requirement. Zero
// means the requirement is met outright. Piercing shortfalls are
// unsalvageable and return failDistance.
func (d DPS) DistanceTo(want DPS) int {
	if want.Piercing > 0 && d.Piercing < want.Piercing {
		return failDistance
	}
	dist := 0
	if want.Active > 0 && d.Active < want.Active {
		dist += (want.Active - d.Active) * weightActive
	}
	if want.Passive > 0 && d.Passive < want.Passive {
		dist += (want.Passive - d.Passive) * weightPassive
	}
	if want.Sideways > 0 && d.Sideways < want.Sideways {
		dist += (want.Sideways - d.Sideways) * weightSideways
	}
	return dist
}

// Meets reports whether d satisfies every profile of the requirement.
func (d DPS) Meets(want DPS) bool {
	return !(want.Active > 0 && d.Active < want.Active) &&
		!(want.Passive > 0 && d.Passive < want.Passive) &&
		!(want.Sideways > 0 && d.Sideways < want.Sideways) &&
		!(want.Piercing > 0 && d.Piercing < want.Piercing)
}

// Zero reports whether the requirement demands nothing.
func (d DPS) Zero() bool {
	return d.Active == 0 && d.Passive == 0 && d.Sideways == 0 && d.Piercing == 0
}
