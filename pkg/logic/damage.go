package logic

import "github.com/redshift-games/tyrian-world/pkg/options"

// DamageTables holds the weapon output tables merged for one logic
// difficulty, plus the requirement scaling that difficulty applies.
// Build one per world and share it across every rule.
type DamageTables struct {
	// PowerProvided is the energy available at each generator level,
	// indexed 0 through 6.
	PowerProvided [7]int

	// weapons maps every weapon to its output at power levels 1
	// through 11. Weapons with no measurement in the merged tiers
	// hold all-zero entries.
	weapons map[string][11]DPS

	multNum int
	multDen int
}

// NewDamageTables merges every tier up to and including logic into one
// lookup table.
func NewDamageTables(logic options.LogicDifficulty) *DamageTables {
	tempActive := map[string][11]int{}
	tempPassive := map[string][11]int{}
	tempSideways := map[string][11]int{}
	tempPiercing := map[string][11]int{}
	for d := options.LogicBeginner; d <= logic; d++ {
		for weapon, row := range baseActive[d] {
			tempActive[weapon] = row
		}
		for weapon, row := range basePassive[d] {
			tempPassive[weapon] = row
		}
		for weapon, row := range baseSideways[d] {
			tempSideways[weapon] = row
		}
		for weapon, row := range basePiercing[d] {
			tempPiercing[weapon] = row
		}
	}

	t := &DamageTables{
		PowerProvided: generatorPowerProvided[logic],
		weapons:       make(map[string][11]DPS, len(generatorPowerRequired)),
	}
	// generatorPowerRequired carries every weapon, so missing rows in
	// the temp tables fall back to zero values here.
	for weapon := range generatorPowerRequired {
		active := tempActive[weapon]
		passive := tempPassive[weapon]
		sideways := tempSideways[weapon]
		piercing := tempPiercing[weapon]

		var row [11]DPS
		for i := range row {
			row[i] = DPS{
				Active:   active[i] * 100,
				Passive:  passive[i] * 100,
				Sideways: sideways[i] * 100,
				Piercing: piercing[i] * 100,
			}
		}
		t.weapons[weapon] = row
	}

	switch logic {
	case options.LogicBeginner:
		t.multNum, t.multDen = 5, 4
	case options.LogicStandard, options.LogicExpert:
		t.multNum, t.multDen = 11, 10
	default:
		t.multNum, t.multDen = 1, 1
	}
	return t
}

// MakeDPS scales a raw requirement by the logic difficulty margin.
// Lenient difficulties demand extra headroom before a loadout counts;
// master and no_logic take the requirement at face value.
func (t *DamageTables) MakeDPS(req DPS) DPS {
	scale := func(v int) int {
		if v <= 0 {
			return 0
		}
		return v * t.multNum / t.multDen
	}
	return DPS{
		Active:   scale(req.Active),
		Passive:  scale(req.Passive),
		Sideways: scale(req.Sideways),
		Piercing: scale(req.Piercing),
	}
}

// canMeetDPS reports whether any (weapon, power) pair from weapons
// meets target outright within the energy left over.
func (t *DamageTables) canMeetDPS(target DPS, weapons []string, maxPower, restEnergy int) bool {
	for _, weapon := range weapons {
		output := t.weapons[weapon]
		required := generatorPowerRequired[weapon]
		for power := 0; power < maxPower; power++ {
			if required[power] > restEnergy {
				continue
			}
			if output[power].Meets(target) {
				return true
			}
		}
	}
	return false
}

// dpsShotTypes searches weapons for a full match against target. On a
// full match it returns met=true. Otherwise it returns, per energy
// cost, the leftover requirement of the closest miss at that cost; a
// nil map means nothing came close enough to track, which happens when
// no candidate weapon is owned or piercing cannot be covered.
func (t *DamageTables) dpsShotTypes(target DPS, weapons []string, maxPower, startEnergy int) (met bool, leftover map[int]DPS) {
	bestDistance := map[int]int{}

	for _, weapon := range weapons {
		output := t.weapons[weapon]
		required := generatorPowerRequired[weapon]
		for power := 0; power < maxPower; power++ {
			energy := required[power]
			if energy > startEnergy {
				continue
			}

			cur := output[power]
			distance := cur.DistanceTo(target)
			if distance == 0 {
				return true, nil
			}

			best, tracked := bestDistance[energy]
			if !tracked {
				best = worstTrackedDistance
			}
			if distance < best {
				bestDistance[energy] = distance
				if leftover == nil {
					leftover = make(map[int]DPS)
				}
				leftover[energy] = target.Sub(cur)
			}
		}
	}
	return false, leftover
}

// CanDealDamageWith reports whether the named front weapon alone, at
// some owned power level and within the full generator budget, meets
// target. Boss weakness checks use this; the rest of the loadout does
// not count toward a weakness.
func (t *DamageTables) CanDealDamageWith(inv InventoryView, weapon string, target DPS) bool {
	if !inv.Has(weapon) {
		return false
	}
	maxPower := min(11, 1+inv.Count("Maximum Power Up"))
	startEnergy := t.PowerProvided[GeneratorLevel(inv)]
	return t.canMeetDPS(target, []string{weapon}, maxPower, startEnergy)
}

// CanDealDamage reports whether any front/rear loadout buildable from
// the inventory meets target. The front weapon is searched first; if
// it falls short, rear weapons must cover the leftover requirement
// with whatever generator energy the front shot leaves unused.
func (t *DamageTables) CanDealDamage(inv InventoryView, target DPS) bool {
	ownedFront := frontCandidates(inv, target)
	ownedRear := rearCandidates(inv, target)
	maxPower := min(11, 1+inv.Count("Maximum Power Up"))
	startEnergy := t.PowerProvided[GeneratorLevel(inv)]

	met, leftover := t.dpsShotTypes(target, ownedFront, maxPower, startEnergy)
	if met {
		return true
	}
	for usedEnergy, rest := range leftover {
		if t.canMeetDPS(rest, ownedRear, maxPower, startEnergy-usedEnergy) {
			return true
		}
	}
	return false
}
