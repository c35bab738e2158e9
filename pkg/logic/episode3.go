package logic

import "github.com/redshift-games/tyrian-world/pkg/options"

func (rs *ruleset) episode3() {
	// GAUNTLET
	// Capsule ships: 10, minus one difficulty step for the level
	rs.location("GAUNTLET (Episode 3) - Capsule Ships Near Mace",
		rs.dps(DPS{Active: Over(rs.scaleAdj(10, -1), 1300)}))

	// Gates: 20, same step down
	gateHealth := rs.scaleAdj(20, -1)
	rs.location("GAUNTLET (Episode 3) - Doubled-up Gates", Any(
		rs.dps(DPS{Piercing: Over(gateHealth, 4400)}),
		rs.dps(DPS{Active: Over(gateHealth*2, 4400)}),
	))

	// These two share one requirement but sit in different sub-regions.
	gateSingle := rs.dps(DPS{Active: Over(gateHealth, 1500)})
	rs.location("GAUNTLET (Episode 3) - Split Gates, Left", gateSingle)
	rs.location("GAUNTLET (Episode 3) - Gate near Freebie Item", gateSingle)

	// Weak point orb: 6, minus one difficulty step. Invulnerability
	// slips through the tree without destroying anything.
	orbHealth := rs.scaleAdj(6, -1)
	orbPiercing := rs.dps(DPS{Piercing: Over(orbHealth, 1200)})
	orbActive := rs.dps(DPS{Active: Over(orbHealth, 500)})
	rs.entrance("GAUNTLET (Episode 3) @ Clear Orb Tree",
		Any(rs.invulnerability(), orbPiercing, orbActive))
	rs.location("GAUNTLET (Episode 3) - Tree of Spinning Orbs",
		Any(orbPiercing, orbActive))

	// IXMUCANE
	// Minelayers: unscaled 254, or 10 at the weak point; dropped
	// mines: 20. Sideways plus active hits the center minelayer weak
	// points while keeping up with everything else, piercing hits
	// them through the clutter outright, and invulnerability fills
	// piercing's role just as well.
	rs.entrance("IXMUCANE (Episode 3) @ Pass Minelayers Requirements", Any(
		rs.invulnerability(),
		rs.dps(DPS{Piercing: Over(rs.scale(10), 8000)}),
		rs.dps(DPS{Active: 8 * MilliDPS, Sideways: Over(rs.scale(10), 8000)}),
		rs.dps(DPS{Active: Over(rs.scale(20)*3+254, 8000)}),
	))

	// The boss keeps itself guarded inside an indestructible rock at
	// almost all times, and a second destructible target sits in
	// front of the actual weak point. None of that matters if you can
	// pierce. It also summons a mass of tiny rocks as an attack, so
	// the direct kill wants some passive; its damage floor carries
	// over the orb health from GAUNTLET above.
	ixmucanePierce := rs.dps(DPS{Piercing: Over(rs.scale(25), 24000)})
	ixmucaneDirect := rs.dps(DPS{Active: Over(orbHealth*2, 3800), Passive: 12 * MilliDPS})
	if !rs.opts.LogicBossTimeout {
		rs.entrance("IXMUCANE (Episode 3) @ Pass Boss (can time out)",
			Any(ixmucanePierce, ixmucaneDirect))
	} else {
		// Piercing for the cheese kill, or passive to thin out the
		// rocks while the timer runs.
		rs.entrance("IXMUCANE (Episode 3) @ Pass Boss (can time out)", Any(
			rs.invulnerability(),
			ixmucanePierce,
			rs.dps(DPS{Passive: 12 * MilliDPS}),
		))
		rs.location("IXMUCANE (Episode 3) - Boss",
			Any(ixmucanePierce, ixmucaneDirect))
	}

	// BONUS
	if rs.logic() <= options.LogicStandard {
		rs.exclude("BONUS (Episode 3) - Sonic Wave Hell Turret")
		rs.excludeAll("Shop - BONUS (Episode 3)")
	}

	// The turrets have a single point of health and die to any damage
	// at all, but are guarded from the front and the back.
	turretPiercing := rs.dps(DPS{Piercing: 200})
	turretPassive := rs.dps(DPS{Passive: 200})
	if rs.logic() <= options.LogicExpert {
		rs.location("BONUS (Episode 3) - Lone Turret 1",
			Any(turretPiercing, turretPassive))
		rs.location("BONUS (Episode 3) - Sonic Wave Hell Turret",
			Any(turretPiercing, turretPassive))
	}

	// Doesn't sway left and right like the other two.
	rs.location("BONUS (Episode 3) - Lone Turret 2",
		Any(turretPiercing, turretPassive))

	// Two-wide turret: 25, though it only has to reach its damaged,
	// non-firing state. Generator level covers shield recovery.
	onslaughtHealth := rs.scale(25) - 10
	rs.entrance("BONUS (Episode 3) @ Pass Onslaughts", All(
		Generator(3),
		Armor(8),
		Any(
			rs.repulsor(),
			rs.dps(DPS{Active: Over(onslaughtHealth*4, 3600)}),
		),
	))

	// Master assumes knowledge of the safe spot through this section.
	// Everything below it wants the repulsor, or sideways damage and
	// extra armor to hold out.
	if rs.logic() < options.LogicMaster {
		rs.entrance("BONUS (Episode 3) @ Sonic Wave Hell", Any(
			rs.repulsor(),
			All(
				Armor(12),
				rs.dps(DPS{Active: Over(onslaughtHealth*4, 3600), Sideways: 4 * MilliDPS}),
			),
		))
	}

	// Actually collecting from the onslaughts: two two-tile turrets
	// plus the item ship itself.
	rs.entrance("BONUS (Episode 3) @ Get Items from Onslaughts",
		rs.dps(DPS{Active: Over(rs.scale(25)*2+rs.scale(3), 1800)}))

	// STARGATE
	// Just needs some way of combating the bubble spam that starts
	// after the last normal location.
	rs.entrance("STARGATE (Episode 3) @ Reach Bubble Spawner",
		rs.dps(DPS{Passive: 7 * MilliDPS}))

	// AST. CITY
	rs.entrance("AST. CITY (Episode 3) @ Base Requirements",
		rs.armorContact([4]int{7, 6, 6, 5}, [4]int{8, 8, 7, 5}))

	// Boss domes: 100, minus one difficulty step for the level
	rs.entrance("AST. CITY (Episode 3) @ Destroy Boss Domes",
		rs.dps(DPS{Active: Over(rs.scaleAdj(100, -1), 4500)}))

	// SAWBLADES
	if rs.logic() == options.LogicBeginner {
		rs.exclude("SAWBLADES (Episode 3) - SuperCarrot Secret Drop")
	}

	// Periodically, tiny rocks get spammed across the whole screen.
	// Passive damage and some armor handle those moments.
	rs.entrance("SAWBLADES (Episode 3) @ Base Requirements", All(
		rs.armorContact([4]int{7, 6, 6, 5}, [4]int{10, 9, 8, 6}),
		Generator(2),
		rs.dps(DPS{Active: 10 * MilliDPS, Passive: 12 * MilliDPS}),
	))

	// Blue sawblade: 60
	rs.location("SAWBLADES (Episode 3) - Waving Sawblade",
		rs.dps(DPS{Active: Over(rs.scale(60), 4100), Passive: 12 * MilliDPS}))

	// CAMANIS
	camanisGenerator := 2
	if rs.logic() <= options.LogicStandard {
		camanisGenerator = 3
	}
	rs.entrance("CAMANIS (Episode 3) @ Base Requirements", All(
		rs.armorContact([4]int{9, 8, 8, 6}, [4]int{11, 10, 9, 7}),
		Generator(camanisGenerator),
		rs.dps(DPS{Active: 12 * MilliDPS, Passive: 16 * MilliDPS}),
	))

	camanisBoss := rs.dps(DPS{Active: Over(254*8, 5*20000), Passive: 16 * MilliDPS})
	if !rs.opts.LogicBossTimeout {
		rs.entrance("CAMANIS (Episode 3) @ Pass Boss (can time out)", camanisBoss)
	} else {
		// The passive part is already covered by the base requirements.
		rs.location("CAMANIS (Episode 3) - Boss", camanisBoss)
	}

	// MACES
	// Logicless, purely a test of dodging skill.

	// TYRIAN X
	if rs.logic() == options.LogicBeginner {
		rs.exclude("TYRIAN X (Episode 3) - First U-Ship Secret")
		rs.exclude("TYRIAN X (Episode 3) - Second Secret, Same as the First")
	}
	if rs.logic() <= options.LogicStandard {
		rs.exclude("TYRIAN X (Episode 3) - Tank Turn-and-fire Secret")
	}

	rs.entrance("TYRIAN X (Episode 3) @ Base Requirements", Any(
		rs.repulsor(),
		rs.armor([4]int{6, 6, 5, 5}),
	))

	// Spinners: 6, plus one difficulty step for the level
	spinnerHealth := rs.scaleAdj(6, 1)
	rs.location("TYRIAN X (Episode 3) - Platform Spinner Sequence", Any(
		rs.dps(DPS{Piercing: Over(spinnerHealth, 1100)}),
		rs.dps(DPS{Active: Over(spinnerHealth*6, 1100)}),
	))

	// Tanks: 10, purple structures: 6, both with the same step up
	structureHealth := rs.scaleAdj(6, 1) * 3
	tankHealth := rs.scaleAdj(10, 1)
	rs.entrance("TYRIAN X (Episode 3) @ Tanks Behind Structures", Any(
		rs.dps(DPS{Piercing: Over(tankHealth, 1100)}),
		rs.dps(DPS{Active: Over(structureHealth+tankHealth, 1100)}),
	))

	// The boss is nearly identical to TYRIAN's, except the wing has
	// unscaled 254 health instead of scaled 100.
	xBossActive := rs.dps(DPS{Active: Over(508, 30000)})
	xBossPiercing := rs.dps(DPS{Piercing: Over(254, 30000)})
	if !rs.opts.LogicBossTimeout {
		rs.entrance("TYRIAN X (Episode 3) @ Pass Boss (can time out)",
			Any(xBossPiercing, xBossActive))
	} else {
		// TYRIAN's armor condition would always hold here, so a
		// time-out is assumed always possible.
		rs.location("TYRIAN X (Episode 3) - Boss",
			Any(xBossPiercing, xBossActive))
	}

	// SAVARA Y
	// Blimp: 70. Master is expected to know how to dodge through when
	// enemies block the entire screen; everyone else gets the means
	// to blow the blimp up.
	if rs.logic() <= options.LogicExpert {
		rs.entrance("SAVARA Y (Episode 3) @ Through Blimp Blockade", Any(
			rs.invulnerability(),
			rs.dps(DPS{Active: Over(rs.scale(70), 3600)}),
		))
	}

	rs.location("SAVARA Y (Episode 3) - Boss Ship Fly-By",
		rs.dps(DPS{Active: Over(254, 4400)}))

	// Vulcan planes with items: 14. As in Episode 1, the optimal kill
	// uses passive.
	rs.location("SAVARA Y (Episode 3) - Vulcan Plane Set", Any(
		rs.dps(DPS{Passive: Over(rs.scale(14), 2400)}),
		rs.dps(DPS{Active: Over(rs.scale(14), 1600)}),
	))

	rs.entrance("SAVARA Y (Episode 3) @ Death Plane Set",
		rs.dps(DPS{Active: Over(rs.scale(14), 1200)}))

	// Same boss as the Episode 1 Savaras, but this one has no
	// patience and leaves very fast.
	savaraYBossHealth := 254 + rs.scale(6)*15 + rs.scale(10)*4
	savaraYBossActive := rs.dps(DPS{Active: Over(savaraYBossHealth, 13000)})
	if !rs.opts.LogicBossTimeout {
		rs.entrance("SAVARA Y (Episode 3) @ Pass Boss (can time out)", savaraYBossActive)
	} else {
		rs.location("SAVARA Y (Episode 3) - Boss", savaraYBossActive)

		// Waiting it out still means destroying the things it shoots
		// at you whenever dodging isn't an option.
		rs.entrance("SAVARA Y (Episode 3) @ Pass Boss (can time out)", Any(
			rs.invulnerability(),
			rs.dps(DPS{Sideways: Over(rs.scale(6), 1200)}),
			savaraYBossActive,
		))
	}

	// NEW DELI
	// Turrets: 10
	newDeliTurret := rs.dps(DPS{Active: Over(rs.scale(10), 1800)})
	newDeliArmor := rs.armorChoice([4]int{12, 12, 11, 9})
	rs.entrance("NEW DELI (Episode 3) @ Base Requirements", Any(
		All(
			rs.repulsor(),
			Armor(newDeliArmor-3),
			Generator(3),
			newDeliTurret,
		),
		All(
			Armor(newDeliArmor),
			Generator(4),
			newDeliTurret,
		),
	))

	// Repulsor orbs: 80. One pops up in the middle of all this mess,
	// and getting it off the screen quickly is the goal.
	rs.entrance("NEW DELI (Episode 3) @ The Gauntlet Begins",
		rs.dps(DPS{Active: Over(rs.scale(80), 5000)}))

	// Same boss as DELIANI. Repulsor orbs: 80; boss: 200.
	rs.entrance("NEW DELI (Episode 3) @ Destroy Boss",
		rs.dps(DPS{Active: Over(rs.scale(80)*3+rs.scale(200), 22000)}))

	// FLEET
	// Item ships: 20. They flee quickly, and using them to lock off
	// the entire level is convenient.
	fleetGenerator := 3
	if rs.logic() <= options.LogicExpert {
		fleetGenerator = 4
	}
	rs.entrance("FLEET (Episode 3) @ Base Requirements", All(
		rs.armorContact([4]int{11, 10, 10, 7}, [4]int{13, 12, 11, 9}),
		Generator(fleetGenerator),
		rs.dps(DPS{Active: Over(rs.scale(20), 1500)}),
	))

	// Attractor cranes: 50. The arms are invulnerable and limit how
	// much damage lands, so piercing is always an option, and
	// invulnerability lets you sit inside briefly for the same effect.
	cranePierce := rs.dps(DPS{Piercing: Over(rs.scale(50), 10000)})
	craneInside := rs.dps(DPS{Active: Over(rs.scale(50), 3000)})
	craneActive := rs.dps(DPS{Active: Over(rs.scale(50), 1600)})

	if rs.logic() == options.LogicMaster {
		// You have invulnerability at the start of the level.
		// Exploit it.
		rs.location("FLEET (Episode 3) - Attractor Crane, Entrance",
			Any(cranePierce, craneInside))
	} else {
		rs.location("FLEET (Episode 3) - Attractor Crane, Entrance", Any(
			cranePierce,
			All(rs.invulnerability(), craneInside),
			craneActive,
		))
	}

	rs.location("FLEET (Episode 3) - Attractor Crane, Mid-Fleet", Any(
		cranePierce,
		All(rs.invulnerability(), craneInside),
		craneActive,
	))

	// The boss regularly heals itself and spams enemies across the
	// whole screen.
	rs.entrance("FLEET (Episode 3) @ Destroy Boss",
		rs.dps(DPS{Active: Over(254*3, 2*8000)}))
}
