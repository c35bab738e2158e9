package logic

import "github.com/redshift-games/tyrian-world/pkg/options"

func (rs *ruleset) episode1() {
	// TYRIAN
	if rs.logic() == options.LogicBeginner {
		rs.exclude("TYRIAN (Episode 1) - HOLES Warp Orb")
		rs.exclude("TYRIAN (Episode 1) - SOH JIN Warp Orb")
	}
	if rs.logic() <= options.LogicStandard {
		rs.exclude("TYRIAN (Episode 1) - Tank Turn-and-fire Secret")
	}

	// Four trigger enemies among the starting U-Ship sets need to be
	// cleared out. Below game difficulty Hard the layout differs and
	// the orb is free.
	if rs.opts.Difficulty >= options.DifficultyHard {
		rs.location("TYRIAN (Episode 1) - HOLES Warp Orb", Any(
			rs.dps(DPS{Active: Over(rs.scale(19), 2000)}),
			rs.dps(DPS{Passive: Over(rs.scale(19), 1500)}),
		))
	}

	// Rock health: 20
	rs.location("TYRIAN (Episode 1) - BUBBLES Warp Rock",
		rs.dps(DPS{Active: Over(rs.scale(20), 3600)}))

	// Boss health: unscaled 254; wing health: 100
	tyrianBossActive := rs.dps(DPS{Active: Over(rs.scale(100)+254, 30000)})
	tyrianBossPiercing := rs.dps(DPS{Piercing: Over(254, 30000)})
	if !rs.opts.LogicBossTimeout {
		rs.entrance("TYRIAN (Episode 1) @ Pass Boss (can time out)",
			Any(tyrianBossActive, tyrianBossPiercing))
	} else {
		rs.entrance("TYRIAN (Episode 1) @ Pass Boss (can time out)", Any(
			rs.armorContact([4]int{5, 5, 5, 5}, [4]int{6, 6, 5, 5}),
			rs.invulnerability(),
			tyrianBossActive,
			tyrianBossPiercing,
		))
		rs.location("TYRIAN (Episode 1) - Boss",
			Any(tyrianBossActive, tyrianBossPiercing))
	}

	// BUBBLES
	if rs.logic() == options.LogicBeginner {
		rs.excludeAll("BUBBLES (Episode 1) - Coin Rain")
	}

	// Red bubble health: 20 in all cases
	bubbleHealth := rs.scale(20)
	rs.entrance("BUBBLES (Episode 1) @ Pass Bubble Lines",
		rs.dps(DPS{Active: Over(bubbleHealth, 4000)}))
	rs.entrance("BUBBLES (Episode 1) @ Speed Up Section",
		rs.dps(DPS{Active: Over(bubbleHealth, 1900)}))

	bubblePiercing := rs.dps(DPS{Piercing: Over(bubbleHealth, 4000)})
	rs.location("BUBBLES (Episode 1) - Orbiting Bubbles", Any(
		rs.dps(DPS{Active: Over(bubbleHealth, 3000)}),
		bubblePiercing,
	))
	rs.location("BUBBLES (Episode 1) - Shooting Bubbles", Any(
		rs.dps(DPS{Active: Over(bubbleHealth, 1200)}),
		bubblePiercing,
	))

	// HOLES
	rs.entrance("HOLES (Episode 1) @ Pass Spinner Gauntlet", All(
		rs.armorContact([4]int{5, 5, 5, 5}, [4]int{8, 7, 6, 5}),
		rs.dps(DPS{Active: 8 * MilliDPS, Passive: 21 * MilliDPS}),
	))

	// Boss ship flyby health: unscaled 254; wing health: 100
	rs.entrance("HOLES (Episode 1) @ Destroy Boss Ships",
		rs.dps(DPS{Active: Over(rs.scale(100)+254, 5000), Passive: 21 * MilliDPS}))

	// SOH JIN
	// Single wall tile: 40
	rs.entrance("SOH JIN (Episode 1) @ Destroy Walls",
		rs.dps(DPS{Active: Over(rs.scale(40), 4600)}))

	// ASTEROID1
	// Face rock: 25, behind two destructible pieces of 5 each
	faceRockHealth := rs.scale(25) + rs.scale(5)*2
	rs.location("ASTEROID1 (Episode 1) - ASTEROID? Warp Orb",
		rs.dps(DPS{Active: Over(faceRockHealth, 4400)}))

	// Boss dome: 100
	rs.entrance("ASTEROID1 (Episode 1) @ Destroy Boss",
		rs.dps(DPS{Active: Over(rs.scale(100), 30000)}))

	// ASTEROID2
	if rs.logic() == options.LogicBeginner {
		rs.exclude("ASTEROID2 (Episode 1) - Tank Turn-around Secret 1")
		rs.exclude("ASTEROID2 (Episode 1) - Tank Turn-around Secret 2")
	}
	if rs.logic() <= options.LogicStandard {
		rs.exclude("ASTEROID2 (Episode 1) - Tank Assault Right Tank Secret")
	}

	// All tanks: 30
	tankHealth := rs.scale(30)
	rs.location("ASTEROID2 (Episode 1) - Tank Bridge",
		rs.dps(DPS{Active: Over(tankHealth, 2100)}))

	// On standard or below, assume most damage lands only after the
	// tank secret items are already active.
	if rs.logic() <= options.LogicStandard {
		rs.location("ASTEROID2 (Episode 1) - Tank Turn-around Secret 1",
			rs.dps(DPS{Active: Over(tankHealth, 2300)}))
		rs.location("ASTEROID2 (Episode 1) - Tank Turn-around Secret 2",
			rs.dps(DPS{Active: Over(tankHealth, 3900)}))
	}

	// Face rock containing the orb: 25
	rs.location("ASTEROID2 (Episode 1) - MINEMAZE Warp Orb",
		rs.dps(DPS{Active: Over(rs.scale(25), 4400)}))

	rs.entrance("ASTEROID2 (Episode 1) @ Destroy Boss",
		rs.dps(DPS{Active: 10 * MilliDPS}))

	// ASTEROID?
	if rs.logic() == options.LogicBeginner {
		rs.exclude("ASTEROID? (Episode 1) - WINDY Warp Orb")
	}

	// Launchers: 40
	rs.entrance("ASTEROID? (Episode 1) @ Initial Welcome",
		rs.dps(DPS{Active: Over(rs.scale(40), 3500)}))

	// Secret ships: also 40
	rs.entrance("ASTEROID? (Episode 1) @ Quick Shots",
		rs.dps(DPS{Active: Over(rs.scale(40), 1360)}))

	rs.entrance("ASTEROID? (Episode 1) @ Final Gauntlet",
		rs.armorContact([4]int{6, 5, 5, 5}, [4]int{8, 7, 7, 6}))

	// MINEMAZE
	// Gates: 20
	rs.entrance("MINEMAZE (Episode 1) @ Destroy Gates",
		rs.dps(DPS{Active: Over(rs.scale(20), 3800)}))

	// WINDY
	// Question mark block: 20
	rs.location("WINDY (Episode 1) - Central Question Mark",
		rs.dps(DPS{Active: Over(rs.scale(20), 1400)}))

	if rs.logic() == options.LogicMaster {
		// Always assumed reachable, even if phasing through takes a
		// big bite out of your armor.
		wantedArmor := 12
		if rs.opts.HardContact {
			wantedArmor = 14
		}
		rs.entrance("WINDY (Episode 1) @ Phase Through Walls",
			Any(rs.invulnerability(), Armor(wantedArmor)))
	} else {
		// Without a guaranteed way to get invulnerability the question
		// mark stays excluded even on expert. Ways to get it: specials
		// as items, starting with it rolled, or an invulnerability
		// twiddle.
		excludeQuestionMark := rs.logic() <= options.LogicStandard
		if rs.opts.Specials == options.SpecialsAsItems ||
			rs.cfg.TwiddleInvulnerability || rs.cfg.StartInvulnerability {
			rs.entrance("WINDY (Episode 1) @ Phase Through Walls", rs.invulnerability())
		} else {
			excludeQuestionMark = true
			rs.entrance("WINDY (Episode 1) @ Phase Through Walls", Armor(14))
		}
		if excludeQuestionMark {
			rs.exclude("WINDY (Episode 1) - Central Question Mark")
		}
	}

	// Regular block: 10
	rs.entrance("WINDY (Episode 1) @ Fly Through", All(
		rs.armorContact([4]int{7, 5, 5, 5}, [4]int{11, 9, 8, 6}),
		rs.dps(DPS{Active: Over(rs.scale(10), 1400)}),
	))

	// SAVARA
	// Huge planes: 60
	rs.location("SAVARA (Episode 1) - Huge Plane, Speeds By", All(
		Generator(3),
		rs.dps(DPS{Active: Over(rs.scale(60), 1025)}),
	))

	// Vulcan plane containing an item: 14. The vulcan shots hurt a
	// lot, so the optimal kill uses passive DPS if at all possible.
	savaraVulcan := Any(
		rs.dps(DPS{Passive: Over(rs.scale(14), 2400)}),
		rs.dps(DPS{Active: Over(rs.scale(14), 1600)}),
	)
	rs.location("SAVARA (Episode 1) - Vulcan Plane", savaraVulcan)

	// Boss estimate: 254 health, shooting through 15 ticks and 4
	// missiles on the way in.
	savaraBossHealth := 254 + rs.scale(6)*15 + rs.scale(10)*4
	savaraBossActive := rs.dps(DPS{Active: Over(savaraBossHealth, 30000)})
	savaraTickSideways := rs.dps(DPS{Sideways: Over(rs.scale(6), 1200)})
	if !rs.opts.LogicBossTimeout {
		rs.entrance("SAVARA (Episode 1) @ Pass Boss (can time out)", savaraBossActive)
	} else {
		rs.location("SAVARA (Episode 1) - Boss", savaraBossActive)
		// Waiting the boss out still means destroying what it shoots
		// at you, for the stretches where dodging isn't an option.
		rs.entrance("SAVARA (Episode 1) @ Pass Boss (can time out)",
			Any(rs.invulnerability(), savaraTickSideways, savaraBossActive))
	}

	// SAVARA II
	rs.entrance("SAVARA II (Episode 1) @ Base Requirements",
		rs.armor([4]int{8, 7, 6, 5}))

	rs.entrance("SAVARA II (Episode 1) @ Destroy Green Planes",
		rs.dps(DPS{Active: 7 * MilliDPS}))

	// Huge planes spawn one difficulty step down on this level.
	rs.location("SAVARA II (Episode 1) - Huge Plane Amidst Turrets",
		rs.dps(DPS{Active: Over(rs.scaleAdj(60, -1), 2300)}))

	// Same vulcan planes as SAVARA.
	rs.location("SAVARA II (Episode 1) - Vulcan Planes Near Blimp", savaraVulcan)

	// Same boss as SAVARA too.
	if !rs.opts.LogicBossTimeout {
		rs.entrance("SAVARA II (Episode 1) @ Pass Boss (can time out)", savaraBossActive)
	} else {
		rs.location("SAVARA II (Episode 1) - Boss", savaraBossActive)
		rs.entrance("SAVARA II (Episode 1) @ Pass Boss (can time out)",
			Any(rs.invulnerability(), savaraTickSideways, savaraBossActive))
	}

	// BONUS
	// Temporary rule to keep this from occurring too early.
	rs.entrance("BONUS (Episode 1) @ Destroy Patterns",
		rs.dps(DPS{Active: 10 * MilliDPS, Passive: 10 * MilliDPS}))

	// MINES
	// Rotating orbs: 20
	orbHealth := rs.scale(20)
	rs.entrance("MINES (Episode 1) @ Destroy First Orb", Any(
		rs.dps(DPS{Piercing: Over(orbHealth, 2700)}),
		rs.dps(DPS{Active: Over(orbHealth, 1000)}),
	))
	rs.entrance("MINES (Episode 1) @ Destroy Second Orb", Any(
		rs.dps(DPS{Piercing: Over(orbHealth, 1200)}),
		rs.dps(DPS{Active: Over(orbHealth, 500)}),
	))

	// The blue mine's health never scales with difficulty.
	rs.location("MINES (Episode 1) - Blue Mine",
		rs.dps(DPS{Active: Over(30, 3000)}))

	// DELIANI
	if rs.logic() == options.LogicBeginner {
		rs.exclude("DELIANI (Episode 1) - Tricky Rail Turret")
	}

	// Rail turret: 30
	rs.location("DELIANI (Episode 1) - Tricky Rail Turret",
		rs.dps(DPS{Active: Over(rs.scale(30), 2200)}))

	// Two-tile wide turret ships: 25
	rs.entrance("DELIANI (Episode 1) @ Pass Ambush", All(
		rs.armor([4]int{10, 9, 8, 6}),
		rs.dps(DPS{Active: Over(rs.scale(25), 1600)}),
	))

	// Repulsor orbs: 80; boss: 200
	delianiBossHealth := rs.scale(80)*3 + rs.scale(200)
	rs.entrance("DELIANI (Episode 1) @ Destroy Boss",
		rs.dps(DPS{Active: Over(delianiBossHealth, 22000)}))

	// SAVARA V
	// Blimp: 70
	rs.location("SAVARA V (Episode 1) - Super Blimp",
		rs.dps(DPS{Active: Over(rs.scale(70), 1500)}))

	rs.entrance("SAVARA V (Episode 1) @ Destroy Bosses",
		rs.dps(DPS{Active: Over(254, 15000)}))

	// ASSASSIN
	rs.entrance("ASSASSIN (Episode 1) @ Destroy Boss",
		rs.dps(DPS{Active: Over(508, 20000)}))
}
