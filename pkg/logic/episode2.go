package logic

import "github.com/redshift-games/tyrian-world/pkg/options"

func (rs *ruleset) episode2() {
	// TORM
	if rs.logic() == options.LogicBeginner {
		rs.exclude("TORM (Episode 2) - Ship Fleeing Dragon Secret")
	}

	// On standard or below, require killing the dragon lurking behind
	// the secret ship. Dragon: 40
	if rs.logic() <= options.LogicStandard {
		rs.location("TORM (Episode 2) - Ship Fleeing Dragon Secret",
			rs.dps(DPS{Active: Over(rs.scale(40), 1600)}))
	}

	rs.location("TORM (Episode 2) - Boss Ship Fly-By",
		rs.dps(DPS{Active: Over(254, 4400)}))

	// The boss has 254 health on paper; compensate for its constant
	// movement all over the screen.
	tormBossActive := rs.dps(DPS{Active: Over(254*7, 4*32000)})
	if !rs.opts.LogicBossTimeout {
		rs.entrance("TORM (Episode 2) @ Pass Boss (can time out)", tormBossActive)
	} else {
		// The actual time out is attainable with an empty loadout.
		rs.location("TORM (Episode 2) - Boss", tormBossActive)
	}

	// GYGES
	if rs.logic() == options.LogicBeginner {
		rs.exclude("GYGES (Episode 2) - GEM WAR Warp Orb")
	}

	// Orbsnakes: 10 per segment, six segments
	gygesSnakeShort := rs.dps(DPS{Active: Over(rs.scale(10), 5000)})
	rs.location("GYGES (Episode 2) - Orbsnake", Any(
		gygesSnakeShort,
		rs.dps(DPS{Active: Over(rs.scale(10)*6, 5000)}),
	))

	// Either the repulsor mitigates the bullets in the speed up
	// section, or a decent loadout destroys a few things to make
	// life easier.
	gygesMixed := rs.dps(DPS{Active: 8 * MilliDPS, Passive: 12 * MilliDPS})
	rs.entrance("GYGES (Episode 2) @ After Speed Up Section",
		Any(rs.repulsor(), gygesMixed))

	rs.entrance("GYGES (Episode 2) @ Destroy Boss", gygesMixed)

	// BONUS 1
	// Temporary rule to keep this from occurring too early.
	rs.entrance("BONUS 1 (Episode 2) @ Destroy Patterns",
		rs.dps(DPS{Active: 10 * MilliDPS, Passive: 10 * MilliDPS}))

	// ASTCITY
	if rs.logic() == options.LogicBeginner {
		rs.exclude("ASTCITY (Episode 2) - MISTAKES Warp Orb")
	}

	rs.entrance("ASTCITY (Episode 2) @ Base Requirements",
		rs.armorContact([4]int{7, 7, 6, 5}, [4]int{7, 7, 6, 5}))

	// Building: 30, one difficulty step down on this level
	rs.location("ASTCITY (Episode 2) - Warehouse 92",
		rs.dps(DPS{Active: Over(rs.scaleAdj(30, -1), 4000)}))

	// The ending turret group could probably be obliterated with a
	// superbomb picked up in the level, but superbombs stay out of
	// logic entirely.
	rs.location("ASTCITY (Episode 2) - Ending Turret Group",
		rs.dps(DPS{Active: 8 * MilliDPS, Passive: 14 * MilliDPS}))

	// BONUS 2 holds nothing of note and is a flythrough, easily done
	// without firing a shot.

	// GEM WAR
	rs.entrance("GEM WAR (Episode 2) @ Base Requirements",
		rs.armorContact([4]int{7, 7, 6, 5}, [4]int{9, 9, 8, 6}))

	// Red gem ships: unscaled 254. Compensate for their movement and
	// for other enemies hanging nearby.
	wantedPassive := 12 * MilliDPS
	if rs.opts.HardContact {
		wantedPassive = 20 * MilliDPS
	}
	rs.entrance("GEM WAR (Episode 2) @ Red Gem Leaders Easy",
		rs.dps(DPS{Active: Over(254*7, 5*20000), Passive: wantedPassive}))
	rs.entrance("GEM WAR (Episode 2) @ Red Gem Leaders Medium",
		rs.dps(DPS{Active: Over(254*7, 5*17500), Passive: wantedPassive}))
	rs.entrance("GEM WAR (Episode 2) @ Red Gem Leaders Hard",
		rs.dps(DPS{Active: Over(254*7, 5*13000), Passive: wantedPassive}))

	// Center of the boss ship: 20, flanked by three ships of unscaled
	// 254. Either destroy the one in front or pierce through it.
	rs.entrance("GEM WAR (Episode 2) @ Blue Gem Bosses", Any(
		rs.dps(DPS{Piercing: Over(rs.scale(20), 16000), Passive: wantedPassive}),
		rs.dps(DPS{Active: Over(254+rs.scale(20), 16000), Passive: wantedPassive}),
	))

	// MARKERS
	if rs.logic() == options.LogicBeginner {
		rs.exclude("MARKERS (Episode 2) - Car Destroyer Secret")
	}

	// Flying through this stage is relatively easy unless contact
	// bypasses shields.
	rs.entrance("MARKERS (Episode 2) @ Base Requirements",
		rs.armorContact([4]int{5, 5, 5, 5}, [4]int{9, 8, 8, 6}))

	// Minelayer: 30, with an estimated 4 mines of 6 each in the way
	minelayerHealth := rs.scale(30) + rs.scale(6)*4
	rs.location("MARKERS (Episode 2) - Persistent Minelayer",
		rs.dps(DPS{Active: Over(minelayerHealth, 7100)}))

	// Cars: 10
	rs.location("MARKERS (Episode 2) - Car Destroyer Secret",
		rs.dps(DPS{Active: Over(rs.scale(10), 3000)}))

	// Turrets: 20
	rs.entrance("MARKERS (Episode 2) @ Through Minelayer Blockade",
		rs.dps(DPS{Active: Over(rs.scale(20), 3800)}))

	// MISTAKES
	if rs.logic() == options.LogicBeginner {
		rs.exclude("MISTAKES (Episode 2) - Orbsnakes, Trigger Enemy 1")
		rs.exclude("MISTAKES (Episode 2) - Claws, Trigger Enemy 1")
		rs.exclude("MISTAKES (Episode 2) - Claws, Trigger Enemy 2")
		rs.exclude("MISTAKES (Episode 2) - Super Bubble Spawner")
	}
	if rs.logic() <= options.LogicStandard {
		rs.exclude("MISTAKES (Episode 2) - Orbsnakes, Trigger Enemy 2")
		rs.exclude("MISTAKES (Episode 2) - Anti-Softlock")
	}

	rs.entrance("MISTAKES (Episode 2) @ Base Requirements", Any(
		rs.armorContact([4]int{6, 5, 5, 5}, [4]int{9, 8, 7, 5}),
		rs.invulnerability(),
	))

	// The bubble spawner path asks for the same short-snake kill as
	// the GYGES orbsnakes.
	rs.entrance("MISTAKES (Episode 2) @ Bubble Spawner Path", gygesSnakeShort)

	// Orbsnakes: 10 per segment, six segments
	triggerHealth := rs.scale(10)
	rs.location("MISTAKES (Episode 2) - Orbsnakes, Trigger Enemy 1", Any(
		rs.dps(DPS{Piercing: Over(triggerHealth, 5500)}),
		rs.dps(DPS{Active: Over(triggerHealth*6, 5500)}),
	))

	rs.entrance("MISTAKES (Episode 2) @ Softlock Path", Any(
		rs.dps(DPS{Piercing: Over(triggerHealth, 800)}),
		rs.dps(DPS{Active: Over(triggerHealth*6, 800)}),
	))

	// SOH JIN
	// Brown claw enemy: 15. These hold no items, but they home in on
	// you and are a pain to dodge, so lock the whole level behind
	// being able to destroy them; that much DPS covers the checks
	// here too.
	rs.entrance("SOH JIN (Episode 2) @ Base Requirements",
		rs.dps(DPS{Active: Over(rs.scale(15), 2000)}))

	// Paddle... things?: 100
	rs.entrance("SOH JIN (Episode 2) @ Destroy Second Wave Paddles", Any(
		rs.dps(DPS{Active: Over(rs.scale(100), 9000)}),
		rs.dps(DPS{Active: Over(rs.scale(100), 15000), Sideways: 10 * MilliDPS}),
	))

	// Dodging these orbs is surprisingly difficult, because of the
	// erratic vertical movement of their oscillation.
	sohJinArmor := rs.armorChoiceContact([4]int{9, 8, 7, 5}, [4]int{11, 10, 9, 7})
	rs.entrance("SOH JIN (Episode 2) @ Fly Through Third Wave Orbs", Any(
		Armor(sohJinArmor),
		All(rs.invulnerability(), Armor(sohJinArmor-2)),
	))

	rs.entrance("SOH JIN (Episode 2) @ Destroy Third Wave Orbs",
		rs.dps(DPS{Active: Over(254, 20000), Sideways: Over(254, 20000)}))

	// BOTANY A
	if rs.logic() <= options.LogicStandard {
		rs.excludeAll("BOTANY A (Episode 2) - End of Path Secret")
	}

	// The repulsor alternative needs generator headroom for shield
	// recovery.
	botanyGenerator := 2
	if rs.logic() <= options.LogicStandard {
		botanyGenerator = 3
	}
	rs.entrance("BOTANY A (Episode 2) @ Beyond Starting Area", Any(
		rs.armor([4]int{9, 9, 8, 6}),
		All(rs.repulsor(), Generator(botanyGenerator)),
	))

	// Moving turrets: 15, one difficulty step up on this level
	turretHealth := rs.scaleAdj(15, +1)
	rs.entrance("BOTANY A (Episode 2) @ Can Destroy Turrets",
		rs.dps(DPS{Active: Over(turretHealth, 2000)}))

	rs.location("BOTANY A (Episode 2) - Mobile Turret Approaching Head-On",
		rs.dps(DPS{Active: Over(turretHealth, 1000)}))

	// This one comes before the starting area gate.
	rs.location("BOTANY A (Episode 2) - Retreating Mobile Turret",
		rs.dps(DPS{Active: Over(turretHealth, 3000)}))

	// Green ships: 20, one difficulty step up. The backmost ship
	// holds the item; expect to destroy at least one other ship to
	// reach it, unless piercing damage skips the line.
	greenShipHealth := rs.scaleAdj(20, +1)
	rs.location("BOTANY A (Episode 2) - Green Ship Pincer", Any(
		rs.dps(DPS{Piercing: Over(greenShipHealth, 3000)}),
		rs.dps(DPS{Active: Over(greenShipHealth*2, 3000)}),
	))

	botanyBoss := rs.dps(DPS{Active: Over(254*9, 5*24000)})
	if !rs.opts.LogicBossTimeout {
		rs.entrance("BOTANY A (Episode 2) @ Pass Boss (can time out)", botanyBoss)
	} else {
		rs.location("BOTANY A (Episode 2) - Boss", botanyBoss)
	}

	// BOTANY B
	// Destructible sensor: 6, one difficulty step up. Start of the
	// level, nothing dangerous nearby, only need to destroy it.
	rs.location("BOTANY B (Episode 2) - Starting Platform Sensor",
		rs.dps(DPS{Active: Over(rs.scaleAdj(6, +1), 4000)}))

	// Past the starting platform the game starts demanding more:
	// enough damage to clear out a screen of moving turrets.
	botanyBHealth := rs.scaleAdj(15, +1)
	rs.entrance("BOTANY B (Episode 2) @ Beyond Starting Platform", All(
		Armor(7),
		Any(
			rs.dps(DPS{Active: Over(botanyBHealth*4, 4500)}),
			rs.dps(DPS{Passive: Over(botanyBHealth*4, 3000)}),
		),
	))

	// Same boss as BOTANY A.
	if !rs.opts.LogicBossTimeout {
		rs.entrance("BOTANY B (Episode 2) @ Pass Boss (can time out)", botanyBoss)
	} else {
		rs.location("BOTANY B (Episode 2) - Boss", botanyBoss)
	}

	// GRYPHON
	rs.entrance("GRYPHON (Episode 2) @ Base Requirements", All(
		rs.armorContact([4]int{10, 9, 8, 7}, [4]int{11, 10, 10, 8}),
		Generator(3),
		rs.dps(DPS{Active: 22 * MilliDPS, Passive: 16 * MilliDPS}),
	))
}
