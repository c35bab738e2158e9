package locations

import "github.com/redshift-games/tyrian-world/pkg/items"

func loc(name string, id int) Entry { return Entry{Name: name, LocalID: id} }

func shop(name string, firstID int) Entry { return Entry{Name: name, LocalID: firstID, Shop: true} }

func gate(name string, sub ...Entry) Entry {
	if sub == nil {
		sub = []Entry{}
	}
	return Entry{Name: name, Sub: sub}
}

func level(ep items.Episode, name string, setups []string, entries ...Entry) Level {
	return Level{Name: name, Episode: ep, Entries: entries, ShopSetups: setups}
}

// Levels lists every playable level in canonical order. Local check IDs
// are stable; gaps mark checks that were cut during layout and must not
// be reused.
var Levels = []Level{

	// Episode 1

	// The hard variant of Tyrian is similarly designed, just with more
	// enemies, so it shares checks.
	level(items.EpisodeEscape, "TYRIAN (Episode 1)",
		[]string{"A#", "B", "C", "D", "D", "E", "F", "F", "G", "I!"},
		loc("TYRIAN (Episode 1) - First U-Ship Secret", 0),
		loc("TYRIAN (Episode 1) - Early Spinner Formation", 1),
		loc("TYRIAN (Episode 1) - Lander near BUBBLES Warp Rock", 2),
		loc("TYRIAN (Episode 1) - BUBBLES Warp Rock", 3),
		loc("TYRIAN (Episode 1) - HOLES Warp Orb", 4),
		loc("TYRIAN (Episode 1) - Ships Between Platforms", 5),
		loc("TYRIAN (Episode 1) - First Line of Tanks", 6),
		loc("TYRIAN (Episode 1) - Tank Turn-and-fire Secret", 7),
		loc("TYRIAN (Episode 1) - SOH JIN Warp Orb", 8),
		gate("TYRIAN (Episode 1) @ Pass Boss (can time out)",
			loc("TYRIAN (Episode 1) - Boss", 9),
			shop("Shop - TYRIAN (Episode 1)", 1000),
		),
	),

	level(items.EpisodeEscape, "BUBBLES (Episode 1)",
		[]string{"C", "D", "E", "G", "I"},
		gate("BUBBLES (Episode 1) @ Pass Bubble Lines",
			loc("BUBBLES (Episode 1) - Orbiting Bubbles", 10),
			loc("BUBBLES (Episode 1) - Shooting Bubbles", 11),
			loc("BUBBLES (Episode 1) - Final Bubble Line", 15),
			shop("Shop - BUBBLES (Episode 1)", 1010),
			gate("BUBBLES (Episode 1) @ Speed Up Section",
				loc("BUBBLES (Episode 1) - Coin Rain 1", 12),
				loc("BUBBLES (Episode 1) - Coin Rain 2", 13),
				loc("BUBBLES (Episode 1) - Coin Rain 3", 14),
			),
		),
	),

	level(items.EpisodeEscape, "HOLES (Episode 1)",
		[]string{"C", "D", "D", "E", "F", "F", "H"},
		loc("HOLES (Episode 1) - U-Ship Formation 1", 20),
		loc("HOLES (Episode 1) - U-Ship Formation 2", 21),
		gate("HOLES (Episode 1) @ Pass Spinner Gauntlet",
			loc("HOLES (Episode 1) - Lander after Spinners", 22),
			loc("HOLES (Episode 1) - U-Ships after Boss Fly-By", 24),
			loc("HOLES (Episode 1) - Before Speed Up Section", 26),
			shop("Shop - HOLES (Episode 1)", 1020),
			gate("HOLES (Episode 1) @ Destroy Boss Ships",
				loc("HOLES (Episode 1) - Boss Ship Fly-By 1", 23),
				loc("HOLES (Episode 1) - Boss Ship Fly-By 2", 25),
			),
		),
	),

	level(items.EpisodeEscape, "SOH JIN (Episode 1)",
		[]string{"F", "H", "H", "J", "J", "T"},
		loc("SOH JIN (Episode 1) - Starting Alcove", 30),
		loc("SOH JIN (Episode 1) - Triple Diagonal Launchers", 32),
		loc("SOH JIN (Episode 1) - Checkerboard Pattern", 33),
		loc("SOH JIN (Episode 1) - Triple Orb Launchers", 34),
		loc("SOH JIN (Episode 1) - Double Orb Launcher Line", 35),
		loc("SOH JIN (Episode 1) - Next to Double Point Items", 36),
		shop("Shop - SOH JIN (Episode 1)", 1030),
		gate("SOH JIN (Episode 1) @ Destroy Walls",
			loc("SOH JIN (Episode 1) - Walled-in Orb Launcher", 31),
		),
	),

	level(items.EpisodeEscape, "ASTEROID1 (Episode 1)",
		[]string{"E", "F", "F", "F", "G"},
		loc("ASTEROID1 (Episode 1) - Shield Ship in Asteroid Field", 40),
		loc("ASTEROID1 (Episode 1) - Railgunner 1", 41),
		loc("ASTEROID1 (Episode 1) - Railgunner 2", 42),
		loc("ASTEROID1 (Episode 1) - Railgunner 3", 43),
		loc("ASTEROID1 (Episode 1) - ASTEROID? Warp Orb", 44),
		loc("ASTEROID1 (Episode 1) - Maneuvering Missiles", 45),
		gate("ASTEROID1 (Episode 1) @ Destroy Boss",
			loc("ASTEROID1 (Episode 1) - Boss", 46),
			shop("Shop - ASTEROID1 (Episode 1)", 1040),
		),
	),

	level(items.EpisodeEscape, "ASTEROID2 (Episode 1)",
		[]string{"E", "F", "F", "F", "G"},
		loc("ASTEROID2 (Episode 1) - Tank Turn-around Secret 1", 50),
		loc("ASTEROID2 (Episode 1) - First Tank Squadron", 51),
		loc("ASTEROID2 (Episode 1) - Tank Turn-around Secret 2", 52),
		loc("ASTEROID2 (Episode 1) - Second Tank Squadron", 53),
		loc("ASTEROID2 (Episode 1) - Tank Bridge", 54),
		loc("ASTEROID2 (Episode 1) - Tank Assault Right Tank Secret", 55),
		loc("ASTEROID2 (Episode 1) - MINEMAZE Warp Orb", 56),
		gate("ASTEROID2 (Episode 1) @ Destroy Boss",
			loc("ASTEROID2 (Episode 1) - Boss", 57),
			shop("Shop - ASTEROID2 (Episode 1)", 1050),
		),
	),

	level(items.EpisodeEscape, "ASTEROID? (Episode 1)",
		[]string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L", "M", "N", "O", "P"},
		gate("ASTEROID? (Episode 1) @ Initial Welcome",
			loc("ASTEROID? (Episode 1) - Welcoming Launchers 1", 60),
			loc("ASTEROID? (Episode 1) - Welcoming Launchers 2", 61),
			loc("ASTEROID? (Episode 1) - Boss Launcher", 62),
			loc("ASTEROID? (Episode 1) - WINDY Warp Orb", 63),
			gate("ASTEROID? (Episode 1) @ Quick Shots",
				loc("ASTEROID? (Episode 1) - Quick Shot 1", 64),
				loc("ASTEROID? (Episode 1) - Quick Shot 2", 65),
			),
			gate("ASTEROID? (Episode 1) @ Final Gauntlet",
				shop("Shop - ASTEROID? (Episode 1)", 1060),
			),
		),
	),

	level(items.EpisodeEscape, "MINEMAZE (Episode 1)",
		[]string{"E", "F", "F", "F", "G"},
		gate("MINEMAZE (Episode 1) @ Destroy Gates",
			loc("MINEMAZE (Episode 1) - Starting Gate", 70),
			loc("MINEMAZE (Episode 1) - Lone Orb", 71),
			loc("MINEMAZE (Episode 1) - Right Path Gate", 72),
			loc("MINEMAZE (Episode 1) - That's not a Strawberry", 73),
			loc("MINEMAZE (Episode 1) - ASTEROID? Warp Orb", 74),
			loc("MINEMAZE (Episode 1) - Ships Behind Central Gate", 75),
			shop("Shop - MINEMAZE (Episode 1)", 1070),
		),
	),

	level(items.EpisodeEscape, "WINDY (Episode 1)",
		[]string{"F", "G", "I"},
		gate("WINDY (Episode 1) @ Fly Through",
			shop("Shop - WINDY (Episode 1)", 1080),
			gate("WINDY (Episode 1) @ Phase Through Walls",
				loc("WINDY (Episode 1) - Central Question Mark", 80),
			),
		),
	),

	// The variant of Savara on Easy or Medium.
	level(items.EpisodeEscape, "SAVARA (Episode 1)",
		[]string{"E", "H", "L", "P"},
		loc("SAVARA (Episode 1) - White Formation Leader 1", 90),
		loc("SAVARA (Episode 1) - White Formation Leader 2", 91),
		loc("SAVARA (Episode 1) - Green Plane Line", 92),
		loc("SAVARA (Episode 1) - Brown Plane Breaking Formation", 93),
		loc("SAVARA (Episode 1) - Huge Plane, Speeds By", 94),
		loc("SAVARA (Episode 1) - Vulcan Plane", 95),
		gate("SAVARA (Episode 1) @ Pass Boss (can time out)",
			loc("SAVARA (Episode 1) - Boss", 96),
			shop("Shop - SAVARA (Episode 1)", 1090),
		),
	),

	// The variant of Savara on Hard or above.
	level(items.EpisodeEscape, "SAVARA II (Episode 1)",
		[]string{"E", "H", "L", "P"},
		gate("SAVARA II (Episode 1) @ Base Requirements",
			loc("SAVARA II (Episode 1) - Launched Planes 1", 100),
			loc("SAVARA II (Episode 1) - Huge Plane Amidst Turrets", 102),
			loc("SAVARA II (Episode 1) - Vulcan Planes Near Blimp", 103),
			loc("SAVARA II (Episode 1) - Launched Planes 2", 105),
			gate("SAVARA II (Episode 1) @ Destroy Green Planes",
				loc("SAVARA II (Episode 1) - Green Plane Sequence 1", 101),
				loc("SAVARA II (Episode 1) - Green Plane Sequence 2", 104),
			),
			gate("SAVARA II (Episode 1) @ Pass Boss (can time out)",
				loc("SAVARA II (Episode 1) - Boss", 106),
				shop("Shop - SAVARA II (Episode 1)", 1100),
			),
		),
	),

	level(items.EpisodeEscape, "BONUS (Episode 1)",
		[]string{"J", "J", "J", "K", "K", "L"},
		gate("BONUS (Episode 1) @ Destroy Patterns",
			shop("Shop - BONUS (Episode 1)", 1110),
		),
	),

	level(items.EpisodeEscape, "MINES (Episode 1)",
		[]string{"E", "F", "G", "H", "J"},
		loc("MINES (Episode 1) - Blue Mine", 121),
		loc("MINES (Episode 1) - Absolutely Free", 123),
		loc("MINES (Episode 1) - But Wait There's More", 124),
		shop("Shop - MINES (Episode 1)", 1120),
		gate("MINES (Episode 1) @ Destroy First Orb",
			loc("MINES (Episode 1) - Regular Spinning Orbs", 120),
			gate("MINES (Episode 1) @ Destroy Second Orb",
				loc("MINES (Episode 1) - Repulsor Spinning Orbs", 122),
			),
		),
	),

	level(items.EpisodeEscape, "DELIANI (Episode 1)",
		[]string{"K", "M", "O", "P", "Q"},
		loc("DELIANI (Episode 1) - First Turret Wave 1", 130),
		loc("DELIANI (Episode 1) - First Turret Wave 2", 131),
		loc("DELIANI (Episode 1) - Tricky Rail Turret", 132),
		loc("DELIANI (Episode 1) - Second Turret Wave 1", 133),
		loc("DELIANI (Episode 1) - Second Turret Wave 2", 134),
		gate("DELIANI (Episode 1) @ Pass Ambush",
			loc("DELIANI (Episode 1) - Ambush", 135),
			loc("DELIANI (Episode 1) - Last Cross Formation", 136),
			gate("DELIANI (Episode 1) @ Destroy Boss",
				loc("DELIANI (Episode 1) - Boss", 137),
				shop("Shop - DELIANI (Episode 1)", 1130),
			),
		),
	),

	level(items.EpisodeEscape, "SAVARA V (Episode 1)",
		[]string{"E", "H", "L", "P"},
		loc("SAVARA V (Episode 1) - Green Plane Sequence", 140),
		loc("SAVARA V (Episode 1) - Flying Between Blimps", 141),
		loc("SAVARA V (Episode 1) - Brown Plane Sequence", 142),
		loc("SAVARA V (Episode 1) - Flying Alongside Green Planes", 143),
		loc("SAVARA V (Episode 1) - Super Blimp", 144),
		gate("SAVARA V (Episode 1) @ Destroy Bosses",
			loc("SAVARA V (Episode 1) - Mid-Boss", 145),
			loc("SAVARA V (Episode 1) - Boss", 146),
			shop("Shop - SAVARA V (Episode 1)", 1140),
		),
	),

	level(items.EpisodeEscape, "ASSASSIN (Episode 1)",
		[]string{"S"},
		gate("ASSASSIN (Episode 1) @ Destroy Boss",
			loc("ASSASSIN (Episode 1) - Boss", 150),
			shop("Shop - ASSASSIN (Episode 1)", 1150),
		),
	),

	// Episode 2

	level(items.EpisodeTreachery, "TORM (Episode 2)",
		[]string{"A#", "B", "C", "D", "D", "E", "F", "F", "G", "I!"},
		loc("TORM (Episode 2) - Jungle Ship V Formation 1", 160),
		loc("TORM (Episode 2) - Ship Fleeing Dragon Secret", 161),
		loc("TORM (Episode 2) - Excuse Me, You Dropped This", 162),
		loc("TORM (Episode 2) - Jungle Ship V Formation 2", 163),
		loc("TORM (Episode 2) - Jungle Ship V Formation 3", 164),
		loc("TORM (Episode 2) - Undocking Jungle Ship", 165),
		loc("TORM (Episode 2) - Boss Ship Fly-By", 166),
		gate("TORM (Episode 2) @ Pass Boss (can time out)",
			loc("TORM (Episode 2) - Boss", 167),
			shop("Shop - TORM (Episode 2)", 1160),
		),
	),

	level(items.EpisodeTreachery, "GYGES (Episode 2)", nil,
		loc("GYGES (Episode 2) - Circled Shapeshifting Turret 1", 170),
		loc("GYGES (Episode 2) - Wide Waving Worm", 171),
		loc("GYGES (Episode 2) - Orbsnake", 172),
		gate("GYGES (Episode 2) @ After Speed Up Section",
			loc("GYGES (Episode 2) - GEM WAR Warp Orb", 173),
			loc("GYGES (Episode 2) - Circled Shapeshifting Turret 2", 174),
			loc("GYGES (Episode 2) - Last Set of Worms", 175),
			gate("GYGES (Episode 2) @ Destroy Boss",
				loc("GYGES (Episode 2) - Boss", 176),
				shop("Shop - GYGES (Episode 2)", 1170),
			),
		),
	),

	level(items.EpisodeTreachery, "BONUS 1 (Episode 2)", nil,
		gate("BONUS 1 (Episode 2) @ Destroy Patterns",
			shop("Shop - BONUS 1 (Episode 2)", 1180),
		),
	),

	level(items.EpisodeTreachery, "ASTCITY (Episode 2)", nil,
		gate("ASTCITY (Episode 2) @ Base Requirements",
			loc("ASTCITY (Episode 2) - Shield Ship V Formation 1", 190),
			loc("ASTCITY (Episode 2) - Shield Ship V Formation 2", 191),
			loc("ASTCITY (Episode 2) - Plasma Turrets Going Uphill", 192),
			loc("ASTCITY (Episode 2) - Warehouse 92", 193),
			loc("ASTCITY (Episode 2) - Shield Ship V Formation 3", 194),
			loc("ASTCITY (Episode 2) - Shield Ship Canyon 1", 195),
			loc("ASTCITY (Episode 2) - Shield Ship Canyon 2", 196),
			loc("ASTCITY (Episode 2) - Shield Ship Canyon 3", 197),
			loc("ASTCITY (Episode 2) - MISTAKES Warp Orb", 198),
			loc("ASTCITY (Episode 2) - Ending Turret Group", 199),
			shop("Shop - ASTCITY (Episode 2)", 1190),
		),
	),

	level(items.EpisodeTreachery, "BONUS 2 (Episode 2)", nil,
		shop("Shop - BONUS 2 (Episode 2)", 1200),
	),

	level(items.EpisodeTreachery, "GEM WAR (Episode 2)", nil,
		gate("GEM WAR (Episode 2) @ Base Requirements",
			gate("GEM WAR (Episode 2) @ Red Gem Leaders Easy",
				loc("GEM WAR (Episode 2) - Red Gem Leader 2", 211),
				loc("GEM WAR (Episode 2) - Red Gem Leader 3", 212),
				gate("GEM WAR (Episode 2) @ Red Gem Leaders Medium",
					loc("GEM WAR (Episode 2) - Red Gem Leader 1", 210),
					gate("GEM WAR (Episode 2) @ Red Gem Leaders Hard",
						loc("GEM WAR (Episode 2) - Red Gem Leader 4", 213),
					),
				),
			),
			gate("GEM WAR (Episode 2) @ Blue Gem Bosses",
				loc("GEM WAR (Episode 2) - Blue Gem Boss 1", 214),
				loc("GEM WAR (Episode 2) - Blue Gem Boss 2", 215),
				shop("Shop - GEM WAR (Episode 2)", 1210),
			),
		),
	),

	level(items.EpisodeTreachery, "MARKERS (Episode 2)", nil,
		gate("MARKERS (Episode 2) @ Base Requirements",
			loc("MARKERS (Episode 2) - Right Path Turret", 220),
			gate("MARKERS (Episode 2) @ Through Minelayer Blockade",
				loc("MARKERS (Episode 2) - Persistent Minelayer", 221),
				loc("MARKERS (Episode 2) - Car Destroyer Secret", 222),
				loc("MARKERS (Episode 2) - Left Path Turret", 223),
				loc("MARKERS (Episode 2) - End Section Turret", 224),
				shop("Shop - MARKERS (Episode 2)", 1220),
			),
		),
	),

	level(items.EpisodeTreachery, "MISTAKES (Episode 2)",
		[]string{"B", "D", "J", "K", "L", "O", "V", "Z!"},
		gate("MISTAKES (Episode 2) @ Base Requirements",
			loc("MISTAKES (Episode 2) - Start, Trigger Enemy 1", 230),
			loc("MISTAKES (Episode 2) - Start, Trigger Enemy 2", 231),
			loc("MISTAKES (Episode 2) - Orbsnakes, Trigger Enemy 1", 232),
			loc("MISTAKES (Episode 2) - Claws, Trigger Enemy 1", 234),
			loc("MISTAKES (Episode 2) - Drills, Trigger Enemy 1", 236),
			loc("MISTAKES (Episode 2) - Drills, Trigger Enemy 2", 237),
			shop("Shop - MISTAKES (Episode 2)", 1230),
			gate("MISTAKES (Episode 2) @ Bubble Spawner Path",
				loc("MISTAKES (Episode 2) - Claws, Trigger Enemy 2", 235),
				loc("MISTAKES (Episode 2) - Super Bubble Spawner", 238),
			),
			gate("MISTAKES (Episode 2) @ Softlock Path",
				loc("MISTAKES (Episode 2) - Orbsnakes, Trigger Enemy 2", 233),
				loc("MISTAKES (Episode 2) - Anti-Softlock", 239),
			),
		),
	),

	level(items.EpisodeTreachery, "SOH JIN (Episode 2)", nil,
		gate("SOH JIN (Episode 2) @ Base Requirements",
			loc("SOH JIN (Episode 2) - Sinusoidal Missile Wave", 240),
			loc("SOH JIN (Episode 2) - Second Missile Ship Set", 241),
			gate("SOH JIN (Episode 2) @ Destroy Second Wave Paddles",
				loc("SOH JIN (Episode 2) - Paddle Destruction 1", 242),
				loc("SOH JIN (Episode 2) - Paddle Destruction 2", 243),
			),
			gate("SOH JIN (Episode 2) @ Fly Through Third Wave Orbs",
				loc("SOH JIN (Episode 2) - Last Missile Ship Set", 244),
				shop("Shop - SOH JIN (Episode 2)", 1240),
				gate("SOH JIN (Episode 2) @ Destroy Third Wave Orbs",
					loc("SOH JIN (Episode 2) - Boss Orbs 1", 245),
					loc("SOH JIN (Episode 2) - Boss Orbs 2", 246),
				),
			),
		),
	),

	level(items.EpisodeTreachery, "BOTANY A (Episode 2)", nil,
		loc("BOTANY A (Episode 2) - Retreating Mobile Turret", 250),
		gate("BOTANY A (Episode 2) @ Beyond Starting Area",
			loc("BOTANY A (Episode 2) - Green Ship Pincer", 254),
			gate("BOTANY A (Episode 2) @ Can Destroy Turrets",
				loc("BOTANY A (Episode 2) - End of Path Secret 1", 251),
				loc("BOTANY A (Episode 2) - Mobile Turret Approaching Head-On", 252),
				loc("BOTANY A (Episode 2) - End of Path Secret 2", 253),
			),
			gate("BOTANY A (Episode 2) @ Pass Boss (can time out)",
				loc("BOTANY A (Episode 2) - Boss", 255),
				shop("Shop - BOTANY A (Episode 2)", 1250),
			),
		),
	),

	level(items.EpisodeTreachery, "BOTANY B (Episode 2)", nil,
		loc("BOTANY B (Episode 2) - Starting Platform Sensor", 260),
		gate("BOTANY B (Episode 2) @ Beyond Starting Platform",
			loc("BOTANY B (Episode 2) - Main Platform Sensor 1", 261),
			loc("BOTANY B (Episode 2) - Main Platform Sensor 2", 262),
			loc("BOTANY B (Episode 2) - Main Platform Sensor 3", 263),
			loc("BOTANY B (Episode 2) - Super-Turret on Bridge", 264),
			gate("BOTANY B (Episode 2) @ Pass Boss (can time out)",
				loc("BOTANY B (Episode 2) - Boss", 265),
				shop("Shop - BOTANY B (Episode 2)", 1260),
			),
		),
	),

	level(items.EpisodeTreachery, "GRYPHON (Episode 2)",
		[]string{"S", "S", "V"},
		gate("GRYPHON (Episode 2) @ Base Requirements",
			loc("GRYPHON (Episode 2) - Pulse-Turret Wave Mid-Spikes", 270),
			loc("GRYPHON (Episode 2) - Swooping Pulse-Turrets", 271),
			loc("GRYPHON (Episode 2) - Sweeping Pulse-Turrets", 272),
			loc("GRYPHON (Episode 2) - Spike From Behind", 273),
			loc("GRYPHON (Episode 2) - Breaking Formation 1", 274),
			loc("GRYPHON (Episode 2) - Breaking Formation 2", 275),
			loc("GRYPHON (Episode 2) - Breaking Formation 3", 276),
			loc("GRYPHON (Episode 2) - Breaking Formation 4", 277),
			loc("GRYPHON (Episode 2) - Breaking Formation 5", 278),
			gate("GRYPHON (Episode 2) @ Destroy Boss",
				loc("GRYPHON (Episode 2) - Boss", 279),
				shop("Shop - GRYPHON (Episode 2)", 1270),
			),
		),
	),

	// Episode 3

	level(items.EpisodeMissionSuicide, "GAUNTLET (Episode 3)",
		[]string{"A#", "B", "C", "D", "D", "E", "F", "F", "G", "I!"},
		loc("GAUNTLET (Episode 3) - Fork Ships, Right", 280),
		loc("GAUNTLET (Episode 3) - Fork Ships, Middle", 281),
		loc("GAUNTLET (Episode 3) - Doubled-up Gates", 282),
		loc("GAUNTLET (Episode 3) - Capsule Ships Near Mace", 283),
		loc("GAUNTLET (Episode 3) - Split Gates, Left", 284),
		gate("GAUNTLET (Episode 3) @ Clear Orb Tree",
			loc("GAUNTLET (Episode 3) - Tree of Spinning Orbs", 285),
			loc("GAUNTLET (Episode 3) - Gate near Freebie Item", 286),
			loc("GAUNTLET (Episode 3) - Freebie Item", 287),
			shop("Shop - GAUNTLET (Episode 3)", 1280),
		),
	),

	level(items.EpisodeMissionSuicide, "IXMUCANE (Episode 3)", nil,
		loc("IXMUCANE (Episode 3) - Pebble Ship, Start", 290),
		gate("IXMUCANE (Episode 3) @ Pass Minelayers Requirements",
			loc("IXMUCANE (Episode 3) - Pebble Ship, Speed Up Section", 291),
			loc("IXMUCANE (Episode 3) - Enemy From Behind", 292),
			loc("IXMUCANE (Episode 3) - Sideways Minelayer, Domes", 293),
			loc("IXMUCANE (Episode 3) - Pebble Ship, Domes", 294),
			loc("IXMUCANE (Episode 3) - Sideways Minelayer, Before Boss", 295),
			gate("IXMUCANE (Episode 3) @ Pass Boss (can time out)",
				loc("IXMUCANE (Episode 3) - Boss", 296),
				shop("Shop - IXMUCANE (Episode 3)", 1290),
			),
		),
	),

	level(items.EpisodeMissionSuicide, "BONUS (Episode 3)",
		[]string{"G", "G"},
		loc("BONUS (Episode 3) - Lone Turret 1", 300),
		gate("BONUS (Episode 3) @ Pass Onslaughts",
			loc("BONUS (Episode 3) - Lone Turret 2", 303),
			gate("BONUS (Episode 3) @ Get Items from Onslaughts",
				loc("BONUS (Episode 3) - Behind Onslaught 1", 301),
				loc("BONUS (Episode 3) - Behind Onslaught 2", 302),
			),
			gate("BONUS (Episode 3) @ Sonic Wave Hell",
				loc("BONUS (Episode 3) - Sonic Wave Hell Turret", 304),
				shop("Shop - BONUS (Episode 3)", 1300),
			),
		),
	),

	level(items.EpisodeMissionSuicide, "STARGATE (Episode 3)", nil,
		loc("STARGATE (Episode 3) - The Bubbleway", 310),
		loc("STARGATE (Episode 3) - First Bubble Spawner", 311),
		loc("STARGATE (Episode 3) - AST. CITY Warp Orb 1", 312),
		loc("STARGATE (Episode 3) - AST. CITY Warp Orb 2", 313),
		loc("STARGATE (Episode 3) - SAWBLADES Warp Orb 1", 314),
		loc("STARGATE (Episode 3) - SAWBLADES Warp Orb 2", 315),
		gate("STARGATE (Episode 3) @ Reach Bubble Spawner",
			loc("STARGATE (Episode 3) - Super Bubble Spawner", 316),
			shop("Shop - STARGATE (Episode 3)", 1310),
		),
	),

	level(items.EpisodeMissionSuicide, "AST. CITY (Episode 3)", nil,
		gate("AST. CITY (Episode 3) @ Base Requirements",
			loc("AST. CITY (Episode 3) - Shield Ship, Start", 320),
			loc("AST. CITY (Episode 3) - Shield Ship, After Boss Dome 1", 322),
			loc("AST. CITY (Episode 3) - Shield Ship, Before Boss Dome 2", 323),
			loc("AST. CITY (Episode 3) - Shield Ship, Near Boss Dome 2", 325),
			loc("AST. CITY (Episode 3) - Shield Ship, Near Boss Dome 3", 327),
			shop("Shop - AST. CITY (Episode 3)", 1320),
			gate("AST. CITY (Episode 3) @ Destroy Boss Domes",
				loc("AST. CITY (Episode 3) - Boss Dome 1", 321),
				loc("AST. CITY (Episode 3) - Boss Dome 2", 324),
				loc("AST. CITY (Episode 3) - Boss Dome 3", 326),
				loc("AST. CITY (Episode 3) - Boss Dome 4", 328),
			),
		),
	),

	level(items.EpisodeMissionSuicide, "SAWBLADES (Episode 3)", nil,
		gate("SAWBLADES (Episode 3) @ Base Requirements",
			loc("SAWBLADES (Episode 3) - Pebble Ship, Start 1", 330),
			loc("SAWBLADES (Episode 3) - Pebble Ship, Start 2", 331),
			loc("SAWBLADES (Episode 3) - Light Turret, Gravitium Rocks", 332),
			loc("SAWBLADES (Episode 3) - Waving Sawblade", 333),
			loc("SAWBLADES (Episode 3) - Light Turret, After Sawblades", 334),
			loc("SAWBLADES (Episode 3) - Pebble Ship, After Sawblades", 335),
			loc("SAWBLADES (Episode 3) - SuperCarrot Secret Drop", 336),
			shop("Shop - SAWBLADES (Episode 3)", 1330),
		),
	),

	level(items.EpisodeMissionSuicide, "CAMANIS (Episode 3)", nil,
		gate("CAMANIS (Episode 3) @ Base Requirements",
			loc("CAMANIS (Episode 3) - Ice Spitter, Near Plasma Guns", 340),
			loc("CAMANIS (Episode 3) - Blizzard Ship Assault", 341),
			loc("CAMANIS (Episode 3) - Ice Spitter, After Blizzard", 342),
			loc("CAMANIS (Episode 3) - Roaming Snowball", 343),
			loc("CAMANIS (Episode 3) - Ice Spitter, Ending", 344),
			gate("CAMANIS (Episode 3) @ Pass Boss (can time out)",
				loc("CAMANIS (Episode 3) - Boss", 345),
				shop("Shop - CAMANIS (Episode 3)", 1340),
			),
		),
	),

	level(items.EpisodeMissionSuicide, "MACES (Episode 3)", nil,
		loc("MACES (Episode 3) - Third Mace's Path", 350),
		loc("MACES (Episode 3) - Sixth Mace's Path", 351),
		loc("MACES (Episode 3) - A Brief Reprieve, Left", 352),
		loc("MACES (Episode 3) - A Brief Reprieve, Center", 353),
		loc("MACES (Episode 3) - A Brief Reprieve, Right", 354),
		shop("Shop - MACES (Episode 3)", 1350),
	),

	level(items.EpisodeMissionSuicide, "TYRIAN X (Episode 3)", nil,
		gate("TYRIAN X (Episode 3) @ Base Requirements",
			loc("TYRIAN X (Episode 3) - First U-Ship Secret", 360),
			loc("TYRIAN X (Episode 3) - Second Secret, Same as the First", 361),
			loc("TYRIAN X (Episode 3) - Side-flying Ship Near Landers", 362),
			loc("TYRIAN X (Episode 3) - Platform Spinner Sequence", 363),
			loc("TYRIAN X (Episode 3) - Ships Between Platforms", 364),
			gate("TYRIAN X (Episode 3) @ Tanks Behind Structures",
				loc("TYRIAN X (Episode 3) - Tank Near Purple Structure", 365),
				loc("TYRIAN X (Episode 3) - Tank Turn-and-fire Secret", 366),
			),
			gate("TYRIAN X (Episode 3) @ Pass Boss (can time out)",
				loc("TYRIAN X (Episode 3) - Boss", 367),
				shop("Shop - TYRIAN X (Episode 3)", 1360),
			),
		),
	),

	level(items.EpisodeMissionSuicide, "SAVARA Y (Episode 3)", nil,
		loc("SAVARA Y (Episode 3) - White Formation Leader", 370),
		loc("SAVARA Y (Episode 3) - Flying Between Huge Planes", 371),
		loc("SAVARA Y (Episode 3) - Vulcan Plane Set", 372),
		gate("SAVARA Y (Episode 3) @ Through Blimp Blockade",
			loc("SAVARA Y (Episode 3) - Boss Ship Fly-By", 373),
			gate("SAVARA Y (Episode 3) @ Death Plane Set",
				loc("SAVARA Y (Episode 3) - Death Plane Set, Right", 374),
				loc("SAVARA Y (Episode 3) - Death Plane Set, Center", 375),
			),
			gate("SAVARA Y (Episode 3) @ Pass Boss (can time out)",
				loc("SAVARA Y (Episode 3) - Boss", 376),
				shop("Shop - SAVARA Y (Episode 3)", 1370),
			),
		),
	),

	level(items.EpisodeMissionSuicide, "NEW DELI (Episode 3)", nil,
		gate("NEW DELI (Episode 3) @ Base Requirements",
			loc("NEW DELI (Episode 3) - First Turret Wave 1", 380),
			loc("NEW DELI (Episode 3) - First Turret Wave 2", 381),
			gate("NEW DELI (Episode 3) @ The Gauntlet Begins",
				loc("NEW DELI (Episode 3) - Second Turret Wave 1", 382),
				loc("NEW DELI (Episode 3) - Second Turret Wave 2", 383),
				loc("NEW DELI (Episode 3) - Second Turret Wave 3", 384),
				loc("NEW DELI (Episode 3) - Second Turret Wave 4", 385),
				gate("NEW DELI (Episode 3) @ Destroy Boss",
					loc("NEW DELI (Episode 3) - Boss", 386),
					shop("Shop - NEW DELI (Episode 3)", 1380),
				),
			),
		),
	),

	level(items.EpisodeMissionSuicide, "FLEET (Episode 3)",
		[]string{"S", "V", "X"},
		gate("FLEET (Episode 3) @ Base Requirements",
			loc("FLEET (Episode 3) - Attractor Crane, Entrance", 390),
			loc("FLEET (Episode 3) - Fire Shooter, Between Ships", 391),
			loc("FLEET (Episode 3) - Fire Shooter, Near Massive Ship", 392),
			loc("FLEET (Episode 3) - Attractor Crane, Mid-Fleet", 393),
			gate("FLEET (Episode 3) @ Destroy Boss",
				loc("FLEET (Episode 3) - Boss", 394),
				shop("Shop - FLEET (Episode 3)", 1390),
			),
		),
	),

	// Episode 4

	level(items.EpisodeAnEndToFate, "SURFACE (Episode 4)", nil,
		loc("SURFACE (Episode 4) - WINDY Warp Orb", 400),
		loc("SURFACE (Episode 4) - Triple V Formation", 401),
		shop("Shop - SURFACE (Episode 4)", 1400),
	),

	level(items.EpisodeAnEndToFate, "WINDY (Episode 4)", nil,
		shop("Shop - WINDY (Episode 4)", 1410),
	),

	level(items.EpisodeAnEndToFate, "LAVA RUN (Episode 4)", nil,
		loc("LAVA RUN (Episode 4) - Second Laser Shooter", 420),
		loc("LAVA RUN (Episode 4) - Left Side Missile Launcher", 421),
		gate("LAVA RUN (Episode 4) @ Pass Boss (can time out)",
			loc("LAVA RUN (Episode 4) - Boss", 422),
			shop("Shop - LAVA RUN (Episode 4)", 1420),
		),
	),

	level(items.EpisodeAnEndToFate, "CORE (Episode 4)", nil,
		gate("CORE (Episode 4) @ Destroy Boss",
			loc("CORE (Episode 4) - Boss", 430),
			shop("Shop - CORE (Episode 4)", 1430),
		),
	),

	level(items.EpisodeAnEndToFate, "LAVA EXIT (Episode 4)", nil,
		loc("LAVA EXIT (Episode 4) - Central Lightning Shooter", 440),
		loc("LAVA EXIT (Episode 4) - Lava Bubble Wave 1", 441),
		loc("LAVA EXIT (Episode 4) - Lava Bubble Wave 2", 442),
		loc("LAVA EXIT (Episode 4) - DESERTRUN Warp Orb", 443),
		loc("LAVA EXIT (Episode 4) - Final Lava Bubble Assault 1", 444),
		loc("LAVA EXIT (Episode 4) - Final Lava Bubble Assault 2", 445),
		loc("LAVA EXIT (Episode 4) - Boss", 446),
		shop("Shop - LAVA EXIT (Episode 4)", 1440),
	),

	level(items.EpisodeAnEndToFate, "DESERTRUN (Episode 4)", nil,
		loc("DESERTRUN (Episode 4) - Afterburner Smooth Flying", 450),
		loc("DESERTRUN (Episode 4) - Ending Slalom 1", 451),
		loc("DESERTRUN (Episode 4) - Ending Slalom 2", 452),
		loc("DESERTRUN (Episode 4) - Ending Slalom 3", 453),
		loc("DESERTRUN (Episode 4) - Ending Slalom 4", 454),
		loc("DESERTRUN (Episode 4) - Ending Slalom 5", 455),
		shop("Shop - DESERTRUN (Episode 4)", 1450),
	),

	level(items.EpisodeAnEndToFate, "SIDE EXIT (Episode 4)", nil,
		loc("SIDE EXIT (Episode 4) - Waving X-shaped Enemies 1", 460),
		loc("SIDE EXIT (Episode 4) - Third Laser Shooter", 461),
		loc("SIDE EXIT (Episode 4) - Waving X-shaped Enemies 2", 462),
		loc("SIDE EXIT (Episode 4) - Final Laser Shooter Onslaught", 463),
		shop("Shop - SIDE EXIT (Episode 4)", 1460),
	),

	level(items.EpisodeAnEndToFate, "?TUNNEL? (Episode 4)", nil,
		gate("?TUNNEL? (Episode 4) @ Destroy Boss",
			loc("?TUNNEL? (Episode 4) - Boss", 470),
			shop("Shop - ?TUNNEL? (Episode 4)", 1470),
		),
	),

	level(items.EpisodeAnEndToFate, "ICE EXIT (Episode 4)", nil,
		loc("ICE EXIT (Episode 4) - ICESECRET Orb", 480),
		gate("ICE EXIT (Episode 4) @ Destroy Boss",
			loc("ICE EXIT (Episode 4) - Boss", 481),
			shop("Shop - ICE EXIT (Episode 4)", 1480),
		),
	),

	level(items.EpisodeAnEndToFate, "ICESECRET (Episode 4)", nil,
		loc("ICESECRET (Episode 4) - Large U-Ship Mini-Boss", 490),
		loc("ICESECRET (Episode 4) - MegaLaser Dual Drop", 491),
		loc("ICESECRET (Episode 4) - Boss", 492),
		shop("Shop - ICESECRET (Episode 4)", 1490),
	),

	level(items.EpisodeAnEndToFate, "HARVEST (Episode 4)", nil,
		loc("HARVEST (Episode 4) - High Speed V Formation", 500),
		loc("HARVEST (Episode 4) - Shooter with Gravity Orbs", 501),
		loc("HARVEST (Episode 4) - Shooter with Clone Bosses", 502),
		loc("HARVEST (Episode 4) - Grounded Shooter 1", 503),
		loc("HARVEST (Episode 4) - Grounded Shooter 2", 504),
		loc("HARVEST (Episode 4) - Ending V Formation", 505),
		gate("HARVEST (Episode 4) @ Destroy Boss",
			loc("HARVEST (Episode 4) - Boss", 506),
			shop("Shop - HARVEST (Episode 4)", 1500),
		),
	),

	level(items.EpisodeAnEndToFate, "UNDERDELI (Episode 4)", nil,
		loc("UNDERDELI (Episode 4) - Boss's Red Eye", 510),
		loc("UNDERDELI (Episode 4) - Boss", 511),
		shop("Shop - UNDERDELI (Episode 4)", 1510),
	),

	level(items.EpisodeAnEndToFate, "APPROACH (Episode 4)", nil,
		shop("Shop - APPROACH (Episode 4)", 1520),
	),

	level(items.EpisodeAnEndToFate, "SAVARA IV (Episode 4)", nil,
		loc("SAVARA IV (Episode 4) - Early Breakaway V Formation", 530),
		loc("SAVARA IV (Episode 4) - First Drunk Plane", 531),
		loc("SAVARA IV (Episode 4) - Last Breakaway V Formation", 532),
		loc("SAVARA IV (Episode 4) - Second Drunk Plane", 533),
		loc("SAVARA IV (Episode 4) - Boss", 534),
		shop("Shop - SAVARA IV (Episode 4)", 1530),
	),

	level(items.EpisodeAnEndToFate, "DREAD-NOT (Episode 4)", nil,
		gate("DREAD-NOT (Episode 4) @ Defeat Boss",
			loc("DREAD-NOT (Episode 4) - Boss", 540),
			shop("Shop - DREAD-NOT (Episode 4)", 1540),
		),
	),

	level(items.EpisodeAnEndToFate, "EYESPY (Episode 4)", nil,
		loc("EYESPY (Episode 4) - Green Exploding Eye 1", 550),
		loc("EYESPY (Episode 4) - Blue Splitting Eye 1", 551),
		loc("EYESPY (Episode 4) - Green Exploding Eye 2", 552),
		loc("EYESPY (Episode 4) - Blue Splitting Eye 2", 553),
		loc("EYESPY (Episode 4) - Blue Splitting Eye 3", 554),
		loc("EYESPY (Episode 4) - Billiard Break Secret", 555),
		loc("EYESPY (Episode 4) - Boss", 556),
		shop("Shop - EYESPY (Episode 4)", 1550),
	),

	level(items.EpisodeAnEndToFate, "BRAINIAC (Episode 4)", nil,
		loc("BRAINIAC (Episode 4) - Turret-Guarded Pathway", 560),
		loc("BRAINIAC (Episode 4) - Mid-Boss 1", 561),
		loc("BRAINIAC (Episode 4) - Mid-Boss 2", 562),
		loc("BRAINIAC (Episode 4) - Boss", 563),
		shop("Shop - BRAINIAC (Episode 4)", 1560),
	),

	level(items.EpisodeAnEndToFate, "NOSE DRIP (Episode 4)",
		[]string{"S", "W", "Y"},
		gate("NOSE DRIP (Episode 4) @ Destroy Boss",
			loc("NOSE DRIP (Episode 4) - Boss", 570),
			shop("Shop - NOSE DRIP (Episode 4)", 1570),
		),
	),

	// Episode 5

	level(items.EpisodeHazudraFodder, "ASTEROIDS (Episode 5)", nil,
		loc("ASTEROIDS (Episode 5) - Ship 1", 580),
		loc("ASTEROIDS (Episode 5) - Railgunner 1", 581),
		loc("ASTEROIDS (Episode 5) - Ship", 582),
		loc("ASTEROIDS (Episode 5) - Railgunner 2", 583),
		loc("ASTEROIDS (Episode 5) - Ship 2", 584),
		loc("ASTEROIDS (Episode 5) - Boss", 585),
		shop("Shop - ASTEROIDS (Episode 5)", 1580),
	),

	level(items.EpisodeHazudraFodder, "AST ROCK (Episode 5)", nil,
		shop("Shop - AST ROCK (Episode 5)", 1590),
	),

	level(items.EpisodeHazudraFodder, "MINERS (Episode 5)", nil,
		loc("MINERS (Episode 5) - Boss", 600),
		shop("Shop - MINERS (Episode 5)", 1600),
	),

	level(items.EpisodeHazudraFodder, "SAVARA (Episode 5)", nil,
		loc("SAVARA (Episode 5) - Green Vulcan Plane 1", 610),
		loc("SAVARA (Episode 5) - Huge Plane Formation", 611),
		loc("SAVARA (Episode 5) - Surrounded Vulcan Plane", 612),
		loc("SAVARA (Episode 5) - Unknown 1", 613),
		loc("SAVARA (Episode 5) - Unknown 2", 614),
		gate("SAVARA (Episode 5) @ Destroy Boss",
			loc("SAVARA (Episode 5) - Boss", 615),
			shop("Shop - SAVARA (Episode 5)", 1610),
		),
	),

	level(items.EpisodeHazudraFodder, "CORAL (Episode 5)", nil,
		gate("CORAL (Episode 5) @ Destroy Boss",
			loc("CORAL (Episode 5) - Boss", 620),
			shop("Shop - CORAL (Episode 5)", 1620),
		),
	),

	// Shop IDs 1630-1634 belong to CANYONRUN, an unused level. They
	// stay reserved in case it ever ships.

	level(items.EpisodeHazudraFodder, "STATION (Episode 5)", nil,
		loc("STATION (Episode 5) - Pulse-Turret 1", 640),
		loc("STATION (Episode 5) - Pulse-Turret 2", 641),
		loc("STATION (Episode 5) - Pulse-Turret 3", 642),
		loc("STATION (Episode 5) - Spike from Rear Corner 1", 643),
		loc("STATION (Episode 5) - Pulse-Turret 4", 644),
		loc("STATION (Episode 5) - Spike from Rear Corner 2", 645),
		loc("STATION (Episode 5) - Repulsor Crane", 646),
		loc("STATION (Episode 5) - Pulse-Turret 5", 647),
		loc("STATION (Episode 5) - Pulse-Turret 6", 648),
		gate("STATION (Episode 5) @ Pass Boss (can time out)",
			loc("STATION (Episode 5) - Boss", 649),
			shop("Shop - STATION (Episode 5)", 1640),
		),
	),

	level(items.EpisodeHazudraFodder, "FRUIT (Episode 5)",
		[]string{"W"},
		loc("FRUIT (Episode 5) - Apple UFO Wave", 650),
		gate("FRUIT (Episode 5) @ Destroy Boss",
			loc("FRUIT (Episode 5) - Boss", 651),
			shop("Shop - FRUIT (Episode 5)", 1650),
		),
	),
}
