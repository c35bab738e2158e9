package items

import "fmt"

func level(id int, ep Episode, name string) Def {
	return Def{Name: name, LocalID: id, Count: 1, Class: ClassProgression, Episode: ep}
}

func credit(id, value int) Def {
	// Credit cache counts are decided during junk fill, not here.
	return Def{Name: fmt.Sprintf("%d Credits", value), LocalID: id, Value: value}
}

// Levels in episode order. Completing a level's "Open" entrance requires
// holding the matching level item.
var Levels = []Def{
	level(0, EpisodeEscape, "TYRIAN (Episode 1)"), // starting level unless overridden
	level(1, EpisodeEscape, "BUBBLES (Episode 1)"),
	level(2, EpisodeEscape, "HOLES (Episode 1)"),
	level(3, EpisodeEscape, "SOH JIN (Episode 1)"),
	level(4, EpisodeEscape, "ASTEROID1 (Episode 1)"),
	level(5, EpisodeEscape, "ASTEROID2 (Episode 1)"),
	level(6, EpisodeEscape, "ASTEROID? (Episode 1)"),
	level(7, EpisodeEscape, "MINEMAZE (Episode 1)"),
	level(8, EpisodeEscape, "WINDY (Episode 1)"),
	level(9, EpisodeEscape, "SAVARA (Episode 1)"),
	level(10, EpisodeEscape, "SAVARA II (Episode 1)"), // Savara Hard
	level(11, EpisodeEscape, "BONUS (Episode 1)"),
	level(12, EpisodeEscape, "MINES (Episode 1)"),
	level(13, EpisodeEscape, "DELIANI (Episode 1)"),
	level(14, EpisodeEscape, "SAVARA V (Episode 1)"),
	level(15, EpisodeEscape, "ASSASSIN (Episode 1)"), // goal

	level(100, EpisodeTreachery, "TORM (Episode 2)"),
	level(101, EpisodeTreachery, "GYGES (Episode 2)"),
	level(102, EpisodeTreachery, "BONUS 1 (Episode 2)"),
	level(103, EpisodeTreachery, "ASTCITY (Episode 2)"),
	level(104, EpisodeTreachery, "BONUS 2 (Episode 2)"),
	level(105, EpisodeTreachery, "GEM WAR (Episode 2)"),
	level(106, EpisodeTreachery, "MARKERS (Episode 2)"),
	level(107, EpisodeTreachery, "MISTAKES (Episode 2)"),
	level(108, EpisodeTreachery, "SOH JIN (Episode 2)"),
	level(109, EpisodeTreachery, "BOTANY A (Episode 2)"),
	level(110, EpisodeTreachery, "BOTANY B (Episode 2)"),
	level(111, EpisodeTreachery, "GRYPHON (Episode 2)"), // goal

	level(200, EpisodeMissionSuicide, "GAUNTLET (Episode 3)"),
	level(201, EpisodeMissionSuicide, "IXMUCANE (Episode 3)"),
	level(202, EpisodeMissionSuicide, "BONUS (Episode 3)"),
	level(203, EpisodeMissionSuicide, "STARGATE (Episode 3)"),
	level(204, EpisodeMissionSuicide, "AST. CITY (Episode 3)"),
	level(205, EpisodeMissionSuicide, "SAWBLADES (Episode 3)"),
	level(206, EpisodeMissionSuicide, "CAMANIS (Episode 3)"),
	level(207, EpisodeMissionSuicide, "MACES (Episode 3)"),
	level(208, EpisodeMissionSuicide, "TYRIAN X (Episode 3)"),
	level(209, EpisodeMissionSuicide, "SAVARA Y (Episode 3)"),
	level(210, EpisodeMissionSuicide, "NEW DELI (Episode 3)"),
	level(211, EpisodeMissionSuicide, "FLEET (Episode 3)"), // goal

	level(300, EpisodeAnEndToFate, "SURFACE (Episode 4)"),
	level(301, EpisodeAnEndToFate, "WINDY (Episode 4)"),
	level(302, EpisodeAnEndToFate, "LAVA RUN (Episode 4)"),
	level(303, EpisodeAnEndToFate, "CORE (Episode 4)"),
	level(304, EpisodeAnEndToFate, "LAVA EXIT (Episode 4)"),
	level(305, EpisodeAnEndToFate, "DESERTRUN (Episode 4)"),
	level(306, EpisodeAnEndToFate, "SIDE EXIT (Episode 4)"),
	level(307, EpisodeAnEndToFate, "?TUNNEL? (Episode 4)"),
	level(308, EpisodeAnEndToFate, "ICE EXIT (Episode 4)"),
	level(309, EpisodeAnEndToFate, "ICESECRET (Episode 4)"),
	level(310, EpisodeAnEndToFate, "HARVEST (Episode 4)"),
	level(311, EpisodeAnEndToFate, "UNDERDELI (Episode 4)"),
	level(312, EpisodeAnEndToFate, "APPROACH (Episode 4)"),
	level(313, EpisodeAnEndToFate, "SAVARA IV (Episode 4)"),
	level(314, EpisodeAnEndToFate, "DREAD-NOT (Episode 4)"),
	level(315, EpisodeAnEndToFate, "EYESPY (Episode 4)"),
	level(316, EpisodeAnEndToFate, "BRAINIAC (Episode 4)"),
	level(317, EpisodeAnEndToFate, "NOSE DRIP (Episode 4)"), // goal

	// Episode 5 requires Tyrian 2000; episode selection enforces that.
	level(400, EpisodeHazudraFodder, "ASTEROIDS (Episode 5)"),
	level(401, EpisodeHazudraFodder, "AST ROCK (Episode 5)"),
	level(402, EpisodeHazudraFodder, "MINERS (Episode 5)"),
	level(403, EpisodeHazudraFodder, "SAVARA (Episode 5)"),
	level(404, EpisodeHazudraFodder, "CORAL (Episode 5)"),
	level(405, EpisodeHazudraFodder, "STATION (Episode 5)"),
	level(406, EpisodeHazudraFodder, "FRUIT (Episode 5)"), // goal
}

// FrontPorts are main weapons. One copy of each unless noted.
var FrontPorts = []Def{
	{Name: "Pulse-Cannon", LocalID: 500, Count: 1}, // default starting weapon
	{Name: "Multi-Cannon (Front)", LocalID: 501, Count: 1},
	{Name: "Mega Cannon", LocalID: 502, Count: 1, Tags: TagPierces},
	{Name: "Laser", LocalID: 503, Count: 1, Tags: TagHighDPS, Class: ClassUseful},
	{Name: "Zica Laser", LocalID: 504, Count: 1, Tags: TagHighDPS, Class: ClassUseful},
	{Name: "Protron Z", LocalID: 505, Count: 1, Tags: TagHighDPS},
	{Name: "Vulcan Cannon (Front)", LocalID: 506, Count: 1},
	{Name: "Lightning Cannon", LocalID: 507, Count: 1, Tags: TagHighDPS},
	{Name: "Protron (Front)", LocalID: 508, Count: 1},
	{Name: "Missile Launcher", LocalID: 509, Count: 1},
	{Name: "Mega Pulse (Front)", LocalID: 510, Count: 1, Tags: TagHighDPS},
	{Name: "Heavy Missile Launcher (Front)", LocalID: 511, Count: 1, Tags: TagHighDPS},
	{Name: "Banana Blast (Front)", LocalID: 512, Count: 1},
	{Name: "HotDog (Front)", LocalID: 513, Count: 1},
	{Name: "Hyper Pulse", LocalID: 514, Count: 1},
	{Name: "Guided Bombs", LocalID: 515, Count: 1},
	{Name: "Shuriken Field", LocalID: 516, Count: 1, Tags: TagHighDPS},
	{Name: "Poison Bomb", LocalID: 517, Count: 1, Tags: TagHighDPS},
	{Name: "Protron Wave", LocalID: 518, Count: 1},
	{Name: "The Orange Juicer", LocalID: 519, Count: 1}, // max DPS requires suicidal flying
	{Name: "NortShip Super Pulse", LocalID: 520, Count: 1, Tags: TagHighDPS},
	{Name: "Atomic RailGun", LocalID: 521, Count: 1, Tags: TagHighDPS, Class: ClassUseful},
	{Name: "Widget Beam", LocalID: 522, Count: 1},
	{Name: "Sonic Impulse", LocalID: 523, Count: 1, Tags: TagPierces},
	{Name: "RetroBall", LocalID: 524, Count: 1},
	{Name: "Needle Laser", LocalID: 525, Count: 1, Tags: TagPierces, Tyrian2000: true},
	{Name: "Pretzel Missile", LocalID: 526, Count: 1, Tags: TagHighDPS, Tyrian2000: true},
	{Name: "Dragon Frost", LocalID: 527, Count: 1, Tyrian2000: true},
	{Name: "Dragon Flame", LocalID: 528, Count: 1, Tyrian2000: true}, // pierces at power 9+ only
}

// RearPorts are secondary weapons.
var RearPorts = []Def{
	{Name: "Starburst", LocalID: 600, Count: 1, Tags: TagSideways},
	{Name: "Multi-Cannon (Rear)", LocalID: 601, Count: 1, Tags: TagSideways},
	{Name: "Sonic Wave", LocalID: 602, Count: 1, Tags: TagSideways},
	{Name: "Protron (Rear)", LocalID: 603, Count: 1, Tags: TagSideways},
	{Name: "Wild Ball", LocalID: 604, Count: 1},
	{Name: "Vulcan Cannon (Rear)", LocalID: 605, Count: 1},
	{Name: "Fireball", LocalID: 606, Count: 1},
	{Name: "Heavy Missile Launcher (Rear)", LocalID: 607, Count: 1},
	{Name: "Mega Pulse (Rear)", LocalID: 608, Count: 1, Tags: TagSideways},
	{Name: "Banana Blast (Rear)", LocalID: 609, Count: 1},
	{Name: "HotDog (Rear)", LocalID: 610, Count: 1},
	{Name: "Guided Micro Bombs", LocalID: 611, Count: 1},
	{Name: "Heavy Guided Bombs", LocalID: 612, Count: 1},
	{Name: "Scatter Wave", LocalID: 613, Count: 1, Tags: TagSideways},
	{Name: "NortShip Spreader", LocalID: 614, Count: 1},
	{Name: "NortShip Spreader B", LocalID: 615, Count: 1, Tags: TagPierces}, // pierces, but awkward to use
	{Name: "People Pretzels", LocalID: 616, Count: 1, Tyrian2000: true},
}

// SpecialWeapons only enter the pool when specials are randomized as items.
var SpecialWeapons = []Def{
	{Name: "Repulsor", LocalID: 700, Count: 1, Class: ClassProgression}, // required by some checks
	{Name: "Pearl Wind", LocalID: 701, Count: 1},
	{Name: "Soul of Zinglon", LocalID: 702, Count: 1}, // pierces, but deals no real damage
	{Name: "Attractor", LocalID: 703, Count: 1},
	{Name: "Ice Beam", LocalID: 704, Count: 1},
	{Name: "Flare", LocalID: 705, Count: 1, Tags: TagFullScreen},
	{Name: "Blade Field", LocalID: 706, Count: 1},
	{Name: "SandStorm", LocalID: 707, Count: 1, Tags: TagFullScreen},
	{Name: "MineField", LocalID: 708, Count: 1, Tags: TagFullScreen},
	{Name: "Dual Vulcan", LocalID: 709, Count: 1},
	{Name: "Banana Bomb", LocalID: 710, Count: 1, Tags: TagHighDPS},
	{Name: "Protron Dispersal", LocalID: 711, Count: 1},
	{Name: "Astral Zone", LocalID: 712, Count: 1, Tags: TagFullScreen},
	{Name: "Xega Ball", LocalID: 713, Count: 1, Tags: TagDefensive},
	{Name: "MegaLaser Dual", LocalID: 714, Count: 1, Tags: TagHighDPS},
	{Name: "Orange Shield", LocalID: 715, Count: 1},
	{Name: "Pulse Blast", LocalID: 716, Count: 1},
	{Name: "MegaLaser", LocalID: 717, Count: 1, Tags: TagPierces},
	{Name: "Missile Pod", LocalID: 718, Count: 1},
	{Name: "Invulnerability", LocalID: 719, Count: 1, Class: ClassProgression},
	{Name: "Lightning Zone", LocalID: 720, Count: 1},
	{Name: "SDF Main Gun", LocalID: 721, Count: 1, Tags: TagPierces | TagHighDPS, Class: ClassUseful},
	{Name: "Protron Field", LocalID: 722, Count: 1, Tags: TagHighDPS},
	{Name: "Super Pretzel", LocalID: 723, Count: 1, Tags: TagPierces, Tyrian2000: true},
	{Name: "Dragon Lightning", LocalID: 724, Count: 1, Tyrian2000: true},
}

// Sidekicks come in pairs unless the kick only mounts on the right side.
var Sidekicks = []Def{
	{Name: "Single Shot Option", LocalID: 800, Count: 2},
	{Name: "Dual Shot Option", LocalID: 801, Count: 2},
	{Name: "Charge Cannon", LocalID: 802, Count: 2},
	{Name: "Vulcan Shot Option", LocalID: 803, Count: 2},
	{Name: "Wobbley", LocalID: 804, Count: 2},
	{Name: "MegaMissile", LocalID: 805, Count: 2, Tags: TagHasAmmo | TagHighDPS, Class: ClassUseful},
	{Name: "Atom Bombs", LocalID: 806, Count: 2, Tags: TagHasAmmo | TagHighDPS, Class: ClassUseful},
	{Name: "Phoenix Device", LocalID: 807, Count: 2, Tags: TagHasAmmo | TagHighDPS | TagDefensive, Class: ClassUseful},
	// Too strong doubled up, so only one enters the pool.
	{Name: "Plasma Storm", LocalID: 808, Count: 1, Tags: TagHasAmmo | TagHighDPS, Class: ClassUseful},
	{Name: "Mini-Missile", LocalID: 809, Count: 2, Tags: TagHasAmmo},
	{Name: "Buster Rocket", LocalID: 810, Count: 2, Tags: TagHasAmmo},
	{Name: "Zica Supercharger", LocalID: 811, Count: 2},
	{Name: "MicroBomb", LocalID: 812, Count: 2, Tags: TagHasAmmo},
	{Name: "8-Way MicroBomb", LocalID: 813, Count: 2, Tags: TagHasAmmo | TagDefensive},
	{Name: "Post-It Mine", LocalID: 814, Count: 2, Tags: TagHasAmmo},
	{Name: "Mint-O-Ship", LocalID: 815, Count: 2},
	{Name: "Zica Flamethrower", LocalID: 816, Count: 2},
	{Name: "Side Ship", LocalID: 817, Count: 2, Tags: TagHasAmmo},
	{Name: "Companion Ship Warfly", LocalID: 818, Count: 2},
	{Name: "MicroSol FrontBlaster", LocalID: 819, Count: 1, Tags: TagRightOnly},
	{Name: "Companion Ship Gerund", LocalID: 820, Count: 2},
	{Name: "BattleShip-Class Firebomb", LocalID: 821, Count: 1, Tags: TagRightOnly | TagHighDPS | TagDefensive},
	{Name: "Protron Cannon Indigo", LocalID: 822, Count: 1, Tags: TagRightOnly},
	{Name: "Companion Ship Quicksilver", LocalID: 823, Count: 2},
	{Name: "Protron Cannon Tangerine", LocalID: 824, Count: 1, Tags: TagRightOnly | TagDefensive},
	{Name: "MicroSol FrontBlaster II", LocalID: 825, Count: 1, Tags: TagRightOnly},
	{Name: "Beno Wallop Beam", LocalID: 826, Count: 1, Tags: TagRightOnly | TagHighDPS},
	{Name: "Beno Protron System -B-", LocalID: 827, Count: 1, Tags: TagRightOnly | TagDefensive},
	{Name: "Tropical Cherry Companion", LocalID: 828, Count: 2},
	{Name: "Satellite Marlo", LocalID: 829, Count: 2},
	{Name: "Bubble Gum-Gun", LocalID: 830, Count: 2, Tags: TagHasAmmo, Tyrian2000: true},
	{Name: "Flying Punch", LocalID: 831, Count: 2, Tags: TagHasAmmo | TagPierces, Tyrian2000: true},
}

// Split holds the five fixed generator tiers, used when progressive
// generator items are turned off.
var Split = []Def{
	{Name: "Advanced MR-12", LocalID: 900, Count: 1, Class: ClassProgression},
	{Name: "Gencore Custom MR-12", LocalID: 901, Count: 1, Class: ClassProgression},
	{Name: "Standard MicroFusion", LocalID: 902, Count: 1, Class: ClassProgression},
	{Name: "Advanced MicroFusion", LocalID: 903, Count: 1, Class: ClassProgression},
	{Name: "Gravitron Pulse-Wave", LocalID: 904, Count: 1, Class: ClassProgression},
}

// Progressive replaces Split when progressive generator items are on.
var Progressive = []Def{
	{Name: "Progressive Generator", LocalID: 905, Count: 5, Class: ClassProgression},
}

// Others are upgrades and credit caches. Credit counts are decided during
// junk fill.
var Others = []Def{
	{Name: "Maximum Power Up", LocalID: 906, Count: 10, Class: ClassProgression}, // starts at 1, caps at 11
	{Name: "Armor Up", LocalID: 907, Count: 9, Class: ClassProgression},          // starts at 5, caps at 14
	{Name: "Shield Up", LocalID: 908, Count: 9, Class: ClassUseful},              // starts at 5, caps at 14
	{Name: "Solar Shields", LocalID: 909, Count: 1, Class: ClassUseful},
	{Name: "SuperBomb", LocalID: 910, Count: 1}, // junk fill may add more

	credit(980, 50),
	credit(981, 75),
	credit(982, 100),
	credit(983, 150),
	credit(984, 200),
	credit(985, 300),
	credit(986, 375),
	credit(987, 500),
	credit(988, 750),
	credit(989, 800),
	credit(990, 1000),
	credit(991, 2000),
	credit(992, 5000),
	credit(993, 7500),
	credit(994, 10000),
	credit(995, 20000),
	credit(996, 40000),
	credit(997, 75000),
	credit(998, 100000),
	credit(999, 1000000), // emergencies only
}

// DataCubes join the pool when boss weaknesses are enabled for an episode.
var DataCubes = []Def{
	{Name: "Data Cube (Episode 1)", LocalID: 920, Class: ClassProgression},
	{Name: "Data Cube (Episode 2)", LocalID: 921, Class: ClassProgression},
	{Name: "Data Cube (Episode 3)", LocalID: 922, Class: ClassProgression},
	{Name: "Data Cube (Episode 4)", LocalID: 923, Class: ClassProgression},
	{Name: "Data Cube (Episode 5)", LocalID: 924, Class: ClassProgression},
}

// CreditValues lists every credit cache denomination in ascending order.
var CreditValues = func() []int {
	var vals []int
	for _, d := range Others {
		if d.Value > 0 {
			vals = append(vals, d.Value)
		}
	}
	return vals
}()

// CreditName returns the catalog name of the credit cache worth value.
func CreditName(value int) string {
	return fmt.Sprintf("%d Credits", value)
}
