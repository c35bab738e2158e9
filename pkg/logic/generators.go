package logic

import "github.com/redshift-games/tyrian-world/pkg/options"

// generatorPowerProvided is the power budget we assume a loadout can
// spend at each generator level, per logic difficulty. Index 0 is "no
// generator" and never occurs in practice. Beginner reserves headroom
// for shield recharge; expert and master assume running closer to the
// line.
var generatorPowerProvided = map[options.LogicDifficulty][7]int{
	options.LogicBeginner: {0, 9, 12, 16, 21, 25, 41},
	options.LogicStandard: {0, 10, 14, 19, 25, 30, 50},
	options.LogicExpert:   {0, 11, 16, 21, 28, 33, 55},
	options.LogicMaster:   {0, 12, 17, 23, 30, 35, 58},
	options.LogicNoLogic:  {99, 99, 99, 99, 99, 99, 99},
}

// generatorPowerRequired is each weapon's break-even power draw at
// power levels 1 through 11. For reference, the basic shield breaks
// even at 9 power.
var generatorPowerRequired = map[string][11]int{
	// Front weapons
	"Pulse-Cannon":                   {8, 6, 6, 6, 5, 5, 5, 5, 5, 5, 5},
	"Multi-Cannon (Front)":           {10, 10, 8, 8, 7, 7, 7, 7, 7, 7, 7},
	"Mega Cannon":                    {13, 13, 13, 13, 13, 13, 13, 13, 13, 13, 13},
	"Laser":                          {20, 20, 20, 20, 20, 20, 20, 20, 20, 20, 20},
	"Zica Laser":                     {9, 10, 10, 11, 11, 11, 11, 13, 13, 11, 11},
	"Protron Z":                      {14, 12, 14, 14, 12, 14, 14, 14, 14, 14, 14},
	"Vulcan Cannon (Front)":          {10, 10, 10, 10, 10, 10, 7, 7, 7, 10, 20},
	"Lightning Cannon":               {12, 12, 12, 12, 12, 12, 12, 12, 12, 23, 35},
	"Protron (Front)":                {10, 8, 8, 7, 7, 7, 7, 7, 7, 7, 7},
	"Missile Launcher":               {6, 5, 5, 4, 4, 4, 4, 4, 4, 4, 4},
	"Mega Pulse (Front)":             {15, 20, 12, 15, 20, 10, 10, 10, 10, 10, 10},
	"Heavy Missile Launcher (Front)": {10, 13, 18, 8, 10, 13, 18, 15, 13, 11, 9},
	"Banana Blast (Front)":           {3, 3, 4, 4, 4, 5, 4, 4, 3, 4, 5},
	"HotDog (Front)":                 {10, 13, 8, 10, 8, 10, 8, 7, 7, 6, 6},
	"Hyper Pulse":                    {17, 12, 17, 12, 17, 17, 12, 12, 10, 10, 12},
	"Shuriken Field":                 {14, 14, 14, 14, 14, 14, 14, 14, 14, 14, 14},
	"Poison Bomb":                    {9, 11, 13, 13, 17, 17, 20, 15, 20, 20, 20},
	"Protron Wave":                   {8, 5, 6, 6, 6, 6, 6, 6, 6, 6, 6},
	"Guided Bombs":                   {8, 10, 12, 10, 6, 6, 6, 8, 4, 4, 4},
	"The Orange Juicer":              {6, 7, 7, 7, 7, 5, 5, 6, 7, 6, 6},
	"NortShip Super Pulse":           {12, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12},
	"Atomic RailGun":                 {25, 25, 25, 25, 25, 25, 25, 25, 25, 25, 25},
	"Widget Beam":                    {13, 13, 10, 10, 10, 10, 10, 10, 10, 10, 10},
	"Sonic Impulse":                  {12, 17, 12, 12, 12, 17, 12, 12, 12, 12, 12},
	"RetroBall":                      {10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10},
	"Needle Laser":                   {6, 7, 7, 6, 6, 6, 6, 6, 6, 6, 6},
	"Pretzel Missile":                {8, 8, 8, 8, 8, 8, 8, 8, 8, 8, 8},
	"Dragon Frost":                   {6, 5, 4, 4, 4, 4, 3, 3, 3, 3, 2},
	"Dragon Flame":                   {8, 8, 10, 7, 10, 7, 8, 10, 5, 7, 4},
	// Rear weapons
	"Starburst":                      {7, 7, 10, 10, 7, 7, 10, 10, 7, 5, 7},
	"Multi-Cannon (Rear)":            {8, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6},
	"Sonic Wave":                     {7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7},
	"Protron (Rear)":                 {6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6},
	"Wild Ball":                      {7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7},
	"Vulcan Cannon (Rear)":           {7, 7, 5, 5, 7, 7, 10, 7, 7, 7, 10},
	"Fireball":                       {4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4},
	"Heavy Missile Launcher (Rear)":  {10, 13, 10, 11, 10, 13, 11, 13, 15, 13, 15},
	"Mega Pulse (Rear)":              {30, 22, 17, 15, 13, 13, 13, 13, 13, 13, 13},
	"Banana Blast (Rear)":            {4, 4, 4, 4, 4, 1, 1, 1, 1, 1, 1},
	"HotDog (Rear)":                  {13, 10, 10, 10, 10, 8, 8, 8, 7, 6, 6},
	"Guided Micro Bombs":             {4, 5, 5, 5, 5, 5, 5, 6, 6, 6, 6},
	"Heavy Guided Bombs":             {4, 4, 4, 4, 4, 4, 4, 4, 4, 5, 4},
	"Scatter Wave":                   {8, 8, 7, 7, 7, 7, 7, 7, 7, 7, 7},
	"NortShip Spreader":              {12, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12},
	"NortShip Spreader B":            {15, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10},
	"People Pretzels":                {6, 7, 8, 10, 10, 7, 5, 4, 4, 3, 3},
}

// Named generator tiers, best first. Checked independently of the
// progressive item so that collection order cannot change the result.
var namedGenerators = []struct {
	name  string
	level int
}{
	{"Gravitron Pulse-Wave", 6},
	{"Advanced MicroFusion", 5},
	{"Standard MicroFusion", 4},
	{"Gencore Custom MR-12", 3},
	{"Advanced MR-12", 2},
}

// GeneratorLevel derives the best generator tier an inventory holds.
// Every ship has at least the starting tier 1 generator.
func GeneratorLevel(inv InventoryView) int {
	for _, g := range namedGenerators {
		if inv.Has(g.name) {
			return g.level
		}
	}
	return min(6, 1+inv.Count("Progressive Generator"))
}
