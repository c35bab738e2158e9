package logic

import "github.com/redshift-games/tyrian-world/pkg/options"

// Measured weapon output at power levels 1 through 11, in tenths of a
// DPS point. Tables are layered: each logic difficulty inherits every
// row from the tiers below it and overrides the rows listed here.
// Weapons absent from all tiers of a table contribute nothing in that
// profile.

// Damage focused on a single direct target. The beginner tier assumes a
// reasonable distance kept from the enemy; expert assumes getting up
// close so more bullets connect; master assumes abuse of mechanics like
// mode-switching to reset weapon state.
var baseActive = map[options.LogicDifficulty]map[string][11]int{
	options.LogicBeginner: {
		"Pulse-Cannon":                   {118, 140, 187, 187, 195, 235, 235, 273, 273, 273, 321},
		"Multi-Cannon (Front)":           {118, 0, 47, 93, 38, 78, 38, 78, 38, 78, 78},
		"Mega Cannon":                    {53, 53, 100, 53, 100, 100, 100, 102, 211, 211, 212},
		"Laser":                          {78, 155, 233, 235, 350, 465, 468, 583, 816, 933, 1400},
		"Zica Laser":                     {163, 234, 288, 382, 490, 520, 171, 533, 733, 1100, 1275},
		"Protron Z":                      {140, 190, 140, 233, 235, 373, 467, 607, 373, 373, 373},
		"Vulcan Cannon (Front)":          {117, 88, 58, 98, 57, 57, 78, 130, 78, 117, 233},
		"Lightning Cannon":               {115, 155, 195, 195, 155, 155, 230, 230, 230, 467, 933},
		"Protron (Front)":                {93, 78, 78, 33, 67, 133, 67, 133, 133, 100, 233},
		"Missile Launcher":               {51, 51, 84, 117, 149, 141, 141, 166, 300, 320, 150},
		"Mega Pulse (Front)":             {120, 156, 187, 232, 310, 195, 310, 230, 230, 310, 548},
		"Heavy Missile Launcher (Front)": {104, 133, 187, 87, 104, 333, 467, 228, 400, 460, 373},
		"Banana Blast (Front)":           {78, 78, 93, 62, 140, 56, 93, 140, 158, 187, 235},
		"HotDog (Front)":                 {116, 156, 187, 234, 280, 352, 280, 233, 238, 200, 267},
		"Hyper Pulse":                    {78, 58, 78, 118, 154, 233, 175, 233, 140, 187, 175},
		"Shuriken Field":                 {93, 93, 93, 93, 93, 93, 93, 93, 187, 187, 373},
		"Poison Bomb":                    {142, 172, 206, 206, 267, 267, 236, 374, 380, 580, 905},
		"Protron Wave":                   {47, 59, 67, 67, 67, 67, 133, 133, 133, 133, 133},
		"Guided Bombs":                   {107, 67, 53, 133, 133, 110, 78, 78, 150, 100, 150},
		"The Orange Juicer":              {0, 114, 114, 228, 228, 90, 90, 90, 90, 90, 90},
		"NortShip Super Pulse":           {59, 116, 116, 176, 232, 280, 86, 86, 289, 145, 760},
		"Atomic RailGun":                 {175, 350, 525, 700, 815, 820, 936, 990, 1050, 1400, 1400},
		"Widget Beam":                    {78, 153, 117, 174, 117, 174, 118, 118, 118, 118, 175},
		"Sonic Impulse":                  {116, 76, 116, 175, 232, 102, 116, 115, 118, 116, 118},
		"RetroBall":                      {93, 47, 47, 93, 47, 47, 93, 93, 93, 93, 93},
		"Needle Laser":                   {57, 100, 67, 105, 117, 117, 175, 205, 294, 175, 234},
		"Pretzel Missile":                {78, 117, 156, 117, 117, 117, 237, 237, 312, 351, 351},
		"Dragon Frost":                   {88, 0, 58, 92, 50, 75, 75, 75, 97, 95, 93},
		"Dragon Flame":                   {77, 77, 93, 100, 93, 167, 198, 233, 364, 467, 228},

		"Sonic Wave":          {67, 100, 67, 67, 67, 200, 200, 200, 200, 200, 200},
		"Wild Ball":           {50, 50, 50, 75, 75, 75, 0, 50, 0, 182, 182},
		"Fireball":            {30, 60, 0, 0, 40, 80, 67, 80, 152, 152, 152},
		"Mega Pulse (Rear)":   {0, 0, 0, 0, 0, 0, 67, 0, 0, 0, 400},
		"Banana Blast (Rear)": {0, 0, 0, 0, 0, 350, 350, 250, 250, 350, 450},
		"HotDog (Rear)":       {0, 0, 0, 0, 0, 0, 0, 0, 0, 67, 0},
		"Scatter Wave":        {0, 0, 0, 38, 38, 19, 0, 38, 75, 0, 0},
		"NortShip Spreader B": {0, 0, 0, 0, 0, 0, 0, 23, 0, 23, 23},
		"People Pretzels":     {0, 35, 25, 18, 18, 25, 32, 34, 55, 45, 38},
	},
	options.LogicExpert: {
		"Mega Cannon":           {78, 152, 141, 78, 152, 160, 160, 160, 260, 260, 260},
		"Zica Laser":            {163, 234, 288, 382, 490, 520, 564, 967, 1067, 1100, 1275},
		"Protron Z":             {140, 190, 140, 233, 235, 373, 467, 607, 513, 607, 373},
		"Vulcan Cannon (Front)": {117, 117, 117, 117, 102, 102, 156, 156, 137, 200, 400},
		"Protron (Front)":       {93, 115, 115, 100, 133, 133, 200, 333, 333, 267, 433},
		"Banana Blast (Front)":  {78, 156, 140, 93, 280, 118, 187, 280, 312, 373, 470},
		"Hyper Pulse":           {78, 116, 156, 175, 235, 311, 292, 350, 233, 280, 290},
		"Protron Wave":          {47, 59, 67, 67, 67, 67, 133, 133, 133, 200, 267},
		"Guided Bombs":          {107, 133, 104, 267, 182, 130, 110, 110, 173, 120, 193},
		"The Orange Juicer":     {100, 114, 114, 228, 228, 170, 170, 200, 230, 300, 400},
		"Widget Beam":           {78, 153, 117, 174, 117, 174, 174, 118, 118, 174, 175},
		"Sonic Impulse":         {116, 105, 292, 175, 232, 218, 231, 233, 233, 300, 300},
		"RetroBall":             {93, 93, 93, 93, 93, 93, 140, 140, 187, 187, 187},
		"Pretzel Missile":       {78, 117, 156, 117, 158, 192, 237, 275, 312, 351, 351},
	},
	options.LogicMaster: {
		"Vulcan Cannon (Front)": {117, 117, 117, 117, 117, 117, 156, 156, 156, 233, 467},
		"Fireball":              {60, 60, 0, 0, 80, 80, 93, 116, 152, 152, 152},
		"People Pretzels":       {0, 45, 40, 25, 25, 35, 32, 34, 55, 45, 38},
	},
}

// Damage aimed away from the targeted enemy, a measure of how
// defensive a build stays while working on something else.
var basePassive = map[options.LogicDifficulty]map[string][11]int{
	options.LogicBeginner: {
		"Pulse-Cannon":                   {0, 0, 0, 0, 0, 0, 0, 0, 78, 155, 155},
		"Multi-Cannon (Front)":           {0, 118, 93, 93, 155, 155, 240, 240, 315, 315, 389},
		"Mega Cannon":                    {0, 60, 0, 90, 100, 0, 130, 102, 0, 130, 204},
		"Zica Laser":                     {0, 0, 0, 0, 0, 0, 397, 434, 333, 0, 0},
		"Protron Z":                      {0, 0, 0, 0, 0, 0, 0, 0, 280, 467, 467},
		"Vulcan Cannon (Front)":          {0, 33, 33, 20, 58, 28, 40, 28, 40, 58, 116},
		"Lightning Cannon":               {0, 0, 0, 0, 151, 302, 151, 302, 302, 0, 0},
		"Protron (Front)":                {0, 38, 78, 133, 133, 67, 200, 266, 300, 433, 400},
		"Missile Launcher":               {0, 45, 45, 45, 0, 33, 73, 73, 0, 73, 90},
		"Mega Pulse (Front)":             {0, 0, 0, 0, 0, 72, 0, 0, 118, 312, 312},
		"Heavy Missile Launcher (Front)": {0, 0, 0, 87, 104, 0, 0, 186, 333, 180, 433},
		"Banana Blast (Front)":           {0, 78, 93, 127, 140, 175, 280, 418, 476, 560, 696},
		"HotDog (Front)":                 {0, 0, 0, 0, 0, 0, 186, 233, 238, 267, 267},
		"Hyper Pulse":                    {0, 58, 78, 58, 78, 78, 117, 117, 233, 233, 349},
		"Shuriken Field":                 {0, 93, 186, 280, 373, 467, 560, 467, 467, 560, 373},
		"Poison Bomb":                    {0, 0, 0, 213, 267, 533, 311, 478, 621, 621, 621},
		"Protron Wave":                   {0, 0, 0, 67, 67, 133, 67, 133, 133, 267, 333},
		"Guided Bombs":                   {0, 67, 90, 133, 160, 80, 123, 103, 123, 163, 163},
		"The Orange Juicer":              {0, 57, 57, 114, 114, 90, 90, 200, 240, 400, 500},
		"NortShip Super Pulse":           {59, 59, 116, 116, 174, 175, 58, 88, 118, 337, 235},
		"Widget Beam":                    {0, 0, 0, 0, 58, 0, 58, 58, 116, 170, 175},
		"Sonic Impulse":                  {0, 53, 106, 120, 160, 112, 159, 212, 212, 450, 500},
		"RetroBall":                      {0, 47, 93, 93, 140, 187, 187, 93, 93, 187, 187},
		"Needle Laser":                   {0, 0, 0, 0, 0, 0, 0, 0, 0, 58, 115},
		"Pretzel Missile":                {0, 0, 0, 0, 38, 76, 0, 76, 76, 155, 231},
		"Dragon Frost":                   {0, 140, 115, 112, 167, 158, 231, 275, 130, 190, 300},
		"Dragon Flame":                   {0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 228},

		"Starburst":                     {153, 120, 227, 180, 313, 238, 375, 348, 471, 698, 933},
		"Multi-Cannon (Rear)":           {46, 67, 133, 133, 200, 200, 267, 333, 467, 533, 600},
		"Sonic Wave":                    {67, 67, 130, 133, 175, 300, 430, 400, 400, 400, 580},
		"Protron (Rear)":                {58, 116, 117, 173, 228, 284, 343, 409, 463, 409, 463},
		"Wild Ball":                     {0, 49, 99, 77, 154, 209, 255, 314, 311, 182, 286},
		"Vulcan Cannon (Rear)":          {78, 78, 115, 115, 154, 154, 233, 235, 312, 312, 461},
		"Fireball":                      {30, 60, 192, 272, 40, 80, 118, 157, 152, 311, 397},
		"Heavy Missile Launcher (Rear)": {81, 100, 152, 181, 305, 391, 507, 610, 1027, 600, 795},
		"Mega Pulse (Rear)":             {156, 235, 285, 238, 400, 467, 467, 400, 380, 867, 867},
		"Banana Blast (Rear)":           {187, 187, 187, 187, 187, 0, 133, 0, 96, 133, 200},
		"HotDog (Rear)":                 {156, 231, 231, 231, 231, 187, 187, 187, 155, 133, 267},
		"Guided Micro Bombs":            {26, 40, 86, 86, 148, 173, 300, 240, 250, 260, 280},
		"Heavy Guided Bombs":            {46, 46, 91, 140, 173, 173, 225, 200, 200, 280, 360},
		"Scatter Wave":                  {93, 93, 155, 78, 155, 234, 308, 308, 308, 465, 465},
		"NortShip Spreader":             {117, 117, 234, 351, 468, 468, 585, 700, 1050, 1284, 1284},
		"NortShip Spreader B":           {178, 246, 246, 246, 246, 246, 246, 246, 500, 500, 500},
		"People Pretzels":               {85, 65, 95, 80, 67, 102, 118, 131, 220, 215, 233},
	},
}

// Damage delivered at or near a 90 degree angle.
var baseSideways = map[options.LogicDifficulty]map[string][11]int{
	options.LogicBeginner: {
		"Protron Wave":      {0, 0, 0, 33, 33, 67, 33, 67, 67, 67, 33},
		"Guided Bombs":      {0, 0, 27, 0, 51, 40, 21, 26, 33, 67, 67},
		"The Orange Juicer": {100, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},

		"Starburst":           {77, 77, 118, 118, 158, 158, 233, 233, 312, 356, 468},
		"Multi-Cannon (Rear)": {23, 33, 67, 67, 100, 100, 133, 167, 233, 267, 300},
		"Sonic Wave":          {33, 33, 33, 67, 67, 133, 200, 200, 200, 200, 200},
		"Protron (Rear)":      {29, 58, 58, 86, 114, 142, 171, 204, 241, 204, 241},
		"Mega Pulse (Rear)":   {40, 58, 93, 78, 133, 167, 167, 133, 100, 333, 333},
		"Banana Blast (Rear)": {93, 93, 93, 93, 93, 0, 67, 0, 40, 0, 0},
		"Guided Micro Bombs":  {0, 0, 0, 0, 0, 45, 86, 93, 186, 163, 186},
		"Heavy Guided Bombs":  {0, 11, 23, 58, 58, 58, 82, 58, 82, 133, 266},
		"Scatter Wave":        {47, 47, 78, 39, 78, 117, 154, 154, 154, 233, 233},
		"NortShip Spreader":   {0, 0, 58, 117, 117, 0, 58, 175, 350, 0, 0},
		"People Pretzels":     {0, 0, 25, 20, 18, 27, 30, 33, 55, 48, 100},
	},
	options.LogicExpert: {
		"The Orange Juicer": {100, 0, 0, 0, 0, 0, 140, 140, 140, 280, 280},
	},
	options.LogicMaster: {
		"Starburst":          {100, 100, 143, 143, 158, 158, 233, 233, 312, 356, 468},
		"Mega Pulse (Rear)":  {54, 58, 93, 78, 133, 167, 167, 133, 100, 333, 333},
		"Heavy Guided Bombs": {0, 23, 23, 58, 58, 58, 82, 58, 82, 133, 266},
		"People Pretzels":    {0, 0, 117, 136, 136, 100, 78, 65, 55, 48, 100},
	},
}

// Like active, but assumes the projectile has already passed through a
// solid object.
var basePiercing = map[options.LogicDifficulty]map[string][11]int{
	options.LogicBeginner: {
		"Mega Cannon":   {53, 53, 100, 53, 100, 100, 100, 102, 211, 211, 212},
		"Sonic Impulse": {116, 76, 116, 175, 232, 102, 116, 115, 118, 116, 118},
		"Needle Laser":  {57, 100, 67, 105, 117, 117, 175, 205, 294, 175, 234},
		"Dragon Frost":  {0, 0, 0, 0, 0, 0, 0, 0, 97, 95, 93},
		"Dragon Flame":  {0, 0, 0, 0, 0, 0, 0, 0, 364, 467, 228},
	},
}

// Candidate orderings. Searching strong contenders first lets the
// damage check bail out early on the common case.

// Front weapons able to pierce. Rear weapons cannot help with a
// piercing requirement, so this list is all that gets searched.
var frontTablePiercing = []string{
	"Needle Laser", "Sonic Impulse", "Mega Cannon", "Dragon Frost", "Dragon Flame",
}

// Front weapon order when active damage is required.
var frontTableActive = []string{
	"Atomic RailGun", "Zica Laser", "Laser", "Lightning Cannon", "Poison Bomb", "Mega Pulse (Front)", "Protron Z",
	"NortShip Super Pulse", "Pulse-Cannon", "Heavy Missile Launcher (Front)", "HotDog (Front)", "Hyper Pulse",
	"Guided Bombs", "The Orange Juicer", "Dragon Flame", "Pretzel Missile", "Vulcan Cannon (Front)",
	"Missile Launcher", "Needle Laser", "Mega Cannon", "Shuriken Field", "Widget Beam", "Banana Blast (Front)",
	"Protron (Front)", "Multi-Cannon (Front)", "Sonic Impulse", "Dragon Frost", "RetroBall", "Protron Wave",
}

// Front weapon order for passive or sideways only requirements.
var frontTableOther = []string{
	"Shuriken Field", "NortShip Super Pulse", "Banana Blast (Front)", "Multi-Cannon (Front)", "Dragon Frost",
	"Poison Bomb", "Sonic Impulse", "Protron (Front)", "The Orange Juicer", "Hyper Pulse", "Guided Bombs",
	"Lightning Cannon", "Heavy Missile Launcher (Front)", "RetroBall", "HotDog (Front)", "Mega Cannon",
	"Mega Pulse (Front)", "Widget Beam", "Missile Launcher", "Protron Wave", "Pretzel Missile", "Protron Z",
	"Vulcan Cannon (Front)", "Zica Laser", "Pulse-Cannon", "Needle Laser", "Dragon Flame", "Laser",
}

// Rear weapon order when sideways damage is required; weapons that give
// none are omitted outright.
var rearTableSideways = []string{
	"Starburst", "Scatter Wave", "Mega Pulse (Rear)", "Multi-Cannon (Rear)", "Sonic Wave", "Protron (Rear)",
	"Heavy Guided Bombs", "Banana Blast (Rear)", "NortShip Spreader", "People Pretzels", "Guided Micro Bombs",
}

// Rear weapon order when passive damage is required.
var rearTablePassive = []string{
	"NortShip Spreader", "Starburst", "Mega Pulse (Rear)", "NortShip Spreader B", "HotDog (Rear)",
	"Heavy Missile Launcher (Rear)", "Protron (Rear)", "Multi-Cannon (Rear)", "Sonic Wave", "Scatter Wave",
	"Vulcan Cannon (Rear)", "Banana Blast (Rear)", "Fireball", "Wild Ball", "Heavy Guided Bombs",
	"Guided Micro Bombs", "People Pretzels",
}

// Rear weapon order when only active damage remains; weapons with no
// forward fire are omitted.
var rearTableOther = []string{
	"Banana Blast (Rear)", "Sonic Wave", "Wild Ball", "Fireball", "People Pretzels", "Mega Pulse (Rear)",
	"Scatter Wave", "NortShip Spreader B", "HotDog (Rear)",
}

func ownedFromTable(inv InventoryView, table []string) []string {
	var owned []string
	for _, name := range table {
		if inv.Has(name) {
			owned = append(owned, name)
		}
	}
	return owned
}

// frontCandidates lists the owned front weapons worth trying against
// the requirement, strongest first for that requirement's shape.
func frontCandidates(inv InventoryView, target DPS) []string {
	switch {
	case target.Piercing > 0:
		return ownedFromTable(inv, frontTablePiercing)
	case target.Active > 0:
		return ownedFromTable(inv, frontTableActive)
	default:
		return ownedFromTable(inv, frontTableOther)
	}
}

// rearCandidates does the same for rear weapons.
func rearCandidates(inv InventoryView, target DPS) []string {
	switch {
	case target.Sideways > 0:
		return ownedFromTable(inv, rearTableSideways)
	case target.Passive > 0:
		return ownedFromTable(inv, rearTablePassive)
	default:
		return ownedFromTable(inv, rearTableOther)
	}
}
