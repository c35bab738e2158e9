package items

// UpgradeCost is the per-level base price of a weapon's upgrades.
// Upgrading to power N costs the base price times UpgradeMultipliers[N-1].
type UpgradeCost struct {
	Original int // price from the original game
	Balanced int // rebalanced around Pulse-Cannon at 700
}

// UpgradeMultipliers maps weapon power 1..11 to the multiplier applied to
// the weapon's base upgrade cost.
var UpgradeMultipliers = [11]int{0, 1, 4, 10, 20, 35, 56, 84, 120, 165, 220}

// DefaultUpgradeCosts lists the base upgrade price of every front and rear
// port weapon. Resolved per seed by the base_weapon_cost option.
var DefaultUpgradeCosts = map[string]UpgradeCost{
	// Front ports
	"Pulse-Cannon":                   {Original: 500, Balanced: 700},
	"Multi-Cannon (Front)":           {Original: 750, Balanced: 600},
	"Mega Cannon":                    {Original: 1000, Balanced: 1000},
	"Laser":                          {Original: 900, Balanced: 1800},
	"Zica Laser":                     {Original: 1100, Balanced: 1750},
	"Protron Z":                      {Original: 900, Balanced: 1200},
	"Vulcan Cannon (Front)":          {Original: 600, Balanced: 500},
	"Lightning Cannon":               {Original: 1000, Balanced: 1500},
	"Protron (Front)":                {Original: 600, Balanced: 900},
	"Missile Launcher":               {Original: 850, Balanced: 600},
	"Mega Pulse (Front)":             {Original: 900, Balanced: 1200},
	"Heavy Missile Launcher (Front)": {Original: 1000, Balanced: 1000},
	"Banana Blast (Front)":           {Original: 950, Balanced: 1000},
	"HotDog (Front)":                 {Original: 1100, Balanced: 950},
	"Hyper Pulse":                    {Original: 1050, Balanced: 800},
	"Guided Bombs":                   {Original: 800, Balanced: 900},
	"Shuriken Field":                 {Original: 850, Balanced: 1400},
	"Poison Bomb":                    {Original: 800, Balanced: 1800},
	"Protron Wave":                   {Original: 750, Balanced: 750},
	"The Orange Juicer":              {Original: 900, Balanced: 1000},
	"NortShip Super Pulse":           {Original: 1100, Balanced: 1250},
	"Atomic RailGun":                 {Original: 1101, Balanced: 1750}, // 1101 is not a typo
	"Widget Beam":                    {Original: 950, Balanced: 500},
	"Sonic Impulse":                  {Original: 1000, Balanced: 700}, // too fast to pierce well
	"RetroBall":                      {Original: 1000, Balanced: 600},

	// Rear ports
	"Starburst":                     {Original: 900, Balanced: 800},
	"Multi-Cannon (Rear)":           {Original: 750, Balanced: 600},
	"Sonic Wave":                    {Original: 950, Balanced: 950},
	"Protron (Rear)":                {Original: 650, Balanced: 750},
	"Wild Ball":                     {Original: 800, Balanced: 600},
	"Vulcan Cannon (Rear)":          {Original: 500, Balanced: 500},
	"Fireball":                      {Original: 1000, Balanced: 600},
	"Heavy Missile Launcher (Rear)": {Original: 1000, Balanced: 1000},
	"Mega Pulse (Rear)":             {Original: 900, Balanced: 1200},
	"Banana Blast (Rear)":           {Original: 1100, Balanced: 1400},
	"HotDog (Rear)":                 {Original: 1100, Balanced: 900},
	"Guided Micro Bombs":            {Original: 1100, Balanced: 800},
	"Heavy Guided Bombs":            {Original: 1000, Balanced: 800},
	"Scatter Wave":                  {Original: 900, Balanced: 600},
	"NortShip Spreader":             {Original: 1100, Balanced: 1500},
	"NortShip Spreader B":           {Original: 1100, Balanced: 1250},

	// Tyrian 2000 weapons; original prices of 50 raised to sane values
	"Needle Laser":    {Original: 600, Balanced: 700},
	"Pretzel Missile": {Original: 1000, Balanced: 900},
	"Dragon Frost":    {Original: 700, Balanced: 900},
	"Dragon Flame":    {Original: 1000, Balanced: 1100},

	"People Pretzels": {Original: 1000, Balanced: 900},
}

// MaxUpgradeCost returns the price of taking a weapon with the given base
// cost to full power.
func MaxUpgradeCost(base int) int {
	return base * UpgradeMultipliers[len(UpgradeMultipliers)-1]
}
