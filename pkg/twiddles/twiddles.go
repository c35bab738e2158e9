// Package twiddles rolls the input-code specials a world ships with.
// A twiddle is a short joystick sequence that fires a special effect
// mid-level for an armor or shield price. Worlds carry up to three;
// which three, and what their codes look like, depends on the twiddle
// option rolled into the seed.
package twiddles

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// Input is one step of a twiddle command, in the game's encoding.
type Input int

const (
	Up Input = iota + 1
	Down
	Left
	Right
	UpFire
	DownFire
	LeftFire
	RightFire
	Neutral
)

var inputNames = [...]string{
	Up:        "Up",
	Down:      "Down",
	Left:      "Left",
	Right:     "Right",
	UpFire:    "Up+Fire",
	DownFire:  "Down+Fire",
	LeftFire:  "Left+Fire",
	RightFire: "Right+Fire",
	Neutral:   "Neutral",
}

func (i Input) String() string {
	if i < Up || i > Neutral {
		return fmt.Sprintf("Input(%d)", int(i))
	}
	return inputNames[i]
}

// Action is the special effect a twiddle triggers, in the client's
// special-weapon numbering. Purchasable specials keep their in-game
// numbers; twiddle-only effects continue the table from 26.
type Action int

const (
	ActionRepulsor        Action = 1
	ActionMineField       Action = 9
	ActionInvulnerability Action = 20
	ActionProtronField    Action = 23

	ActionAtomBomb    Action = 26
	ActionSeekerBombs Action = 27
	ActionIceBlast    Action = 28
	ActionAutoRepair  Action = 29
	ActionSpinWave    Action = 30
	ActionPostItBlast Action = 31
	ActionHotDog      Action = 32
	ActionLightning   Action = 33
)

// Cost encoding, shared with the game: 0 is free, values below 98
// drain that much shield, 98 halves shield, 99 empties it, and 100
// plus N drains N armor.
const (
	CostHalfShield = 98
	CostAllShield  = 99
	costArmorBase  = 100
)

// CostString renders a cost the way the spoiler log describes it.
func CostString(cost int) string {
	switch {
	case cost == 0:
		return "free"
	case cost == CostHalfShield:
		return "half shield"
	case cost == CostAllShield:
		return "all shield"
	case cost > costArmorBase:
		return fmt.Sprintf("%d armor", cost-costArmorBase)
	default:
		return fmt.Sprintf("%d shield", cost)
	}
}

// Twiddle is one rolled input code. The field tags match what the
// client decodes out of slot data.
type Twiddle struct {
	Name    string  `json:"Name"`
	Command []Input `json:"Command"`
	Cost    int     `json:"Cost"`
	Action  Action  `json:"Item"`
}

// SpoilerString renders the twiddle for the spoiler log.
func (t Twiddle) SpoilerString() string {
	steps := make([]string, len(t.Command))
	for i, in := range t.Command {
		steps[i] = in.String()
	}
	return fmt.Sprintf("%s: %s (cost: %s)", t.Name, strings.Join(steps, ", "), CostString(t.Cost))
}

// catalog holds every twiddle the game knows, with its original input
// code and price.
var catalog = []Twiddle{
	{"Invulnerability", []Input{Down, Up, Down, UpFire}, CostAllShield, ActionInvulnerability},
	{"Atom Bomb", []Input{Right, Left, Down, UpFire}, costArmorBase + 2, ActionAtomBomb},
	{"Seeker Bombs", []Input{Left, Right, DownFire}, costArmorBase + 3, ActionSeekerBombs},
	{"Ice Blast", []Input{Down, UpFire}, 4, ActionIceBlast},
	{"Auto Repair", []Input{DownFire, Down, DownFire}, CostAllShield, ActionAutoRepair},
	{"Spin Wave", []Input{DownFire, LeftFire, UpFire, RightFire, DownFire, LeftFire, UpFire}, 30, ActionSpinWave},
	{"Repulsor", []Input{LeftFire, RightFire}, 1, ActionRepulsor},
	{"Protron Field", []Input{Up, LeftFire, DownFire}, CostHalfShield, ActionProtronField},
	{"Minefield", []Input{RightFire, DownFire, LeftFire, Up}, costArmorBase + 4, ActionMineField},
	{"Post-It Blast", []Input{Left, DownFire, RightFire, UpFire}, costArmorBase + 5, ActionPostItBlast},
	{"Hot Dog", []Input{Up, DownFire}, costArmorBase + 1, ActionHotDog},
	{"Lightning", []Input{Neutral, UpFire}, 0, ActionLightning},
}

// Catalog returns a copy of the full twiddle table.
func Catalog() []Twiddle {
	out := make([]Twiddle, len(catalog))
	copy(out, catalog)
	return out
}

// LoadoutSize is how many twiddle slots a ship has.
const LoadoutSize = 3

// Chaos cost menu, from free through steep armor prices.
var chaosCosts = []int{
	0, 5, 10, 15, 20, 25, 30,
	CostHalfShield, CostAllShield,
	costArmorBase + 1, costArmorBase + 2, costArmorBase + 3,
	costArmorBase + 4, costArmorBase + 5,
}

// Generate rolls a world's twiddle loadout: three distinct effects
// drawn from the catalog. Plain generation keeps the original input
// codes and prices; chaos rerolls both, leaving only the effects
// recognizable.
func Generate(rng *rand.Rand, chaos bool) []Twiddle {
	picks := rng.Perm(len(catalog))[:LoadoutSize]

	out := make([]Twiddle, 0, LoadoutSize)
	for _, idx := range picks {
		t := catalog[idx]
		t.Command = append([]Input(nil), t.Command...)
		if chaos {
			t.Command = rollCommand(rng)
			t.Cost = chaosCosts[rng.IntN(len(chaosCosts))]
		}
		out = append(out, t)
	}
	return out
}

// rollCommand builds a random input sequence. The game cannot register
// the same input twice in a row without a return to neutral, so
// consecutive steps always differ.
func rollCommand(rng *rand.Rand) []Input {
	length := 2 + rng.IntN(6)
	cmd := make([]Input, length)
	for i := range cmd {
		for {
			in := Input(1 + rng.IntN(int(Neutral)))
			if i > 0 && in == cmd[i-1] {
				continue
			}
			cmd[i] = in
			break
		}
	}
	return cmd
}

// Grants reports whether any rolled twiddle triggers the action.
func Grants(loadout []Twiddle, action Action) bool {
	for _, t := range loadout {
		if t.Action == action {
			return true
		}
	}
	return false
}
