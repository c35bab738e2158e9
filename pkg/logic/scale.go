package logic

import "github.com/redshift-games/tyrian-world/pkg/options"

// ScaleHealth adjusts a base enemy health value for the game
// difficulty in play. adjust shifts the difficulty by whole steps
// before scaling; the result of that shift is clamped to the playable
// 1..10 band. The game keeps health in a single byte, so everything
// above Easy caps at 254.
func ScaleHealth(opts *options.Set, health int, adjust int) int {
	difficulty := min(max(1, int(opts.Difficulty)+adjust), 10)
	switch difficulty {
	case 1:
		return health*3/4 + 1
	case 2:
		return health
	case 3:
		return min(254, health*6/5)
	case 4:
		return min(254, health*3/2)
	case 5:
		return min(254, health*9/5)
	case 6:
		return min(254, health*2)
	case 7:
		return min(254, health*3)
	case 8:
		return min(254, health*4)
	default: // 9 and 10
		return min(254, health*8)
	}
}

// DifficultyArmorChoice picks the armor level a rule should demand,
// one entry per logic difficulty from beginner through master. On
// no_logic there is nothing to demand beyond the 5 armor every ship
// starts with.
func DifficultyArmorChoice(opts *options.Set, base [4]int) int {
	if opts.LogicDifficulty == options.LogicNoLogic {
		return 5
	}
	return base[opts.LogicDifficulty-1]
}

// DifficultyArmorChoiceContact is DifficultyArmorChoice with a second
// tuple that takes over when enemy contact bypasses shields.
func DifficultyArmorChoiceContact(opts *options.Set, base, contact [4]int) int {
	if opts.LogicDifficulty == options.LogicNoLogic {
		return 5
	}
	if opts.HardContact {
		return contact[opts.LogicDifficulty-1]
	}
	return base[opts.LogicDifficulty-1]
}
