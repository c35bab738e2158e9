package options

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/redshift-games/tyrian-world/pkg/items"
	"github.com/redshift-games/tyrian-world/pkg/names"
)

// ConfigError reports an option value that failed validation.
type ConfigError struct {
	Option string
	Detail string
}

func (e *ConfigError) Error() string {
	return "option " + e.Option + ": " + e.Detail
}

func errf(option, format string, args ...any) *ConfigError {
	return &ConfigError{Option: option, Detail: fmt.Sprintf(format, args...)}
}

// Choice is a raw choice-option value. Host configs supply these as value
// names, numbers, or bools, so all three unmarshal.
type Choice struct {
	Name   string
	Number int
	IsName bool
}

func (c *Choice) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		c.Number = n
		c.IsName = false
		return nil
	}
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		// Bools resolve through each option's true/false aliases.
		c.Name = strconv.FormatBool(b)
		c.IsName = true
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("option value %s must be a name, number or bool", string(data))
	}
	c.Name = s
	c.IsName = true
	return nil
}

func (c Choice) MarshalJSON() ([]byte, error) {
	if c.IsName {
		return json.Marshal(c.Name)
	}
	return json.Marshal(c.Number)
}

func (c Choice) display() string {
	if c.IsName {
		return strconv.Quote(c.Name)
	}
	return strconv.Itoa(c.Number)
}

// Raw is the wire shape of user-supplied options. Every field is optional;
// absent fields take their defaults during Resolve.
type Raw struct {
	EnableTyrian2000Support *bool   `json:"enable_tyrian_2000_support,omitempty"`
	Episode1                *Choice `json:"episode_1,omitempty"`
	Episode2                *Choice `json:"episode_2,omitempty"`
	Episode3                *Choice `json:"episode_3,omitempty"`
	Episode4                *Choice `json:"episode_4,omitempty"`
	Episode5                *Choice `json:"episode_5,omitempty"`
	BossWeaknesses          *bool   `json:"boss_weaknesses,omitempty"`

	StartingMoney        *int           `json:"starting_money,omitempty"`
	StartingMaxPower     *int           `json:"starting_max_power,omitempty"`
	RandomStartingWeapon *bool          `json:"random_starting_weapon,omitempty"`
	StartInventory       map[string]int `json:"start_inventory,omitempty"`
	RemoveFromItemPool   map[string]int `json:"remove_from_item_pool,omitempty"`

	ShopMode         *Choice `json:"shop_mode,omitempty"`
	ShopItemCount    *Choice `json:"shop_item_count,omitempty"`
	MoneyPoolScale   *int    `json:"money_pool_scale,omitempty"`
	BaseWeaponCost   *Choice `json:"base_weapon_cost,omitempty"`
	ProgressiveItems *bool   `json:"progressive_items,omitempty"`
	Specials         *Choice `json:"specials,omitempty"`
	Twiddles         *Choice `json:"twiddles,omitempty"`

	LogicDifficulty        *Choice `json:"logic_difficulty,omitempty"`
	LogicBossTimeout       *bool   `json:"logic_boss_timeout,omitempty"`
	Difficulty             *Choice `json:"difficulty,omitempty"`
	ContactBypassesShields *bool   `json:"contact_bypasses_shields,omitempty"`
	AllowExcessArmor       *bool   `json:"allow_excess_armor,omitempty"`

	ForceGameSpeed    *Choice `json:"force_game_speed,omitempty"`
	ShowTwiddleInputs *bool   `json:"show_twiddle_inputs,omitempty"`
	ArchipelagoRadar  *bool   `json:"archipelago_radar,omitempty"`
	ChristmasMode     *bool   `json:"christmas_mode,omitempty"`
	DeathLink         *bool   `json:"death_link,omitempty"`
}

// domain maps accepted value names (including aliases) to choice values.
type domain struct {
	option  string
	values  map[string]int
	display []string // canonical names in declaration order
	matcher *names.Matcher
}

func newDomain(option string, display []string, values map[string]int) *domain {
	return &domain{
		option:  option,
		values:  values,
		display: display,
		matcher: names.NewMatcher(display),
	}
}

func (d *domain) resolve(c *Choice, def int) (int, error) {
	if c == nil {
		return def, nil
	}
	if !c.IsName {
		for _, v := range d.values {
			if v == c.Number {
				return c.Number, nil
			}
		}
		return 0, errf(d.option, "value %d is not one of %s", c.Number, strings.Join(d.display, ", "))
	}
	key := strings.ToLower(strings.TrimSpace(c.Name))
	if v, ok := d.values[key]; ok {
		return v, nil
	}
	detail := fmt.Sprintf("unknown value %s, known values are %s", c.display(), strings.Join(d.display, ", "))
	if best := d.matcher.Best(key); best != "" {
		detail += fmt.Sprintf(" (did you mean %q?)", best)
	}
	return 0, &ConfigError{Option: d.option, Detail: detail}
}

var (
	episodeDomains = [5]*domain{
		newDomain("episode_1", []string{"off", "on", "goal"}, episodeValues),
		newDomain("episode_2", []string{"off", "on", "goal"}, episodeValues),
		newDomain("episode_3", []string{"off", "on", "goal"}, episodeValues),
		newDomain("episode_4", []string{"off", "on", "goal"}, episodeValues),
		newDomain("episode_5", []string{"off", "on", "goal"}, episodeValues),
	}
	episodeValues = map[string]int{"off": 0, "on": 1, "goal": 2}

	shopModeDomain = newDomain("shop_mode",
		[]string{"none", "standard", "hidden", "shops_only"},
		map[string]int{"none": 0, "standard": 1, "hidden": 2, "shops_only": 3})

	specialsDomain = newDomain("specials",
		[]string{"off", "on", "as_items"},
		map[string]int{"off": 0, "on": 1, "as_items": 2, "false": 0, "true": 1})

	twiddlesDomain = newDomain("twiddles",
		[]string{"off", "on", "chaos"},
		map[string]int{"off": 0, "on": 1, "chaos": 2, "false": 0, "true": 1})

	logicDifficultyDomain = newDomain("logic_difficulty",
		[]string{"beginner", "standard", "expert", "master", "no_logic"},
		map[string]int{"beginner": 1, "standard": 2, "expert": 3, "master": 4, "no_logic": 5})

	difficultyDomain = newDomain("difficulty",
		[]string{"easy", "normal", "hard", "impossible", "suicide", "lord_of_game"},
		map[string]int{
			"easy": 1, "normal": 2, "hard": 3, "impossible": 4, "suicide": 6,
			"lord_of_game": 8, "lord_of_the_game": 8, "zinglon": 8,
		})

	gameSpeedDomain = newDomain("force_game_speed",
		[]string{"off", "slug_mode", "slower", "slow", "normal", "turbo"},
		map[string]int{"off": -1, "slug_mode": 0, "slower": 1, "slow": 2, "normal": 3, "turbo": 4})

	shopCountNames = map[string]int{
		"always_one": -1, "always_two": -2, "always_three": -3, "always_four": -4, "always_five": -5,
	}
	shopCountMatcher = names.NewMatcher([]string{
		"always_one", "always_two", "always_three", "always_four", "always_five",
	})

	weaponCostNames = map[string]int{
		"original": WeaponCostOriginal, "balanced": WeaponCostBalanced, "randomized": WeaponCostRandomized,
	}
	weaponCostMatcher = names.NewMatcher([]string{"original", "balanced", "randomized"})

	itemMatcher = names.NewMatcher(items.AllNames())
)

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

func intInRange(option string, v *int, def, lo, hi int) (int, error) {
	if v == nil {
		return def, nil
	}
	if *v < lo || *v > hi {
		return 0, errf(option, "value %d is outside the range %d to %d", *v, lo, hi)
	}
	return *v, nil
}

func resolveShopItemCount(c *Choice) (int, error) {
	const option = "shop_item_count"
	if c == nil {
		return 100, nil
	}
	if !c.IsName {
		if c.Number >= 1 && c.Number <= 330 {
			return c.Number, nil
		}
		if c.Number <= -1 && c.Number >= -5 {
			return c.Number, nil
		}
		return 0, errf(option, "value %d is outside the range 1 to 330", c.Number)
	}
	key := strings.ToLower(strings.TrimSpace(c.Name))
	if v, ok := shopCountNames[key]; ok {
		return v, nil
	}
	if n, err := strconv.Atoi(key); err == nil {
		return resolveShopItemCount(&Choice{Number: n})
	}
	detail := fmt.Sprintf("unknown value %s, known values are always_one through always_five or a count from 1 to 330", c.display())
	if best := shopCountMatcher.Best(key); best != "" {
		detail += fmt.Sprintf(" (did you mean %q?)", best)
	}
	return 0, &ConfigError{Option: option, Detail: detail}
}

func resolveWeaponCost(c *Choice) (int, error) {
	const option = "base_weapon_cost"
	if c == nil {
		return WeaponCostOriginal, nil
	}
	if !c.IsName {
		if c.Number >= 0 || (c.Number >= -3 && c.Number <= -1) {
			return c.Number, nil
		}
		return 0, errf(option, "value %d is not a price or a known mode", c.Number)
	}
	key := strings.ToLower(strings.TrimSpace(c.Name))
	if v, ok := weaponCostNames[key]; ok {
		return v, nil
	}
	if n, err := strconv.Atoi(key); err == nil && n >= 0 {
		return n, nil
	}
	detail := fmt.Sprintf("unknown value %s, known values are original, balanced, randomized, or any non-negative price", c.display())
	if best := weaponCostMatcher.Best(key); best != "" {
		detail += fmt.Sprintf(" (did you mean %q?)", best)
	}
	return 0, &ConfigError{Option: option, Detail: detail}
}

func resolveItemCounts(option string, raw map[string]int) (map[string]int, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	out := make(map[string]int, len(raw))
	for name, count := range raw {
		if _, ok := items.Get(name); !ok {
			detail := fmt.Sprintf("unknown item %q", name)
			if best := itemMatcher.Best(name); best != "" {
				detail += fmt.Sprintf(" (did you mean %q?)", best)
			}
			return nil, &ConfigError{Option: option, Detail: detail}
		}
		if count < 0 {
			return nil, errf(option, "item %q has negative count %d", name, count)
		}
		if count > 0 {
			out[name] = count
		}
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out, nil
}

// Resolve validates r and produces the fully typed option set. All failures
// are *ConfigError values naming the offending option.
func (r *Raw) Resolve() (*Set, error) {
	s := &Set{
		Tyrian2000Support: boolOr(r.EnableTyrian2000Support, false),
		BossWeaknesses:    boolOr(r.BossWeaknesses, false),

		RandomStartingWeapon: boolOr(r.RandomStartingWeapon, false),
		Progressive:          boolOr(r.ProgressiveItems, true),
		LogicBossTimeout:     boolOr(r.LogicBossTimeout, true),
		HardContact:          boolOr(r.ContactBypassesShields, false),
		ExcessArmor:          boolOr(r.AllowExcessArmor, true),
		ShowTwiddleInputs:    boolOr(r.ShowTwiddleInputs, true),
		ArchipelagoRadar:     boolOr(r.ArchipelagoRadar, true),
		Christmas:            boolOr(r.ChristmasMode, false),
		DeathLink:            boolOr(r.DeathLink, false),
	}

	episodeRaw := [5]*Choice{r.Episode1, r.Episode2, r.Episode3, r.Episode4, r.Episode5}
	episodeDefaults := [5]int{int(EpisodeGoal), int(EpisodeGoal), int(EpisodeGoal), int(EpisodeGoal), int(EpisodeOff)}
	for i := range episodeRaw {
		v, err := episodeDomains[i].resolve(episodeRaw[i], episodeDefaults[i])
		if err != nil {
			return nil, err
		}
		s.Episodes[i] = EpisodeMode(v)
	}

	var err error
	if s.StartingMoney, err = intInRange("starting_money", r.StartingMoney, 10000, 0, 9999999); err != nil {
		return nil, err
	}
	if s.StartingMaxPower, err = intInRange("starting_max_power", r.StartingMaxPower, 1, 1, 11); err != nil {
		return nil, err
	}
	if s.MoneyPoolScale, err = intInRange("money_pool_scale", r.MoneyPoolScale, 100, 20, 400); err != nil {
		return nil, err
	}
	if s.StartInventory, err = resolveItemCounts("start_inventory", r.StartInventory); err != nil {
		return nil, err
	}
	if s.RemoveFromItemPool, err = resolveItemCounts("remove_from_item_pool", r.RemoveFromItemPool); err != nil {
		return nil, err
	}

	v, err := shopModeDomain.resolve(r.ShopMode, int(ShopsStandard))
	if err != nil {
		return nil, err
	}
	s.ShopMode = ShopMode(v)

	if s.ShopItemCount, err = resolveShopItemCount(r.ShopItemCount); err != nil {
		return nil, err
	}
	if s.BaseWeaponCost, err = resolveWeaponCost(r.BaseWeaponCost); err != nil {
		return nil, err
	}

	if v, err = specialsDomain.resolve(r.Specials, int(SpecialsAsItems)); err != nil {
		return nil, err
	}
	s.Specials = SpecialsMode(v)

	if v, err = twiddlesDomain.resolve(r.Twiddles, int(TwiddlesOn)); err != nil {
		return nil, err
	}
	s.Twiddles = TwiddlesMode(v)

	if v, err = logicDifficultyDomain.resolve(r.LogicDifficulty, int(LogicStandard)); err != nil {
		return nil, err
	}
	s.LogicDifficulty = LogicDifficulty(v)

	if v, err = difficultyDomain.resolve(r.Difficulty, int(DifficultyNormal)); err != nil {
		return nil, err
	}
	s.Difficulty = Difficulty(v)

	if v, err = gameSpeedDomain.resolve(r.ForceGameSpeed, int(SpeedOff)); err != nil {
		return nil, err
	}
	s.GameSpeed = GameSpeed(v)

	// Episode 5 needs Tyrian 2000 data.
	if !s.Tyrian2000Support {
		s.Episodes[4] = EpisodeOff
	}

	if len(s.PlayEpisodes()) == 0 {
		return nil, errf("episode_1", "no episode is enabled; enable or goal at least one")
	}

	// With no goals chosen, every played episode becomes a goal.
	if len(s.GoalEpisodes()) == 0 {
		for i, mode := range s.Episodes {
			if mode == EpisodeOn {
				s.Episodes[i] = EpisodeGoal
			}
		}
	}

	return s, nil
}

// Defaults returns the option set produced by an empty Raw.
func Defaults() *Set {
	s, err := (&Raw{}).Resolve()
	if err != nil {
		panic("options: defaults must resolve: " + err.Error())
	}
	return s
}
