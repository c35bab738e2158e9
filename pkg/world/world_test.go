package world

import (
	"context"
	"strings"
	"testing"

	"github.com/redshift-games/tyrian-world/pkg/items"
	"github.com/redshift-games/tyrian-world/pkg/options"
)

func boolPtr(b bool) *bool { return &b }
func intPtr(n int) *int    { return &n }
func name(s string) *options.Choice {
	return &options.Choice{Name: s, IsName: true}
}
func number(n int) *options.Choice {
	return &options.Choice{Number: n}
}

func resolve(t *testing.T, r *options.Raw) *options.Set {
	t.Helper()
	s, err := r.Resolve()
	if err != nil {
		t.Fatalf("resolve options: %v", err)
	}
	return s
}

func generate(t *testing.T, opts *options.Set, seed string) *World {
	t.Helper()
	w, err := Generate(context.Background(), opts, seed)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	return w
}

// allEpisodesGoal is the five-episode configuration most cross-cutting
// tests build on.
func allEpisodesGoal() *options.Raw {
	return &options.Raw{
		EnableTyrian2000Support: boolPtr(true),
		Episode1:                name("goal"),
		Episode2:                name("goal"),
		Episode3:                name("goal"),
		Episode4:                name("goal"),
		Episode5:                name("goal"),
	}
}

func TestGenerateRejectsEmptySeed(t *testing.T) {
	opts := resolve(t, &options.Raw{})
	if _, err := Generate(context.Background(), opts, ""); err == nil {
		t.Fatal("want error for empty seed")
	}
}

func TestGenerateDefaultWorld(t *testing.T) {
	w := generate(t, resolve(t, &options.Raw{}), "PEPPERY")

	if got, want := len(w.AllLevels), 58; got != want {
		t.Errorf("levels = %d, want %d", got, want)
	}
	if got, want := len(w.Events), 4; got != want {
		t.Errorf("events = %d, want %d", got, want)
	}
	if len(w.Pool) != len(w.Locations) {
		t.Errorf("pool size %d does not fill %d locations", len(w.Pool), len(w.Locations))
	}

	// The default start: first level of episode 1 plus the fixed
	// starting weapon, neither left in the pool.
	for _, name := range []string{"TYRIAN (Episode 1)", "Pulse-Cannon"} {
		if !w.hasPrecollected(name) {
			t.Errorf("%s not precollected", name)
		}
		for _, item := range w.Pool {
			if item == name {
				t.Errorf("%s still in pool", name)
			}
		}
	}

	rep := w.CheckCompletable()
	if !rep.Beatable {
		t.Error("default world not beatable with full inventory")
	}
	if len(rep.Unreachable) != 0 {
		t.Errorf("unreachable locations: %v", rep.Unreachable)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	raw := allEpisodesGoal()
	raw.BaseWeaponCost = name("randomized")
	raw.RandomStartingWeapon = boolPtr(true)
	opts := resolve(t, raw)

	a := generate(t, opts, "CHURNING")
	b := generate(t, opts, "CHURNING")

	if len(a.Pool) != len(b.Pool) {
		t.Fatalf("pool sizes differ: %d vs %d", len(a.Pool), len(b.Pool))
	}
	for i := range a.Pool {
		if a.Pool[i] != b.Pool[i] {
			t.Fatalf("pool[%d] = %q vs %q", i, a.Pool[i], b.Pool[i])
		}
	}
	for i := range a.Precollected {
		if a.Precollected[i] != b.Precollected[i] {
			t.Fatalf("precollected[%d] = %q vs %q", i, a.Precollected[i], b.Precollected[i])
		}
	}
	for name, cost := range a.WeaponCosts {
		if b.WeaponCosts[name] != cost {
			t.Fatalf("weapon cost %q = %d vs %d", name, cost, b.WeaponCosts[name])
		}
	}
	for i := range a.Locations {
		if a.Locations[i].Name != b.Locations[i].Name || a.Locations[i].ShopPrice != b.Locations[i].ShopPrice {
			t.Fatalf("location %d differs: %s/%d vs %s/%d", i,
				a.Locations[i].Name, a.Locations[i].ShopPrice,
				b.Locations[i].Name, b.Locations[i].ShopPrice)
		}
	}
	for i := range a.Twiddles {
		if a.Twiddles[i].Name != b.Twiddles[i].Name {
			t.Fatalf("twiddle %d = %q vs %q", i, a.Twiddles[i].Name, b.Twiddles[i].Name)
		}
	}

	c := generate(t, opts, "DIFFERENT SEED")
	same := true
	for name, cost := range a.WeaponCosts {
		if c.WeaponCosts[name] != cost {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced identical randomized weapon costs")
	}
}

func TestEachGoalEpisodeRequiresItsFinalLevel(t *testing.T) {
	tests := []struct {
		episode items.Episode
		level   string
	}{
		{items.EpisodeEscape, "ASSASSIN (Episode 1)"},
		{items.EpisodeTreachery, "GRYPHON (Episode 2)"},
		{items.EpisodeMissionSuicide, "FLEET (Episode 3)"},
		{items.EpisodeAnEndToFate, "NOSE DRIP (Episode 4)"},
		{items.EpisodeHazudraFodder, "FRUIT (Episode 5)"},
	}

	w := generate(t, resolve(t, allEpisodesGoal()), "FIVEFOLD")
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			inv := w.FullInventory()
			inv.Remove(tt.level)
			if w.Beatable(inv) {
				t.Errorf("beatable without %s", tt.level)
			}
			inv.Add(tt.level)
			if !w.Beatable(inv) {
				t.Errorf("not beatable with %s restored", tt.level)
			}
		})
	}

	if w.Beatable(NewInventory(w.Precollected...)) {
		t.Error("beatable from the start state alone")
	}
}

func TestTyrian2000ItemGating(t *testing.T) {
	t2kItems := []string{
		"Needle Laser", "Pretzel Missile", "Dragon Frost", "Dragon Flame",
		"People Pretzels", "Super Pretzel", "Dragon Lightning",
		"Bubble Gum-Gun", "Flying Punch",
	}

	with := generate(t, resolve(t, allEpisodesGoal()), "GUMDROP")
	found := 0
	for _, item := range with.Pool {
		for _, t2k := range t2kItems {
			if item == t2k {
				found++
			}
		}
	}
	if found == 0 {
		t.Error("no Tyrian 2000 items in a Tyrian 2000 world")
	}

	raw := allEpisodesGoal()
	raw.EnableTyrian2000Support = boolPtr(false)
	without := generate(t, resolve(t, raw), "GUMDROP")
	for _, item := range without.Pool {
		for _, t2k := range t2kItems {
			if item == t2k {
				t.Errorf("%s in pool without Tyrian 2000 support", item)
			}
		}
		if strings.Contains(item, "(Episode 5)") {
			t.Errorf("episode 5 item %s in pool without Tyrian 2000 support", item)
		}
	}
	if got, want := len(without.AllLevels), 58; got != want {
		t.Errorf("levels = %d, want %d (episode 5 should be dropped)", got, want)
	}
}

func TestStartInventoryOverridesDefaults(t *testing.T) {
	raw := allEpisodesGoal()
	raw.StartInventory = map[string]int{
		"BUBBLES (Episode 1)": 1,
		"Laser":               1,
	}
	w := generate(t, resolve(t, raw), "HEADSTART")

	if !w.hasPrecollected("BUBBLES (Episode 1)") || !w.hasPrecollected("Laser") {
		t.Fatal("start inventory items not precollected")
	}
	// An explicit starting level and front weapon suppress the
	// defaults.
	if w.hasPrecollected("TYRIAN (Episode 1)") {
		t.Error("default start level granted despite start inventory level")
	}
	if w.hasPrecollected("Pulse-Cannon") {
		t.Error("default weapon granted despite start inventory weapon")
	}
	for _, item := range w.Pool {
		if item == "BUBBLES (Episode 1)" || item == "Laser" {
			t.Errorf("%s still in pool", item)
		}
	}
}

func TestRemoveFromItemPool(t *testing.T) {
	raw := allEpisodesGoal()
	raw.RemoveFromItemPool = map[string]int{"Laser": 1, "Sonic Wave": 1}
	w := generate(t, resolve(t, raw), "TRIMMED")
	for _, item := range w.Pool {
		if item == "Laser" || item == "Sonic Wave" {
			t.Errorf("%s still in pool after removal", item)
		}
	}
}

func TestRemoveLevelFromPoolFails(t *testing.T) {
	raw := allEpisodesGoal()
	raw.RemoveFromItemPool = map[string]int{"TYRIAN (Episode 1)": 1}
	opts := resolve(t, raw)
	if _, err := Generate(context.Background(), opts, "BADCONFIG"); err == nil {
		t.Fatal("want error removing a level from the pool")
	}
}

func TestRandomStartingWeaponComesFromPool(t *testing.T) {
	raw := allEpisodesGoal()
	raw.RandomStartingWeapon = boolPtr(true)
	w := generate(t, resolve(t, raw), "LOADOUT")

	var start string
	for _, name := range w.Precollected {
		if isFrontPort(name) {
			start = name
			break
		}
	}
	if start == "" {
		t.Fatal("no front weapon precollected")
	}
	for _, item := range w.Pool {
		if item == start {
			t.Errorf("starting weapon %s still in pool", start)
		}
	}
}

func TestStartingMaxPowerDrawsUpgrades(t *testing.T) {
	raw := allEpisodesGoal()
	raw.StartingMaxPower = intPtr(5)
	w := generate(t, resolve(t, raw), "POWERED")

	precollected := 0
	for _, name := range w.Precollected {
		if name == "Maximum Power Up" {
			precollected++
		}
	}
	if precollected != 4 {
		t.Errorf("precollected %d power ups, want 4", precollected)
	}
	inPool := 0
	for _, name := range w.Pool {
		if name == "Maximum Power Up" {
			inPool++
		}
	}
	if inPool != 6 {
		t.Errorf("%d power ups left in pool, want 6", inPool)
	}
}

func TestSpecialsOnPrecollectsOneSpecial(t *testing.T) {
	raw := allEpisodesGoal()
	raw.Specials = name("on")
	w := generate(t, resolve(t, raw), "GLOWING")

	if w.SingleSpecial == "" {
		t.Fatal("no single special rolled")
	}
	if !w.hasPrecollected(w.SingleSpecial) {
		t.Errorf("%s not precollected", w.SingleSpecial)
	}
	for _, item := range w.Pool {
		if d, ok := items.Get(item); ok && d.LocalID >= 700 && d.LocalID < 800 {
			t.Errorf("special %s in pool with specials=on", item)
		}
	}
}

func TestMoneyTargetCoversMaxUpgradeAndShops(t *testing.T) {
	w := generate(t, resolve(t, allEpisodesGoal()), "LEDGER")

	shopTotal := 0
	for _, l := range w.Locations {
		if l.IsShop() {
			shopTotal += l.ShopPrice
		}
	}
	maxCost := 0
	for _, cost := range w.WeaponCosts {
		if cost > maxCost {
			maxCost = cost
		}
	}
	floor := items.MaxUpgradeCost(maxCost) + shopTotal - w.Options.StartingMoney
	if w.TotalMoneyNeeded < floor {
		t.Errorf("money target %d below %d", w.TotalMoneyNeeded, floor)
	}

	// Junk credits must cover the target.
	total := 0
	for _, item := range w.Pool {
		if d, ok := items.Get(item); ok {
			total += d.Value
		}
	}
	want := w.TotalMoneyNeeded * w.Options.MoneyPoolScale / 100
	if total < want {
		t.Errorf("pool credits %d below scaled target %d", total, want)
	}
}
