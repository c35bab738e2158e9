package options

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/redshift-games/tyrian-world/pkg/items"
)

func boolPtr(b bool) *bool { return &b }
func intPtr(n int) *int    { return &n }
func name(s string) *Choice {
	return &Choice{Name: s, IsName: true}
}
func number(n int) *Choice {
	return &Choice{Number: n}
}

func TestDefaults(t *testing.T) {
	s := Defaults()

	if s.Tyrian2000Support {
		t.Error("Tyrian 2000 support should default off")
	}
	for i := 0; i < 4; i++ {
		if s.Episodes[i] != EpisodeGoal {
			t.Errorf("episode %d mode = %v, want goal", i+1, s.Episodes[i])
		}
	}
	if s.Episodes[4] != EpisodeOff {
		t.Error("episode 5 should default off")
	}
	if s.ShopMode != ShopsStandard || s.ShopItemCount != 100 {
		t.Errorf("shop defaults = %v/%d, want standard/100", s.ShopMode, s.ShopItemCount)
	}
	if s.MoneyPoolScale != 100 || s.StartingMoney != 10000 || s.StartingMaxPower != 1 {
		t.Error("money and power defaults wrong")
	}
	if s.BaseWeaponCost != WeaponCostOriginal {
		t.Errorf("base weapon cost = %d, want original", s.BaseWeaponCost)
	}
	if !s.Progressive || s.Specials != SpecialsAsItems || s.Twiddles != TwiddlesOn {
		t.Error("item pool defaults wrong")
	}
	if s.LogicDifficulty != LogicStandard || s.Difficulty != DifficultyNormal {
		t.Error("difficulty defaults wrong")
	}
	if !s.LogicBossTimeout || s.HardContact || !s.ExcessArmor {
		t.Error("combat rule defaults wrong")
	}
	if s.GameSpeed != SpeedOff || !s.ShowTwiddleInputs || !s.ArchipelagoRadar || s.Christmas || s.DeathLink {
		t.Error("client-facing defaults wrong")
	}
	if got := s.StartLevel(); got != "TYRIAN (Episode 1)" {
		t.Errorf("StartLevel = %q", got)
	}
}

func TestEpisode5RequiresTyrian2000(t *testing.T) {
	r := &Raw{Episode5: name("goal")}
	s, err := r.Resolve()
	if err != nil {
		t.Fatal(err)
	}
	if s.Episode(items.EpisodeHazudraFodder) != EpisodeOff {
		t.Error("episode 5 should be forced off without Tyrian 2000 support")
	}

	r.EnableTyrian2000Support = boolPtr(true)
	s, err = r.Resolve()
	if err != nil {
		t.Fatal(err)
	}
	if s.Episode(items.EpisodeHazudraFodder) != EpisodeGoal {
		t.Error("episode 5 goal should survive with Tyrian 2000 support on")
	}
}

func TestNoEpisodesIsConfigError(t *testing.T) {
	r := &Raw{
		Episode1: name("off"), Episode2: name("off"), Episode3: name("off"),
		Episode4: name("off"), Episode5: name("off"),
	}
	_, err := r.Resolve()
	var cfg *ConfigError
	if !errors.As(err, &cfg) {
		t.Fatalf("want ConfigError, got %v", err)
	}
}

func TestGoalsDefaultToPlayedEpisodes(t *testing.T) {
	r := &Raw{
		Episode1: name("on"), Episode2: name("off"), Episode3: name("on"),
		Episode4: name("off"), Episode5: name("off"),
	}
	s, err := r.Resolve()
	if err != nil {
		t.Fatal(err)
	}
	goals := s.GoalEpisodes()
	if len(goals) != 2 || goals[0] != items.EpisodeEscape || goals[1] != items.EpisodeMissionSuicide {
		t.Errorf("goals = %v, want episodes 1 and 3", goals)
	}
}

func TestChoiceAcceptsNumbersAndAliases(t *testing.T) {
	r := &Raw{
		Difficulty: name("zinglon"),
		Specials:   name("true"),
		Episode1:   number(2),
	}
	s, err := r.Resolve()
	if err != nil {
		t.Fatal(err)
	}
	if s.Difficulty != DifficultyLordOfGame {
		t.Errorf("difficulty = %v, want lord_of_game", s.Difficulty)
	}
	if s.Specials != SpecialsOn {
		t.Errorf("specials = %v, want on", s.Specials)
	}
	if s.Episodes[0] != EpisodeGoal {
		t.Errorf("episode 1 = %v, want goal", s.Episodes[0])
	}
}

func TestRangeRejection(t *testing.T) {
	_, err := (&Raw{StartingMaxPower: intPtr(12)}).Resolve()
	if err == nil || !strings.Contains(err.Error(), "starting_max_power") {
		t.Errorf("want error naming starting_max_power, got %v", err)
	}

	_, err = (&Raw{MoneyPoolScale: intPtr(10)}).Resolve()
	if err == nil || !strings.Contains(err.Error(), "money_pool_scale") {
		t.Errorf("want error naming money_pool_scale, got %v", err)
	}
}

func TestShopItemCount(t *testing.T) {
	tests := []struct {
		name    string
		raw     *Choice
		want    int
		wantErr bool
	}{
		{"default", nil, 100, false},
		{"plain count", number(50), 50, false},
		{"always three", name("always_three"), -3, false},
		{"numeric string", name("16"), 16, false},
		{"zero", number(0), 0, true},
		{"beyond max", number(331), 0, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, err := (&Raw{ShopItemCount: tc.raw}).Resolve()
			if tc.wantErr {
				if err == nil {
					t.Fatal("want error")
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if s.ShopItemCount != tc.want {
				t.Errorf("ShopItemCount = %d, want %d", s.ShopItemCount, tc.want)
			}
		})
	}
}

func TestShopItemCountSuggestion(t *testing.T) {
	_, err := (&Raw{ShopItemCount: name("alway_three")}).Resolve()
	if err == nil || !strings.Contains(err.Error(), "always_three") {
		t.Errorf("want a suggestion for always_three, got %v", err)
	}
}

func TestBaseWeaponCost(t *testing.T) {
	s, err := (&Raw{BaseWeaponCost: name("balanced")}).Resolve()
	if err != nil {
		t.Fatal(err)
	}
	if s.BaseWeaponCost != WeaponCostBalanced {
		t.Errorf("got %d, want balanced", s.BaseWeaponCost)
	}

	s, err = (&Raw{BaseWeaponCost: name("800")}).Resolve()
	if err != nil {
		t.Fatal(err)
	}
	if s.BaseWeaponCost != 800 {
		t.Errorf("got %d, want 800", s.BaseWeaponCost)
	}

	_, err = (&Raw{BaseWeaponCost: name("randomised")}).Resolve()
	if err == nil || !strings.Contains(err.Error(), "randomized") {
		t.Errorf("want a suggestion for randomized, got %v", err)
	}
}

func TestItemCountMaps(t *testing.T) {
	_, err := (&Raw{RemoveFromItemPool: map[string]int{"Pulse-Canon": 1}}).Resolve()
	if err == nil || !strings.Contains(err.Error(), "Pulse-Cannon") {
		t.Errorf("want a suggestion for Pulse-Cannon, got %v", err)
	}

	_, err = (&Raw{StartInventory: map[string]int{"Laser": -1}}).Resolve()
	if err == nil || !strings.Contains(err.Error(), "negative") {
		t.Errorf("want a negative count error, got %v", err)
	}

	s, err := (&Raw{RemoveFromItemPool: map[string]int{"Laser": 0}}).Resolve()
	if err != nil {
		t.Fatal(err)
	}
	if s.RemoveFromItemPool != nil {
		t.Error("zero counts should vanish during resolution")
	}
}

func TestChoiceJSON(t *testing.T) {
	var r Raw
	blob := `{"episode_1": 2, "specials": true, "twiddles": "chaos", "shop_item_count": "always_two"}`
	if err := json.Unmarshal([]byte(blob), &r); err != nil {
		t.Fatal(err)
	}
	s, err := r.Resolve()
	if err != nil {
		t.Fatal(err)
	}
	if s.Episodes[0] != EpisodeGoal || s.Specials != SpecialsOn || s.Twiddles != TwiddlesChaos || s.ShopItemCount != -2 {
		t.Errorf("resolved = %+v", s)
	}

	out, err := json.Marshal(&r)
	if err != nil {
		t.Fatal(err)
	}
	var back Raw
	if err := json.Unmarshal(out, &back); err != nil {
		t.Fatal(err)
	}
	s2, err := back.Resolve()
	if err != nil {
		t.Fatal(err)
	}
	if s2.Episodes != s.Episodes || s2.Specials != s.Specials || s2.Twiddles != s.Twiddles || s2.ShopItemCount != s.ShopItemCount {
		t.Errorf("round-tripped settings differ: %+v vs %+v", s2, s)
	}
}
