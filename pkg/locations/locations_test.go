package locations

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/redshift-games/tyrian-world/pkg/items"
)

func TestCheckIDsAreUnique(t *testing.T) {
	seen := make(map[int]string)
	for name, id := range NameToID() {
		if other, dup := seen[id]; dup {
			t.Errorf("ID %d assigned to both %q and %q", id, name, other)
		}
		seen[id] = name
	}
}

func TestKnownCheckIDs(t *testing.T) {
	tests := []struct {
		name string
		id   int
	}{
		{"TYRIAN (Episode 1) - First U-Ship Secret", BaseID + 0},
		{"TYRIAN (Episode 1) - Boss", BaseID + 9},
		{"Shop - TYRIAN (Episode 1) - Item 1", BaseID + 1000},
		{"Shop - TYRIAN (Episode 1) - Item 5", BaseID + 1004},
		{"MINES (Episode 1) - Repulsor Spinning Orbs", BaseID + 122},
		{"GEM WAR (Episode 2) - Red Gem Leader 4", BaseID + 213},
		{"FLEET (Episode 3) - Boss", BaseID + 394},
		{"FRUIT (Episode 5) - Boss", BaseID + 651},
		{"Shop - FRUIT (Episode 5) - Item 5", BaseID + 1654},
	}
	for _, tc := range tests {
		got, ok := ID(tc.name)
		if !ok {
			t.Errorf("ID(%q) missing", tc.name)
			continue
		}
		if got != tc.id {
			t.Errorf("ID(%q) = %d, want %d", tc.name, got, tc.id)
		}
	}

	if _, ok := ID("Shop - CORAL (Episode 5) - Item 6"); ok {
		t.Error("shops should only expose five slots")
	}
}

func TestLevelNamesCarryEpisodeSuffix(t *testing.T) {
	for i := range Levels {
		l := &Levels[i]
		want := "(Episode " + string(rune('0'+int(l.Episode))) + ")"
		if !strings.HasSuffix(l.Name, want) {
			t.Errorf("%s: name does not end in %q", l.Name, want)
		}
		if _, ok := items.Get(l.Name); !ok {
			t.Errorf("%s: no unlock item of the same name", l.Name)
		}
	}
}

func TestEveryLevelHasAShop(t *testing.T) {
	for i := range Levels {
		l := &Levels[i]
		shops := 0
		l.Visit(func(_ string, e Entry) {
			if e.Shop {
				shops++
			}
		})
		if shops != 1 {
			t.Errorf("%s: %d shop stubs, want exactly 1", l.Name, shops)
		}
	}
}

func TestGateNamesExtendLevelName(t *testing.T) {
	for i := range Levels {
		l := &Levels[i]
		l.Visit(func(region string, e Entry) {
			if !e.Gate() {
				return
			}
			prefix := l.Name + " @ "
			if !strings.HasPrefix(e.Name, prefix) {
				t.Errorf("gate %q does not extend %q", e.Name, l.Name)
			}
			if region != l.Name && !strings.HasPrefix(region, prefix) {
				t.Errorf("gate %q hangs off foreign region %q", e.Name, region)
			}
		})
	}
}

func TestShopSetupsParse(t *testing.T) {
	l, ok := ByName("TYRIAN (Episode 1)")
	if !ok {
		t.Fatal("TYRIAN (Episode 1) missing")
	}
	setups := l.Setups()
	if len(setups) != 10 {
		t.Fatalf("len(setups) = %d, want 10", len(setups))
	}
	if !setups[0].Excluded || setups[0].Tier != "A" {
		t.Errorf("setup A# parsed as %+v", setups[0])
	}
	if !setups[9].Priority || setups[9].Tier != "I" {
		t.Errorf("setup I! parsed as %+v", setups[9])
	}
	if setups[1].Priority || setups[1].Excluded {
		t.Errorf("setup B parsed as %+v", setups[1])
	}
}

func TestDefaultSetupsWhenUnset(t *testing.T) {
	l, ok := ByName("GYGES (Episode 2)")
	if !ok {
		t.Fatal("GYGES (Episode 2) missing")
	}
	setups := l.Setups()
	if len(setups) != 4 {
		t.Fatalf("len(setups) = %d, want the 4 defaults", len(setups))
	}
	for i, tier := range []string{"F", "H", "K", "L"} {
		if setups[i].Tier != tier {
			t.Errorf("default setup %d = %q, want %q", i, setups[i].Tier, tier)
		}
	}
}

func TestRollPriceStaysInTier(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for name, r := range priceTiers {
		setup := ShopSetup{Tier: name}
		for i := 0; i < 50; i++ {
			price := setup.RollPrice(rng)
			if price < r.Min || price > MaxShopPrice {
				t.Fatalf("tier %s rolled %d outside [%d, %d]", name, price, r.Min, MaxShopPrice)
			}
			if price < MaxShopPrice && price >= r.Max {
				t.Fatalf("tier %s rolled %d, beyond cap %d", name, price, r.Max)
			}
			if (price-r.Min)%r.Step != 0 && price != MaxShopPrice {
				t.Fatalf("tier %s rolled %d off the %d step", name, price, r.Step)
			}
		}
	}

	if price := (ShopSetup{Tier: "Z"}).RollPrice(rng); price != MaxShopPrice {
		t.Errorf("tier Z rolled %d, want %d", price, MaxShopPrice)
	}
}

func TestCompletionEvents(t *testing.T) {
	for ep := items.EpisodeEscape; ep <= items.EpisodeHazudraFodder; ep++ {
		event, lvl := CompletionEvent(ep)
		if !strings.Contains(event, "Complete") {
			t.Errorf("episode %d event %q", ep, event)
		}
		if _, ok := ByName(lvl); !ok {
			t.Errorf("episode %d event level %q missing", ep, lvl)
		}
	}
}

func TestForEpisodeCounts(t *testing.T) {
	counts := map[items.Episode]int{
		items.EpisodeEscape:         16,
		items.EpisodeTreachery:      12,
		items.EpisodeMissionSuicide: 12,
		items.EpisodeAnEndToFate:    18,
		items.EpisodeHazudraFodder:  7,
	}
	for ep, want := range counts {
		if got := len(ForEpisode(ep)); got != want {
			t.Errorf("episode %d has %d levels, want %d", ep, got, want)
		}
	}
}

func TestSecretDescriptionsNameRealChecks(t *testing.T) {
	for name := range SecretDescriptions {
		if _, ok := ID(name); !ok {
			t.Errorf("secret description for unknown check %q", name)
		}
	}
}
