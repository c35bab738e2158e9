package world

import (
	"encoding/json"
	"strconv"
	"testing"

	"github.com/redshift-games/tyrian-world/pkg/items"
)

func TestObfuscateKnownPairs(t *testing.T) {
	tests := []struct{ in, want string }{
		{"{}", ")t"},
		{"A", "f"},
		{"  ", "[f"}, // repeated input must not repeat in ciphertext
	}
	for _, tt := range tests {
		if got := obfuscate(tt.in); got != tt.want {
			t.Errorf("obfuscate(%q) = %q, want %q", tt.in, got, tt.want)
		}
		if got := Deobfuscate(tt.want); got != tt.in {
			t.Errorf("Deobfuscate(%q) = %q, want %q", tt.want, got, tt.in)
		}
	}

	// Characters the small font cannot show cipher like "?".
	if obfuscate("~") != obfuscate("?") {
		t.Error("unknown characters should cipher like a question mark")
	}

	const msg = `{"Credits":10000,"Items":[0,500]}`
	if got := Deobfuscate(obfuscate(msg)); got != msg {
		t.Errorf("round trip = %q, want %q", got, msg)
	}
}

// decodeSection deciphers one obfuscated slot data entry into out.
func decodeSection(t *testing.T, data map[string]any, key string, out any) {
	t.Helper()
	raw, ok := data[key].(string)
	if !ok {
		t.Fatalf("section %s missing or not a string", key)
	}
	if err := json.Unmarshal([]byte(Deobfuscate(raw)), out); err != nil {
		t.Fatalf("section %s does not decode: %v", key, err)
	}
}

func TestSlotDataRemoteSections(t *testing.T) {
	raw := allEpisodesGoal()
	raw.BossWeaknesses = boolPtr(true)
	w := generate(t, resolve(t, raw), "BROADCAST")

	data, err := w.SlotData(nil, false)
	if err != nil {
		t.Fatalf("slot data: %v", err)
	}

	if data["Seed"] != "BROADCAST" {
		t.Errorf("Seed = %v", data["Seed"])
	}
	if data["NetVersion"] != netVersion {
		t.Errorf("NetVersion = %v", data["NetVersion"])
	}
	if data["LocationMax"] != len(w.Locations) {
		t.Errorf("LocationMax = %v, want %d", data["LocationMax"], len(w.Locations))
	}
	for _, key := range []string{"LocationData", "ProgressionData"} {
		if _, ok := data[key]; ok {
			t.Errorf("%s present without placements", key)
		}
	}

	settings, ok := data["Settings"].(slotSettings)
	if !ok {
		t.Fatalf("Settings has type %T", data["Settings"])
	}
	if settings.Episodes != 0b11111 || settings.Goal != 0b11111 {
		t.Errorf("episode masks = %b/%b, want 11111/11111", settings.Episodes, settings.Goal)
	}
	if !settings.RequireT2K {
		t.Error("RequireT2K unset for a Tyrian 2000 world")
	}
	if !settings.SpecialMenu {
		t.Error("SpecialMenu unset with specials as items")
	}
	if settings.GameSpeed != -1 {
		t.Errorf("GameSpeed = %d, want -1 when not forced", settings.GameSpeed)
	}

	var state startingState
	decodeSection(t, data, "StartState", &state)
	if state.Credits != w.Options.StartingMoney {
		t.Errorf("start credits = %d, want %d", state.Credits, w.Options.StartingMoney)
	}
	if len(state.Items) != len(w.Precollected) {
		t.Errorf("start items = %v for precollected %v", state.Items, w.Precollected)
	}

	costs := map[string]int{}
	decodeSection(t, data, "WeaponCost", &costs)
	if len(costs) != len(w.WeaponCosts) {
		t.Errorf("%d weapon costs, want %d", len(costs), len(w.WeaponCosts))
	}
	for name, cost := range w.WeaponCosts {
		d, _ := items.Get(name)
		if got := costs[strconv.Itoa(d.LocalID)]; got != cost {
			t.Errorf("cost of %s = %d, want %d", name, got, cost)
		}
	}

	weaknesses := map[string]int{}
	decodeSection(t, data, "BossWeaknesses", &weaknesses)
	if len(weaknesses) != len(w.BossWeaknesses) {
		t.Errorf("%d weaknesses, want %d", len(weaknesses), len(w.BossWeaknesses))
	}
	for ep, weapon := range w.BossWeaknesses {
		d, _ := items.Get(weapon)
		if got := weaknesses[strconv.Itoa(int(ep))]; got != d.LocalID {
			t.Errorf("episode %d weakness id = %d, want %d", ep, got, d.LocalID)
		}
	}

	prices := map[string]int{}
	decodeSection(t, data, "ShopData", &prices)
	for _, l := range w.Locations {
		if !l.IsShop() {
			continue
		}
		if got := prices[strconv.Itoa(l.ID-items.BaseID)]; got != l.ShopPrice {
			t.Errorf("price of %s = %d, want %d", l.Name, got, l.ShopPrice)
		}
	}

	var loadout []map[string]any
	decodeSection(t, data, "TwiddleData", &loadout)
	if len(loadout) != len(w.Twiddles) {
		t.Errorf("%d twiddles in slot data, want %d", len(loadout), len(w.Twiddles))
	}
}

// fillOwnWorld places the world's own pool onto its own locations in
// order, the placement shape a solo fill produces.
func fillOwnWorld(t *testing.T, w *World) Placements {
	t.Helper()
	if len(w.Pool) != len(w.Locations) {
		t.Fatalf("pool size %d does not match %d locations", len(w.Pool), len(w.Locations))
	}
	placements := make(Placements, len(w.Locations))
	for i, l := range w.Locations {
		d, ok := items.Get(w.Pool[i])
		if !ok {
			t.Fatalf("pool item %q not in catalog", w.Pool[i])
		}
		placements[l.Name] = Placement{
			ItemID:      d.ID(),
			ThisWorld:   true,
			Progression: !d.Tossable(),
		}
	}
	return placements
}

func TestSlotDataLocalMode(t *testing.T) {
	w := generate(t, resolve(t, allEpisodesGoal()), "OFFLINE")
	placements := fillOwnWorld(t, w)

	data, err := w.SlotData(placements, true)
	if err != nil {
		t.Fatalf("slot data: %v", err)
	}
	if _, ok := data["LocationMax"]; ok {
		t.Error("LocationMax present in local mode")
	}

	contents := map[string]string{}
	decodeSection(t, data, "LocationData", &contents)
	if len(contents) != len(w.Locations) {
		t.Fatalf("%d locations encoded, want %d", len(contents), len(w.Locations))
	}
	for _, l := range w.Locations {
		enc, ok := contents[strconv.Itoa(l.ID-items.BaseID)]
		if !ok {
			t.Fatalf("no contents for %s", l.Name)
		}
		p := placements[l.Name]
		want := strconv.Itoa(p.ItemID - items.BaseID)
		if p.Progression {
			want = "!" + want
		}
		if enc != want {
			t.Errorf("contents of %s = %q, want %q", l.Name, enc, want)
		}
	}
}

func TestSlotDataLocalModeNeedsEveryPlacement(t *testing.T) {
	w := generate(t, resolve(t, allEpisodesGoal()), "OFFLINE")

	if _, err := w.SlotData(nil, true); err == nil {
		t.Error("want error for local mode without placements")
	}

	placements := fillOwnWorld(t, w)
	name := w.Locations[0].Name
	placements[name] = Placement{ItemID: placements[name].ItemID, ThisWorld: false}
	if _, err := w.SlotData(placements, true); err == nil {
		t.Error("want error for local mode with another world's item placed")
	}
}

func TestSlotDataProgressionList(t *testing.T) {
	w := generate(t, resolve(t, allEpisodesGoal()), "SCOUTED")
	placements := fillOwnWorld(t, w)

	data, err := w.SlotData(placements, false)
	if err != nil {
		t.Fatalf("slot data: %v", err)
	}

	var progression []int
	decodeSection(t, data, "ProgressionData", &progression)

	want := 0
	for _, l := range w.Locations {
		if !l.IsShop() && placements[l.Name].Progression {
			want++
		}
	}
	if len(progression) != want {
		t.Errorf("%d progression locations, want %d", len(progression), want)
	}
	for _, id := range progression {
		found := false
		for _, l := range w.Locations {
			if l.ID-items.BaseID == id {
				if l.IsShop() {
					t.Errorf("shop slot %s leaked into progression data", l.Name)
				}
				found = true
			}
		}
		if !found {
			t.Errorf("progression id %d matches no location", id)
		}
	}
}

func TestShopPriceDiscountForOwnCredits(t *testing.T) {
	raw := allEpisodesGoal()
	w := generate(t, resolve(t, raw), "REBATE")

	var slot *Location
	for _, l := range w.Locations {
		if l.IsShop() {
			slot = l
			break
		}
	}
	if slot == nil {
		t.Fatal("no shop slots")
	}
	cache, _ := items.Get("1000 Credits")
	placements := Placements{slot.Name: {ItemID: cache.ID(), ThisWorld: true}}

	prices := w.shopPrices(placements)
	got := prices[slot.ID-items.BaseID]
	want := slot.ShopPrice % 1000
	if want == 0 {
		want = 1000
	}
	if got != want {
		t.Errorf("discounted price = %d, want %d (full price %d)", got, want, slot.ShopPrice)
	}

	other := Placements{slot.Name: {ItemID: cache.ID(), ThisWorld: false}}
	if p := w.shopPrices(other); p[slot.ID-items.BaseID] != slot.ShopPrice {
		t.Error("another world's credits should not discount")
	}
}

func TestHiddenShopsNeverDiscount(t *testing.T) {
	raw := allEpisodesGoal()
	raw.ShopMode = name("hidden")
	w := generate(t, resolve(t, raw), "REBATE")

	var slot *Location
	for _, l := range w.Locations {
		if l.IsShop() {
			slot = l
			break
		}
	}
	cache, _ := items.Get("1000 Credits")
	placements := Placements{slot.Name: {ItemID: cache.ID(), ThisWorld: true}}
	if p := w.shopPrices(placements); p[slot.ID-items.BaseID] != slot.ShopPrice {
		t.Error("hidden shop discounted its price")
	}
}
