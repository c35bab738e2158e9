package world

import (
	"fmt"
	"strings"

	"github.com/redshift-games/tyrian-world/pkg/items"
	"github.com/redshift-games/tyrian-world/pkg/options"
	"github.com/redshift-games/tyrian-world/pkg/twiddles"
)

// netVersion is the protocol revision the game client checks before
// accepting slot data.
const netVersion = 3

// Placement records what the host's fill put at one location. The
// world itself never places items; hosts hand the outcome back when
// they want placement-aware output.
type Placement struct {
	ItemID      int  // full network ID of the placed item
	ThisWorld   bool // item belongs to this world's player
	Progression bool
}

// Placements maps location names to their filled contents.
type Placements map[string]Placement

// SlotData builds the payload the game client receives on connect.
// With localMode set, every location's contents embed directly for
// offline play, which requires complete placements; otherwise only
// progression location IDs and the location count go out, and nil
// placements simply omit them. Obfuscated sections cipher compact
// JSON via the small-font substitution tables.
func (w *World) SlotData(placements Placements, localMode bool) (map[string]any, error) {
	data := map[string]any{
		"Seed":       w.Seed,
		"NetVersion": netVersion,
		"Settings":   w.slotSettings(),
	}

	state, err := w.startState()
	if err != nil {
		return nil, err
	}
	if data["StartState"], err = obfuscateObject(state); err != nil {
		return nil, err
	}
	if data["WeaponCost"], err = obfuscateObject(w.weaponCostByID()); err != nil {
		return nil, err
	}

	if localMode {
		all, err := w.locationContents(placements)
		if err != nil {
			return nil, err
		}
		if data["LocationData"], err = obfuscateObject(all); err != nil {
			return nil, err
		}
	} else {
		data["LocationMax"] = len(w.Locations)
		if placements != nil {
			if data["ProgressionData"], err = obfuscateObject(w.progressionIDs(placements)); err != nil {
				return nil, err
			}
		}
	}

	if w.Options.Twiddles != options.TwiddlesOff {
		loadout := w.Twiddles
		if loadout == nil {
			loadout = []twiddles.Twiddle{}
		}
		if data["TwiddleData"], err = obfuscateObject(loadout); err != nil {
			return nil, err
		}
	}
	if w.Options.BossWeaknesses {
		if data["BossWeaknesses"], err = obfuscateObject(w.weaknessByEpisode()); err != nil {
			return nil, err
		}
	}
	if w.Options.ShopMode != options.ShopsNone {
		if data["ShopData"], err = obfuscateObject(w.shopPrices(placements)); err != nil {
			return nil, err
		}
	}

	return data, nil
}

// slotSettings are the plain, unciphered game settings.
type slotSettings struct {
	RequireT2K   bool `json:"RequireT2K"`
	Episodes     int  `json:"Episodes"`
	Goal         int  `json:"Goal"`
	Difficulty   int  `json:"Difficulty"`
	ShopMenu     int  `json:"ShopMenu"`
	SpecialMenu  bool `json:"SpecialMenu"`
	HardContact  bool `json:"HardContact"`
	ExcessArmor  bool `json:"ExcessArmor"`
	GameSpeed    int  `json:"GameSpeed"`
	ShowTwiddles bool `json:"ShowTwiddles"`
	APRadar      bool `json:"APRadar"`
	Christmas    bool `json:"Christmas"`
	DeathLink    bool `json:"DeathLink"`
}

func (w *World) slotSettings() slotSettings {
	episodes, goal := 0, 0
	for _, ep := range w.Options.PlayEpisodes() {
		episodes |= 1 << (int(ep) - 1)
	}
	for _, ep := range w.Options.GoalEpisodes() {
		goal |= 1 << (int(ep) - 1)
	}
	return slotSettings{
		RequireT2K:   w.Options.Tyrian2000Support,
		Episodes:     episodes,
		Goal:         goal,
		Difficulty:   int(w.Options.Difficulty),
		ShopMenu:     int(w.Options.ShopMode),
		SpecialMenu:  w.Options.Specials == options.SpecialsAsItems,
		HardContact:  w.Options.HardContact,
		ExcessArmor:  w.Options.ExcessArmor,
		GameSpeed:    int(w.Options.GameSpeed),
		ShowTwiddles: w.Options.ShowTwiddleInputs,
		APRadar:      w.Options.ArchipelagoRadar,
		Christmas:    w.Options.Christmas,
		DeathLink:    w.Options.DeathLink,
	}
}

// startingState tells the game everything the player begins with.
// Weapons, levels, and data cubes travel as local item IDs; upgrades
// collapse into counts.
type startingState struct {
	Credits     int   `json:"Credits,omitempty"`
	Items       []int `json:"Items,omitempty"`
	Armor       int   `json:"Armor,omitempty"`
	Power       int   `json:"Power,omitempty"`
	Shield      int   `json:"Shield,omitempty"`
	Generator   int   `json:"Generator,omitempty"`
	SolarShield bool  `json:"SolarShield,omitempty"`
}

func (w *World) startState() (startingState, error) {
	var state startingState
	if w.Options.StartingMoney > 0 {
		state.Credits = w.Options.StartingMoney
	}

	for _, name := range w.Precollected {
		d, ok := items.Get(name)
		if !ok {
			return state, fmt.Errorf("unknown precollected item %q", name)
		}
		switch {
		case d.Episode != 0,
			d.LocalID >= 500 && d.LocalID < 900, // weapons and sidekicks
			strings.HasPrefix(name, "Data Cube "):
			state.Items = append(state.Items, d.LocalID)
		case name == "Armor Up":
			state.Armor++
		case name == "Maximum Power Up":
			state.Power++
		case name == "Shield Up":
			state.Shield++
		case name == "Progressive Generator":
			state.Generator++
		case name == "Advanced MR-12":
			state.Generator = 1
		case name == "Gencore Custom MR-12":
			state.Generator = 2
		case name == "Standard MicroFusion":
			state.Generator = 3
		case name == "Advanced MicroFusion":
			state.Generator = 4
		case name == "Gravitron Pulse-Wave":
			state.Generator = 5
		case name == "Solar Shields":
			state.SolarShield = true
		case name == "SuperBomb":
			// Only useful if obtained in a level.
		case d.Value > 0:
			state.Credits += d.Value
		default:
			return state, fmt.Errorf("precollected item %q has no start state encoding", name)
		}
	}
	return state, nil
}

func (w *World) weaponCostByID() map[int]int {
	out := make(map[int]int, len(w.WeaponCosts))
	for name, cost := range w.WeaponCosts {
		if d, ok := items.Get(name); ok {
			out[d.LocalID] = cost
		}
	}
	return out
}

func (w *World) weaknessByEpisode() map[int]int {
	out := make(map[int]int, len(w.BossWeaknesses))
	for ep, weapon := range w.BossWeaknesses {
		if d, ok := items.Get(weapon); ok {
			out[int(ep)] = d.LocalID
		}
	}
	return out
}

// locationContents is the offline payload: every location's item as a
// local ID string, "!"-prefixed when it is a progression item.
func (w *World) locationContents(placements Placements) (map[int]string, error) {
	out := make(map[int]string, len(w.Locations))
	for _, l := range w.Locations {
		p, ok := placements[l.Name]
		if !ok {
			return nil, fmt.Errorf("offline output: location %q has no placement", l.Name)
		}
		if !p.ThisWorld {
			return nil, fmt.Errorf("offline output: location %q holds another world's item", l.Name)
		}
		mark := ""
		if p.Progression {
			mark = "!"
		}
		out[l.ID-items.BaseID] = fmt.Sprintf("%s%d", mark, p.ItemID-items.BaseID)
	}
	return out, nil
}

// progressionIDs lists the non-shop locations that hold progression
// for anyone. Shop contents are deliberately left out; the game scouts
// those itself so prices stay meaningful.
func (w *World) progressionIDs(placements Placements) []int {
	out := []int{}
	for _, l := range w.Locations {
		if l.IsShop() {
			continue
		}
		if p, ok := placements[l.Name]; ok && p.Progression {
			out = append(out, l.ID-items.BaseID)
		}
	}
	return out
}

// shopPrices maps each shop slot to its price. A slot holding this
// world's own credit cache discounts to less than the cache pays out,
// except in hidden mode where the player cannot know what they buy.
func (w *World) shopPrices(placements Placements) map[int]int {
	out := make(map[int]int)
	for _, l := range w.Locations {
		if !l.IsShop() {
			continue
		}
		price := l.ShopPrice
		if w.Options.ShopMode != options.ShopsHidden {
			if p, ok := placements[l.Name]; ok && p.ThisWorld {
				if value := creditValueByID(p.ItemID); value > 0 {
					price %= value
					if price == 0 {
						price = value
					}
				}
			}
		}
		out[l.ID-items.BaseID] = price
	}
	return out
}

// creditValueByID returns the payout of a credit cache item, or zero
// for anything else.
func creditValueByID(itemID int) int {
	local := itemID - items.BaseID
	if local < 980 || local > 999 {
		return 0
	}
	for _, v := range items.CreditValues {
		if d, ok := items.Get(items.CreditName(v)); ok && d.LocalID == local {
			return v
		}
	}
	return 0
}
