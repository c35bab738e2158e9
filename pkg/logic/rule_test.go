package logic

import (
	"testing"

	"github.com/redshift-games/tyrian-world/pkg/options"
)

// inv is a bag of item counts standing in for solver state.
type inv map[string]int

func (m inv) Has(name string) bool  { return m[name] > 0 }
func (m inv) Count(name string) int { return m[name] }

func TestRuleConstructorsFold(t *testing.T) {
	if Armor(5).Op != OpTrue || Armor(4).Op != OpTrue {
		t.Error("armor demands at or below the starting 5 should fold to true")
	}
	if Armor(6).Op != OpArmor {
		t.Error("armor 6 should stay a real requirement")
	}
	if Power(1).Op != OpTrue || Power(0).Op != OpTrue {
		t.Error("power demands at or below the starting 1 should fold to true")
	}
	if Power(2).Op != OpPower {
		t.Error("power 2 should stay a real requirement")
	}
	if Generator(1).Op != OpGenerator {
		t.Error("generator demands never fold; every loadout is checked")
	}
	if When(true).Op != OpTrue || When(false).Op != OpNever {
		t.Error("when should fold straight to a constant node")
	}
	if AtLeast(0, Has("A")).Op != OpTrue {
		t.Error("a zero threshold should fold to true")
	}
	if AtLeast(2, Has("A")).Op != OpNever {
		t.Error("a threshold above the arm count should fold to never")
	}
}

func TestRuleEval(t *testing.T) {
	tests := []struct {
		name string
		rule Rule
		inv  inv
		want bool
	}{
		{"true always holds", True(), inv{}, true},
		{"never always fails", Never(), inv{"Repulsor": 1}, false},
		{"has hit", Has("Repulsor"), inv{"Repulsor": 1}, true},
		{"has miss", Has("Repulsor"), inv{}, false},
		{"not inverts a constant", Not(Never()), inv{}, true},
		{"not inverts a hit", Not(Has("A")), inv{"A": 1}, false},
		{"at least threshold met", AtLeast(2, Has("A"), Has("B"), Has("C")), inv{"A": 1, "C": 1}, true},
		{"at least threshold short", AtLeast(2, Has("A"), Has("B"), Has("C")), inv{"C": 1}, false},
		{"hasN counts copies", HasN("Data Cube", 3), inv{"Data Cube": 3}, true},
		{"hasN short", HasN("Data Cube", 3), inv{"Data Cube": 2}, false},
		{"any passes on one arm", Any(Has("A"), Has("B")), inv{"B": 1}, true},
		{"any fails on none", Any(Has("A"), Has("B")), inv{"C": 1}, false},
		{"weapon-or-cash gate, weapon arm", Any(Has("Mega Cannon"), HasN("Credits", 500)), inv{"Mega Cannon": 1}, true},
		{"weapon-or-cash gate, cash arm", Any(Has("Mega Cannon"), HasN("Credits", 500)), inv{"Credits": 500}, true},
		{"weapon-or-cash gate, neither arm", Any(Has("Mega Cannon"), HasN("Credits", 500)), inv{"Credits": 499}, false},
		{"all needs every arm", All(Has("A"), Has("B")), inv{"A": 1}, false},
		{"all passes complete", All(Has("A"), Has("B")), inv{"A": 1, "B": 1}, true},
		{"armor counts upgrades", Armor(8), inv{"Armor Up": 3}, true},
		{"armor short", Armor(8), inv{"Armor Up": 2}, false},
		{"power counts upgrades", Power(11), inv{"Maximum Power Up": 10}, true},
		{"power short", Power(11), inv{"Maximum Power Up": 9}, false},
		{"generator by named tier", Generator(3), inv{"Gencore Custom MR-12": 1}, true},
		{"generator by progressive", Generator(3), inv{"Progressive Generator": 2}, true},
		{"generator short", Generator(3), inv{"Progressive Generator": 1}, false},
		{"named generator trumps progressives", Generator(6), inv{"Gravitron Pulse-Wave": 1, "Progressive Generator": 1}, true},
	}

	tables := NewDamageTables(options.LogicMaster)
	for _, tt := range tests {
		ctx := Context{Inv: tt.inv, Damage: tables}
		if got := tt.rule.Eval(ctx); got != tt.want {
			t.Errorf("%s: Eval = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestDamageRuleEval(t *testing.T) {
	tables := NewDamageTables(options.LogicMaster)
	ctx := Context{Inv: inv{"Pulse-Cannon": 1}, Damage: tables}

	if !Damage(DPS{Active: 11800}).Eval(ctx) {
		t.Error("pulse-cannon at power 1 should meet 11.8 active")
	}
	if Damage(DPS{Active: 11900}).Eval(ctx) {
		t.Error("nothing in the loadout covers 11.9 active")
	}
}

func TestWeaponDamageRuleEval(t *testing.T) {
	tables := NewDamageTables(options.LogicMaster)

	ctx := Context{Inv: inv{"Pulse-Cannon": 1}, Damage: tables}
	if !WeaponDamage("Pulse-Cannon", DPS{Active: 11800}).Eval(ctx) {
		t.Error("pulse-cannon alone should meet 11.8 active at power 1")
	}
	if WeaponDamage("Pulse-Cannon", DPS{Active: 18700}).Eval(ctx) {
		t.Error("18.7 active needs power 3, which is not owned yet")
	}
	if WeaponDamage("Laser", DPS{}).Eval(ctx) {
		t.Error("an unowned weapon never satisfies its weakness check")
	}

	ctx = Context{Inv: inv{"Pulse-Cannon": 1, "Maximum Power Up": 2}, Damage: tables}
	if !WeaponDamage("Pulse-Cannon", DPS{Active: 18700}).Eval(ctx) {
		t.Error("two power ups unlock power 3 and 18.7 active")
	}
}

func TestGeneratorLevel(t *testing.T) {
	tests := []struct {
		name string
		inv  inv
		want int
	}{
		{"bare ship", inv{}, 1},
		{"one progressive", inv{"Progressive Generator": 1}, 2},
		{"progressives cap at the best tier", inv{"Progressive Generator": 9}, 6},
		{"named tier", inv{"Standard MicroFusion": 1}, 4},
		{"best named tier wins", inv{"Advanced MR-12": 1, "Gravitron Pulse-Wave": 1}, 6},
		{"named tier blocks the progressive fallback", inv{"Advanced MR-12": 1, "Progressive Generator": 3}, 2},
	}
	for _, tt := range tests {
		if got := GeneratorLevel(tt.inv); got != tt.want {
			t.Errorf("%s: GeneratorLevel = %d, want %d", tt.name, got, tt.want)
		}
	}
}
