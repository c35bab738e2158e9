package twiddles

import (
	"encoding/json"
	"math/rand/v2"
	"strings"
	"testing"
)

func TestGeneratePlainKeepsOriginalCodes(t *testing.T) {
	byName := map[string]Twiddle{}
	for _, tw := range Catalog() {
		byName[tw.Name] = tw
	}

	rng := rand.New(rand.NewPCG(1, 2))
	loadout := Generate(rng, false)

	if len(loadout) != LoadoutSize {
		t.Fatalf("loadout size = %d, want %d", len(loadout), LoadoutSize)
	}
	seen := map[string]bool{}
	for _, tw := range loadout {
		if seen[tw.Name] {
			t.Errorf("twiddle %q rolled twice", tw.Name)
		}
		seen[tw.Name] = true

		orig, ok := byName[tw.Name]
		if !ok {
			t.Fatalf("twiddle %q not in catalog", tw.Name)
		}
		if tw.Cost != orig.Cost {
			t.Errorf("%s: cost = %d, want original %d", tw.Name, tw.Cost, orig.Cost)
		}
		if len(tw.Command) != len(orig.Command) {
			t.Errorf("%s: command length %d, want original %d", tw.Name, len(tw.Command), len(orig.Command))
		}
	}
}

func TestGenerateChaosRollsFreshCommands(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 7))
	for range 50 {
		for _, tw := range Generate(rng, true) {
			if len(tw.Command) < 2 || len(tw.Command) > 7 {
				t.Fatalf("%s: command length %d out of range", tw.Name, len(tw.Command))
			}
			for i, in := range tw.Command {
				if in < Up || in > Neutral {
					t.Fatalf("%s: input %d invalid", tw.Name, in)
				}
				if i > 0 && in == tw.Command[i-1] {
					t.Fatalf("%s: consecutive repeat at step %d", tw.Name, i)
				}
			}
			if CostString(tw.Cost) == "" {
				t.Fatalf("%s: unrenderable cost %d", tw.Name, tw.Cost)
			}
		}
	}
}

func TestGrants(t *testing.T) {
	loadout := []Twiddle{
		{Name: "Repulsor", Action: ActionRepulsor},
		{Name: "Hot Dog", Action: ActionHotDog},
	}
	if !Grants(loadout, ActionRepulsor) {
		t.Error("loadout should grant the repulsor")
	}
	if Grants(loadout, ActionInvulnerability) {
		t.Error("loadout should not grant invulnerability")
	}
	if Grants(nil, ActionRepulsor) {
		t.Error("empty loadout grants nothing")
	}
}

func TestCostString(t *testing.T) {
	tests := []struct {
		cost int
		want string
	}{
		{0, "free"},
		{1, "1 shield"},
		{30, "30 shield"},
		{CostHalfShield, "half shield"},
		{CostAllShield, "all shield"},
		{102, "2 armor"},
	}
	for _, tt := range tests {
		if got := CostString(tt.cost); got != tt.want {
			t.Errorf("CostString(%d) = %q, want %q", tt.cost, got, tt.want)
		}
	}
}

func TestTwiddleJSONShape(t *testing.T) {
	tw := Twiddle{
		Name:    "Repulsor",
		Command: []Input{LeftFire, RightFire},
		Cost:    1,
		Action:  ActionRepulsor,
	}
	raw, err := json.Marshal(tw)
	if err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{`"Name"`, `"Command"`, `"Cost"`, `"Item"`} {
		if !strings.Contains(string(raw), key) {
			t.Errorf("marshaled twiddle missing %s: %s", key, raw)
		}
	}
	if !strings.Contains(string(raw), `"Command":[7,8]`) {
		t.Errorf("command should marshal as game input numbers: %s", raw)
	}
}

func TestSpoilerString(t *testing.T) {
	tw := Twiddle{
		Name:    "Invulnerability",
		Command: []Input{Down, Up, Down, UpFire},
		Cost:    CostAllShield,
		Action:  ActionInvulnerability,
	}
	got := tw.SpoilerString()
	want := "Invulnerability: Down, Up, Down, Up+Fire (cost: all shield)"
	if got != want {
		t.Errorf("SpoilerString = %q, want %q", got, want)
	}
}
