package world

import (
	"testing"

	"github.com/redshift-games/tyrian-world/pkg/logic"
	"github.com/redshift-games/tyrian-world/pkg/options"
)

func TestInventoryCounts(t *testing.T) {
	inv := NewInventory("Armor Up", "Armor Up", "Repulsor")

	if got := inv.Count("Armor Up"); got != 2 {
		t.Errorf("Count(Armor Up) = %d, want 2", got)
	}
	if !inv.Has("Repulsor") {
		t.Error("Has(Repulsor) = false after seeding")
	}

	inv.Remove("Repulsor")
	if inv.Has("Repulsor") {
		t.Error("Has(Repulsor) = true after removal")
	}
	inv.Remove("Repulsor")
	if got := inv.Count("Repulsor"); got != 0 {
		t.Errorf("Count(Repulsor) = %d after double removal, want 0", got)
	}

	inv.Add("Data Cube")
	if got := inv.Count("Data Cube"); got != 1 {
		t.Errorf("Count(Data Cube) = %d, want 1", got)
	}
}

// TestReachableNeverShrinks feeds the pool to a ship one item at a
// time and checks that nothing in logical reach ever drops back out.
// Rules are built from inventory thresholds only, so reach and
// beatability must both grow monotonically with the collection.
func TestReachableNeverShrinks(t *testing.T) {
	w := generate(t, resolve(t, &options.Raw{}), "MONOCLE")

	inv := NewInventory(w.Precollected...)
	prev := w.Reachable(inv)
	wasBeatable := w.Beatable(inv)

	for i, item := range w.Pool {
		inv.Add(item)
		cur := w.Reachable(inv)

		for name := range prev {
			if !cur[name] {
				t.Fatalf("after pool[%d] (%s): %q fell out of reach", i, item, name)
			}
		}
		nowBeatable := w.Beatable(inv)
		if wasBeatable && !nowBeatable {
			t.Fatalf("after pool[%d] (%s): world stopped being beatable", i, item)
		}
		prev, wasBeatable = cur, nowBeatable
	}

	if !wasBeatable {
		t.Error("full pool does not beat the world")
	}
	for _, l := range w.Locations {
		if !prev[l.Name] {
			t.Errorf("full pool cannot reach %s", l.Name)
		}
	}
}

// TestRuleEvaluationIsStable re-runs every attached rule against fixed
// snapshots and expects identical answers each time.
func TestRuleEvaluationIsStable(t *testing.T) {
	w := generate(t, resolve(t, &options.Raw{}), "STEADFAST")

	snapshots := []*Inventory{
		NewInventory(w.Precollected...),
		w.FullInventory(),
	}
	for _, inv := range snapshots {
		ctx := logic.Context{Inv: inv, Damage: w.Tables}

		for _, r := range w.Regions {
			for _, e := range r.Exits {
				first := e.Rule.Eval(ctx)
				for range 3 {
					if e.Rule.Eval(ctx) != first {
						t.Fatalf("entrance %s flapped between evaluations", e.Name)
					}
				}
			}
		}
		for _, l := range w.Locations {
			first := l.Rule.Eval(ctx)
			for range 3 {
				if l.Rule.Eval(ctx) != first {
					t.Fatalf("location %s flapped between evaluations", l.Name)
				}
			}
		}
	}
}
