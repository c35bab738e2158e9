package world

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/redshift-games/tyrian-world/pkg/items"
	"github.com/redshift-games/tyrian-world/pkg/logic"
)

// Inventory is a mutable item multiset satisfying the rule evaluation
// view. The reference reachability checker drives it; hosts maintain
// their own solver state.
type Inventory struct {
	counts map[string]int
}

var _ logic.InventoryView = (*Inventory)(nil)

// NewInventory builds an inventory holding one copy of each name,
// counting duplicates.
func NewInventory(names ...string) *Inventory {
	inv := &Inventory{counts: make(map[string]int, len(names))}
	for _, n := range names {
		inv.counts[n]++
	}
	return inv
}

// Add puts one copy of name into the inventory.
func (v *Inventory) Add(name string) { v.counts[name]++ }

// Remove takes one copy of name out, if any is held.
func (v *Inventory) Remove(name string) {
	if v.counts[name] > 0 {
		v.counts[name]--
	}
}

func (v *Inventory) Has(name string) bool { return v.counts[name] > 0 }
func (v *Inventory) Count(name string) int { return v.counts[name] }

// FullInventory returns everything this world's player could ever
// hold: the start state plus the entire pool.
func (w *World) FullInventory() *Inventory {
	inv := NewInventory(w.Precollected...)
	for _, name := range w.Pool {
		inv.Add(name)
	}
	return inv
}

// Reachable returns the set of location names in logical reach for
// inv, events included. Entrance rules read only the inventory, so a
// single breadth-first pass over the region graph is complete.
func (w *World) Reachable(inv logic.InventoryView) map[string]bool {
	ctx := logic.Context{Inv: inv, Damage: w.Tables}

	reached := mapset.New[*Region]()
	reached.Put(w.Menu)
	queue := []*Region{w.Menu}
	for len(queue) > 0 {
		r := queue[0]
		queue = queue[1:]
		for _, e := range r.Exits {
			if !reached.Has(e.Target) && e.Rule.Eval(ctx) {
				reached.Put(e.Target)
				queue = append(queue, e.Target)
			}
		}
	}

	out := make(map[string]bool)
	for _, l := range w.Locations {
		if reached.Has(l.Region) && l.Rule.Eval(ctx) {
			out[l.Name] = true
		}
	}
	for _, ev := range w.Events {
		if out[ev.Event] {
			out[ev.Name] = true
		}
	}
	return out
}

// Beatable reports whether every goal episode's completion event is in
// reach for inv.
func (w *World) Beatable(inv logic.InventoryView) bool {
	reach := w.Reachable(inv)
	for _, ev := range w.Events {
		if !reach[ev.Name] {
			return false
		}
	}
	return true
}

// CompletabilityReport is the verdict of checking a world against its
// own full item pool.
type CompletabilityReport struct {
	Beatable    bool
	Unreachable []string // locations out of reach even with everything
}

// CheckCompletable verifies that a player holding the start state and
// the entire pool can reach every location and finish every goal. Any
// location it reports was orphaned by rule construction.
func (w *World) CheckCompletable() CompletabilityReport {
	reach := w.Reachable(w.FullInventory())
	rep := CompletabilityReport{Beatable: true}
	for _, l := range w.Locations {
		if !reach[l.Name] {
			rep.Unreachable = append(rep.Unreachable, l.Name)
		}
	}
	for _, ev := range w.Events {
		if !reach[ev.Name] {
			rep.Beatable = false
		}
	}
	return rep
}

// Spheres sweeps collection order against filled placements: sphere N
// holds the locations first reachable with everything collected from
// earlier spheres. Only this world's own items grant progress here;
// other worlds' contents are opaque. Returns the spheres and whether
// the sweep finished every goal event.
func (w *World) Spheres(placements Placements) ([][]string, bool) {
	byID := make(map[int]string)
	for name, id := range items.Names() {
		byID[id] = name
	}

	inv := NewInventory(w.Precollected...)
	collected := mapset.New[string]()
	var spheres [][]string

	for {
		reach := w.Reachable(inv)
		var sphere []string
		for _, l := range w.Locations {
			if !reach[l.Name] || collected.Has(l.Name) {
				continue
			}
			collected.Put(l.Name)
			sphere = append(sphere, l.Name)
			if p, ok := placements[l.Name]; ok && p.ThisWorld {
				if name, ok := byID[p.ItemID]; ok {
					inv.Add(name)
				}
			}
		}
		for _, ev := range w.Events {
			if reach[ev.Name] && !collected.Has(ev.Name) {
				collected.Put(ev.Name)
				sphere = append(sphere, ev.Name)
			}
		}
		if len(sphere) == 0 {
			break
		}
		spheres = append(spheres, sphere)
	}

	for _, ev := range w.Events {
		if !collected.Has(ev.Name) {
			return spheres, false
		}
	}
	return spheres, true
}
