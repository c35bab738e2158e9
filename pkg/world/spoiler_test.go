package world

import (
	"strings"
	"testing"
)

func TestSpheresCollectEverythingUnderNoLogic(t *testing.T) {
	raw := allEpisodesGoal()
	raw.LogicDifficulty = name("no_logic")
	w := generate(t, resolve(t, raw), "ONION")
	placements := fillOwnWorld(t, w)

	spheres, completed := w.Spheres(placements)
	if !completed {
		t.Fatal("sweep did not finish every goal")
	}
	if len(spheres) < 2 {
		t.Fatalf("%d spheres, want staged collection", len(spheres))
	}

	seen := map[string]bool{}
	for _, sphere := range spheres {
		for _, name := range sphere {
			if seen[name] {
				t.Errorf("%s collected twice", name)
			}
			seen[name] = true
		}
	}
	if want := len(w.Locations) + len(w.Events); len(seen) != want {
		t.Errorf("collected %d names, want %d", len(seen), want)
	}

	// The start state reaches only the starting level's checks, so the
	// first sphere must stay well short of the whole world.
	if len(spheres[0]) >= len(w.Locations) {
		t.Errorf("first sphere already holds %d locations", len(spheres[0]))
	}
}

func TestWriteSpoiler(t *testing.T) {
	raw := allEpisodesGoal()
	raw.BossWeaknesses = boolPtr(true)
	raw.Specials = name("on")
	w := generate(t, resolve(t, raw), "TELLTALE")

	var unplaced strings.Builder
	if err := w.WriteSpoiler(&unplaced, nil); err != nil {
		t.Fatalf("write spoiler: %v", err)
	}
	text := unplaced.String()

	if !strings.Contains(text, "TYRIAN (Episode 1): Start") {
		t.Error("starting level not shown as Start")
	}
	if !strings.Contains(text, "BUBBLES (Episode 1): (unplaced)") {
		t.Error("unplaced level missing placeholder")
	}
	if !strings.Contains(text, "Special Weapon:\n"+w.SingleSpecial) {
		t.Error("special weapon section missing")
	}
	if !strings.Contains(text, "Boss weaknesses:") {
		t.Error("boss weakness section missing")
	}
	if !strings.Contains(text, "Shop prices:") {
		t.Error("shop price section missing")
	}

	placements := fillOwnWorld(t, w)
	var placed strings.Builder
	if err := w.WriteSpoiler(&placed, placements); err != nil {
		t.Fatalf("write spoiler: %v", err)
	}
	if strings.Contains(placed.String(), "(unplaced)") {
		t.Error("full placements still show unplaced levels")
	}
}

func TestSpoilerSkipsDisabledSections(t *testing.T) {
	raw := allEpisodesGoal()
	raw.ShopMode = name("none")
	raw.Twiddles = name("off")
	w := generate(t, resolve(t, raw), "TERSE")

	var out strings.Builder
	if err := w.WriteSpoiler(&out, nil); err != nil {
		t.Fatalf("write spoiler: %v", err)
	}
	text := out.String()

	if strings.Contains(text, "Shop prices:") {
		t.Error("shop section rendered with shops disabled")
	}
	if strings.Contains(text, "Boss weaknesses:") {
		t.Error("weakness section rendered while off")
	}
	if !strings.Contains(text, "Twiddles:\nNone") {
		t.Error("twiddle section should say None when off")
	}
}
