package logic

import "testing"

func TestOver(t *testing.T) {
	tests := []struct {
		name         string
		health       int
		divisorMilli int
		want         int
	}{
		{"one second kill", 20, 1000, 20000},
		{"boss wing window", 254, 30000, 8466},
		{"fractional window", 20, 3600, 5555},
		{"sub-second window", 10, 500, 20000},
		{"combined health", 354, 30000, 11800},
	}
	for _, tt := range tests {
		if got := Over(tt.health, tt.divisorMilli); got != tt.want {
			t.Errorf("%s: Over(%d, %d) = %d, want %d",
				tt.name, tt.health, tt.divisorMilli, got, tt.want)
		}
	}
}

func TestSubClampsAtZero(t *testing.T) {
	want := DPS{Active: 10000, Passive: 8000, Sideways: 500}
	have := DPS{Active: 4000, Passive: 9000, Piercing: 700}

	got := want.Sub(have)
	if got != (DPS{Active: 6000, Sideways: 500}) {
		t.Errorf("Sub = %+v, want active 6000 sideways 500", got)
	}
}

func TestDistanceTo(t *testing.T) {
	tests := []struct {
		name string
		have DPS
		want DPS
		dist int
	}{
		{"met exactly", DPS{Active: 5000}, DPS{Active: 5000}, 0},
		{"exceeded", DPS{Active: 9000, Passive: 100}, DPS{Active: 5000}, 0},
		{"nothing demanded", DPS{}, DPS{}, 0},
		{"active shortfall", DPS{Active: 4000}, DPS{Active: 5000}, 1000 * weightActive},
		{"passive shortfall", DPS{}, DPS{Passive: 2000}, 2000 * weightPassive},
		{"sideways shortfall", DPS{}, DPS{Sideways: 1000}, 1000 * weightSideways},
		{
			"shortfalls accumulate",
			DPS{Active: 1000},
			DPS{Active: 2000, Passive: 500},
			1000*weightActive + 500*weightPassive,
		},
		{
			"piercing shortfall is unsalvageable",
			DPS{Active: 99999, Piercing: 50},
			DPS{Piercing: 100},
			failDistance,
		},
	}
	for _, tt := range tests {
		if got := tt.have.DistanceTo(tt.want); got != tt.dist {
			t.Errorf("%s: distance = %d, want %d", tt.name, got, tt.dist)
		}
	}
}

func TestMeets(t *testing.T) {
	tests := []struct {
		name string
		have DPS
		want DPS
		ok   bool
	}{
		{"zero requirement", DPS{}, DPS{}, true},
		{"all profiles covered", DPS{Active: 5, Passive: 5, Sideways: 5, Piercing: 5}, DPS{Active: 5, Passive: 5, Sideways: 5, Piercing: 5}, true},
		{"active short", DPS{Active: 4}, DPS{Active: 5}, false},
		{"passive short", DPS{Active: 10}, DPS{Active: 5, Passive: 1}, false},
		{"sideways short", DPS{Sideways: 1}, DPS{Sideways: 2}, false},
		{"piercing short", DPS{Piercing: 1}, DPS{Piercing: 2}, false},
		{"surplus elsewhere does not help", DPS{Passive: 100}, DPS{Active: 1}, false},
	}
	for _, tt := range tests {
		if got := tt.have.Meets(tt.want); got != tt.ok {
			t.Errorf("%s: Meets = %v, want %v", tt.name, got, tt.ok)
		}
	}
}

func TestZero(t *testing.T) {
	if !(DPS{}).Zero() {
		t.Error("empty DPS should be zero")
	}
	if (DPS{Sideways: 1}).Zero() {
		t.Error("sideways-only DPS should not be zero")
	}
}
