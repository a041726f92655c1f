package combat

import (
	"testing"

	"github.com/udisondev/arpgcore/internal/game/stat"
)

func snapshotOf(phys, fire, cold, light float64) Snapshot {
	return Snapshot{amounts: [ElementCount]float64{phys, fire, cold, light}}
}

func TestApplyMitigation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		snap     Snapshot
		defender map[stat.Kind]float64
		want     float64
	}{
		{"armour reduces physical", snapshotOf(100, 0, 0, 0), map[stat.Kind]float64{stat.Armor: 200}, 80},
		{"armour cannot go below zero", snapshotOf(10, 0, 0, 0), map[stat.Kind]float64{stat.Armor: 500}, 0},
		{"armour ignores elements", snapshotOf(0, 100, 0, 0), map[stat.Kind]float64{stat.Armor: 1000}, 100},
		{"resist over cap", snapshotOf(0, 100, 0, 0), map[stat.Kind]float64{stat.FireResist: 90}, 25},
		{"resist at cap", snapshotOf(0, 0, 100, 0), map[stat.Kind]float64{stat.ColdResist: 75}, 25},
		{"partial resist", snapshotOf(0, 0, 0, 200), map[stat.Kind]float64{stat.LightningResist: 40}, 120},
		{"negative resist amplifies", snapshotOf(0, 100, 0, 0), map[stat.Kind]float64{stat.FireResist: -50}, 150},
		{"negative resist floor", snapshotOf(0, 100, 0, 0), map[stat.Kind]float64{stat.FireResist: -500}, 300},
		{"independent resists", snapshotOf(100, 100, 100, 100), map[stat.Kind]float64{
			stat.Armor:           100,
			stat.FireResist:      75,
			stat.ColdResist:      0,
			stat.LightningResist: 50,
		}, 90 + 25 + 100 + 50},
		{"no defences", snapshotOf(1, 2, 3, 4), nil, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := ApplyMitigation(tt.snap, newStats(tt.defender))
			if !approx(got, tt.want) {
				t.Errorf("ApplyMitigation() = %g, want %g", got, tt.want)
			}
		})
	}
}

func TestApplyMitigation_NilDefender(t *testing.T) {
	t.Parallel()

	if got := ApplyMitigation(snapshotOf(5, 5, 0, 0), nil); got != 10 {
		t.Errorf("ApplyMitigation(nil defender) = %g, want 10", got)
	}
}

func TestClampResist(t *testing.T) {
	t.Parallel()

	tests := []struct{ in, want float64 }{
		{0, 0}, {75, 75}, {76, 75}, {-200, -200}, {-201, -200}, {30, 30},
	}
	for _, tt := range tests {
		if got := ClampResist(tt.in); got != tt.want {
			t.Errorf("ClampResist(%g) = %g, want %g", tt.in, got, tt.want)
		}
	}
}
