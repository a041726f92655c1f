package affix

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/arpgcore/internal/game/stat"
)

func TestRoller_IntegerWithinRange(t *testing.T) {
	t.Parallel()

	tmpl := &Template{ID: "life_t3", Tier: 3, Stat: stat.MaxHealth, Min: 20, Max: 29}
	roller := NewRoller(rand.New(rand.NewPCG(1, 1)))

	seen := make(map[float64]bool)
	for range 10000 {
		inst := roller.Roll(tmpl)
		require.NotNil(t, inst)
		require.Equal(t, math.Trunc(inst.Value), inst.Value, "value must be integral")
		require.GreaterOrEqual(t, inst.Value, tmpl.Min)
		require.LessOrEqual(t, inst.Value, tmpl.Max)
		seen[inst.Value] = true
	}
	assert.Len(t, seen, 10, "every value in [20, 29] should appear")
}

func TestRoller_SmallRangeRounds(t *testing.T) {
	t.Parallel()

	tmpl := &Template{ID: "tiny", Tier: 5, Stat: stat.CritChance, Min: 0.2, Max: 0.4}
	inst := NewRoller(rand.New(rand.NewPCG(2, 2))).Roll(tmpl)

	assert.Zero(t, inst.Value)
}

func TestRoller_FractionalBoundsStayInRange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		min, max float64
		roll     float64
		want     float64
	}{
		{"low edge rounds up into range", 0.4, 2, 0, 1},
		{"high edge rounds down into range", 1, 2.6, 0.999999, 2},
		{"inside", 0.4, 2.6, 0.5, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tmpl := &Template{ID: "frac", Tier: 5, Stat: stat.Armor, Min: tt.min, Max: tt.max}
			assert.Equal(t, tt.want, NewRoller(fixedRand{f: tt.roll}).Roll(tmpl).Value)
		})
	}

	tmpl := &Template{ID: "frac", Tier: 5, Stat: stat.Armor, Min: 0.4, Max: 2.6}
	roller := NewRoller(rand.New(rand.NewPCG(5, 5)))
	for range 10000 {
		v := roller.Roll(tmpl).Value
		require.GreaterOrEqual(t, v, tmpl.Min)
		require.LessOrEqual(t, v, tmpl.Max)
	}
}

func TestRoller_HalfToEven(t *testing.T) {
	t.Parallel()

	// Float64 0.5 maps [0, 5] to 2.5, which rounds to 2.
	tmpl := &Template{ID: "half", Tier: 5, Stat: stat.Armor, Min: 0, Max: 5}
	inst := NewRoller(fixedRand{f: 0.5}).Roll(tmpl)

	assert.Equal(t, 2.0, inst.Value)
}

func TestRoller_InvertedRangeSwapped(t *testing.T) {
	t.Parallel()

	tmpl := &Template{ID: "inverted", Tier: 5, Stat: stat.Armor, Min: 10, Max: 5}
	roller := NewRoller(rand.New(rand.NewPCG(3, 3)))
	for range 1000 {
		v := roller.Roll(tmpl).Value
		require.GreaterOrEqual(t, v, 5.0)
		require.LessOrEqual(t, v, 10.0)
	}
}

func TestRoller_NilTemplate(t *testing.T) {
	t.Parallel()

	assert.Nil(t, NewRoller(fixedRand{}).Roll(nil))
}

func TestInstance_Modifier(t *testing.T) {
	t.Parallel()

	owner := &struct{ name string }{"helm"}
	inst := &Instance{
		Template: &Template{Stat: stat.FireResist, Type: stat.Flat, Scope: stat.Global},
		Value:    30,
		Item:     owner,
	}

	m := inst.Modifier()
	require.NotNil(t, m)
	assert.Equal(t, stat.FireResist, m.Stat)
	assert.Equal(t, 30.0, m.Amount)
	assert.Same(t, owner, m.Source)
	assert.NotSame(t, m, inst.Modifier())

	var empty *Instance
	assert.Nil(t, empty.Modifier())
}

// fixedRand returns f from Float64 and n from IntN, clamped to the bound.
type fixedRand struct {
	f float64
	n int
}

func (r fixedRand) Float64() float64 { return r.f }

func (r fixedRand) IntN(n int) int { return min(r.n, n-1) }
