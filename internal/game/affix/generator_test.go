package affix

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/arpgcore/internal/game/stat"
)

func testTemplates() []*Template {
	return []*Template{
		{ID: "life_t5", Group: "life", Tier: 5, Stat: stat.MaxHealth, Min: 10, Max: 19},
		{ID: "life_t4", Group: "life", Tier: 4, Stat: stat.MaxHealth, Min: 20, Max: 29},
		{ID: "life_t1", Group: "life", Tier: 1, Stat: stat.MaxHealth, Min: 90, Max: 99},
		{ID: "fire_res_t5", Group: "fire_res", Tier: 5, Stat: stat.FireResist, Min: 6, Max: 11},
		{ID: "cold_res_t5", Group: "cold_res", Tier: 5, Stat: stat.ColdResist, Min: 6, Max: 11},
		{ID: "light_res_t5", Group: "light_res", Tier: 5, Stat: stat.LightningResist, Min: 6, Max: 11},
		{ID: "local_armor_t5", Group: "local_armor", Tier: 5, Stat: stat.Armor, Type: stat.Increased,
			Scope: stat.Local, Min: 15, Max: 26,
			Slots: []Slot{SlotHelmet, SlotChest}, Archetypes: []Archetype{ArchetypeArmor, ArchetypeHybrid}},
		{ID: "phys_t5", Group: "phys", Tier: 5, Stat: stat.PhysicalDamage, Min: 2, Max: 5,
			Slots: []Slot{SlotWeapon}},
	}
}

func newTestPool(t *testing.T) *Pool {
	t.Helper()
	pool, err := NewPool(testTemplates())
	require.NoError(t, err)
	return pool
}

func TestNewPool_Validation(t *testing.T) {
	t.Parallel()

	_, err := NewPool([]*Template{{ID: "bad", Tier: 6, Stat: stat.Armor}})
	assert.ErrorIs(t, err, ErrInvalidTier)

	_, err = NewPool([]*Template{{ID: "bad", Tier: 1, Stat: stat.Armor, Min: 5, Max: 1}})
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = NewPool([]*Template{{ID: "frac", Tier: 1, Stat: stat.CritChance, Min: 0.2, Max: 0.8}})
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = NewPool([]*Template{
		{ID: "dup", Tier: 1, Stat: stat.Armor},
		{ID: "dup", Tier: 2, Stat: stat.Armor},
	})
	assert.Error(t, err)

	pool, err := NewPool([]*Template{nil, {ID: "ok", Tier: 1, Stat: stat.Armor}})
	require.NoError(t, err)
	assert.Equal(t, 1, pool.Len())
	assert.NotNil(t, pool.Template("ok"))
	assert.Nil(t, pool.Template("missing"))
}

func TestPool_Eligible(t *testing.T) {
	t.Parallel()

	pool := newTestPool(t)
	ids := func(ts []*Template) []string {
		out := make([]string, len(ts))
		for i, tmpl := range ts {
			out[i] = tmpl.ID
		}
		return out
	}

	tests := []struct {
		name      string
		slot      Slot
		archetype Archetype
		level     int
		want      []string
	}{
		{"armour chest level 1", SlotChest, ArchetypeArmor, 1,
			[]string{"life_t5", "fire_res_t5", "cold_res_t5", "light_res_t5", "local_armor_t5"}},
		{"evasion chest drops local armour", SlotChest, ArchetypeEvasion, 1,
			[]string{"life_t5", "fire_res_t5", "cold_res_t5", "light_res_t5"}},
		{"weapon level 3", SlotWeapon, ArchetypeNone, 3,
			[]string{"life_t5", "fire_res_t5", "cold_res_t5", "light_res_t5", "phys_t5"}},
		{"boundary level 5 allows tiers 4 and 5", SlotRing, ArchetypeNone, 5,
			[]string{"life_t5", "life_t4", "fire_res_t5", "cold_res_t5", "light_res_t5"}},
		{"level 7 only tier 4", SlotRing, ArchetypeNone, 7, []string{"life_t4"}},
		{"level 30", SlotBoots, ArchetypeEvasion, 30, []string{"life_t1"}},
		{"level 0", SlotBoots, ArchetypeEvasion, 0, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ids(pool.Eligible(tt.slot, tt.archetype, tt.level)))
		})
	}
}

func TestGenerator_AffixCountByRarity(t *testing.T) {
	t.Parallel()

	pool := newTestPool(t)
	gen := NewGenerator(pool, rand.New(rand.NewPCG(10, 20)))

	tests := []struct {
		rarity Rarity
		lo, hi int
	}{
		{RarityNormal, 0, 0},
		{RarityMagic, 1, 2},
		{RarityRare, 3, 4},
	}
	for _, tt := range tests {
		counts := make(map[int]int)
		for range 2000 {
			affixes := gen.Generate(Request{Slot: SlotChest, Archetype: ArchetypeArmor, ItemLevel: 3, Rarity: tt.rarity})
			counts[len(affixes)]++
		}
		for n := range counts {
			assert.GreaterOrEqual(t, n, tt.lo, "rarity %s", tt.rarity)
			assert.LessOrEqual(t, n, tt.hi, "rarity %s", tt.rarity)
		}
		for n := tt.lo; n <= tt.hi; n++ {
			assert.Positive(t, counts[n], "rarity %s never produced %d affixes", tt.rarity, n)
		}
	}
}

func TestGenerator_OnePerGroup(t *testing.T) {
	t.Parallel()

	pool := newTestPool(t)
	gen := NewGenerator(pool, rand.New(rand.NewPCG(5, 6)))

	for range 1000 {
		affixes := gen.Generate(Request{Slot: SlotRing, ItemLevel: 5, Rarity: RarityRare})
		groups := make(map[string]bool)
		for _, a := range affixes {
			require.False(t, groups[a.Template.Group], "group %s rolled twice", a.Template.Group)
			groups[a.Template.Group] = true
			require.True(t, IsTierAllowedForLevel(5, a.Template.Tier))
			require.GreaterOrEqual(t, a.Value, a.Template.Min)
			require.LessOrEqual(t, a.Value, a.Template.Max)
		}
	}
}

func TestGenerator_ExhaustedPool(t *testing.T) {
	t.Parallel()

	pool := newTestPool(t)
	gen := NewGenerator(pool, rand.New(rand.NewPCG(1, 1)))

	// Only life_t4 is eligible at level 7.
	affixes := gen.Generate(Request{Slot: SlotRing, ItemLevel: 7, Rarity: RarityRare})
	require.Len(t, affixes, 1)
	assert.Equal(t, "life_t4", affixes[0].Template.ID)

	assert.Empty(t, gen.Generate(Request{Slot: SlotRing, ItemLevel: 99, Rarity: RarityRare}))
}

func TestGenerator_Weighted(t *testing.T) {
	t.Parallel()

	pool, err := NewPool([]*Template{
		{ID: "common", Group: "a", Tier: 5, Stat: stat.Armor, Weight: 900, Min: 1, Max: 1},
		{ID: "scarce", Group: "b", Tier: 5, Stat: stat.Evasion, Weight: 100, Min: 1, Max: 1},
	})
	require.NoError(t, err)
	gen := NewGenerator(pool, rand.New(rand.NewPCG(8, 8)))

	first := make(map[string]int)
	for range 5000 {
		affixes := gen.Generate(Request{Slot: SlotBelt, ItemLevel: 1, Rarity: RarityMagic})
		require.NotEmpty(t, affixes)
		first[affixes[0].Template.ID]++
	}
	share := float64(first["common"]) / 5000
	assert.InDelta(t, 0.9, share, 0.03)
}

func TestGenerator_Deterministic(t *testing.T) {
	t.Parallel()

	pool := newTestPool(t)
	req := Request{Slot: SlotHelmet, Archetype: ArchetypeHybrid, ItemLevel: 5, Rarity: RarityRare}

	a := NewGenerator(pool, rand.New(rand.NewPCG(77, 1)))
	b := NewGenerator(pool, rand.New(rand.NewPCG(77, 1)))
	for range 100 {
		x, y := a.Generate(req), b.Generate(req)
		require.Equal(t, len(x), len(y))
		for i := range x {
			require.Same(t, x[i].Template, y[i].Template)
			require.Equal(t, x[i].Value, y[i].Value)
		}
	}
}
