package stat

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_Value(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		base float64
		mods []*Modifier
		want float64
	}{
		{"empty", 0, nil, 0},
		{"base only", 50, nil, 50},
		{"flat", 10, []*Modifier{{Stat: Armor, Amount: 5}, {Stat: Armor, Amount: 15}}, 30},
		{"increased sums", 100, []*Modifier{
			{Stat: Armor, Amount: 20, Type: Increased},
			{Stat: Armor, Amount: 30, Type: Increased},
		}, 150},
		{"more multiplies", 100, []*Modifier{
			{Stat: Armor, Amount: 50, Type: More},
			{Stat: Armor, Amount: 100, Type: More},
		}, 300},
		{"all classes", 10, []*Modifier{
			{Stat: Armor, Amount: 10, Type: Flat},
			{Stat: Armor, Amount: 50, Type: Increased},
			{Stat: Armor, Amount: 100, Type: More},
		}, 60},
		{"negative increased", 100, []*Modifier{{Stat: Armor, Amount: -25, Type: Increased}}, 75},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tbl := NewTable()
			tbl.SetBase(Armor, tt.base)
			for _, m := range tt.mods {
				tbl.AddModifier(m)
			}
			assert.InDelta(t, tt.want, tbl.Value(Armor), 1e-9)
		})
	}
}

func TestTable_UnknownKind(t *testing.T) {
	t.Parallel()

	tbl := NewTable()
	bogus := KindCount + 3

	assert.Zero(t, tbl.Value(bogus))
	assert.Zero(t, tbl.Base(bogus))
	tbl.SetBase(bogus, 10)
	tbl.AddModifier(&Modifier{Stat: bogus, Amount: 5})
	assert.False(t, tbl.RemoveModifier(&Modifier{Stat: bogus}))
	assert.Nil(t, tbl.Modifiers(bogus))

	var nilTable *Table
	assert.Zero(t, nilTable.Value(Armor))
}

func TestTable_NilReceiver(t *testing.T) {
	t.Parallel()

	var tbl *Table
	m := &Modifier{Stat: Armor, Amount: 5, Source: "helm"}

	require.NotPanics(t, func() {
		tbl.SetBase(Armor, 10)
		tbl.AddModifier(m)
		assert.False(t, tbl.RemoveModifier(m))
		assert.Zero(t, tbl.RemoveSource("helm"))
		assert.Nil(t, tbl.Modifiers(Armor))
		tbl.Reset()
	})
	assert.Zero(t, tbl.Value(Armor))
	assert.Zero(t, tbl.Base(Armor))
}

func TestTable_AddRemoveInverse(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(7, 11))
	for trial := range 500 {
		tbl := NewTable()
		tbl.SetBase(FireDamage, rng.Float64()*100)
		for range rng.IntN(8) {
			tbl.AddModifier(randomModifier(rng, FireDamage))
		}
		before := tbl.Value(FireDamage)

		m := randomModifier(rng, FireDamage)
		tbl.AddModifier(m)
		require.True(t, tbl.RemoveModifier(m), "trial %d", trial)

		require.Equal(t, before, tbl.Value(FireDamage), "trial %d", trial)
	}
}

func TestTable_OrderIndependent(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(3, 5))
	for trial := range 200 {
		mods := make([]*Modifier, 2+rng.IntN(10))
		for i := range mods {
			mods[i] = randomModifier(rng, ColdDamage)
		}

		a := NewTable()
		a.SetBase(ColdDamage, 13.7)
		for _, m := range mods {
			a.AddModifier(m)
		}

		b := NewTable()
		b.SetBase(ColdDamage, 13.7)
		for _, i := range rng.Perm(len(mods)) {
			b.AddModifier(mods[i])
		}

		require.Equal(t, a.Value(ColdDamage), b.Value(ColdDamage), "trial %d", trial)
	}
}

func TestTable_AddModifierTwice(t *testing.T) {
	t.Parallel()

	tbl := NewTable()
	m := &Modifier{Stat: Evasion, Amount: 10}
	tbl.AddModifier(m)
	tbl.AddModifier(m)

	assert.Equal(t, 10.0, tbl.Value(Evasion))
	assert.Len(t, tbl.Modifiers(Evasion), 1)
	assert.True(t, tbl.RemoveModifier(m))
	assert.False(t, tbl.RemoveModifier(m))
	assert.Zero(t, tbl.Value(Evasion))
}

func TestTable_RemoveSource(t *testing.T) {
	t.Parallel()

	type source struct{ name string }
	ring, amulet := &source{"ring"}, &source{"amulet"}

	tbl := NewTable()
	tbl.AddModifier(&Modifier{Stat: FireResist, Amount: 20, Source: ring})
	tbl.AddModifier(&Modifier{Stat: ColdResist, Amount: 15, Source: ring})
	tbl.AddModifier(&Modifier{Stat: FireResist, Amount: 10, Source: amulet})

	assert.Equal(t, 2, tbl.RemoveSource(ring))
	assert.Equal(t, 10.0, tbl.Value(FireResist))
	assert.Zero(t, tbl.Value(ColdResist))
	assert.Zero(t, tbl.RemoveSource(ring))
}

func TestKind_Text(t *testing.T) {
	t.Parallel()

	for k := range KindCount {
		text, err := k.MarshalText()
		require.NoError(t, err)

		var got Kind
		require.NoError(t, got.UnmarshalText(text))
		assert.Equal(t, k, got)
	}

	_, err := ParseKind("chaos_damage")
	assert.Error(t, err)
	assert.Equal(t, "stat(200)", Kind(200).String())
}

func randomModifier(rng *rand.Rand, k Kind) *Modifier {
	return &Modifier{
		Stat:   k,
		Amount: rng.Float64()*200 - 50,
		Type:   ModType(rng.IntN(3)),
	}
}
