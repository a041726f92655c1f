package testutil

import (
	"math/rand/v2"
	"testing"

	"github.com/udisondev/arpgcore/internal/data"
	"github.com/udisondev/arpgcore/internal/game/affix"
	"github.com/udisondev/arpgcore/internal/model"
)

// GameData загружает встроенный набор данных или валит тест.
func GameData(tb testing.TB) *data.Set {
	tb.Helper()
	set, err := data.LoadDefaults()
	if err != nil {
		tb.Fatalf("loading game data: %v", err)
	}
	return set
}

// Rand returns a deterministic generator for seed.
func Rand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// RollItem generates an item of baseID with affixes rolled from set's pool.
func RollItem(tb testing.TB, set *data.Set, rng *rand.Rand, baseID string, level int, rarity affix.Rarity) *model.Item {
	tb.Helper()
	base := set.Bases.Get(baseID)
	if base == nil {
		tb.Fatalf("unknown base %q", baseID)
	}
	gen := affix.NewGenerator(set.Affixes.Pool, rng)
	affixes := gen.Generate(affix.Request{
		Slot:      base.Slot,
		Archetype: base.Archetype,
		ItemLevel: level,
		Rarity:    rarity,
	})
	item, err := model.NewItem(base, level, rarity, affixes)
	if err != nil {
		tb.Fatalf("creating item: %v", err)
	}
	return item
}
