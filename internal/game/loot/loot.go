// Package loot rolls complete items: base, level, rarity and affixes.
package loot

import (
	"errors"
	"math/rand/v2"

	"github.com/udisondev/arpgcore/internal/game/affix"
	"github.com/udisondev/arpgcore/internal/model"
)

// ErrNoBases is returned when the dropper has nothing to drop.
var ErrNoBases = errors.New("no item bases to drop")

// RarityTable holds the percent chance of magic and rare drops.
// The remainder drops normal.
type RarityTable struct {
	Magic int
	Rare  int
}

// Roll draws a rarity from t.
func (t RarityTable) Roll(rng *rand.Rand) affix.Rarity {
	roll := rng.IntN(100)
	switch {
	case roll < t.Rare:
		return affix.RarityRare
	case roll < t.Rare+t.Magic:
		return affix.RarityMagic
	default:
		return affix.RarityNormal
	}
}

// Dropper generates items from a fixed base list.
//
// Not safe for concurrent use; give every worker its own Dropper and rng.
type Dropper struct {
	bases  []*model.Base
	rng    *rand.Rand
	gen    *affix.Generator
	rarity RarityTable
	forced *affix.Rarity
}

// NewDropper creates a Dropper over bases and pool drawing from rng.
func NewDropper(bases []*model.Base, pool *affix.Pool, rng *rand.Rand, rarity RarityTable) *Dropper {
	return &Dropper{
		bases:  bases,
		rng:    rng,
		gen:    affix.NewGenerator(pool, rng),
		rarity: rarity,
	}
}

// ForceRarity makes every drop use r instead of the rarity table.
func (d *Dropper) ForceRarity(r affix.Rarity) {
	d.forced = &r
}

// Drop rolls a random base at a level drawn from [minLevel, maxLevel].
func (d *Dropper) Drop(minLevel, maxLevel int) (*model.Item, error) {
	if len(d.bases) == 0 {
		return nil, ErrNoBases
	}
	if maxLevel < minLevel {
		minLevel, maxLevel = maxLevel, minLevel
	}
	base := d.bases[d.rng.IntN(len(d.bases))]
	level := minLevel + d.rng.IntN(maxLevel-minLevel+1)

	rarity := d.rarity.Roll(d.rng)
	if d.forced != nil {
		rarity = *d.forced
	}
	return d.DropBase(base, level, rarity)
}

// DropBase rolls affixes for a specific base, level and rarity.
func (d *Dropper) DropBase(base *model.Base, level int, rarity affix.Rarity) (*model.Item, error) {
	if base == nil {
		return nil, model.ErrNilBase
	}
	affixes := d.gen.Generate(affix.Request{
		Slot:      base.Slot,
		Archetype: base.Archetype,
		ItemLevel: level,
		Rarity:    rarity,
	})
	return model.NewItem(base, level, rarity, affixes)
}
