package combat

import (
	"math"

	"github.com/udisondev/arpgcore/internal/game/stat"
)

// Resistance caps, in percent.
const (
	MaxResist = 75.0
	MinResist = -200.0
)

// armorFactor is the flat physical reduction per point of armour.
// Linear placeholder: damage - armour×0.1, no diminishing returns.
const armorFactor = 0.1

var resistStats = [ElementCount]stat.Kind{
	Fire:      stat.FireResist,
	Cold:      stat.ColdResist,
	Lightning: stat.LightningResist,
}

// ApplyMitigation returns the damage the defender takes from s.
func ApplyMitigation(s Snapshot, defender stat.Reader) float64 {
	if defender == nil {
		return math.Max(0, s.Total())
	}

	total := math.Max(0, s.amounts[Physical]-defender.Value(stat.Armor)*armorFactor)
	for _, e := range [...]Element{Fire, Cold, Lightning} {
		resist := ClampResist(defender.Value(resistStats[e]))
		total += s.amounts[e] * (1 - resist/100)
	}
	return math.Max(0, total)
}

// ClampResist bounds a resistance to [MinResist, MaxResist].
func ClampResist(resist float64) float64 {
	return math.Min(MaxResist, math.Max(MinResist, resist))
}
