// Package combat turns attacker stats into damage snapshots and applies
// defender mitigation.
//
// Resolution order:
//  1. Calculator.ComputeSnapshot reads the attacker's stats, converts and rolls crit
//  2. ApplyMitigation reduces the snapshot by the defender's armour and resists
//  3. Resolver applies the result to the defender and notifies a HitObserver
package combat

import (
	"math"
	"math/rand/v2"

	"github.com/udisondev/arpgcore/internal/game/stat"
)

// DefaultCritMultiplier is used when the attacker's crit multiplier stat is not positive.
const DefaultCritMultiplier = 150.0

// Rand is the random source used for crit rolls.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	Float64() float64
}

// conversion moves a share of the remaining physical damage into another element.
type conversion struct {
	percent stat.Kind
	to      Element
}

// conversions are applied in this order, each against what physical damage is left.
var conversions = [...]conversion{
	{stat.PhysicalToFire, Fire},
	{stat.PhysicalToCold, Cold},
	{stat.PhysicalToLightning, Lightning},
}

var elementStats = [ElementCount]stat.Kind{
	Physical:  stat.PhysicalDamage,
	Fire:      stat.FireDamage,
	Cold:      stat.ColdDamage,
	Lightning: stat.LightningDamage,
}

// Calculator computes damage snapshots.
type Calculator struct {
	rng Rand
}

// NewCalculator creates a Calculator drawing crit rolls from rng.
// A nil rng is replaced by a randomly seeded PCG source.
func NewCalculator(rng Rand) *Calculator {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Calculator{rng: rng}
}

// ComputeSnapshot resolves the attacker's damage for one hit.
// skillMultiplier scales every element (1.0 = 100% effectiveness).
func (c *Calculator) ComputeSnapshot(attacker stat.Reader, skillMultiplier float64, source string) Snapshot {
	var s Snapshot
	s.source = source
	if attacker == nil {
		return s
	}

	for e, k := range elementStats {
		s.amounts[e] = attacker.Value(k) * skillMultiplier
	}

	for _, conv := range conversions {
		percent := attacker.Value(conv.percent)
		phys := s.amounts[Physical]
		if percent <= 0 || phys <= 0 {
			continue
		}
		moved := phys * (percent / 100)
		s.amounts[conv.to] += moved
		s.amounts[Physical] -= moved
	}

	// Exactly one draw per hit, even at 0% chance.
	if c.rng.Float64() < attacker.Value(stat.CritChance)/100 {
		mult := attacker.Value(stat.CritMultiplier)
		if mult <= 0 {
			mult = DefaultCritMultiplier
		}
		s.crit = true
		s.critMult = mult
		for e := range s.amounts {
			s.amounts[e] *= mult / 100
		}
	}

	for e := range s.amounts {
		s.amounts[e] = math.Max(0, s.amounts[e])
	}
	return s
}
