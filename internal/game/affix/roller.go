package affix

import "math"

// Rand is the random source used by Roller and Generator.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// Roller turns templates into instances.
type Roller struct {
	rng Rand
}

// NewRoller creates a Roller drawing from rng.
func NewRoller(rng Rand) *Roller {
	return &Roller{rng: rng}
}

// Roll draws a value uniformly from [t.Min, t.Max] and rounds it to the
// nearest integer, halves to even. The result is kept within the integers of
// the range; a range holding no integer (rejected by Validate) just rounds.
// An inverted range is swapped. Returns nil for a nil template.
func (r *Roller) Roll(t *Template) *Instance {
	if t == nil {
		return nil
	}
	lo, hi := t.Min, t.Max
	if lo > hi {
		lo, hi = hi, lo
	}
	v := math.RoundToEven(lo + r.rng.Float64()*(hi-lo))
	if first, last := math.Ceil(lo), math.Floor(hi); first <= last {
		v = math.Min(last, math.Max(first, v))
	}
	return &Instance{
		Template: t,
		Value:    v,
	}
}
