package combat

import "fmt"

// Element is a damage type carried by a Snapshot.
type Element uint8

const (
	Physical Element = iota
	Fire
	Cold
	Lightning

	ElementCount
)

func (e Element) String() string {
	switch e {
	case Physical:
		return "physical"
	case Fire:
		return "fire"
	case Cold:
		return "cold"
	case Lightning:
		return "lightning"
	default:
		return fmt.Sprintf("element(%d)", uint8(e))
	}
}

// Snapshot is a fully resolved damage payload sent from attacker to defender.
// It is immutable once produced by Calculator.ComputeSnapshot.
type Snapshot struct {
	amounts  [ElementCount]float64
	crit     bool
	critMult float64
	source   string
}

// Amount returns the damage of element e. Unknown elements return 0.
func (s Snapshot) Amount(e Element) float64 {
	if e >= ElementCount {
		return 0
	}
	return s.amounts[e]
}

func (s Snapshot) Physical() float64  { return s.amounts[Physical] }
func (s Snapshot) Fire() float64      { return s.amounts[Fire] }
func (s Snapshot) Cold() float64      { return s.amounts[Cold] }
func (s Snapshot) Lightning() float64 { return s.amounts[Lightning] }

// IsCrit reports whether the hit was a critical strike.
func (s Snapshot) IsCrit() bool { return s.crit }

// CritMultiplier is the percent multiplier applied on crit (150 = ×1.5).
// Zero when the hit did not crit.
func (s Snapshot) CritMultiplier() float64 { return s.critMult }

// Source names the attacker.
func (s Snapshot) Source() string { return s.source }

// Total returns the sum of all elements before mitigation.
func (s Snapshot) Total() float64 {
	total := 0.0
	for _, v := range s.amounts {
		total += v
	}
	return total
}

func (s Snapshot) String() string {
	crit := ""
	if s.crit {
		crit = " crit"
	}
	return fmt.Sprintf("phys=%.1f fire=%.1f cold=%.1f light=%.1f%s",
		s.amounts[Physical], s.amounts[Fire], s.amounts[Cold], s.amounts[Lightning], crit)
}
