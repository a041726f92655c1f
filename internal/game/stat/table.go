package stat

import (
	"slices"
)

// Reader exposes aggregated stat values.
type Reader interface {
	Value(k Kind) float64
}

// Table aggregates base values and modifiers for one entity.
//
// Not safe for concurrent use: a table is owned by a single entity and
// mutated from that entity's equip/unequip and buff call sites only.
type Table struct {
	base   [KindCount]float64
	mods   [KindCount][]*Modifier
	values [KindCount]float64
}

// NewTable creates an empty table. All stats read 0.
// Every method is a no-op (or reads 0) on a nil *Table.
func NewTable() *Table {
	return &Table{}
}

// Value returns the aggregated value of k. Unknown kinds read 0.
func (t *Table) Value(k Kind) float64 {
	if t == nil || !k.Valid() {
		return 0
	}
	return t.values[k]
}

// Base returns the base value of k before modifiers.
func (t *Table) Base(k Kind) float64 {
	if t == nil || !k.Valid() {
		return 0
	}
	return t.base[k]
}

// SetBase replaces the base value of k.
func (t *Table) SetBase(k Kind, v float64) {
	if t == nil || !k.Valid() {
		return
	}
	t.base[k] = v
	t.recompute(k)
}

// AddModifier registers m under m.Stat. Adding the same pointer twice is a no-op.
func (t *Table) AddModifier(m *Modifier) {
	if t == nil || m == nil || !m.Stat.Valid() {
		return
	}
	if slices.Contains(t.mods[m.Stat], m) {
		return
	}
	t.mods[m.Stat] = append(t.mods[m.Stat], m)
	t.recompute(m.Stat)
}

// RemoveModifier unregisters m. Returns false if m was not registered.
func (t *Table) RemoveModifier(m *Modifier) bool {
	if t == nil || m == nil || !m.Stat.Valid() {
		return false
	}
	list := t.mods[m.Stat]
	i := slices.Index(list, m)
	if i < 0 {
		return false
	}
	t.mods[m.Stat] = slices.Delete(list, i, i+1)
	t.recompute(m.Stat)
	return true
}

// RemoveSource unregisters every modifier whose Source equals src and
// returns how many were removed. src must be comparable.
func (t *Table) RemoveSource(src any) int {
	if t == nil {
		return 0
	}
	removed := 0
	for k := range t.mods {
		before := len(t.mods[k])
		t.mods[k] = slices.DeleteFunc(t.mods[k], func(m *Modifier) bool {
			return m.Source == src
		})
		if n := before - len(t.mods[k]); n > 0 {
			removed += n
			t.recompute(Kind(k))
		}
	}
	return removed
}

// Modifiers returns a copy of the modifiers registered for k.
func (t *Table) Modifiers(k Kind) []*Modifier {
	if t == nil || !k.Valid() {
		return nil
	}
	return slices.Clone(t.mods[k])
}

// Reset drops all modifiers and base values.
func (t *Table) Reset() {
	if t == nil {
		return
	}
	*t = Table{}
}

// recompute rebuilds the cached value of k from the live modifier set.
// Each class is folded over its amounts in ascending order, which makes the
// result bit-identical for any insertion order.
func (t *Table) recompute(k Kind) {
	var flat, inc, more []float64
	for _, m := range t.mods[k] {
		switch m.Type {
		case Flat:
			flat = append(flat, m.Amount)
		case Increased:
			inc = append(inc, m.Amount)
		case More:
			more = append(more, m.Amount)
		}
	}
	slices.Sort(flat)
	slices.Sort(inc)
	slices.Sort(more)

	sum := t.base[k]
	for _, v := range flat {
		sum += v
	}
	increased := 0.0
	for _, v := range inc {
		increased += v
	}
	value := sum * (1 + increased/100)
	for _, v := range more {
		value *= 1 + v/100
	}
	t.values[k] = value
}
