// Package affix implements rollable item modifiers: authored templates gated
// by tier and item level, and the roller/generator that turns them into
// concrete instances.
package affix

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/udisondev/arpgcore/internal/game/stat"
)

// Errors.
var (
	ErrInvalidTier    = errors.New("affix tier out of range")
	ErrInvalidRange   = errors.New("invalid affix value range")
	ErrUnknownRarity  = errors.New("unknown rarity")
	ErrUnknownSlot    = errors.New("unknown equipment slot")
	ErrUnknownDefense = errors.New("unknown defense archetype")
)

// Template is authored affix data. Templates are shared and never mutated.
type Template struct {
	ID     string
	Group  string // at most one affix per group on an item
	Tier   int
	Stat   stat.Kind
	Type   stat.ModType
	Scope  stat.Scope
	Min    float64
	Max    float64
	Weight int // relative pick weight; 0 is treated as 1

	// Slots and Archetypes restrict where the affix may roll. Empty means any.
	Slots      []Slot
	Archetypes []Archetype
	Tags       []string
}

// Validate checks authored data. Runtime paths never call it; loaders do.
func (t *Template) Validate() error {
	if t.Tier < MinTier || t.Tier > MaxTier {
		return fmt.Errorf("template %q tier %d: %w", t.ID, t.Tier, ErrInvalidTier)
	}
	if t.Min > t.Max {
		return fmt.Errorf("template %q range [%g, %g] is inverted: %w", t.ID, t.Min, t.Max, ErrInvalidRange)
	}
	if math.Ceil(t.Min) > math.Floor(t.Max) {
		return fmt.Errorf("template %q [%g, %g] holds no integer value: %w", t.ID, t.Min, t.Max, ErrInvalidRange)
	}
	if !t.Stat.Valid() {
		return fmt.Errorf("template %q: unknown stat %d", t.ID, t.Stat)
	}
	return nil
}

// AllowsSlot reports whether the affix may roll on slot.
func (t *Template) AllowsSlot(slot Slot) bool {
	return len(t.Slots) == 0 || slices.Contains(t.Slots, slot)
}

// AllowsArchetype reports whether the affix may roll on an item of archetype.
// Affixes without an archetype restriction roll on any item. Restricted
// affixes never roll on items without an archetype (weapons, jewellery).
func (t *Template) AllowsArchetype(a Archetype) bool {
	return len(t.Archetypes) == 0 || slices.Contains(t.Archetypes, a)
}

// HasTag reports whether the template carries tag.
func (t *Template) HasTag(tag string) bool {
	return slices.Contains(t.Tags, tag)
}

func (t *Template) weight() int {
	if t.Weight <= 0 {
		return 1
	}
	return t.Weight
}

// Instance is a rolled affix attached to an item.
type Instance struct {
	Template *Template
	Value    float64 // always integral
	Item     any     // owning item, set when attached
}

// Modifier builds the stat modifier this instance contributes.
// Each call returns a new Modifier.
func (i *Instance) Modifier() *stat.Modifier {
	if i == nil || i.Template == nil {
		return nil
	}
	return &stat.Modifier{
		Stat:   i.Template.Stat,
		Amount: i.Value,
		Type:   i.Template.Type,
		Scope:  i.Template.Scope,
		Source: i.Item,
	}
}

func (i *Instance) String() string {
	if i == nil || i.Template == nil {
		return "<nil affix>"
	}
	m := i.Modifier()
	return fmt.Sprintf("%s (T%d)", m, i.Template.Tier)
}
