package model

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/udisondev/arpgcore/internal/game/affix"
	"github.com/udisondev/arpgcore/internal/game/stat"
)

// ErrNilBase is returned when an item is created without a base definition.
var ErrNilBase = errors.New("item base cannot be nil")

// Base is the authored definition of an item type (Iron Helmet, Short Sword, ...).
type Base struct {
	ID        string
	Name      string
	Slot      affix.Slot
	Archetype affix.Archetype
	// Implicits are the item's own stats before local affixes (armour of a
	// helmet, physical damage of a sword).
	Implicits map[stat.Kind]float64
	// Skill is the skill ID the item grants while equipped, empty for none.
	Skill string
}

// Item: конкретный экземпляр предмета с роллнутыми аффиксами.
type Item struct {
	id      int64 // assigned by the item archive, 0 until saved
	base    *Base
	level   int
	rarity  affix.Rarity
	affixes []*affix.Instance

	// local holds implicits plus Local-scope affix modifiers.
	local      *stat.Table
	localKinds []stat.Kind
}

// NewItem builds an item and attaches affixes to it.
// Nil affixes are skipped.
func NewItem(base *Base, level int, rarity affix.Rarity, affixes []*affix.Instance) (*Item, error) {
	if base == nil {
		return nil, ErrNilBase
	}

	it := &Item{
		base:    base,
		level:   level,
		rarity:  rarity,
		affixes: make([]*affix.Instance, 0, len(affixes)),
		local:   stat.NewTable(),
	}
	for k, v := range base.Implicits {
		it.local.SetBase(k, v)
		it.addLocalKind(k)
	}
	for _, a := range affixes {
		if a == nil || a.Template == nil {
			continue
		}
		a.Item = it
		it.affixes = append(it.affixes, a)
		if a.Template.Scope == stat.Local {
			it.local.AddModifier(a.Modifier())
			it.addLocalKind(a.Template.Stat)
		}
	}
	slices.Sort(it.localKinds)
	return it, nil
}

func (it *Item) addLocalKind(k stat.Kind) {
	if !slices.Contains(it.localKinds, k) {
		it.localKinds = append(it.localKinds, k)
	}
}

func (it *Item) ID() int64                      { return it.id }
func (it *Item) SetID(id int64)                 { it.id = id }
func (it *Item) Base() *Base                    { return it.base }
func (it *Item) Level() int                     { return it.level }
func (it *Item) Rarity() affix.Rarity           { return it.rarity }
func (it *Item) Slot() affix.Slot               { return it.base.Slot }
func (it *Item) Affixes() []*affix.Instance     { return slices.Clone(it.affixes) }
func (it *Item) GrantedSkill() string           { return it.base.Skill }
func (it *Item) LocalValue(k stat.Kind) float64 { return it.local.Value(k) }

// Name returns the base name prefixed with the rarity for non-normal items.
func (it *Item) Name() string {
	if it.rarity == affix.RarityNormal {
		return it.base.Name
	}
	return it.rarity.String() + " " + it.base.Name
}

// Properties returns the item's own stats after Local affixes.
// Zero values are omitted. The result is sorted by stat kind.
func (it *Item) Properties() []Property {
	out := make([]Property, 0, len(it.localKinds))
	for _, k := range it.localKinds {
		if v := it.local.Value(k); v != 0 {
			out = append(out, Property{Stat: k, Value: v})
		}
	}
	return out
}

// Property is one resolved local stat of an item.
type Property struct {
	Stat  stat.Kind
	Value float64
}

// WearerModifiers builds the modifiers the item applies to its wearer:
// a Flat modifier per property plus every Global affix.
// Each call returns fresh modifiers sourced from the item.
func (it *Item) WearerModifiers() []*stat.Modifier {
	props := it.Properties()
	mods := make([]*stat.Modifier, 0, len(props)+len(it.affixes))
	for _, p := range props {
		mods = append(mods, &stat.Modifier{
			Stat:   p.Stat,
			Amount: p.Value,
			Type:   stat.Flat,
			Scope:  stat.Global,
			Source: it,
		})
	}
	for _, a := range it.affixes {
		if a.Template.Scope != stat.Global {
			continue
		}
		mods = append(mods, a.Modifier())
	}
	return mods
}

func (it *Item) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (ilvl %d)", it.Name(), it.level)
	for _, p := range it.Properties() {
		fmt.Fprintf(&b, "\n  %s: %g", p.Stat, p.Value)
	}
	for _, a := range it.affixes {
		fmt.Fprintf(&b, "\n  %s", a)
	}
	return b.String()
}
