package model

import (
	"github.com/udisondev/arpgcore/internal/game/affix"
	"github.com/udisondev/arpgcore/internal/game/stat"
)

// equipped: предмет в слоте и модификаторы, которые он зарегистрировал у владельца.
type equipped struct {
	item *Item
	mods []*stat.Modifier
}

// Equipment is a paperdoll bound to one owner stat table.
// Equip registers the item's wearer modifiers on the owner; Unequip removes
// exactly those modifiers again.
type Equipment struct {
	owner *stat.Table
	slots [affix.SlotCount]*equipped
}

// NewEquipment creates an empty paperdoll for owner.
func NewEquipment(owner *stat.Table) *Equipment {
	return &Equipment{owner: owner}
}

// Equip puts item into its slot and returns the item it replaced, if any.
// A nil item is a no-op.
func (e *Equipment) Equip(item *Item) *Item {
	if item == nil || item.Slot() >= affix.SlotCount {
		return nil
	}
	prev := e.Unequip(item.Slot())

	mods := item.WearerModifiers()
	for _, m := range mods {
		e.owner.AddModifier(m)
	}
	e.slots[item.Slot()] = &equipped{item: item, mods: mods}
	return prev
}

// Unequip empties slot and returns the removed item, or nil if the slot was empty.
func (e *Equipment) Unequip(slot affix.Slot) *Item {
	if slot >= affix.SlotCount {
		return nil
	}
	eq := e.slots[slot]
	if eq == nil {
		return nil
	}
	for _, m := range eq.mods {
		e.owner.RemoveModifier(m)
	}
	e.slots[slot] = nil
	return eq.item
}

// Item returns the item in slot, or nil.
func (e *Equipment) Item(slot affix.Slot) *Item {
	if slot >= affix.SlotCount || e.slots[slot] == nil {
		return nil
	}
	return e.slots[slot].item
}

// Items returns equipped items in slot order.
func (e *Equipment) Items() []*Item {
	var out []*Item
	for _, eq := range e.slots {
		if eq != nil {
			out = append(out, eq.item)
		}
	}
	return out
}

// Skills returns the skill IDs granted by equipped items, in slot order.
func (e *Equipment) Skills() []string {
	var out []string
	for _, eq := range e.slots {
		if eq != nil && eq.item.GrantedSkill() != "" {
			out = append(out, eq.item.GrantedSkill())
		}
	}
	return out
}

// HasSkill reports whether any equipped item grants skillID.
func (e *Equipment) HasSkill(skillID string) bool {
	for _, eq := range e.slots {
		if eq != nil && eq.item.GrantedSkill() == skillID {
			return true
		}
	}
	return false
}
