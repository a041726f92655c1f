package model

import (
	"math"

	"github.com/udisondev/arpgcore/internal/game/stat"
)

// Character: участник боя: статы, экипировка, здоровье и позиция.
//
// Not safe for concurrent use; callers serialise access from their update loop.
type Character struct {
	name      string
	stats     *stat.Table
	equipment *Equipment
	health    float64
	x, y      float64
}

// NewCharacter creates a character with the given base stats at full health.
func NewCharacter(name string, base map[stat.Kind]float64) *Character {
	stats := stat.NewTable()
	for k, v := range base {
		stats.SetBase(k, v)
	}
	c := &Character{
		name:      name,
		stats:     stats,
		equipment: NewEquipment(stats),
	}
	c.health = c.MaxHealth()
	return c
}

func (c *Character) Stats() *stat.Table    { return c.stats }
func (c *Character) Equipment() *Equipment { return c.equipment }

// Name returns the character name. A nil character has an empty name.
func (c *Character) Name() string {
	if c == nil {
		return ""
	}
	return c.name
}

// Value returns the aggregated stat k. A nil character reads 0.
func (c *Character) Value(k stat.Kind) float64 {
	if c == nil {
		return 0
	}
	return c.stats.Value(k)
}

func (c *Character) Health() float64 {
	if c == nil {
		return 0
	}
	return c.health
}

// IsDead reports whether health is depleted. A nil character counts as dead,
// so combat treats it as an invalid target.
func (c *Character) IsDead() bool {
	return c == nil || c.health <= 0
}

// MaxHealth returns the aggregated max_health stat.
func (c *Character) MaxHealth() float64 {
	return c.Value(stat.MaxHealth)
}

// Position returns the world position used for damage numbers.
func (c *Character) Position() (x, y float64) {
	if c == nil {
		return 0, 0
	}
	return c.x, c.y
}

// SetPosition moves the character.
func (c *Character) SetPosition(x, y float64) {
	c.x, c.y = x, y
}

// Equip equips item and clamps health to the new maximum.
func (c *Character) Equip(item *Item) *Item {
	prev := c.equipment.Equip(item)
	c.clampHealth()
	return prev
}

// Unequip removes item and clamps health. Returns nil and changes nothing
// when item is not the one currently equipped in its slot.
func (c *Character) Unequip(item *Item) *Item {
	if item == nil || c.equipment.Item(item.Slot()) != item {
		return nil
	}
	removed := c.equipment.Unequip(item.Slot())
	c.clampHealth()
	return removed
}

// TakeDamage removes up to amount health. Returns the health actually removed
// and whether this hit killed the character. Dead characters take no damage.
func (c *Character) TakeDamage(amount float64) (dealt float64, killed bool) {
	if c.IsDead() || amount <= 0 {
		return 0, false
	}
	dealt = math.Min(amount, c.health)
	c.health -= dealt
	return dealt, c.health <= 0
}

// Heal restores up to amount health, capped at MaxHealth. Dead characters are not healed.
func (c *Character) Heal(amount float64) float64 {
	if c.IsDead() || amount <= 0 {
		return 0
	}
	healed := math.Min(amount, c.MaxHealth()-c.health)
	if healed < 0 {
		return 0
	}
	c.health += healed
	return healed
}

// Revive restores a character to full health.
func (c *Character) Revive() {
	c.health = c.MaxHealth()
}

func (c *Character) clampHealth() {
	if c.health > c.MaxHealth() {
		c.health = c.MaxHealth()
	}
}
