package skill

import (
	"log/slog"

	"github.com/udisondev/arpgcore/internal/game/stat"
)

const maxBuffs = 24

// Buff is a timed set of stat modifiers on one character.
type Buff struct {
	ID string
	// Group identifies mutually exclusive buffs. Empty skips stacking checks.
	Group       string
	Level       int
	RemainingMs int32
	Modifiers   []*stat.Modifier
}

// tick decrements the remaining time. Returns false once expired.
func (b *Buff) tick(deltaMs int32) bool {
	b.RemainingMs -= deltaMs
	return b.RemainingMs > 0
}

// Buffs tracks active buffs of one character and keeps their modifiers
// registered on the character's stat table.
//
// Stacking rules (same Group):
//   - higher Level replaces the existing buff
//   - same Level refreshes its duration
//   - lower Level is rejected
//
// When the limit is reached the oldest buff is removed.
type Buffs struct {
	owner  *stat.Table
	active []*Buff
}

// NewBuffs creates a buff list applying modifiers to owner.
func NewBuffs(owner *stat.Table) *Buffs {
	return &Buffs{owner: owner, active: make([]*Buff, 0, maxBuffs)}
}

// Add applies b. Returns true if it was added, replaced or refreshed.
func (m *Buffs) Add(b *Buff) bool {
	if b == nil || b.RemainingMs <= 0 {
		return false
	}

	if b.Group != "" {
		for i, existing := range m.active {
			if existing.Group != b.Group {
				continue
			}
			switch {
			case b.Level > existing.Level:
				m.detach(existing)
				m.active[i] = b
				m.attach(b)
				return true
			case b.Level == existing.Level:
				existing.RemainingMs = b.RemainingMs
				return true
			default:
				return false
			}
		}
	}

	if len(m.active) >= maxBuffs {
		oldest := m.active[0]
		m.detach(oldest)
		m.active = m.active[1:]

		slog.Debug("buff limit reached, removed oldest", "removed", oldest.ID, "added", b.ID)
	}

	m.active = append(m.active, b)
	m.attach(b)
	return true
}

// Remove drops every buff of group.
func (m *Buffs) Remove(group string) int {
	n := 0
	removed := 0
	for _, b := range m.active {
		if b.Group == group {
			m.detach(b)
			removed++
			continue
		}
		m.active[n] = b
		n++
	}
	m.active = m.active[:n]
	return removed
}

// Tick advances every buff by deltaMs and removes the expired ones.
// Returns the IDs of buffs that expired.
func (m *Buffs) Tick(deltaMs int32) []string {
	var expired []string
	n := 0
	for _, b := range m.active {
		if !b.tick(deltaMs) {
			m.detach(b)
			expired = append(expired, b.ID)
			continue
		}
		m.active[n] = b
		n++
	}
	m.active = m.active[:n]
	return expired
}

// Active returns a copy of the active buffs.
func (m *Buffs) Active() []*Buff {
	result := make([]*Buff, len(m.active))
	copy(result, m.active)
	return result
}

// Count returns the number of active buffs.
func (m *Buffs) Count() int {
	return len(m.active)
}

func (m *Buffs) attach(b *Buff) {
	for _, mod := range b.Modifiers {
		m.owner.AddModifier(mod)
	}
}

func (m *Buffs) detach(b *Buff) {
	for _, mod := range b.Modifiers {
		m.owner.RemoveModifier(mod)
	}
}
