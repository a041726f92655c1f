// Package skill provides equipment-granted skills. A skill only scales the
// attacker's damage; resolution itself lives in package combat.
package skill

import (
	"errors"
	"fmt"
	"slices"

	"github.com/udisondev/arpgcore/internal/game/combat"
	"github.com/udisondev/arpgcore/internal/game/stat"
	"github.com/udisondev/arpgcore/internal/model"
)

// BasicAttack is always available, with or without equipment.
const BasicAttack = "basic_attack"

// Errors.
var (
	ErrSkillNotFound   = errors.New("skill not found")
	ErrSkillNotGranted = errors.New("skill not granted by equipment")
	ErrTargetDead      = errors.New("target is dead")
	ErrCasterDead      = errors.New("caster is dead")
	ErrNotBuff         = errors.New("skill is not a buff")
	ErrNotAttack       = errors.New("skill is not an attack")
)

// Skill is authored skill data.
type Skill struct {
	ID   string
	Name string
	// Effectiveness is the percent of the attacker's damage dealt (100 = ×1.0).
	Effectiveness float64
	Tags          []string
	// Buff, when set, makes this a self-buff instead of an attack.
	Buff *BuffSpec
}

// BuffSpec is the authored shape of a self-buff.
type BuffSpec struct {
	Group      string
	Level      int
	DurationMs int32
	Modifiers  []stat.Modifier
}

// NewBuff instantiates the skill's buff with fresh modifiers sourced from it.
// Returns nil for attack skills.
func (s *Skill) NewBuff() *Buff {
	if s.Buff == nil {
		return nil
	}
	b := &Buff{
		ID:          s.ID,
		Group:       s.Buff.Group,
		Level:       s.Buff.Level,
		RemainingMs: s.Buff.DurationMs,
		Modifiers:   make([]*stat.Modifier, len(s.Buff.Modifiers)),
	}
	for i, m := range s.Buff.Modifiers {
		m.Source = s
		b.Modifiers[i] = &m
	}
	return b
}

// Multiplier returns the skill multiplier passed to the damage calculator.
// Zero effectiveness means unscaled damage.
func (s *Skill) Multiplier() float64 {
	if s.Effectiveness == 0 {
		return 1
	}
	return s.Effectiveness / 100
}

// Registry looks skills up by ID.
type Registry struct {
	skills map[string]*Skill
	order  []string
}

// NewRegistry builds a registry. BasicAttack is added at 100% unless defined.
func NewRegistry(skills []*Skill) (*Registry, error) {
	r := &Registry{skills: make(map[string]*Skill, len(skills)+1)}
	for _, s := range skills {
		if s == nil {
			continue
		}
		if s.ID == "" {
			return nil, fmt.Errorf("skill %q has no id", s.Name)
		}
		if _, dup := r.skills[s.ID]; dup {
			return nil, fmt.Errorf("duplicate skill %q", s.ID)
		}
		if s.Effectiveness < 0 {
			return nil, fmt.Errorf("skill %q: negative effectiveness %g", s.ID, s.Effectiveness)
		}
		r.skills[s.ID] = s
		r.order = append(r.order, s.ID)
	}
	if _, ok := r.skills[BasicAttack]; !ok {
		r.skills[BasicAttack] = &Skill{ID: BasicAttack, Name: "Attack", Effectiveness: 100}
		r.order = append(r.order, BasicAttack)
	}
	return r, nil
}

// Get returns the skill with id, or nil.
func (r *Registry) Get(id string) *Skill {
	return r.skills[id]
}

// IDs returns all skill IDs in definition order.
func (r *Registry) IDs() []string {
	return slices.Clone(r.order)
}

// Available returns the skills caster may use: BasicAttack plus every
// skill granted by equipment that the registry knows.
func (r *Registry) Available(caster *model.Character) []*Skill {
	out := []*Skill{r.skills[BasicAttack]}
	for _, id := range caster.Equipment().Skills() {
		if s, ok := r.skills[id]; ok && id != BasicAttack {
			out = append(out, s)
		}
	}
	return out
}

// Use resolves skillID from caster on target.
func (r *Registry) Use(res *combat.Resolver, caster *model.Character, target combat.Combatant, skillID string) (combat.Hit, error) {
	s := r.Get(skillID)
	if s == nil {
		return combat.Hit{}, fmt.Errorf("%s: %w", skillID, ErrSkillNotFound)
	}
	if skillID != BasicAttack && !caster.Equipment().HasSkill(skillID) {
		return combat.Hit{}, fmt.Errorf("%s: %w", skillID, ErrSkillNotGranted)
	}
	if s.Buff != nil {
		return combat.Hit{}, fmt.Errorf("%s: %w", skillID, ErrNotAttack)
	}
	if caster.IsDead() {
		return combat.Hit{}, ErrCasterDead
	}

	hit, ok := res.Resolve(caster, target, s.Multiplier())
	if !ok {
		return combat.Hit{}, ErrTargetDead
	}
	return hit, nil
}

// Buff applies the self-buff skillID to caster through buffs.
// Returns false when a stronger buff of the same group is already active.
func (r *Registry) Buff(caster *model.Character, buffs *Buffs, skillID string) (bool, error) {
	s := r.Get(skillID)
	if s == nil {
		return false, fmt.Errorf("%s: %w", skillID, ErrSkillNotFound)
	}
	if s.Buff == nil {
		return false, fmt.Errorf("%s: %w", skillID, ErrNotBuff)
	}
	if !caster.Equipment().HasSkill(skillID) {
		return false, fmt.Errorf("%s: %w", skillID, ErrSkillNotGranted)
	}
	if caster.IsDead() {
		return false, ErrCasterDead
	}
	return buffs.Add(s.NewBuff()), nil
}
