// Package arena runs turn-based duels between two equipped characters.
package arena

import (
	"log/slog"

	"github.com/udisondev/arpgcore/internal/game/combat"
	"github.com/udisondev/arpgcore/internal/game/skill"
	"github.com/udisondev/arpgcore/internal/model"
)

// Fighter is a duel participant.
type Fighter struct {
	Character *model.Character
	Buffs     *skill.Buffs
}

// NewFighter wraps c with an empty buff list.
func NewFighter(c *model.Character) *Fighter {
	return &Fighter{Character: c, Buffs: skill.NewBuffs(c.Stats())}
}

// Result summarises a finished duel.
type Result struct {
	Winner *model.Character // nil on a draw
	Rounds int
	Hits   int
	// Damage dealt by each side, indexed like the fighters passed to Run.
	Damage [2]float64
}

// Duel pits two fighters against each other. Each round both sides first
// refresh their buffs, then attack with their strongest granted skill.
type Duel struct {
	skills   *skill.Registry
	resolver *combat.Resolver
	tickMs   int32
}

// New creates a Duel. observer receives every hit and may be nil.
func New(skills *skill.Registry, calc *combat.Calculator, observer combat.HitObserver, tickMs int32) *Duel {
	return &Duel{
		skills:   skills,
		resolver: combat.NewResolver(calc, observer),
		tickMs:   tickMs,
	}
}

// Run fights until one side dies or maxRounds pass.
func (d *Duel) Run(a, b *Fighter, maxRounds int) Result {
	fighters := [2]*Fighter{a, b}
	var res Result

	for round := 1; round <= maxRounds; round++ {
		res.Rounds = round
		for i, f := range fighters {
			foe := fighters[1-i]
			if f.Character.IsDead() || foe.Character.IsDead() {
				break
			}
			d.castBuffs(f)

			attack := d.BestAttack(f.Character)
			hit, err := d.skills.Use(d.resolver, f.Character, foe.Character, attack.ID)
			if err != nil {
				slog.Debug("attack failed", "attacker", f.Character.Name(), "skill", attack.ID, "error", err)
				continue
			}
			res.Hits++
			res.Damage[i] += hit.Damage
		}

		switch {
		case a.Character.IsDead():
			res.Winner = b.Character
			return res
		case b.Character.IsDead():
			res.Winner = a.Character
			return res
		}

		for _, f := range fighters {
			for _, id := range f.Buffs.Tick(d.tickMs) {
				slog.Debug("buff expired", "character", f.Character.Name(), "buff", id)
			}
		}
	}
	return res
}

// BestAttack returns the granted attack skill with the highest multiplier.
func (d *Duel) BestAttack(c *model.Character) *skill.Skill {
	var best *skill.Skill
	for _, s := range d.skills.Available(c) {
		if s.Buff != nil {
			continue
		}
		if best == nil || s.Multiplier() > best.Multiplier() {
			best = s
		}
	}
	return best
}

func (d *Duel) castBuffs(f *Fighter) {
	for _, s := range d.skills.Available(f.Character) {
		if s.Buff == nil {
			continue
		}
		if _, err := d.skills.Buff(f.Character, f.Buffs, s.ID); err != nil {
			slog.Debug("buff failed", "character", f.Character.Name(), "skill", s.ID, "error", err)
		}
	}
}
