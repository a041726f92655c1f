package data

import (
	"fmt"
	"io"

	"github.com/udisondev/arpgcore/internal/game/skill"
	"github.com/udisondev/arpgcore/internal/game/stat"
)

type skillFile struct {
	Skills []skillDef `yaml:"skills"`
}

type skillDef struct {
	ID            string   `yaml:"id"`
	Name          string   `yaml:"name"`
	Effectiveness float64  `yaml:"effectiveness"`
	Tags          []string `yaml:"tags"`
	Buff          *buffDef `yaml:"buff"`
}

type buffDef struct {
	Group      string        `yaml:"group"`
	Level      int           `yaml:"level"`
	DurationMs int32         `yaml:"duration_ms"`
	Modifiers  []modifierDef `yaml:"modifiers"`
}

type modifierDef struct {
	Stat   stat.Kind    `yaml:"stat"`
	Type   stat.ModType `yaml:"type"`
	Amount float64      `yaml:"amount"`
}

// SkillData is the loaded skill registry.
type SkillData struct {
	Registry *skill.Registry
}

// LoadSkills parses a skills document.
func LoadSkills(r io.Reader) (*SkillData, error) {
	var f skillFile
	if err := decodeStrict(r, &f); err != nil {
		return nil, fmt.Errorf("parsing skills: %w", err)
	}

	skills := make([]*skill.Skill, 0, len(f.Skills))
	for _, def := range f.Skills {
		s := &skill.Skill{
			ID:            def.ID,
			Name:          def.Name,
			Effectiveness: def.Effectiveness,
			Tags:          def.Tags,
		}
		if def.Buff != nil {
			if def.Buff.DurationMs <= 0 {
				return nil, fmt.Errorf("skill %q: buff duration must be > 0", def.ID)
			}
			spec := &skill.BuffSpec{
				Group:      def.Buff.Group,
				Level:      def.Buff.Level,
				DurationMs: def.Buff.DurationMs,
				Modifiers:  make([]stat.Modifier, len(def.Buff.Modifiers)),
			}
			for i, m := range def.Buff.Modifiers {
				spec.Modifiers[i] = stat.Modifier{Stat: m.Stat, Type: m.Type, Amount: m.Amount}
			}
			s.Buff = spec
		}
		skills = append(skills, s)
	}

	reg, err := skill.NewRegistry(skills)
	if err != nil {
		return nil, err
	}
	return &SkillData{Registry: reg}, nil
}
