package data

import (
	"fmt"
	"io"

	"github.com/udisondev/arpgcore/internal/game/affix"
	"github.com/udisondev/arpgcore/internal/game/stat"
)

type affixFile struct {
	Affixes []affixDef `yaml:"affixes"`
}

type affixDef struct {
	ID         string            `yaml:"id"`
	Group      string            `yaml:"group"`
	Tier       int               `yaml:"tier"`
	Stat       stat.Kind         `yaml:"stat"`
	Type       stat.ModType      `yaml:"type"`
	Scope      stat.Scope        `yaml:"scope"`
	Min        float64           `yaml:"min"`
	Max        float64           `yaml:"max"`
	Weight     int               `yaml:"weight"`
	Slots      []affix.Slot      `yaml:"slots"`
	Archetypes []affix.Archetype `yaml:"archetypes"`
	Tags       []string          `yaml:"tags"`
}

// AffixData is the loaded affix pool.
type AffixData struct {
	Pool *affix.Pool
}

// LoadAffixes parses an affixes document and validates every template.
func LoadAffixes(r io.Reader) (*AffixData, error) {
	var f affixFile
	if err := decodeStrict(r, &f); err != nil {
		return nil, fmt.Errorf("parsing affixes: %w", err)
	}

	templates := make([]*affix.Template, 0, len(f.Affixes))
	for _, d := range f.Affixes {
		if d.ID == "" {
			return nil, fmt.Errorf("affix in group %q has no id", d.Group)
		}
		group := d.Group
		if group == "" {
			group = d.ID
		}
		templates = append(templates, &affix.Template{
			ID:         d.ID,
			Group:      group,
			Tier:       d.Tier,
			Stat:       d.Stat,
			Type:       d.Type,
			Scope:      d.Scope,
			Min:        d.Min,
			Max:        d.Max,
			Weight:     d.Weight,
			Slots:      d.Slots,
			Archetypes: d.Archetypes,
			Tags:       d.Tags,
		})
	}

	pool, err := affix.NewPool(templates)
	if err != nil {
		return nil, err
	}
	return &AffixData{Pool: pool}, nil
}
