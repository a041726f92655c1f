package data

import (
	"fmt"
	"io"
	"slices"

	"github.com/udisondev/arpgcore/internal/game/affix"
	"github.com/udisondev/arpgcore/internal/game/stat"
	"github.com/udisondev/arpgcore/internal/model"
)

type baseFile struct {
	Bases []baseDef `yaml:"bases"`
}

type baseDef struct {
	ID        string             `yaml:"id"`
	Name      string             `yaml:"name"`
	Slot      affix.Slot         `yaml:"slot"`
	Archetype affix.Archetype    `yaml:"archetype"`
	Implicits map[string]float64 `yaml:"implicits"`
	Skill     string             `yaml:"skill"`
}

// BaseData indexes item bases by ID and slot.
type BaseData struct {
	byID   map[string]*model.Base
	order  []*model.Base
	bySlot [affix.SlotCount][]*model.Base
}

// LoadBases parses an item bases document.
func LoadBases(r io.Reader) (*BaseData, error) {
	var f baseFile
	if err := decodeStrict(r, &f); err != nil {
		return nil, fmt.Errorf("parsing bases: %w", err)
	}

	d := &BaseData{byID: make(map[string]*model.Base, len(f.Bases))}
	for _, def := range f.Bases {
		if def.ID == "" {
			return nil, fmt.Errorf("base %q has no id", def.Name)
		}
		if _, dup := d.byID[def.ID]; dup {
			return nil, fmt.Errorf("duplicate base %q", def.ID)
		}

		implicits := make(map[stat.Kind]float64, len(def.Implicits))
		for name, v := range def.Implicits {
			k, err := stat.ParseKind(name)
			if err != nil {
				return nil, fmt.Errorf("base %q: %w", def.ID, err)
			}
			implicits[k] = v
		}

		b := &model.Base{
			ID:        def.ID,
			Name:      def.Name,
			Slot:      def.Slot,
			Archetype: def.Archetype,
			Implicits: implicits,
			Skill:     def.Skill,
		}
		d.byID[b.ID] = b
		d.order = append(d.order, b)
		d.bySlot[b.Slot] = append(d.bySlot[b.Slot], b)
	}
	return d, nil
}

// Get returns the base with id, or nil.
func (d *BaseData) Get(id string) *model.Base {
	return d.byID[id]
}

// All returns every base in authored order.
func (d *BaseData) All() []*model.Base {
	return slices.Clone(d.order)
}

// ForSlot returns the bases that fit slot.
func (d *BaseData) ForSlot(slot affix.Slot) []*model.Base {
	if slot >= affix.SlotCount {
		return nil
	}
	return slices.Clone(d.bySlot[slot])
}
