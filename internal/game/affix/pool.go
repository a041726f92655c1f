package affix

import (
	"fmt"
	"slices"
)

// Pool is an immutable set of affix templates.
type Pool struct {
	templates []*Template
	byID      map[string]*Template
}

// NewPool validates templates and builds a Pool.
func NewPool(templates []*Template) (*Pool, error) {
	p := &Pool{
		templates: make([]*Template, 0, len(templates)),
		byID:      make(map[string]*Template, len(templates)),
	}
	for _, t := range templates {
		if t == nil {
			continue
		}
		if err := t.Validate(); err != nil {
			return nil, err
		}
		if _, dup := p.byID[t.ID]; dup {
			return nil, fmt.Errorf("duplicate affix template %q", t.ID)
		}
		p.templates = append(p.templates, t)
		p.byID[t.ID] = t
	}
	return p, nil
}

// Len returns the number of templates.
func (p *Pool) Len() int { return len(p.templates) }

// Template returns the template with id, or nil.
func (p *Pool) Template(id string) *Template {
	return p.byID[id]
}

// Templates returns all templates in authored order.
func (p *Pool) Templates() []*Template {
	return slices.Clone(p.templates)
}

// Eligible returns the templates that may roll on an item of the given slot,
// defence archetype and level. Filters apply in that order.
func (p *Pool) Eligible(slot Slot, archetype Archetype, itemLevel int) []*Template {
	var out []*Template
	for _, t := range p.templates {
		if !t.AllowsSlot(slot) || !t.AllowsArchetype(archetype) {
			continue
		}
		if !IsTierAllowedForLevel(itemLevel, t.Tier) {
			continue
		}
		out = append(out, t)
	}
	return out
}
