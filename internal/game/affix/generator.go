package affix

import (
	"log/slog"
	"slices"
)

// Request describes the item an affix set is generated for.
type Request struct {
	Slot      Slot
	Archetype Archetype
	ItemLevel int
	Rarity    Rarity
}

// Generator picks and rolls affixes for new items.
type Generator struct {
	pool   *Pool
	rng    Rand
	roller *Roller
}

// NewGenerator creates a Generator over pool. rng is shared with its Roller.
func NewGenerator(pool *Pool, rng Rand) *Generator {
	return &Generator{pool: pool, rng: rng, roller: NewRoller(rng)}
}

// Generate rolls the affixes for one item.
//
// The affix count is drawn from the rarity's range. Templates are drawn by
// weight without replacement and at most one template per group is taken.
// When fewer groups are eligible than requested, fewer affixes are returned.
func (g *Generator) Generate(req Request) []*Instance {
	lo, hi := req.Rarity.AffixCount()
	if hi == 0 || g.pool == nil {
		return nil
	}
	count := lo + g.rng.IntN(hi-lo+1)

	candidates := g.pool.Eligible(req.Slot, req.Archetype, req.ItemLevel)
	out := make([]*Instance, 0, count)
	for len(out) < count && len(candidates) > 0 {
		i := g.pickWeighted(candidates)
		picked := candidates[i]
		out = append(out, g.roller.Roll(picked))
		candidates = slices.DeleteFunc(candidates, func(t *Template) bool {
			return t == picked || (picked.Group != "" && t.Group == picked.Group)
		})
	}

	if len(out) < count {
		slog.Debug("affix pool exhausted",
			"slot", req.Slot,
			"archetype", req.Archetype,
			"item_level", req.ItemLevel,
			"wanted", count,
			"rolled", len(out))
	}
	return out
}

func (g *Generator) pickWeighted(candidates []*Template) int {
	total := 0
	for _, t := range candidates {
		total += t.weight()
	}
	roll := g.rng.IntN(total)
	for i, t := range candidates {
		roll -= t.weight()
		if roll < 0 {
			return i
		}
	}
	return len(candidates) - 1
}
