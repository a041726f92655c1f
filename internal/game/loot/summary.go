package loot

import (
	"github.com/udisondev/arpgcore/internal/game/affix"
	"github.com/udisondev/arpgcore/internal/model"
)

// Summary aggregates statistics over generated items.
type Summary struct {
	Items    int
	ByRarity [3]int
	ByTier   [affix.MaxTier + 1]int
	Affixes  int
	// Groups counts how often each affix group rolled.
	Groups map[string]int
}

// Add records item.
func (s *Summary) Add(item *model.Item) {
	if s.Groups == nil {
		s.Groups = make(map[string]int)
	}
	s.Items++
	if r := item.Rarity(); int(r) < len(s.ByRarity) {
		s.ByRarity[r]++
	}
	for _, a := range item.Affixes() {
		s.Affixes++
		if tier := a.Template.Tier; tier >= 0 && tier < len(s.ByTier) {
			s.ByTier[tier]++
		}
		s.Groups[a.Template.Group]++
	}
}

// Merge folds other into s.
func (s *Summary) Merge(other Summary) {
	if s.Groups == nil {
		s.Groups = make(map[string]int, len(other.Groups))
	}
	s.Items += other.Items
	s.Affixes += other.Affixes
	for i, n := range other.ByRarity {
		s.ByRarity[i] += n
	}
	for i, n := range other.ByTier {
		s.ByTier[i] += n
	}
	for g, n := range other.Groups {
		s.Groups[g] += n
	}
}

// AffixesPerItem returns the mean affix count.
func (s *Summary) AffixesPerItem() float64 {
	if s.Items == 0 {
		return 0
	}
	return float64(s.Affixes) / float64(s.Items)
}
