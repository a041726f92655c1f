package affix

// Tier bounds. Tier 1 is the strongest, tier 5 the weakest.
const (
	MinTier = 1
	MaxTier = 5
)

// LevelRange is an inclusive item level range.
type LevelRange struct {
	Min int
	Max int
}

// Contains reports whether level lies in r, bounds included.
func (r LevelRange) Contains(level int) bool {
	return level >= r.Min && level <= r.Max
}

// tierLevels maps tier to the item levels that may roll it.
// Adjacent tiers share their boundary level.
var tierLevels = [MaxTier + 1]LevelRange{
	5: {1, 5},
	4: {5, 10},
	3: {10, 15},
	2: {15, 25},
	1: {25, 30},
}

// LevelRangeForTier returns the item level range of tier.
// ok is false for tiers outside [MinTier, MaxTier].
func LevelRangeForTier(tier int) (r LevelRange, ok bool) {
	if tier < MinTier || tier > MaxTier {
		return LevelRange{}, false
	}
	return tierLevels[tier], true
}

// IsTierAllowedForLevel reports whether an item of itemLevel may roll an affix of tier.
func IsTierAllowedForLevel(itemLevel, tier int) bool {
	r, ok := LevelRangeForTier(tier)
	return ok && r.Contains(itemLevel)
}

// TiersForLevel lists the tiers an item of itemLevel may roll, strongest first.
func TiersForLevel(itemLevel int) []int {
	var tiers []int
	for tier := MinTier; tier <= MaxTier; tier++ {
		if IsTierAllowedForLevel(itemLevel, tier) {
			tiers = append(tiers, tier)
		}
	}
	return tiers
}
