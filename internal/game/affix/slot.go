package affix

import "fmt"

// Slot is an equipment slot.
type Slot uint8

const (
	SlotWeapon Slot = iota
	SlotOffhand
	SlotHelmet
	SlotChest
	SlotGloves
	SlotBoots
	SlotBelt
	SlotAmulet
	SlotRing

	SlotCount
)

var slotNames = [SlotCount]string{
	SlotWeapon:  "weapon",
	SlotOffhand: "offhand",
	SlotHelmet:  "helmet",
	SlotChest:   "chest",
	SlotGloves:  "gloves",
	SlotBoots:   "boots",
	SlotBelt:    "belt",
	SlotAmulet:  "amulet",
	SlotRing:    "ring",
}

func (s Slot) String() string {
	if s >= SlotCount {
		return fmt.Sprintf("slot(%d)", uint8(s))
	}
	return slotNames[s]
}

// MarshalText implements encoding.TextMarshaler.
func (s Slot) MarshalText() ([]byte, error) {
	if s >= SlotCount {
		return nil, fmt.Errorf("slot %d: %w", uint8(s), ErrUnknownSlot)
	}
	return []byte(slotNames[s]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Slot) UnmarshalText(text []byte) error {
	for i, name := range slotNames {
		if name == string(text) {
			*s = Slot(i)
			return nil
		}
	}
	return fmt.Errorf("slot %q: %w", text, ErrUnknownSlot)
}

// Archetype is the defence family of an armour base.
type Archetype uint8

const (
	ArchetypeNone Archetype = iota // weapons, jewellery
	ArchetypeArmor
	ArchetypeEvasion
	ArchetypeHybrid
)

var archetypeNames = [...]string{
	ArchetypeNone:    "none",
	ArchetypeArmor:   "armor",
	ArchetypeEvasion: "evasion",
	ArchetypeHybrid:  "hybrid",
}

func (a Archetype) String() string {
	if int(a) >= len(archetypeNames) {
		return fmt.Sprintf("archetype(%d)", uint8(a))
	}
	return archetypeNames[a]
}

// MarshalText implements encoding.TextMarshaler.
func (a Archetype) MarshalText() ([]byte, error) {
	if int(a) >= len(archetypeNames) {
		return nil, fmt.Errorf("archetype %d: %w", uint8(a), ErrUnknownDefense)
	}
	return []byte(archetypeNames[a]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Archetype) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*a = ArchetypeNone
		return nil
	}
	for i, name := range archetypeNames {
		if name == string(text) {
			*a = Archetype(i)
			return nil
		}
	}
	return fmt.Errorf("archetype %q: %w", text, ErrUnknownDefense)
}

// Rarity decides how many affixes an item receives.
type Rarity uint8

const (
	RarityNormal Rarity = iota
	RarityMagic
	RarityRare
)

var rarityNames = [...]string{
	RarityNormal: "normal",
	RarityMagic:  "magic",
	RarityRare:   "rare",
}

func (r Rarity) String() string {
	if int(r) >= len(rarityNames) {
		return fmt.Sprintf("rarity(%d)", uint8(r))
	}
	return rarityNames[r]
}

// ParseRarity resolves a rarity name.
func ParseRarity(name string) (Rarity, error) {
	for i, n := range rarityNames {
		if n == name {
			return Rarity(i), nil
		}
	}
	return 0, fmt.Errorf("rarity %q: %w", name, ErrUnknownRarity)
}

// MarshalText implements encoding.TextMarshaler.
func (r Rarity) MarshalText() ([]byte, error) {
	if int(r) >= len(rarityNames) {
		return nil, fmt.Errorf("rarity %d: %w", uint8(r), ErrUnknownRarity)
	}
	return []byte(rarityNames[r]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Rarity) UnmarshalText(text []byte) error {
	parsed, err := ParseRarity(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// AffixCount returns the inclusive range of affixes for r.
func (r Rarity) AffixCount() (lo, hi int) {
	switch r {
	case RarityMagic:
		return 1, 2
	case RarityRare:
		return 3, 4
	default:
		return 0, 0
	}
}
