// Package stat implements character and item stat aggregation.
//
// A Table stores, for every stat Kind, a base value plus the modifiers
// currently registered against it. The aggregated value is
//
//	(base + ΣFlat) × (1 + ΣIncreased/100) × Π(1 + More/100)
//
// and is recomputed from the live modifier set on every mutation.
package stat

import "fmt"

// Kind identifies a single stat. Values are dense ordinals used as array indices.
type Kind uint8

const (
	PhysicalDamage Kind = iota
	FireDamage
	ColdDamage
	LightningDamage

	FireResist
	ColdResist
	LightningResist

	Armor
	Evasion

	CritChance     // percent, 0-100 scale
	CritMultiplier // percent, 150 = ×1.5

	MoveSpeed
	JumpForce

	PhysicalToFire // percent of remaining physical converted
	PhysicalToCold
	PhysicalToLightning

	MaxHealth
	MaxMana
	AttackSpeed

	KindCount
)

var kindNames = [KindCount]string{
	PhysicalDamage:      "physical_damage",
	FireDamage:          "fire_damage",
	ColdDamage:          "cold_damage",
	LightningDamage:     "lightning_damage",
	FireResist:          "fire_resist",
	ColdResist:          "cold_resist",
	LightningResist:     "lightning_resist",
	Armor:               "armor",
	Evasion:             "evasion",
	CritChance:          "crit_chance",
	CritMultiplier:      "crit_multiplier",
	MoveSpeed:           "move_speed",
	JumpForce:           "jump_force",
	PhysicalToFire:      "physical_to_fire",
	PhysicalToCold:      "physical_to_cold",
	PhysicalToLightning: "physical_to_lightning",
	MaxHealth:           "max_health",
	MaxMana:             "max_mana",
	AttackSpeed:         "attack_speed",
}

var kindByName = func() map[string]Kind {
	m := make(map[string]Kind, len(kindNames))
	for k, name := range kindNames {
		m[name] = Kind(k)
	}
	return m
}()

// Valid reports whether k is a known stat kind.
func (k Kind) Valid() bool {
	return k < KindCount
}

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("stat(%d)", uint8(k))
	}
	return kindNames[k]
}

// ParseKind resolves a stat name such as "fire_resist".
func ParseKind(name string) (Kind, error) {
	k, ok := kindByName[name]
	if !ok {
		return 0, fmt.Errorf("unknown stat %q", name)
	}
	return k, nil
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("unknown stat %d", uint8(k))
	}
	return []byte(kindNames[k]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
