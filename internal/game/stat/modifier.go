package stat

import "fmt"

// ModType is the combination class of a modifier.
type ModType int8

const (
	Flat      ModType = iota // added to the base value
	Increased                // percent, summed with other Increased modifiers
	More                     // percent, multiplied with other More modifiers
)

var modTypeNames = [...]string{Flat: "flat", Increased: "increased", More: "more"}

func (t ModType) String() string {
	if t < 0 || int(t) >= len(modTypeNames) {
		return fmt.Sprintf("modtype(%d)", int8(t))
	}
	return modTypeNames[t]
}

// MarshalText implements encoding.TextMarshaler.
func (t ModType) MarshalText() ([]byte, error) {
	if t < 0 || int(t) >= len(modTypeNames) {
		return nil, fmt.Errorf("unknown modifier type %d", int8(t))
	}
	return []byte(modTypeNames[t]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *ModType) UnmarshalText(text []byte) error {
	for i, name := range modTypeNames {
		if name == string(text) {
			*t = ModType(i)
			return nil
		}
	}
	return fmt.Errorf("unknown modifier type %q", text)
}

// Scope tells whether a modifier applies to the wearer or to the item carrying it.
type Scope int8

const (
	Global Scope = iota // affects the owning character
	Local               // affects the base stats of the item it is attached to
)

func (s Scope) String() string {
	switch s {
	case Global:
		return "global"
	case Local:
		return "local"
	default:
		return fmt.Sprintf("scope(%d)", int8(s))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Scope) MarshalText() ([]byte, error) {
	switch s {
	case Global, Local:
		return []byte(s.String()), nil
	default:
		return nil, fmt.Errorf("unknown scope %d", int8(s))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Scope) UnmarshalText(text []byte) error {
	switch string(text) {
	case "global", "":
		*s = Global
	case "local":
		*s = Local
	default:
		return fmt.Errorf("unknown scope %q", text)
	}
	return nil
}

// Modifier is a single contribution to one stat.
// Tables hold modifiers by pointer; the same pointer must be used to remove it.
type Modifier struct {
	Stat   Kind
	Amount float64
	Type   ModType
	Scope  Scope
	Source any // equipment item, buff, affix; compared with == by RemoveSource
}

func (m *Modifier) String() string {
	switch m.Type {
	case Flat:
		return fmt.Sprintf("%+g %s", m.Amount, m.Stat)
	case Increased:
		return fmt.Sprintf("%+g%% increased %s", m.Amount, m.Stat)
	default:
		return fmt.Sprintf("%+g%% more %s", m.Amount, m.Stat)
	}
}
