package gallery

import (
	"fmt"
	"strings"
)

// Kind selects the gallery grammar a record was parsed with.
type Kind int

const (
	// KindCard is a card gallery entry (one printing of one card).
	KindCard Kind = iota
	// KindSet is a set gallery entry. Its grammar is not defined yet.
	KindSet
)

func (k Kind) String() string {
	switch k {
	case KindCard:
		return "card"
	case KindSet:
		return "set"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ParseKind converts a configuration or flag value into a Kind.
func ParseKind(value string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "card":
		return KindCard, nil
	case "set":
		return KindSet, nil
	default:
		return KindCard, fmt.Errorf("unknown gallery kind %q (want card or set)", value)
	}
}

// MarshalText renders the kind by name in JSON and YAML output.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText accepts the names produced by MarshalText.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
