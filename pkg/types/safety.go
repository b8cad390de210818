package types

import (
	"encoding/json"
	"strings"
)

// SafetyLevel classifies how final a cross-chain message is considered to
// be, from strongest guarantee (Finalized) to weakest (Invalid).
type SafetyLevel int

const (
	Finalized   SafetyLevel = iota // included in finalized, irreversible chain state
	Safe                           // safe under normal reorg assumptions
	LocalSafe                      // safe with respect to the local chain only
	CrossUnsafe                    // cross-chain dependencies unresolved
	Unsafe                         // no safety guarantee
	Invalid                        // determined invalid
)

var safetyLevels = []SafetyLevel{Finalized, Safe, LocalSafe, CrossUnsafe, Unsafe, Invalid}

func (s SafetyLevel) String() string {
	return []string{"finalized", "safe", "local-safe", "cross-unsafe", "unsafe", "invalid"}[s]
}

// ParseSafetyLevel converts a textual token to a SafetyLevel. Matching is
// case-insensitive and accepts "localsafe" and "crossunsafe" as aliases for
// the hyphenated tokens. Input is matched exactly otherwise; surrounding
// whitespace is not trimmed.
func ParseSafetyLevel(s string) (SafetyLevel, error) {
	switch strings.ToLower(s) {
	case "finalized":
		return Finalized, nil
	case "safe":
		return Safe, nil
	case "local-safe", "localsafe":
		return LocalSafe, nil
	case "cross-unsafe", "crossunsafe":
		return CrossUnsafe, nil
	case "unsafe":
		return Unsafe, nil
	case "invalid":
		return Invalid, nil
	default:
		return Invalid, NewParseError(s)
	}
}

func (s SafetyLevel) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON accepts only the canonical lowercase hyphenated tokens. It
// does not go through ParseSafetyLevel: no aliases, no case folding.
func (s *SafetyLevel) UnmarshalJSON(data []byte) error {
	var token string
	if err := json.Unmarshal(data, &token); err != nil {
		return err
	}
	for _, level := range safetyLevels {
		if token == level.String() {
			*s = level
			return nil
		}
	}
	return NewDecodeError(token)
}
