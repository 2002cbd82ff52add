// Package fight implements the hit-sequence damage engine: an ordered list
// of fixed-magnitude hits folded into a shared accumulator, with a
// reversible undo pass.
package fight

import "fmt"

// Kind identifies a hit variant.
// The zero value (KindUnknown) is intentionally invalid.
type Kind int

const (
	KindUnknown Kind = iota // zero value; intentionally invalid
	KindHard                // magnitude 10
	KindSoft                // magnitude 2
)

// Magnitude returns the fixed unsigned magnitude of the hit variant.
// Postcondition: returns 10 for KindHard, 2 for KindSoft, and 0 for
// KindUnknown (the zero value is intentionally invalid but has magnitude 0).
func (k Kind) Magnitude() int {
	switch k {
	case KindHard:
		return 10
	case KindSoft:
		return 2
	default:
		return 0
	}
}

// Delta returns the signed accumulator delta for one application. The sign
// is chosen solely by the undo flag at apply time; it is never stored on
// the hit.
func (k Kind) Delta(undo bool) int {
	if undo {
		return -k.Magnitude()
	}
	return k.Magnitude()
}

// Label returns the fixed display label printed on every application,
// forward and undo alike.
func (k Kind) Label() string {
	switch k {
	case KindHard:
		return "Hard Hit x10"
	case KindSoft:
		return "Soft Hit x2"
	default:
		return "Unknown Hit"
	}
}

// String returns the lowercase name of the Kind.
// Postcondition: returns "hard", "soft", or "unknown".
func (k Kind) String() string {
	switch k {
	case KindHard:
		return "hard"
	case KindSoft:
		return "soft"
	default:
		return "unknown"
	}
}

// ParseKind maps a hit plan entry to a Kind.
//
// Postcondition: Returns a valid Kind or a non-nil error; KindUnknown is
// never returned with a nil error.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "hard":
		return KindHard, nil
	case "soft":
		return KindSoft, nil
	default:
		return KindUnknown, fmt.Errorf("unknown hit kind %q", s)
	}
}

// ParsePlan maps a hit plan to its Kind sequence, preserving order.
func ParsePlan(plan []string) ([]Kind, error) {
	kinds := make([]Kind, len(plan))
	for i, s := range plan {
		k, err := ParseKind(s)
		if err != nil {
			return nil, fmt.Errorf("hit plan entry %d: %w", i, err)
		}
		kinds[i] = k
	}
	return kinds, nil
}
