// Package bestiary provides the closed set of monster kinds, the index
// resolution rule, and monster template/instance handling.
package bestiary

// Kind identifies one of the three monster kinds.
type Kind int

const (
	KindGuardian Kind = iota
	KindBandit
	KindSpider
)

// String returns the display name of the Kind.
// Postcondition: returns "Guardian", "Bandit", or "Spider".
func (k Kind) String() string {
	switch k {
	case KindGuardian:
		return "Guardian"
	case KindBandit:
		return "Bandit"
	default:
		return "Spider"
	}
}

// Resolve maps an arena slot index to a monster Kind:
// 0 → Guardian, 1 and 2 → Bandit, every other integer → Spider.
//
// Resolve is a total function. Out-of-range indices, negatives included,
// deliberately fall back to Spider rather than failing.
func Resolve(index int) Kind {
	switch index {
	case 0:
		return KindGuardian
	case 1, 2:
		return KindBandit
	default:
		return KindSpider
	}
}
