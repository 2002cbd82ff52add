package fight

import "github.com/google/uuid"

// Accumulator is the running signed damage total that hits mutate.
// Invariant: Damage() equals the sum of all deltas applied so far, in order.
type Accumulator struct {
	damage int
}

// Apply adds a signed delta to the running total.
func (a *Accumulator) Apply(delta int) {
	a.damage += delta
}

// Damage returns the current accumulated total.
func (a *Accumulator) Damage() int {
	return a.damage
}

// Event records one hit application.
type Event struct {
	Kind  Kind
	Label string
	// Delta is the signed amount applied to the accumulator.
	Delta int
	// Total is the accumulator value immediately after this application.
	Total int
}

// Sequence is an ordered, fixed list of hits built once per fight. The hit
// list never changes after construction; Reverse only flips the traversal
// order. Lifecycle: apply forward once, optionally reverse and apply once
// in undo mode, then discard.
type Sequence struct {
	id   string
	hits []Kind
}

// NewSequence builds a Sequence over its own copy of hits.
//
// Postcondition: ID() is a unique non-empty identifier; Hits() equals hits.
func NewSequence(hits ...Kind) *Sequence {
	cp := make([]Kind, len(hits))
	copy(cp, hits)
	return &Sequence{
		id:   uuid.NewString(),
		hits: cp,
	}
}

// ID returns the sequence's runtime identifier.
func (s *Sequence) ID() string { return s.id }

// Hits returns a copy of the hit list in current traversal order.
func (s *Sequence) Hits() []Kind {
	cp := make([]Kind, len(s.hits))
	copy(cp, s.hits)
	return cp
}

// Reverse flips the traversal order in place. Applying a reversed sequence
// in undo mode restores the accumulator to its value before the forward
// pass.
func (s *Sequence) Reverse() {
	for i, j := 0, len(s.hits)-1; i < j; i, j = i+1, j-1 {
		s.hits[i], s.hits[j] = s.hits[j], s.hits[i]
	}
}

// Apply folds every hit into acc in stored order, left to right. In undo
// mode each delta is negated; labels are identical in both modes.
//
// No hit reads the accumulator to decide its own delta, so the final total
// depends only on the multiset of hits; the per-event order matters only
// for display.
//
// Precondition: acc must not be nil.
// Postcondition: Returns one Event per hit, in application order;
// acc.Damage() has moved by the sum of the applied deltas.
func (s *Sequence) Apply(acc *Accumulator, undo bool) []Event {
	events := make([]Event, 0, len(s.hits))
	for _, h := range s.hits {
		delta := h.Delta(undo)
		acc.Apply(delta)
		events = append(events, Event{
			Kind:  h,
			Label: h.Label(),
			Delta: delta,
			Total: acc.Damage(),
		})
	}
	return events
}

// DisplayDamage scales an accumulated total by the weapon power scalar for
// display. The accumulator itself is never scaled.
func DisplayDamage(total, weaponPower int) int {
	return total * weaponPower
}
