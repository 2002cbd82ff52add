package fight_test

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/cory-johannsen/arena/internal/game/fight"
)

func stockPlan() []fight.Kind {
	return []fight.Kind{fight.KindHard, fight.KindHard, fight.KindSoft, fight.KindHard, fight.KindSoft}
}

// Forward application of [hard, hard, soft, hard, soft] accumulates 34;
// with weapon power 100 the displayed damage is 3400.
func TestForwardPassTotal(t *testing.T) {
	seq := fight.NewSequence(stockPlan()...)
	var acc fight.Accumulator

	events := seq.Apply(&acc, false)

	if len(events) != 5 {
		t.Fatalf("expected 5 events, got %d", len(events))
	}
	if acc.Damage() != 34 {
		t.Fatalf("expected accumulator 34, got %d", acc.Damage())
	}
	if got := fight.DisplayDamage(acc.Damage(), 100); got != 3400 {
		t.Fatalf("expected display damage 3400, got %d", got)
	}
}

func TestForwardEventTotalsAreRunningSums(t *testing.T) {
	seq := fight.NewSequence(stockPlan()...)
	var acc fight.Accumulator

	events := seq.Apply(&acc, false)

	want := []int{10, 20, 22, 32, 34}
	for i, ev := range events {
		if ev.Total != want[i] {
			t.Errorf("event[%d].Total = %d, want %d", i, ev.Total, want[i])
		}
		if ev.Delta != ev.Kind.Magnitude() {
			t.Errorf("event[%d].Delta = %d, want %d", i, ev.Delta, ev.Kind.Magnitude())
		}
	}
}

// A reversed undo pass after a forward pass restores the accumulator to its
// pre-forward value.
func TestUndoRestoresAccumulator(t *testing.T) {
	seq := fight.NewSequence(stockPlan()...)
	var acc fight.Accumulator

	seq.Apply(&acc, false)
	seq.Reverse()
	events := seq.Apply(&acc, true)

	if acc.Damage() != 0 {
		t.Fatalf("expected accumulator restored to 0, got %d", acc.Damage())
	}
	if got := fight.DisplayDamage(acc.Damage(), 100); got != 0 {
		t.Fatalf("expected display damage 0, got %d", got)
	}
	// Undo order is the exact reverse of the forward order.
	wantKinds := []fight.Kind{fight.KindSoft, fight.KindHard, fight.KindSoft, fight.KindHard, fight.KindHard}
	for i, ev := range events {
		if ev.Kind != wantKinds[i] {
			t.Errorf("undo event[%d].Kind = %v, want %v", i, ev.Kind, wantKinds[i])
		}
		if ev.Delta != -ev.Kind.Magnitude() {
			t.Errorf("undo event[%d].Delta = %d, want %d", i, ev.Delta, -ev.Kind.Magnitude())
		}
	}
}

// Labels are fixed per variant, independent of undo mode.
func TestLabelsIndependentOfUndo(t *testing.T) {
	seq := fight.NewSequence(fight.KindHard, fight.KindSoft)
	var acc fight.Accumulator

	forward := seq.Apply(&acc, false)
	undo := seq.Apply(&acc, true)

	for i := range forward {
		if forward[i].Label != undo[i].Label {
			t.Errorf("label differs between modes: %q vs %q", forward[i].Label, undo[i].Label)
		}
	}
	if forward[0].Label != "Hard Hit x10" || forward[1].Label != "Soft Hit x2" {
		t.Errorf("unexpected labels: %q, %q", forward[0].Label, forward[1].Label)
	}
}

func TestReverseFlipsTraversalOrder(t *testing.T) {
	seq := fight.NewSequence(stockPlan()...)
	seq.Reverse()

	want := []fight.Kind{fight.KindSoft, fight.KindHard, fight.KindSoft, fight.KindHard, fight.KindHard}
	got := seq.Hits()
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("hits[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestNewSequenceCopiesInput(t *testing.T) {
	hits := []fight.Kind{fight.KindHard, fight.KindSoft}
	seq := fight.NewSequence(hits...)
	hits[0] = fight.KindSoft

	if seq.Hits()[0] != fight.KindHard {
		t.Error("sequence shares storage with caller slice")
	}
}

func TestSequenceIDsAreUnique(t *testing.T) {
	a := fight.NewSequence(fight.KindHard)
	b := fight.NewSequence(fight.KindHard)
	if a.ID() == b.ID() || a.ID() == "" {
		t.Errorf("expected distinct non-empty IDs, got %q and %q", a.ID(), b.ID())
	}
}

func TestParsePlan(t *testing.T) {
	kinds, err := fight.ParsePlan([]string{"hard", "soft"})
	if err != nil {
		t.Fatalf("ParsePlan: %v", err)
	}
	if kinds[0] != fight.KindHard || kinds[1] != fight.KindSoft {
		t.Errorf("ParsePlan = %v", kinds)
	}

	if _, err := fight.ParsePlan([]string{"hard", "wild"}); err == nil {
		t.Error("expected error for unknown entry")
	}
}

// Property: for any hit list, a forward pass followed by Reverse and an
// undo pass restores the accumulator to its starting value.
func TestPropertyUndoIsExactInverse(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		kinds := rapid.SliceOfN(
			rapid.SampledFrom([]fight.Kind{fight.KindHard, fight.KindSoft}), 0, 50,
		).Draw(t, "hits")

		var acc fight.Accumulator
		start := acc.Damage()

		seq := fight.NewSequence(kinds...)
		seq.Apply(&acc, false)
		seq.Reverse()
		seq.Apply(&acc, true)

		if acc.Damage() != start {
			t.Fatalf("accumulator not restored: got %d, want %d", acc.Damage(), start)
		}
	})
}

// Property: the forward total equals the sum of the magnitudes, regardless
// of order.
func TestPropertyForwardTotalIsMagnitudeSum(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		kinds := rapid.SliceOfN(
			rapid.SampledFrom([]fight.Kind{fight.KindHard, fight.KindSoft}), 0, 50,
		).Draw(t, "hits")

		want := 0
		for _, k := range kinds {
			want += k.Magnitude()
		}

		var acc fight.Accumulator
		fight.NewSequence(kinds...).Apply(&acc, false)

		if acc.Damage() != want {
			t.Fatalf("accumulator = %d, want %d", acc.Damage(), want)
		}
	})
}
