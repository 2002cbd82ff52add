package bestiary

import (
	"testing"

	"pgregory.net/rapid"
)

func TestResolveMapping(t *testing.T) {
	cases := []struct {
		index int
		want  Kind
	}{
		{0, KindGuardian},
		{1, KindBandit},
		{2, KindBandit},
		{3, KindSpider},
		{-5, KindSpider},
		{999, KindSpider},
	}
	for _, tc := range cases {
		if got := Resolve(tc.index); got != tc.want {
			t.Errorf("Resolve(%d) = %v, want %v", tc.index, got, tc.want)
		}
	}
}

func TestKindString(t *testing.T) {
	if KindGuardian.String() != "Guardian" {
		t.Errorf("KindGuardian.String() = %q", KindGuardian.String())
	}
	if KindBandit.String() != "Bandit" {
		t.Errorf("KindBandit.String() = %q", KindBandit.String())
	}
	if KindSpider.String() != "Spider" {
		t.Errorf("KindSpider.String() = %q", KindSpider.String())
	}
}

// Property: every index outside {0, 1, 2} falls back to Spider.
func TestPropertyResolveFallback(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		index := rapid.Int().Draw(t, "index")
		got := Resolve(index)
		switch index {
		case 0:
			if got != KindGuardian {
				t.Fatalf("Resolve(0) = %v", got)
			}
		case 1, 2:
			if got != KindBandit {
				t.Fatalf("Resolve(%d) = %v", index, got)
			}
		default:
			if got != KindSpider {
				t.Fatalf("Resolve(%d) = %v, want Spider", index, got)
			}
		}
	})
}
