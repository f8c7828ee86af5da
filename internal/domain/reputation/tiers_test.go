package reputation

import "testing"

func TestLookup_Bounds(t *testing.T) {
	cases := []struct {
		score int
		title string
	}{
		{0, "Novato"},
		{99, "Novato"},
		{100, "Aprendiz"},
		{299, "Aprendiz"},
		{300, "Profissional"},
		{599, "Profissional"},
		{600, "Especialista"},
		{999, "Especialista"},
		{1000, "Mestre"},
		{50000, "Mestre"},
	}

	for _, tc := range cases {
		got := Lookup(tc.score)
		if got.Title != tc.title {
			t.Fatalf("Lookup(%d) = %q, want %q", tc.score, got.Title, tc.title)
		}
	}
}

func TestLookup_ExactlyOneTierPerScore(t *testing.T) {
	for score := 0; score <= 1500; score++ {
		matches := 0
		for _, tier := range Tiers() {
			if score >= tier.Min && (tier.Max == OpenEnded || score <= tier.Max) {
				matches++
			}
		}
		if matches != 1 {
			t.Fatalf("score %d matched %d tiers, want exactly 1", score, matches)
		}
	}
}

func TestLookup_NegativeCollapsesToLowest(t *testing.T) {
	if got := Lookup(-10); got.Title != "Novato" {
		t.Fatalf("Lookup(-10) = %q, want Novato", got.Title)
	}
}

func TestNext(t *testing.T) {
	next, ok := Next(50)
	if !ok || next.Title != "Aprendiz" {
		t.Fatalf("Next(50) = %v %v, want Aprendiz", next, ok)
	}

	if _, ok := Next(1000); ok {
		t.Fatalf("Next(1000) should have no next tier")
	}
}

func TestProgress(t *testing.T) {
	if got := Progress(0); got != 0 {
		t.Fatalf("Progress(0) = %v, want 0", got)
	}
	if got := Progress(1000); got != 1 {
		t.Fatalf("Progress(1000) = %v, want 1 for open-ended tier", got)
	}
	if got := Progress(50); got <= 0 || got >= 1 {
		t.Fatalf("Progress(50) = %v, want value in (0,1)", got)
	}
}
