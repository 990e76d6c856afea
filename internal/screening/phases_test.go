package screening

import "testing"

func TestPhasesWithinBuckets(t *testing.T) {
	for p := -10; p <= 110; p++ {
		phases := Phases(p)
		if len(phases) != 3 {
			t.Fatalf("expected 3 phases, got %d", len(phases))
		}
		sum := 0
		for _, ph := range phases {
			if ph.Progress < 0 || ph.Progress > ph.Max {
				t.Fatalf("p=%d: phase %s out of bucket: %d/%d", p, ph.Name, ph.Progress, ph.Max)
			}
			sum += ph.Progress
		}
		if sum > 100 {
			t.Fatalf("p=%d: phases sum to %d", p, sum)
		}
		if p >= 0 && p <= 100 && sum != p {
			t.Fatalf("p=%d: phases sum to %d", p, sum)
		}
	}
}

func TestPhasesValues(t *testing.T) {
	cases := []struct {
		p    int
		want [3]int
	}{
		{0, [3]int{0, 0, 0}},
		{25, [3]int{25, 0, 0}},
		{40, [3]int{40, 0, 0}},
		{65, [3]int{40, 25, 0}},
		{90, [3]int{40, 40, 10}},
		{100, [3]int{40, 40, 20}},
	}
	for _, tc := range cases {
		phases := Phases(tc.p)
		for i, want := range tc.want {
			if phases[i].Progress != want {
				t.Fatalf("p=%d phase %d: got %d want %d", tc.p, i, phases[i].Progress, want)
			}
		}
	}
	if Phases(0)[1].Label != "Finding matching jobs" {
		t.Fatalf("unexpected label %q", Phases(0)[1].Label)
	}
}

func TestBadgeFor(t *testing.T) {
	cases := map[int]Badge{100: BadgeGreen, 90: BadgeGreen, 89: BadgeBlue, 80: BadgeBlue, 79: BadgeYellow, 0: BadgeYellow}
	for pct, want := range cases {
		if got := BadgeFor(pct); got != want {
			t.Fatalf("BadgeFor(%d)=%s want %s", pct, got, want)
		}
	}
}
