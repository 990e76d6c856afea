package candidates

import (
	"testing"

	"workwise-backend/internal/listing"
)

func names(items []Candidate) []string {
	out := make([]string, len(items))
	for i, c := range items {
		out[i] = c.Name
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFilter(t *testing.T) {
	withBad := append(Seed(), Candidate{ID: 6, Name: "No Data", Experience: "fresher", Percentage: "n/a"})
	cases := []struct {
		name string
		c    Criteria
		want []string
	}{
		{"no criteria", Criteria{}, []string{"Priya Sharma", "Rahul Kumar", "Sneha Patel", "Arjun Singh", "Neha Gupta", "No Data"}},
		{"experience range", Criteria{Experience: "3-5"}, []string{"Priya Sharma", "Sneha Patel", "Arjun Singh"}},
		{"experience open", Criteria{Experience: "6+"}, []string{"Rahul Kumar"}},
		{"experience none", Criteria{Experience: "8+"}, []string{}},
		{"status fold", Criteria{Status: "hired"}, []string{"Arjun Singh"}},
		{"location contains", Criteria{Location: "bangalore"}, []string{"Priya Sharma"}},
		{"role contains", Criteria{Role: "designer"}, []string{"Sneha Patel"}},
		{"percentage", Criteria{Percentage: "80-90"}, []string{"Priya Sharma", "Sneha Patel", "Arjun Singh"}},
		{"query", Criteria{Query: "india"}, []string{"Priya Sharma", "Rahul Kumar", "Sneha Patel", "Arjun Singh", "Neha Gupta"}},
		{"combined", Criteria{Experience: "0-5", Percentage: "60-80"}, []string{"Priya Sharma", "Neha Gupta"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := names(Filter(withBad, tc.c)); !equal(got, tc.want) {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestSort(t *testing.T) {
	seed := Seed()
	if got := names(Sort(seed, DefaultSort)); !equal(got, []string{"Rahul Kumar", "Priya Sharma", "Sneha Patel", "Arjun Singh", "Neha Gupta"}) {
		t.Fatalf("default sort got %v", got)
	}
	if got := names(Sort(seed, listing.SortState{Key: "experience", Direction: listing.Asc})); !equal(got, []string{"Neha Gupta", "Sneha Patel", "Arjun Singh", "Priya Sharma", "Rahul Kumar"}) {
		t.Fatalf("experience sort got %v", got)
	}
	if got := names(Sort(seed, listing.SortState{Key: "name", Direction: listing.Desc})); !equal(got, []string{"Sneha Patel", "Rahul Kumar", "Priya Sharma", "Neha Gupta", "Arjun Singh"}) {
		t.Fatalf("name desc got %v", got)
	}
	if got := names(Sort(seed, listing.SortState{Key: "unknown"})); !equal(got, names(seed)) {
		t.Fatalf("unknown key should keep order, got %v", got)
	}
	if seed[0].Name != "Priya Sharma" {
		t.Fatalf("sort mutated its input")
	}
}

func TestLeadingInt(t *testing.T) {
	cases := []struct {
		in   string
		want int
		ok   bool
	}{
		{"5 years", 5, true},
		{"12", 12, true},
		{" 3yrs", 3, true},
		{"0 years", 0, true},
		{"fresher", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		got, ok := leadingInt(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("leadingInt(%q) = %d, %v; want %d, %v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestFilterKeepsZeroYearsInFirstBucket(t *testing.T) {
	items := []Candidate{
		{ID: 1, Name: "Fresh Grad", Experience: "0 years"},
		{ID: 2, Name: "Junior Dev", Experience: "2 years"},
		{ID: 3, Name: "No Data", Experience: "fresher"},
	}
	if got := names(Filter(items, Criteria{Experience: "0-2"})); !equal(got, []string{"Fresh Grad", "Junior Dev"}) {
		t.Fatalf("got %v", got)
	}
}
