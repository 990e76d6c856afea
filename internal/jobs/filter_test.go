package jobs

import (
	"strings"
	"testing"

	"workwise-backend/internal/listing"
)

func jobIDs(items []Job) string {
	out := make([]string, len(items))
	for i, j := range items {
		out[i] = j.ID
	}
	return strings.Join(out, ",")
}

func TestFilter(t *testing.T) {
	cases := []struct {
		name string
		c    Criteria
		want string
	}{
		{"none", Criteria{}, "1,2,3,4,5,6,7,8"},
		{"location", Criteria{Location: "bangalore"}, "1,2,3,4,5,6"},
		{"query matches description", Criteria{Query: "kubernetes"}, "6"},
		{"query matches company", Criteria{Query: "flipkart"}, "2"},
		{"category", Criteria{Category: "aws"}, "1,6"},
		{"job type", Criteria{JobType: "full-time"}, "1,2,3,4,5,6,7,8"},
		{"job type none", Criteria{JobType: "Contract"}, ""},
		{"salary below 10", Criteria{Salary: SalaryBelow10}, ""},
		{"salary 10-20", Criteria{Salary: Salary10To20}, "5"},
		{"salary above 20", Criteria{Salary: SalaryAbove20}, "1,2,3,4,6,7,8"},
		{"posted today", Criteria{DatePosted: PostedToday}, ""},
		{"posted this week", Criteria{DatePosted: PostedThisWeek}, "1,3,4,8"},
		{"posted this month", Criteria{DatePosted: PostedThisMonth}, "1,2,3,4,5,6,7,8"},
		{"combined", Criteria{Location: "Bangalore", Category: "react", DatePosted: PostedThisWeek}, "1"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := jobIDs(Filter(Catalog(), tc.c)); got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestFilterIsRepeatable(t *testing.T) {
	c := Criteria{Location: "Bangalore", Salary: SalaryAbove20}
	if jobIDs(Filter(Catalog(), c)) != jobIDs(Filter(Catalog(), c)) {
		t.Fatalf("filter is not deterministic")
	}
}

func TestSort(t *testing.T) {
	jobs := Catalog()
	if got := jobIDs(Sort(jobs, listing.SortState{Key: "company", Direction: listing.Asc})); got != "8,5,2,3,6,7,4,1" {
		t.Fatalf("company asc got %s", got)
	}
	if got := jobIDs(Sort(jobs, listing.SortState{Key: "posted", Direction: listing.Asc})); got != "1,3,8,4,2,5,7,6" {
		t.Fatalf("posted asc got %s", got)
	}
	if got := jobIDs(Sort(jobs, listing.SortState{Key: "salary", Direction: listing.Desc})); got != "2,1,8,3,6,4,7,5" {
		t.Fatalf("salary desc got %s", got)
	}
}

func TestParseSalary(t *testing.T) {
	lo, hi, ok := ParseSalary("₹12-18 LPA")
	if !ok || lo != 12 || hi != 18 {
		t.Fatalf("got %d %d %v", lo, hi, ok)
	}
	if _, _, ok := ParseSalary("Competitive"); ok {
		t.Fatalf("expected parse failure")
	}
}
