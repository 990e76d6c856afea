package candidates

import (
	"strconv"
	"strings"
	"time"
	"unicode"

	"workwise-backend/internal/listing"
)

// Criteria are the table's search box and filter dialog values. Empty
// fields do not filter.
type Criteria struct {
	Query      string
	Experience string // "0-2", "3-5", "8+"
	Status     string
	Location   string
	Role       string
	Percentage string // "70-80"
}

// DefaultSort is the table's initial ordering.
var DefaultSort = listing.SortState{Key: "appliedDate", Direction: listing.Desc}

// Filter returns the candidates matching every criterion, in input order.
func Filter(items []Candidate, c Criteria) []Candidate {
	return listing.Filter(items, func(it Candidate) bool {
		if q := strings.TrimSpace(c.Query); q != "" {
			if !listing.ContainsFold(it.Name, q) && !listing.ContainsFold(it.Role, q) && !listing.ContainsFold(it.Location, q) {
				return false
			}
		}
		if c.Experience != "" && !inExperience(it.Experience, c.Experience) {
			return false
		}
		if c.Status != "" && !strings.EqualFold(string(it.Status), strings.TrimSpace(c.Status)) {
			return false
		}
		if !listing.ContainsFold(it.Location, strings.TrimSpace(c.Location)) {
			return false
		}
		if !listing.ContainsFold(it.Role, strings.TrimSpace(c.Role)) {
			return false
		}
		if c.Percentage != "" && !inPercentage(it.Percentage, c.Percentage) {
			return false
		}
		return true
	})
}

// Sort orders candidates by state.Key. Unknown keys keep input order.
func Sort(items []Candidate, state listing.SortState) []Candidate {
	return listing.SortStable(items, lessFor(state.Key), state.Direction)
}

func lessFor(key string) func(a, b Candidate) bool {
	switch key {
	case "name":
		return func(a, b Candidate) bool { return listing.CompareFold(a.Name, b.Name) < 0 }
	case "jobApplied":
		return func(a, b Candidate) bool { return listing.CompareFold(a.JobApplied, b.JobApplied) < 0 }
	case "location":
		return func(a, b Candidate) bool { return listing.CompareFold(a.Location, b.Location) < 0 }
	case "status":
		return func(a, b Candidate) bool { return a.Status < b.Status }
	case "experience":
		return func(a, b Candidate) bool { return years(a.Experience) < years(b.Experience) }
	case "appliedDate":
		return func(a, b Candidate) bool { return appliedAt(a).Before(appliedAt(b)) }
	}
	return nil
}

// leadingInt parses the integer prefix of s ("5 years" -> 5). ok is false
// when s does not start with a digit.
func leadingInt(s string) (n int, ok bool) {
	s = strings.TrimSpace(s)
	end := strings.IndexFunc(s, func(r rune) bool { return !unicode.IsDigit(r) })
	if end == -1 {
		end = len(s)
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

// years sorts unparseable experience as zero.
func years(s string) int {
	n, _ := leadingInt(s)
	return n
}

func inExperience(raw, bucket string) bool {
	years, ok := leadingInt(raw)
	if !ok {
		return false
	}
	bucket = strings.TrimSpace(bucket)
	if strings.HasSuffix(bucket, "+") {
		min, err := strconv.Atoi(strings.TrimSuffix(bucket, "+"))
		return err == nil && years >= min
	}
	min, max, ok := parseRange(bucket)
	return ok && float64(years) >= min && float64(years) <= max
}

func inPercentage(raw, bucket string) bool {
	pct, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(raw), "%"), 64)
	if err != nil {
		return false
	}
	min, max, ok := parseRange(bucket)
	return ok && pct >= min && pct <= max
}

func parseRange(s string) (float64, float64, bool) {
	lo, hi, found := strings.Cut(strings.TrimSpace(s), "-")
	if !found {
		return 0, 0, false
	}
	min, err := strconv.ParseFloat(strings.TrimSpace(lo), 64)
	if err != nil {
		return 0, 0, false
	}
	max, err := strconv.ParseFloat(strings.TrimSpace(hi), 64)
	if err != nil {
		return 0, 0, false
	}
	return min, max, true
}

func appliedAt(c Candidate) time.Time {
	t, _ := time.Parse("2006-01-02", c.AppliedDate)
	return t
}
