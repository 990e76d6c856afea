package jobs

import (
	"strconv"
	"strings"

	"workwise-backend/internal/listing"
)

// Salary buckets, in lakhs per annum.
const (
	SalaryBelow10 = "below-10"
	Salary10To20  = "10-20"
	SalaryAbove20 = "above-20"
)

// Date posted buckets.
const (
	PostedToday     = "today"
	PostedThisWeek  = "this-week"
	PostedThisMonth = "this-month"
)

// Criteria holds the board's search and filter panel values. Empty fields
// do not filter; unknown bucket values filter nothing out.
type Criteria struct {
	Query      string
	Location   string
	Category   string
	JobType    string
	Salary     string
	DatePosted string
}

// Filter returns the jobs matching every criterion, in input order.
func Filter(items []Job, c Criteria) []Job {
	return listing.Filter(items, func(j Job) bool {
		if q := strings.TrimSpace(c.Query); q != "" {
			if !listing.ContainsFold(j.Title, q) && !listing.ContainsFold(j.Company, q) && !listing.ContainsFold(j.Description, q) {
				return false
			}
		}
		if !listing.ContainsFold(j.Location, strings.TrimSpace(c.Location)) {
			return false
		}
		if cat := strings.TrimSpace(c.Category); cat != "" && !hasSkill(j, cat) {
			return false
		}
		if c.JobType != "" && !strings.EqualFold(j.JobType, strings.TrimSpace(c.JobType)) {
			return false
		}
		return inSalary(j.SalaryRange, c.Salary) && inPosted(j.PostedAt, c.DatePosted)
	})
}

// Sort orders jobs by state.Key: title, company, location, salary or
// posted (newest first when ascending). Unknown keys keep input order.
func Sort(items []Job, state listing.SortState) []Job {
	return listing.SortStable(items, lessFor(state.Key), state.Direction)
}

func lessFor(key string) func(a, b Job) bool {
	switch key {
	case "title":
		return func(a, b Job) bool { return listing.CompareFold(a.Title, b.Title) < 0 }
	case "company":
		return func(a, b Job) bool { return listing.CompareFold(a.Company, b.Company) < 0 }
	case "location":
		return func(a, b Job) bool { return listing.CompareFold(a.Location, b.Location) < 0 }
	case "salary":
		return func(a, b Job) bool {
			alo, ahi, _ := ParseSalary(a.SalaryRange)
			blo, bhi, _ := ParseSalary(b.SalaryRange)
			if alo != blo {
				return alo < blo
			}
			return ahi < bhi
		}
	case "posted":
		return func(a, b Job) bool { return ageHours(a.PostedAt) < ageHours(b.PostedAt) }
	}
	return nil
}

func hasSkill(j Job, category string) bool {
	for _, s := range j.Skills {
		if listing.ContainsFold(s, category) {
			return true
		}
	}
	return false
}

// ParseSalary reads "₹min-max LPA".
func ParseSalary(s string) (low, high int, ok bool) {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "₹"))
	lo, hi, found := strings.Cut(s, "-")
	if !found {
		return 0, 0, false
	}
	hi, _, _ = strings.Cut(strings.TrimSpace(hi), " ")
	low, err := strconv.Atoi(strings.TrimSpace(lo))
	if err != nil {
		return 0, 0, false
	}
	high, err = strconv.Atoi(hi)
	if err != nil {
		return 0, 0, false
	}
	return low, high, true
}

func inSalary(raw, bucket string) bool {
	switch bucket {
	case SalaryBelow10, Salary10To20, SalaryAbove20:
	default:
		return true
	}
	low, high, ok := ParseSalary(raw)
	if !ok {
		return false
	}
	switch bucket {
	case SalaryBelow10:
		return low < 10
	case Salary10To20:
		return low >= 10 && high <= 20
	default:
		return high >= 20
	}
}

// inPosted matches the relative label by substring, so "this-month" keeps
// anything not measured in months.
func inPosted(label, bucket string) bool {
	switch bucket {
	case PostedToday:
		return strings.Contains(label, "hour")
	case PostedThisWeek:
		return strings.Contains(label, "day") || strings.Contains(label, "hour")
	case PostedThisMonth:
		return !strings.Contains(label, "month") || strings.Contains(label, "week") || strings.Contains(label, "day")
	}
	return true
}

const unknownAge = 1 << 30

var unitHours = []struct {
	unit  string
	hours int
}{
	{"hour", 1},
	{"day", 24},
	{"week", 24 * 7},
	{"month", 24 * 30},
}

// ageHours approximates a "N units ago" label; unreadable labels sort last.
func ageHours(label string) int {
	fields := strings.Fields(label)
	if len(fields) < 2 {
		return unknownAge
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return unknownAge
	}
	for _, u := range unitHours {
		if strings.HasPrefix(fields[1], u.unit) {
			return n * u.hours
		}
	}
	return unknownAge
}
