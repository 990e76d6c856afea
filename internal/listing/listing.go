// Package listing holds the pure filter and sort primitives shared by the
// job board and the employer candidate table. Nothing here does I/O; the
// same inputs always produce the same output in the same order.
package listing

import (
	"sort"
	"strings"
)

// Direction is a sort direction.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Filter returns the items for which keep reports true, in their original
// relative order. The input slice is never modified.
func Filter[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if keep == nil || keep(it) {
			out = append(out, it)
		}
	}
	return out
}

// SortStable returns a sorted copy of items. less orders ascending; Desc
// reverses the comparison while keeping ties in input order.
func SortStable[T any](items []T, less func(a, b T) bool, dir Direction) []T {
	out := make([]T, len(items))
	copy(out, items)
	if less == nil {
		return out
	}
	sort.SliceStable(out, func(i, j int) bool {
		if dir == Desc {
			return less(out[j], out[i])
		}
		return less(out[i], out[j])
	})
	return out
}

// SortState tracks the active sort column.
type SortState struct {
	Key       string    `json:"key"`
	Direction Direction `json:"direction"`
}

// Toggle selects key. Selecting the current ascending key flips it to
// descending; any other selection starts ascending.
func (s SortState) Toggle(key string) SortState {
	if s.Key == key && s.Direction == Asc {
		return SortState{Key: key, Direction: Desc}
	}
	return SortState{Key: key, Direction: Asc}
}

// Resolve applies a column selection to prev. An empty key keeps prev; an
// explicit asc or desc in rawDir wins over toggling.
func Resolve(prev SortState, key, rawDir string) SortState {
	key = strings.TrimSpace(key)
	if key == "" {
		return prev
	}
	if dir := ParseDirection(rawDir, ""); dir != "" {
		return SortState{Key: key, Direction: dir}
	}
	return prev.Toggle(key)
}

// ParseDirection maps user input to a Direction, defaulting to def.
func ParseDirection(raw string, def Direction) Direction {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "asc":
		return Asc
	case "desc":
		return Desc
	default:
		return def
	}
}

// ContainsFold reports whether substr is within s, ignoring case. An empty
// substr always matches.
func ContainsFold(s, substr string) bool {
	if substr == "" {
		return true
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// CompareFold is a case-insensitive string comparison.
func CompareFold(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}
