// Package ids provides identifier generators that callers inject into stores
// and workflows instead of deriving ids from timestamps.
package ids

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator produces unique identifiers.
type Generator interface {
	NewID() string
}

// UUID generates random v4 UUIDs.
type UUID struct{}

func (UUID) NewID() string {
	return uuid.NewString()
}

// Sequence generates monotonically increasing ids with an optional prefix.
// The zero value starts at 1.
type Sequence struct {
	Prefix string
	n      atomic.Int64
}

func (s *Sequence) NewID() string {
	return s.Prefix + strconv.FormatInt(s.n.Add(1), 10)
}

var (
	_ Generator = UUID{}
	_ Generator = (*Sequence)(nil)
)
