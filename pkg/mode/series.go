package mode

import (
	"errors"
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

// Series is the dense per-day value array. Index 0 holds day 1. A zero entry
// means no reading exists for that day.
type Series struct {
	days []int
}

func NewSeries(n int) (*Series, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: day count %d must be positive", ErrInvalidInput, n)
	}
	return &Series{days: make([]int, n)}, nil
}

// Set records value for the 1-based day. Setting the same day twice
// overwrites, last write wins.
func (s *Series) Set(day, value int) error {
	if day < 1 || day > len(s.days) {
		return fmt.Errorf("%w: day %d out of range [1, %d]", ErrInvalidInput, day, len(s.days))
	}
	if value < 0 {
		return fmt.Errorf("%w: negative value %d for day %d", ErrInvalidInput, value, day)
	}
	s.days[day-1] = value
	return nil
}

func (s *Series) Len() int {
	return len(s.days)
}

// Values returns the backing slice. Callers must not modify it.
func (s *Series) Values() []int {
	return s.days
}

// Distinct counts the distinct non-zero values in the series.
func (s *Series) Distinct() int {
	set := mapset.NewSet[int]()
	for _, v := range s.days {
		if v != 0 {
			set.Add(v)
		}
	}
	return set.Cardinality()
}
