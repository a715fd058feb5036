package suite

import (
	"fmt"
	"strconv"
	"strings"
)

// Evaluate expands a selector expression into 1-based test indices against a
// suite of n tests. An expression is a comma-separated list of single
// indices ("2") and inclusive ranges ("1-3"), e.g. "1-3,5".
func Evaluate(expression string, n int) ([]int, error) {
	var indices []int

	for _, part := range strings.Split(expression, ",") {
		part = strings.TrimSpace(part)

		if strings.Contains(part, "-") {
			bounds := strings.Split(part, "-")
			if len(bounds) != 2 {
				return nil, fmt.Errorf("%w: range %q must have exactly one '-'", ErrInvalidSelector, part)
			}
			start, err := parseIndex(bounds[0], n)
			if err != nil {
				return nil, err
			}
			end, err := parseIndex(bounds[1], n)
			if err != nil {
				return nil, err
			}
			if start > end {
				return nil, fmt.Errorf("%w: range %q is reversed", ErrInvalidSelector, part)
			}
			for i := start; i <= end; i++ {
				indices = append(indices, i)
			}
			continue
		}

		index, err := parseIndex(part, n)
		if err != nil {
			return nil, err
		}
		indices = append(indices, index)
	}

	return indices, nil
}

func parseIndex(token string, n int) (int, error) {
	index, err := strconv.Atoi(strings.TrimSpace(token))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidSelector, token)
	}
	if index < 1 || index > n {
		return 0, fmt.Errorf("%w: index %d out of range [1, %d]", ErrInvalidSelector, index, n)
	}
	return index, nil
}
