package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindMinAndMax(t *testing.T) {
	min, max := FindMinAndMax([]int{5, 1, 9, 3})
	assert.Equal(t, 1, min)
	assert.Equal(t, 9, max)

	min, max = FindMinAndMax(nil)
	assert.Equal(t, 0, min)
	assert.Equal(t, 0, max)
}

func TestAvg(t *testing.T) {
	assert.Equal(t, 3, Avg([]int{1, 2, 3, 4, 5}))
	assert.Equal(t, 0, Avg(nil))
}

func TestNinetyFifth(t *testing.T) {
	s := make([]int, 100)
	for i := range s {
		s[i] = 100 - i
	}
	assert.Equal(t, 95, NinetyFifth(s))

	// input order is preserved
	assert.Equal(t, 100, s[0])

	assert.Equal(t, 0, NinetyFifth(nil))
	assert.Equal(t, 42, NinetyFifth([]int{42}))
}
