package mode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackerEmptyWindow(t *testing.T) {
	_, ok := Build(nil).Mode()
	assert.False(t, ok)

	_, ok = Build([]int{}).Mode()
	assert.False(t, ok)
}

func TestTrackerAllZeros(t *testing.T) {
	_, ok := Build([]int{0, 0, 0}).Mode()
	assert.False(t, ok)
}

func TestTrackerZerosSkipped(t *testing.T) {
	v, ok := Build([]int{0, 7, 0, 0}).Mode()
	require.True(t, ok)
	assert.Equal(t, 7, v)

	// zeros outnumber everything but are never counted
	v, ok = Build([]int{0, 0, 0, 0, 9, 9, 8}).Mode()
	require.True(t, ok)
	assert.Equal(t, 9, v)
}

func TestTrackerUniqueMaximum(t *testing.T) {
	v, ok := Build([]int{5, 3, 5, 3, 5}).Mode()
	require.True(t, ok)
	assert.Equal(t, 5, v)
}

func TestTrackerTieBreaksTowardSmallerValue(t *testing.T) {
	cases := []struct {
		name   string
		window []int
		want   int
	}{
		{"smaller value arrives last", []int{9, 9, 2, 2}, 2},
		{"smaller value arrives first", []int{2, 2, 9, 9}, 2},
		{"interleaved", []int{9, 2, 9, 2}, 2},
		{"three-way tie", []int{7, 4, 11, 11, 4, 7}, 4},
		{"all distinct counts as full tie", []int{30, 10, 20}, 10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v, ok := Build(tc.window).Mode()
			require.True(t, ok)
			assert.Equal(t, tc.want, v)
		})
	}
}

func TestTrackerModeIsPresentInWindow(t *testing.T) {
	window := []int{4, 0, 2, 4, 2, 0, 8}
	v, ok := Build(window).Mode()
	require.True(t, ok)
	assert.Contains(t, window, v)
}

func TestTrackerBuildIdempotent(t *testing.T) {
	window := []int{6, 1, 6, 1, 3}
	first, okFirst := Build(window).Mode()
	second, okSecond := Build(window).Mode()
	assert.Equal(t, okFirst, okSecond)
	assert.Equal(t, first, second)
}

func TestTrackerBestCount(t *testing.T) {
	tr := NewTracker()
	for _, v := range []int{5, 5, 5, 2, 2} {
		tr.Add(v)
	}
	value, count, ok := tr.Best()
	require.True(t, ok)
	assert.Equal(t, 5, value)
	assert.Equal(t, 3, count)
}
