package cmd

import (
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"tempmode/pkg/mode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProfile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profile.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestBuildDatasetRoundTripsThroughReader(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	pick := func() int { return rng.Intn(defaultMaxValue) + 1 }

	dataset := buildDataset(rng, 50, 3, 20, pick)

	input, err := mode.Read(strings.NewReader(dataset))
	require.NoError(t, err)
	assert.Equal(t, mode.Header{K: 3, N: 50, M: 20}, input.Header)

	// exactly M distinct days carry a reading
	set := 0
	for _, v := range input.Series.Values() {
		if v != 0 {
			set++
			assert.GreaterOrEqual(t, v, 1)
			assert.LessOrEqual(t, v, defaultMaxValue)
		}
	}
	assert.Equal(t, 20, set)
}

func TestBuildDatasetDaysAscending(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	dataset := buildDataset(rng, 30, 1, 30, func() int { return 5 })

	tokens := strings.Fields(dataset)
	require.Len(t, tokens, 3+2*30)

	prev := 0
	for i := 3; i < len(tokens); i += 2 {
		day, err := strconv.Atoi(tokens[i])
		require.NoError(t, err)
		assert.Greater(t, day, prev)
		prev = day
	}
	assert.LessOrEqual(t, prev, 30)
}

func TestLoadProfile(t *testing.T) {
	path := writeProfile(t, "10; 3\n25 ;1\n\n40;6\n")

	weights, err := loadProfile(path)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"10": 3, "25": 1, "40": 6}, weights)
}

func TestLoadProfileRejectsBadLines(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"missing separator", "10 3\n"},
		{"too many fields", "10;3;5\n"},
		{"non-integer value", "warm;3\n"},
		{"non-positive value", "0;3\n"},
		{"non-integer weight", "10;heavy\n"},
		{"non-positive weight", "10;0\n"},
		{"empty profile", "\n\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := loadProfile(writeProfile(t, tc.content))
			assert.Error(t, err)
		})
	}
}
