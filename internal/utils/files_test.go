package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileLineByLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lines.txt")
	require.NoError(t, os.WriteFile(path, []byte("one\ntwo\nthree\n"), 0o644))

	lines, err := FileLineByLine(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two", "three"}, lines)
}

func TestFileLineByLineMissingFile(t *testing.T) {
	_, err := FileLineByLine(filepath.Join(t.TempDir(), "absent"))
	assert.Error(t, err)
}
