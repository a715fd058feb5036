package mode

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTokens(t *testing.T) {
	results := []Result{
		{Value: 12, OK: true},
		{OK: false},
		{Value: 7, OK: true},
	}
	assert.Equal(t, "12 X 7", RenderString(results))
}

func TestRenderEmpty(t *testing.T) {
	assert.Equal(t, "", RenderString(nil))
}

func TestRenderNoTrailingSeparator(t *testing.T) {
	out := RenderString([]Result{{Value: 1, OK: true}})
	assert.Equal(t, "1", out)
	assert.False(t, strings.HasSuffix(out, " "))
	assert.False(t, strings.HasSuffix(out, "\n"))
}

// chunkRecorder captures every Write call separately.
type chunkRecorder struct {
	chunks []string
}

func (c *chunkRecorder) Write(p []byte) (int, error) {
	c.chunks = append(c.chunks, string(p))
	return len(p), nil
}

func TestRenderChunkedFlushing(t *testing.T) {
	results := make([]Result, 3000)
	expected := make([]string, 3000)
	for i := range results {
		results[i] = Result{Value: i%97 + 1, OK: true}
		expected[i] = strconv.Itoa(i%97 + 1)
	}

	rec := &chunkRecorder{}
	require.NoError(t, Render(rec, results))

	assert.Greater(t, len(rec.chunks), 1)
	assert.Equal(t, strings.Join(expected, " "), strings.Join(rec.chunks, ""))
}
