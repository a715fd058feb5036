package mode

import (
	"io"
	"strconv"
	"strings"
)

const (
	// Sentinel marks positions whose window held no data.
	Sentinel = "X"

	flushThreshold = 2000
)

// Render writes one token per result, space separated with no trailing
// newline, flushing to w whenever the pending buffer reaches the flush
// threshold so large sweeps never hold the whole output in memory.
func Render(w io.Writer, results []Result) error {
	buf := make([]byte, 0, flushThreshold+24)
	for i, res := range results {
		if i > 0 {
			buf = append(buf, ' ')
		}
		if res.OK {
			buf = strconv.AppendInt(buf, int64(res.Value), 10)
		} else {
			buf = append(buf, Sentinel...)
		}
		if len(buf) >= flushThreshold {
			if _, err := w.Write(buf); err != nil {
				return err
			}
			buf = buf[:0]
		}
	}
	if len(buf) > 0 {
		if _, err := w.Write(buf); err != nil {
			return err
		}
	}
	return nil
}

// RenderString renders results into a string.
func RenderString(results []Result) string {
	var sb strings.Builder
	_ = Render(&sb, results)
	return sb.String()
}
