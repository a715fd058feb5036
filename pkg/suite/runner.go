package suite

import (
	"context"
	"strings"

	"tempmode/pkg/mode"
)

// Report is the outcome of running one test.
type Report struct {
	Index  int
	Pass   bool
	Cached bool
	Got    string
	Err    string
}

// Run executes the selected tests through the sweep pipeline and compares
// the rendered output against each test's expected output. Results are
// cached in f.Results keyed by test digest; a cached outcome is reused
// unless force is set. The caller is responsible for saving f afterwards.
func Run(ctx context.Context, f *File, engine *mode.Engine, indices []int, force bool) ([]Report, error) {
	if f.Results == nil {
		f.Results = make(map[string]Outcome)
	}

	reports := make([]Report, 0, len(indices))
	for _, index := range indices {
		if err := ctx.Err(); err != nil {
			return reports, err
		}

		test := f.Tests[index-1]
		key := Digest(test)

		if !force {
			if cached, ok := f.Results[key]; ok {
				reports = append(reports, Report{Index: index, Pass: cached.Pass, Cached: true, Err: cached.Err})
				continue
			}
		}

		report := Report{Index: index}
		input, err := mode.Read(strings.NewReader(test.Input))
		if err != nil {
			report.Err = err.Error()
		} else {
			// Read validates k, so Sweep can only fail on cancellation
			results, sweepErr := engine.Sweep(ctx, input.Series, input.Header.K)
			if sweepErr != nil {
				return reports, sweepErr
			}
			report.Got = mode.RenderString(results)
			report.Pass = normalize(report.Got) == normalize(test.Expected)
		}

		f.Results[key] = Outcome{Pass: report.Pass, Err: report.Err}
		reports = append(reports, report)
	}

	return reports, nil
}

// normalize collapses whitespace so trailing newlines and line wrapping in
// expected-output files are not significant.
func normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
