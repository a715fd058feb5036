/*
Copyright © 2026 tempmode authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"tempmode/internal"
	"tempmode/internal/utils"
	"tempmode/pkg/mode"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	logger    zerolog.Logger
	inputFile string
	threads   int
	debug     bool
	showStats bool

	// ComputeCmd represents the compute command
	ComputeCmd = &cobra.Command{
		Use:   "compute",
		Short: "Compute windowed modes for a reading series",
		Long: `Compute, for every day of a reading series, the most frequent non-zero
value within the centered window [i-k, i+k] clipped to the series bounds,
ties broken toward the smaller value.

Input is a whitespace-separated stream "k N M" followed by M "day temp"
pairs with day in [1, N]. Output is one token per day on stdout, either
the mode or X when the window holds no readings.`,
		Run: func(cmd *cobra.Command, args []string) {
			err := computeRun()
			if err != nil {
				os.Exit(1)
			}
		},
	}
)

func init() {
	RootCmd.AddCommand(ComputeCmd)

	ComputeCmd.Flags().StringVarP(&inputFile, "file", "f", "", "input file, reads stdin when omitted")
	ComputeCmd.Flags().IntVarP(&threads, "thread", "t", 1, "number of worker threads, 1 runs the sequential sweep")
	ComputeCmd.Flags().BoolVarP(&debug, "debug", "D", false, "show debug level log")
	ComputeCmd.Flags().BoolVarP(&showStats, "stats", "S", false, "print sweep latency statistics to stderr")
}

func computeRun() error {
	logger = initLogger()
	logger.Debug().Msg("compute started...")

	in := os.Stdin
	if len(inputFile) > 0 {
		f, err := os.Open(inputFile)
		if err != nil {
			logger.Error().Err(err).Msg("open input")
			return err
		}
		defer f.Close()
		in = f
	}

	input, err := mode.Read(in)
	if err != nil {
		logger.Error().Err(err).Msg("parse input")
		return err
	}
	logger.Debug().
		Int("k", input.Header.K).
		Int("days", input.Header.N).
		Int("assignments", input.Header.M).
		Msg("input parsed")

	ctx := context.Background()
	var sweeper internal.Sweeper = &mode.Engine{Workers: threads}

	start := time.Now()
	var results []mode.Result
	var latencies []int
	if showStats {
		results, latencies, err = sweeper.SweepTimed(ctx, input.Series, input.Header.K)
	} else {
		results, err = sweeper.Sweep(ctx, input.Series, input.Header.K)
	}
	if err != nil {
		logger.Error().Err(err).Msg("sweep")
		return err
	}
	total := time.Since(start)

	if err := mode.Render(os.Stdout, results); err != nil {
		logger.Error().Err(err).Msg("write output")
		return err
	}

	if showStats {
		printStats(results, latencies, input.Series, total)
	}

	logger.Debug().Int("positions", len(results)).Msg("compute completed")
	return nil
}

func initLogger() zerolog.Logger {
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	logger = log.With().Logger()
	return logger
}

func printStats(results []mode.Result, latencies []int, s *mode.Series, total time.Duration) {
	withData := 0
	for _, r := range results {
		if r.OK {
			withData++
		}
	}

	latencyMin, latencyMax := utils.FindMinAndMax(latencies)
	latencyAvg := utils.Avg(latencies)
	latency95 := utils.NinetyFifth(latencies)

	totalTime := total.Seconds()
	pps := float64(len(results)) / totalTime

	result := fmt.Sprintf(`
	Latency(us):
		min:                %d
		avg:                %d
		max:                %d
		95th percentile:    %d

	General statistics:
		total time:         %fs
		positions:          %d
		with data:          %d
		distinct values:    %d

	Sweep statistics:
		positions/s:        %f
`, latencyMin, latencyAvg, latencyMax, latency95, totalTime, len(results), withData, s.Distinct(), pps)
	fmt.Fprintln(os.Stderr, result)
}
