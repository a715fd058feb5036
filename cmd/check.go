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
	"errors"
	"fmt"
	"os"

	"tempmode/pkg/mode"
	"tempmode/pkg/suite"

	"github.com/spf13/cobra"
)

var (
	suitePath  string
	checkAt    string
	checkForce bool

	// CheckCmd represents the check command
	CheckCmd = &cobra.Command{
		Use:   "check",
		Short: "Manage and run expected-output checks",
		Long: `Maintain a suite of datasets with their expected sweep output and run
the compute pipeline against them. Results are cached per test, keyed on
the content of the input and expected output, so unchanged tests are not
recomputed.`,
	}

	checkAddCmd = &cobra.Command{
		Use:   "add <input-file> <expected-file>",
		Short: "Register a dataset and its expected output in the suite",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			err := checkAddRun(args[0], args[1])
			if err != nil {
				os.Exit(1)
			}
		},
	}

	checkRunCmd = &cobra.Command{
		Use:   "run",
		Short: "Run the suite and compare against expected output",
		Run: func(cmd *cobra.Command, args []string) {
			err := checkRunRun()
			if err != nil {
				os.Exit(1)
			}
		},
	}
)

func init() {
	RootCmd.AddCommand(CheckCmd)
	CheckCmd.AddCommand(checkAddCmd)
	CheckCmd.AddCommand(checkRunCmd)

	CheckCmd.PersistentFlags().StringVarP(&suitePath, "suite", "f", "tempmode-tests.yaml", "suite file")
	CheckCmd.PersistentFlags().BoolVarP(&debug, "debug", "D", false, "show debug level log")
	checkRunCmd.Flags().StringVarP(&checkAt, "at", "a", "", "run only the selected tests, e.g. '2' or '1-3,5'")
	checkRunCmd.Flags().BoolVarP(&checkForce, "force", "F", false, "recompute even when a cached result exists")
	checkRunCmd.Flags().IntVarP(&threads, "thread", "t", 1, "number of worker threads, 1 runs the sequential sweep")
}

func checkAddRun(inputPath, expectedPath string) error {
	logger = initLogger()

	input, err := os.ReadFile(inputPath)
	if err != nil {
		logger.Error().Err(err).Msg("read input file")
		return err
	}
	expected, err := os.ReadFile(expectedPath)
	if err != nil {
		logger.Error().Err(err).Msg("read expected file")
		return err
	}

	f, err := suite.Load(suitePath)
	if errors.Is(err, os.ErrNotExist) {
		f = &suite.File{}
	} else if err != nil {
		logger.Error().Err(err).Msg("load suite")
		return err
	}

	f.Tests = append(f.Tests, suite.Test{Input: string(input), Expected: string(expected)})
	if err := suite.Save(suitePath, f); err != nil {
		logger.Error().Err(err).Msg("save suite")
		return err
	}

	logger.Info().Int("tests", len(f.Tests)).Str("suite", suitePath).Msg("test added")
	return nil
}

func checkRunRun() error {
	logger = initLogger()

	f, err := suite.Load(suitePath)
	if err != nil {
		logger.Error().Err(err).Msg("load suite")
		return err
	}
	if len(f.Tests) == 0 {
		logger.Warn().Str("suite", suitePath).Msg("no tests registered")
		return nil
	}

	indices := make([]int, len(f.Tests))
	for i := range indices {
		indices[i] = i + 1
	}
	if len(checkAt) > 0 {
		indices, err = suite.Evaluate(checkAt, len(f.Tests))
		if err != nil {
			logger.Error().Err(err).Msg("parse selector")
			return err
		}
	}

	engine := &mode.Engine{Workers: threads}
	reports, err := suite.Run(context.Background(), f, engine, indices, checkForce)
	if err != nil {
		logger.Error().Err(err).Msg("run suite")
		return err
	}

	if saveErr := suite.Save(suitePath, f); saveErr != nil {
		logger.Warn().Err(saveErr).Msg("could not persist result cache")
	}

	passed := 0
	for _, report := range reports {
		event := logger.Info()
		if !report.Pass {
			event = logger.Error()
		}
		event = event.Int("test", report.Index).Bool("cached", report.Cached)
		if len(report.Err) > 0 {
			event = event.Str("error", report.Err)
		}
		if report.Pass {
			passed++
			event.Msg("pass")
		} else {
			event.Msg("fail")
		}
	}

	if passed < len(reports) {
		err := fmt.Errorf("%d of %d checks failed", len(reports)-passed, len(reports))
		logger.Error().Err(err).Msg("")
		return err
	}

	logger.Info().Int("passed", passed).Int("total", len(reports)).Msg("all checks passed")
	return nil
}
