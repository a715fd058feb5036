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
	"fmt"
	"io"
	"math/rand"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"tempmode/internal/utils"

	mapset "github.com/deckarep/golang-set/v2"
	WeightedRandomChoice "github.com/kontoulis/go-weighted-random-choice"
	"github.com/spf13/cobra"
)

const defaultMaxValue = 40

var (
	genDays    int
	genHalf    int
	genPairs   int
	genSeed    int64
	genProfile string
	genOut     string

	// GenCmd represents the gen command
	GenCmd = &cobra.Command{
		Use:   "gen",
		Short: "Generate a random reading dataset",
		Long: `Generate a whitespace-separated dataset accepted by the compute command.
Days are distinct and emitted in ascending order. Values are uniform in
[1, 40] unless a weight profile is given, one "value;weight" line per
choice.`,
		Run: func(cmd *cobra.Command, args []string) {
			err := genRun()
			if err != nil {
				os.Exit(1)
			}
		},
	}
)

func init() {
	RootCmd.AddCommand(GenCmd)

	GenCmd.Flags().IntVarP(&genDays, "days", "n", 30, "number of days in the series")
	GenCmd.Flags().IntVarP(&genHalf, "half-window", "k", 1, "half-window written to the header")
	GenCmd.Flags().IntVarP(&genPairs, "assignments", "m", 10, "number of day/value assignments, capped at days")
	GenCmd.Flags().Int64VarP(&genSeed, "seed", "s", 0, "random seed, 0 derives one from the clock")
	GenCmd.Flags().StringVarP(&genProfile, "profile", "f", "", "weight profile file, one 'value;weight' line per choice")
	GenCmd.Flags().StringVarP(&genOut, "out", "o", "", "output file, writes stdout when omitted")
	GenCmd.Flags().BoolVarP(&debug, "debug", "D", false, "show debug level log")
}

func genRun() error {
	logger = initLogger()

	if genDays <= 0 || genHalf < 0 || genPairs < 0 {
		err := fmt.Errorf("days must be positive, half-window and assignments non-negative")
		logger.Error().Err(err).Msg("")
		return err
	}
	if genPairs > genDays {
		genPairs = genDays
		logger.Info().Int("assignments", genPairs).Msg("capped assignments to day count")
	}

	seed := genSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	// the weighted picker draws from the global source
	rand.Seed(seed)
	logger.Debug().Int64("seed", seed).Msg("seeded")

	pick := func() int {
		return rng.Intn(defaultMaxValue) + 1
	}
	if len(genProfile) > 0 {
		weights, err := loadProfile(genProfile)
		if err != nil {
			logger.Error().Err(err).Msg("load profile")
			return err
		}
		wrc := WeightedRandomChoice.New()
		wrc.AddElements(weights)
		pick = func() int {
			v, _ := strconv.Atoi(wrc.GetRandomChoice())
			return v
		}
	}

	dataset := buildDataset(rng, genDays, genHalf, genPairs, pick)

	out := os.Stdout
	if len(genOut) > 0 {
		f, err := os.Create(genOut)
		if err != nil {
			logger.Error().Err(err).Msg("create output")
			return err
		}
		defer f.Close()
		out = f
	}
	if _, err := io.WriteString(out, dataset); err != nil {
		logger.Error().Err(err).Msg("write dataset")
		return err
	}

	logger.Info().Int("days", genDays).Int("assignments", genPairs).Msg("dataset generated")
	return nil
}

// buildDataset renders a header line followed by one line per assignment.
// Days are distinct and ascending.
func buildDataset(rng *rand.Rand, days, half, pairs int, pick func() int) string {
	daySet := mapset.NewSet[int]()
	for daySet.Cardinality() < pairs {
		daySet.Add(rng.Intn(days) + 1)
	}
	sorted := daySet.ToSlice()
	sort.Ints(sorted)

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d %d %d\n", half, days, pairs)
	for _, day := range sorted {
		fmt.Fprintf(&sb, "%d %d\n", day, pick())
	}
	return sb.String()
}

func loadProfile(file string) (map[string]int, error) {
	lines, err := utils.FileLineByLine(file)
	if err != nil {
		return nil, err
	}

	weights := make(map[string]int)

	for index, line := range lines {
		if len(strings.TrimSpace(line)) == 0 {
			continue
		}
		valueWeight := strings.Split(line, ";")
		if len(valueWeight) != 2 {
			return nil, fmt.Errorf("profile line %d: must be 'value;weight'", index+1)
		}

		value := strings.TrimSpace(valueWeight[0])
		if v, convErr := strconv.Atoi(value); convErr != nil || v <= 0 {
			return nil, fmt.Errorf("profile line %d: value %q must be a positive integer", index+1, value)
		}
		weight, err := strconv.Atoi(strings.TrimSpace(valueWeight[1]))
		if err != nil {
			return nil, fmt.Errorf("profile line %d: %v", index+1, err)
		}
		if weight <= 0 {
			return nil, fmt.Errorf("profile line %d: weight must be positive", index+1)
		}
		weights[value] = weight
	}

	if len(weights) == 0 {
		return nil, fmt.Errorf("profile %s has no entries", file)
	}
	return weights, nil
}
