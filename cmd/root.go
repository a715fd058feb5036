package cmd

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
import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.0.1"

// RootCmd represents the base command when called without any subcommands
var (
	RootCmd = &cobra.Command{
		Use:     "tempmode",
		Short:   "Sliding-window mode CLI tool",
		Version: version,
		Long: `tempmode computes, for every day of a reading series, the most
frequent value within a centered window, ties broken toward the smaller
value, and can synthesize datasets to feed that computation`,
	}
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	RootCmd.CompletionOptions.DisableDefaultCmd = true
	err := RootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Whoops. There was an error while executing tempmode CLI '%s'\n", err)
		os.Exit(1)
	}
}

func init() {

}
