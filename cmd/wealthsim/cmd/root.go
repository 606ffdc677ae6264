package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "wealthsim",
	Short: "A UK wealth tax impact simulator",
	Long: `Wealthsim models the long-run impact of an annual wealth tax on the UK
wealth distribution.

It provides tools for:
  - Simulating multi-year wealth evolution across three population bands
  - Estimating annual revenue from a flat tax above £10M
  - Comparing revenue against government expenditure categories
  - Journaling runs to CSV or SQLite for later inspection
  - Serving the simulator over an HTTP API

Complete documentation is available at https://github.com/openfiscal/wealthsim`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}
