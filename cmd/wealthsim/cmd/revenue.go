package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openfiscal/wealthsim/revenue"
)

var revenueCmd = &cobra.Command{
	Use:   "revenue",
	Short: "Estimate annual revenue from a flat wealth tax",
	Long: `Estimate the annual revenue of a flat wealth tax on net worth above
£10 million, using the Wealth Tax Commission baseline of £11.9bn per 1%,
and compare it against UK government expenditure categories.

The estimate is static: it assumes no avoidance, emigration or asset-price
response.

Examples:
  wealthsim revenue
  wealthsim revenue --rate 3`,
	RunE: runRevenue,
}

var revenueRate float64

func init() {
	rootCmd.AddCommand(revenueCmd)

	revenueCmd.Flags().Float64VarP(&revenueRate, "rate", "r", 1.0, "annual wealth tax rate in percent")
}

func runRevenue(cmd *cobra.Command, args []string) error {
	rep := revenue.Compare(revenueRate)

	fmt.Printf("Estimated annual revenue at %.1f%%: £%.1fbn\n", rep.TaxRate, rep.Revenue)
	fmt.Printf("(baseline: £%.1fbn per 1%% on wealth above £10M)\n\n", rep.Baseline)

	fmt.Printf("Against annual government expenditure:\n")
	covered := make(map[string]bool, len(rep.Covered))
	for _, name := range rep.Covered {
		covered[name] = true
	}
	for _, c := range rep.Expenditure {
		mark := " "
		if covered[c.Name] {
			mark = "✓"
		}
		fmt.Printf("  %s %-24s £%.0fbn\n", mark, c.Name, c.Amount)
	}

	if len(rep.Covered) == 0 {
		fmt.Printf("\nThe take would not fully fund any single category.\n")
	} else {
		fmt.Printf("\nThe take would fully fund %d of %d categories.\n",
			len(rep.Covered), len(rep.Expenditure))
	}
	return nil
}
