package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/openfiscal/wealthsim/config"
	"github.com/openfiscal/wealthsim/journal"
	"github.com/openfiscal/wealthsim/pkg/id"
	"github.com/openfiscal/wealthsim/sim"
	"github.com/openfiscal/wealthsim/wealth"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a wealth tax simulation",
	Long: `Run a multi-year wealth tax simulation over the built-in UK distribution.

Parameters come from a config file, from flags, or both; a flag set on the
command line beats the file. Every run is journaled with a run ID so it can
be inspected later with 'wealthsim journal'.

Examples:
  wealthsim simulate
  wealthsim simulate --tax-rate 3 --years 30
  wealthsim simulate -f simulation.yaml --report run.org`,
	RunE: runSimulate,
}

var (
	simConfigPath string
	simTaxRate    float64
	simThresholdM float64
	simYears      int
	simGrowth     float64
	simPremium    float64
	simEfficiency float64
	simReportPath string
	simDBPath     string
	simShares     bool
)

func init() {
	rootCmd.AddCommand(simulateCmd)

	simulateCmd.Flags().StringVarP(&simConfigPath, "config", "f", "", "path to config file (YAML or JSON)")
	simulateCmd.Flags().Float64Var(&simTaxRate, "tax-rate", 2.0, "annual wealth tax rate in percent")
	simulateCmd.Flags().Float64Var(&simThresholdM, "threshold", 10, "tax threshold in £ millions")
	simulateCmd.Flags().IntVar(&simYears, "years", 20, "years to simulate")
	simulateCmd.Flags().Float64Var(&simGrowth, "growth", 5.0, "base annual growth rate in percent")
	simulateCmd.Flags().Float64Var(&simPremium, "premium", 1.0, "extra annual growth for the top band in percent")
	simulateCmd.Flags().Float64Var(&simEfficiency, "efficiency", 80, "redistribution efficiency in percent")
	simulateCmd.Flags().StringVar(&simReportPath, "report", "", "write an org-mode writeup of the run to this path")
	simulateCmd.Flags().StringVar(&simDBPath, "db", "", "journal to SQLite at this path instead of the configured journal")
	simulateCmd.Flags().BoolVar(&simShares, "shares", false, "also print each band's share of total wealth per year")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if simConfigPath != "" {
		loaded, err := config.LoadFromFile(simConfigPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	// Flags set on the command line beat the config file.
	if cmd.Flags().Changed("tax-rate") {
		cfg.Simulation.TaxRate = simTaxRate
	}
	if cmd.Flags().Changed("threshold") {
		cfg.Simulation.WealthThresholdMillions = simThresholdM
	}
	if cmd.Flags().Changed("years") {
		cfg.Simulation.Years = simYears
	}
	if cmd.Flags().Changed("growth") {
		cfg.Simulation.BaseGrowthRate = simGrowth
	}
	if cmd.Flags().Changed("premium") {
		cfg.Simulation.GrowthPremium = simPremium
	}
	if cmd.Flags().Changed("efficiency") {
		cfg.Simulation.RedistributionEfficiency = simEfficiency
	}
	if simDBPath != "" {
		cfg.Journal = config.JournalConfig{Type: "sqlite", DBPath: simDBPath}
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	dist := wealth.Default()
	params := cfg.Simulation.Parameters()

	fmt.Printf("Running wealth tax simulation\n")
	fmt.Printf("  Tax: %.1f%% on the top band (threshold £%.1fM)\n",
		cfg.Simulation.TaxRate, cfg.Simulation.WealthThresholdMillions)
	fmt.Printf("  Growth: %.1f%% base, +%.1f%% top premium\n",
		cfg.Simulation.BaseGrowthRate, cfg.Simulation.GrowthPremium)
	fmt.Printf("  Redistribution efficiency: %.0f%%\n", cfg.Simulation.RedistributionEfficiency)
	fmt.Printf("  Horizon: %d years\n\n", cfg.Simulation.Years)

	fmt.Printf("Initial distribution:\n")
	for _, g := range dist {
		fmt.Printf("  %-24s %gM people  £%.1fbn  (%.1f%%)\n",
			g.Name, g.Population, g.TotalWealth, dist.Share(g.Band)*100)
	}
	fmt.Println()

	tr := sim.Run(dist, params)
	summary := sim.Summarize(tr)

	fmt.Printf("%4s  %12s  %12s  %12s  %10s\n", "Year", "Top (£bn)", "Middle (£bn)", "Lower (£bn)", "Tax (£bn)")
	for _, s := range tr {
		fmt.Printf("%4d  %12.1f  %12.1f  %12.1f  %10.2f\n", s.Year, s.Top, s.Middle, s.Lower, s.TaxCollected)
	}

	if simShares {
		fmt.Printf("\n%4s  %8s  %8s  %8s\n", "Year", "Top", "Middle", "Lower")
		for _, sh := range tr.ShareSeries() {
			fmt.Printf("%4d  %7.2f%%  %7.2f%%  %7.2f%%\n",
				sh.Year, sh.Top*100, sh.Middle*100, sh.Lower*100)
		}
	}

	fmt.Printf("\nSummary:\n")
	fmt.Printf("  Cumulative revenue: £%.1fbn over %d years\n", summary.TotalRevenue, tr.Years())
	printShareLine("Top", summary.InitialShares.Top, summary.FinalShares.Top)
	printShareLine("Middle", summary.InitialShares.Middle, summary.FinalShares.Middle)
	printShareLine("Lower", summary.InitialShares.Lower, summary.FinalShares.Lower)

	runID := id.New()
	rec := journal.NewRunRecord(runID, time.Now().UTC(), params, tr)

	j, err := newJournal(cfg.Journal)
	if err != nil {
		return fmt.Errorf("create journal: %w", err)
	}
	defer j.Close()

	if err := journal.Record(j, rec, tr); err != nil {
		return fmt.Errorf("record run: %w", err)
	}

	if cfg.Journal.Type == "csv" {
		fmt.Printf("\nResults saved to:\n  - %s\n  - %s\n", cfg.Journal.RunsFile, cfg.Journal.SnapshotsFile)
	} else {
		fmt.Printf("\nResults saved to: %s\n", cfg.Journal.DBPath)
	}
	fmt.Printf("Run ID: %s\n", runID)

	if simReportPath != "" {
		if err := journal.WriteRunOrg(simReportPath, rec, tr); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		fmt.Printf("✓ Report written: %s\n", simReportPath)
	}

	return nil
}

func printShareLine(name string, initial, final float64) {
	fmt.Printf("  %-6s share: %.2f%% → %.2f%%  (%+.2fpp)\n",
		name, initial*100, final*100, (final-initial)*100)
}

func newJournal(cfg config.JournalConfig) (journal.Journal, error) {
	if cfg.Type == "csv" {
		return journal.NewCSV(cfg.RunsFile, cfg.SnapshotsFile)
	}
	return journal.NewSQLite(cfg.DBPath)
}
