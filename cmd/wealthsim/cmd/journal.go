package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openfiscal/wealthsim/journal"
)

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Query recorded simulation runs",
	Long: `Query and display simulation runs from a SQLite journal.

Subcommands:
  list - List recent runs, newest first
  show - Show one run as an org-mode writeup

Examples:
  wealthsim journal list
  wealthsim journal list --limit 5
  wealthsim journal show <run-id>`,
}

var journalListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent runs",
	Args:  cobra.NoArgs,
	RunE:  runJournalList,
}

var journalShowCmd = &cobra.Command{
	Use:   "show <run-id>",
	Short: "Show one run in full",
	Args:  cobra.ExactArgs(1),
	RunE:  runJournalShow,
}

var (
	journalDBPath string
	journalLimit  int
)

func init() {
	rootCmd.AddCommand(journalCmd)
	journalCmd.AddCommand(journalListCmd)
	journalCmd.AddCommand(journalShowCmd)

	journalCmd.PersistentFlags().StringVarP(&journalDBPath, "db", "d", "./wealthsim.sqlite", "path to SQLite journal DB")
	journalListCmd.Flags().IntVar(&journalLimit, "limit", 20, "maximum runs to list")
}

func runJournalList(cmd *cobra.Command, args []string) error {
	j, err := journal.NewSQLite(journalDBPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer j.Close()

	runs, err := j.ListRuns(journalLimit)
	if err != nil {
		return fmt.Errorf("list runs: %w", err)
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded.")
		return nil
	}

	fmt.Printf("%-26s  %-16s  %5s  %5s  %12s\n", "RUN ID", "CREATED", "RATE", "YEARS", "REVENUE (£bn)")
	for _, r := range runs {
		fmt.Printf("%-26s  %-16s  %4.1f%%  %5d  %12.1f\n",
			r.RunID, r.Created.Format("2006-01-02 15:04"), r.TaxRate, r.Years, r.TotalRevenue)
	}
	return nil
}

func runJournalShow(cmd *cobra.Command, args []string) error {
	j, err := journal.NewSQLite(journalDBPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer j.Close()

	runID := args[0]
	rec, err := j.GetRun(runID)
	if err != nil {
		return fmt.Errorf("get run: %w", err)
	}
	snaps, err := j.ListSnapshots(runID)
	if err != nil {
		return fmt.Errorf("list snapshots: %w", err)
	}

	out, err := journal.FormatRunOrg(rec, journal.ToTrajectory(snaps))
	if err != nil {
		return fmt.Errorf("format run: %w", err)
	}

	fmt.Println(out)
	return nil
}
