//go:build blackbox

package blackbox

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
)

func TestSimulate_JournalsToSQLite(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "wealthsim.sqlite")

	out := run(t,
		"simulate",
		"--years", "5",
		"--db", dbPath,
	)

	if !contains(out, "Running wealth tax simulation") {
		t.Fatalf("missing banner in output:\n%s", out)
	}
	if !contains(out, "Cumulative revenue") {
		t.Fatalf("missing summary in output:\n%s", out)
	}
	extractRunID(t, out)

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	var runs int
	if err := db.QueryRow(`SELECT COUNT(*) FROM runs`).Scan(&runs); err != nil {
		t.Fatal(err)
	}
	if runs != 1 {
		t.Fatalf("expected 1 run row, got %d", runs)
	}

	var snaps int
	if err := db.QueryRow(`SELECT COUNT(*) FROM snapshots`).Scan(&snaps); err != nil {
		t.Fatal(err)
	}
	// 5 years plus the initial snapshot.
	if snaps != 6 {
		t.Fatalf("expected 6 snapshot rows, got %d", snaps)
	}
}

func TestSimulate_FlagOverrides(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "wealthsim.sqlite")

	out := run(t,
		"simulate",
		"--tax-rate", "0",
		"--years", "3",
		"--db", dbPath,
	)

	if !contains(out, "Tax: 0.0%") {
		t.Fatalf("tax rate override not reflected:\n%s", out)
	}
	if !contains(out, "Cumulative revenue: £0.0bn") {
		t.Fatalf("zero tax must collect nothing:\n%s", out)
	}
}

func TestSimulate_SharesTable(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "wealthsim.sqlite")

	out := run(t,
		"simulate",
		"--years", "1",
		"--db", dbPath,
		"--shares",
	)

	// Year-0 row of the share table: 12/80/8 by construction.
	if !contains(out, "   0    12.00%    80.00%     8.00%") {
		t.Fatalf("missing share table:\n%s", out)
	}
}

func TestSimulate_WritesOrgReport(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "wealthsim.sqlite")
	reportPath := filepath.Join(dir, "run.org")

	out := run(t,
		"simulate",
		"--years", "5",
		"--db", dbPath,
		"--report", reportPath,
	)

	if !contains(out, "✓ Report written") {
		t.Fatalf("missing report confirmation:\n%s", out)
	}

	data, err := readFile(reportPath)
	if err != nil {
		t.Fatal(err)
	}
	if !contains(data, "* WEALTH TAX RUN") {
		t.Fatalf("report missing heading:\n%s", data)
	}
	if !contains(data, ":RUN_ID:") {
		t.Fatalf("report missing properties drawer:\n%s", data)
	}
}

func TestJournal_ListAndShow(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "wealthsim.sqlite")

	simOut := run(t, "simulate", "--years", "4", "--db", dbPath)
	runID := extractRunID(t, simOut)

	listOut := run(t, "journal", "list", "--db", dbPath)
	if !contains(listOut, runID) {
		t.Fatalf("journal list missing run %s:\n%s", runID, listOut)
	}

	showOut := run(t, "journal", "show", runID, "--db", dbPath)
	if !contains(showOut, ":RUN_ID:      "+runID) {
		t.Fatalf("journal show missing run properties:\n%s", showOut)
	}
	if !contains(showOut, "** Revenue") {
		t.Fatalf("journal show missing revenue section:\n%s", showOut)
	}
}
