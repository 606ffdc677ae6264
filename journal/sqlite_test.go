package journal

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
)

func newTestSQLite(t *testing.T) (*SQLite, string) {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "test.db")

	j, err := NewSQLite(path)
	assert.NoError(t, err)

	return j, path
}

func testRunRecord() RunRecord {
	return RunRecord{
		RunID:                    "01J0000000000000000000TEST",
		Created:                  time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC),
		TaxRate:                  2.0,
		WealthThreshold:          10_000_000,
		BaseGrowthRate:           5.0,
		GrowthPremium:            1.0,
		RedistributionEfficiency: 0.8,
		Years:                    20,
		FinalTop:                 1950.5,
		FinalMiddle:              22000.25,
		FinalLower:               2400.75,
		TotalRevenue:             612.3,
	}
}

func TestSQLiteSchemaCreated(t *testing.T) {
	t.Parallel()

	j, path := newTestSQLite(t)
	assert.NoError(t, j.Close())

	db, err := sql.Open("sqlite3", path)
	assert.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	rows, err := db.Query(`SELECT name FROM sqlite_master WHERE type='table' AND name IN ('runs','snapshots')`)
	assert.NoError(t, err)
	defer rows.Close()

	found := map[string]bool{}
	for rows.Next() {
		var name string
		assert.NoError(t, rows.Scan(&name))
		found[name] = true
	}
	assert.NoError(t, rows.Err())

	assert.True(t, found["runs"])
	assert.True(t, found["snapshots"])
}

func TestSQLiteRecordRun(t *testing.T) {
	t.Parallel()

	j, path := newTestSQLite(t)

	rec := testRunRecord()
	assert.NoError(t, j.RecordRun(rec))
	assert.NoError(t, j.Close())

	db, err := sql.Open("sqlite3", path)
	assert.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	var (
		runID      string
		created    time.Time
		taxRate    float64
		threshold  float64
		baseGrowth float64
		premium    float64
		efficiency float64
		years      int
		finalTop   float64
		finalMid   float64
		finalLow   float64
		revenue    float64
	)

	err = db.QueryRow(`
        SELECT run_id, created, tax_rate, wealth_threshold, base_growth_rate, high_wealth_premium, redistribution_efficiency, years, final_top, final_middle, final_lower, total_revenue
        FROM runs LIMIT 1`).Scan(
		&runID, &created, &taxRate, &threshold, &baseGrowth, &premium,
		&efficiency, &years, &finalTop, &finalMid, &finalLow, &revenue,
	)
	assert.NoError(t, err)

	assert.Equal(t, rec.RunID, runID)
	assert.True(t, created.Equal(rec.Created))
	assert.InDelta(t, rec.TaxRate, taxRate, 1e-9)
	assert.InDelta(t, rec.WealthThreshold, threshold, 1e-6)
	assert.InDelta(t, rec.BaseGrowthRate, baseGrowth, 1e-9)
	assert.InDelta(t, rec.GrowthPremium, premium, 1e-9)
	assert.InDelta(t, rec.RedistributionEfficiency, efficiency, 1e-9)
	assert.Equal(t, rec.Years, years)
	assert.InDelta(t, rec.FinalTop, finalTop, 1e-6)
	assert.InDelta(t, rec.FinalMiddle, finalMid, 1e-6)
	assert.InDelta(t, rec.FinalLower, finalLow, 1e-6)
	assert.InDelta(t, rec.TotalRevenue, revenue, 1e-6)
}

func TestSQLiteRecordSnapshot(t *testing.T) {
	t.Parallel()

	j, path := newTestSQLite(t)

	rec := SnapshotRecord{
		RunID:        "01J0000000000000000000TEST",
		Year:         5,
		Top:          1246.56,
		Middle:       8406.1056,
		Lower:        854.2464,
		TaxCollected: 25.44,
	}

	assert.NoError(t, j.RecordSnapshot(rec))
	assert.NoError(t, j.Close())

	db, err := sql.Open("sqlite3", path)
	assert.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	var (
		runID     string
		year      int
		top       float64
		middle    float64
		lower     float64
		collected float64
	)

	err = db.QueryRow(`
        SELECT run_id, year, ultra_wealthy, middle_wealth, lower_wealth, tax_collected
        FROM snapshots LIMIT 1`).Scan(
		&runID, &year, &top, &middle, &lower, &collected,
	)
	assert.NoError(t, err)

	assert.Equal(t, rec.RunID, runID)
	assert.Equal(t, rec.Year, year)
	assert.InDelta(t, rec.Top, top, 1e-9)
	assert.InDelta(t, rec.Middle, middle, 1e-9)
	assert.InDelta(t, rec.Lower, lower, 1e-9)
	assert.InDelta(t, rec.TaxCollected, collected, 1e-9)
}

func TestSQLiteDuplicateRunRejected(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	defer j.Close()

	rec := testRunRecord()
	assert.NoError(t, j.RecordRun(rec))
	assert.Error(t, j.RecordRun(rec), "run_id is the primary key")
}
