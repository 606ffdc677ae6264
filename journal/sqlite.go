package journal

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

type SQLite struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		return nil, err
	}

	return &SQLite{db: db}, nil
}

func (j *SQLite) RecordRun(r RunRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO runs
		(run_id, created, tax_rate, wealth_threshold, base_growth_rate, high_wealth_premium, redistribution_efficiency, years, final_top, final_middle, final_lower, total_revenue)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.RunID, r.Created, r.TaxRate, r.WealthThreshold,
		r.BaseGrowthRate, r.GrowthPremium, r.RedistributionEfficiency,
		r.Years, r.FinalTop, r.FinalMiddle, r.FinalLower, r.TotalRevenue,
	)
	return err
}

func (j *SQLite) RecordSnapshot(s SnapshotRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO snapshots
		(run_id, year, ultra_wealthy, middle_wealth, lower_wealth, tax_collected)
		VALUES (?, ?, ?, ?, ?, ?)`,
		s.RunID, s.Year, s.Top, s.Middle, s.Lower, s.TaxCollected,
	)
	return err
}

func (j *SQLite) Close() error {
	return j.db.Close()
}
