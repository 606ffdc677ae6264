package journal

import (
	"database/sql"
	"fmt"
)

// GetRun returns a single run header by ID.
func (j *SQLite) GetRun(runID string) (RunRecord, error) {
	var rec RunRecord

	row := j.db.QueryRow(`
		SELECT run_id, created, tax_rate, wealth_threshold, base_growth_rate, high_wealth_premium, redistribution_efficiency, years, final_top, final_middle, final_lower, total_revenue
		FROM runs
		WHERE run_id = ?`, runID)

	err := row.Scan(
		&rec.RunID,
		&rec.Created,
		&rec.TaxRate,
		&rec.WealthThreshold,
		&rec.BaseGrowthRate,
		&rec.GrowthPremium,
		&rec.RedistributionEfficiency,
		&rec.Years,
		&rec.FinalTop,
		&rec.FinalMiddle,
		&rec.FinalLower,
		&rec.TotalRevenue,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return RunRecord{}, fmt.Errorf("run %q not found", runID)
		}
		return RunRecord{}, err
	}
	return rec, nil
}

// ListRuns returns up to limit run headers, newest first. Run IDs are
// ULIDs, so descending ID order is descending creation order.
func (j *SQLite) ListRuns(limit int) ([]RunRecord, error) {
	rows, err := j.db.Query(`
		SELECT run_id, created, tax_rate, wealth_threshold, base_growth_rate, high_wealth_premium, redistribution_efficiency, years, final_top, final_middle, final_lower, total_revenue
		FROM runs
		ORDER BY run_id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RunRecord
	for rows.Next() {
		var rec RunRecord
		if err := rows.Scan(
			&rec.RunID,
			&rec.Created,
			&rec.TaxRate,
			&rec.WealthThreshold,
			&rec.BaseGrowthRate,
			&rec.GrowthPremium,
			&rec.RedistributionEfficiency,
			&rec.Years,
			&rec.FinalTop,
			&rec.FinalMiddle,
			&rec.FinalLower,
			&rec.TotalRevenue,
		); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListSnapshots returns the full trajectory for one run, in year order.
func (j *SQLite) ListSnapshots(runID string) ([]SnapshotRecord, error) {
	rows, err := j.db.Query(`
		SELECT run_id, year, ultra_wealthy, middle_wealth, lower_wealth, tax_collected
		FROM snapshots
		WHERE run_id = ?
		ORDER BY year ASC`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []SnapshotRecord
	for rows.Next() {
		var rec SnapshotRecord
		if err := rows.Scan(
			&rec.RunID,
			&rec.Year,
			&rec.Top,
			&rec.Middle,
			&rec.Lower,
			&rec.TaxCollected,
		); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
