// journal/csv.go
package journal

import (
	"encoding/csv"
	"os"
	"strconv"
	"time"
)

type CSVJournal struct {
	runs      *csv.Writer
	snapshots *csv.Writer
	rf, sf    *os.File
}

func NewCSV(runsPath, snapshotsPath string) (*CSVJournal, error) {
	rf, err := os.Create(runsPath)
	if err != nil {
		return nil, err
	}
	sf, err := os.Create(snapshotsPath)
	if err != nil {
		return nil, err
	}

	rw := csv.NewWriter(rf)
	sw := csv.NewWriter(sf)

	if err := rw.Write([]string{"run_id", "created", "tax_rate", "wealth_threshold", "base_growth_rate", "high_wealth_premium", "redistribution_efficiency", "years", "final_top", "final_middle", "final_lower", "total_revenue"}); err != nil {
		return nil, err
	}
	if err := sw.Write([]string{"run_id", "year", "ultra_wealthy", "middle_wealth", "lower_wealth", "tax_collected"}); err != nil {
		return nil, err
	}

	rw.Flush()
	if err := rw.Error(); err != nil {
		return nil, err
	}
	sw.Flush()
	if err := sw.Error(); err != nil {
		return nil, err
	}

	return &CSVJournal{rw, sw, rf, sf}, nil
}

func (j *CSVJournal) RecordRun(r RunRecord) error {
	err := j.runs.Write([]string{
		r.RunID,
		r.Created.Format(time.RFC3339),
		f(r.TaxRate),
		f(r.WealthThreshold),
		f(r.BaseGrowthRate),
		f(r.GrowthPremium),
		f(r.RedistributionEfficiency),
		strconv.Itoa(r.Years),
		f(r.FinalTop),
		f(r.FinalMiddle),
		f(r.FinalLower),
		f(r.TotalRevenue),
	})
	if err != nil {
		return err
	}

	j.runs.Flush()
	return j.runs.Error()
}

func (j *CSVJournal) RecordSnapshot(s SnapshotRecord) error {
	err := j.snapshots.Write([]string{
		s.RunID,
		strconv.Itoa(s.Year),
		f(s.Top),
		f(s.Middle),
		f(s.Lower),
		f(s.TaxCollected),
	})
	if err != nil {
		return err
	}

	j.snapshots.Flush()
	return j.snapshots.Error()
}

func (j *CSVJournal) Close() error {
	j.runs.Flush()
	if err := j.runs.Error(); err != nil {
		return err
	}
	j.snapshots.Flush()
	if err := j.snapshots.Error(); err != nil {
		return err
	}

	if err := j.rf.Close(); err != nil {
		return err
	}
	if err := j.sf.Close(); err != nil {
		return err
	}
	return nil
}

func f(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
