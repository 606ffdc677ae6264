// journal/journal.go
package journal

import (
	"time"

	"github.com/openfiscal/wealthsim/sim"
)

// RunRecord is the header row for one simulation run: its identity, the
// parameters it was asked to run with, and the headline results.
type RunRecord struct {
	RunID                    string
	Created                  time.Time
	TaxRate                  float64
	WealthThreshold          float64
	BaseGrowthRate           float64
	GrowthPremium            float64
	RedistributionEfficiency float64
	Years                    int
	FinalTop                 float64
	FinalMiddle              float64
	FinalLower               float64
	TotalRevenue             float64
}

// SnapshotRecord is one trajectory row tagged with the run it belongs to.
type SnapshotRecord struct {
	RunID        string
	Year         int
	Top          float64
	Middle       float64
	Lower        float64
	TaxCollected float64
}

type Journal interface {
	RecordRun(RunRecord) error
	RecordSnapshot(SnapshotRecord) error
	Close() error
}

// NewRunRecord builds the header row for a completed run. WealthThreshold
// is recorded even though the engine ignores it, so a listing shows what
// each run was asked for.
func NewRunRecord(runID string, created time.Time, p sim.Parameters, tr sim.Trajectory) RunRecord {
	final := tr.Final()
	return RunRecord{
		RunID:                    runID,
		Created:                  created,
		TaxRate:                  p.TaxRate,
		WealthThreshold:          p.WealthThreshold,
		BaseGrowthRate:           p.BaseGrowthRate,
		GrowthPremium:            p.GrowthPremium,
		RedistributionEfficiency: p.RedistributionEfficiency,
		Years:                    p.Years,
		FinalTop:                 final.Top,
		FinalMiddle:              final.Middle,
		FinalLower:               final.Lower,
		TotalRevenue:             tr.CumulativeRevenue(),
	}
}

// ToTrajectory rebuilds a trajectory from stored snapshot rows. Rows are
// assumed to be in year order, as ListSnapshots returns them.
func ToTrajectory(snaps []SnapshotRecord) sim.Trajectory {
	tr := make(sim.Trajectory, len(snaps))
	for i, s := range snaps {
		tr[i] = sim.Snapshot{
			Year:         s.Year,
			Top:          s.Top,
			Middle:       s.Middle,
			Lower:        s.Lower,
			TaxCollected: s.TaxCollected,
		}
	}
	return tr
}

// Record writes the run header followed by every snapshot in trajectory
// order. It stops at the first failure.
func Record(j Journal, rec RunRecord, tr sim.Trajectory) error {
	if err := j.RecordRun(rec); err != nil {
		return err
	}
	for _, s := range tr {
		snap := SnapshotRecord{
			RunID:        rec.RunID,
			Year:         s.Year,
			Top:          s.Top,
			Middle:       s.Middle,
			Lower:        s.Lower,
			TaxCollected: s.TaxCollected,
		}
		if err := j.RecordSnapshot(snap); err != nil {
			return err
		}
	}
	return nil
}
