package sim

import (
	"testing"

	"github.com/openfiscal/wealthsim/wealth"
)

func TestSnapshotShares(t *testing.T) {
	s := Snapshot{Year: 3, Top: 1200, Middle: 8000, Lower: 800}

	sh := s.Shares()
	if sh.Year != 3 {
		t.Fatalf("year = %d, want 3", sh.Year)
	}
	if !approxEqual(sh.Top, 0.12) || !approxEqual(sh.Middle, 0.80) || !approxEqual(sh.Lower, 0.08) {
		t.Fatalf("shares = %+v, want 0.12/0.80/0.08", sh)
	}
	if !approxEqual(sh.Top+sh.Middle+sh.Lower, 1) {
		t.Fatalf("shares sum = %v, want 1", sh.Top+sh.Middle+sh.Lower)
	}
}

func TestSnapshotSharesZeroTotal(t *testing.T) {
	sh := (Snapshot{Year: 7}).Shares()
	if sh.Top != 0 || sh.Middle != 0 || sh.Lower != 0 {
		t.Fatalf("zero-total shares = %+v, want all zero", sh)
	}
	if sh.Year != 7 {
		t.Fatalf("year = %d, want 7", sh.Year)
	}
}

func TestSnapshotWealthByBand(t *testing.T) {
	s := Snapshot{Top: 1, Middle: 2, Lower: 3}
	if s.Wealth(wealth.Top) != 1 || s.Wealth(wealth.Middle) != 2 || s.Wealth(wealth.Lower) != 3 {
		t.Fatalf("band lookup mismatch: %+v", s)
	}
	if !approxEqual(s.Total(), 6) {
		t.Fatalf("total = %v, want 6", s.Total())
	}
}

func TestTrajectoryAccessors(t *testing.T) {
	tr := Run(wealth.Default(), testParams())

	if tr.Years() != 20 {
		t.Fatalf("years = %d, want 20", tr.Years())
	}
	if tr.Initial() != tr[0] || tr.Final() != tr[len(tr)-1] {
		t.Fatal("Initial/Final do not match the endpoints")
	}

	var empty Trajectory
	if empty.Years() != 0 {
		t.Fatalf("empty trajectory years = %d, want 0", empty.Years())
	}
	if empty.Initial() != (Snapshot{}) || empty.Final() != (Snapshot{}) {
		t.Fatal("empty trajectory endpoints must be zero snapshots")
	}
}

func TestTrajectoryCumulativeRevenue(t *testing.T) {
	tr := Run(wealth.Default(), testParams())

	var want float64
	for _, s := range tr {
		want += s.TaxCollected
	}
	if !approxEqual(tr.CumulativeRevenue(), want) {
		t.Fatalf("cumulative revenue = %v, want %v", tr.CumulativeRevenue(), want)
	}
	if want <= 0 {
		t.Fatalf("expected positive revenue over a taxed run, got %v", want)
	}
}

func TestTrajectoryShareSeries(t *testing.T) {
	tr := Run(wealth.Default(), testParams())

	series := tr.ShareSeries()
	if len(series) != len(tr) {
		t.Fatalf("series length = %d, want %d", len(series), len(tr))
	}
	for i, sh := range series {
		if sh.Year != tr[i].Year {
			t.Fatalf("series[%d] year = %d, want %d", i, sh.Year, tr[i].Year)
		}
		if !approxEqual(sh.Top+sh.Middle+sh.Lower, 1) {
			t.Fatalf("year %d shares sum to %v", sh.Year, sh.Top+sh.Middle+sh.Lower)
		}
	}
}

func TestSharesSub(t *testing.T) {
	a := Shares{Year: 20, Top: 0.10, Middle: 0.81, Lower: 0.09}
	b := Shares{Year: 0, Top: 0.12, Middle: 0.80, Lower: 0.08}

	d := a.Sub(b)
	if d.Year != 20 {
		t.Fatalf("year = %d, want 20", d.Year)
	}
	if !approxEqual(d.Top, -0.02) || !approxEqual(d.Middle, 0.01) || !approxEqual(d.Lower, 0.01) {
		t.Fatalf("difference = %+v", d)
	}
}
