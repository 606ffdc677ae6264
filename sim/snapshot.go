package sim

import "github.com/openfiscal/wealthsim/wealth"

// Snapshot is one row of simulation output: the aggregate wealth of each
// band at the end of a simulated year (£ billions) and the tax collected
// during that year. Year 0 is the untouched starting state, so its
// TaxCollected is always zero.
type Snapshot struct {
	Year         int     `json:"year"`
	Top          float64 `json:"ultra_wealthy"`
	Middle       float64 `json:"middle_wealth"`
	Lower        float64 `json:"lower_wealth"`
	TaxCollected float64 `json:"tax_collected"`
}

// Wealth returns the snapshot's value for one band.
func (s Snapshot) Wealth(b wealth.Band) float64 {
	switch b {
	case wealth.Top:
		return s.Top
	case wealth.Middle:
		return s.Middle
	default:
		return s.Lower
	}
}

// Total is the wealth summed across all three bands.
func (s Snapshot) Total() float64 {
	return s.Top + s.Middle + s.Lower
}

// Shares returns each band's fraction of the year's total wealth. A total
// of exactly zero yields all-zero shares rather than NaN.
func (s Snapshot) Shares() Shares {
	total := s.Total()
	if total == 0 {
		return Shares{Year: s.Year}
	}
	return Shares{
		Year:   s.Year,
		Top:    s.Top / total,
		Middle: s.Middle / total,
		Lower:  s.Lower / total,
	}
}

// Shares is the per-band fraction of total wealth in one year. Fractions
// are in [0,1] for ordinary runs; degenerate inputs (negative wealth) can
// push them outside that range.
type Shares struct {
	Year   int     `json:"year"`
	Top    float64 `json:"ultra_wealthy"`
	Middle float64 `json:"middle_wealth"`
	Lower  float64 `json:"lower_wealth"`
}

// Sub returns the component-wise difference s minus o, keeping s's year.
// Used for before/after share comparisons.
func (s Shares) Sub(o Shares) Shares {
	return Shares{
		Year:   s.Year,
		Top:    s.Top - o.Top,
		Middle: s.Middle - o.Middle,
		Lower:  s.Lower - o.Lower,
	}
}

// Trajectory is the ordered output of one run: Years+1 snapshots with Year
// increasing from 0, index 0 holding the initial distribution.
type Trajectory []Snapshot

// Initial returns the year-0 snapshot, or a zero Snapshot if the
// trajectory is empty.
func (tr Trajectory) Initial() Snapshot {
	if len(tr) == 0 {
		return Snapshot{}
	}
	return tr[0]
}

// Final returns the last snapshot, or a zero Snapshot if the trajectory is
// empty.
func (tr Trajectory) Final() Snapshot {
	if len(tr) == 0 {
		return Snapshot{}
	}
	return tr[len(tr)-1]
}

// Years is the number of simulated steps the trajectory covers.
func (tr Trajectory) Years() int {
	if len(tr) == 0 {
		return 0
	}
	return len(tr) - 1
}

// CumulativeRevenue sums tax collected across every year of the run, in
// £ billions.
func (tr Trajectory) CumulativeRevenue() float64 {
	var total float64
	for _, s := range tr {
		total += s.TaxCollected
	}
	return total
}

// ShareSeries returns the per-year wealth shares for the whole trajectory.
func (tr Trajectory) ShareSeries() []Shares {
	out := make([]Shares, len(tr))
	for i, s := range tr {
		out[i] = s.Shares()
	}
	return out
}
