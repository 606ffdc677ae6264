package sim

// Fixed split of surviving tax revenue between the receiving bands. The
// model treats this as structural, not a tunable input.
const (
	middleShare = 0.30
	lowerShare  = 0.70
)

// Parameters holds the scalar inputs for one simulation run. Rates are
// annual percentages (5.0 means 5%); RedistributionEfficiency is a
// fraction in [0,1].
//
// The engine does not validate Parameters. Out-of-range values are not
// rejected and simply flow through the arithmetic; rejecting nonsense is
// the config layer's job.
type Parameters struct {
	// TaxRate is the percentage of the top band's post-growth wealth
	// collected each year.
	TaxRate float64

	// WealthThreshold is the individual net-worth cutoff in pounds above
	// which the tax nominally applies. The recurrence never reads it: the
	// taxed population is always exactly the top band. It is carried so
	// journals record what a run was asked for.
	WealthThreshold float64

	// BaseGrowthRate is the annual growth percentage applied to every band.
	BaseGrowthRate float64

	// GrowthPremium is extra annual growth percentage for the top band
	// only, on top of BaseGrowthRate.
	GrowthPremium float64

	// RedistributionEfficiency is the fraction of collected tax that
	// reaches the middle and lower bands. The remainder is lost to
	// administration and leaves the model entirely.
	RedistributionEfficiency float64

	// Years is the number of yearly steps to simulate. Negative values are
	// treated as zero.
	Years int
}
