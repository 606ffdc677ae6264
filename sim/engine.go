package sim

import "github.com/openfiscal/wealthsim/wealth"

// Run computes the deterministic wealth trajectory for one starting
// distribution and one set of parameters.
//
// Each simulated year applies three phases in order:
//
//  1. growth: the top band grows by BaseGrowthRate+GrowthPremium percent,
//     the middle and lower bands by BaseGrowthRate percent;
//  2. tax: TaxRate percent of the top band's post-growth wealth is
//     collected;
//  3. redistribution: the surviving fraction of the take
//     (RedistributionEfficiency) is added 30% to the middle band and 70%
//     to the lower band. The rest leaves the model.
//
// Only aggregate wealth evolves; populations never change and never feed
// into the arithmetic. Run is a total function: it performs no validation,
// never fails, and the same inputs always yield the identical trajectory.
func Run(dist wealth.Distribution, p Parameters) Trajectory {
	years := p.Years
	if years < 0 {
		years = 0
	}

	tr := make(Trajectory, 0, years+1)
	tr = append(tr, Snapshot{
		Top:    dist[wealth.Top].TotalWealth,
		Middle: dist[wealth.Middle].TotalWealth,
		Lower:  dist[wealth.Lower].TotalWealth,
	})

	for year := 1; year <= years; year++ {
		prev := tr[year-1]

		topGrown := prev.Top * (1 + (p.BaseGrowthRate+p.GrowthPremium)/100)
		middleGrown := prev.Middle * (1 + p.BaseGrowthRate/100)
		lowerGrown := prev.Lower * (1 + p.BaseGrowthRate/100)

		// The tax base is the whole top band after growth; WealthThreshold
		// does not narrow it.
		collected := topGrown * p.TaxRate / 100
		redistributed := collected * p.RedistributionEfficiency

		tr = append(tr, Snapshot{
			Year:         year,
			Top:          topGrown - collected,
			Middle:       middleGrown + redistributed*middleShare,
			Lower:        lowerGrown + redistributed*lowerShare,
			TaxCollected: collected,
		})
	}

	return tr
}
