package sim

// Summary condenses a trajectory into the headline numbers a policy reader
// cares about: where shares started, where they ended, how far they moved,
// and the total take across the run.
type Summary struct {
	InitialShares Shares  `json:"initial_shares"`
	FinalShares   Shares  `json:"final_shares"`
	ShareChange   Shares  `json:"share_change"`
	TotalRevenue  float64 `json:"cumulative_revenue"`
}

// Summarize derives the headline metrics from a completed trajectory.
// An empty trajectory yields a zero Summary.
func Summarize(tr Trajectory) Summary {
	initial := tr.Initial().Shares()
	final := tr.Final().Shares()

	return Summary{
		InitialShares: initial,
		FinalShares:   final,
		ShareChange:   final.Sub(initial),
		TotalRevenue:  tr.CumulativeRevenue(),
	}
}
