package revenue

// Category is one line of the government expenditure reference table.
type Category struct {
	Name   string  `json:"category"`
	Amount float64 `json:"amount"` // £ billions per year
}

// Approximate UK annual spending, £ billions, used to put an estimate in
// context. Display order is fixed.
var expenditure = []Category{
	{Name: "Healthcare (NHS)", Amount: 176},
	{Name: "Education", Amount: 103},
	{Name: "Defense", Amount: 55},
	{Name: "Welfare", Amount: 231},
	{Name: "Transport", Amount: 44},
	{Name: "Public Order & Safety", Amount: 38},
	{Name: "Housing & Environment", Amount: 31},
	{Name: "Debt Interest", Amount: 45},
}

// Expenditure returns the reference table in display order. The caller
// gets its own copy.
func Expenditure() []Category {
	out := make([]Category, len(expenditure))
	copy(out, expenditure)
	return out
}

// Covered returns the categories whose full annual cost fits inside the
// given revenue (£ billions), in table order.
func Covered(revenueBn float64) []Category {
	var out []Category
	for _, c := range expenditure {
		if c.Amount <= revenueBn {
			out = append(out, c)
		}
	}
	return out
}

// Report bundles an estimate with its expenditure comparison so the CLI
// and the HTTP API render the same numbers.
type Report struct {
	TaxRate     float64    `json:"tax_rate"`
	Revenue     float64    `json:"estimated_revenue"`
	Baseline    float64    `json:"baseline_yield"`
	Covered     []string   `json:"covered_categories"`
	Expenditure []Category `json:"expenditure"`
}

// Compare builds the full report for a tax rate given in percent.
func Compare(ratePct float64) Report {
	rev := Estimate(ratePct)

	covered := Covered(rev)
	names := make([]string, len(covered))
	for i, c := range covered {
		names[i] = c.Name
	}

	return Report{
		TaxRate:     ratePct,
		Revenue:     rev,
		Baseline:    BaselineYield,
		Covered:     names,
		Expenditure: Expenditure(),
	}
}
