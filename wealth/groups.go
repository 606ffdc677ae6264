// wealth/groups.go
package wealth

// Band identifies one of the three fixed population segments the model
// tracks. Wealth is aggregated per band; individuals are never modeled.
type Band int

const (
	Top Band = iota
	Middle
	Lower
)

// String returns the short machine-friendly band name used in column
// headers and log fields. Display labels live on Group.Name.
func (b Band) String() string {
	switch b {
	case Top:
		return "top"
	case Middle:
		return "middle"
	default:
		return "lower"
	}
}

// Group is one segment of the population: a head count in millions and
// the aggregate wealth the segment holds in £ billions. Population is
// descriptive metadata; the yearly recurrence reads only TotalWealth.
type Group struct {
	Band        Band
	Name        string
	Population  float64 // millions of people
	TotalWealth float64 // £ billions
}

// Distribution is the three-group starting state, ordered top, middle,
// lower so Band doubles as an index. It is a value type: callers can
// mutate their copy without disturbing anyone else's.
type Distribution [3]Group

// TotalWealth sums aggregate wealth across the three bands, in £ billions.
func (d Distribution) TotalWealth() float64 {
	var total float64
	for _, g := range d {
		total += g.TotalWealth
	}
	return total
}

// TotalPopulation sums head counts across the three bands, in millions.
func (d Distribution) TotalPopulation() float64 {
	var total float64
	for _, g := range d {
		total += g.Population
	}
	return total
}

// Share returns the band's fraction of total wealth. A distribution with
// zero total wealth yields 0 rather than NaN.
func (d Distribution) Share(b Band) float64 {
	total := d.TotalWealth()
	if total == 0 {
		return 0
	}
	return d[b].TotalWealth / total
}

// Default returns the built-in UK starting distribution. The figures are
// rounded approximations of ONS wealth survey data: roughly 22,000
// individuals above £10M holding about £1.2tn, 30 million adults above
// £100K holding about £8tn, and 36 million below £100K holding about
// £0.8tn.
func Default() Distribution {
	return Distribution{
		{Band: Top, Name: "Ultra Wealthy (>£10M)", Population: 0.022, TotalWealth: 1200},
		{Band: Middle, Name: "Middle Wealth (>£100K)", Population: 30, TotalWealth: 8000},
		{Band: Lower, Name: "Lower Wealth (<£100K)", Population: 36, TotalWealth: 800},
	}
}
