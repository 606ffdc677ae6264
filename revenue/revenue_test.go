package revenue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rate float64
		want float64
	}{
		{"baseline", 1, 11.9},
		{"two_percent", 2, 23.8},
		{"three_percent", 3, 35.7},
		{"five_percent", 5, 59.5},
		{"zero", 0, 0},
		{"fractional", 0.5, 5.95},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, tt.want, Estimate(tt.rate), 1e-9)
		})
	}
}

func TestExpenditureTable(t *testing.T) {
	t.Parallel()

	table := Expenditure()
	require.Len(t, table, 8)
	assert.Equal(t, "Healthcare (NHS)", table[0].Name)
	assert.Equal(t, 176.0, table[0].Amount)
	assert.Equal(t, "Debt Interest", table[7].Name)

	// Callers own their copy.
	table[0].Amount = 0
	assert.Equal(t, 176.0, Expenditure()[0].Amount)
}

func TestCovered(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		revenueBn float64
		want      []string
	}{
		{"one_percent_covers_nothing", 11.9, nil},
		{"covers_cheapest", 31, []string{"Housing & Environment"}},
		{
			"five_percent",
			59.5,
			[]string{"Defense", "Transport", "Public Order & Safety", "Housing & Environment", "Debt Interest"},
		},
		{
			"everything",
			250,
			[]string{
				"Healthcare (NHS)", "Education", "Defense", "Welfare",
				"Transport", "Public Order & Safety", "Housing & Environment", "Debt Interest",
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Covered(tt.revenueBn)
			var names []string
			for _, c := range got {
				names = append(names, c.Name)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestCompare(t *testing.T) {
	t.Parallel()

	rep := Compare(5)
	assert.Equal(t, 5.0, rep.TaxRate)
	assert.InDelta(t, 59.5, rep.Revenue, 1e-9)
	assert.Equal(t, BaselineYield, rep.Baseline)
	assert.Len(t, rep.Expenditure, 8)
	assert.Contains(t, rep.Covered, "Defense")
	assert.NotContains(t, rep.Covered, "Welfare")
}
