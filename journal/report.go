package journal

import (
	"bytes"
	"os"
	"text/template"
	"time"

	"github.com/openfiscal/wealthsim/sim"
)

// runView is what the org template sees: the stored header plus metrics
// derived from the trajectory.
type runView struct {
	RunRecord
	Summary sim.Summary
	Initial sim.Snapshot
	Final   sim.Snapshot
}

var runOrgFuncs = template.FuncMap{
	"mul100": func(x float64) float64 { return x * 100.0 },
	"orTime": func(t time.Time) time.Time {
		if t.IsZero() {
			return time.Now()
		}
		return t
	},
}

var runOrgTmpl = template.Must(
	template.New("run").Funcs(runOrgFuncs).Parse(RunOrgTemplate),
)

// FormatRunOrg renders an org-mode writeup of one run: the parameters it
// ran with, where the distribution ended up, and the headline shifts.
func FormatRunOrg(rec RunRecord, tr sim.Trajectory) (string, error) {
	v := runView{
		RunRecord: rec,
		Summary:   sim.Summarize(tr),
		Initial:   tr.Initial(),
		Final:     tr.Final(),
	}

	buf := new(bytes.Buffer)
	if err := runOrgTmpl.Execute(buf, v); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// WriteRunOrg renders the writeup and writes it to path.
func WriteRunOrg(path string, rec RunRecord, tr sim.Trajectory) error {
	s, err := FormatRunOrg(rec, tr)
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(s), 0644)
}

const RunOrgTemplate = `
* WEALTH TAX RUN: {{printf "%.1f" .TaxRate}}% over {{.Years}} years
:PROPERTIES:
:RUN_ID:      {{if .RunID}}{{.RunID}}{{else}}(run-id?){{end}}
:CREATED:     [{{(orTime .Created).Format "2006-01-02 Mon 15:04"}}]
:TAX_RATE:    {{printf "%.2f" .TaxRate}}
:THRESHOLD:   {{printf "%.0f" .WealthThreshold}}
:BASE_GROWTH: {{printf "%.2f" .BaseGrowthRate}}
:PREMIUM:     {{printf "%.2f" .GrowthPremium}}
:EFFICIENCY:  {{printf "%.2f" (mul100 .RedistributionEfficiency)}}
:YEARS:       {{.Years}}
:REVENUE:     {{printf "%.2f" .TotalRevenue}}
:END:

** Distribution (£bn)
| Band   | Start | End |
|--------+-------+-----|
| Top    | {{printf "%.1f" .Initial.Top}} | {{printf "%.1f" .Final.Top}} |
| Middle | {{printf "%.1f" .Initial.Middle}} | {{printf "%.1f" .Final.Middle}} |
| Lower  | {{printf "%.1f" .Initial.Lower}} | {{printf "%.1f" .Final.Lower}} |

** Share Shift (percentage points)
- Top:    {{printf "%+.2f" (mul100 .Summary.ShareChange.Top)}}
- Middle: {{printf "%+.2f" (mul100 .Summary.ShareChange.Middle)}}
- Lower:  {{printf "%+.2f" (mul100 .Summary.ShareChange.Lower)}}

** Revenue
- Cumulative take over {{.Years}} years: *£{{printf "%.1f" .TotalRevenue}}bn*
`
