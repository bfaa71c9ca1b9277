package summary

import (
	"math"
	"sort"
	"time"

	"github.com/Hadedyzz/Lager-Produktivitaet/internal/model"
)

// ShiftHours is the fixed shift length used for staffing derivation.
const ShiftHours = 7.5

type shiftKey struct {
	date  time.Time
	team  string
	shift string
}

// Build pivots normalized records into one summary row per (date, team,
// shift). Duplicate (date, team, shift, metric) cells are summed, not
// overwritten, so two raw metrics can feed one bucket. Derivation order:
// buckets, then weighted minutes, then required staff, then variance.
func Build(records []model.Record, coeffs model.CoefficientTable) []model.ShiftSummaryRow {
	grouped := make(map[shiftKey]map[string]float64)
	for _, r := range records {
		key := shiftKey{date: r.Date, team: r.Team, shift: r.Shift}
		metrics, ok := grouped[key]
		if !ok {
			metrics = make(map[string]float64)
			grouped[key] = metrics
		}
		metrics[r.Metric] += r.Value
	}

	keys := make([]shiftKey, 0, len(grouped))
	for k := range grouped {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		if !a.date.Equal(b.date) {
			return a.date.Before(b.date)
		}
		if a.team != b.team {
			return a.team < b.team
		}
		return a.shift < b.shift
	})

	rows := make([]model.ShiftSummaryRow, 0, len(keys))
	for _, k := range keys {
		metrics := grouped[k]

		buckets := make(map[string]float64, len(Buckets()))
		for _, b := range Buckets() {
			var total float64
			for _, src := range b.Sources {
				total += metrics[src]
			}
			buckets[b.Name] = total
		}

		var weightedMinutes float64
		for name, units := range buckets {
			if coeffs.Has(name) {
				weightedMinutes += units * coeffs.Lookup(name)
			}
		}

		hoursOther := buckets[HoursOtherMetric]
		present := buckets[StaffPresentMetric]
		required := round1((weightedMinutes/60 + hoursOther) / ShiftHours)

		rows = append(rows, model.ShiftSummaryRow{
			Date:          k.date,
			Team:          k.team,
			Shift:         k.shift,
			Buckets:       buckets,
			StaffPresent:  present,
			HoursOther:    hoursOther,
			StaffRequired: required,
			StaffVariance: round1(present - required),
		})
	}

	return rows
}

// Melt flattens summary rows into the tidy long table: one row per
// bucket in declared order, followed by the derived staffing KPIs.
// Shift labels are title-cased into the fixed enum here.
func Melt(rows []model.ShiftSummaryRow) []model.TidyRow {
	tidy := make([]model.TidyRow, 0, len(rows)*(len(Buckets())+2))
	for _, r := range rows {
		shift := model.NormalizeShift(r.Shift)
		add := func(metric string, value float64) {
			tidy = append(tidy, model.TidyRow{
				Date:   r.Date,
				Shift:  shift,
				Team:   r.Team,
				Metric: metric,
				Value:  value,
			})
		}
		for _, b := range Buckets() {
			add(b.Name, r.Buckets[b.Name])
		}
		add(StaffRequiredMetric, r.StaffRequired)
		add(StaffVarianceMetric, r.StaffVariance)
	}
	return tidy
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
