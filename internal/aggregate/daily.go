package aggregate

import (
	"sort"
	"time"

	"github.com/samber/lo"

	"github.com/Hadedyzz/Lager-Produktivitaet/internal/model"
	"github.com/Hadedyzz/Lager-Produktivitaet/internal/summary"
)

// hoursOtherPretty is the display name of the cleanup pseudo-task.
const hoursOtherPretty = "Sonstiges"

// AggregateDaily rolls the tidy table up for a single calendar day,
// joining shift×task totals against the coefficient table (left join:
// unmatched tasks contribute zero hours rather than being dropped).
// The hours-only cleanup metric bypasses the units×coefficient formula:
// its raw value is the hour count and its unit count is zeroed so it
// cannot double-count as a task. Returns nil when the day has no rows.
func AggregateDaily(tidy []model.TidyRow, coeffs model.CoefficientTable, target time.Time) *model.DailyResult {
	day := model.Day(target)
	rows := lo.Filter(tidy, func(r model.TidyRow, _ int) bool {
		return model.Day(r.Date).Equal(day)
	})
	if len(rows) == 0 {
		return nil
	}

	// Shift×metric unit totals, ordered by shift enum then metric name.
	type cell struct {
		shift  string
		metric string
	}
	totals := make(map[cell]float64)
	for _, r := range rows {
		totals[cell{shift: r.Shift, metric: r.Metric}] += r.Value
	}
	cells := lo.Keys(totals)
	shiftRank := func(shift string) int {
		if i := lo.IndexOf(model.ShiftOrder, shift); i >= 0 {
			return i
		}
		return len(model.ShiftOrder)
	}
	sort.Slice(cells, func(i, j int) bool {
		if a, b := shiftRank(cells[i].shift), shiftRank(cells[j].shift); a != b {
			return a < b
		}
		if cells[i].shift != cells[j].shift {
			return cells[i].shift < cells[j].shift
		}
		return cells[i].metric < cells[j].metric
	})

	hasMinutes := coeffs.Column != ""
	detail := make([]model.DailyDetailRow, 0, len(cells))
	for _, c := range cells {
		units := totals[c]
		minutes := coeffs.Lookup(c.metric)

		var hours float64
		if hasMinutes {
			hours = units * minutes / 60
		}
		pretty := model.TitleCase(c.metric)
		if c.metric == summary.HoursOtherMetric {
			// Raw value is already an hour count, not a unit count.
			hours = units
			units = 0
			pretty = hoursOtherPretty
		}

		detail = append(detail, model.DailyDetailRow{
			Shift:   c.shift,
			Metric:  c.metric,
			Pretty:  pretty,
			Units:   units,
			Minutes: minutes,
			Hours:   hours,
			FTE:     hours / summary.ShiftHours,
		})
	}

	// Task pivots exclude the staffing KPIs; the detail keeps them.
	staffingKPIs := summary.StaffingKPIs()
	taskRows := lo.Filter(detail, func(r model.DailyDetailRow, _ int) bool {
		return !lo.Contains(staffingKPIs, r.Metric)
	})

	// Per-task totals in first-appearance order, then a stable sort by
	// descending unit count. Tasks at zero units and zero hours across
	// every shift are dropped, except the cleanup pseudo-task.
	type taskTotal struct {
		pretty string
		units  float64
		hours  float64
	}
	var order []taskTotal
	seen := make(map[string]int)
	for _, r := range taskRows {
		i, ok := seen[r.Pretty]
		if !ok {
			i = len(order)
			seen[r.Pretty] = i
			order = append(order, taskTotal{pretty: r.Pretty})
		}
		order[i].units += r.Units
		order[i].hours += r.Hours
	}
	order = lo.Filter(order, func(t taskTotal, _ int) bool {
		return t.units != 0 || t.hours != 0 || t.pretty == hoursOtherPretty
	})
	sort.SliceStable(order, func(i, j int) bool {
		return order[i].units > order[j].units
	})
	taskIndex := lo.Map(order, func(t taskTotal, _ int) string { return t.pretty })

	result := &model.DailyResult{
		Detail:     detail,
		HoursPivot: model.NewPivot(taskIndex, model.ShiftOrder),
		RollsPivot: model.NewPivot(taskIndex, model.ShiftOrder),
	}
	for _, r := range taskRows {
		result.HoursPivot.Add(r.Pretty, r.Shift, r.Hours)
		result.RollsPivot.Add(r.Pretty, r.Shift, r.Units)
	}

	return result
}
