package aggregate

import (
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/Hadedyzz/Lager-Produktivitaet/internal/model"
	"github.com/Hadedyzz/Lager-Produktivitaet/internal/summary"
)

// sawingSubstring selects the sawing metrics for the dedicated weekly table.
const sawingSubstring = "sägen"

// Weekdays returns the Monday-Friday dates of the week containing target.
func Weekdays(target time.Time) []time.Time {
	day := model.Day(target)
	monday := day.AddDate(0, 0, -((int(day.Weekday()) + 6) % 7))
	days := make([]time.Time, 5)
	for i := range days {
		days[i] = monday.AddDate(0, 0, i)
	}
	return days
}

// AggregateWeekly rolls the tidy table up over the Monday-Friday window
// of the week containing target. Staffing KPIs and the hours-only metric
// are excluded from task rollups; task metrics are grouped into the
// headline categories. Returns nil when no rows fall into the window.
func AggregateWeekly(tidy []model.TidyRow, target time.Time) *model.WeeklyResult {
	weekdays := Weekdays(target)
	monday, friday := weekdays[0], weekdays[4]

	rows := lo.Filter(tidy, func(r model.TidyRow, _ int) bool {
		d := model.Day(r.Date)
		return !d.Before(monday) && !d.After(friday)
	})
	if len(rows) == 0 {
		return nil
	}

	dateKeys := lo.Map(weekdays, func(d time.Time, _ int) string { return model.DateKey(d) })
	_, week := model.Day(target).ISOWeek()

	staffingKPIs := summary.StaffingKPIs()
	isStaffing := func(metric string) bool {
		return lo.Contains(staffingKPIs, metric)
	}

	// Task rollups exclude the staffing KPIs and the hours-only metric.
	taskRows := lo.Filter(rows, func(r model.TidyRow, _ int) bool {
		return !isStaffing(r.Metric) && r.Metric != summary.HoursOtherMetric
	})
	sawingRows := lo.Filter(rows, func(r model.TidyRow, _ int) bool {
		return strings.Contains(strings.ToLower(r.Metric), sawingSubstring)
	})
	presentRows := lo.Filter(rows, func(r model.TidyRow, _ int) bool {
		return r.Metric == summary.StaffPresentMetric
	})

	result := &model.WeeklyResult{
		Dates:            dateKeys,
		Week:             week,
		SawingByDayShift: model.NewPivot(dateKeys, model.ShiftOrder),
		RollsByGroup:     model.NewPivot(dateKeys, TaskGroups),
		RollsByShift:     model.NewPivot(dateKeys, model.ShiftOrder),
		StaffByDayShift:  model.NewPivot(dateKeys, model.ShiftOrder),
		StaffByDay:       model.NewSeries(dateKeys),
		RollsByDay:       model.NewSeries(dateKeys),
	}

	for _, r := range sawingRows {
		result.SawingByDayShift.Add(model.DateKey(r.Date), r.Shift, r.Value)
	}
	for _, r := range taskRows {
		day := model.DateKey(r.Date)
		result.RollsByGroup.Add(day, ClassifyTask(r.Metric), r.Value)
		result.RollsByShift.Add(day, r.Shift, r.Value)
		result.RollsByDay.Add(day, r.Value)
	}
	for _, r := range presentRows {
		day := model.DateKey(r.Date)
		result.StaffByDayShift.Add(day, r.Shift, r.Value)
		result.StaffByDay.Add(day, r.Value)
	}

	return result
}
