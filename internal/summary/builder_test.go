package summary

import (
	"testing"
	"time"

	"github.com/Hadedyzz/Lager-Produktivitaet/internal/model"
)

func day(d int) time.Time {
	return time.Date(2025, time.July, d, 0, 0, 0, 0, time.UTC)
}

func rec(d int, team, shift, metric string, value float64) model.Record {
	return model.Record{Date: day(d), Team: team, Shift: shift, Metric: metric, Value: value}
}

func TestBuild_BucketsSumTheirSources(t *testing.T) {
	t.Parallel()

	records := []model.Record{
		rec(14, "Team 1", "Früh", "auftragsrollen gesägt", 10),
		rec(14, "Team 1", "Früh", "abfallrollen gesägt", 5),
		rec(14, "Team 1", "Früh", "anzahl ma", 4),
		rec(14, "Team 1", "Früh", "dafür gebraucht (stunden)", 6),
	}

	rows := Build(records, model.CoefficientTable{})
	if len(rows) != 1 {
		t.Fatalf("expected 1 summary row, got %d", len(rows))
	}
	row := rows[0]

	if got := row.Buckets["sägen"]; got != 15 {
		t.Fatalf("sägen = %v, want 15", got)
	}
	if row.StaffPresent != 4 {
		t.Fatalf("StaffPresent = %v, want 4", row.StaffPresent)
	}
	if row.HoursOther != 6 {
		t.Fatalf("HoursOther = %v, want 6", row.HoursOther)
	}
	// No coefficients: only the extra hours count toward required staff.
	if row.StaffRequired != 0.8 {
		t.Fatalf("StaffRequired = %v, want 0.8", row.StaffRequired)
	}
	if row.StaffVariance != 3.2 {
		t.Fatalf("StaffVariance = %v, want 3.2", row.StaffVariance)
	}
	// Unfed buckets still exist, at zero.
	if got, ok := row.Buckets["verladen"]; !ok || got != 0 {
		t.Fatalf("verladen = (%v, %v), want (0, true)", got, ok)
	}
}

func TestBuild_CoefficientsWeightRequiredStaff(t *testing.T) {
	t.Parallel()

	records := []model.Record{
		rec(14, "Team 1", "Früh", "auftragsrollen gesägt", 10),
		rec(14, "Team 1", "Früh", "abfallrollen gesägt", 5),
		rec(14, "Team 1", "Früh", "anzahl ma", 4),
		rec(14, "Team 1", "Früh", "dafür gebraucht (stunden)", 6),
	}
	coeffs := model.CoefficientTable{
		Column:  "Minuten",
		Minutes: map[string]float64{"sägen": 6},
	}

	row := Build(records, coeffs)[0]

	// 15 units x 6 min = 90 min = 1.5 h, plus 6 extra hours = 7.5 h,
	// one full shift.
	if row.StaffRequired != 1.0 {
		t.Fatalf("StaffRequired = %v, want 1.0", row.StaffRequired)
	}
	if row.StaffVariance != 3.0 {
		t.Fatalf("StaffVariance = %v, want 3.0", row.StaffVariance)
	}
}

func TestBuild_DuplicateCellsAreSummed(t *testing.T) {
	t.Parallel()

	records := []model.Record{
		rec(14, "Team 1", "Früh", "verladene rollen", 3),
		rec(14, "Team 1", "Früh", "verladene rollen", 4),
	}

	row := Build(records, model.CoefficientTable{})[0]
	if got := row.Buckets["verladen"]; got != 7 {
		t.Fatalf("duplicate cells must sum: verladen = %v, want 7", got)
	}
}

func TestBuild_RowsSortedByDateTeamShift(t *testing.T) {
	t.Parallel()

	records := []model.Record{
		rec(15, "Team 1", "Früh", "cut rollen", 1),
		rec(14, "Team 2", "Früh", "cut rollen", 1),
		rec(14, "Team 1", "Spät", "cut rollen", 1),
		rec(14, "Team 1", "Früh", "cut rollen", 1),
	}

	rows := Build(records, model.CoefficientTable{})
	if len(rows) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(rows))
	}
	want := []struct {
		d     int
		team  string
		shift string
	}{
		{14, "Team 1", "Früh"},
		{14, "Team 1", "Spät"},
		{14, "Team 2", "Früh"},
		{15, "Team 1", "Früh"},
	}
	for i, w := range want {
		r := rows[i]
		if !r.Date.Equal(day(w.d)) || r.Team != w.team || r.Shift != w.shift {
			t.Fatalf("row %d = (%v, %q, %q), want (%v, %q, %q)",
				i, r.Date, r.Team, r.Shift, day(w.d), w.team, w.shift)
		}
	}
}

func TestMelt_EmitsBucketsInOrderPlusStaffingKPIs(t *testing.T) {
	t.Parallel()

	records := []model.Record{
		rec(14, "Team 1", "früh", "auftragsrollen gesägt", 10),
		rec(14, "Team 1", "früh", "anzahl ma", 4),
	}
	rows := Build(records, model.CoefficientTable{})
	tidy := Melt(rows)

	perRow := len(Buckets()) + 2
	if len(tidy) != perRow {
		t.Fatalf("expected %d tidy rows, got %d", perRow, len(tidy))
	}
	if tidy[0].Metric != Buckets()[0].Name {
		t.Fatalf("first tidy metric = %q, want %q", tidy[0].Metric, Buckets()[0].Name)
	}
	if tidy[len(tidy)-2].Metric != StaffRequiredMetric {
		t.Fatalf("second-to-last metric = %q, want %q", tidy[len(tidy)-2].Metric, StaffRequiredMetric)
	}
	if tidy[len(tidy)-1].Metric != StaffVarianceMetric {
		t.Fatalf("last metric = %q, want %q", tidy[len(tidy)-1].Metric, StaffVarianceMetric)
	}
	for _, r := range tidy {
		if r.Shift != "Früh" {
			t.Fatalf("shift must be title-cased, got %q", r.Shift)
		}
	}
}

func TestBucketMapping_Embedded(t *testing.T) {
	t.Parallel()

	if len(Buckets()) == 0 {
		t.Fatal("embedded bucket mapping must not be empty")
	}
	if StaffPresentMetric != "vorhandene ma" {
		t.Fatalf("StaffPresentMetric = %q", StaffPresentMetric)
	}
	if HoursOtherMetric != "sonstiges / aufräumarbeiten (in std)" {
		t.Fatalf("HoursOtherMetric = %q", HoursOtherMetric)
	}
	if got := StaffingKPIs(); len(got) != 3 {
		t.Fatalf("StaffingKPIs() = %v", got)
	}
}
