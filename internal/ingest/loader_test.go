package ingest

import (
	"bytes"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/Hadedyzz/Lager-Produktivitaet/internal/model"
)

func testOptions() Options {
	return Options{
		MonthSheets:    []string{"Juli", "August", "September", "Oktober"},
		SideTableSheet: "Angaben",
	}
}

func buildWorkbook(t *testing.T, withSideTable bool) *bytes.Reader {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	if _, err := f.NewSheet("Juli"); err != nil {
		t.Fatalf("NewSheet: %v", err)
	}
	rows := [][]any{
		{"", "14.07.2025", "14.07.2025"},
		{"Team", "Team 1", "Team 1"},
		{"Schicht", "Früh", "Spät"},
		{"Auftragsrollen gesägt", "10", "5"},
		{"Anzahl MA", "4", "3"},
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow("Juli", cell, &row); err != nil {
			t.Fatalf("SetSheetRow: %v", err)
		}
	}

	if withSideTable {
		if _, err := f.NewSheet("Angaben"); err != nil {
			t.Fatalf("NewSheet: %v", err)
		}
		side := [][]any{
			{"Task", "Minuten"},
			{"sägen", "6"},
		}
		for i, row := range side {
			cell, _ := excelize.CoordinatesToCellName(1, i+1)
			if err := f.SetSheetRow("Angaben", cell, &row); err != nil {
				t.Fatalf("SetSheetRow: %v", err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("WriteToBuffer: %v", err)
	}
	return bytes.NewReader(buf.Bytes())
}

func TestLoadWorkbook_EndToEnd(t *testing.T) {
	t.Parallel()

	res := LoadWorkbook(buildWorkbook(t, true), testOptions())
	if res.Empty() {
		t.Fatalf("expected rows, warnings: %v", res.Warnings)
	}
	if len(res.Warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", res.Warnings)
	}

	// One block, two metric rows, two dated columns.
	if len(res.Records) != 4 {
		t.Fatalf("records = %d, want 4", len(res.Records))
	}
	if res.Coefficients.Lookup("sägen") != 6 {
		t.Fatalf("coefficients = %+v", res.Coefficients)
	}

	var sawing *model.TidyRow
	for i := range res.Tidy {
		r := &res.Tidy[i]
		if r.Metric == "sägen" && r.Shift == "Früh" {
			sawing = r
		}
	}
	if sawing == nil {
		t.Fatalf("sägen row missing from tidy table: %+v", res.Tidy)
	}
	if sawing.Value != 10 {
		t.Fatalf("sägen value = %v, want 10", sawing.Value)
	}
	if sawing.Team != "Team 1" {
		t.Fatalf("team = %q", sawing.Team)
	}
}

func TestLoadWorkbook_MissingSideTable(t *testing.T) {
	t.Parallel()

	res := LoadWorkbook(buildWorkbook(t, false), testOptions())
	if res.Empty() {
		t.Fatal("month data must load even without the side table")
	}
	if !res.Coefficients.Empty() {
		t.Fatalf("coefficients should be empty, got %+v", res.Coefficients)
	}
	if len(res.Warnings) == 0 || !strings.Contains(res.Warnings[0], "Angaben") {
		t.Fatalf("expected a side-table warning, got %v", res.Warnings)
	}
}

func TestLoadWorkbook_NotAWorkbook(t *testing.T) {
	t.Parallel()

	res := LoadWorkbook(strings.NewReader("kein excel"), testOptions())
	if !res.Empty() {
		t.Fatal("garbage input must yield an empty result")
	}
	if len(res.Warnings) == 0 {
		t.Fatal("garbage input must be reported as a warning")
	}
	if res.Coefficients.Minutes == nil {
		t.Fatal("coefficient map must never be nil")
	}
}

func TestLoadWorkbook_NoMonthSheets(t *testing.T) {
	t.Parallel()

	f := excelize.NewFile()
	defer f.Close()
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("WriteToBuffer: %v", err)
	}

	res := LoadWorkbook(bytes.NewReader(buf.Bytes()), testOptions())
	if !res.Empty() {
		t.Fatal("workbook without month sheets must yield an empty result")
	}
	found := false
	for _, w := range res.Warnings {
		if strings.Contains(w, "Keine Daten") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected the no-data warning, got %v", res.Warnings)
	}
}
