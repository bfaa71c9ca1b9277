package ingest

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/Hadedyzz/Lager-Produktivitaet/internal/logger"
	"github.com/Hadedyzz/Lager-Produktivitaet/internal/model"
	"github.com/Hadedyzz/Lager-Produktivitaet/internal/parser"
	"github.com/Hadedyzz/Lager-Produktivitaet/internal/summary"
)

// Options selects which sheets of the workbook carry data.
type Options struct {
	// MonthSheets are the calendar-month sheet names, matched
	// case-insensitively.
	MonthSheets []string
	// SideTableSheet is the coefficient side table ("Angaben").
	SideTableSheet string
}

// Result is everything the boundary hands to the aggregation layer:
// the long records, the tidy long table, the coefficient table, and the
// user-facing warnings collected along the way. A failed load yields
// empty structures plus warnings, never an error past the boundary.
type Result struct {
	Records      []model.Record
	Tidy         []model.TidyRow
	Coefficients model.CoefficientTable
	Warnings     []string
}

// Empty reports whether ingestion produced no usable rows.
func (r *Result) Empty() bool {
	return len(r.Tidy) == 0
}

func (r *Result) warnf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	r.Warnings = append(r.Warnings, msg)
	logger.Warn(msg)
}

// LoadWorkbook reads and preprocesses one workbook into the tidy long
// table. Recoverable conditions (missing sheets, malformed blocks,
// unparsable cells) are absorbed as warnings; even an unexpected panic
// degrades to an empty result rather than escaping the boundary.
func LoadWorkbook(reader io.Reader, opts Options) (result *Result) {
	result = &Result{Coefficients: model.CoefficientTable{Minutes: map[string]float64{}}}

	defer func() {
		if r := recover(); r != nil {
			result.Records = nil
			result.Tidy = nil
			result.Coefficients = model.CoefficientTable{Minutes: map[string]float64{}}
			result.warnf("Fehler beim Laden der Excel-Datei: %v", r)
		}
	}()

	f, err := excelize.OpenReader(reader)
	if err != nil {
		result.warnf("Fehler beim Öffnen der Excel-Datei: %v", err)
		return result
	}
	defer f.Close()

	sheets := f.GetSheetList()
	findSheet := func(want string) (string, bool) {
		for _, name := range sheets {
			if strings.EqualFold(strings.TrimSpace(name), strings.TrimSpace(want)) {
				return name, true
			}
		}
		return "", false
	}

	if name, ok := findSheet(opts.SideTableSheet); ok {
		rows, err := f.GetRows(name)
		if err != nil {
			result.warnf("Blatt %q konnte nicht gelesen werden: %v", name, err)
		} else {
			result.Coefficients = parser.LoadCoefficients(rows, parser.DecimalComma)
			if result.Coefficients.Empty() {
				result.warnf("Blatt %q enthält keine Vorgabezeiten", name)
			}
		}
	} else {
		result.warnf("Blatt %q nicht gefunden, Vorgabezeiten fehlen", opts.SideTableSheet)
	}

	for _, month := range opts.MonthSheets {
		name, ok := findSheet(month)
		if !ok {
			continue
		}
		rows, err := f.GetRows(name)
		if err != nil {
			result.warnf("Blatt %q konnte nicht gelesen werden: %v", name, err)
			continue
		}
		records, conv := parser.ParseMonthSheet(rows, parser.DecimalComma)
		if len(records) == 0 {
			result.warnf("Blatt %q enthält keine Datensätze", name)
			continue
		}
		logger.Debug("month sheet parsed", "sheet", name, "records", len(records), "decimal", conv.String())
		result.Records = append(result.Records, records...)
	}

	if len(result.Records) == 0 {
		result.warnf("Keine Daten in den Blättern %s gefunden", strings.Join(opts.MonthSheets, "/"))
		return result
	}

	result.Tidy = summary.Melt(summary.Build(result.Records, result.Coefficients))
	return result
}
