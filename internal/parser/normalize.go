package parser

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/Hadedyzz/Lager-Produktivitaet/internal/model"
)

// DecimalConvention selects which locale decimal mark numeric cells use.
type DecimalConvention int

const (
	// DecimalComma reads "1.234,5" style numbers (German convention).
	DecimalComma DecimalConvention = iota
	// DecimalDot reads "1,234.5" style numbers.
	DecimalDot
)

func (c DecimalConvention) String() string {
	if c == DecimalComma {
		return "comma"
	}
	return "dot"
}

// Other returns the opposite convention, used for the per-sheet retry.
func (c DecimalConvention) Other() DecimalConvention {
	if c == DecimalComma {
		return DecimalDot
	}
	return DecimalComma
}

var (
	reCommaNumber = regexp.MustCompile(`^-?\d{1,3}(\.\d{3})+(,\d+)?$|^-?\d+(,\d+)?$`)
	reDotNumber   = regexp.MustCompile(`^-?\d{1,3}(,\d{3})+(\.\d+)?$|^-?\d+(\.\d+)?$`)
)

// ParseNumber parses a cell value under the given decimal convention.
// The boolean reports whether the value parsed; callers default failed
// parses to 0 rather than propagating an error.
func ParseNumber(s string, conv DecimalConvention) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	switch conv {
	case DecimalComma:
		if !reCommaNumber.MatchString(s) {
			return 0, false
		}
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	default:
		if !reDotNumber.MatchString(s) {
			return 0, false
		}
		s = strings.ReplaceAll(s, ",", "")
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// Day-first layouts come first: the source sheets are German. The m-d-yy
// layouts cover excelize's default date formatting.
var dateLayouts = []string{
	"02.01.2006",
	"2.1.2006",
	"02.01.06",
	"2006-01-02",
	"02/01/2006",
	"2/1/2006",
	"01-02-06",
	"1-2-06",
}

// excelEpoch is day zero of the 1900 date system used by .xlsx files.
var excelEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// ParseDate parses a date header cell. It tries the known layouts in
// order and falls back to Excel serial numbers. The zero time is returned
// for unparsable cells; such records survive ingestion but never match an
// aggregation window.
func ParseDate(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	// Drop a time-of-day suffix if the cell style carried one.
	if i := strings.IndexAny(s, " T"); i > 0 {
		s = s[:i]
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return model.Day(t)
		}
	}

	// Excel serial date (days since 1899-12-30).
	if serial, err := strconv.ParseFloat(s, 64); err == nil && serial > 59 && serial < 200000 {
		return model.Day(excelEpoch.AddDate(0, 0, int(serial)))
	}

	return time.Time{}
}

// NormalizeRecord standardizes a raw cell record: metric is trimmed and
// lowercased (idempotent), the value is parsed under the given decimal
// convention and defaults to 0, the date is parsed day-first. The boolean
// reports whether the value cell parsed as a number.
func NormalizeRecord(cr CellRecord, conv DecimalConvention) (model.Record, bool) {
	value, ok := ParseNumber(cr.ValueRaw, conv)
	return model.Record{
		Date:   ParseDate(cr.DateRaw),
		Team:   strings.TrimSpace(cr.Team),
		Shift:  strings.TrimSpace(cr.ShiftRaw),
		Metric: strings.ToLower(strings.TrimSpace(cr.Metric)),
		Value:  value,
	}, ok
}

// NormalizeAll normalizes a batch of cell records under one convention
// and reports how many non-empty value cells parsed and how many were
// non-empty at all. The caller retries with the other convention when a
// sheet parses as all-NaN.
func NormalizeAll(raw []CellRecord, conv DecimalConvention) (records []model.Record, parsed, nonEmpty int) {
	records = make([]model.Record, 0, len(raw))
	for _, cr := range raw {
		rec, ok := NormalizeRecord(cr, conv)
		records = append(records, rec)
		if strings.TrimSpace(cr.ValueRaw) != "" {
			nonEmpty++
			if ok {
				parsed++
			}
		}
	}
	return records, parsed, nonEmpty
}

// ParseMonthSheet runs the full scan-extract-normalize pipeline over one
// month sheet grid. The declared convention is tried first; if every
// non-empty value fails to parse the sheet is renormalized under the
// other convention.
func ParseMonthSheet(grid [][]string, conv DecimalConvention) ([]model.Record, DecimalConvention) {
	dates := DateHeader(grid)
	if len(dates) == 0 {
		return nil, conv
	}

	var raw []CellRecord
	for _, block := range ScanBlocks(grid) {
		raw = append(raw, ExtractRecords(grid, block, dates)...)
	}
	if len(raw) == 0 {
		return nil, conv
	}

	records, parsed, nonEmpty := NormalizeAll(raw, conv)
	if parsed == 0 && nonEmpty > 0 {
		records, _, _ = NormalizeAll(raw, conv.Other())
		return records, conv.Other()
	}
	return records, conv
}
