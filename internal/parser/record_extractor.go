package parser

import "strings"

// CellRecord is one raw (date, team, shift, metric, value) observation as
// it appears in the sheet, before any numeric or date coercion.
type CellRecord struct {
	DateRaw  string
	Team     string
	ShiftRaw string
	Metric   string
	ValueRaw string
}

// ExtractRecords flattens one team block against the sheet's shared date
// header. One record is emitted per metric row and data column whose date
// header cell is non-blank; blank-date columns are skipped silently
// (short weeks are common). Metric rows with a blank name are skipped
// entirely. Team and shift labels shorter than the header are treated as
// blank, not as an error.
func ExtractRecords(grid [][]string, block TeamBlock, dates []string) []CellRecord {
	var records []CellRecord

	for row := block.Start + 2; row < block.End; row++ {
		metric := strings.TrimSpace(cellAt(grid, row, 0))
		if metric == "" {
			continue
		}
		for col := 1; col <= len(dates); col++ {
			date := dates[col-1]
			if isBlank(date) {
				continue
			}
			records = append(records, CellRecord{
				DateRaw:  date,
				Team:     cellAt(grid, block.Start, col),
				ShiftRaw: cellAt(grid, block.Start+1, col),
				Metric:   metric,
				ValueRaw: cellAt(grid, row, col),
			})
		}
	}

	return records
}

// DateHeader returns the sheet's date header cells (row 0, columns 1..N).
func DateHeader(grid [][]string) []string {
	if len(grid) == 0 || len(grid[0]) < 2 {
		return nil
	}
	return grid[0][1:]
}
