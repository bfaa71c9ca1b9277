package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/Hadedyzz/Lager-Produktivitaet/internal/model"
)

// WeeklyWorkbook renders a weekly result into a workbook, one sheet per
// aggregated table, in the same order the renderer draws them.
func WeeklyWorkbook(res *model.WeeklyResult) (*excelize.File, error) {
	f := excelize.NewFile()

	sheets := []struct {
		name  string
		write func(string) error
	}{
		{"Sägen je Tag", func(s string) error { return writePivot(f, s, "Datum", res.SawingByDayShift) }},
		{"Hauptaufgaben je Tag", func(s string) error { return writePivot(f, s, "Datum", res.RollsByGroup) }},
		{"Rollen je Schicht", func(s string) error { return writePivot(f, s, "Datum", res.RollsByShift) }},
		{"MA je Schicht", func(s string) error { return writePivot(f, s, "Datum", res.StaffByDayShift) }},
		{"MA je Tag", func(s string) error { return writeSeries(f, s, "Datum", "MA", res.StaffByDay) }},
		{"Rollen je Tag", func(s string) error { return writeSeries(f, s, "Datum", "Rollen", res.RollsByDay) }},
	}
	for _, sheet := range sheets {
		if err := sheet.write(sheet.name); err != nil {
			_ = f.Close()
			return nil, err
		}
	}

	if err := finishWorkbook(f); err != nil {
		_ = f.Close()
		return nil, err
	}
	return f, nil
}

// DailyWorkbook renders a daily result: the two aligned task pivots plus
// the merged detail table.
func DailyWorkbook(res *model.DailyResult) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := writePivot(f, "Stunden", "Aufgabe", res.HoursPivot); err != nil {
		_ = f.Close()
		return nil, err
	}
	if err := writePivot(f, "Rollen", "Aufgabe", res.RollsPivot); err != nil {
		_ = f.Close()
		return nil, err
	}
	if err := writeDetail(f, "Detail", res.Detail); err != nil {
		_ = f.Close()
		return nil, err
	}

	if err := finishWorkbook(f); err != nil {
		_ = f.Close()
		return nil, err
	}
	return f, nil
}

// WorkbookBytes serializes a workbook and closes it.
func WorkbookBytes(f *excelize.File) ([]byte, error) {
	defer f.Close()
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writePivot(f *excelize.File, sheet, indexHeader string, p model.Pivot) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	if err := setCell(f, sheet, 1, 1, indexHeader); err != nil {
		return err
	}
	for j, col := range p.Columns {
		if err := setCell(f, sheet, j+2, 1, col); err != nil {
			return err
		}
	}
	for i, label := range p.Index {
		if err := setCell(f, sheet, 1, i+2, label); err != nil {
			return err
		}
		for j := range p.Columns {
			if err := setCell(f, sheet, j+2, i+2, p.Values[i][j]); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeSeries(f *excelize.File, sheet, indexHeader, valueHeader string, s model.Series) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	if err := setCell(f, sheet, 1, 1, indexHeader); err != nil {
		return err
	}
	if err := setCell(f, sheet, 2, 1, valueHeader); err != nil {
		return err
	}
	for i, label := range s.Index {
		if err := setCell(f, sheet, 1, i+2, label); err != nil {
			return err
		}
		if err := setCell(f, sheet, 2, i+2, s.Values[i]); err != nil {
			return err
		}
	}
	return nil
}

func writeDetail(f *excelize.File, sheet string, rows []model.DailyDetailRow) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	headers := []string{"Schicht", "Aufgabe", "Rollen", "Minuten je Einheit", "Stunden", "FTE"}
	for j, h := range headers {
		if err := setCell(f, sheet, j+1, 1, h); err != nil {
			return err
		}
	}
	for i, r := range rows {
		values := []any{r.Shift, r.Pretty, r.Units, r.Minutes, r.Hours, r.FTE}
		for j, v := range values {
			if err := setCell(f, sheet, j+1, i+2, v); err != nil {
				return err
			}
		}
	}
	return nil
}

func setCell(f *excelize.File, sheet string, col, row int, v any) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return f.SetCellValue(sheet, cell, v)
}

// finishWorkbook drops excelize's default sheet and activates the first
// data sheet.
func finishWorkbook(f *excelize.File) error {
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}
	f.SetActiveSheet(0)
	return nil
}
