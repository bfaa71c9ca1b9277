package parser

import (
	"strings"

	"github.com/samber/lo"

	"github.com/Hadedyzz/Lager-Produktivitaet/internal/model"
)

// minutesColumnPredicates is the ordered matching strategy for locating
// the minutes column in the side table. The first predicate that matches
// any column wins; ambiguity is resolved by declared column order.
var minutesColumnPredicates = []struct {
	Name  string
	Match func(header string) bool
}{
	{"min", containsFold("min")},
	{"minute", containsFold("minute")},
	{"vorgabe", containsFold("vorgabe")},
}

func containsFold(sub string) func(string) bool {
	return func(header string) bool {
		return strings.Contains(strings.ToLower(header), sub)
	}
}

// FindMinutesColumn locates the minutes column among the side-table
// headers. Predicates are tried in order over the columns in declared
// order; if none matches, the second column is the fallback. Returns
// (-1, "") when the table has no usable column.
func FindMinutesColumn(headers []string) (int, string) {
	for _, pred := range minutesColumnPredicates {
		for i, h := range headers {
			if pred.Match(h) {
				return i, strings.TrimSpace(h)
			}
		}
	}
	if len(headers) > 1 {
		return 1, strings.TrimSpace(headers[1])
	}
	return -1, ""
}

// findTaskColumn locates the task-name column, by exact header match
// first, defaulting to the first column.
func findTaskColumn(headers []string) int {
	idx := lo.IndexOf(lo.Map(headers, func(h string, _ int) string {
		return strings.ToLower(strings.TrimSpace(h))
	}), "task")
	if idx >= 0 {
		return idx
	}
	if len(headers) > 0 {
		return 0
	}
	return -1
}

// LoadCoefficients reads the side-table grid (header row plus one row per
// task) into a coefficient table. Task names are trimmed and lowercased
// to match metric normalization. Minutes values follow the same per-sheet
// decimal convention retry as the month sheets.
func LoadCoefficients(grid [][]string, conv DecimalConvention) model.CoefficientTable {
	if len(grid) < 2 {
		return model.CoefficientTable{Minutes: map[string]float64{}}
	}

	headers := grid[0]
	taskCol := findTaskColumn(headers)
	minCol, minName := FindMinutesColumn(headers)
	if taskCol < 0 || minCol < 0 {
		return model.CoefficientTable{Minutes: map[string]float64{}}
	}

	parse := func(c DecimalConvention) (map[string]float64, int, int) {
		minutes := make(map[string]float64)
		parsed, nonEmpty := 0, 0
		for row := 1; row < len(grid); row++ {
			task := strings.ToLower(strings.TrimSpace(cellAt(grid, row, taskCol)))
			if task == "" {
				continue
			}
			raw := cellAt(grid, row, minCol)
			v, ok := ParseNumber(raw, c)
			if strings.TrimSpace(raw) != "" {
				nonEmpty++
				if ok {
					parsed++
				}
			}
			minutes[task] = v
		}
		return minutes, parsed, nonEmpty
	}

	minutes, parsed, nonEmpty := parse(conv)
	if parsed == 0 && nonEmpty > 0 {
		minutes, _, _ = parse(conv.Other())
	}

	return model.CoefficientTable{Column: minName, Minutes: minutes}
}
