package parser

import "strings"

// TeamBlock is a contiguous row range [Start, End) within a month sheet,
// bounded above and below by rows whose first cell is blank. Row Start
// holds team labels, Start+1 shift labels, the rest one metric each.
type TeamBlock struct {
	Start int
	End   int
}

// MetricRows returns the number of metric rows in the block.
func (b TeamBlock) MetricRows() int {
	n := b.End - b.Start - 2
	if n < 0 {
		return 0
	}
	return n
}

// ScanBlocks scans column 0 of a raw sheet grid and returns the team
// blocks. A blank first cell is a separator; a maximal run of non-blank
// rows is a block. The header row 0 is never part of a block, and a grid
// with fewer than two rows yields no blocks.
func ScanBlocks(grid [][]string) []TeamBlock {
	if len(grid) < 2 {
		return nil
	}

	var blocks []TeamBlock
	inBlock := false
	start := 0

	for i := 1; i < len(grid); i++ {
		blank := isBlank(cellAt(grid, i, 0))
		switch {
		case !inBlock && !blank:
			inBlock = true
			start = i
		case inBlock && blank:
			inBlock = false
			blocks = appendBlock(blocks, start, i)
		}
	}
	if inBlock {
		blocks = appendBlock(blocks, start, len(grid))
	}

	return blocks
}

func appendBlock(blocks []TeamBlock, start, end int) []TeamBlock {
	if end <= start {
		return blocks
	}
	return append(blocks, TeamBlock{Start: start, End: end})
}

// cellAt reads a cell from a possibly ragged grid, returning "" for
// cells beyond a short row.
func cellAt(grid [][]string, row, col int) string {
	if row < 0 || row >= len(grid) {
		return ""
	}
	r := grid[row]
	if col < 0 || col >= len(r) {
		return ""
	}
	return r[col]
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
