package parser

import "testing"

func TestScanBlocks_SingleBlock(t *testing.T) {
	t.Parallel()

	grid := [][]string{
		{"", "14.07.2025", "15.07.2025"},
		{"Team", "Team 1", "Team 1"},
		{"Schicht", "Früh", "Spät"},
		{"Auftragsrollen gesägt", "10", "12"},
	}

	blocks := ScanBlocks(grid)
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	if blocks[0].Start != 1 || blocks[0].End != 4 {
		t.Fatalf("unexpected block range: [%d, %d)", blocks[0].Start, blocks[0].End)
	}
	if blocks[0].MetricRows() != 1 {
		t.Fatalf("expected 1 metric row, got %d", blocks[0].MetricRows())
	}
}

func TestScanBlocks_MultipleBlocksWithBlankRuns(t *testing.T) {
	t.Parallel()

	grid := [][]string{
		{"", "14.07.2025"},
		{""},
		{"  "}, // whitespace-only cells are separators too
		{"Team", "Team 1"},
		{"Schicht", "Früh"},
		{"Verladene Rollen", "3"},
		{""},
		{"Team", "Team 2"},
		{"Schicht", "Nacht"},
		{"Gerichtete Rollen", "7"},
		{"Anzahl MA", "4"},
		{""},
		{""},
	}

	blocks := ScanBlocks(grid)
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(blocks))
	}
	if blocks[0].Start != 3 || blocks[0].End != 6 {
		t.Fatalf("unexpected first block: [%d, %d)", blocks[0].Start, blocks[0].End)
	}
	if blocks[1].Start != 7 || blocks[1].End != 11 {
		t.Fatalf("unexpected second block: [%d, %d)", blocks[1].Start, blocks[1].End)
	}
}

func TestScanBlocks_TrailingBlockWithoutSeparator(t *testing.T) {
	t.Parallel()

	grid := [][]string{
		{"", "14.07.2025"},
		{"Team", "Team 1"},
		{"Schicht", "Früh"},
		{"Cut Rollen", "2"},
	}

	blocks := ScanBlocks(grid)
	if len(blocks) != 1 || blocks[0].End != 4 {
		t.Fatalf("trailing block not closed at grid end: %+v", blocks)
	}
}

func TestScanBlocks_TooFewRows(t *testing.T) {
	t.Parallel()

	if got := ScanBlocks(nil); got != nil {
		t.Fatalf("nil grid should yield no blocks, got %+v", got)
	}
	if got := ScanBlocks([][]string{{"", "14.07.2025"}}); got != nil {
		t.Fatalf("header-only grid should yield no blocks, got %+v", got)
	}
}

func TestScanBlocks_RaggedRows(t *testing.T) {
	t.Parallel()

	// Rows shorter than the header must not panic; an absent first cell
	// counts as blank.
	grid := [][]string{
		{"", "14.07.2025", "15.07.2025"},
		{},
		{"Team", "Team 1"},
		{"Schicht"},
		{"Anzahl MA", "4", "5"},
	}

	blocks := ScanBlocks(grid)
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	if blocks[0].Start != 2 || blocks[0].End != 5 {
		t.Fatalf("unexpected block range: [%d, %d)", blocks[0].Start, blocks[0].End)
	}
}
