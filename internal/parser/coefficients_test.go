package parser

import "testing"

func TestFindMinutesColumn_OrderedPredicates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		headers  []string
		wantIdx  int
		wantName string
	}{
		{[]string{"Task", "Minuten pro Rolle"}, 1, "Minuten pro Rolle"},
		{[]string{"Task", "Anzahl", "Vorgabezeit"}, 2, "Vorgabezeit"},
		// First match in declared column order wins.
		{[]string{"Task", "Min", "Minuten"}, 1, "Min"},
		// No minutes-like name: fall back to the second column.
		{[]string{"Task", "Zeit"}, 1, "Zeit"},
		{[]string{"Task"}, -1, ""},
		{nil, -1, ""},
	}

	for _, tt := range tests {
		idx, name := FindMinutesColumn(tt.headers)
		if idx != tt.wantIdx || name != tt.wantName {
			t.Fatalf("FindMinutesColumn(%v) = (%d, %q), want (%d, %q)",
				tt.headers, idx, name, tt.wantIdx, tt.wantName)
		}
	}
}

func TestLoadCoefficients_NormalizesTaskNames(t *testing.T) {
	t.Parallel()

	grid := [][]string{
		{"Task", "Minuten"},
		{"  Sägen ", "6"},
		{"richten", "2,5"},
		{"", "99"},
	}

	table := LoadCoefficients(grid, DecimalComma)
	if table.Column != "Minuten" {
		t.Fatalf("unexpected minutes column: %q", table.Column)
	}
	if got := table.Lookup("sägen"); got != 6 {
		t.Fatalf("lookup sägen = %v, want 6", got)
	}
	if got := table.Lookup("richten"); got != 2.5 {
		t.Fatalf("lookup richten = %v, want 2.5", got)
	}
	if got := table.Lookup("unbekannt"); got != 0 {
		t.Fatalf("unknown task must default to 0, got %v", got)
	}
	if table.Has("unbekannt") {
		t.Fatal("unknown task must not be present")
	}
}

func TestLoadCoefficients_SecondColumnFallback(t *testing.T) {
	t.Parallel()

	grid := [][]string{
		{"Task", "Zeit"},
		{"verladen", "4"},
	}

	table := LoadCoefficients(grid, DecimalComma)
	if table.Column != "Zeit" {
		t.Fatalf("expected fallback to second column, got %q", table.Column)
	}
	if table.Lookup("verladen") != 4 {
		t.Fatalf("lookup verladen = %v, want 4", table.Lookup("verladen"))
	}
}

func TestLoadCoefficients_DecimalRetry(t *testing.T) {
	t.Parallel()

	grid := [][]string{
		{"Task", "Minuten"},
		{"sägen", "6.5"},
		{"richten", "2.5"},
	}

	table := LoadCoefficients(grid, DecimalComma)
	if table.Lookup("sägen") != 6.5 || table.Lookup("richten") != 2.5 {
		t.Fatalf("dot-decimal side table must be retried: %+v", table.Minutes)
	}
}

func TestLoadCoefficients_EmptyTable(t *testing.T) {
	t.Parallel()

	table := LoadCoefficients(nil, DecimalComma)
	if !table.Empty() {
		t.Fatalf("expected empty table, got %+v", table)
	}
}
