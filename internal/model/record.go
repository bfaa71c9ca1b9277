package model

import (
	"strings"
	"time"
	"unicode"
)

// ShiftOrder is the fixed shift order used by every pivot and chart.
var ShiftOrder = []string{"Früh", "Spät", "Nacht"}

// Record is one normalized long-format observation from a month sheet:
// one value for one metric in one (date, team, shift) cell column.
// Records are immutable once created.
type Record struct {
	Date   time.Time `json:"date"`
	Team   string    `json:"team"`
	Shift  string    `json:"shift"`
	Metric string    `json:"metric"`
	Value  float64   `json:"value"`
}

// TidyRow is one row of the tidy long table, the canonical interchange
// format between the shift summary and the aggregators. Shift is already
// title-cased ("Früh", "Spät", "Nacht").
type TidyRow struct {
	Date   time.Time `json:"date"`
	Shift  string    `json:"shift"`
	Team   string    `json:"team"`
	Metric string    `json:"metric"`
	Value  float64   `json:"value"`
}

// TitleCase title-cases every whitespace-separated word of s
// ("früh" -> "Früh", "damaged bearbeitet" -> "Damaged Bearbeitet").
func TitleCase(s string) string {
	words := strings.Fields(strings.TrimSpace(s))
	for i, w := range words {
		runes := []rune(strings.ToLower(w))
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

// NormalizeShift maps a raw shift label to its canonical form.
// Labels outside ShiftOrder keep their title-cased form; pivots will
// ignore them because their columns are fixed to ShiftOrder.
func NormalizeShift(raw string) string {
	return TitleCase(raw)
}

// Day truncates t to midnight UTC so date equality is calendar equality.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DateKey formats a date the way table indexes and JSON payloads expect it.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}
