package model

import "time"

// ShiftSummaryRow is one pivoted row per (date, team, shift) with the
// derived task buckets and staffing KPIs. StaffRequired and StaffVariance
// are always recomputed from the buckets and coefficients, never stored
// independently of their inputs.
type ShiftSummaryRow struct {
	Date  time.Time
	Team  string
	Shift string

	// Buckets holds the named task totals, keyed by bucket name.
	Buckets map[string]float64

	StaffPresent  float64
	HoursOther    float64
	StaffRequired float64
	StaffVariance float64
}

// Bucket returns the named task total, defaulting to 0.
func (r *ShiftSummaryRow) Bucket(name string) float64 {
	return r.Buckets[name]
}
