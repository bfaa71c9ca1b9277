package model

// CoefficientTable maps normalized task names to a minutes-per-unit
// coefficient, loaded once from the side table ("Angaben" sheet).
// Column records which side-table column supplied the minutes; it is
// empty when no usable column was found, in which case every task
// contributes zero time.
type CoefficientTable struct {
	Column  string             `json:"column"`
	Minutes map[string]float64 `json:"minutes"`
}

// Lookup returns the minutes-per-unit coefficient for a normalized task
// name. Unknown tasks contribute no time, so the default is 0.
func (t CoefficientTable) Lookup(task string) float64 {
	return t.Minutes[task]
}

// Has reports whether the table carries an entry for the task.
func (t CoefficientTable) Has(task string) bool {
	_, ok := t.Minutes[task]
	return ok
}

// Empty reports whether the table carries no entries at all.
func (t CoefficientTable) Empty() bool {
	return len(t.Minutes) == 0
}
