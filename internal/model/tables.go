package model

// Pivot is a dense numeric table with a fixed row index and fixed columns.
// Missing combinations are zero-filled so consumers never branch on
// missing keys. Writes addressed at labels outside the index are dropped,
// which is how out-of-enum shift labels fall out of every pivot.
type Pivot struct {
	Index   []string    `json:"index"`
	Columns []string    `json:"columns"`
	Values  [][]float64 `json:"values"`
}

// NewPivot creates a zero-filled pivot over the given index and columns.
func NewPivot(index, columns []string) Pivot {
	values := make([][]float64, len(index))
	for i := range values {
		values[i] = make([]float64, len(columns))
	}
	return Pivot{
		Index:   append([]string(nil), index...),
		Columns: append([]string(nil), columns...),
		Values:  values,
	}
}

func (p *Pivot) rowIdx(label string) int {
	for i, l := range p.Index {
		if l == label {
			return i
		}
	}
	return -1
}

func (p *Pivot) colIdx(label string) int {
	for i, l := range p.Columns {
		if l == label {
			return i
		}
	}
	return -1
}

// Add accumulates v into the cell (row, col). Unknown labels are ignored.
func (p *Pivot) Add(row, col string, v float64) {
	i, j := p.rowIdx(row), p.colIdx(col)
	if i < 0 || j < 0 {
		return
	}
	p.Values[i][j] += v
}

// At returns the cell value, or 0 for labels outside the table.
func (p *Pivot) At(row, col string) float64 {
	i, j := p.rowIdx(row), p.colIdx(col)
	if i < 0 || j < 0 {
		return 0
	}
	return p.Values[i][j]
}

// RowSum returns the sum over all columns of one row.
func (p *Pivot) RowSum(row string) float64 {
	i := p.rowIdx(row)
	if i < 0 {
		return 0
	}
	var sum float64
	for _, v := range p.Values[i] {
		sum += v
	}
	return sum
}

// Series is a dense numeric vector with a fixed index.
type Series struct {
	Index  []string  `json:"index"`
	Values []float64 `json:"values"`
}

// NewSeries creates a zero-filled series over the given index.
func NewSeries(index []string) Series {
	return Series{
		Index:  append([]string(nil), index...),
		Values: make([]float64, len(index)),
	}
}

// Add accumulates v at the given label. Unknown labels are ignored.
func (s *Series) Add(label string, v float64) {
	for i, l := range s.Index {
		if l == label {
			s.Values[i] += v
			return
		}
	}
}

// At returns the value at label, or 0 for labels outside the index.
func (s *Series) At(label string) float64 {
	for i, l := range s.Index {
		if l == label {
			return s.Values[i]
		}
	}
	return 0
}

// WeeklyResult carries the six aligned weekly tables. The date axis always
// spans the Monday-Friday of the week containing the target date.
type WeeklyResult struct {
	Dates            []string `json:"dates"`
	Week             int      `json:"kw"`
	SawingByDayShift Pivot    `json:"saegen_by_day_shift"`
	RollsByGroup     Pivot    `json:"total_rolls_by_group"`
	RollsByShift     Pivot    `json:"total_shift"`
	StaffByDayShift  Pivot    `json:"workers_per_shift"`
	StaffByDay       Series   `json:"workers_per_day"`
	RollsByDay       Series   `json:"total_rolls_per_day"`
}

// DailyDetailRow is one (shift, task) row of the merged daily detail,
// including the staffing KPIs the task pivots exclude.
type DailyDetailRow struct {
	Shift   string  `json:"shift"`
	Metric  string  `json:"metric"`
	Pretty  string  `json:"pretty"`
	Units   float64 `json:"value"`
	Minutes float64 `json:"minutes"`
	Hours   float64 `json:"hours"`
	FTE     float64 `json:"fte"`
}

// DailyResult carries the merged detail plus the two aligned task pivots.
// Row and column order are identical between the pivots so the renderer
// can pair them visually.
type DailyResult struct {
	Detail     []DailyDetailRow `json:"shift_task_merged"`
	HoursPivot Pivot            `json:"hours_pivot"`
	RollsPivot Pivot            `json:"rolls_pivot"`
}
