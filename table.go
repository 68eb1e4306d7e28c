package analytics

import (
	"fmt"
	"maps"
	"math"
	"slices"
	"sort"

	"github.com/etnz/analytics/date"
)

// Cash is the pseudo-asset column holding the uninvested weight of an allocation table.
const Cash = "CASH"

// Row maps a column (asset) name to its value (weight or price) on a given date.
type Row map[string]float64

// Table is a chronological sequence of rows sharing a fixed column universe.
//
// It is used both for allocation weights and for asset prices. Missing cells
// are stored as NaN.
type Table struct {
	columns []string
	index   map[string]int
	days    []date.Date
	rows    [][]float64
}

// NewTable returns an empty table over the given column universe.
// Column names must be unique and non empty.
func NewTable(columns ...string) (*Table, error) {
	t := &Table{
		columns: slices.Clone(columns),
		index:   make(map[string]int, len(columns)),
	}
	for i, c := range columns {
		if c == "" {
			return nil, fmt.Errorf("column %d has no name: %w", i, ErrSchemaMismatch)
		}
		if _, exists := t.index[c]; exists {
			return nil, fmt.Errorf("duplicate column %q: %w", c, ErrSchemaMismatch)
		}
		t.index[c] = i
	}
	return t, nil
}

// MustTable is like NewTable but panics on error.
func MustTable(columns ...string) *Table {
	t, err := NewTable(columns...)
	if err != nil {
		panic(err.Error())
	}
	return t
}

// Append adds a row. The row must hold exactly the table columns and 'on' must be
// after the last date of the table.
func (t *Table) Append(on date.Date, row Row) error {
	if len(row) != len(t.columns) {
		return fmt.Errorf("row %v has %d columns, want %d: %w", on, len(row), len(t.columns), ErrSchemaMismatch)
	}
	values := make([]float64, len(t.columns))
	for c, v := range row {
		i, ok := t.index[c]
		if !ok {
			return fmt.Errorf("row %v has unknown column %q: %w", on, c, ErrSchemaMismatch)
		}
		values[i] = v
	}
	return t.AppendValues(on, values...)
}

// AppendValues adds a row given in column order.
func (t *Table) AppendValues(on date.Date, values ...float64) error {
	if len(values) != len(t.columns) {
		return fmt.Errorf("row %v has %d values, want %d: %w", on, len(values), len(t.columns), ErrSchemaMismatch)
	}
	if last := len(t.days) - 1; last >= 0 && !on.After(t.days[last]) {
		return fmt.Errorf("row %v is not after %v: %w", on, t.days[last], ErrUnsorted)
	}
	t.days = append(t.days, on)
	t.rows = append(t.rows, slices.Clone(values))
	return nil
}

// Columns returns the column universe in declaration order.
func (t *Table) Columns() []string { return slices.Clone(t.columns) }

// Has reports whether the column exists.
func (t *Table) Has(column string) bool {
	_, ok := t.index[column]
	return ok
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.days) }

// Day returns the date of the i-th row.
func (t *Table) Day(i int) date.Date { return t.days[i] }

// Values returns a copy of the i-th row in column order.
func (t *Table) Values(i int) []float64 { return slices.Clone(t.rows[i]) }

// Row returns a copy of the i-th row.
func (t *Table) Row(i int) Row {
	row := make(Row, len(t.columns))
	for j, c := range t.columns {
		row[c] = t.rows[i][j]
	}
	return row
}

// Value returns the cell of the i-th row for column.
func (t *Table) Value(i int, column string) (float64, bool) {
	j, ok := t.index[column]
	if !ok {
		return math.NaN(), false
	}
	return t.rows[i][j], true
}

// search finds the index of day, or the index where it would be inserted.
func (t *Table) search(day date.Date) (int, bool) {
	return slices.BinarySearchFunc(t.days, day, func(d, x date.Date) int { return d.Compare(x) })
}

// Lookup returns the value of column at exactly 'day'. There is no fallback to
// a nearby date. Missing cells (NaN) are reported as not found.
func (t *Table) Lookup(day date.Date, column string) (float64, bool) {
	i, found := t.search(day)
	if !found {
		return math.NaN(), false
	}
	v, ok := t.Value(i, column)
	if !ok || math.IsNaN(v) {
		return math.NaN(), false
	}
	return v, true
}

// IndexAsOf returns the index of the last row on or before day.
func (t *Table) IndexAsOf(day date.Date) (int, bool) {
	i, found := t.search(day)
	if found {
		return i, true
	}
	return i - 1, i > 0
}

// IndexFrom returns the index of the first row on or after day.
func (t *Table) IndexFrom(day date.Date) (int, bool) {
	i, _ := t.search(day)
	return i, i < len(t.days)
}

// LookupAsOf returns the value of column on 'day' or the most recent row before.
func (t *Table) LookupAsOf(day date.Date, column string) (float64, bool) {
	i, ok := t.IndexAsOf(day)
	if !ok {
		return math.NaN(), false
	}
	return t.Value(i, column)
}

// Until returns a copy of the table restricted to rows on or before day.
func (t *Table) Until(day date.Date) *Table {
	i, found := t.search(day)
	if found {
		i++
	}
	c := &Table{columns: t.columns, index: t.index}
	c.days = slices.Clone(t.days[:i])
	for _, r := range t.rows[:i] {
		c.rows = append(c.rows, slices.Clone(r))
	}
	return c
}

// Since returns a copy of the table restricted to rows on or after day.
func (t *Table) Since(day date.Date) *Table {
	i, _ := t.search(day)
	c := &Table{columns: t.columns, index: t.index}
	c.days = slices.Clone(t.days[i:])
	for _, r := range t.rows[i:] {
		c.rows = append(c.rows, slices.Clone(r))
	}
	return c
}

// Column returns the (date, column) projection of the table.
func (t *Table) Column(column string) (*Series, error) {
	j, ok := t.index[column]
	if !ok {
		return nil, fmt.Errorf("column %q: %w", column, ErrMissingKey)
	}
	s := EmptySeries(column)
	for i, on := range t.days {
		s.h.Append(on, t.rows[i][j])
	}
	return s, nil
}

// SortedColumns returns the column names sorted alphabetically.
func (r Row) SortedColumns() []string {
	keys := slices.Collect(maps.Keys(r))
	sort.Strings(keys)
	return keys
}

// Without returns a copy of the row without the given columns.
func (r Row) Without(columns ...string) Row {
	c := maps.Clone(r)
	for _, col := range columns {
		delete(c, col)
	}
	return c
}
