// Package loader reads the files of a dashboard data folder into the
// analytics engine types.
//
// Files are delimited text with a header row and a "date" column. Both ','
// and ';' separators are accepted; with ';' a decimal comma is accepted too.
// Empty cells are read as missing values (NaN).
package loader

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/etnz/analytics"
	"github.com/etnz/analytics/date"
)

// DateColumn is the name of the column holding the row dates.
const DateColumn = "date"

// record is a parsed data row.
type record struct {
	day    date.Date
	values []float64
}

// frame is a parsed delimited file.
type frame struct {
	columns []string // value columns, without the date column
	records []record
}

// readFrame reads a delimited file with a date column, sorted by date.
func readFrame(r io.Reader) (*frame, error) {
	br := bufio.NewReader(r)
	header, err := br.Peek(4096)
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	comma := ','
	if line, _, _ := strings.Cut(string(header), "\n"); strings.Count(line, ";") > strings.Count(line, ",") {
		comma = ';'
	}

	reader := csv.NewReader(br)
	reader.Comma = comma
	reader.FieldsPerRecord = -1 // Allow variable number of fields
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("no header: %w", analytics.ErrEmptyInput)
	}

	dateIndex := -1
	f := &frame{}
	var index []int
	for i, c := range records[0] {
		c = strings.TrimSpace(strings.TrimPrefix(c, "\ufeff"))
		if strings.EqualFold(c, DateColumn) {
			dateIndex = i
			continue
		}
		// exported index columns
		if c == "" || strings.HasPrefix(c, "Unnamed:") {
			continue
		}
		f.columns = append(f.columns, c)
		index = append(index, i)
	}
	if dateIndex < 0 {
		return nil, fmt.Errorf("no %q column in %v: %w", DateColumn, records[0], analytics.ErrMissingKey)
	}

	for n, row := range records[1:] {
		if len(row) == 1 && strings.TrimSpace(row[0]) == "" {
			continue // blank line
		}
		if dateIndex >= len(row) {
			return nil, fmt.Errorf("line %d has no date: %w", n+2, analytics.ErrSchemaMismatch)
		}
		day, err := ParseDate(row[dateIndex])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n+2, err)
		}
		rec := record{day: day, values: make([]float64, len(index))}
		for j, i := range index {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			v, err := parseValue(cell, comma == ';')
			if err != nil {
				return nil, fmt.Errorf("line %d column %q: %w", n+2, f.columns[j], err)
			}
			rec.values[j] = v
		}
		f.records = append(f.records, rec)
	}

	slices.SortStableFunc(f.records, func(a, b record) int { return a.day.Compare(b.day) })
	for i := 1; i < len(f.records); i++ {
		if f.records[i].day == f.records[i-1].day {
			return nil, fmt.Errorf("duplicate date %v: %w", f.records[i].day, analytics.ErrUnsorted)
		}
	}
	return f, nil
}

// parseValue parses a numeric cell. Empty and "NA"-like cells are NaN.
func parseValue(cell string, decimalComma bool) (float64, error) {
	cell = strings.TrimSpace(cell)
	switch strings.ToLower(cell) {
	case "", "na", "n/a", "nan", "null", "none", "-":
		return math.NaN(), nil
	}
	if decimalComma {
		cell = strings.ReplaceAll(cell, ",", ".")
	}
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return math.NaN(), fmt.Errorf("invalid number %q: %w", cell, err)
	}
	return v, nil
}

// column returns the index of the named value column, or the first value
// column when name is empty.
func (f *frame) column(name string) (int, error) {
	if name == "" {
		if len(f.columns) == 0 {
			return -1, fmt.Errorf("no value column: %w", analytics.ErrMissingKey)
		}
		return 0, nil
	}
	for i, c := range f.columns {
		if strings.EqualFold(c, name) {
			return i, nil
		}
	}
	return -1, fmt.Errorf("no column %q in %v: %w", name, f.columns, analytics.ErrMissingKey)
}

// series projects a value column into a Series.
func (f *frame) series(name string, j int) (*analytics.Series, error) {
	days := make([]date.Date, len(f.records))
	values := make([]float64, len(f.records))
	for i, rec := range f.records {
		days[i], values[i] = rec.day, rec.values[j]
	}
	return analytics.NewSeries(name, days, values)
}

// table converts the frame into a Table over all value columns.
func (f *frame) table() (*analytics.Table, error) {
	t, err := analytics.NewTable(f.columns...)
	if err != nil {
		return nil, err
	}
	for _, rec := range f.records {
		if err := t.AppendValues(rec.day, rec.values...); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// ReadSeries reads the column of a delimited file as a series. An empty column
// selects the first value column. The series is named after name, or after the
// column when name is empty.
func ReadSeries(r io.Reader, name, column string) (*analytics.Series, error) {
	f, err := readFrame(r)
	if err != nil {
		return nil, err
	}
	j, err := f.column(column)
	if err != nil {
		return nil, err
	}
	if name == "" {
		name = f.columns[j]
	}
	return f.series(name, j)
}

// ReadTable reads a wide delimited file, one column per asset, as a table.
func ReadTable(r io.Reader) (*analytics.Table, error) {
	f, err := readFrame(r)
	if err != nil {
		return nil, err
	}
	return f.table()
}

// Benchmark value and return column names.
const (
	ValueColumn   = "value"
	ReturnsColumn = "returns"
)

// ReturnsColumns are the accepted names of the precomputed returns column,
// matched case insensitively in that order.
var ReturnsColumns = []string{ReturnsColumn, "retorno", "return"}

// ReadBenchmark reads a benchmark file: a date column, a value column and an
// optional column of precomputed daily returns.
func ReadBenchmark(r io.Reader, name string) (*analytics.Benchmark, error) {
	f, err := readFrame(r)
	if err != nil {
		return nil, err
	}
	j, err := f.column(ValueColumn)
	if err != nil {
		// single column files hold the values.
		if len(f.columns) != 1 {
			return nil, fmt.Errorf("benchmark %q: %w", name, err)
		}
		j = 0
	}
	b := &analytics.Benchmark{Name: name}
	if b.Values, err = f.series(name, j); err != nil {
		return nil, err
	}
	for _, col := range ReturnsColumns {
		k, err := f.column(col)
		if err != nil || k == j {
			continue
		}
		if b.Returns, err = f.series(name, k); err != nil {
			return nil, err
		}
		break
	}
	return b, nil
}
