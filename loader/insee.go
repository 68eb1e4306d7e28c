package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/etnz/analytics"
	"github.com/etnz/analytics/date"
)

// ReadINSEE reads a series in the INSEE download format: a few metadata
// lines (title, idBank, last update, header) followed by "period;value;code"
// lines in reverse chronological order. The series is named after the title
// when name is empty.
func ReadINSEE(r io.Reader, name string) (*analytics.Series, error) {
	reader := csv.NewReader(r)
	reader.Comma = ';'
	reader.FieldsPerRecord = -1 // Allow variable number of fields

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}

	if len(records) < 4 || len(records[0]) < 2 {
		return nil, fmt.Errorf("not enough records in csv to parse series: %w", analytics.ErrEmptyInput)
	}
	if name == "" {
		name = records[0][1]
	}

	type point struct {
		day date.Date
		val float64
	}
	var points []point
	for i := 4; i < len(records); i++ {
		if len(records[i]) < 2 || strings.TrimSpace(records[i][1]) == "" {
			continue // not yet published
		}
		day, err := parsePeriod(records[i][0])
		if err != nil {
			// Don't wrap, parsePeriod provides good context
			return nil, err
		}
		val, err := strconv.ParseFloat(strings.ReplaceAll(records[i][1], ",", "."), 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse value %q for date %q: %w", records[i][1], records[i][0], err)
		}
		points = append(points, point{day, val})
	}
	slices.SortFunc(points, func(a, b point) int { return a.day.Compare(b.day) })

	days := make([]date.Date, len(points))
	values := make([]float64, len(points))
	for i, p := range points {
		days[i], values[i] = p.day, p.val
	}
	s, err := analytics.NewSeries(name, days, values)
	if err != nil {
		return nil, fmt.Errorf("insee series %q: %w", name, err)
	}
	return s, nil
}

// isINSEE reports whether the leading bytes look like an INSEE download.
func isINSEE(head []byte) bool {
	line, _, _ := strings.Cut(string(head), "\n")
	line = strings.TrimLeft(strings.TrimPrefix(line, "\ufeff"), "\"")
	return strings.HasPrefix(line, "Libellé")
}
