package loader

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/analytics"
	"github.com/etnz/analytics/date"
)

// JSONPaths locate the dates and the values of a series in a JSON file.
type JSONPaths struct {
	Dates  string
	Values string
}

// DefaultJSONPaths read an array of {"date": ..., "value": ...} objects.
var DefaultJSONPaths = JSONPaths{Dates: "$[*].date", Values: "$[*].value"}

// orDefault returns DefaultJSONPaths for unset paths.
func (p JSONPaths) orDefault() JSONPaths {
	if p.Dates == "" {
		p.Dates = DefaultJSONPaths.Dates
	}
	if p.Values == "" {
		p.Values = DefaultJSONPaths.Values
	}
	return p
}

// LoadJSONSeries reads a JSON file as a series named after its base name.
func LoadJSONSeries(path string, paths JSONPaths) (*analytics.Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	paths = paths.orDefault()
	s, err := DecodeJSONSeries(f, baseName(path), paths.Dates, paths.Values)
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", path, err)
	}
	return s, nil
}

// DecodeJSONSeries reads a series out of a JSON document. datesPath and
// valuesPath are JSONPath expressions selecting two arrays of the same length,
// for instance "$.data[*].date" and "$.data[*].close".
//
// Dates are strings in any format accepted by ParseDate. Values are numbers,
// numeric strings or null (missing). Points are sorted by date.
func DecodeJSONSeries(r io.Reader, name, datesPath, valuesPath string) (*analytics.Series, error) {
	var doc any
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode json: %w", err)
	}

	jdays, err := jsonList(datesPath, doc)
	if err != nil {
		return nil, err
	}
	jvalues, err := jsonList(valuesPath, doc)
	if err != nil {
		return nil, err
	}
	if len(jdays) != len(jvalues) {
		return nil, fmt.Errorf("series %q: %d dates for %d values: %w", name, len(jdays), len(jvalues), analytics.ErrSchemaMismatch)
	}

	h := new(date.History[float64])
	for i, jd := range jdays {
		sd, ok := jd.(string)
		if !ok {
			return nil, fmt.Errorf("error parsing %q: item %d is not a string date: %v", datesPath, i, jd)
		}
		day, err := ParseDate(sd)
		if err != nil {
			return nil, fmt.Errorf("error parsing %q: %w", datesPath, err)
		}
		if _, exists := h.Get(day); exists {
			return nil, fmt.Errorf("series %q: duplicate date %v: %w", name, day, analytics.ErrUnsorted)
		}
		v, err := jsonFloat(jvalues[i])
		if err != nil {
			return nil, fmt.Errorf("error parsing %q: item %d: %w", valuesPath, i, err)
		}
		h.Append(day, v)
	}

	days := make([]date.Date, 0, h.Len())
	values := make([]float64, 0, h.Len())
	for day, v := range h.Values() {
		days = append(days, day)
		values = append(values, v)
	}
	return analytics.NewSeries(name, days, values)
}

// jsonList evaluates path and returns the selected items as a list.
func jsonList(path string, doc any) ([]any, error) {
	jval, err := jsonpath.Get(path, doc)
	if err != nil {
		return nil, fmt.Errorf("error parsing %q: %w", path, err)
	}
	// because jsonpath is never clear about whether it returns a list of 1 answer, or a single answer
	if jlist, ok := jval.([]any); ok {
		return jlist, nil
	}
	return []any{jval}, nil
}

func jsonFloat(v any) (float64, error) {
	switch x := v.(type) {
	case nil:
		return math.NaN(), nil
	case float64:
		return x, nil
	case string:
		return parseValue(x, false)
	default:
		return math.NaN(), fmt.Errorf("not a number: %v", v)
	}
}

