package analytics

import (
	"fmt"
	"strings"

	"github.com/etnz/analytics/date"
)

// Window selects the most recent rows of a series as of a reporting date.
type Window int

const (
	WindowAll Window = iota
	WindowDay
	WindowMonth
	WindowYear
)

func (w Window) String() string {
	switch w {
	case WindowAll:
		return "all"
	case WindowDay:
		return "day"
	case WindowMonth:
		return "month"
	case WindowYear:
		return "year"
	default:
		panic(fmt.Sprintf("unknown window %d", w))
	}
}

// Rows returns the number of rows kept by the window, 0 meaning all of them.
func (w Window) Rows() int {
	switch w {
	case WindowDay:
		return 1
	case WindowMonth:
		return 30
	case WindowYear:
		return 365
	default:
		return 0
	}
}

// ParseWindow parses a window name.
func ParseWindow(s string) (Window, error) {
	switch strings.ToLower(s) {
	case "all", "full", "":
		return WindowAll, nil
	case "day", "daily":
		return WindowDay, nil
	case "month", "monthly":
		return WindowMonth, nil
	case "year", "yearly":
		return WindowYear, nil
	default:
		return WindowAll, fmt.Errorf("unknown window %q", s)
	}
}

// Apply keeps the rows on or before asOf, then the last Rows() of them.
func (w Window) Apply(s *Series, asOf date.Date) *Series {
	s = s.Until(asOf)
	if n := w.Rows(); n > 0 {
		return s.Tail(n)
	}
	return s
}

// Lookback keeps the points within years*365 days of the last point.
// A non positive years keeps the whole series.
func Lookback(s *Series, years int) *Series {
	if years <= 0 || s.Len() == 0 {
		return s.Tail(s.Len())
	}
	last, _ := s.Latest()
	return s.Since(last.Add(-365 * years))
}
