package loader

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/etnz/analytics/date"
)

// ParseDate parses an ISO date (2025-08-31), an ISO timestamp, or an INSEE
// period (2025-T2, 2025-08) resolved to the last day of the period.
func ParseDate(s string) (date.Date, error) {
	s = strings.TrimSpace(s)
	if d, err := date.Parse(s); err == nil {
		return d, nil
	}
	// timestamps like "2024-01-15 00:00:00".
	if len(s) > 10 {
		if d, err := date.Parse(s[:10]); err == nil {
			return d, nil
		}
	}
	return parsePeriod(s)
}

// parsePeriod parses a string like "2025-T2" or "2025-08" into the date
// of the end of that period.
func parsePeriod(s string) (date.Date, error) {
	// Try quarterly format: "YYYY-TQ"
	if strings.Contains(s, "-T") {
		return parseQuarter(s)
	}

	// Try monthly format: "YYYY-MM"
	parts := strings.Split(s, "-")
	if len(parts) == 2 {
		year, err := strconv.Atoi(parts[0])
		if err != nil {
			return date.Date{}, fmt.Errorf("invalid year in monthly date %q: %w", s, err)
		}
		month, err := strconv.Atoi(parts[1])
		if err != nil || month < 1 || month > 12 {
			return date.Date{}, fmt.Errorf("invalid month in monthly date %q", s)
		}
		return date.New(year, time.Month(month)+1, 0), nil
	}
	return date.Date{}, fmt.Errorf("unrecognized date format: %q", s)
}

// parseQuarter parses a string like "2025-T2" into the date of the end of that quarter.
func parseQuarter(s string) (date.Date, error) {
	parts := strings.Split(s, "-T")
	if len(parts) != 2 {
		return date.Date{}, fmt.Errorf("invalid quarterly date format: %q", s)
	}

	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return date.Date{}, fmt.Errorf("invalid year in quarterly date %q: %w", s, err)
	}

	quarter, err := strconv.Atoi(parts[1])
	if err != nil || quarter < 1 || quarter > 4 {
		return date.Date{}, fmt.Errorf("invalid quarter in quarterly date %q", s)
	}

	month := time.Month(quarter * 3)
	return date.New(year, month+1, 0), nil
}
