package analytics

import (
	"errors"
	"math"
)

var (
	// ErrEmptyInput is returned when a series or table has fewer rows than an operation requires.
	ErrEmptyInput = errors.New("empty input")
	// ErrSchemaMismatch is returned when a row does not match the declared column universe.
	ErrSchemaMismatch = errors.New("schema mismatch")
	// ErrUnsorted is returned when dates are not strictly increasing.
	ErrUnsorted = errors.New("dates not strictly increasing")
	// ErrMissingKey is returned when a benchmark, asset or date is not present.
	ErrMissingKey = errors.New("missing key")
)

// Undefined is the marker returned by metrics whose result cannot be computed,
// typically because of a zero denominator.
func Undefined() float64 { return math.NaN() }

// Defined reports whether x is a usable metric value.
func Defined(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }
