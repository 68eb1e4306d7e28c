package date

import (
	"iter"
	"slices"
	"sort"
)

// History stores a chronological series of values, each associated with a specific date.
// It ensures that dates are unique and the series is always sorted.
type History[T float32 | float64 | string] struct {
	days   []Date
	values []T
}

// Latest returns the latest date and value in the history.
// If the history is empty, it returns zero value.
func (h *History[T]) Latest() (day Date, value T) {
	last := len(h.days) - 1
	if last < 0 {
		return Date{}, *new(T) // return zero value of T
	}
	return h.days[last], h.values[last]
}

// First returns the earliest date and value in the history.
// If the history is empty, it returns zero value.
func (h *History[T]) First() (day Date, value T) {
	if len(h.days) == 0 {
		return Date{}, *new(T)
	}
	return h.days[0], h.values[0]
}

// Len returns the number of items in the history.
func (h *History[T]) Len() int { return len(h.days) }

// Day returns the i-th date in chronological order.
func (h *History[T]) Day(i int) Date { return h.days[i] }

// Value returns the i-th value in chronological order.
func (h *History[T]) Value(i int) T { return h.values[i] }

// chronological is a private implementation to make this history chronologically sorted.
type chronological[T float32 | float64 | string] struct{ *History[T] }

func (s chronological[T]) Less(i, j int) bool { return s.days[i].Before(s.days[j]) }

func (s chronological[T]) Swap(i, j int) {
	s.days[i], s.days[j] = s.days[j], s.days[i]
	s.values[i], s.values[j] = s.values[j], s.values[i]
}

// sort sorts the history in chronological order.
func (h *History[T]) sort() { sort.Stable(chronological[T]{h}) }

// Append adds a point to the history.
//
// Existing value at that date are overwritten.
func (h *History[T]) Append(on Date, q T) *History[T] {
	if i := slices.Index(h.days, on); i >= 0 {
		// Found a point at that exact same instant.
		// We choose to replace, because it will give higher priority to the last data
		h.values[i] = q
		return h
	}
	last := len(h.days) - 1
	h.days, h.values = append(h.days, on), append(h.values, q)
	if last >= 0 && on.Before(h.days[last]) {
		h.sort()
	}
	return h
}

// Values returns an iterator over all date/value pairs in the history, in chronological order.
func (h *History[T]) Values() iter.Seq2[Date, T] {
	return func(yield func(Date, T) bool) {
		for i, on := range h.days {
			if !yield(on, h.values[i]) {
				return
			}
		}
	}
}

// Get returns the value at 'day' and true or zero value and false.
func (h *History[T]) Get(day Date) (T, bool) {
	var value T
	i, found := h.search(day)
	if found {
		return h.values[i], true
	}
	return value, false
}

// search finds the index of day, or the index where it would be inserted.
func (h *History[T]) search(day Date) (int, bool) {
	return slices.BinarySearchFunc(h.days, day, func(d, t Date) int { return d.Compare(t) })
}

// ValueAsOf returns the value on a given day, or the most recent value before it.
// It returns the value and true if found, otherwise it returns the zero value and false.
func (h *History[T]) ValueAsOf(day Date) (T, bool) {
	i, found := h.search(day)
	if found {
		return h.values[i], true
	}

	// Not found. `i` is the index where `day` would be inserted.
	// The value we want is at `i-1`, which is the last entry before the target date.
	if i == 0 {
		var zero T
		return zero, false // No date on or before the given day.
	}
	return h.values[i-1], true
}

// slice returns a copy of the [from, to) window of the history.
func (h *History[T]) slice(from, to int) *History[T] {
	return &History[T]{
		days:   slices.Clone(h.days[from:to]),
		values: slices.Clone(h.values[from:to]),
	}
}

// Clone returns a deep copy of the history.
func (h *History[T]) Clone() *History[T] { return h.slice(0, len(h.days)) }

// Until returns a copy of the history restricted to dates on or before day.
func (h *History[T]) Until(day Date) *History[T] {
	i, found := h.search(day)
	if found {
		i++
	}
	return h.slice(0, i)
}

// Since returns a copy of the history restricted to dates on or after day.
func (h *History[T]) Since(day Date) *History[T] {
	i, _ := h.search(day)
	return h.slice(i, len(h.days))
}

// Tail returns a copy of the last n items of the history.
func (h *History[T]) Tail(n int) *History[T] {
	n = min(max(n, 0), len(h.days))
	from := len(h.days) - n
	return h.slice(from, len(h.days))
}
