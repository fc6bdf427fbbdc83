package journal

import (
	"time"

	"github.com/gorlea-ink/gorlea/pkg/types"
)

// DateFilter is one of the named history filters. Exactly one can be active
// at a time; re-selecting the active filter clears it.
type DateFilter string

const (
	FilterNone      DateFilter = ""
	FilterToday     DateFilter = "Today"
	FilterThisWeek  DateFilter = "This Week"
	FilterLastMonth DateFilter = "Last Month"
	FilterLastYear  DateFilter = "Last Year"
)

func ParseDateFilter(s string) (DateFilter, bool) {
	switch DateFilter(s) {
	case FilterToday, FilterThisWeek, FilterLastMonth, FilterLastYear:
		return DateFilter(s), true
	case FilterNone:
		return FilterNone, true
	}
	return FilterNone, false
}

// RangeFor maps a named filter to a concrete half-open [start, end) range
// computed against now. Today and This Week use local calendar boundaries
// with weeks starting Monday; Last Month and Last Year mean the previous
// full calendar month and year.
func RangeFor(filter DateFilter, now time.Time) (start, end time.Time, ok bool) {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch filter {
	case FilterToday:
		return midnight, midnight.AddDate(0, 0, 1), true
	case FilterThisWeek:
		weekday := int(now.Weekday())
		if weekday == 0 {
			weekday = 7 // Sunday belongs to the week that started six days earlier
		}
		start = midnight.AddDate(0, 0, -(weekday - 1))
		return start, start.AddDate(0, 0, 7), true
	case FilterLastMonth:
		firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return firstOfMonth.AddDate(0, -1, 0), firstOfMonth, true
	case FilterLastYear:
		firstOfYear := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())
		return firstOfYear.AddDate(-1, 0, 0), firstOfYear, true
	}
	return time.Time{}, time.Time{}, false
}

// FilterState tracks the currently active named filter with toggle
// semantics.
type FilterState struct {
	active DateFilter
}

// Toggle activates filter, or clears the state when filter is already
// active. Applying the same filter twice always returns the state to
// unfiltered.
func (s *FilterState) Toggle(filter DateFilter) {
	if s.active == filter {
		s.active = FilterNone
		return
	}
	s.active = filter
}

func (s *FilterState) Active() DateFilter {
	return s.active
}

// Apply returns the subset of entries inside the active filter's range.
// With no active filter the input is returned unchanged.
func (s *FilterState) Apply(entries []types.Entry, now time.Time) []types.Entry {
	return FilterByDate(entries, s.active, now)
}

// FilterByDate predicates each entry's creation instant against the named
// filter's range.
func FilterByDate(entries []types.Entry, filter DateFilter, now time.Time) []types.Entry {
	if filter == FilterNone {
		return entries
	}

	start, end, ok := RangeFor(filter, now)
	if !ok {
		return entries
	}

	var result []types.Entry
	for _, entry := range entries {
		created := time.Unix(entry.CreatedAt, 0).In(now.Location())
		if !created.Before(start) && created.Before(end) {
			result = append(result, entry)
		}
	}
	return result
}
