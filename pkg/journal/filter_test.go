package journal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gorlea-ink/gorlea/pkg/types"
)

// Wednesday 2024-05-15 10:30 local time.
var wednesday = time.Date(2024, 5, 15, 10, 30, 0, 0, time.Local)

func entryAt(t time.Time) types.Entry {
	return types.Entry{ID: t.Format(time.RFC3339), CreatedAt: t.Unix()}
}

func TestRangeForToday(t *testing.T) {
	start, end, ok := RangeFor(FilterToday, wednesday)
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 5, 15, 0, 0, 0, 0, time.Local), start)
	assert.Equal(t, time.Date(2024, 5, 16, 0, 0, 0, 0, time.Local), end)
}

func TestRangeForThisWeekStartsMonday(t *testing.T) {
	start, end, ok := RangeFor(FilterThisWeek, wednesday)
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 5, 13, 0, 0, 0, 0, time.Local), start)
	assert.Equal(t, time.Date(2024, 5, 20, 0, 0, 0, 0, time.Local), end)

	// Sunday still belongs to the week that started the previous Monday.
	sunday := time.Date(2024, 5, 19, 23, 0, 0, 0, time.Local)
	start, _, ok = RangeFor(FilterThisWeek, sunday)
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 5, 13, 0, 0, 0, 0, time.Local), start)
}

func TestRangeForLastMonthIsPreviousCalendarMonth(t *testing.T) {
	start, end, ok := RangeFor(FilterLastMonth, wednesday)
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 4, 1, 0, 0, 0, 0, time.Local), start)
	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.Local), end)

	// January wraps to the previous year's December.
	january := time.Date(2024, 1, 10, 12, 0, 0, 0, time.Local)
	start, end, ok = RangeFor(FilterLastMonth, january)
	require.True(t, ok)
	assert.Equal(t, time.Date(2023, 12, 1, 0, 0, 0, 0, time.Local), start)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local), end)
}

func TestRangeForLastYearIsPreviousCalendarYear(t *testing.T) {
	start, end, ok := RangeFor(FilterLastYear, wednesday)
	require.True(t, ok)
	assert.Equal(t, time.Date(2023, 1, 1, 0, 0, 0, 0, time.Local), start)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local), end)
}

func TestFilterByDate(t *testing.T) {
	entries := []types.Entry{
		entryAt(wednesday.Add(-time.Hour)),                 // today
		entryAt(wednesday.AddDate(0, 0, -2)),               // this week, not today
		entryAt(time.Date(2024, 4, 20, 9, 0, 0, 0, time.Local)),  // last month
		entryAt(time.Date(2023, 7, 4, 9, 0, 0, 0, time.Local)),   // last year
		entryAt(time.Date(2021, 1, 1, 9, 0, 0, 0, time.Local)),   // ancient
	}

	assert.Len(t, FilterByDate(entries, FilterToday, wednesday), 1)
	assert.Len(t, FilterByDate(entries, FilterThisWeek, wednesday), 2)
	assert.Len(t, FilterByDate(entries, FilterLastMonth, wednesday), 1)
	assert.Len(t, FilterByDate(entries, FilterLastYear, wednesday), 1)
	assert.Len(t, FilterByDate(entries, FilterNone, wednesday), len(entries))
}

func TestFilterToggleIdempotence(t *testing.T) {
	entries := []types.Entry{
		entryAt(wednesday.Add(-time.Hour)),
		entryAt(time.Date(2023, 7, 4, 9, 0, 0, 0, time.Local)),
	}

	var state FilterState
	state.Toggle(FilterToday)
	assert.Equal(t, FilterToday, state.Active())
	assert.Len(t, state.Apply(entries, wednesday), 1)

	// selecting the active filter again clears it
	state.Toggle(FilterToday)
	assert.Equal(t, FilterNone, state.Active())
	assert.Equal(t, entries, state.Apply(entries, wednesday))
}

func TestFilterToggleSwitchesDirectly(t *testing.T) {
	var state FilterState
	state.Toggle(FilterToday)
	state.Toggle(FilterLastYear)
	assert.Equal(t, FilterLastYear, state.Active())
}
