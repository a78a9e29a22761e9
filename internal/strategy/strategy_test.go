package strategy

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"datepick/internal/dateadapter"
	"datepick/internal/selection"
)

var adapter dateadapter.Adapter[time.Time] = dateadapter.NewTimeAdapter(time.UTC)

func on(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func jan(d int) *time.Time {
	t := on(2024, time.January, d)
	return &t
}

func rng(start, end *time.Time) selection.DateRange[time.Time] {
	return selection.NewDateRange(start, end)
}

func requireRange(t *testing.T, want, got selection.DateRange[time.Time]) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected range (-want +got):\n%s", diff)
	}
}

func TestSelectionFinished(t *testing.T) {
	s := NewDefault(adapter)
	for _, tc := range []struct {
		name    string
		date    *time.Time
		current selection.DateRange[time.Time]
		want    selection.DateRange[time.Time]
	}{
		{"empty starts", jan(5), rng(nil, nil), rng(jan(5), nil)},
		{"extends forward", jan(9), rng(jan(5), nil), rng(jan(5), jan(9))},
		{"same day is inclusive", jan(5), rng(jan(5), nil), rng(jan(5), jan(5))},
		{"backward restarts", jan(1), rng(jan(5), nil), rng(jan(1), nil)},
		{"complete restarts", jan(7), rng(jan(5), jan(9)), rng(jan(7), nil)},
		{"nil date on open range restarts", nil, rng(jan(5), nil), rng(nil, nil)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			requireRange(t, tc.want, s.SelectionFinished(tc.date, tc.current))
		})
	}
}

func TestSelectionFinishedClickSequence(t *testing.T) {
	s := NewDefault(adapter)
	r := selection.DateRange[time.Time]{}

	r = s.SelectionFinished(jan(1), r)
	requireRange(t, rng(jan(1), nil), r)
	r = s.SelectionFinished(jan(10), r)
	requireRange(t, rng(jan(1), jan(10)), r)
	r = s.SelectionFinished(jan(5), r)
	requireRange(t, rng(jan(5), nil), r)
}

func TestSelectionFinishedDiffersFromModelAdd(t *testing.T) {
	s := NewDefault(adapter)
	m := selection.NewRangeModel(adapter)

	m.Add(jan(10))
	m.Add(jan(2))
	assert.True(t, m.IsComplete())
	assert.False(t, m.IsValid())

	r := s.SelectionFinished(jan(2), rng(jan(10), nil))
	requireRange(t, rng(jan(2), nil), r)
}

func TestCreatePreview(t *testing.T) {
	s := NewDefault(adapter)
	requireRange(t, rng(jan(3), jan(8)), s.CreatePreview(jan(8), rng(jan(3), nil)))
	requireRange(t, rng(jan(3), jan(1)), s.CreatePreview(jan(1), rng(jan(3), nil)))
	requireRange(t, rng(nil, nil), s.CreatePreview(nil, rng(jan(3), nil)))
	requireRange(t, rng(nil, nil), s.CreatePreview(jan(8), rng(jan(3), jan(4))))
	requireRange(t, rng(nil, nil), s.CreatePreview(jan(8), rng(nil, nil)))
}

func TestCreateDragRejectsIncompleteRange(t *testing.T) {
	s := NewDefault(adapter)
	_, ok := s.CreateDrag(*jan(1), rng(jan(1), nil), *jan(4))
	assert.False(t, ok)
	_, ok = s.CreateDrag(*jan(1), rng(nil, jan(1)), *jan(4))
	assert.False(t, ok)
}

func TestCreateDrag(t *testing.T) {
	s := NewDefault(adapter)
	original := rng(jan(10), jan(20))
	dec26 := on(2023, time.December, 26)
	feb4 := on(2024, time.February, 4)

	for _, tc := range []struct {
		name    string
		origin  time.Time
		newDate time.Time
		want    selection.DateRange[time.Time]
	}{
		{"start handle", *jan(10), *jan(12), rng(jan(12), jan(20))},
		{"start handle past end pushes end", *jan(10), *jan(25), rng(jan(25), &feb4)},
		{"end handle", *jan(20), *jan(15), rng(jan(10), jan(15))},
		{"end handle before start pushes start", *jan(20), *jan(5), rng(&dec26, jan(5))},
		{"body shifts both", *jan(15), *jan(18), rng(jan(13), jan(23))},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := s.CreateDrag(tc.origin, original, tc.newDate)
			require.True(t, ok)
			requireRange(t, tc.want, got)
		})
	}
}

func TestCreateDragDegenerateRangeShiftsBoth(t *testing.T) {
	s := NewDefault(adapter)
	feb12 := on(2024, time.February, 12)
	got, ok := s.CreateDrag(*jan(10), rng(jan(10), jan(10)), feb12)
	require.True(t, ok)
	requireRange(t, rng(&feb12, &feb12), got)
}

func TestCreateDragPreservesCalendarLength(t *testing.T) {
	s := NewDefault(adapter)
	original := rng(jan(10), jan(20))
	before := deltaBetween(adapter, *original.Start, *original.End)

	for _, newDate := range []time.Time{*jan(11), *jan(17), on(2024, time.March, 14), on(2025, time.January, 14)} {
		got, ok := s.CreateDrag(*jan(14), original, newDate)
		require.True(t, ok)
		assert.Equal(t, before, deltaBetween(adapter, *got.Start, *got.End), "drag to %v", newDate)
	}
}

func TestCreateDragAppliesYearsThenMonthsThenDays(t *testing.T) {
	s := NewDefault(adapter)
	start := on(2024, time.January, 31)
	end := on(2024, time.February, 10)
	mar1, mar11 := on(2024, time.March, 1), on(2024, time.March, 11)

	// Jan 31 plus one month clamps to Feb 29 before the day is added.
	got, ok := s.CreateDrag(on(2024, time.February, 1), rng(&start, &end), on(2024, time.March, 2))
	require.True(t, ok)
	requireRange(t, rng(&mar1, &mar11), got)
}

func TestCreateDragDoesNotModifyOriginal(t *testing.T) {
	s := NewDefault(adapter)
	original := rng(jan(10), jan(20))
	_, ok := s.CreateDrag(*jan(15), original, *jan(18))
	require.True(t, ok)
	requireRange(t, rng(jan(10), jan(20)), original)
}
