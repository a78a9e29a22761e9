package dateadapter

import (
	"fmt"
	"time"

	"cloudeng.io/datetime"
)

// TimeAdapter implements Adapter for time.Time using civil date semantics:
// the time of day is ignored by every comparison and the zero time is the
// invalid date.
type TimeAdapter struct {
	loc *time.Location
	now func() time.Time
}

var _ Adapter[time.Time] = (*TimeAdapter)(nil)

// NewTimeAdapter creates an adapter that creates dates in loc. A nil loc
// means time.Local.
func NewTimeAdapter(loc *time.Location) *TimeAdapter {
	if loc == nil {
		loc = time.Local
	}
	return &TimeAdapter{loc: loc, now: time.Now}
}

// WithClock returns a copy of the adapter whose Today uses now.
func (a *TimeAdapter) WithClock(now func() time.Time) *TimeAdapter {
	c := *a
	c.now = now
	return &c
}

func (a *TimeAdapter) Compare(x, y time.Time) int {
	if d := x.Year() - y.Year(); d != 0 {
		return d
	}
	if d := int(x.Month()) - int(y.Month()); d != 0 {
		return d
	}
	return x.Day() - y.Day()
}

func (a *TimeAdapter) IsDateInstance(time.Time) bool {
	return true
}

func (a *TimeAdapter) IsValid(d time.Time) bool {
	return !d.IsZero()
}

// SameDate compares calendar days for valid dates and falls back to exact
// equality otherwise, so two invalid dates are the same date.
func (a *TimeAdapter) SameDate(x, y time.Time) bool {
	if a.IsValid(x) && a.IsValid(y) {
		return a.Compare(x, y) == 0
	}
	return x.Equal(y)
}

func (a *TimeAdapter) Year(d time.Time) int {
	return d.Year()
}

// Month returns the month as 1-12.
func (a *TimeAdapter) Month(d time.Time) int {
	return int(d.Month())
}

func (a *TimeAdapter) Day(d time.Time) int {
	return d.Day()
}

func (a *TimeAdapter) AddCalendarYears(d time.Time, years int) time.Time {
	return a.AddCalendarMonths(d, years*12)
}

// AddCalendarMonths moves d by the given number of months. When the day does
// not exist in the target month it is clamped to that month's last day, so
// Jan 31 plus one month is the last day of February.
func (a *TimeAdapter) AddCalendarMonths(d time.Time, months int) time.Time {
	total := d.Year()*12 + int(d.Month()) - 1 + months
	year, month := total/12, total%12+1
	if month <= 0 {
		month += 12
		year--
	}
	day := min(d.Day(), a.DaysInMonth(year, time.Month(month)))
	return time.Date(year, time.Month(month), day, d.Hour(), d.Minute(), d.Second(), d.Nanosecond(), d.Location())
}

func (a *TimeAdapter) AddCalendarDays(d time.Time, days int) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day()+days, d.Hour(), d.Minute(), d.Second(), d.Nanosecond(), d.Location())
}

// Today returns midnight of the current day.
func (a *TimeAdapter) Today() time.Time {
	n := a.now().In(a.loc)
	return time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, a.loc)
}

func (a *TimeAdapter) DaysInMonth(year int, month time.Month) int {
	return int(datetime.DaysInMonth(year, datetime.Month(month)))
}

func (a *TimeAdapter) FirstOfMonth(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, d.Location())
}

func (a *TimeAdapter) DayOfWeek(d time.Time) time.Weekday {
	return d.Weekday()
}

// Format renders d with the given layout, the empty string for the invalid
// date.
func (a *TimeAdapter) Format(d time.Time, layout string) string {
	if !a.IsValid(d) {
		return ""
	}
	return d.Format(layout)
}

// Parse parses val in the adapter's location.
func (a *TimeAdapter) Parse(val, layout string) (time.Time, error) {
	t, err := time.ParseInLocation(layout, val, a.loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse date %q: %w", val, err)
	}
	return t, nil
}
