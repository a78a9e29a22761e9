// Package dateadapter defines the date capability the selection models and
// range strategies are written against, plus a time.Time implementation.
package dateadapter

// Adapter supplies the operations over an opaque date type D that the
// selection models and range strategies need. Implementations must provide
// a total order via Compare.
type Adapter[D any] interface {
	// Compare returns a negative number if a is before b, zero if they fall
	// on the same calendar day and a positive number otherwise.
	Compare(a, b D) int
	// IsDateInstance reports whether d is an instance of the date type at all.
	IsDateInstance(d D) bool
	// IsValid reports whether d is a well formed date.
	IsValid(d D) bool
	// SameDate reports whether a and b are the same calendar day.
	SameDate(a, b D) bool

	Year(d D) int
	Month(d D) int
	Day(d D) int

	AddCalendarYears(d D, years int) D
	AddCalendarMonths(d D, months int) D
	AddCalendarDays(d D, days int) D
}

// IsValidDate reports whether d passes both the instance and the well
// formed checks of the adapter.
func IsValidDate[D any](a Adapter[D], d D) bool {
	return a.IsDateInstance(d) && a.IsValid(d)
}
