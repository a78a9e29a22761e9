package strategy

import "datepick/internal/dateadapter"

// delta is a calendar offset measured field by field rather than as a
// duration.
type delta struct {
	years, months, days int
}

func deltaBetween[D any](a dateadapter.Adapter[D], from, to D) delta {
	return delta{
		years:  a.Year(to) - a.Year(from),
		months: a.Month(to) - a.Month(from),
		days:   a.Day(to) - a.Day(from),
	}
}

// shift adds the years, then the months, then the days of d to date.
func shift[D any](a dateadapter.Adapter[D], date D, d delta) D {
	date = a.AddCalendarYears(date, d.years)
	date = a.AddCalendarMonths(date, d.months)
	return a.AddCalendarDays(date, d.days)
}
