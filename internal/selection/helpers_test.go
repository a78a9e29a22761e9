package selection

import (
	"time"

	"datepick/internal/dateadapter"
)

var adapter dateadapter.Adapter[time.Time] = dateadapter.NewTimeAdapter(time.UTC)

func day(m time.Month, d int) *time.Time {
	t := time.Date(2024, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

var invalid = Ptr(time.Time{})
