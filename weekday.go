package civil

import "time"

// weekdayByEpochOffset maps a day ordinal mod 7 to its weekday; day 0
// (1970-01-01) is a Thursday.
var weekdayByEpochOffset = [7]time.Weekday{
	time.Thursday, time.Friday, time.Saturday, time.Sunday,
	time.Monday, time.Tuesday, time.Wednesday,
}

// Weekday returns the day of the week of d.
func Weekday(d Day) time.Weekday {
	return weekdayByEpochOffset[(dayOrdinal(d.f)%7+7)%7]
}

// NextWeekday returns the first day strictly after d that falls on wd.
// The result is always between 1 and 7 days after d.
func NextWeekday(d Day, wd time.Weekday) Day {
	for {
		d = d.Next()
		if Weekday(d) == wd {
			return d
		}
	}
}

// PrevWeekday returns the last day strictly before d that falls on wd.
// The result is always between 1 and 7 days before d.
func PrevWeekday(d Day, wd time.Weekday) Day {
	for {
		d = d.Prev()
		if Weekday(d) == wd {
			return d
		}
	}
}

// YearDay returns the 1-based day of the year of d, up to 365 in a
// common year and 366 in a leap year.
func YearDay(d Day) int {
	return d.Since(NewDay(d.Year(), time.January, 1)) + 1
}
