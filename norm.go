package civil

import "time"

// isLeapYear reports whether y is a leap year in the proleptic Gregorian
// calendar. Works for negative years: Go's truncated % agrees with the
// divisibility tests here.
func isLeapYear(y int) bool {
	return y%4 == 0 && (y%100 != 0 || y%400 == 0)
}

// yearIndex returns the position of year y within the 400-year Gregorian
// cycle, shifted forward by one when the month is past February so that
// the leap day always falls at the end of the indexed year. The result is
// always in [0, 400) regardless of the sign of y.
func yearIndex(y, m int) int {
	if m > 2 {
		y++
	}
	return (y%400 + 400) % 400
}

// daysPerCentury returns the number of days in the 100 years starting at
// month m of year y.
func daysPerCentury(y, m int) int {
	return 36524 + int(centuryDeficit[yearIndex(y, m)])
}

// daysPerFourYears returns the number of days in the 4 years starting at
// month m of year y.
func daysPerFourYears(y, m int) int {
	return 1460 + int(quadDeficit[yearIndex(y, m)])
}

// daysPerYear returns the number of days in the year starting at month m
// of year y.
func daysPerYear(y, m int) int {
	if m > 2 {
		y++
	}
	if isLeapYear(y) {
		return 366
	}
	return 365
}

// monthLengths holds the month lengths of a non-leap year.
var monthLengths = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// daysPerMonth returns the number of days in month m (1..12) of year y.
func daysPerMonth(y, m int) int {
	n := monthLengths[m-1]
	if m == 2 && isLeapYear(y) {
		n++
	}
	return n
}

// The norm* functions below convert arbitrarily out-of-range civil-time
// fields into canonical form, cascading carries from the finest field to
// the coarsest. Every stage keeps the remainder non-negative, so e.g.
// second = -1 borrows one minute and lands on second 59.

// normDay folds a signed day carry c into (y, m, d) and produces the final
// normalized fields. Whole 400-year eras are removed up front, then the
// residual day count is reduced by century, 4-year, year and month spans,
// each span length looked up by the current cycle index. The residual
// loops run a small bounded number of iterations.
func normDay(y, m, d, c, hh, mm, ss int) fields {
	y += (c / 146097) * 400
	c %= 146097
	if c < 0 {
		y -= 400
		c += 146097
	}
	y += (d / 146097) * 400
	d = d%146097 + c
	if d <= 0 {
		y -= 400
		d += 146097
	}
	n := daysPerCentury(y, m)
	for d > n {
		d -= n
		y += 100
		n = daysPerCentury(y, m)
	}
	n = daysPerFourYears(y, m)
	for d > n {
		d -= n
		y += 4
		n = daysPerFourYears(y, m)
	}
	n = daysPerYear(y, m)
	for d > n {
		d -= n
		y++
		n = daysPerYear(y, m)
	}
	n = daysPerMonth(y, m)
	for d > n {
		d -= n
		if m == 12 {
			y++
			m = 1
		} else {
			m++
		}
		n = daysPerMonth(y, m)
	}
	return makeFields(y, m, d, hh, mm, ss)
}

// normMonth folds an out-of-range month into the year, then hands the day
// carry cd to normDay.
func normMonth(y, m, d, cd, hh, mm, ss int) fields {
	y += m / 12
	m %= 12
	if m <= 0 {
		y--
		m += 12
	}
	return normDay(y, m, d, cd, hh, mm, ss)
}

// normHour folds an out-of-range hour plus the accumulated day carry c
// into the day count.
func normHour(y, m, d, c, hh, mm, ss int) fields {
	c += hh / 24
	hh %= 24
	if hh < 0 {
		c--
		hh += 24
	}
	return normMonth(y, m, d, c, hh, mm, ss)
}

// normMinute folds an out-of-range minute into the hour. The hour carry c
// and the hour field are each split by 24 before the hand-off so neither
// addition can overflow.
func normMinute(y, m, d, hh, c, mm, ss int) fields {
	c += mm / 60
	mm %= 60
	if mm < 0 {
		c--
		mm += 60
	}
	return normHour(y, m, d, hh/24+c/24, hh%24+c%24, mm, ss)
}

// normSecond folds an out-of-range second into the minute and runs the
// rest of the chain. This is the entry point used by all constructors.
func normSecond(y, m, d, hh, mm, ss int) fields {
	c := ss / 60
	ss %= 60
	if ss < 0 {
		c--
		ss += 60
	}
	return normMinute(y, m, d, hh, mm/60+c/60, mm%60+c%60, ss)
}

// IsLeapYear reports whether year y is a leap year in the proleptic
// Gregorian calendar.
func IsLeapYear(y int) bool {
	return isLeapYear(y)
}

// DaysInMonth returns the number of days in the given month of year y.
// Out-of-range months are normalized first, so DaysInMonth(2015, 14)
// returns the length of February 2016.
func DaysInMonth(y int, m time.Month) int {
	f := normMonth(y, int(m), 1, 0, 0, 0, 0)
	return daysPerMonth(f.y, f.m+1)
}
