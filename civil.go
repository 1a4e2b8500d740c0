// Package civil implements proleptic Gregorian calendar arithmetic with
// no timezone or wall-clock notion attached.
//
// A civil time is a calendar reading (year, month, day, hour, minute,
// second) aligned to one of six precisions. The six alignments are
// distinct types, so the precision of a value is fixed at compile time:
//
//	d := civil.NewDay(2024, time.February, 29) // 2024-02-29
//	d = d.Add(1)                               // 2024-03-01
//	civil.Weekday(d)                           // time.Friday
//
// Construction accepts arbitrarily out-of-range fields and normalizes
// them by carry/borrow propagation, so NewDay(2015, time.February, 30)
// is 2015-03-02 and NewMonth(2015, 13) is 2016-01. There is no error
// path: every operation over integer inputs produces a defined value.
//
// Converting a value to a finer alignment is lossless and done with the
// To* functions (the newly exposed fields read as their minimums).
// Converting to a coarser alignment discards fields and therefore has a
// separate, explicitly named set of TruncateTo* functions, keeping the
// information loss visible at the call site.
//
// All arithmetic is exact integer arithmetic. The supported range is
// approximately ±5.8 million years; results outside that range are
// undefined (callers are expected to stay within it, there is no runtime
// check). Values are immutable and safe for concurrent use without
// synchronization.
package civil

import (
	"cmp"
	"math"
	"time"
)

// fields is a normalized civil-time reading. Month and day are stored
// zero-based so the zero fields value reads as 0000-01-01 00:00:00; this
// makes the zero Time of every alignment a canonical value.
type fields struct {
	y, m, d, hh, mm, ss int
}

// makeFields packs a normalized one-based (y, m, d, hh, mm, ss) reading.
func makeFields(y, m, d, hh, mm, ss int) fields {
	return fields{y, m - 1, d - 1, hh, mm, ss}
}

// unpack returns the one-based reading used by the normalizer chain.
func (f fields) unpack() (y, m, d, hh, mm, ss int) {
	return f.y, f.m + 1, f.d + 1, f.hh, f.mm, f.ss
}

// Time is a civil-time value aligned to precision A. Fields below the
// alignment always hold their minimum (month/day 1, hour/minute/second 0)
// and carry no information. Values of the same alignment are comparable
// with ==; use [Equal] to compare across alignments.
//
// The zero Time of every alignment is 0000-01-01 00:00:00 and is ready
// to use.
type Time[A Alignment] struct {
	f fields
}

// The six concrete civil-time types.
type (
	Second = Time[secondAlign]
	Minute = Time[minuteAlign]
	Hour   = Time[hourAlign]
	Day    = Time[dayAlign]
	Month  = Time[monthAlign]
	Year   = Time[yearAlign]
)

// of is the designated constructor: every Time is built by aligning an
// already-normalized reading.
func of[A Alignment](f fields) Time[A] {
	var a A
	return Time[A]{f: a.align(f)}
}

// NewYear returns the year-aligned civil time for the given year.
func NewYear(year int) Year {
	return of[yearAlign](normSecond(year, 1, 1, 0, 0, 0))
}

// NewMonth returns the month-aligned civil time for the given year and
// month. The month may be out of range: NewMonth(2015, 13) is 2016-01.
func NewMonth(year int, month time.Month) Month {
	return of[monthAlign](normSecond(year, int(month), 1, 0, 0, 0))
}

// NewDay returns the day-aligned civil time for the given date. Any
// field may be out of range: NewDay(1900, time.February, 29) is
// 1900-03-01 since 1900 is not a leap year.
func NewDay(year int, month time.Month, day int) Day {
	return of[dayAlign](normSecond(year, int(month), day, 0, 0, 0))
}

// NewHour returns the hour-aligned civil time for the given date and hour.
func NewHour(year int, month time.Month, day, hour int) Hour {
	return of[hourAlign](normSecond(year, int(month), day, hour, 0, 0))
}

// NewMinute returns the minute-aligned civil time for the given date,
// hour and minute.
func NewMinute(year int, month time.Month, day, hour, min int) Minute {
	return of[minuteAlign](normSecond(year, int(month), day, hour, min, 0))
}

// NewSecond returns the second-aligned civil time for the given fields.
func NewSecond(year int, month time.Month, day, hour, min, sec int) Second {
	return of[secondAlign](normSecond(year, int(month), day, hour, min, sec))
}

// DayOf returns the civil day of t in t's own location. No timezone
// conversion is performed.
func DayOf(t time.Time) Day {
	y, m, d := t.Date()
	return NewDay(y, m, d)
}

// SecondOf returns the civil second of t in t's own location. No
// timezone conversion is performed.
func SecondOf(t time.Time) Second {
	y, m, d := t.Date()
	hh, mm, ss := t.Clock()
	return NewSecond(y, m, d, hh, mm, ss)
}

// Field accessors. Fields below the value's alignment read as their
// minimums.

func (t Time[A]) Year() int         { return t.f.y }
func (t Time[A]) Month() time.Month { return time.Month(t.f.m + 1) }
func (t Time[A]) Day() int          { return t.f.d + 1 }
func (t Time[A]) Hour() int         { return t.f.hh }
func (t Time[A]) Minute() int       { return t.f.mm }
func (t Time[A]) Second() int       { return t.f.ss }

// Add returns t advanced by n units of its own alignment. Negative n
// moves backward. Adding n then -n always returns the original value.
func (t Time[A]) Add(n int) Time[A] {
	var a A
	return of[A](a.step(t.f, n))
}

// Sub returns t moved backward by n units of its own alignment. n at the
// minimum representable integer is handled by splitting the step, since
// -n would overflow.
func (t Time[A]) Sub(n int) Time[A] {
	if n == math.MinInt {
		return t.Add(-(n + 1)).Add(1)
	}
	return t.Add(-n)
}

// Next returns t advanced by one unit of its alignment.
func (t Time[A]) Next() Time[A] { return t.Add(1) }

// Prev returns t moved backward by one unit of its alignment.
func (t Time[A]) Prev() Time[A] { return t.Sub(1) }

// Since returns the signed number of whole alignment units from u to t,
// so NewDay(2024, time.March, 1).Since(NewDay(2024, time.February, 1))
// is 29. It is antisymmetric: t.Since(u) == -u.Since(t).
func (t Time[A]) Since(u Time[A]) int {
	var a A
	return a.diff(t.f, u.f)
}

// Widening conversions. These are lossless and accept only sources at
// the target alignment or coarser; the newly exposed finer fields read
// as their minimums.

// ToSecond converts a civil time of any alignment to second alignment.
func ToSecond[A Alignment](t Time[A]) Second { return Second{f: t.f} }

// ToMinute converts a minute-or-coarser civil time to minute alignment.
func ToMinute[A minuteOrCoarser](t Time[A]) Minute { return Minute{f: t.f} }

// ToHour converts an hour-or-coarser civil time to hour alignment.
func ToHour[A hourOrCoarser](t Time[A]) Hour { return Hour{f: t.f} }

// ToDay converts a day-or-coarser civil time to day alignment.
func ToDay[A dayOrCoarser](t Time[A]) Day { return Day{f: t.f} }

// ToMonth converts a month-or-coarser civil time to month alignment.
func ToMonth[A monthOrCoarser](t Time[A]) Month { return Month{f: t.f} }

// Truncating conversions. These accept any alignment and discard every
// field below the target; an already-coarser input passes through with
// the same reading.

// TruncateToYear returns the year-aligned civil time containing t.
func TruncateToYear[A Alignment](t Time[A]) Year {
	return Year{f: yearAlign{}.align(t.f)}
}

// TruncateToMonth returns the month-aligned civil time containing t.
func TruncateToMonth[A Alignment](t Time[A]) Month {
	return Month{f: monthAlign{}.align(t.f)}
}

// TruncateToDay returns the day-aligned civil time containing t.
func TruncateToDay[A Alignment](t Time[A]) Day {
	return Day{f: dayAlign{}.align(t.f)}
}

// TruncateToHour returns the hour-aligned civil time containing t.
func TruncateToHour[A Alignment](t Time[A]) Hour {
	return Hour{f: hourAlign{}.align(t.f)}
}

// TruncateToMinute returns the minute-aligned civil time containing t.
func TruncateToMinute[A Alignment](t Time[A]) Minute {
	return Minute{f: minuteAlign{}.align(t.f)}
}

// Compare orders two civil times of any alignments. It compares all six
// canonical fields lexicographically from coarsest to finest, so a
// month-aligned 2024-02 sorts before a second-aligned
// 2024-02-01 00:00:01. The result is -1, 0 or +1.
func Compare[A1, A2 Alignment](t Time[A1], u Time[A2]) int {
	if c := cmp.Compare(t.f.y, u.f.y); c != 0 {
		return c
	}
	if c := cmp.Compare(t.f.m, u.f.m); c != 0 {
		return c
	}
	if c := cmp.Compare(t.f.d, u.f.d); c != 0 {
		return c
	}
	if c := cmp.Compare(t.f.hh, u.f.hh); c != 0 {
		return c
	}
	if c := cmp.Compare(t.f.mm, u.f.mm); c != 0 {
		return c
	}
	return cmp.Compare(t.f.ss, u.f.ss)
}

// Equal reports whether two civil times of any alignments have the same
// six canonical fields.
func Equal[A1, A2 Alignment](t Time[A1], u Time[A2]) bool {
	return t.f == u.f
}

// Before reports whether t orders strictly before u.
func Before[A1, A2 Alignment](t Time[A1], u Time[A2]) bool {
	return Compare(t, u) < 0
}

// After reports whether t orders strictly after u.
func After[A1, A2 Alignment](t Time[A1], u Time[A2]) bool {
	return Compare(t, u) > 0
}
