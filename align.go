package civil

// The six alignment markers. Each marker pins a Time to one precision and
// carries the precision-specific pieces of the arithmetic: how to align a
// normalized reading, how to step it by n units, how to count whole units
// between two readings, and how to render it as text (format.go).
type (
	secondAlign struct{}
	minuteAlign struct{}
	hourAlign   struct{}
	dayAlign    struct{}
	monthAlign  struct{}
	yearAlign   struct{}
)

// Alignment is the closed set of precision markers a [Time] can be
// aligned to, ordered from finest to coarsest:
//
//	second < minute < hour < day < month < year
//
// The marker types are unexported, so the set cannot grow outside this
// package.
type Alignment interface {
	secondAlign | minuteAlign | hourAlign | dayAlign | monthAlign | yearAlign

	align(fields) fields
	step(fields, int) fields
	diff(fields, fields) int
	render(fields) string
}

// Source alignments that widen losslessly into a given target. Each set
// names the target's own marker plus every coarser one.
type (
	minuteOrCoarser interface {
		Alignment
		minuteAlign | hourAlign | dayAlign | monthAlign | yearAlign
	}
	hourOrCoarser interface {
		Alignment
		hourAlign | dayAlign | monthAlign | yearAlign
	}
	dayOrCoarser interface {
		Alignment
		dayAlign | monthAlign | yearAlign
	}
	monthOrCoarser interface {
		Alignment
		monthAlign | yearAlign
	}
)

// align forces every field below the marker's precision to its minimum.

func (secondAlign) align(f fields) fields { return f }
func (minuteAlign) align(f fields) fields { return fields{f.y, f.m, f.d, f.hh, f.mm, 0} }
func (hourAlign) align(f fields) fields   { return fields{f.y, f.m, f.d, f.hh, 0, 0} }
func (dayAlign) align(f fields) fields    { return fields{f.y, f.m, f.d, 0, 0, 0} }
func (monthAlign) align(f fields) fields  { return fields{f.y, f.m, 0, 0, 0, 0} }
func (yearAlign) align(f fields) fields   { return fields{f.y, 0, 0, 0, 0, 0} }

// step advances a normalized reading by n units of the marker's
// precision, entering the normalizer chain at the matching stage. The
// finer stages split n across two adjacent fields so the additions cannot
// overflow even for n at the integer extremes.

func (secondAlign) step(f fields, n int) fields {
	y, m, d, hh, mm, ss := f.unpack()
	return normSecond(y, m, d, hh, mm+n/60, ss+n%60)
}

func (minuteAlign) step(f fields, n int) fields {
	y, m, d, hh, mm, ss := f.unpack()
	return normMinute(y, m, d, hh+n/60, 0, mm+n%60, ss)
}

func (hourAlign) step(f fields, n int) fields {
	y, m, d, hh, mm, ss := f.unpack()
	return normHour(y, m, d+n/24, 0, hh+n%24, mm, ss)
}

func (dayAlign) step(f fields, n int) fields {
	y, m, d, hh, mm, ss := f.unpack()
	return normDay(y, m, d, n, hh, mm, ss)
}

func (monthAlign) step(f fields, n int) fields {
	y, m, d, hh, mm, ss := f.unpack()
	return normMonth(y+n/12, m+n%12, d, 0, hh, mm, ss)
}

func (yearAlign) step(f fields, n int) fields {
	return fields{f.y + n, f.m, f.d, f.hh, f.mm, f.ss}
}

// diff counts the whole units of the marker's precision from f2 to f1.
// Each precision is expressed in terms of the next coarser one, bottoming
// out at the day ordinal.

func (yearAlign) diff(f1, f2 fields) int {
	return f1.y - f2.y
}

func (monthAlign) diff(f1, f2 fields) int {
	return yearAlign{}.diff(f1, f2)*12 + (f1.m - f2.m)
}

func (dayAlign) diff(f1, f2 fields) int {
	return dayOrdinal(f1) - dayOrdinal(f2)
}

func (hourAlign) diff(f1, f2 fields) int {
	return dayAlign{}.diff(f1, f2)*24 + (f1.hh - f2.hh)
}

func (minuteAlign) diff(f1, f2 fields) int {
	return hourAlign{}.diff(f1, f2)*60 + (f1.mm - f2.mm)
}

func (secondAlign) diff(f1, f2 fields) int {
	return minuteAlign{}.diff(f1, f2)*60 + (f1.ss - f2.ss)
}
