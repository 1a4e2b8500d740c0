package civil

import (
	"math"
	"testing"
	"time"
)

func TestConstructors_AlignTrailingFields(t *testing.T) {
	t.Parallel()

	// Trailing fields below the alignment are forced to their minimums,
	// whatever was passed in.
	y := NewYear(2024)
	if y.Month() != time.January || y.Day() != 1 || y.Hour() != 0 || y.Minute() != 0 || y.Second() != 0 {
		t.Errorf("NewYear(2024) trailing fields not at minimum: %v", y)
	}

	m := NewMonth(2024, time.June)
	if m.Day() != 1 || m.Hour() != 0 {
		t.Errorf("NewMonth trailing fields not at minimum: %v", m)
	}

	d := NewDay(2024, time.June, 10)
	if d.Hour() != 0 || d.Minute() != 0 || d.Second() != 0 {
		t.Errorf("NewDay trailing fields not at minimum: %v", d)
	}

	s := NewSecond(2024, time.June, 10, 12, 30, 45)
	if s.Year() != 2024 || s.Month() != time.June || s.Day() != 10 ||
		s.Hour() != 12 || s.Minute() != 30 || s.Second() != 45 {
		t.Errorf("NewSecond accessors wrong: %v", s)
	}
}

func TestZeroValue(t *testing.T) {
	t.Parallel()

	// The zero Time of every alignment is the canonical 0000-01-01 00:00:00
	// and behaves like any other value.
	var d Day
	if d.Year() != 0 || d.Month() != time.January || d.Day() != 1 {
		t.Errorf("zero Day = %v, want 0-01-01", d)
	}
	if got := d.Add(1); got != NewDay(0, time.January, 2) {
		t.Errorf("zero Day + 1 = %v, want 0-01-02", got)
	}
	if got := d.Prev(); got != NewDay(-1, time.December, 31) {
		t.Errorf("zero Day - 1 = %v, want -1-12-31", got)
	}

	var s Second
	if !Equal(s, ToSecond(d)) {
		t.Errorf("zero Second %v != widened zero Day %v", s, ToSecond(d))
	}
}

func TestAdd_AcrossBoundaries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		got  Day
		want Day
	}{
		{"within month", NewDay(2024, time.June, 10).Add(5), NewDay(2024, time.June, 15)},
		{"across month", NewDay(2024, time.June, 28).Add(5), NewDay(2024, time.July, 3)},
		{"across leap day", NewDay(2024, time.February, 28).Add(1), NewDay(2024, time.February, 29)},
		{"across non-leap February", NewDay(2023, time.February, 28).Add(1), NewDay(2023, time.March, 1)},
		{"across year", NewDay(2023, time.December, 31).Add(1), NewDay(2024, time.January, 1)},
		{"backward across year", NewDay(2024, time.January, 1).Add(-1), NewDay(2023, time.December, 31)},
		{"whole leap year", NewDay(2024, time.January, 1).Add(366), NewDay(2025, time.January, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestAdd_EveryAlignment(t *testing.T) {
	t.Parallel()

	if got, want := NewYear(2024).Add(10), NewYear(2034); got != want {
		t.Errorf("Year + 10 = %v, want %v", got, want)
	}
	if got, want := NewMonth(2024, time.November).Add(3), NewMonth(2025, time.February); got != want {
		t.Errorf("Month + 3 = %v, want %v", got, want)
	}
	if got, want := NewHour(2024, time.June, 10, 23).Add(2), NewHour(2024, time.June, 11, 1); got != want {
		t.Errorf("Hour + 2 = %v, want %v", got, want)
	}
	if got, want := NewMinute(2024, time.June, 10, 23, 59).Add(1), NewMinute(2024, time.June, 11, 0, 0); got != want {
		t.Errorf("Minute + 1 = %v, want %v", got, want)
	}
	if got, want := NewSecond(2023, time.December, 31, 23, 59, 59).Add(1), NewSecond(2024, time.January, 1, 0, 0, 0); got != want {
		t.Errorf("Second + 1 = %v, want %v", got, want)
	}
}

func TestAddSub_RoundTrip(t *testing.T) {
	t.Parallel()

	base := NewSecond(2024, time.June, 10, 12, 30, 45)
	for _, n := range []int{0, 1, -1, 59, 60, 86400, -86400, 1 << 30, -(1 << 30)} {
		if got := base.Add(n).Sub(n); got != base {
			t.Errorf("Add(%d) then Sub(%d) = %v, want %v", n, n, got, base)
		}
		if got := base.Sub(n).Add(n); got != base {
			t.Errorf("Sub(%d) then Add(%d) = %v, want %v", n, n, got, base)
		}
	}
}

func TestSub_MinInt(t *testing.T) {
	t.Parallel()

	// Sub(math.MinInt) must not negate the count directly; the step is
	// split to avoid the overflow, and adding MinInt back restores the
	// original value.
	base := NewSecond(1970, time.January, 1, 0, 0, 0)
	moved := base.Sub(math.MinInt)
	if got := moved.Add(math.MinInt); got != base {
		t.Errorf("Sub(MinInt) then Add(MinInt) = %v, want %v", got, base)
	}
	if !After(moved, base) {
		t.Errorf("Sub(MinInt) = %v, want a value after %v", moved, base)
	}
}

func TestNextPrev(t *testing.T) {
	t.Parallel()

	d := NewDay(2024, time.February, 29)
	if got, want := d.Next(), NewDay(2024, time.March, 1); got != want {
		t.Errorf("Next() = %v, want %v", got, want)
	}
	if got := d.Next().Prev(); got != d {
		t.Errorf("Next().Prev() = %v, want %v", got, d)
	}

	m := NewMonth(2024, time.January)
	if got, want := m.Prev(), NewMonth(2023, time.December); got != want {
		t.Errorf("Prev() = %v, want %v", got, want)
	}
}

func TestSince(t *testing.T) {
	t.Parallel()

	t.Run("days", func(t *testing.T) {
		t.Parallel()
		a := NewDay(2024, time.March, 1)
		b := NewDay(2024, time.February, 1)
		if got := a.Since(b); got != 29 {
			t.Errorf("a.Since(b) = %d, want 29 (leap February)", got)
		}
		if got := b.Since(a); got != -29 {
			t.Errorf("b.Since(a) = %d, want -29", got)
		}
	})

	t.Run("years", func(t *testing.T) {
		t.Parallel()
		if got := NewYear(2024).Since(NewYear(1970)); got != 54 {
			t.Errorf("Since = %d, want 54", got)
		}
	})

	t.Run("months", func(t *testing.T) {
		t.Parallel()
		if got := NewMonth(2024, time.February).Since(NewMonth(2023, time.November)); got != 3 {
			t.Errorf("Since = %d, want 3", got)
		}
	})

	t.Run("hours across leap day", func(t *testing.T) {
		t.Parallel()
		a := NewHour(2024, time.March, 1, 0)
		b := NewHour(2024, time.February, 28, 12)
		if got := a.Since(b); got != 36 {
			t.Errorf("Since = %d, want 36", got)
		}
	})

	t.Run("seconds", func(t *testing.T) {
		t.Parallel()
		a := NewSecond(1970, time.January, 2, 0, 0, 1)
		b := NewSecond(1970, time.January, 1, 0, 0, 0)
		if got := a.Since(b); got != 86401 {
			t.Errorf("Since = %d, want 86401", got)
		}
	})

	t.Run("consistent with Add", func(t *testing.T) {
		t.Parallel()
		base := NewMinute(1999, time.December, 31, 23, 58)
		for _, n := range []int{0, 1, -1, 1440, -99999} {
			if got := base.Add(n).Since(base); got != n {
				t.Errorf("Add(%d).Since(base) = %d, want %d", n, got, n)
			}
		}
	})
}

func TestWidening(t *testing.T) {
	t.Parallel()

	m := NewMonth(2024, time.February)

	d := ToDay(m)
	if d.Day() != 1 {
		t.Errorf("ToDay(%v).Day() = %d, want 1", m, d.Day())
	}
	h := ToHour(m)
	if h.Hour() != 0 {
		t.Errorf("ToHour(%v).Hour() = %d, want 0", m, h.Hour())
	}
	s := ToSecond(m)
	if s.Hour() != 0 || s.Minute() != 0 || s.Second() != 0 {
		t.Errorf("ToSecond(%v) exposed nonzero time fields: %v", m, s)
	}

	// Widening never changes the reading.
	if !Equal(m, s) {
		t.Errorf("widened value %v not equal to source %v", s, m)
	}
	if got := ToMinute(NewYear(2024)); !Equal(got, NewYear(2024)) {
		t.Errorf("ToMinute(year) = %v, want same reading", got)
	}
}

func TestTruncating(t *testing.T) {
	t.Parallel()

	s := NewSecond(2024, time.June, 10, 12, 30, 45)

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"to minute", TruncateToMinute(s).String(), "2024-06-10T12:30"},
		{"to hour", TruncateToHour(s).String(), "2024-06-10T12"},
		{"to day", TruncateToDay(s).String(), "2024-06-10"},
		{"to month", TruncateToMonth(s).String(), "2024-06"},
		{"to year", TruncateToYear(s).String(), "2024"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}

	// The dropped fields read as minimums afterwards.
	if m := TruncateToMinute(s); m.Second() != 0 {
		t.Errorf("TruncateToMinute(%v).Second() = %d, want 0", s, m.Second())
	}

	// Truncating an already-coarser value keeps its reading.
	y := NewYear(2024)
	if got := TruncateToDay(y); !Equal(got, y) {
		t.Errorf("TruncateToDay(%v) = %v, want same reading", y, got)
	}

	// Truncation then widening round-trips for aligned inputs.
	d := NewDay(2024, time.June, 10)
	if got := TruncateToDay(ToSecond(d)); got != d {
		t.Errorf("truncate(widen(%v)) = %v, want original", d, got)
	}
}

func TestCompare_CrossAlignment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		got  int
		want int
	}{
		{"month before its mid-month day", Compare(NewMonth(2024, time.June), NewDay(2024, time.June, 10)), -1},
		{"month equals its first day", Compare(NewMonth(2024, time.June), NewDay(2024, time.June, 1)), 0},
		{"second after its day", Compare(NewSecond(2024, time.June, 10, 0, 0, 1), NewDay(2024, time.June, 10)), 1},
		{"year before later year", Compare(NewYear(2023), NewYear(2024)), -1},
		{"equal seconds", Compare(NewSecond(2024, time.June, 10, 1, 2, 3), NewSecond(2024, time.June, 10, 1, 2, 3)), 0},
		{"minute differs", Compare(NewMinute(2024, time.June, 10, 1, 3), NewMinute(2024, time.June, 10, 1, 2)), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("Compare = %d, want %d", tt.got, tt.want)
			}
		})
	}

	if !Before(NewDay(2024, time.June, 10), NewSecond(2024, time.June, 10, 0, 0, 1)) {
		t.Error("Before: day should order before a later second on the same day")
	}
	if !After(NewHour(2024, time.June, 10, 1), NewDay(2024, time.June, 10)) {
		t.Error("After: 01:00 should order after midnight")
	}
	if !Equal(NewYear(2024), NewDay(2024, time.January, 1)) {
		t.Error("Equal: a year should equal its first day")
	}
	if Equal(NewYear(2024), NewDay(2024, time.January, 2)) {
		t.Error("Equal: a year should not equal its second day")
	}
}

func TestCompare_TotalOrder(t *testing.T) {
	t.Parallel()

	// Values differing in exactly one field, coarse to fine, must sort in
	// listed order.
	ordered := []Second{
		NewSecond(2023, time.June, 10, 12, 30, 45),
		NewSecond(2024, time.May, 10, 12, 30, 45),
		NewSecond(2024, time.June, 9, 12, 30, 45),
		NewSecond(2024, time.June, 10, 11, 30, 45),
		NewSecond(2024, time.June, 10, 12, 29, 45),
		NewSecond(2024, time.June, 10, 12, 30, 44),
		NewSecond(2024, time.June, 10, 12, 30, 45),
	}
	for i := range ordered {
		for j := range ordered {
			got := Compare(ordered[i], ordered[j])
			want := 0
			if i < j {
				want = -1
			} else if i > j {
				want = 1
			}
			if got != want {
				t.Errorf("Compare(%v, %v) = %d, want %d", ordered[i], ordered[j], got, want)
			}
		}
	}
}

func TestDayOrdinal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		d    Day
		want int
	}{
		{"epoch", NewDay(1970, time.January, 1), 0},
		{"day before epoch", NewDay(1969, time.December, 31), -1},
		{"day after epoch", NewDay(1970, time.January, 2), 1},
		{"cycle start", NewDay(2000, time.March, 1), 11017},
		{"far past", NewDay(1600, time.March, 1), -135080},
		{"negative year", NewDay(0, time.January, 1), -719528},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := dayOrdinal(tt.d.f); got != tt.want {
				t.Errorf("dayOrdinal(%v) = %d, want %d", tt.d, got, tt.want)
			}
		})
	}

	// The ordinal inverts stepping: the ordinal of epoch+n is n.
	epoch := NewDay(1970, time.January, 1)
	for _, n := range []int{1, -1, 365, 146097, -146097, 1000000} {
		if got := dayOrdinal(epoch.Add(n).f); got != n {
			t.Errorf("dayOrdinal(epoch+%d) = %d, want %d", n, got, n)
		}
	}
}

func TestDayOf_SecondOf(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("UTC+9", 9*60*60)
	moment := time.Date(2024, time.June, 10, 23, 30, 45, 0, loc)

	// The civil reading is taken in the value's own location, with no
	// conversion.
	if got, want := DayOf(moment), NewDay(2024, time.June, 10); got != want {
		t.Errorf("DayOf = %v, want %v", got, want)
	}
	if got, want := SecondOf(moment), NewSecond(2024, time.June, 10, 23, 30, 45); got != want {
		t.Errorf("SecondOf = %v, want %v", got, want)
	}
}
