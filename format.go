package civil

import (
	"fmt"
	"strconv"
)

// render formats a reading truncated at the marker's precision. The year
// is unpadded (it may be negative or more than four digits); every finer
// field is zero-padded to two digits.

func (yearAlign) render(f fields) string {
	return strconv.Itoa(f.y)
}

func (monthAlign) render(f fields) string {
	return fmt.Sprintf("%d-%02d", f.y, f.m+1)
}

func (dayAlign) render(f fields) string {
	return fmt.Sprintf("%d-%02d-%02d", f.y, f.m+1, f.d+1)
}

func (hourAlign) render(f fields) string {
	return fmt.Sprintf("%d-%02d-%02dT%02d", f.y, f.m+1, f.d+1, f.hh)
}

func (minuteAlign) render(f fields) string {
	return fmt.Sprintf("%d-%02d-%02dT%02d:%02d", f.y, f.m+1, f.d+1, f.hh, f.mm)
}

func (secondAlign) render(f fields) string {
	return fmt.Sprintf("%d-%02d-%02dT%02d:%02d:%02d", f.y, f.m+1, f.d+1, f.hh, f.mm, f.ss)
}

// String formats t as YYYY-MM-DDTHH:MM:SS truncated at t's alignment,
// e.g. a Month formats as "2024-02" and an Hour as "2024-02-01T15".
func (t Time[A]) String() string {
	var a A
	return a.render(t.f)
}
