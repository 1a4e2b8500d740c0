package civil

// dayOrdinal maps a normalized reading to the signed number of days
// relative to 1970-01-01 (day 0). January and February are shifted to the
// tail of the previous March-based year so the leap day falls at the very
// end, then the date is located within its 400-year era.
//
// The algorithm is Howard Hinnant's days_from_civil; 719468 is the day
// count from 0000-03-01 to 1970-01-01.
func dayOrdinal(f fields) int {
	y, m, d, _, _, _ := f.unpack()
	if m <= 2 {
		y--
	}
	era := y
	if era < 0 {
		era -= 399
	}
	era /= 400
	yoe := y - era*400 // [0, 399]
	doy := (153*(m+monthShift(m))+2)/5 + d - 1
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	return era*146097 + doe - 719468
}

// monthShift rotates the month so March is 0 and February is 11.
func monthShift(m int) int {
	if m > 2 {
		return -3
	}
	return 9
}
