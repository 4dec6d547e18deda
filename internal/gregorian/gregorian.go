// Package gregorian converts between Gregorian calendar dates and day
// offsets.
//
// A day offset is a count of days since 1582-10-15, the first day the
// Gregorian calendar was in force. Offsets run from 0 (1582-10-15) up
// to DayMax (9999-12-31). Dates before the epoch are not representable:
// the day before offset zero was 1582-10-04 on the Julian calendar, and
// the discontinuity makes earlier Gregorian offsets ill-defined. Years
// past 9999 are excluded so dates always format with four-digit years.
//
// Internally the conversions work on a proleptic day count with
// 1200-03-01 as day zero. That date opens a quad-century under the
// calendar's own 400-year cycle, and starting years in March pushes the
// variable-length month (February) to the end of the internal year.
// Neither the proleptic count nor the March-based year numbering is
// ever visible through the public API.
//
// Every function here is a pure computation over its arguments; the
// package holds no state and is safe for concurrent use.
package gregorian

import "fmt"

// Public domain constants.
const (
	// DayMax is the largest valid day offset, corresponding to
	// 9999-12-31.
	DayMax = 3074323

	// UnixEpoch is the day offset of 1970-01-01. It is not used by the
	// conversions themselves; it is provided for callers working with
	// Unix timestamps.
	UnixEpoch = 141427
)

// Internal calendar cycle constants. The proleptic day count used
// during conversion has 1200-03-01 as day zero; dayOffset is the
// position of the public epoch 1582-10-15 on that count.
const (
	dayOffset = 139750

	qcDays = 146097 // days in an aligned quad-century (400 years)
	cDays  = 36524  // days in an aligned century
	qDays  = 1461   // days in an aligned quad-year (4 years)
	yDays  = 365    // days in a year, excluding any trailing leap day

	yLeapDays = 366

	qcCenturies   = 4  // centuries per quad-century
	cQuadYears    = 25 // quad-years per century
	qYears        = 4  // years per quad-year
	quadCentYears = 400
	centuryYears  = 100

	baseYear = 1200 // March-based year of proleptic day zero
	maxYear  = 9999

	monthCount  = 12
	monthOffset = 2 // months between January-based and March-based years

	leapMonthDays    = 29
	nonLeapMonthDays = 28
)

// Date is a Gregorian calendar date. Month and Day are one-based.
type Date struct {
	Year  int
	Month int
	Day   int
}

// String renders the date as YYYY-MM-DD with zero padding.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// OffsetToDate converts a day offset into the Gregorian date it falls
// on.
//
// The offset must be in [0, DayMax]; anything else is a caller bug and
// panics. Bad external input should be range-checked by the caller
// before it reaches this function.
func OffsetToDate(offset int) Date {
	if offset < 0 || offset > DayMax {
		panic(fmt.Sprintf("gregorian: day offset %d out of range", offset))
	}

	// Rebase so day zero is the proleptic 1200-03-01, then peel off
	// whole quad-centuries, centuries, quad-years, and years, carrying
	// the remainder of days down each step.
	offset += dayOffset

	qc := offset / qcDays
	offset %= qcDays

	c := offset / cDays
	offset %= cDays

	q := offset / qDays
	offset %= qDays

	y := offset / yDays
	d := offset % yDays

	// The century count divides out to 4 only for the single leap day
	// appended at the end of a quad-century. Fold it back into the last
	// day of the last year of the fourth century.
	if c == qcCenturies {
		c = qcCenturies - 1
		q = cQuadYears - 1
		y = qYears - 1
		d = yLeapDays - 1
	}

	// Likewise the year count divides out to 4 only for the leap day at
	// the end of a quad-year.
	if y == qYears {
		y = qYears - 1
		d = yLeapDays - 1
	}

	year := qc*quadCentYears + c*centuryYears + q*qYears + y + baseYear

	// Walk forward from March, consuming whole fixed-length months.
	// The variable-length month is last, so the walk stops there by
	// construction and never needs a leap-year branch.
	month := 0
	for d > 0 {
		ml := monthLength(month)
		if ml == 0 || d < ml {
			break
		}
		month++
		d -= ml
	}
	day := d + 1

	// Back from March-based to January-based month numbering; a wrap
	// past December lands in the next calendar year.
	month += monthOffset
	if month >= monthCount {
		month -= monthCount
		year++
	}

	return Date{Year: year, Month: month + 1, Day: day}
}

// DateToOffset converts a Gregorian date into its day offset.
//
// Unlike OffsetToDate, the arguments carry no precondition: this
// function validates as it converts and returns an error for any
// year/month/day combination that is not a real date in
// [1582-10-15, 9999-12-31]. No offset is produced on failure.
func DateToOffset(year, month, day int) (int, error) {
	if year <= baseYear || year > maxYear {
		return 0, fmt.Errorf("gregorian: year %d out of range", year)
	}
	if month < 1 || month > monthCount {
		return 0, fmt.Errorf("gregorian: month %d out of range", month)
	}
	if day < 1 {
		return 0, fmt.Errorf("gregorian: day %d out of range", day)
	}

	// Zero-base the day and shift to March-based year/month numbering,
	// the inverse of the exit transform in OffsetToDate.
	day--
	month = month - 1 - monthOffset
	if month < 0 {
		year--
		month += monthCount
	}

	ml := monthLength(month)
	if ml == 0 {
		// The variable month of a March-based year falls in the next
		// January-based year, which is the one leap status depends on.
		if isLeapYear(year + 1) {
			ml = leapMonthDays
		} else {
			ml = nonLeapMonthDays
		}
	}
	if day >= ml {
		return 0, fmt.Errorf("gregorian: day %d out of range for month", day+1)
	}

	// Encode the March-based year as quad-century/century/quad-year/
	// year counts and sum the whole-cycle day totals.
	year -= baseYear

	qc := year / quadCentYears
	year %= quadCentYears

	c := year / centuryYears
	year %= centuryYears

	q := year / qYears
	y := year % qYears

	offset := qc*qcDays + c*cDays + q*qDays + y*yDays

	// Days in the fixed months before the target month; the variable
	// month is always last in a March-based year so it never appears
	// here.
	for m := 0; m < month; m++ {
		offset += monthLength(m)
	}
	offset += day

	// Rebase from proleptic 1200-03-01 back to the public epoch.
	offset -= dayOffset

	if offset < 0 || offset > DayMax {
		return 0, fmt.Errorf("gregorian: date precedes the Gregorian epoch 1582-10-15")
	}
	return offset, nil
}

// IsValidDate reports whether the year/month/day combination is a real
// Gregorian date within the supported range.
func IsValidDate(year, month, day int) bool {
	_, err := DateToOffset(year, month, day)
	return err == nil
}
