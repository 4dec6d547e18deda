package gregorian

import "fmt"

// Weekday is a one-based day of the week, Monday = 1 through
// Sunday = 7.
type Weekday int

const (
	Monday Weekday = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// firstMonday is the day offset of the first Monday on the Gregorian
// calendar. Offset zero, 1582-10-15, was a Friday.
const (
	firstMonday = 3
	weekLength  = 7
)

var weekdayNames = [weekLength]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

var weekdayAbbrevs = [weekLength]string{
	"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun",
}

// String returns the full English name of the weekday. A receiver
// outside [Monday, Sunday] is a caller bug and panics.
func (w Weekday) String() string {
	if w < Monday || w > Sunday {
		panic(fmt.Sprintf("gregorian: weekday %d out of range", int(w)))
	}
	return weekdayNames[w-1]
}

// Abbrev returns the three-letter abbreviation of the weekday
// (Mon, Tue, ...). A receiver outside [Monday, Sunday] is a caller bug
// and panics.
func (w Weekday) Abbrev() string {
	if w < Monday || w > Sunday {
		panic(fmt.Sprintf("gregorian: weekday %d out of range", int(w)))
	}
	return weekdayAbbrevs[w-1]
}

// WeekdayOf returns the day of the week the given day offset falls on.
//
// The offset must be in [0, DayMax]; anything else is a caller bug and
// panics.
func WeekdayOf(offset int) Weekday {
	if offset < 0 || offset > DayMax {
		panic(fmt.Sprintf("gregorian: day offset %d out of range", offset))
	}

	// Offsets before the first Monday roll forward a week so the
	// subtraction below never takes the modulo of a negative number.
	if offset < firstMonday {
		offset += weekLength
	}
	return Weekday((offset-firstMonday)%weekLength + 1)
}
