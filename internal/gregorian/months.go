package gregorian

import "fmt"

// monthLengths encodes the lengths of the twelve months in March-based
// order, so index 0 is March and index 11 is February. Putting the only
// variable-length month last means the day-accumulation loops never have
// to branch on leap years mid-sequence; February is only ever reached as
// the final month of a March-based year.
//
// A zero entry marks the variable-length month. Its real length (28 or
// 29) depends on the leap-year status of the following January-based
// year.
var monthLengths = [monthCount]int{
	31, 30, 31, 30, 31, 31, // Mar Apr May Jun Jul Aug
	30, 31, 30, 31, 31, 0, // Sep Oct Nov Dec Jan Feb
}

// monthLength returns the number of days in the month at the given
// March-based index, or zero if the month is variable length.
//
// The index must be in [0, 11]; anything else is a caller bug and
// panics.
func monthLength(i int) int {
	if i < 0 || i >= monthCount {
		panic(fmt.Sprintf("gregorian: month index %d out of range", i))
	}
	return monthLengths[i]
}

// isLeapYear reports whether the given January-based year is a leap
// year under Gregorian rules: divisible by 400, or divisible by 4 but
// not by 100.
//
// The year must be at least 1; anything else is a caller bug and
// panics.
func isLeapYear(y int) bool {
	if y < 1 {
		panic(fmt.Sprintf("gregorian: year %d out of range for leap-year check", y))
	}
	if y%400 == 0 {
		return true
	}
	return y%4 == 0 && y%100 != 0
}
