// Package main implements the grcal command, a thin front end over the
// conversion engine.
//
// Usage:
//
//	grcal OFFSET           print the date and weekday of a day offset
//	grcal YEAR MONTH DAY   print the day offset of a date
//
// Day offset zero is 1582-10-15. Successful results go to standard
// output; errors go to standard error with a non-zero exit status.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/mwaldron/grcal/internal/gregorian"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "grcal: %v\n", err)
		os.Exit(1)
	}
}

// run dispatches on argument count: one argument converts an offset to
// a date, three convert a date to an offset.
func run(args []string, out io.Writer) error {
	switch len(args) {
	case 1:
		return printDate(out, args[0])
	case 3:
		return printOffset(out, args[0], args[1], args[2])
	default:
		return errors.New("usage: grcal OFFSET | grcal YEAR MONTH DAY")
	}
}

func printDate(out io.Writer, arg string) error {
	offset, err := parseInt(arg)
	if err != nil {
		return fmt.Errorf("could not parse offset %q", arg)
	}
	if offset < 0 || offset > gregorian.DayMax {
		return fmt.Errorf("day offset %d out of range [0, %d]", offset, gregorian.DayMax)
	}

	d := gregorian.OffsetToDate(offset)
	wd := gregorian.WeekdayOf(offset)

	_, err = fmt.Fprintf(out, "%04d-%02d-%02d %s\n", d.Year, d.Month, d.Day, wd.Abbrev())
	return err
}

func printOffset(out io.Writer, yearArg, monthArg, dayArg string) error {
	year, err := parseInt(yearArg)
	if err != nil {
		return fmt.Errorf("could not parse year %q", yearArg)
	}
	month, err := parseInt(monthArg)
	if err != nil {
		return fmt.Errorf("could not parse month %q", monthArg)
	}
	day, err := parseInt(dayArg)
	if err != nil {
		return fmt.Errorf("could not parse day %q", dayArg)
	}

	// Sanity pre-checks before handing the values to the engine.
	if year < 0 || year > 9999 {
		return fmt.Errorf("year %d out of range", year)
	}
	if month < 1 || month > 12 {
		return fmt.Errorf("month %d out of range", month)
	}
	if day < 1 || day > 31 {
		return fmt.Errorf("day %d out of range", day)
	}

	offset, err := gregorian.DateToOffset(year, month, day)
	if err != nil {
		return fmt.Errorf("%04d-%02d-%02d is not a valid date", year, month, day)
	}

	_, err = fmt.Fprintf(out, "%d\n", offset)
	return err
}

// parseInt parses a signed decimal integer, rejecting values that do
// not fit in 32 bits.
func parseInt(s string) (int, error) {
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return int(v), nil
}
