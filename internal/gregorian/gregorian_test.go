package gregorian

import "testing"

// Known (offset, date) pairs, anchored on the epoch, the Unix epoch,
// and the end of the supported range.
var knownDays = []struct {
	offset int
	date   Date
}{
	{0, Date{1582, 10, 15}},
	{1, Date{1582, 10, 16}},
	{77, Date{1582, 12, 31}},
	{78, Date{1583, 1, 1}},
	{141427, Date{1970, 1, 1}},
	{152383, Date{1999, 12, 31}},
	{152384, Date{2000, 1, 1}},
	{152443, Date{2000, 2, 29}},
	{152444, Date{2000, 3, 1}},
	{DayMax, Date{9999, 12, 31}},
}

func TestOffsetToDate_KnownDays(t *testing.T) {
	for _, tt := range knownDays {
		got := OffsetToDate(tt.offset)
		if got != tt.date {
			t.Errorf("OffsetToDate(%d) = %v, want %v", tt.offset, got, tt.date)
		}
	}
}

func TestDateToOffset_KnownDays(t *testing.T) {
	for _, tt := range knownDays {
		got, err := DateToOffset(tt.date.Year, tt.date.Month, tt.date.Day)
		if err != nil {
			t.Errorf("DateToOffset(%v) failed: %v", tt.date, err)
			continue
		}
		if got != tt.offset {
			t.Errorf("DateToOffset(%v) = %d, want %d", tt.date, got, tt.offset)
		}
	}
}

func TestDateToOffset_LeapDays(t *testing.T) {
	tests := []struct {
		year  int
		valid bool
	}{
		{1600, true},  // divisible by 400
		{1900, false}, // divisible by 100 but not 400
		{2000, true},
		{2023, false}, // ordinary non-leap year
		{2024, true},  // divisible by 4, not by 100
		{2100, false},
	}

	for _, tt := range tests {
		offset, err := DateToOffset(tt.year, 2, 29)
		if tt.valid {
			if err != nil {
				t.Errorf("DateToOffset(%d, 2, 29) failed: %v", tt.year, err)
				continue
			}
			// The day after a leap day is always March 1.
			if next := OffsetToDate(offset + 1); next != (Date{tt.year, 3, 1}) {
				t.Errorf("day after %d-02-29 = %v, want %d-03-01", tt.year, next, tt.year)
			}
		} else if err == nil {
			t.Errorf("DateToOffset(%d, 2, 29) = %d, want error", tt.year, offset)
		}
	}
}

func TestDateToOffset_Rejections(t *testing.T) {
	tests := []struct {
		name             string
		year, month, day int
	}{
		{"year at base", 1200, 6, 1},
		{"year below base", 1100, 6, 1},
		{"zero year", 0, 1, 1},
		{"negative year", -44, 3, 15},
		{"five-digit year", 10000, 1, 1},
		{"zero month", 2023, 0, 1},
		{"month too large", 2023, 13, 1},
		{"zero day", 2023, 6, 0},
		{"negative day", 2023, 6, -1},
		{"day past fixed month", 2023, 4, 31},
		{"day past long month", 2023, 1, 32},
		{"day past supported range", 9999, 12, 32},
		{"day before epoch", 1582, 10, 14},
		{"year before epoch", 1400, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offset, err := DateToOffset(tt.year, tt.month, tt.day)
			if err == nil {
				t.Errorf("DateToOffset(%d, %d, %d) = %d, want error",
					tt.year, tt.month, tt.day, offset)
			}
		})
	}
}

func TestIsValidDate(t *testing.T) {
	if !IsValidDate(2000, 2, 29) {
		t.Error("IsValidDate(2000, 2, 29) = false, want true")
	}
	if IsValidDate(1900, 2, 29) {
		t.Error("IsValidDate(1900, 2, 29) = true, want false")
	}
	if IsValidDate(1582, 10, 14) {
		t.Error("IsValidDate(1582, 10, 14) = true, want false")
	}
}

// TestRoundTrip_Offsets sweeps the whole offset domain with a stride
// coprime to every calendar cycle length, plus both endpoints.
func TestRoundTrip_Offsets(t *testing.T) {
	check := func(offset int) {
		d := OffsetToDate(offset)
		back, err := DateToOffset(d.Year, d.Month, d.Day)
		if err != nil {
			t.Fatalf("DateToOffset(OffsetToDate(%d) = %v) failed: %v", offset, d, err)
		}
		if back != offset {
			t.Fatalf("round trip of offset %d = %d (via %v)", offset, back, d)
		}
	}

	for offset := 0; offset <= DayMax; offset += 997 {
		check(offset)
	}
	check(DayMax)
}

// TestRoundTrip_LeapDayNeighborhoods exercises every day around the
// century and quad-century boundaries, where the decomposition's
// leap-day corrections apply.
func TestRoundTrip_LeapDayNeighborhoods(t *testing.T) {
	for _, year := range []int{1600, 1700, 1800, 1900, 2000, 2100, 2400} {
		start, err := DateToOffset(year, 2, 1)
		if err != nil {
			t.Fatalf("DateToOffset(%d, 2, 1) failed: %v", year, err)
		}
		// Through February into early March, covering the leap day
		// when present.
		for offset := start; offset < start+35; offset++ {
			d := OffsetToDate(offset)
			back, err := DateToOffset(d.Year, d.Month, d.Day)
			if err != nil {
				t.Fatalf("DateToOffset(%v) failed: %v", d, err)
			}
			if back != offset {
				t.Errorf("round trip of offset %d = %d (via %v)", offset, back, d)
			}
		}
	}
}

func TestRoundTrip_Dates(t *testing.T) {
	years := []int{1201, 1583, 1600, 1700, 1900, 1970, 2000, 2023, 2024, 9999}
	for _, year := range years {
		for month := 1; month <= 12; month++ {
			for day := 1; day <= 31; day++ {
				offset, err := DateToOffset(year, month, day)
				if err != nil {
					continue // not a real date, or before the epoch
				}
				want := Date{year, month, day}
				if got := OffsetToDate(offset); got != want {
					t.Errorf("OffsetToDate(DateToOffset(%v) = %d) = %v", want, offset, got)
				}
			}
		}
	}
}

// TestOffsetOrdering checks that increasing offsets produce
// chronologically increasing dates.
func TestOffsetOrdering(t *testing.T) {
	before := func(a, b Date) bool {
		if a.Year != b.Year {
			return a.Year < b.Year
		}
		if a.Month != b.Month {
			return a.Month < b.Month
		}
		return a.Day < b.Day
	}

	prev := OffsetToDate(0)
	for offset := 131; offset <= DayMax; offset += 131 {
		cur := OffsetToDate(offset)
		if !before(prev, cur) {
			t.Fatalf("OffsetToDate(%d) = %v not after %v", offset, cur, prev)
		}
		prev = cur
	}
}

func TestDate_String(t *testing.T) {
	tests := []struct {
		date Date
		want string
	}{
		{Date{1582, 10, 15}, "1582-10-15"},
		{Date{1970, 1, 1}, "1970-01-01"},
		{Date{9999, 12, 31}, "9999-12-31"},
	}
	for _, tt := range tests {
		if got := tt.date.String(); got != tt.want {
			t.Errorf("%#v.String() = %q, want %q", tt.date, got, tt.want)
		}
	}
}

func TestOffsetToDate_PanicsOutOfRange(t *testing.T) {
	for _, offset := range []int{-1, DayMax + 1} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("OffsetToDate(%d) did not panic", offset)
				}
			}()
			OffsetToDate(offset)
		}()
	}
}

func TestIsLeapYear(t *testing.T) {
	tests := []struct {
		year int
		want bool
	}{
		{1600, true},
		{1700, false},
		{1900, false},
		{2000, true},
		{2020, true},
		{2023, false},
	}
	for _, tt := range tests {
		if got := isLeapYear(tt.year); got != tt.want {
			t.Errorf("isLeapYear(%d) = %v, want %v", tt.year, got, tt.want)
		}
	}
}

func TestMonthLengths_SumToYear(t *testing.T) {
	sum := 0
	for i := 0; i < monthCount; i++ {
		sum += monthLength(i)
	}
	// Eleven fixed months plus a 28-day February make a common year.
	if sum+nonLeapMonthDays != yDays {
		t.Errorf("fixed month lengths sum to %d, want %d", sum, yDays-nonLeapMonthDays)
	}
	if monthLength(monthCount-1) != 0 {
		t.Error("last March-based month should be variable length")
	}
}

func TestMonthLength_PanicsOutOfRange(t *testing.T) {
	for _, i := range []int{-1, monthCount} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("monthLength(%d) did not panic", i)
				}
			}()
			monthLength(i)
		}()
	}
}
