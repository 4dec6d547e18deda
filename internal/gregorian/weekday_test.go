package gregorian

import "testing"

func TestWeekdayOf_KnownDays(t *testing.T) {
	tests := []struct {
		offset int
		want   Weekday
	}{
		{0, Friday}, // 1582-10-15
		{1, Saturday},
		{2, Sunday},
		{3, Monday}, // first full Monday-aligned week begins here
		{4, Tuesday},
		{141427, Thursday}, // 1970-01-01
		{DayMax, Friday},   // 9999-12-31
	}

	for _, tt := range tests {
		if got := WeekdayOf(tt.offset); got != tt.want {
			t.Errorf("WeekdayOf(%d) = %v, want %v", tt.offset, got, tt.want)
		}
	}
}

// TestWeekdayOf_Periodic checks that the weekday repeats every seven
// days across the whole domain.
func TestWeekdayOf_Periodic(t *testing.T) {
	for offset := 0; offset+7 <= DayMax; offset += 7001 {
		if a, b := WeekdayOf(offset), WeekdayOf(offset+7); a != b {
			t.Fatalf("WeekdayOf(%d) = %v, WeekdayOf(%d) = %v", offset, a, offset+7, b)
		}
	}
}

func TestWeekday_Names(t *testing.T) {
	tests := []struct {
		day    Weekday
		name   string
		abbrev string
	}{
		{Monday, "Monday", "Mon"},
		{Tuesday, "Tuesday", "Tue"},
		{Wednesday, "Wednesday", "Wed"},
		{Thursday, "Thursday", "Thu"},
		{Friday, "Friday", "Fri"},
		{Saturday, "Saturday", "Sat"},
		{Sunday, "Sunday", "Sun"},
	}

	for _, tt := range tests {
		if got := tt.day.String(); got != tt.name {
			t.Errorf("Weekday(%d).String() = %q, want %q", int(tt.day), got, tt.name)
		}
		if got := tt.day.Abbrev(); got != tt.abbrev {
			t.Errorf("Weekday(%d).Abbrev() = %q, want %q", int(tt.day), got, tt.abbrev)
		}
	}
}

func TestWeekdayOf_PanicsOutOfRange(t *testing.T) {
	for _, offset := range []int{-1, DayMax + 1} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("WeekdayOf(%d) did not panic", offset)
				}
			}()
			WeekdayOf(offset)
		}()
	}
}

func TestWeekday_StringPanicsOutOfRange(t *testing.T) {
	for _, w := range []Weekday{0, 8} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Weekday(%d).String() did not panic", int(w))
				}
			}()
			_ = w.String()
		}()
	}
}
