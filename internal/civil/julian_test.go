package civil

import (
	"testing"
	"time"
)

func TestJulianRoundTrip(t *testing.T) {
	// Walk every day of a mixed bag of years, including leap years,
	// century non-leaps, and the edges of the supported range.
	years := []int{1, 100, 400, 1582, 1600, 1900, 1970, 2000, 2023, 2024, 2025, 2100, 9999}

	for _, year := range years {
		for month := time.January; month <= time.December; month++ {
			for day := 1; day <= DaysInMonth(year, month); day++ {
				d := Date{Year: year, Month: month, Day: day}
				got := FromJulian(d.Julian())
				if got != d {
					t.Fatalf("round trip failed: %v -> %d -> %v", d, d.Julian(), got)
				}
			}
		}
	}
}

func TestJulianMonotonic(t *testing.T) {
	start := Date{Year: 1999, Month: time.December, Day: 1}
	prev := start.Julian()

	d := start
	for i := 0; i < 400; i++ {
		d = d.AddDays(1)
		if d.Julian() != prev+1 {
			t.Fatalf("julian not consecutive at %v: got %d, want %d", d, d.Julian(), prev+1)
		}
		prev = d.Julian()
	}
}

func TestJulianKnownEpochs(t *testing.T) {
	tests := []struct {
		date Date
		jdn  int
	}{
		{Date{1970, time.January, 1}, 2440588},
		{Date{2000, time.January, 1}, 2451545},
		{Date{2024, time.February, 29}, 2460370},
	}

	for _, tt := range tests {
		if got := tt.date.Julian(); got != tt.jdn {
			t.Errorf("Julian(%v) = %d, want %d", tt.date, got, tt.jdn)
		}
	}
}

func TestWeekdayIndex(t *testing.T) {
	tests := []struct {
		date Date
		want int
	}{
		{Date{2024, time.March, 4}, 0},   // Monday
		{Date{2024, time.March, 10}, 6},  // Sunday
		{Date{1970, time.January, 1}, 3}, // Thursday
		{Date{2000, time.January, 1}, 5}, // Saturday
	}

	for _, tt := range tests {
		if got := tt.date.WeekdayIndex(); got != tt.want {
			t.Errorf("WeekdayIndex(%v) = %d, want %d", tt.date, got, tt.want)
		}
	}
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2024, time.February, 29},
		{2025, time.February, 28},
		{2000, time.February, 29},
		{1900, time.February, 28},
		{2024, time.April, 30},
		{2024, time.December, 31},
	}

	for _, tt := range tests {
		if got := DaysInMonth(tt.year, tt.month); got != tt.want {
			t.Errorf("DaysInMonth(%d, %v) = %d, want %d", tt.year, tt.month, got, tt.want)
		}
	}
}

func TestAddDaysAcrossBoundaries(t *testing.T) {
	tests := []struct {
		start Date
		n     int
		want  Date
	}{
		{Date{2024, time.February, 28}, 1, Date{2024, time.February, 29}},
		{Date{2024, time.February, 29}, 1, Date{2024, time.March, 1}},
		{Date{2024, time.December, 31}, 1, Date{2025, time.January, 1}},
		{Date{2024, time.March, 1}, -1, Date{2024, time.February, 29}},
		{Date{2024, time.January, 15}, 366, Date{2025, time.January, 15}},
	}

	for _, tt := range tests {
		if got := tt.start.AddDays(tt.n); got != tt.want {
			t.Errorf("%v.AddDays(%d) = %v, want %v", tt.start, tt.n, got, tt.want)
		}
	}
}
