package civil

import "time"

// Julian day numbers give a total order over civil dates, which makes
// day arithmetic (shifting, ranging, weekday computation) immune to
// month-length and leap-year special cases.

// Julian returns the Julian day number of d using the standard
// Gregorian conversion. Exact for all dates from year 1 onward.
func (d Date) Julian() int {
	a := (14 - int(d.Month)) / 12
	y := d.Year + 4800 - a
	m := int(d.Month) + 12*a - 3
	return d.Day + (153*m+2)/5 + 365*y + y/4 - y/100 + y/400 - 32045
}

// FromJulian is the exact inverse of Date.Julian.
func FromJulian(jdn int) Date {
	a := jdn + 32044
	b := (4*a + 3) / 146097
	c := a - 146097*b/4
	e := (4*c + 3) / 1461
	f := c - 1461*e/4
	m := (5*f + 2) / 153
	return Date{
		Year:  100*b + e - 4800 + m/10,
		Month: time.Month(m + 3 - 12*(m/10)),
		Day:   f - (153*m+2)/5 + 1,
	}
}

// WeekdayIndex returns the ISO weekday of d with Monday = 0 and
// Sunday = 6. Julian day number 0 fell on a Monday, so the plain
// modulus is all that is needed.
func (d Date) WeekdayIndex() int {
	return d.Julian() % 7
}

// DaysInMonth returns the number of days in the given civil month,
// probed as day zero of the following month.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
