// Package civil converts UTC instants to calendar coordinates in a
// fixed display timezone and provides exact day arithmetic over Julian
// day numbers.
package civil

import (
	"fmt"
	"time"
)

// Date is a calendar day in the display timezone, without time of day.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateTime is an instant expressed in the display timezone, rounded to
// the minute, together with the UTC offset that was in effect.
type DateTime struct {
	Date
	Hour          int
	Minute        int
	OffsetMinutes int
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Before reports whether d is earlier than o in calendar order.
func (d Date) Before(o Date) bool {
	return d.Julian() < o.Julian()
}

func (d Date) Equal(o Date) bool {
	return d == o
}

// AddDays returns the date n days after d (n may be negative).
func (d Date) AddDays(n int) Date {
	return FromJulian(d.Julian() + n)
}

// Clock converts between UTC instants and civil dates/times in one
// fixed timezone. All conversions go through the same offset
// resolution so forward and backward conversions stay consistent.
type Clock struct {
	loc *time.Location
}

// NewClock loads the IANA timezone with the given name.
func NewClock(name string) (*Clock, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("loading timezone %q: %w", name, err)
	}
	return &Clock{loc: loc}, nil
}

// FixedClock returns a Clock with a constant UTC offset. Intended for
// tests and for feeds that carry their own fixed-offset convention.
func FixedClock(name string, offsetMinutes int) *Clock {
	return &Clock{loc: time.FixedZone(name, offsetMinutes*60)}
}

// UTCClock returns a Clock pinned to UTC.
func UTCClock() *Clock {
	return &Clock{loc: time.UTC}
}

func (c *Clock) Location() *time.Location {
	return c.loc
}

// ToCivil converts a UTC instant to its civil representation.
func (c *Clock) ToCivil(t time.Time) DateTime {
	local := t.In(c.loc)
	_, offsetSeconds := local.Zone()
	return DateTime{
		Date:          Date{Year: local.Year(), Month: local.Month(), Day: local.Day()},
		Hour:          local.Hour(),
		Minute:        local.Minute(),
		OffsetMinutes: offsetSeconds / 60,
	}
}

// OffsetForDate returns the UTC offset in minutes in effect on the
// given civil date. The offset is sampled at local noon so that dates
// whose midnight sits on a DST transition still resolve to the offset
// that holds for the bulk of the day.
func (c *Clock) OffsetForDate(d Date) int {
	noon := time.Date(d.Year, d.Month, d.Day, 12, 0, 0, 0, c.loc)
	_, offsetSeconds := noon.Zone()
	return offsetSeconds / 60
}

// FromCivil converts a civil date and time of day back to a UTC
// instant, using the offset in effect at local noon of that date.
//
// A civil time inside a spring-forward gap (a wall-clock minute that
// never occurs) is mapped with the noon offset of that date, which
// lands one hour into the post-transition morning. Callers that need
// a different resolution must handle the gap themselves.
func (c *Clock) FromCivil(d Date, hour, minute int) time.Time {
	offset := c.OffsetForDate(d)
	zone := time.FixedZone("", offset*60)
	return time.Date(d.Year, d.Month, d.Day, hour, minute, 0, 0, zone).UTC()
}

// DayStart returns the UTC instant at which the civil day begins.
func (c *Clock) DayStart(d Date) time.Time {
	return c.FromCivil(d, 0, 0)
}

// DayEnd returns the exclusive UTC instant at which the civil day
// ends, i.e. the start of the following day.
func (c *Clock) DayEnd(d Date) time.Time {
	return c.FromCivil(d.AddDays(1), 0, 0)
}

// Today returns the current civil date in the clock's timezone.
func (c *Clock) Today() Date {
	return c.ToCivil(time.Now().UTC()).Date
}
