// Package parser turns the short date expressions accepted by the
// goto prompt and the --date flag into civil dates.
package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/JulioGEP/ERP-GEP-sub004/internal/civil"
)

type DateParser struct {
	today civil.Date
}

func NewDateParser(today civil.Date) *DateParser {
	return &DateParser{today: today}
}

// SetToday overrides the reference date, for tests.
func (p *DateParser) SetToday(today civil.Date) {
	p.today = today
}

var (
	isoRe   = regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})$`)
	dmyRe   = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)
	dmRe    = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})$`)
	plusRe  = regexp.MustCompile(`^([+-]\d+)d?$`)
	weekRe  = regexp.MustCompile(`^([+-]\d+)w$`)
	monthRe = regexp.MustCompile(`^([+-]\d+)m$`)
)

// Parse accepts relative dates (today, tomorrow, yesterday, +3, -2w,
// +1m), ISO dates (2024-03-10) and Spanish-order dd/mm[/yyyy] forms.
func (p *DateParser) Parse(input string) (civil.Date, error) {
	s := strings.ToLower(strings.TrimSpace(input))
	if s == "" {
		return civil.Date{}, fmt.Errorf("empty date")
	}

	switch s {
	case "today", "hoy":
		return p.today, nil
	case "tomorrow", "mañana", "manana":
		return p.today.AddDays(1), nil
	case "yesterday", "ayer":
		return p.today.AddDays(-1), nil
	}

	if m := isoRe.FindStringSubmatch(s); m != nil {
		return p.date(m[3], m[2], m[1])
	}
	if m := dmyRe.FindStringSubmatch(s); m != nil {
		return p.date(m[1], m[2], m[3])
	}
	if m := dmRe.FindStringSubmatch(s); m != nil {
		return p.date(m[1], m[2], strconv.Itoa(p.today.Year))
	}
	if m := plusRe.FindStringSubmatch(s); m != nil {
		n, _ := strconv.Atoi(m[1])
		return p.today.AddDays(n), nil
	}
	if m := weekRe.FindStringSubmatch(s); m != nil {
		n, _ := strconv.Atoi(m[1])
		return p.today.AddDays(7 * n), nil
	}
	if m := monthRe.FindStringSubmatch(s); m != nil {
		n, _ := strconv.Atoi(m[1])
		d := p.today
		for ; n > 0; n-- {
			d = nextMonth(d, 1)
		}
		for ; n < 0; n++ {
			d = nextMonth(d, -1)
		}
		return d, nil
	}

	return civil.Date{}, fmt.Errorf("unrecognized date %q", input)
}

func (p *DateParser) date(dayStr, monthStr, yearStr string) (civil.Date, error) {
	day, _ := strconv.Atoi(dayStr)
	month, _ := strconv.Atoi(monthStr)
	year, _ := strconv.Atoi(yearStr)

	if month < 1 || month > 12 {
		return civil.Date{}, fmt.Errorf("invalid month %d", month)
	}
	if day < 1 || day > civil.DaysInMonth(year, time.Month(month)) {
		return civil.Date{}, fmt.Errorf("invalid day %d for %d-%02d", day, year, month)
	}
	return civil.Date{Year: year, Month: time.Month(month), Day: day}, nil
}

func nextMonth(d civil.Date, direction int) civil.Date {
	year, month := d.Year, int(d.Month)+direction
	if month < 1 {
		month = 12
		year--
	}
	if month > 12 {
		month = 1
		year++
	}
	day := d.Day
	if max := civil.DaysInMonth(year, time.Month(month)); day > max {
		day = max
	}
	return civil.Date{Year: year, Month: time.Month(month), Day: day}
}
