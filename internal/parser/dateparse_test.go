package parser

import (
	"testing"
	"time"

	"github.com/JulioGEP/ERP-GEP-sub004/internal/civil"
)

func TestParseDates(t *testing.T) {
	today := civil.Date{Year: 2024, Month: time.March, Day: 10}
	p := NewDateParser(today)

	tests := []struct {
		input string
		want  civil.Date
		err   bool
	}{
		{input: "today", want: today},
		{input: "hoy", want: today},
		{input: "tomorrow", want: civil.Date{Year: 2024, Month: time.March, Day: 11}},
		{input: "mañana", want: civil.Date{Year: 2024, Month: time.March, Day: 11}},
		{input: "yesterday", want: civil.Date{Year: 2024, Month: time.March, Day: 9}},
		{input: "2024-03-01", want: civil.Date{Year: 2024, Month: time.March, Day: 1}},
		{input: "2024-2-29", want: civil.Date{Year: 2024, Month: time.February, Day: 29}},
		{input: "15/04/2024", want: civil.Date{Year: 2024, Month: time.April, Day: 15}},
		{input: "15/04", want: civil.Date{Year: 2024, Month: time.April, Day: 15}},
		{input: "+3", want: civil.Date{Year: 2024, Month: time.March, Day: 13}},
		{input: "-1", want: civil.Date{Year: 2024, Month: time.March, Day: 9}},
		{input: "+2w", want: civil.Date{Year: 2024, Month: time.March, Day: 24}},
		{input: "-1m", want: civil.Date{Year: 2024, Month: time.February, Day: 10}},
		{input: "", err: true},
		{input: "31/02/2024", err: true},
		{input: "2024-13-01", err: true},
		{input: "soon", err: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := p.Parse(tt.input)
			if tt.err {
				if err == nil {
					t.Fatalf("expected error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseMonthClamping(t *testing.T) {
	p := NewDateParser(civil.Date{Year: 2024, Month: time.January, Day: 31})

	got, err := p.Parse("+1m")
	if err != nil {
		t.Fatal(err)
	}
	if want := (civil.Date{Year: 2024, Month: time.February, Day: 29}); got != want {
		t.Errorf("+1m from Jan 31 = %v, want %v", got, want)
	}
}
