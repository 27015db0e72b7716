package event

import (
	"fmt"
	"strings"
	"time"
)

// Feed exports are not consistent about offsets: some instants carry
// an explicit zone, some are bare. Bare instants are UTC.
var instantLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// ParseInstant parses an ISO-8601 instant, assuming UTC when the
// string carries no offset. The result is always in UTC.
func ParseInstant(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty instant")
	}

	for _, layout := range instantLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unparsable instant %q", s)
}
