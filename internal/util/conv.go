package util

import (
	"strconv"
	"time"
)

// MustParseUint converts a string to an unsigned integer, returning 0 when
// parsing fails.
func MustParseUint(s string) uint {
	id, _ := strconv.ParseUint(s, 10, 32)
	return uint(id)
}

// ParseDate parses an ISO calendar date ("YYYY-MM-DD").
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateFormat, s)
}

// ParseDateRange parses optional startDate/endDate query values. Both must
// be present for the range to apply; anything else leaves both nil.
func ParseDateRange(startStr, endStr string) (start, end *time.Time) {
	if startStr == "" || endStr == "" {
		return nil, nil
	}
	s, err := ParseDate(startStr)
	if err != nil {
		return nil, nil
	}
	e, err := ParseDate(endStr)
	if err != nil {
		return nil, nil
	}
	return &s, &e
}
