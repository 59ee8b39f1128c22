package timeutil

import (
	"fmt"
	"time"
)

const (
	// DateLayout is the dashed calendar date accepted from clients (YYYY-MM-DD).
	DateLayout = "2006-01-02"
	// CompactDateLayout is the scoreboard date format (YYYYMMDD).
	CompactDateLayout = "20060102"
)

// ParseDate parses a date in either YYYY-MM-DD or YYYYMMDD form.
func ParseDate(value string) (time.Time, error) {
	if t, err := time.Parse(DateLayout, value); err == nil {
		return t, nil
	}
	t, err := time.Parse(CompactDateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD or YYYYMMDD)", value)
	}
	return t, nil
}

// CompactDate rewrites an accepted date as YYYYMMDD.
func CompactDate(value string) (string, error) {
	t, err := ParseDate(value)
	if err != nil {
		return "", err
	}
	return t.Format(CompactDateLayout), nil
}
