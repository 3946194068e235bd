// Package parser parses the dates typed at the fitjournal prompts and flags.
package parser

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"

	"github.com/fitjournal/fitjournal/internal/model"
)

// dateRegex matches a four-digit year followed by a one or two digit month and day.
var dateRegex = regexp.MustCompile(`^(\d{4})-(1[0-2]|0[1-9]|[1-9])-(3[01]|[12][0-9]|0[1-9]|[1-9])$`)

// ParseDate parses a calendar date in YYYY-MM-DD form.
// Month and day may omit their leading zero; surrounding whitespace is rejected.
// The returned time is midnight in the local time zone.
func ParseDate(input string) (time.Time, error) {
	match := dateRegex.FindStringSubmatch(input)
	if match == nil {
		return time.Time{}, NewDateError(input, "expected YYYY-MM-DD")
	}

	year, _ := strconv.Atoi(match[1])
	month, _ := strconv.Atoi(match[2])
	day, _ := strconv.Atoi(match[3])

	if year < 1 {
		return time.Time{}, NewDateError(input, "year out of range")
	}

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)
	// time.Date normalizes overflow (Feb 30 -> Mar 1), so compare back.
	if t.Day() != day || int(t.Month()) != month {
		return time.Time{}, NewDateError(input, "day is out of range for month")
	}

	return t, nil
}

// IsValidDate reports whether input is an acceptable YYYY-MM-DD date.
func IsValidDate(input string) bool {
	_, err := ParseDate(input)
	return err == nil
}

// ParseNaturalDate parses a calendar date or a natural language expression
// such as "yesterday" or "3 days ago", relative to now.
// The result is truncated to midnight local time.
func ParseNaturalDate(input string, now time.Time) (time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" || strings.EqualFold(input, "today") {
		return startOfDay(now), nil
	}

	if t, err := ParseDate(input); err == nil {
		return t, nil
	}

	cfg := &dateparser.Configuration{
		CurrentTime: now,
	}

	result, err := dateparser.Parse(cfg, input)
	if err != nil || result.Time.IsZero() {
		return time.Time{}, NewNaturalDateError(input)
	}

	return startOfDay(result.Time), nil
}

// FormatDate formats a date the way entries store it.
func FormatDate(t time.Time) string {
	return t.Format(model.DateLayout)
}

func startOfDay(t time.Time) time.Time {
	t = t.Local()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}
