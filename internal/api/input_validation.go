package api

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

var errInvalidID = errors.New("invalid id")
var errInvalidDate = errors.New("invalid date")

// parseID accepts the positive integer identifiers every record is
// keyed by.
func parseID(raw string) (uint, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, errInvalidID
	}
	parsed, err := strconv.ParseUint(trimmed, 10, 64)
	if err != nil || parsed == 0 {
		return 0, errInvalidID
	}
	return uint(parsed), nil
}

var dateTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// parseDateTime coerces the date/date-time strings the forms and the
// stats query send. Bare dates resolve to local midnight of the
// reference timezone.
func parseDateTime(raw string, location *time.Location) (time.Time, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return time.Time{}, errInvalidDate
	}
	for _, layout := range dateTimeLayouts {
		if parsed, err := time.ParseInLocation(layout, trimmed, location); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, errInvalidDate
}

func parseOptionalID(raw string) *uint {
	parsed, err := parseID(raw)
	if err != nil {
		return nil
	}
	return &parsed
}

func parseAmount(raw string) (int, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, errors.New("amount is required")
	}
	amount, err := strconv.Atoi(trimmed)
	if err != nil || amount < 0 {
		return 0, errors.New("amount must be a non-negative number")
	}
	return amount, nil
}
