package helpers

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the form and display format for calendar dates
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD form value
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, fmt.Errorf("time data %q does not match format YYYY-MM-DD", value)
	}
	return t, nil
}

// ParseInt parses an integer form value, naming the field on failure
func ParseInt(field, value string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("invalid literal for %s: %q", field, value)
	}
	return n, nil
}

// NullString returns nil for blank input so optional columns store NULL
func NullString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// Deref returns the pointed-to string or ""
func Deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
