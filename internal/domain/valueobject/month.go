// Package valueobject defines immutable value types used across the domain.
package valueobject

import (
	"fmt"
	"regexp"
	"time"
)

// monthPattern is the only accepted wire format for a month.
var monthPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)

// Month is a calendar month in a specific year, anchored to the first day of
// the month at midnight UTC.
type Month time.Time

// NewMonth returns the Month for the given year and month.
func NewMonth(year int, month time.Month) Month {
	return Month(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC))
}

// ParseMonth parses a "YYYY-MM" string and returns the Month it represents.
// Anything that does not match ^\d{4}-\d{2}$, or names a month outside
// 01-12, is rejected.
func ParseMonth(s string) (Month, error) {
	if !monthPattern.MatchString(s) {
		return Month{}, fmt.Errorf("invalid month %q: expected format YYYY-MM", s)
	}

	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Month{}, fmt.Errorf("invalid month %q: %w", s, err)
	}

	return NewMonth(t.Year(), t.Month()), nil
}

// String returns the month formatted as YYYY-MM.
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", time.Time(m).Year(), time.Time(m).Month())
}

// Start returns the first instant of the month (inclusive range bound).
func (m Month) Start() time.Time {
	return time.Time(m)
}

// Next returns the following month. December rolls over to January of the
// next year through calendar arithmetic.
func (m Month) Next() Month {
	return Month(time.Time(m).AddDate(0, 1, 0))
}

// End returns the first instant of the following month. Together with Start
// this forms the half-open interval [Start, End) covering the month.
func (m Month) End() time.Time {
	return time.Time(m.Next())
}

// Contains reports whether the instant falls inside the month's half-open
// interval.
func (m Month) Contains(t time.Time) bool {
	return !t.Before(m.Start()) && t.Before(m.End())
}

// IsZero reports whether the month is the zero value.
func (m Month) IsZero() bool {
	return time.Time(m).IsZero()
}
