// Package calendar implements local calendar-day arithmetic for the planner.
//
// A Day carries only year, month and day-of-month. It never converts
// through UTC, so a date key produced from a wall clock reading is the same
// day the owner sees on that clock, with no shift near midnight.
package calendar

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const keyLayout = "2006-01-02"

var ErrMalformedKey = errors.New("calendar: malformed date key")

// ParseError reports a date key that is not a zero-padded, real
// YYYY-MM-DD calendar date.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("calendar: cannot parse date key %q: %s", e.Input, e.Reason)
}

func (e *ParseError) Is(target error) bool {
	return target == ErrMalformedKey
}

// Day is a calendar day without time of day or zone.
// The zero value is not a valid day; use IsZero to detect it.
type Day struct {
	// midnight UTC is only an arithmetic carrier; it is never exposed as an instant.
	t time.Time
}

// NewDay builds a day from components, normalizing overflow the same way
// time.Date does (Feb 30 becomes Mar 2).
func NewDay(year int, month time.Month, day int) Day {
	return Day{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DayOf returns the calendar day of t as read in t's own location.
func DayOf(t time.Time) Day {
	y, m, d := t.Date()
	return NewDay(y, m, d)
}

// Today returns the local calendar day of now.
func Today(now time.Time) Day {
	return DayOf(now.Local())
}

// ResolveDay reads ref as a date key or as one of today, tomorrow and
// yesterday counted from today. Blank means today.
func ResolveDay(ref string, today Day) (Day, error) {
	switch strings.ToLower(strings.TrimSpace(ref)) {
	case "", "today":
		return today, nil
	case "tomorrow":
		return today.AddDays(1), nil
	case "yesterday":
		return today.AddDays(-1), nil
	}
	return ParseDateKey(strings.TrimSpace(ref))
}

// IsDayRef reports whether ResolveDay accepts ref without knowing today.
func IsDayRef(ref string) bool {
	_, err := ResolveDay(ref, DayOf(time.Now()))
	return err == nil
}

func (d Day) IsZero() bool { return d.t.IsZero() }

func (d Day) Year() int { return d.t.Year() }

func (d Day) Month() time.Month { return d.t.Month() }

func (d Day) DayOfMonth() int { return d.t.Day() }

func (d Day) Weekday() time.Weekday { return d.t.Weekday() }

func (d Day) AddDays(n int) Day {
	return Day{t: d.t.AddDate(0, 0, n)}
}

// DaysUntil returns the signed number of days from d to other.
func (d Day) DaysUntil(other Day) int {
	return int(other.t.Sub(d.t).Hours() / 24)
}

func (d Day) Before(other Day) bool { return d.t.Before(other.t) }

func (d Day) After(other Day) bool { return d.t.After(other.t) }

func (d Day) Equal(other Day) bool { return d.t.Equal(other.t) }

// Time returns local midnight of d in loc.
func (d Day) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return time.Date(d.Year(), d.Month(), d.DayOfMonth(), 0, 0, 0, 0, loc)
}

func (d Day) Key() string {
	return DateKey(d)
}

func (d Day) String() string {
	return d.Key()
}

// Label renders d as "Mon, Feb 16".
func (d Day) Label() string {
	return fmt.Sprintf("%s, %s %d", WeekdayName(d.Weekday()), MonthName(d.Month()), d.DayOfMonth())
}

func (d Day) MarshalText() ([]byte, error) {
	return []byte(d.Key()), nil
}

func (d *Day) UnmarshalText(text []byte) error {
	parsed, err := ParseDateKey(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// DateKey renders d as "YYYY-MM-DD" from its own components.
func DateKey(d Day) string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year(), int(d.Month()), d.DayOfMonth())
}

// ParseDateKey parses a zero-padded "YYYY-MM-DD" key. The result
// round-trips: DateKey(ParseDateKey(k)) == k for every accepted k.
func ParseDateKey(key string) (Day, error) {
	if len(key) != len(keyLayout) {
		return Day{}, &ParseError{Input: key, Reason: "expected YYYY-MM-DD"}
	}
	t, err := time.Parse(keyLayout, key)
	if err != nil {
		return Day{}, &ParseError{Input: key, Reason: err.Error()}
	}
	d := DayOf(t)
	if d.Key() != key {
		return Day{}, &ParseError{Input: key, Reason: "not a canonical calendar date"}
	}
	return d, nil
}

// MustParseDateKey is for package-level constants and tests.
func MustParseDateKey(key string) Day {
	d, err := ParseDateKey(key)
	if err != nil {
		panic(err)
	}
	return d
}

// IsSameLocalDay compares year, month and day as each value reads on its
// own clock.
func IsSameLocalDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
