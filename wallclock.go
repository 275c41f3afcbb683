// Package wallclock provides a simple value type for representing time as one
// reads it off a clock on the wall, with no concept of date or time zone.
//
// Making a wall clock time:
//
//	t, err := wallclock.New(15, 0, 0)
//
// For statically-known readings, use MustNew or MustParse to get a syntax
// resembling a literal:
//
//	t := wallclock.MustParse("15:00:00")
package wallclock

import (
	"fmt"
	"time"
)

const secondsPerDay = 24 * 60 * 60

// Time, a reading of a wall clock: hour, minute and second, independent of
// date or time zone. The zero value is midnight.
//
// Time is a small immutable value; methods that change the reading return a
// new value, so it can be freely copied and shared across goroutines without
// coordination.
//
// This type implements sql.Scanner and driver.Valuer, and thus can be safely
// used in GORM for TIME columns just like time.Time. It also implements
// json/encoding Marshaler and Unmarshaler to support json marshalling (in
// forms of 'HH:MM:SS' text).
type Time struct {
	sec int32 // seconds elapsed since midnight, always within [0, 86400)
}

// RangeError is returned when a value passed to a constructor is too high or
// too low for a wall clock.
type RangeError struct {
	Field string
	Value int
	Min   int
	Max   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("wallclock: %s %d out of range [%d, %d]", e.Field, e.Value, e.Min, e.Max)
}

// ParseError is returned when text cannot be parsed as a wall clock time.
// Field identifies the offending part: "format", "hour", "minute" or "second".
type ParseError struct {
	Input  string
	Field  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("wallclock: cannot parse '%s': %s %s", e.Input, e.Field, e.Reason)
}

// New returns a wall clock time set to the provided hour, minute and second.
//
// Returns *RangeError if any value is too high for a wall clock (hour > 23,
// minute > 59, second > 59). Wall clocks don't know about leap seconds.
func New(hour int, minute int, second int) (Time, error) {
	if hour < 0 || hour > 23 {
		return Time{}, &RangeError{Field: "hour", Value: hour, Min: 0, Max: 23}
	}
	if minute < 0 || minute > 59 {
		return Time{}, &RangeError{Field: "minute", Value: minute, Min: 0, Max: 59}
	}
	if second < 0 || second > 59 {
		return Time{}, &RangeError{Field: "second", Value: second, Min: 0, Max: 59}
	}
	return Time{sec: int32(hour*3600 + minute*60 + second)}, nil
}

// MustNew is like New but panics on out-of-range values. Use for
// statically-known readings, e.g. MustNew(15, 0, 0).
func MustNew(hour int, minute int, second int) Time {
	t, err := New(hour, minute, second)
	if err != nil {
		panic(err)
	}
	return t
}

// FromMidnightOffset returns the wall clock time at the given number of
// seconds elapsed since midnight. Returns *RangeError if seconds is not
// within [0, 86400).
func FromMidnightOffset(seconds int) (Time, error) {
	if seconds < 0 || seconds >= secondsPerDay {
		return Time{}, &RangeError{Field: "offset", Value: seconds, Min: 0, Max: secondsPerDay - 1}
	}
	return Time{sec: int32(seconds)}, nil
}

// FromTime reads the wall clock from a time.Time, discarding its date and
// time zone.
func FromTime(t time.Time) Time {
	h, m, s := t.Clock()
	return Time{sec: int32(h*3600 + m*60 + s)}
}

// ToTime casts the reading back to a time.Time on the zero date in UTC.
func (t Time) ToTime() time.Time {
	return time.Date(0, time.January, 1, t.Hour(), t.Minute(), t.Second(), 0, time.UTC)
}

// The number of hours since midnight.
func (t Time) Hour() int {
	return int(t.sec / 3600)
}

// The number of minutes since the last hour.
func (t Time) Minute() int {
	return int(t.sec % 3600 / 60)
}

// The number of seconds since the last minute.
func (t Time) Second() int {
	return int(t.sec % 60)
}

// The number of seconds elapsed since midnight.
func (t Time) MidnightOffset() int {
	return int(t.sec)
}

// Parse parses text in the fixed 'HH:MM:SS' form: two-digit zero-padded
// fields, colon separated, 24-hour clock. Anything else fails with
// *ParseError, including fractional seconds, AM/PM notation and omitted
// fields.
func Parse(s string) (Time, error) {
	if len(s) != 8 || s[2] != ':' || s[5] != ':' {
		return Time{}, &ParseError{Input: s, Field: "format", Reason: "must be HH:MM:SS"}
	}
	h, ok := twoDigits(s[0], s[1])
	if !ok {
		return Time{}, &ParseError{Input: s, Field: "hour", Reason: "is not numeric"}
	}
	m, ok := twoDigits(s[3], s[4])
	if !ok {
		return Time{}, &ParseError{Input: s, Field: "minute", Reason: "is not numeric"}
	}
	sec, ok := twoDigits(s[6], s[7])
	if !ok {
		return Time{}, &ParseError{Input: s, Field: "second", Reason: "is not numeric"}
	}
	if h > 23 {
		return Time{}, &ParseError{Input: s, Field: "hour", Reason: "out of range"}
	}
	if m > 59 {
		return Time{}, &ParseError{Input: s, Field: "minute", Reason: "out of range"}
	}
	if sec > 59 {
		return Time{}, &ParseError{Input: s, Field: "second", Reason: "out of range"}
	}
	return Time{sec: int32(h*3600 + m*60 + sec)}, nil
}

func twoDigits(a byte, b byte) (int, bool) {
	if a < '0' || a > '9' || b < '0' || b > '9' {
		return 0, false
	}
	return int(a-'0')*10 + int(b-'0'), true
}

// MustParse is like Parse but panics on invalid text. Use for
// statically-known readings, e.g. MustParse("15:00:00").
func MustParse(s string) Time {
	t, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return t
}

// String formats the reading as 'HH:MM:SS', the exact form accepted by Parse.
func (t Time) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour(), t.Minute(), t.Second())
}

// Compare returns -1, 0 or 1 depending on whether t reads earlier than, the
// same as, or later than u.
func (t Time) Compare(u Time) int {
	switch {
	case t.sec < u.sec:
		return -1
	case t.sec > u.sec:
		return 1
	}
	return 0
}

func (t Time) Before(u Time) bool {
	return t.sec < u.sec
}

func (t Time) After(u Time) bool {
	return t.sec > u.sec
}

func (t Time) Equal(u Time) bool {
	return t.sec == u.sec
}

// AddSeconds returns the reading n seconds later (or earlier when n is
// negative), wrapping around midnight. Adding a full day is identity; this
// never fails.
func (t Time) AddSeconds(n int) Time {
	off := (int(t.sec) + n%secondsPerDay + secondsPerDay) % secondsPerDay
	return Time{sec: int32(off)}
}

// Add returns the reading shifted by d, truncated to whole seconds, wrapping
// around midnight.
func (t Time) Add(d time.Duration) Time {
	return t.AddSeconds(int(d / time.Second))
}

// Sub returns the signed clock difference t - u, between -24h and 24h
// exclusive.
func (t Time) Sub(u Time) time.Duration {
	return time.Duration(t.sec-u.sec) * time.Second
}
