// Package dates provides date arithmetic and formatting helpers for test
// fixtures: business-day math, random dates, and card expiry strings.
package dates

import (
	"fmt"
	"math/rand"
	"time"
)

// FormatISO renders a time as an ISO 8601 calendar date (YYYY-MM-DD).
func FormatISO(t time.Time) string {
	return t.Format("2006-01-02")
}

// StartOfDay returns midnight of t's calendar day in t's location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last nanosecond of t's calendar day.
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// IsWeekend reports whether t falls on Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// AddBusinessDays advances t by n weekdays, skipping Saturdays and
// Sundays. Negative n moves backwards.
func AddBusinessDays(t time.Time, n int) time.Time {
	step := 1
	if n < 0 {
		step = -1
		n = -n
	}
	for n > 0 {
		t = t.AddDate(0, 0, step)
		if !IsWeekend(t) {
			n--
		}
	}
	return t
}

// RandomBetween returns a uniformly random instant in [from, to]. Swapped
// bounds are corrected; equal bounds return that instant.
func RandomBetween(from, to time.Time) time.Time {
	if to.Before(from) {
		from, to = to, from
	}
	span := to.Sub(from)
	if span == 0 {
		return from
	}
	return from.Add(time.Duration(rand.Int63n(int64(span) + 1)))
}

// ExpiryYYMM returns a card expiry in YYMM for an issue date plus validity
// years.
func ExpiryYYMM(issue time.Time, years int) string {
	y := (issue.Year() + years) % 100
	return fmt.Sprintf("%02d%02d", y, int(issue.Month()))
}

// ExpiryCardFace returns a card expiry as MM/YY for display.
func ExpiryCardFace(issue time.Time, years int) string {
	y := (issue.Year() + years) % 100
	return fmt.Sprintf("%02d/%02d", int(issue.Month()), y)
}
