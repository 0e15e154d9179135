// Package valueobject contains domain value objects for the ledger.
package valueobject

import "time"

// DateLayout is the calendar-day format used across the API.
const DateLayout = "2006-01-02"

// Window is a half-open time range [Start, End).
type Window struct {
	Start time.Time
	End   time.Time
}

// MonthOf returns the calendar month containing ref, evaluated in ref's location:
// [first day of the month 00:00, first day of next month 00:00).
func MonthOf(ref time.Time) Window {
	start := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	return Window{Start: start, End: start.AddDate(0, 1, 0)}
}

// DaysInMonth returns the number of days in the month containing ref.
func DaysInMonth(ref time.Time) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(ref.Year(), ref.Month()+1, 0, 0, 0, 0, 0, ref.Location()).Day()
}

// DaysRemainingInMonth counts the days left in ref's month, today included.
// It never returns less than 1.
func DaysRemainingInMonth(ref time.Time) int {
	days := DaysInMonth(ref) - ref.Day() + 1
	if days < 1 {
		return 1
	}
	return days
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DayRange returns the window covering the calendar days from..to, both inclusive.
func DayRange(from, to time.Time) Window {
	return Window{Start: StartOfDay(from), End: StartOfDay(to).AddDate(0, 0, 1)}
}

// ParseDay parses a YYYY-MM-DD string as midnight in loc.
func ParseDay(value string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateLayout, value, loc)
}

// NextBillingDate returns the next date on or after ref whose day-of-month is billingDay.
// Billing days past the end of a short month fall on that month's last day.
func NextBillingDate(ref time.Time, billingDay int) time.Time {
	today := StartOfDay(ref)
	candidate := clampedDay(today.Year(), today.Month(), billingDay, today.Location())
	if candidate.Before(today) {
		next := today.AddDate(0, 0, -today.Day()+1).AddDate(0, 1, 0)
		candidate = clampedDay(next.Year(), next.Month(), billingDay, today.Location())
	}
	return candidate
}

func clampedDay(year int, month time.Month, day int, loc *time.Location) time.Time {
	last := time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
	if day > last {
		day = last
	}
	return time.Date(year, month, day, 0, 0, 0, 0, loc)
}
