package valueobject

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestMonthOf(t *testing.T) {
	w := MonthOf(time.Date(2026, time.February, 14, 18, 30, 0, 0, time.UTC))

	if !w.Start.Equal(date(2026, time.February, 1)) {
		t.Errorf("unexpected start %v", w.Start)
	}
	if !w.End.Equal(date(2026, time.March, 1)) {
		t.Errorf("unexpected end %v", w.End)
	}
	if got := w.End.Sub(w.Start); got != 28*24*time.Hour {
		t.Errorf("expected a 28 day window, got %v", got)
	}
}

func TestDaysRemainingInMonth(t *testing.T) {
	tests := []struct {
		name string
		ref  time.Time
		want int
	}{
		{"first day of a 31-day month", date(2026, time.October, 1), 31},
		{"mid month", date(2026, time.October, 18), 14},
		{"last day", date(2026, time.October, 31), 1},
		{"leap february end", date(2028, time.February, 29), 1},
		{"non-leap february", date(2026, time.February, 1), 28},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysRemainingInMonth(tt.ref); got != tt.want {
				t.Errorf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestDayRangeIsInclusive(t *testing.T) {
	w := DayRange(date(2026, time.May, 1), date(2026, time.May, 31))

	if !w.Start.Equal(date(2026, time.May, 1)) {
		t.Errorf("unexpected start %v", w.Start)
	}
	if !w.End.Equal(date(2026, time.June, 1)) {
		t.Errorf("expected the window to close at the start of the following day, got %v", w.End)
	}
}

func TestNextBillingDate(t *testing.T) {
	tests := []struct {
		name string
		ref  time.Time
		day  int
		want time.Time
	}{
		{"later this month", date(2026, time.October, 18), 25, date(2026, time.October, 25)},
		{"today", date(2026, time.October, 18), 18, date(2026, time.October, 18)},
		{"already passed", date(2026, time.October, 18), 5, date(2026, time.November, 5)},
		{"clamped to short month", date(2026, time.February, 10), 31, date(2026, time.February, 28)},
		{"passed and clamped next month", date(2026, time.January, 31), 30, date(2026, time.February, 28)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NextBillingDate(tt.ref, tt.day); !got.Equal(tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}
