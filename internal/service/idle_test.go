package service

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func TestMonthsBetween(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		from time.Time
		now  time.Time
		want int
	}{
		{name: "same day", from: date(2026, time.March, 15), now: date(2026, time.March, 15), want: 0},
		{name: "same month later day", from: date(2026, time.March, 1), now: date(2026, time.March, 31), want: 0},
		{name: "one month boundary on day 1", from: date(2026, time.March, 31), now: date(2026, time.April, 1), want: 1},
		{name: "exactly two months same day", from: date(2026, time.January, 15), now: date(2026, time.March, 15), want: 2},
		{name: "one month 29 days", from: date(2026, time.January, 2), now: date(2026, time.February, 28), want: 1},
		{name: "across year boundary", from: date(2025, time.November, 10), now: date(2026, time.February, 3), want: 3},
		{name: "full year", from: date(2025, time.June, 1), now: date(2026, time.June, 1), want: 12},
		{name: "future idle start", from: date(2026, time.September, 1), now: date(2026, time.June, 1), want: -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := MonthsBetween(tt.from, tt.now); got != tt.want {
				t.Fatalf("MonthsBetween(%v, %v) = %d, want %d", tt.from, tt.now, got, tt.want)
			}
		})
	}
}

func TestDeriveIdle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		from       time.Time
		now        time.Time
		wantMonths int
		wantUrgent bool
	}{
		{name: "fresh resource not urgent", from: date(2026, time.June, 1), now: date(2026, time.June, 20), wantMonths: 0, wantUrgent: false},
		{name: "one month not urgent", from: date(2026, time.May, 1), now: date(2026, time.June, 20), wantMonths: 1, wantUrgent: false},
		{name: "exactly two months urgent", from: date(2026, time.April, 20), now: date(2026, time.June, 20), wantMonths: 2, wantUrgent: true},
		{name: "one month 29 days not urgent", from: date(2026, time.January, 2), now: date(2026, time.February, 28), wantMonths: 1, wantUrgent: false},
		{name: "long idle urgent", from: date(2025, time.June, 1), now: date(2026, time.June, 1), wantMonths: 12, wantUrgent: true},
		{name: "future start never urgent", from: date(2026, time.December, 1), now: date(2026, time.June, 1), wantMonths: -6, wantUrgent: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			months, urgent := DeriveIdle(tt.from, tt.now)
			if months != tt.wantMonths || urgent != tt.wantUrgent {
				t.Fatalf("DeriveIdle() = (%d, %v), want (%d, %v)", months, urgent, tt.wantMonths, tt.wantUrgent)
			}
		})
	}
}
