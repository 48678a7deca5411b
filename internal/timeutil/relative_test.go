package timeutil

import (
	"fmt"
	"testing"
	"time"
)

func TestRelative(t *testing.T) {
	now := time.Date(2024, 6, 15, 14, 30, 0, 0, time.UTC)

	cases := []struct {
		name string
		ts   time.Time
		want string
	}{
		{"same instant", now, "Today"},
		{"earlier today", now.Add(-5 * time.Hour), "Today"},
		{"future timestamp", now.Add(2 * time.Hour), "Today"},
		{"one day", now.AddDate(0, 0, -1), "1 days ago"},
		{"six days", now.AddDate(0, 0, -6), "6 days ago"},
		{"seven days", now.AddDate(0, 0, -7), "1 week ago"},
		{"thirteen days", now.AddDate(0, 0, -13), "1 week ago"},
		{"fourteen days", now.AddDate(0, 0, -14), "2 weeks ago"},
		{"thirty days", now.AddDate(0, 0, -30), "4 weeks ago"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Relative(tc.ts, now); got != tc.want {
				t.Fatalf("Relative(%v) = %q, want %q", tc.ts, got, tc.want)
			}
		})
	}
}

func TestRelativeAllSingleDigitDays(t *testing.T) {
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	for days := 1; days <= 6; days++ {
		want := fmt.Sprintf("%d days ago", days)
		if got := Relative(now.AddDate(0, 0, -days), now); got != want {
			t.Fatalf("day %d: got %q, want %q", days, got, want)
		}
	}
}
