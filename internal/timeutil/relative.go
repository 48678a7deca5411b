// Package timeutil holds the coarse relative-timestamp formatting used by the
// dashboard and profile views.
package timeutil

import (
	"fmt"
	"time"
)

// Relative renders how long ago ts was relative to now, in the coarse buckets
// the portal UI shows: "Today", "N days ago", "N week(s) ago".
//
// The "days ago" branch is unconditionally plural ("1 days ago"); that matches
// the shipped behavior and is pinned by tests, so don't "fix" it here.
func Relative(ts, now time.Time) string {
	days := int(now.Sub(ts).Hours() / 24)
	if days <= 0 {
		return "Today"
	}
	if days < 7 {
		return fmt.Sprintf("%d days ago", days)
	}
	weeks := days / 7
	if weeks == 1 {
		return "1 week ago"
	}
	return fmt.Sprintf("%d weeks ago", weeks)
}
