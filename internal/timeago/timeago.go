// Package timeago renders the relative elapsed time shown next to comments.
package timeago

import (
	"fmt"
	"time"
)

// absoluteDateAfterDays is the cutoff past which the absolute publication
// date is shown instead of a day count.
const absoluteDateAfterDays = 10

// Format returns a short human-readable description of how long before now
// the timestamp t occurred. Buckets, coarsest first: days, hours, minutes,
// "just now". Timestamps at least ten days old render as an absolute date
// ("January 2, 2006"). Future timestamps clamp to zero elapsed time and
// render "just now".
//
// The current time is a parameter so callers stay deterministic under test.
func Format(t, now time.Time) string {
	elapsed := now.Sub(t)
	if elapsed < 0 {
		elapsed = 0
	}

	days := int(elapsed / (24 * time.Hour))
	remainder := elapsed % (24 * time.Hour)
	hours := int(remainder / time.Hour)
	minutes := int(remainder % time.Hour / time.Minute)

	switch {
	case days >= absoluteDateAfterDays:
		return t.Format("January 2, 2006")
	case days > 0:
		return fmt.Sprintf("%d days ago", days)
	case hours > 0:
		return fmt.Sprintf("%d hours ago", hours)
	case minutes > 0:
		return fmt.Sprintf("%d minutes ago", minutes)
	default:
		return "just now"
	}
}
