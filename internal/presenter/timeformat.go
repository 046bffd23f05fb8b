package presenter

import (
	"fmt"
	"time"
)

// FormatTimeSince formats the time elapsed between t and now as a
// human-readable "X ago" string, e.g. "5 minutes ago", "2.5 hours ago" or
// "3 days ago". Anything under a minute, including times in the future,
// is "just now".
func FormatTimeSince(t, now time.Time) string {
	duration := now.Sub(t)

	switch {
	case duration < time.Minute:
		return "just now"
	case duration < time.Hour:
		return fmt.Sprintf("%.0f minutes ago", duration.Minutes())
	case duration < 24*time.Hour:
		return fmt.Sprintf("%.1f hours ago", duration.Hours())
	default:
		return fmt.Sprintf("%.0f days ago", duration.Hours()/24)
	}
}

// FormatTimeSinceCompact is FormatTimeSince for table columns:
// "5m ago", "2.5h ago", "3d ago" or "now".
func FormatTimeSinceCompact(t, now time.Time) string {
	duration := now.Sub(t)

	switch {
	case duration < time.Minute:
		return "now"
	case duration < time.Hour:
		return fmt.Sprintf("%.0fm ago", duration.Minutes())
	case duration < 24*time.Hour:
		return fmt.Sprintf("%.1fh ago", duration.Hours())
	default:
		return fmt.Sprintf("%.0fd ago", duration.Hours()/24)
	}
}
