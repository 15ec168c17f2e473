package util

import (
	"fmt"
	"strings"
)

// FormatElapsedMinutes renders a whole-minute duration for timelines (e.g. "45m",
// "3h 5m", "2d 4h"). Negative values, produced by back-dated events, render as "0m".
func FormatElapsedMinutes(minutes int64) string {
	if minutes <= 0 {
		return "0m"
	}

	days := minutes / (24 * 60)
	hours := minutes / 60 % 24
	mins := minutes % 60

	switch {
	case days > 0 && hours > 0:
		return fmt.Sprintf("%dd %dh", days, hours)
	case days > 0:
		return fmt.Sprintf("%dd", days)
	case hours > 0 && mins > 0:
		return fmt.Sprintf("%dh %dm", hours, mins)
	case hours > 0:
		return fmt.Sprintf("%dh", hours)
	default:
		return fmt.Sprintf("%dm", mins)
	}
}

// HumanizeStatus turns a snake_case status into a sentence-case label
// ("out_for_delivery" -> "Out for delivery").
func HumanizeStatus(status string) string {
	words := strings.Fields(strings.ReplaceAll(status, "_", " "))
	if len(words) == 0 {
		return ""
	}

	label := strings.ToLower(strings.Join(words, " "))

	return strings.ToUpper(label[:1]) + label[1:]
}
