package handlers

import "fmt"

// formatDuration renders a duration in minutes as a human-readable string
// ("45 mins", "1 hr", "2 hr 5 mins").
func formatDuration(minutes float64) string {
	if minutes < 60 {
		return fmt.Sprintf("%.0f mins", minutes)
	}

	hours := int(minutes) / 60
	mins := int(minutes) % 60
	if mins == 0 {
		return fmt.Sprintf("%d hr", hours)
	}
	return fmt.Sprintf("%d hr %d mins", hours, mins)
}
