package render

import "fmt"

// formatTimestamp renders seconds as MM:SS, switching to HH:MM:SS once the
// hour boundary is crossed. Fractions of a second are truncated.
func formatTimestamp(seconds float64) string {
	total := int(seconds)
	hours := total / 3600
	minutes := (total % 3600) / 60
	secs := total % 60

	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, secs)
	}
	return fmt.Sprintf("%02d:%02d", minutes, secs)
}
