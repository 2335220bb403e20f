package engine

import (
	"fmt"
	"time"
)

// FormatClock renders a duration as zero-padded MM:SS, truncated to whole
// seconds. The minutes field widens past two digits for sessions longer than
// 99 minutes, so a 180 minute session renders as "180:00".
func FormatClock(value time.Duration) string {
	if value < 0 {
		value = 0
	}
	seconds := int(value.Seconds())
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// FormatTotal renders an accumulated study total in two forms: a decimal hour
// count ("1.50 h") and a zero-padded HH:MM:SS clock ("01:30:00").
func FormatTotal(total time.Duration) (string, string) {
	if total < 0 {
		total = 0
	}
	seconds := int(total.Seconds())
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	seconds = seconds % 60

	short := fmt.Sprintf("%.2f h", total.Hours())
	long := fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	return short, long
}

func progressValue(duration, remaining time.Duration) float64 {
	if duration <= 0 {
		return 0
	}
	progress := float64(duration-remaining) / float64(duration)
	if progress < 0 {
		return 0
	}
	if progress > 1 {
		return 1
	}
	return progress
}
