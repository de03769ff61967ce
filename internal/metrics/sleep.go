package metrics

import (
	"fmt"
	"strconv"
	"strings"
)

// SleepDuration computes elapsed minutes between two "HH:MM" clock times.
// A wake time before bedtime is treated as an overnight span and wraps by
// 24 hours. The result is submitted with the log and the server stores it
// as-is.
func SleepDuration(bedtime, wakeTime string) (int, error) {
	bed, err := parseClock(bedtime)
	if err != nil {
		return 0, fmt.Errorf("invalid bedtime %q: %w", bedtime, err)
	}
	wake, err := parseClock(wakeTime)
	if err != nil {
		return 0, fmt.Errorf("invalid wake time %q: %w", wakeTime, err)
	}
	minutes := wake - bed
	if minutes < 0 {
		minutes += 24 * 60
	}
	return minutes, nil
}

func parseClock(s string) (int, error) {
	parts := strings.SplitN(strings.TrimSpace(s), ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("expected HH:MM")
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("hour out of range")
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("minute out of range")
	}
	return h*60 + m, nil
}
