// Package hours holds the pure arithmetic of the tracker: net hours per day,
// ISO-week / calendar-month bucketing and overtime against fixed targets.
package hours

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"

	DefaultBreakMinutes = 24
)

// ParseClock turns "HH:MM" (24h) into minutes after midnight.
func ParseClock(s string) (int, error) {
	t := strings.TrimSpace(s)
	parts := strings.Split(t, ":")
	if len(parts) != 2 || len(parts[1]) != 2 {
		return 0, fmt.Errorf("invalid time %q, expected HH:MM", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("invalid time %q, expected HH:MM", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid time %q, expected HH:MM", s)
	}
	return h*60 + m, nil
}

// ParseDate parses "YYYY-MM-DD" as a UTC calendar day.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, strings.TrimSpace(s), time.UTC)
}

// Round2 rounds half away from zero to two decimals.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// NetHours is (end - start - break) in decimal hours, rounded to 2 decimals.
// An end before start is not rejected and yields a negative value.
func NetHours(start, end string, breakMinutes int) (float64, error) {
	s, err := ParseClock(start)
	if err != nil {
		return 0, err
	}
	e, err := ParseClock(end)
	if err != nil {
		return 0, err
	}
	return Round2(float64(e-s-breakMinutes) / 60), nil
}
