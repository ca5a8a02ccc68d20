package model

import "fmt"

// FormatClock renders a minute-of-day as zero-padded "HH:MM". Values
// past midnight are not wrapped: an event running long renders as
// "25:30" rather than "01:30", keeping the output offset-naive.
func FormatClock(min int) string {
	return fmt.Sprintf("%02d:%02d", min/60, min%60)
}

// ParseClock parses "HH:MM" into a minute-of-day. Hours 0-23 and
// minutes 0-59 are accepted.
func ParseClock(s string) (int, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("invalid clock value %q", s)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("clock value %q out of range", s)
	}
	return h*60 + m, nil
}
