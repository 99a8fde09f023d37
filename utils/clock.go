package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// Clock-face helpers. Canonical form everywhere (storage, wire, comparisons)
// is the zero-padded 24-hour "HH:MM" string; 12-hour labels exist only for
// display. Malformed input is reported as an error, never passed through.

// To24Hour normalizes a time string to "HH:MM" 24-hour form. It accepts
// 24-hour input ("9:30", "09:30") and 12-hour input with or without a space
// before the meridiem ("9:30 AM", "9:30pm"). Hour 12 maps to 00 in the AM
// period and stays 12 in the PM period.
func To24Hour(s string) (string, error) {
	trimmed := strings.TrimSpace(s)
	upper := strings.ToUpper(trimmed)

	meridiem := ""
	switch {
	case strings.HasSuffix(upper, "AM"):
		meridiem = "AM"
	case strings.HasSuffix(upper, "PM"):
		meridiem = "PM"
	}

	clock := trimmed
	if meridiem != "" {
		clock = strings.TrimSpace(trimmed[:len(trimmed)-2])
	}

	hour, minute, err := splitClock(clock)
	if err != nil {
		return "", fmt.Errorf("invalid time %q: %w", s, err)
	}

	switch meridiem {
	case "":
		if hour > 23 {
			return "", fmt.Errorf("invalid time %q: hour out of range", s)
		}
	default:
		if hour < 1 || hour > 12 {
			return "", fmt.Errorf("invalid time %q: hour out of range", s)
		}
		if meridiem == "AM" && hour == 12 {
			hour = 0
		}
		if meridiem == "PM" && hour != 12 {
			hour += 12
		}
	}

	return fmt.Sprintf("%02d:%02d", hour, minute), nil
}

// To12Hour renders a time string as a 12-hour display label, e.g.
// "13:30" -> "1:30 PM". The input is normalized first, so 12-hour input is
// also accepted.
func To12Hour(s string) (string, error) {
	norm, err := To24Hour(s)
	if err != nil {
		return "", err
	}
	hour, _ := strconv.Atoi(norm[:2])
	minute, _ := strconv.Atoi(norm[3:])
	return MinuteLabel(hour*60 + minute), nil
}

// MinuteOfDay converts a time string to minutes from midnight, the form used
// for slot arithmetic and range comparisons.
func MinuteOfDay(s string) (int, error) {
	norm, err := To24Hour(s)
	if err != nil {
		return 0, err
	}
	hour, _ := strconv.Atoi(norm[:2])
	minute, _ := strconv.Atoi(norm[3:])
	return hour*60 + minute, nil
}

// MinuteClock renders minutes from midnight as a 24-hour "HH:MM" string.
func MinuteClock(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// MinuteLabel renders minutes from midnight as a 12-hour display label with
// no leading zero on the hour, e.g. 570 -> "9:30 AM".
func MinuteLabel(m int) string {
	hour := m / 60
	minute := m % 60
	meridiem := "AM"
	switch {
	case hour == 0:
		hour = 12
	case hour == 12:
		meridiem = "PM"
	case hour > 12:
		hour -= 12
		meridiem = "PM"
	}
	return fmt.Sprintf("%d:%02d %s", hour, minute, meridiem)
}

// MinuteLabelFromClock renders an already-normalized "HH:MM" string as a
// 12-hour display label, returning the input unchanged if it fails to parse.
func MinuteLabelFromClock(s string) string {
	m, err := MinuteOfDay(s)
	if err != nil {
		return s
	}
	return MinuteLabel(m)
}

func splitClock(clock string) (int, int, error) {
	parts := strings.Split(clock, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("expected HH:MM")
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 {
		return 0, 0, fmt.Errorf("bad hour %q", parts[0])
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 || len(parts[1]) != 2 {
		return 0, 0, fmt.Errorf("bad minute %q", parts[1])
	}
	return hour, minute, nil
}
