package domain

import (
	"fmt"
	"strconv"
	"strings"
)

const MinutesPerDay = 24 * 60

// Clock is a minute-of-day value. It is exchanged as "HH:MM".
type Clock int

// ParseClock parses "HH:MM" (hour may be a single digit) into a Clock.
func ParseClock(s string) (Clock, error) {
	raw := strings.TrimSpace(s)

	hh, mm, ok := strings.Cut(raw, ":")
	if !ok || len(hh) < 1 || len(hh) > 2 || len(mm) != 2 || !allDigits(hh) || !allDigits(mm) {
		return 0, fmt.Errorf("parse clock %q: expected HH:MM: %w", s, ErrInvalidInput)
	}

	h, _ := strconv.Atoi(hh)
	m, _ := strconv.Atoi(mm)
	if h > 23 || m > 59 {
		return 0, fmt.Errorf("parse clock %q: out of range: %w", s, ErrInvalidInput)
	}

	return Clock(h*60 + m), nil
}

func (c Clock) Valid() bool { return c >= 0 && c < MinutesPerDay }

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/60, int(c)%60)
}

func (c Clock) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("marshal clock %d: %w", int(c), ErrInvalidInput)
	}
	return []byte(c.String()), nil
}

func (c *Clock) UnmarshalText(b []byte) error {
	v, err := ParseClock(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// TimeToMinutes converts "HH:MM" to minutes after midnight.
func TimeToMinutes(s string) (int, error) {
	c, err := ParseClock(s)
	if err != nil {
		return 0, err
	}
	return int(c), nil
}

// MinutesToTime converts a minute-of-day in [0, 1439] to zero-padded "HH:MM".
func MinutesToTime(minutes int) (string, error) {
	c := Clock(minutes)
	if !c.Valid() {
		return "", fmt.Errorf("minutes to time %d: outside 0..%d: %w", minutes, MinutesPerDay-1, ErrInvalidInput)
	}
	return c.String(), nil
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
