package domain

import (
	"errors"
	"testing"
)

func TestClockRoundTripAllMinutes(t *testing.T) {
	for m := 0; m < MinutesPerDay; m++ {
		s, err := MinutesToTime(m)
		if err != nil {
			t.Fatalf("MinutesToTime(%d): unexpected error: %v", m, err)
		}

		back, err := TimeToMinutes(s)
		if err != nil {
			t.Fatalf("TimeToMinutes(%q): unexpected error: %v", s, err)
		}
		if back != m {
			t.Fatalf("round trip %d -> %q -> %d", m, s, back)
		}
	}
}

func TestMinutesToTimeZeroPads(t *testing.T) {
	got, err := MinutesToTime(6*60 + 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "06:05" {
		t.Fatalf("got %q, want 06:05", got)
	}
}

func TestParseClockRejectsMalformed(t *testing.T) {
	bad := []string{"", "6", "06:5", "24:00", "12:60", "ab:cd", "-1:00", "06:30:00", "+6:30"}
	for _, s := range bad {
		if _, err := ParseClock(s); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("ParseClock(%q) err = %v, want ErrInvalidInput", s, err)
		}
	}
}

func TestParseClockAcceptsSingleDigitHour(t *testing.T) {
	c, err := ParseClock("6:30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c != 390 {
		t.Fatalf("got %d, want 390", c)
	}
}

func TestMinutesToTimeOutOfRange(t *testing.T) {
	for _, m := range []int{-1, MinutesPerDay} {
		if _, err := MinutesToTime(m); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("MinutesToTime(%d) err = %v, want ErrInvalidInput", m, err)
		}
	}
}
