package domain

import (
	"fmt"
	"strings"
	"time"
)

// One opening interval within a day, inclusive on both ends.
type OpenPeriod struct {
	Open  Clock
	Close Clock
}

// WeeklySchedule maps weekdays to opening periods. An empty schedule means
// no data; a weekday with no periods means closed that day.
type WeeklySchedule map[time.Weekday][]OpenPeriod

// IsOpenAt evaluates the schedule against the wall-clock of t.
func (s WeeklySchedule) IsOpenAt(t time.Time) bool {
	if len(s) == 0 {
		return true
	}

	at := Clock(t.Hour()*60 + t.Minute())
	for _, p := range s[t.Weekday()] {
		if at >= p.Open && at <= p.Close {
			return true
		}
	}
	return false
}

var weekdayKeys = [...]string{"sun", "mon", "tue", "wed", "thu", "fri", "sat"}

// ParseWeekday accepts three-letter keys ("mon") or full English names.
func ParseWeekday(s string) (time.Weekday, error) {
	k := strings.ToLower(strings.TrimSpace(s))
	if len(k) > 3 {
		k = k[:3]
	}
	for i, key := range weekdayKeys {
		if key == k {
			return time.Weekday(i), nil
		}
	}
	return 0, fmt.Errorf("parse weekday %q: %w", s, ErrInvalidInput)
}

func WeekdayKey(d time.Weekday) string { return weekdayKeys[d] }
