package geo

import (
	"time"

	"coastal-day-planner/internal/domain"
)

const (
	summerSunset = domain.Clock(18*60 + 30)
	winterSunset = domain.Clock(17*60 + 32)
)

// SunsetTime returns the local sunset for date. It is a seasonal constant
// (May to September vs. the rest of the year); the latitude argument is
// unused for now.
func SunsetTime(date time.Time, _ float64) domain.Clock {
	if m := date.Month(); m >= time.May && m <= time.September {
		return summerSunset
	}
	return winterSunset
}

// IsGoodSurf reports whether the day's swell is rideable for most surfers:
// 0.5 to 2.5 m faces with a period of at least 6 s.
func IsGoodSurf(sea domain.SeaState) bool {
	return sea.WaveHeightM >= 0.5 && sea.WaveHeightM <= 2.5 && sea.WavePeriodS >= 6
}
