package conditions

import (
	"coastal-day-planner/internal/domain"
	"context"
	"hash/fnv"
	"math"
	"math/rand/v2"
)

// MockProvider generates plausible conditions seeded by (location, date), so
// the same day always reads the same. Ranges follow a typical Taiwan summer
// coast: 0.8 to 2.3 m waves, 6 to 10 s periods, 5 to 13 m/s wind.
type MockProvider struct{}

func NewMockProvider() *MockProvider { return &MockProvider{} }

func (MockProvider) GetSeaState(ctx context.Context, locationID, date string) (domain.SeaState, error) {
	r := seeded("sea", locationID, date)

	height := 0.8 + r.Float64()*1.5
	return domain.SeaState{
		LocationID:       locationID,
		Date:             date,
		WaveHeightM:      round1(height),
		WavePeriodS:      round1(6 + r.Float64()*4),
		WaveDirectionDeg: round1(120 + (r.Float64()-0.5)*40),
		SwellHeightM:     round1(height * 0.7),
	}, nil
}

func (MockProvider) GetWeather(ctx context.Context, locationID, date string) (domain.Weather, error) {
	r := seeded("weather", locationID, date)

	return domain.Weather{
		LocationID:   locationID,
		Date:         date,
		TemperatureC: round1(24 + r.Float64()*6),
		WindSpeedMS:  round1(5 + r.Float64()*8),
		RainfallPct:  round1(r.Float64() * 30),
		HumidityPct:  round1(60 + r.Float64()*30),
	}, nil
}

func seeded(kind, locationID, date string) *rand.Rand {
	h := fnv.New64a()
	_, _ = h.Write([]byte(kind + "|" + locationID + "|" + date))
	s := h.Sum64()
	return rand.New(rand.NewPCG(s, s>>1|1))
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
