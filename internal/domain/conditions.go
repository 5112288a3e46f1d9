package domain

// Daily sea-state summary for one location.
type SeaState struct {
	LocationID       string
	Date             string
	WaveHeightM      float64
	WavePeriodS      float64
	WaveDirectionDeg float64
	SwellHeightM     float64
}

// Daily weather summary for one location.
type Weather struct {
	LocationID   string
	Date         string
	TemperatureC float64
	WindSpeedMS  float64
	RainfallPct  float64
	HumidityPct  float64
}

// ConditionSnapshot is what the planner reads for notes and hazard warnings.
// It is immutable for the duration of one planning call.
type ConditionSnapshot struct {
	Sea     SeaState
	Weather Weather
}
