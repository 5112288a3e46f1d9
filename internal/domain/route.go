package domain

// Represents a single named stop on an ad-hoc route.
type RouteStop struct {
	Lat  float64
	Lng  float64
	Name string
}

// Represents the summary of an ordered route: total distance and the sum of
// per-leg travel estimates for one mobility mode.
type RouteInfo struct {
	Stops     []RouteStop
	TotalKm   float64
	TotalMins int
	Mobility  Mobility
}
