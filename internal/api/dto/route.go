package dto

type RouteStop struct {
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
	Name string  `json:"name"`
}

// RouteRequest takes either explicit stops, or a location plus POI ids
// (the route then starts at the spot).
type RouteRequest struct {
	Stops      []RouteStop `json:"stops"`
	LocationID string      `json:"location_id"`
	POIIDs     []string    `json:"poi_ids"`
	Mobility   string      `json:"mobility"`
}

type RouteResponse struct {
	Stops     []RouteStop `json:"stops"`
	TotalKm   float64     `json:"total_km"`
	TotalMins int         `json:"total_mins"`
	Mobility  string      `json:"mobility"`
}
