package dto

type SpotResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	NameEn      string  `json:"name_en,omitempty"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	Kind        string  `json:"kind,omitempty"`
	Difficulty  string  `json:"difficulty,omitempty"`
	Description string  `json:"description,omitempty"`
}

type ListSpotResponse struct {
	Spots []SpotResponse `json:"spots"`
}

type POIResponse struct {
	ID          string   `json:"id"`
	LocationID  string   `json:"location_id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Lat         float64  `json:"lat"`
	Lng         float64  `json:"lng"`
	PriceTier   string   `json:"price_tier,omitempty"`
	Rating      *float64 `json:"rating,omitempty"`
	Tags        []string `json:"tags"`
	Description string   `json:"description,omitempty"`
	Phone       string   `json:"phone,omitempty"`
	Address     string   `json:"address,omitempty"`
	DistanceKm  *float64 `json:"distance_km,omitempty"`
}

type ListPOIResponse struct {
	POIs []POIResponse `json:"pois"`
}

type OpenPeriod struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

// Hours are keyed by weekday ("mon".."sun") and empty when no data is known.
type OpenHoursResponse struct {
	POIID  string                  `json:"poi_id"`
	Hours  map[string][]OpenPeriod `json:"hours"`
	IsOpen *bool                   `json:"is_open,omitempty"`
}
