package dto

type PreferencesRequest struct {
	WantSunset   bool   `json:"want_sunset"`
	WantSeafood  bool   `json:"want_seafood"`
	NeedRental   bool   `json:"need_rental"`
	NeedShower   bool   `json:"need_shower"`
	MaxPriceTier string `json:"max_price_tier"`
}

type PlanRequest struct {
	LocationID     string             `json:"location_id"`
	Date           string             `json:"date"`
	StartTime      string             `json:"start_time"`
	EndTime        string             `json:"end_time"`
	Mobility       string             `json:"mobility"`
	Budget         *int               `json:"budget"`
	Preferences    PreferencesRequest `json:"preferences"`
	CheckOpenHours bool               `json:"check_open_hours"`
}

type TravelLeg struct {
	Mode       string   `json:"mode"`
	Minutes    int      `json:"minutes"`
	Kilometers *float64 `json:"km,omitempty"`
}

type TimelineEntry struct {
	Type       string     `json:"type"`
	Title      string     `json:"title,omitempty"`
	POIID      string     `json:"poi_id,omitempty"`
	Start      string     `json:"start"`
	End        string     `json:"end"`
	BudgetCost *int       `json:"budget_cost,omitempty"`
	TravelLeg  *TravelLeg `json:"travel_leg,omitempty"`
	Notes      string     `json:"notes,omitempty"`
}

type PlanDay struct {
	LocationID         string          `json:"location_id"`
	Date               string          `json:"date"`
	Mobility           string          `json:"mobility"`
	Budget             *int            `json:"budget,omitempty"`
	Timeline           []TimelineEntry `json:"timeline"`
	EstimatedTotalCost int             `json:"estimated_total_cost"`
	Warnings           []string        `json:"warnings"`
}

type EditPlanRequest struct {
	Plan   PlanDay        `json:"plan"`
	Action string         `json:"action"`
	Index  int            `json:"index"`
	Entry  *TimelineEntry `json:"entry"`
}
