package domain

// EntryType tags a timeline entry. POI-backed entries reuse the POI category;
// the water session is the literal "surf".
type EntryType string

const (
	EntrySurf    EntryType = "surf"
	EntryFood    EntryType = EntryType(CategoryFood)
	EntryCafe    EntryType = EntryType(CategoryCafe)
	EntryRental  EntryType = EntryType(CategoryRental)
	EntryShower  EntryType = EntryType(CategoryShower)
	EntryParking EntryType = EntryType(CategoryParking)
	EntryView    EntryType = EntryType(CategoryView)
	EntryCulture EntryType = EntryType(CategoryCulture)
	EntryMove    EntryType = "move"
)

// TravelLeg is the estimated move into an entry. It is derived, never stored alone.
type TravelLeg struct {
	Mode       Mobility
	Minutes    int
	Kilometers *float64
}

// TimelineEntry is one scheduled stop. POIID is a back-reference only;
// the catalog stays the owner of POI data.
type TimelineEntry struct {
	Type       EntryType
	Title      string
	POIID      string
	Start      Clock
	End        Clock
	BudgetCost *int
	Leg        *TravelLeg
	Notes      string
}

// Label names the entry in warnings, falling back to its type.
func (e TimelineEntry) Label() string {
	if e.Title != "" {
		return e.Title
	}
	return string(e.Type)
}

func (e TimelineEntry) Cost() int {
	if e.BudgetCost == nil {
		return 0
	}
	return *e.BudgetCost
}

// PlanDay is the itinerary aggregate for one location and date.
// Timeline order is the walk order. EstimatedTotalCost must always equal the
// sum of entry costs; use RecomputeTotal after any change to Timeline.
type PlanDay struct {
	LocationID         string
	Date               string
	Mobility           Mobility
	Budget             *int
	Timeline           []TimelineEntry
	EstimatedTotalCost int
	Warnings           []string
}

// TotalCost sums entry costs from the current timeline.
func (p *PlanDay) TotalCost() int {
	total := 0
	for _, e := range p.Timeline {
		total += e.Cost()
	}
	return total
}

func (p *PlanDay) RecomputeTotal() {
	p.EstimatedTotalCost = p.TotalCost()
}

func (p *PlanDay) AddWarning(msg string) {
	p.Warnings = append(p.Warnings, msg)
}

// Clone returns a deep copy so edits never alias the source plan.
func (p *PlanDay) Clone() *PlanDay {
	out := *p

	if p.Budget != nil {
		b := *p.Budget
		out.Budget = &b
	}

	out.Timeline = make([]TimelineEntry, len(p.Timeline))
	for i, e := range p.Timeline {
		out.Timeline[i] = e.Clone()
	}

	out.Warnings = append([]string(nil), p.Warnings...)
	return &out
}

// Clone copies the entry including its pointer fields.
func (e TimelineEntry) Clone() TimelineEntry {
	out := e
	if e.BudgetCost != nil {
		c := *e.BudgetCost
		out.BudgetCost = &c
	}
	if e.Leg != nil {
		leg := *e.Leg
		if e.Leg.Kilometers != nil {
			km := *e.Leg.Kilometers
			leg.Kilometers = &km
		}
		out.Leg = &leg
	}
	return out
}
