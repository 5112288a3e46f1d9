package services

import (
	"coastal-day-planner/internal/domain"
	"coastal-day-planner/internal/geo"
	"coastal-day-planner/internal/ports"
	"context"
	"fmt"
	"strings"
	"time"
)

// Fixed anchors of the day template, in minutes after midnight.
const (
	surfStart      = domain.Clock(6*60 + 30)
	surfEnd        = domain.Clock(8*60 + 30)
	cafeCutoff     = domain.Clock(10*60 + 30)
	lunchCutoff    = domain.Clock(14 * 60)
	cultureCutoff  = domain.Clock(16 * 60)
	lunchBreakFrom = domain.Clock(14 * 60)
	lunchBreakTo   = domain.Clock(17 * 60)

	sunsetLead = 30
)

const dateLayout = "2006-01-02"

// Per-slot travel assumptions and durations.
const (
	showerWalkMins = 5
	showerWalkKm   = 0.3
	showerMins     = 20

	cafeLegMins = 10
	cafeLegKm   = 1.2
	cafeMins    = 60

	foodLegMins = 15
	foodLegKm   = 2.5
	foodMins    = 60

	cultureLegMins = 15
	cultureLegKm   = 3.0
	cultureMins    = 60

	sunsetLegKm = 2.0
)

const surfBeginnerMaxWaveM = 1.5

// Preferences toggles optional slots and narrows the food choice.
type Preferences struct {
	WantSunset  bool
	WantSeafood bool
	NeedRental  bool
	NeedShower  bool
	// PriceUnknown means no ceiling.
	MaxPriceTier domain.PriceTier
}

type BuildItineraryRequest struct {
	LocationID  string
	Date        string
	StartTime   string
	EndTime     string
	Mobility    domain.Mobility
	Budget      *int
	Preferences Preferences
}

// Build a one-day itinerary for a location using a fixed slot template.
//
// Slots are filled in a single forward pass: surf, shower, cafe, food,
// culture, sunset. Each slot takes the first eligible POI in catalog order,
// so identical inputs always yield the same plan. A missing POI or an elapsed
// window skips the slot. The result is validated before it is returned.
//
// Catalog and conditions failures are returned as-is; callers that want
// resilience should pass a fallback provider.
func BuildItinerary(
	ctx context.Context,
	req BuildItineraryRequest,
	catalog ports.POICatalog,
	conditions ports.ConditionsProvider,
) (*domain.PlanDay, error) {
	start, day, err := req.validate()
	if err != nil {
		return nil, fmt.Errorf("build itinerary: %w", err)
	}

	pois, err := catalog.GetPOIsByLocation(ctx, req.LocationID)
	if err != nil {
		return nil, fmt.Errorf("build itinerary: get pois for %q: %w", req.LocationID, err)
	}

	sea, err := conditions.GetSeaState(ctx, req.LocationID, req.Date)
	if err != nil {
		return nil, fmt.Errorf("build itinerary: get sea state for %q on %s: %w", req.LocationID, req.Date, err)
	}

	weather, err := conditions.GetWeather(ctx, req.LocationID, req.Date)
	if err != nil {
		return nil, fmt.Errorf("build itinerary: get weather for %q on %s: %w", req.LocationID, req.Date, err)
	}

	b := &slotFiller{
		cursor: start,
		day:    day,
		pois:   pois,
		prefs:  req.Preferences,
		sea:    sea,
		plan: &domain.PlanDay{
			LocationID: req.LocationID,
			Date:       req.Date,
			Mobility:   req.Mobility,
			Budget:     req.Budget,
			Timeline:   []domain.TimelineEntry{},
			Warnings:   []string{},
		},
	}

	b.surf()
	b.shower()
	b.cafe()
	b.food()
	b.culture()
	b.sunset()

	b.plan.RecomputeTotal()

	ValidatePlan(b.plan, &domain.ConditionSnapshot{Sea: sea, Weather: weather})

	return b.plan, nil
}

func (r BuildItineraryRequest) validate() (domain.Clock, time.Time, error) {
	if strings.TrimSpace(r.LocationID) == "" {
		return 0, time.Time{}, fmt.Errorf("location id must be non-empty: %w", domain.ErrInvalidInput)
	}

	day, err := time.Parse(dateLayout, r.Date)
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("date %q: expected YYYY-MM-DD: %w", r.Date, domain.ErrInvalidInput)
	}

	start, err := domain.ParseClock(r.StartTime)
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("start time: %w", err)
	}

	end, err := domain.ParseClock(r.EndTime)
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("end time: %w", err)
	}

	if start >= end {
		return 0, time.Time{}, fmt.Errorf("window %s-%s: start must be before end: %w", start, end, domain.ErrInvalidInput)
	}

	if !r.Mobility.Valid() {
		return 0, time.Time{}, fmt.Errorf("mobility %q: %w", string(r.Mobility), domain.ErrInvalidInput)
	}

	if r.Budget != nil && *r.Budget < 0 {
		return 0, time.Time{}, fmt.Errorf("budget %d: must be non-negative: %w", *r.Budget, domain.ErrInvalidInput)
	}

	if t := r.Preferences.MaxPriceTier; t < domain.PriceUnknown || t > domain.PriceHigh {
		return 0, time.Time{}, fmt.Errorf("max price tier %d: %w", int(t), domain.ErrInvalidInput)
	}

	return start, day, nil
}

// slotFiller owns the plan under construction for one BuildItinerary call.
type slotFiller struct {
	cursor domain.Clock
	day    time.Time
	pois   []domain.POI
	prefs  Preferences
	sea    domain.SeaState
	plan   *domain.PlanDay
}

func (b *slotFiller) surf() {
	if b.cursor > surfStart {
		return
	}

	b.plan.Timeline = append(b.plan.Timeline, domain.TimelineEntry{
		Type:  domain.EntrySurf,
		Title: "Dawn surf",
		Start: max(b.cursor, surfStart),
		End:   surfEnd,
		Notes: b.surfNote(),
	})
	b.cursor = surfEnd
}

func (b *slotFiller) surfNote() string {
	parts := []string{fmt.Sprintf("Waves %.1f m, period %.1f s", b.sea.WaveHeightM, b.sea.WavePeriodS)}

	if b.sea.WaveHeightM < surfBeginnerMaxWaveM {
		parts = append(parts, "beginner friendly")
	}
	if !geo.IsGoodSurf(b.sea) {
		parts = append(parts, "marginal surf")
	}
	if b.prefs.NeedRental {
		if rental, ok := firstPOI(b.pois, domain.CategoryRental, nil); ok {
			parts = append(parts, "board rental at "+rental.Name)
		}
	}

	return strings.Join(parts, "; ")
}

func (b *slotFiller) shower() {
	if !b.prefs.NeedShower {
		return
	}

	poi, ok := firstPOI(b.pois, domain.CategoryShower, nil)
	if !ok {
		return
	}

	b.place(poi, domain.MobilityWalk, showerWalkMins, showerWalkKm, showerMins, nil)
}

func (b *slotFiller) cafe() {
	poi, ok := firstPOI(b.pois, domain.CategoryCafe, nil)
	if !ok || b.cursor >= cafeCutoff {
		return
	}

	cost := cafeCost(poi.PriceTier)
	b.place(poi, b.plan.Mobility, cafeLegMins, cafeLegKm, cafeMins, &cost)
}

func (b *slotFiller) food() {
	poi, ok := firstPOI(b.pois, domain.CategoryFood, b.foodEligible)
	if !ok || b.cursor >= lunchCutoff {
		return
	}

	cost := foodCost(poi.PriceTier)
	if !b.place(poi, b.plan.Mobility, foodLegMins, foodLegKm, foodMins, &cost) {
		return
	}

	// The window includes the inbound leg; both ranges are closed.
	windowFrom := b.cursor - foodLegMins - foodMins
	if windowFrom <= lunchBreakTo && b.cursor >= lunchBreakFrom {
		b.plan.AddWarning(fmt.Sprintf(
			"%s may close for an afternoon break between %s and %s; check before going",
			poi.Name, lunchBreakFrom, lunchBreakTo,
		))
	}
}

func (b *slotFiller) foodEligible(p domain.POI) bool {
	if b.prefs.WantSeafood && !p.HasTag("seafood") {
		return false
	}
	if ceiling := b.prefs.MaxPriceTier; ceiling != domain.PriceUnknown {
		if p.PriceTier == domain.PriceUnknown || p.PriceTier > ceiling {
			return false
		}
	}
	return true
}

func (b *slotFiller) culture() {
	poi, ok := firstPOI(b.pois, domain.CategoryCulture, nil)
	if !ok || b.cursor >= cultureCutoff {
		return
	}

	b.place(poi, b.plan.Mobility, cultureLegMins, cultureLegKm, cultureMins, nil)
}

func (b *slotFiller) sunset() {
	if !b.prefs.WantSunset {
		return
	}

	poi, ok := firstPOI(b.pois, domain.CategoryView, nil)
	if !ok {
		return
	}

	sunset := geo.SunsetTime(b.day, poi.Lat)
	arrive := sunset - sunsetLead
	if b.cursor >= arrive {
		return
	}

	km := sunsetLegKm
	gap := int(arrive - b.cursor)
	b.plan.Timeline = append(b.plan.Timeline, domain.TimelineEntry{
		Type:  domain.EntryView,
		Title: poi.Name,
		POIID: poi.ID,
		Start: arrive,
		End:   sunset + sunsetLead,
		Notes: "Sunset at " + sunset.String(),
		Leg: &domain.TravelLeg{
			Mode:       b.plan.Mobility,
			Minutes:    (gap + 1) / 2,
			Kilometers: &km,
		},
	})
	b.cursor = sunset + sunsetLead
}

// place appends a POI entry preceded by its inbound leg and advances the
// cursor past it. Entries that would run past midnight are skipped.
func (b *slotFiller) place(poi domain.POI, mode domain.Mobility, legMins int, legKm float64, stayMins int, cost *int) bool {
	start := b.cursor + domain.Clock(legMins)
	end := start + domain.Clock(stayMins)
	if !end.Valid() {
		return false
	}

	km := legKm
	b.plan.Timeline = append(b.plan.Timeline, domain.TimelineEntry{
		Type:       domain.EntryType(poi.Category),
		Title:      poi.Name,
		POIID:      poi.ID,
		Start:      start,
		End:        end,
		BudgetCost: cost,
		Leg: &domain.TravelLeg{
			Mode:       mode,
			Minutes:    legMins,
			Kilometers: &km,
		},
	})
	b.cursor = end
	return true
}

// firstPOI returns the first POI of cat in catalog order that passes keep.
func firstPOI(pois []domain.POI, cat domain.Category, keep func(domain.POI) bool) (domain.POI, bool) {
	for _, p := range pois {
		if p.Category != cat {
			continue
		}
		if keep != nil && !keep(p) {
			continue
		}
		return p, true
	}
	return domain.POI{}, false
}

// Unknown tiers are charged at the top band.
func cafeCost(t domain.PriceTier) int {
	switch t {
	case domain.PriceLow:
		return 100
	case domain.PriceMid:
		return 200
	}
	return 300
}

func foodCost(t domain.PriceTier) int {
	switch t {
	case domain.PriceLow:
		return 150
	case domain.PriceMid:
		return 350
	}
	return 600
}
