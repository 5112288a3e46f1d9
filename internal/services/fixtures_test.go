package services

import (
	"coastal-day-planner/internal/adapters/memory"
	"coastal-day-planner/internal/domain"
	"context"
	"errors"
)

var cijin = domain.Spot{
	ID:          "cijin",
	Name:        "Cijin Beach",
	Coordinates: domain.Coordinates{Lat: 22.6080, Lng: 120.2652},
}

// One POI per category, all mid-priced.
func cijinPOIs() []domain.POI {
	return []domain.POI{
		{ID: "poi_shower", LocationID: "cijin", Name: "Beach Shower", Category: domain.CategoryShower, Lat: 22.6085, Lng: 120.2655},
		{ID: "poi_cafe", LocationID: "cijin", Name: "Harbor Cafe", Category: domain.CategoryCafe, Lat: 22.6120, Lng: 120.2680, PriceTier: domain.PriceMid},
		{ID: "poi_food", LocationID: "cijin", Name: "Seafood Street", Category: domain.CategoryFood, Lat: 22.6150, Lng: 120.2690, PriceTier: domain.PriceMid, Tags: []string{"seafood"}},
		{ID: "poi_rental", LocationID: "cijin", Name: "Cijin Board Rental", Category: domain.CategoryRental, Lat: 22.6090, Lng: 120.2660, PriceTier: domain.PriceLow},
		{ID: "poi_temple", LocationID: "cijin", Name: "Tianhou Temple", Category: domain.CategoryCulture, Lat: 22.6160, Lng: 120.2670},
		{ID: "poi_view", LocationID: "cijin", Name: "Lighthouse Lookout", Category: domain.CategoryView, Lat: 22.6180, Lng: 120.2640},
	}
}

func calmDay(loc, date string) domain.ConditionSnapshot {
	return domain.ConditionSnapshot{
		Sea:     domain.SeaState{LocationID: loc, Date: date, WaveHeightM: 1.0, WavePeriodS: 8},
		Weather: domain.Weather{LocationID: loc, Date: date, WindSpeedMS: 5, RainfallPct: 10},
	}
}

type failingConditions struct{ err error }

func (f failingConditions) GetSeaState(ctx context.Context, locationID, date string) (domain.SeaState, error) {
	return domain.SeaState{}, f.err
}

func (f failingConditions) GetWeather(ctx context.Context, locationID, date string) (domain.Weather, error) {
	return domain.Weather{}, f.err
}

type failingCatalog struct{ err error }

func (f failingCatalog) GetPOIsByLocation(ctx context.Context, locationID string) ([]domain.POI, error) {
	return nil, f.err
}

func (f failingCatalog) GetPOIsByCategory(ctx context.Context, locationID string, categories []domain.Category) ([]domain.POI, error) {
	return nil, f.err
}

var errBoom = errors.New("boom")

func newCijinCatalog(pois []domain.POI) *memory.Catalog {
	return memory.NewCatalog([]domain.Spot{cijin}, pois)
}

func intPtr(v int) *int { return &v }

func clock(s string) domain.Clock {
	c, err := domain.ParseClock(s)
	if err != nil {
		panic(err)
	}
	return c
}
