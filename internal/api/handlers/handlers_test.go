package handlers

import (
	"bytes"
	"coastal-day-planner/internal/adapters/memory"
	"coastal-day-planner/internal/api/dto"
	"coastal-day-planner/internal/domain"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDate = "2024-06-15" // Saturday

func testCatalog() *memory.Catalog {
	return memory.NewCatalog(
		[]domain.Spot{{ID: "cijin", Name: "Cijin Beach", Coordinates: domain.Coordinates{Lat: 22.6080, Lng: 120.2652}}},
		[]domain.POI{
			{ID: "poi_cafe", LocationID: "cijin", Name: "Harbor Cafe", Category: domain.CategoryCafe, Lat: 22.6120, Lng: 120.2680, PriceTier: domain.PriceMid},
			{ID: "poi_food", LocationID: "cijin", Name: "Seafood Street", Category: domain.CategoryFood, Lat: 22.6150, Lng: 120.2690, PriceTier: domain.PriceMid, Tags: []string{"seafood"}},
			{ID: "poi_far", LocationID: "cijin", Name: "Far Temple", Category: domain.CategoryCulture, Lat: 22.7000, Lng: 120.3000},
		},
	)
}

func testConditions() *memory.StaticConditions {
	return memory.NewStaticConditions([]domain.ConditionSnapshot{{
		Sea:     domain.SeaState{LocationID: "cijin", Date: testDate, WaveHeightM: 1.0, WavePeriodS: 8},
		Weather: domain.Weather{LocationID: "cijin", Date: testDate, WindSpeedMS: 5, RainfallPct: 10},
	}})
}

func testHours() *memory.OpenHours {
	return memory.NewOpenHours(map[string]domain.WeeklySchedule{
		"poi_cafe": {
			time.Saturday: nil,
			time.Sunday:   {{Open: 8 * 60, Close: 17 * 60}},
		},
	})
}

func newPlanHandler() *PlanHandler {
	return &PlanHandler{Catalog: testCatalog(), Conditions: testConditions(), Hours: testHours()}
}

func postJSON(t *testing.T, h http.HandlerFunc, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	b, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func planRequest() dto.PlanRequest {
	budget := 1000
	return dto.PlanRequest{
		LocationID: "cijin",
		Date:       testDate,
		StartTime:  "06:30",
		EndTime:    "18:30",
		Mobility:   "scooter",
		Budget:     &budget,
	}
}

func TestPlan_BuildsTimeline(t *testing.T) {
	rec := postJSON(t, newPlanHandler().Plan, "/plans", planRequest())
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var res dto.PlanDay
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))

	require.Len(t, res.Timeline, 4)
	assert.Equal(t, "surf", res.Timeline[0].Type)
	assert.Equal(t, "06:30", res.Timeline[0].Start)
	assert.Equal(t, "cafe", res.Timeline[1].Type)
	assert.Equal(t, "food", res.Timeline[2].Type)
	assert.Equal(t, "culture", res.Timeline[3].Type)
	assert.Equal(t, 550, res.EstimatedTotalCost)
	assert.Empty(t, res.Warnings)
	require.NotNil(t, res.Timeline[1].TravelLeg)
	assert.Equal(t, "scooter", res.Timeline[1].TravelLeg.Mode)
}

func TestPlan_CheckOpenHoursAddsWarning(t *testing.T) {
	req := planRequest()
	req.CheckOpenHours = true

	rec := postJSON(t, newPlanHandler().Plan, "/plans", req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var res dto.PlanDay
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "Harbor Cafe may be closed")
	assert.Contains(t, res.Warnings[0], "Saturday")
}

func TestPlan_InvalidInputIsBadRequest(t *testing.T) {
	cases := map[string]func(*dto.PlanRequest){
		"mobility":   func(r *dto.PlanRequest) { r.Mobility = "jetpack" },
		"date":       func(r *dto.PlanRequest) { r.Date = "15/06/2024" },
		"window":     func(r *dto.PlanRequest) { r.StartTime = "19:00" },
		"price tier": func(r *dto.PlanRequest) { r.Preferences.MaxPriceTier = "cheap" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			req := planRequest()
			mutate(&req)
			rec := postJSON(t, newPlanHandler().Plan, "/plans", req)
			assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
		})
	}
}

func TestPlan_RejectsUnknownFieldsAndWrongMethod(t *testing.T) {
	h := newPlanHandler()

	req := httptest.NewRequest(http.MethodPost, "/plans", bytes.NewBufferString(`{"location_id":"cijin","nope":1}`))
	rec := httptest.NewRecorder()
	h.Plan(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/plans", nil)
	rec = httptest.NewRecorder()
	h.Plan(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, http.MethodPost, rec.Header().Get("Allow"))
}

func TestPlan_ConditionsFailureIsServerError(t *testing.T) {
	req := planRequest()
	req.Date = "2024-06-16"

	rec := postJSON(t, newPlanHandler().Plan, "/plans", req)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "internal server error")
}

func TestEdit_RemoveRecomputesTotal(t *testing.T) {
	rec := postJSON(t, newPlanHandler().Plan, "/plans", planRequest())
	require.Equal(t, http.StatusOK, rec.Code)

	var plan dto.PlanDay
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &plan))

	rec = postJSON(t, newPlanHandler().Edit, "/plans/edit", dto.EditPlanRequest{
		Plan:   plan,
		Action: "remove",
		Index:  2,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var edited dto.PlanDay
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &edited))
	assert.Len(t, edited.Timeline, 3)
	assert.Equal(t, 200, edited.EstimatedTotalCost)
}

func TestEdit_AddAndBadIndex(t *testing.T) {
	cost := 80
	plan := dto.PlanDay{LocationID: "cijin", Date: testDate, Mobility: "walk", Timeline: []dto.TimelineEntry{}}
	entry := dto.TimelineEntry{Type: "view", Title: "Pier", Start: "17:00", End: "18:00", BudgetCost: &cost}

	rec := postJSON(t, newPlanHandler().Edit, "/plans/edit", dto.EditPlanRequest{Plan: plan, Action: "add", Index: 0, Entry: &entry})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var edited dto.PlanDay
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &edited))
	require.Len(t, edited.Timeline, 1)
	assert.Equal(t, 80, edited.EstimatedTotalCost)

	rec = postJSON(t, newPlanHandler().Edit, "/plans/edit", dto.EditPlanRequest{Plan: plan, Action: "replace", Index: 3, Entry: &entry})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	bad := entry
	bad.Start = "25:00"
	rec = postJSON(t, newPlanHandler().Edit, "/plans/edit", dto.EditPlanRequest{Plan: plan, Action: "add", Index: 0, Entry: &bad})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSpots_List(t *testing.T) {
	h := &SpotHandler{Spots: testCatalog()}
	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/spots", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var res dto.ListSpotResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Len(t, res.Spots, 1)
	assert.Equal(t, "cijin", res.Spots[0].ID)
}

func TestPOIs_FilterByCategoryAndRadius(t *testing.T) {
	cat := testCatalog()
	h := &POIHandler{Catalog: cat, Spots: cat}

	get := func(target string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		h.List(rec, httptest.NewRequest(http.MethodGet, target, nil))
		return rec
	}

	rec := get("/pois?location=cijin&radius_km=2")
	require.Equal(t, http.StatusOK, rec.Code)
	var res dto.ListPOIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Len(t, res.POIs, 2)
	assert.Equal(t, "poi_cafe", res.POIs[0].ID)
	require.NotNil(t, res.POIs[0].DistanceKm)
	assert.Less(t, *res.POIs[0].DistanceKm, 1.0)

	rec = get("/pois?location=cijin&categories=culture")
	require.Equal(t, http.StatusOK, rec.Code)
	res = dto.ListPOIResponse{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Len(t, res.POIs, 1)
	assert.Equal(t, "poi_far", res.POIs[0].ID)

	assert.Equal(t, http.StatusBadRequest, get("/pois").Code)
	assert.Equal(t, http.StatusBadRequest, get("/pois?location=cijin&categories=casino").Code)
	assert.Equal(t, http.StatusBadRequest, get("/pois?location=cijin&radius_km=-1").Code)
	assert.Equal(t, http.StatusNotFound, get("/pois?location=atlantis").Code)
}

func TestOpenHours_Get(t *testing.T) {
	h := &OpenHoursHandler{Hours: testHours()}

	rec := httptest.NewRecorder()
	h.Get(rec, httptest.NewRequest(http.MethodGet, "/open-hours?poi_id=poi_cafe&at=2024-06-16T09:00:00%2B08:00", nil))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var res dto.OpenHoursResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, []dto.OpenPeriod{{Open: "08:00", Close: "17:00"}}, res.Hours["sun"])
	assert.Empty(t, res.Hours["sat"])
	require.NotNil(t, res.IsOpen)
	assert.True(t, *res.IsOpen)

	rec = httptest.NewRecorder()
	h.Get(rec, httptest.NewRequest(http.MethodGet, "/open-hours?poi_id=poi_cafe&at=yesterday", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRoute_FromPOIs(t *testing.T) {
	cat := testCatalog()
	h := &RouteHandler{Catalog: cat, Spots: cat}

	rec := postJSON(t, h.Route, "/routes", dto.RouteRequest{
		LocationID: "cijin",
		POIIDs:     []string{"poi_food", "poi_cafe"},
		Mobility:   "walk",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var res dto.RouteResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Len(t, res.Stops, 3)
	assert.Equal(t, "Cijin Beach", res.Stops[0].Name)
	assert.Equal(t, "Seafood Street", res.Stops[1].Name)
	assert.Greater(t, res.TotalKm, 0.0)
	assert.Greater(t, res.TotalMins, 0)

	rec = postJSON(t, h.Route, "/routes", dto.RouteRequest{LocationID: "cijin", POIIDs: []string{"ghost"}, Mobility: "walk"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRoute_ExplicitStops(t *testing.T) {
	h := &RouteHandler{}

	rec := postJSON(t, h.Route, "/routes", dto.RouteRequest{
		Stops: []dto.RouteStop{
			{Lat: 10, Lng: 20, Name: "A"},
			{Lat: 11, Lng: 20, Name: "B"},
		},
		Mobility: "car",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var res dto.RouteResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.InDelta(t, 111.2, res.TotalKm, 1e-9)
	assert.Equal(t, 223, res.TotalMins)

	rec = postJSON(t, h.Route, "/routes", dto.RouteRequest{Stops: []dto.RouteStop{{Name: "A"}}, Mobility: "hovercraft"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = postJSON(t, h.Route, "/routes", dto.RouteRequest{Mobility: "car"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealth(t *testing.T) {
	ok := &HealthHandler{Ping: func(context.Context) error { return nil }}
	rec := httptest.NewRecorder()
	ok.Get(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	down := &HealthHandler{Ping: func(context.Context) error { return errors.New("db gone") }}
	rec = httptest.NewRecorder()
	down.Get(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	rec = httptest.NewRecorder()
	(&HealthHandler{}).Get(rec, httptest.NewRequest(http.MethodPost, "/health", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
