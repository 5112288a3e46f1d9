package api

import (
	"coastal-day-planner/internal/api/handlers"
	"coastal-day-planner/internal/ports"
	"context"
	"net/http"
)

// Deps are the ports the HTTP layer needs. Hours may be nil, in which case
// plan requests ignore check_open_hours. Ping backs /health.
type Deps struct {
	Catalog    ports.POICatalog
	Spots      ports.SpotRepository
	Conditions ports.ConditionsProvider
	Hours      ports.OpenHoursProvider
	Ping       func(ctx context.Context) error
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
func NewRouter(d Deps) http.Handler {
	mux := http.NewServeMux()

	healthHandler := &handlers.HealthHandler{Ping: d.Ping}
	spotHandler := &handlers.SpotHandler{Spots: d.Spots}
	poiHandler := &handlers.POIHandler{Catalog: d.Catalog, Spots: d.Spots}
	hoursHandler := &handlers.OpenHoursHandler{Hours: d.Hours}
	planHandler := &handlers.PlanHandler{
		Catalog:    d.Catalog,
		Conditions: d.Conditions,
		Hours:      d.Hours,
	}
	routeHandler := &handlers.RouteHandler{Catalog: d.Catalog, Spots: d.Spots}

	mux.HandleFunc("/health", healthHandler.Get)
	mux.HandleFunc("/spots", spotHandler.List)
	mux.HandleFunc("/pois", poiHandler.List)
	if d.Hours != nil {
		mux.HandleFunc("/open-hours", hoursHandler.Get)
	}
	mux.HandleFunc("/plans", planHandler.Plan)
	mux.HandleFunc("/plans/edit", planHandler.Edit)
	mux.HandleFunc("/routes", routeHandler.Route)

	return requestIDMiddleware(loggingMiddleware(mux))
}
