package handlers

import (
	"coastal-day-planner/internal/api/dto"
	"coastal-day-planner/internal/domain"
	"coastal-day-planner/internal/ports"
	"coastal-day-planner/internal/services"
	"net/http"
	"strings"
)

type PlanHandler struct {
	Catalog    ports.POICatalog
	Conditions ports.ConditionsProvider
	Hours      ports.OpenHoursProvider
}

// Plan builds a one-day itinerary. With check_open_hours set, entries whose
// POI is closed at their start time add warnings after the built-in ones.
func (h *PlanHandler) Plan(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var req dto.PlanRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	tier, err := domain.ParsePriceTier(req.Preferences.MaxPriceTier)
	if err != nil {
		writeServiceError(w, r, "plan", err)
		return
	}

	svcReq := services.BuildItineraryRequest{
		LocationID: strings.TrimSpace(req.LocationID),
		Date:       strings.TrimSpace(req.Date),
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		Mobility:   domain.Mobility(strings.ToLower(strings.TrimSpace(req.Mobility))),
		Budget:     req.Budget,
		Preferences: services.Preferences{
			WantSunset:   req.Preferences.WantSunset,
			WantSeafood:  req.Preferences.WantSeafood,
			NeedRental:   req.Preferences.NeedRental,
			NeedShower:   req.Preferences.NeedShower,
			MaxPriceTier: tier,
		},
	}

	ctx := r.Context()

	plan, err := services.BuildItinerary(ctx, svcReq, h.Catalog, h.Conditions)
	if err != nil {
		writeServiceError(w, r, "plan", err)
		return
	}

	if req.CheckOpenHours && h.Hours != nil {
		warnings, err := services.CheckAvailability(ctx, plan, h.Hours)
		if err != nil {
			writeServiceError(w, r, "plan", err)
			return
		}
		plan.Warnings = append(plan.Warnings, warnings...)
	}

	writeJSON(w, r, http.StatusOK, toPlanDTO(plan))
}

// Edit applies one replace/remove/add action to a client-held plan and
// returns the edited copy.
func (h *PlanHandler) Edit(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var req dto.EditPlanRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	action, err := services.ParseEditAction(req.Action)
	if err != nil {
		writeServiceError(w, r, "edit plan", err)
		return
	}

	plan, err := fromPlanDTO(req.Plan)
	if err != nil {
		writeServiceError(w, r, "edit plan", err)
		return
	}

	var entry *domain.TimelineEntry
	if req.Entry != nil {
		e, err := fromEntryDTO(*req.Entry)
		if err != nil {
			writeServiceError(w, r, "edit plan", err)
			return
		}
		entry = &e
	}

	out, err := services.ApplyEdit(plan, action, req.Index, entry)
	if err != nil {
		writeServiceError(w, r, "edit plan", err)
		return
	}

	writeJSON(w, r, http.StatusOK, toPlanDTO(out))
}
