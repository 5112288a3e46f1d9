package handlers

import (
	"coastal-day-planner/internal/api/dto"
	"coastal-day-planner/internal/domain"
	"coastal-day-planner/internal/ports"
	"net/http"
	"strings"
	"time"
)

type OpenHoursHandler struct {
	Hours ports.OpenHoursProvider
}

// Get serves GET /open-hours?poi_id=&at=. When at (RFC 3339) is given the
// response also says whether the POI is open at that instant, evaluated on
// the wall clock of the supplied offset.
func (h *OpenHoursHandler) Get(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	q := r.URL.Query()

	poiID := strings.TrimSpace(q.Get("poi_id"))
	if poiID == "" {
		writeError(w, r, http.StatusBadRequest, "poi_id is required")
		return
	}

	var at *time.Time
	if raw := strings.TrimSpace(q.Get("at")); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "at must be an RFC 3339 timestamp")
			return
		}
		at = &t
	}

	sched, err := h.Hours.GetOpenHours(r.Context(), poiID)
	if err != nil {
		writeServiceError(w, r, "get open hours", err)
		return
	}

	res := dto.OpenHoursResponse{
		POIID: poiID,
		Hours: make(map[string][]dto.OpenPeriod, len(sched)),
	}
	for wd, periods := range sched {
		out := make([]dto.OpenPeriod, 0, len(periods))
		for _, p := range periods {
			out = append(out, dto.OpenPeriod{Open: p.Open.String(), Close: p.Close.String()})
		}
		res.Hours[domain.WeekdayKey(wd)] = out
	}

	if at != nil {
		open := sched.IsOpenAt(*at)
		res.IsOpen = &open
	}

	writeJSON(w, r, http.StatusOK, res)
}
