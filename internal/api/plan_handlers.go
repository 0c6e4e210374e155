package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) handleTodayPlan(w http.ResponseWriter, r *http.Request) {
	plan, err := s.PlanService.Today(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, plan)
}

func (s *Server) handleDailyPlan(w http.ResponseWriter, r *http.Request) {
	plan, err := s.PlanService.DailyPlan(r.Context(), chi.URLParam(r, "date"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, plan)
}

// handleCalendar renders the month grid for ?month=YYYY-MM, the current
// month when absent.
func (s *Server) handleCalendar(w http.ResponseWriter, r *http.Request) {
	days, err := s.CalendarService.MonthOf(r.Context(), r.URL.Query().Get("month"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, days)
}
