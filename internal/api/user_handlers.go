package api

import "net/http"

type checkInRequest struct {
	Date string `json:"date"`
}

func (s *Server) handleCurrentUser(w http.ResponseWriter, r *http.Request) {
	user, err := s.UserService.Current(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, user)
}

func (s *Server) handleUserStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.UserService.Stats(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, stats)
}

// handleCheckIn records a check-in for ?date= or the JSON body's date,
// today when neither is given.
func (s *Server) handleCheckIn(w http.ResponseWriter, r *http.Request) {
	req := checkInRequest{Date: r.URL.Query().Get("date")}
	if err := decodeBody(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	stats, err := s.UserService.CheckIn(r.Context(), req.Date)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, stats)
}
