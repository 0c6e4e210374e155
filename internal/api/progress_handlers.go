package api

import (
	"net/http"

	"github.com/wordspark/echo/internal/logger"
	"github.com/wordspark/echo/internal/models"
)

type progressRequest struct {
	MasteryLevel int     `json:"mastery_level"`
	NextReviewAt *string `json:"next_review_at"`
	Correct      bool    `json:"correct"`
	Learned      bool    `json:"learned"`
}

func (s *Server) handleRecordProgress(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	id, err := idParam(r, "id")
	if err != nil {
		handleError(w, r, err)
		return
	}

	var req progressRequest
	if err := decodeBody(r, &req); err != nil {
		handleError(w, r, err)
		return
	}
	log.Debug("recording progress for word %d", id)

	data, err := s.ProgressService.Record(r.Context(), models.ProgressUpdate{
		WordID:       id,
		MasteryLevel: req.MasteryLevel,
		NextReviewAt: req.NextReviewAt,
		Correct:      req.Correct,
		Learned:      req.Learned,
	})
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, data)
}

func (s *Server) handleGetProgress(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		handleError(w, r, err)
		return
	}

	data, err := s.ProgressService.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, data)
}
