package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)
	r.Use(securityHeadersMiddleware)

	r.Get("/health", s.handleHealth)
	r.Get("/ready", s.handleReady)

	r.Group(func(r chi.Router) {
		if s.RequestTimeout > 0 {
			r.Use(timeoutMiddleware(s.RequestTimeout))
		}

		r.Get("/words", s.handleListWords)
		r.Get("/words/random", s.handleRandomWords)
		r.Post("/words/import", s.handleImportWords)
		r.Get("/words/{id}", s.handleGetWord)
		r.Get("/words/{id}/progress", s.handleGetProgress)
		r.Post("/words/{id}/progress", s.handleRecordProgress)

		r.Get("/sentence", s.handleDailySentence)
		r.Get("/pronunciations/{word}", s.handlePronounce)

		r.Get("/plans/today", s.handleTodayPlan)
		r.Get("/plans/{date}", s.handleDailyPlan)
		r.Get("/calendar", s.handleCalendar)

		r.Get("/user", s.handleCurrentUser)
		r.Get("/user/stats", s.handleUserStats)
		r.Post("/user/checkin", s.handleCheckIn)
	})

	return r
}
