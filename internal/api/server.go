package api

import (
	"context"
	"time"

	"github.com/wordspark/echo/internal/jobs"
	"github.com/wordspark/echo/internal/services"
)

// HealthChecker reports whether the backing store answers queries.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

type Server struct {
	WordService     services.WordService
	PlanService     services.PlanService
	CalendarService services.CalendarService
	UserService     services.UserService
	ProgressService services.ProgressService
	JobQueue        jobs.JobQueue
	Health          HealthChecker

	// RequestTimeout bounds every request except health probes. Zero
	// disables it.
	RequestTimeout time.Duration
	// MaxImportBytes caps the body of an import request.
	MaxImportBytes int64
}
