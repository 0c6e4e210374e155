package services

import (
	"context"
	"time"

	"github.com/wordspark/echo/internal/errors"
	"github.com/wordspark/echo/internal/logger"
	"github.com/wordspark/echo/internal/models"
)

// MonthLayout is the format accepted by MonthOf.
const MonthLayout = "2006-01"

// CalendarService builds month grids annotated with planned word counts
type CalendarService interface {
	Month(ctx context.Context, anyDate time.Time) ([]models.CalendarDay, error)
	// MonthOf parses a YYYY-MM month; an empty string means the current month.
	MonthOf(ctx context.Context, month string) ([]models.CalendarDay, error)
}

type calendarService struct {
	plans PlanService
	cfg   PlanConfig
}

// NewCalendarService creates a new CalendarService
func NewCalendarService(plans PlanService, cfg PlanConfig) CalendarService {
	return &calendarService{plans: plans, cfg: cfg}
}

// Month returns whole weeks covering the month of anyDate. In-month days
// from today on carry the plan's word count; every other cell is empty, as
// is a day whose count could not be computed. Only a cancelled context
// fails the month.
func (s *calendarService) Month(ctx context.Context, anyDate time.Time) ([]models.CalendarDay, error) {
	loc := s.cfg.location()
	d := anyDate.In(loc)
	first := time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, loc)
	last := first.AddDate(0, 1, -1)

	log := logger.FromContext(ctx).WithField("month", first.Format(MonthLayout))
	log.Debug("building calendar")

	lead := (int(first.Weekday()) - int(s.cfg.WeekStart) + 7) % 7
	lastColumn := (int(s.cfg.WeekStart) + 6) % 7
	trail := (lastColumn - int(last.Weekday()) + 7) % 7

	days := make([]models.CalendarDay, 0, lead+last.Day()+trail)
	for i := lead; i > 0; i-- {
		days = append(days, emptyDay(first.AddDate(0, 0, -i), false))
	}

	today := s.cfg.today()
	for n := 1; n <= last.Day(); n++ {
		date := time.Date(first.Year(), first.Month(), n, 0, 0, 0, 0, loc)
		if date.Before(today) {
			days = append(days, emptyDay(date, true))
			continue
		}
		day := emptyDay(date, true)
		count, err := s.plans.WordCount(ctx, day.DateString)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			log.Warn("failed to count words for %s, showing none: %v", day.DateString, err)
			days = append(days, day)
			continue
		}
		day.WordCount = count
		day.HasLearningPlan = count > 0
		days = append(days, day)
	}

	for i := 1; i <= trail; i++ {
		days = append(days, emptyDay(last.AddDate(0, 0, i), false))
	}

	log.Debug("calendar built: %d cells", len(days))
	return days, nil
}

func (s *calendarService) MonthOf(ctx context.Context, month string) ([]models.CalendarDay, error) {
	if month == "" {
		return s.Month(ctx, s.cfg.now())
	}
	t, err := time.ParseInLocation(MonthLayout, month, s.cfg.location())
	if err != nil {
		return nil, errors.NewValidationError("month", "must be formatted as YYYY-MM")
	}
	return s.Month(ctx, t)
}

func emptyDay(date time.Time, inMonth bool) models.CalendarDay {
	return models.CalendarDay{
		Date:             date,
		DateString:       date.Format(models.DateLayout),
		DayNumber:        date.Day(),
		IsInCurrentMonth: inMonth,
	}
}
