package services

import "time"

// PlanConfig holds the settings shared by plan, calendar and user services
type PlanConfig struct {
	UserID           int64
	DefaultDailyGoal int
	Location         *time.Location
	WeekStart        time.Weekday
	Now              func() time.Time // nil = time.Now
}

func (c PlanConfig) location() *time.Location {
	if c.Location == nil {
		return time.Local
	}
	return c.Location
}

// now returns the current time in the configured location.
func (c PlanConfig) now() time.Time {
	if c.Now == nil {
		return time.Now().In(c.location())
	}
	return c.Now().In(c.location())
}

// today is midnight of the current day in the configured location.
func (c PlanConfig) today() time.Time {
	return startOfDay(c.now())
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
