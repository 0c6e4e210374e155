package models

import (
	"encoding/json"
	"time"
)

// DateLayout is the calendar date format used for plans and check-ins.
const DateLayout = "2006-01-02"

// LearningPlan is a row of the LearningPlans table. LearningQueue is a JSON
// array of word ids still to be introduced, front first.
type LearningPlan struct {
	UserID             int64   `json:"user_id"`
	DefaultDailyGoal   int     `json:"default_daily_goal"`
	LearningQueue      *string `json:"learning_queue"`
	DailyGoalOverrides *string `json:"daily_goal_overrides"`
}

// Queue decodes the learning queue. An empty or NULL column is an empty
// queue; ok is false only when the column holds something that is not a
// JSON array of integers.
func (p LearningPlan) Queue() (ids []int64, ok bool) {
	if p.LearningQueue == nil || *p.LearningQueue == "" {
		return nil, true
	}
	if err := json.Unmarshal([]byte(*p.LearningQueue), &ids); err != nil {
		return nil, false
	}
	return ids, true
}

// GoalOverrides decodes the per date goal overrides, or nil.
func (p LearningPlan) GoalOverrides() map[string]int {
	if p.DailyGoalOverrides == nil {
		return nil
	}
	var out map[string]int
	if err := json.Unmarshal([]byte(*p.DailyGoalOverrides), &out); err != nil {
		return nil
	}
	return out
}

// GoalFor returns the goal for a date: its override when one exists,
// the default goal otherwise.
func (p LearningPlan) GoalFor(date string) int {
	if goal, ok := p.GoalOverrides()[date]; ok && goal >= 0 {
		return goal
	}
	return p.DefaultDailyGoal
}

// EncodeQueue renders ids in the stored JSON form.
func EncodeQueue(ids []int64) string {
	if ids == nil {
		ids = []int64{}
	}
	b, _ := json.Marshal(ids)
	return string(b)
}

// DailyLearningPlan is the derived view of one day: words due for review
// and new words drawn from the learning queue.
type DailyLearningPlan struct {
	Date        string `json:"date"`
	ReviewWords []Word `json:"review_words"`
	NewWords    []Word `json:"new_words"`
	DailyGoal   int    `json:"daily_goal"`
}

func (p DailyLearningPlan) TotalWords() int {
	return len(p.ReviewWords) + len(p.NewWords)
}

func (p DailyLearningPlan) IsToday(now time.Time) bool {
	return p.Date == now.Format(DateLayout)
}

// CalendarDay is one cell of a month grid.
type CalendarDay struct {
	Date             time.Time `json:"-"`
	DateString       string    `json:"date"`
	DayNumber        int       `json:"day"`
	IsInCurrentMonth bool      `json:"in_current_month"`
	HasLearningPlan  bool      `json:"has_learning_plan"`
	WordCount        int       `json:"word_count"`
}
