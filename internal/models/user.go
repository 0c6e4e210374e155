package models

import "time"

// User is the local device user. Timestamps are stored as text.
type User struct {
	ID          int64  `json:"id"`
	CreatedAt   string `json:"created_at"`
	LastLoginAt string `json:"last_login_at"`
}

type UserStats struct {
	UserID            int64   `json:"user_id"`
	CurrentStreak     int     `json:"current_streak"`
	LongestStreak     int     `json:"longest_streak"`
	LastCheckinDate   *string `json:"last_checkin_date"`
	TotalScore        int     `json:"total_score"`
	TotalWordsLearned int     `json:"total_words_learned"`
}

// CheckIn advances the streak for the given day. Checking in twice on the
// same day changes nothing; a day after the last check-in extends the
// streak; any other day starts a new streak of one.
func (s UserStats) CheckIn(day time.Time) UserStats {
	today := day.Format(DateLayout)
	if s.LastCheckinDate != nil {
		if *s.LastCheckinDate == today {
			return s
		}
		last, err := time.Parse(DateLayout, *s.LastCheckinDate)
		if err == nil && last.AddDate(0, 0, 1).Format(DateLayout) == today {
			s.CurrentStreak++
		} else {
			s.CurrentStreak = 1
		}
	} else {
		s.CurrentStreak = 1
	}
	if s.CurrentStreak > s.LongestStreak {
		s.LongestStreak = s.CurrentStreak
	}
	s.LastCheckinDate = &today
	return s
}

// UserWordData is the per user, per word review state. NextReviewAt is set
// by the caller; nothing here schedules reviews.
type UserWordData struct {
	UserID         int64   `json:"user_id"`
	WordID         int64   `json:"word_id"`
	MasteryLevel   int     `json:"mastery_level"`
	NextReviewAt   *string `json:"next_review_at"`
	LastReviewedAt *string `json:"last_reviewed_at"`
	IncorrectCount int     `json:"incorrect_count"`
	IsLearned      bool    `json:"is_learned"`
}

// ProgressUpdate is one review outcome reported by a client.
type ProgressUpdate struct {
	WordID       int64   `json:"word_id"`
	MasteryLevel int     `json:"mastery_level"`
	NextReviewAt *string `json:"next_review_at"`
	Correct      bool    `json:"correct"`
	Learned      bool    `json:"learned"`
}
