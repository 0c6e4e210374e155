package services_test

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wordspark/echo/internal/errors"
	"github.com/wordspark/echo/internal/models"
	"github.com/wordspark/echo/internal/services"
	"github.com/wordspark/echo/internal/testutil"
	"github.com/wordspark/echo/internal/testutil/mocks"
)

type planMocks struct {
	plans    *mocks.MockPlanRepository
	progress *mocks.MockProgressRepository
	words    *mocks.MockWordRepository
}

func newPlanService(t *testing.T) (services.PlanService, planMocks) {
	m := planMocks{
		plans:    new(mocks.MockPlanRepository),
		progress: new(mocks.MockProgressRepository),
		words:    new(mocks.MockWordRepository),
	}
	t.Cleanup(func() {
		m.plans.AssertExpectations(t)
		m.progress.AssertExpectations(t)
		m.words.AssertExpectations(t)
	})
	cfg := services.PlanConfig{UserID: 1, DefaultDailyGoal: 20}
	return services.NewPlanService(m.plans, m.progress, m.words, cfg), m
}

func wordsWithIDs(ids ...int64) []models.Word {
	out := make([]models.Word, 0, len(ids))
	for _, id := range ids {
		out = append(out, models.Word{ID: id, Text: "w"})
	}
	return out
}

func planWithQueue(goal int, queue string) *models.LearningPlan {
	return &models.LearningPlan{UserID: 1, DefaultDailyGoal: goal, LearningQueue: testutil.StrPtr(queue)}
}

func TestDailyPlan_InvalidDate(t *testing.T) {
	svc, _ := newPlanService(t)

	_, err := svc.DailyPlan(context.Background(), "20/10/2025")
	appErr, ok := errors.As(err)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeValidation, appErr.Code)
}

func TestDailyPlan_NoPlanRow(t *testing.T) {
	svc, m := newPlanService(t)
	m.plans.On("Get", mock.Anything, int64(1)).Return(nil, nil)

	plan, err := svc.DailyPlan(context.Background(), "2025-10-20")
	require.NoError(t, err)
	assert.Equal(t, "2025-10-20", plan.Date)
	assert.Equal(t, 20, plan.DailyGoal)
	assert.Empty(t, plan.ReviewWords)
	assert.Empty(t, plan.NewWords)
	assert.NotNil(t, plan.NewWords)
}

func TestDailyPlan_ReviewsThenNewWords(t *testing.T) {
	svc, m := newPlanService(t)
	m.plans.On("Get", mock.Anything, int64(1)).Return(planWithQueue(5, "[7, 8, 7, 9, 10]"), nil)
	m.progress.On("DueForReview", mock.Anything, int64(1), "2025-10-20", 5).Return(wordsWithIDs(1, 2), nil)
	m.words.On("UnclaimedFromQueue", mock.Anything, int64(1), []int64{7, 8, 9, 10}, 3).Return(wordsWithIDs(7, 8, 9), nil)

	plan, err := svc.DailyPlan(context.Background(), "2025-10-20")
	require.NoError(t, err)
	assert.Len(t, plan.ReviewWords, 2)
	assert.Len(t, plan.NewWords, 3)
	assert.Equal(t, 5, plan.TotalWords())
	assert.Equal(t, 5, plan.DailyGoal)
}

func TestDailyPlan_ReviewsFillGoal(t *testing.T) {
	svc, m := newPlanService(t)
	m.plans.On("Get", mock.Anything, int64(1)).Return(planWithQueue(2, "[7, 8]"), nil)
	m.progress.On("DueForReview", mock.Anything, int64(1), "2025-10-20", 2).Return(wordsWithIDs(1, 2), nil)

	plan, err := svc.DailyPlan(context.Background(), "2025-10-20")
	require.NoError(t, err)
	assert.Len(t, plan.ReviewWords, 2)
	assert.Empty(t, plan.NewWords)
	m.words.AssertNotCalled(t, "UnclaimedFromQueue", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDailyPlan_QueueEdgeCases(t *testing.T) {
	tests := []struct {
		name  string
		queue *string
	}{
		{name: "malformed json", queue: testutil.StrPtr("{not json")},
		{name: "empty array", queue: testutil.StrPtr("[]")},
		{name: "null column", queue: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newPlanService(t)
			m.plans.On("Get", mock.Anything, int64(1)).Return(&models.LearningPlan{UserID: 1, DefaultDailyGoal: 10, LearningQueue: tt.queue}, nil)
			m.progress.On("DueForReview", mock.Anything, int64(1), "2025-10-20", 10).Return(nil, nil)

			plan, err := svc.DailyPlan(context.Background(), "2025-10-20")
			require.NoError(t, err)
			assert.Empty(t, plan.NewWords)
			assert.Empty(t, plan.ReviewWords)
			assert.Equal(t, 10, plan.DailyGoal)
		})
	}
}

func TestDailyPlan_GoalOverride(t *testing.T) {
	svc, m := newPlanService(t)
	plan := planWithQueue(20, "[1, 2, 3]")
	plan.DailyGoalOverrides = testutil.StrPtr(`{"2025-10-20": 1}`)
	m.plans.On("Get", mock.Anything, int64(1)).Return(plan, nil)
	m.progress.On("DueForReview", mock.Anything, int64(1), "2025-10-20", 1).Return(nil, nil)
	m.words.On("UnclaimedFromQueue", mock.Anything, int64(1), []int64{1, 2, 3}, 1).Return(wordsWithIDs(1), nil)

	got, err := svc.DailyPlan(context.Background(), "2025-10-20")
	require.NoError(t, err)
	assert.Equal(t, 1, got.DailyGoal)
	assert.Len(t, got.NewWords, 1)
}

func TestDailyPlan_RepositoryErrors(t *testing.T) {
	boom := stderrors.New("disk I/O error")

	t.Run("plan", func(t *testing.T) {
		svc, m := newPlanService(t)
		m.plans.On("Get", mock.Anything, int64(1)).Return(nil, boom)

		_, err := svc.DailyPlan(context.Background(), "2025-10-20")
		appErr, ok := errors.As(err)
		require.True(t, ok)
		assert.Equal(t, errors.ErrCodeInternal, appErr.Code)
	})

	t.Run("reviews", func(t *testing.T) {
		svc, m := newPlanService(t)
		m.plans.On("Get", mock.Anything, int64(1)).Return(planWithQueue(5, "[1]"), nil)
		m.progress.On("DueForReview", mock.Anything, int64(1), "2025-10-20", 5).Return(nil, boom)

		_, err := svc.DailyPlan(context.Background(), "2025-10-20")
		assert.ErrorIs(t, err, boom)
	})

	t.Run("new words", func(t *testing.T) {
		svc, m := newPlanService(t)
		m.plans.On("Get", mock.Anything, int64(1)).Return(planWithQueue(5, "[1]"), nil)
		m.progress.On("DueForReview", mock.Anything, int64(1), "2025-10-20", 5).Return(nil, nil)
		m.words.On("UnclaimedFromQueue", mock.Anything, int64(1), []int64{1}, 5).Return(nil, boom)

		_, err := svc.DailyPlan(context.Background(), "2025-10-20")
		assert.ErrorIs(t, err, boom)
	})
}

func TestWordCount(t *testing.T) {
	svc, m := newPlanService(t)
	m.plans.On("Get", mock.Anything, int64(1)).Return(planWithQueue(4, "[5, 6]"), nil)
	m.progress.On("DueForReview", mock.Anything, int64(1), "2025-10-20", 4).Return(wordsWithIDs(1), nil)
	m.words.On("UnclaimedFromQueue", mock.Anything, int64(1), []int64{5, 6}, 3).Return(wordsWithIDs(5, 6), nil)

	n, err := svc.WordCount(context.Background(), "2025-10-20")
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}
