package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/wordspark/echo/internal/models"
)

// MockPlanService is a mock implementation of services.PlanService
type MockPlanService struct {
	mock.Mock
}

func (m *MockPlanService) DailyPlan(ctx context.Context, date string) (*models.DailyLearningPlan, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DailyLearningPlan), args.Error(1)
}

func (m *MockPlanService) Today(ctx context.Context) (*models.DailyLearningPlan, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DailyLearningPlan), args.Error(1)
}

func (m *MockPlanService) WordCount(ctx context.Context, date string) (int, error) {
	args := m.Called(ctx, date)
	return args.Int(0), args.Error(1)
}
