package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/wordspark/echo/internal/models"
)

// MockPlanRepository is a mock implementation of repository.PlanRepository
type MockPlanRepository struct {
	mock.Mock
}

func (m *MockPlanRepository) Get(ctx context.Context, userID int64) (*models.LearningPlan, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.LearningPlan), args.Error(1)
}

func (m *MockPlanRepository) Save(ctx context.Context, plan models.LearningPlan) error {
	args := m.Called(ctx, plan)
	return args.Error(0)
}

func (m *MockPlanRepository) RemoveFromQueue(ctx context.Context, userID, wordID int64) error {
	args := m.Called(ctx, userID, wordID)
	return args.Error(0)
}

func (m *MockPlanRepository) AppendToQueue(ctx context.Context, userID int64, ids []int64) (int, error) {
	args := m.Called(ctx, userID, ids)
	return args.Int(0), args.Error(1)
}
