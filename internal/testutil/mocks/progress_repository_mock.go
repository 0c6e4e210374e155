package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/wordspark/echo/internal/models"
)

// MockProgressRepository is a mock implementation of repository.ProgressRepository
type MockProgressRepository struct {
	mock.Mock
}

func (m *MockProgressRepository) DueForReview(ctx context.Context, userID int64, date string, limit int) ([]models.Word, error) {
	args := m.Called(ctx, userID, date, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Word), args.Error(1)
}

func (m *MockProgressRepository) Get(ctx context.Context, userID, wordID int64) (*models.UserWordData, error) {
	args := m.Called(ctx, userID, wordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserWordData), args.Error(1)
}

func (m *MockProgressRepository) Upsert(ctx context.Context, data models.UserWordData) error {
	args := m.Called(ctx, data)
	return args.Error(0)
}

func (m *MockProgressRepository) RecordReview(ctx context.Context, data models.UserWordData, firstLearned bool) error {
	args := m.Called(ctx, data, firstLearned)
	return args.Error(0)
}
