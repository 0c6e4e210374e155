package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/wordspark/echo/internal/models"
)

// MockPronunciationRepository is a mock implementation of repository.PronunciationRepository
type MockPronunciationRepository struct {
	mock.Mock
}

func (m *MockPronunciationRepository) Lookup(ctx context.Context, word string) (*models.Pronunciation, error) {
	args := m.Called(ctx, word)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Pronunciation), args.Error(1)
}
