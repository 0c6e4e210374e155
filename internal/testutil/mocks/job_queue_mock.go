package mocks

import (
	"github.com/stretchr/testify/mock"
	"github.com/wordspark/echo/internal/models"
)

// MockJobQueue is a mock implementation of jobs.JobQueue
type MockJobQueue struct {
	mock.Mock
}

func (m *MockJobQueue) EnqueueImport(words []models.Word) error {
	args := m.Called(words)
	return args.Error(0)
}
