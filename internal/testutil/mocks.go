package testutil

import (
	"context"
	"time"

	"echolingo/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockTranslationRepository is a mock for TranslationRepository
type MockTranslationRepository struct {
	mock.Mock
}

func (m *MockTranslationRepository) Save(t *domain.Translation) error {
	args := m.Called(t)
	return args.Error(0)
}

func (m *MockTranslationRepository) GetByID(id int64) (*domain.Translation, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Translation), args.Error(1)
}

func (m *MockTranslationRepository) ListRecent(limit int) ([]domain.Translation, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Translation), args.Error(1)
}

func (m *MockTranslationRepository) ListByCategory(category string) ([]domain.Translation, error) {
	args := m.Called(category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Translation), args.Error(1)
}

func (m *MockTranslationRepository) ListByDateRange(start, end time.Time) ([]domain.Translation, error) {
	args := m.Called(start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Translation), args.Error(1)
}

func (m *MockTranslationRepository) ListAll() ([]domain.Translation, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Translation), args.Error(1)
}

func (m *MockTranslationRepository) IncrementPlayCount(id int64) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockTranslationRepository) SetFavorite(id int64, favorite bool) error {
	args := m.Called(id, favorite)
	return args.Error(0)
}

func (m *MockTranslationRepository) Delete(id int64) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockProgressRepository is a mock for ProgressRepository
type MockProgressRepository struct {
	mock.Mock
}

func (m *MockProgressRepository) Get() (*domain.Progress, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Progress), args.Error(1)
}

func (m *MockProgressRepository) Put(p *domain.Progress) error {
	args := m.Called(p)
	return args.Error(0)
}

// MockSummaryRepository is a mock for SummaryRepository
type MockSummaryRepository struct {
	mock.Mock
}

func (m *MockSummaryRepository) GetByDate(date string) (*domain.DailySummary, error) {
	args := m.Called(date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailySummary), args.Error(1)
}

func (m *MockSummaryRepository) Save(s *domain.DailySummary) error {
	args := m.Called(s)
	return args.Error(0)
}

// MockTranslator is a mock for the upstream translator
type MockTranslator struct {
	mock.Mock
}

func (m *MockTranslator) Translate(ctx context.Context, text string) (string, error) {
	args := m.Called(ctx, text)
	return args.String(0), args.Error(1)
}
