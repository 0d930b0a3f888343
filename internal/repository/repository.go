package repository

import (
	"time"

	"echolingo/internal/domain"
)

// TranslationRepository defines translation data operations
type TranslationRepository interface {
	Save(t *domain.Translation) error
	GetByID(id int64) (*domain.Translation, error)
	ListRecent(limit int) ([]domain.Translation, error)
	ListByCategory(category string) ([]domain.Translation, error)
	ListByDateRange(start, end time.Time) ([]domain.Translation, error)
	ListAll() ([]domain.Translation, error)
	IncrementPlayCount(id int64) error
	SetFavorite(id int64, favorite bool) error
	Delete(id int64) error
}

// ProgressRepository defines operations on the singleton progress record
type ProgressRepository interface {
	Get() (*domain.Progress, error)
	Put(p *domain.Progress) error
}

// SummaryRepository defines daily summary operations
type SummaryRepository interface {
	GetByDate(date string) (*domain.DailySummary, error)
	Save(s *domain.DailySummary) error
}
