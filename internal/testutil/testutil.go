package testutil

import (
	"time"

	"echolingo/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestTranslation creates a test translation
func NewTestTranslation(id int64, source, target, keywords string) *domain.Translation {
	now := time.Now()
	return &domain.Translation{
		ID:         id,
		SourceText: source,
		TargetText: target,
		Keywords:   keywords,
		Category:   "daily",
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// NewTestProgress creates a zero-valued progress record with the given last study date
func NewTestProgress(lastStudyDate time.Time) *domain.Progress {
	return &domain.Progress{
		ID:            domain.ProgressID,
		LastStudyDate: lastStudyDate,
		Achievements:  []string{},
	}
}
