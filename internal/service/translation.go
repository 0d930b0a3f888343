package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"echolingo/internal/domain"
	"echolingo/internal/repository"

	"go.uber.org/zap"
)

// DefaultCategory is assigned when a translation request names no scenario.
const DefaultCategory = "daily"

// TranslationService runs the translate-persist-aggregate flow. The upstream
// call happens first, so a failed translation leaves no trace in the store;
// progress aggregation only ever sees fully persisted records.
type TranslationService struct {
	translator      Translator
	translationRepo repository.TranslationRepository
	progress        *ProgressService
	logger          *zap.Logger
	now             func() time.Time
}

// NewTranslationService creates a new translation service
func NewTranslationService(
	translator Translator,
	translationRepo repository.TranslationRepository,
	progress *ProgressService,
	logger *zap.Logger,
) *TranslationService {
	return &TranslationService{
		translator:      translator,
		translationRepo: translationRepo,
		progress:        progress,
		logger:          logger,
		now:             time.Now,
	}
}

// Translate translates the source text, persists the result and updates the
// progress record
func (s *TranslationService) Translate(ctx context.Context, sourceText, category string) (*domain.Translation, error) {
	if strings.TrimSpace(sourceText) == "" {
		return nil, fmt.Errorf("source text cannot be empty")
	}
	if category == "" {
		category = DefaultCategory
	}

	targetText, err := s.translator.Translate(ctx, sourceText)
	if err != nil {
		return nil, err
	}

	now := s.now()
	t := &domain.Translation{
		SourceText: sourceText,
		TargetText: targetText,
		Keywords:   ExtractKeywords(targetText),
		Category:   category,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.translationRepo.Save(t); err != nil {
		return nil, err
	}

	if _, err := s.progress.RecordTranslation(t); err != nil {
		return nil, err
	}

	s.logger.Info("Translation recorded",
		zap.Int64("id", t.ID),
		zap.String("category", t.Category),
	)
	return t, nil
}

// Play counts one playback of a stored translation, on the record itself and
// on the cumulative progress counters
func (s *TranslationService) Play(id int64) error {
	t, err := s.translationRepo.GetByID(id)
	if err != nil {
		return err
	}
	if t == nil {
		return ErrNotFound
	}

	if err := s.translationRepo.IncrementPlayCount(id); err != nil {
		return err
	}

	_, err = s.progress.RecordPlay()
	return err
}
