package service

import (
	"strings"

	"echolingo/internal/domain"
	"echolingo/internal/repository"
)

const defaultHistoryLimit = 50

// HistoryService provides read-only views over stored translations, plus the
// two pass-through mutations (favorite toggle and delete).
type HistoryService struct {
	translationRepo repository.TranslationRepository
}

// NewHistoryService creates a new history service
func NewHistoryService(translationRepo repository.TranslationRepository) *HistoryService {
	return &HistoryService{translationRepo: translationRepo}
}

// ListRecent returns translations ordered by creation time descending,
// truncated to limit (default 50 when limit is not positive)
func (s *HistoryService) ListRecent(limit int) ([]domain.Translation, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	return s.translationRepo.ListRecent(limit)
}

// Search returns translations whose source text contains the query
// (case-sensitive) or whose target text contains it case-insensitively,
// in natural store order.
func (s *HistoryService) Search(query string) ([]domain.Translation, error) {
	all, err := s.translationRepo.ListAll()
	if err != nil {
		return nil, err
	}

	lowered := strings.ToLower(query)
	matches := []domain.Translation{}
	for _, t := range all {
		if strings.Contains(t.SourceText, query) ||
			strings.Contains(strings.ToLower(t.TargetText), lowered) {
			matches = append(matches, t)
		}
	}
	return matches, nil
}

// FilterByCategory returns translations with an exact category match.
// The "ALL" sentinel returns the same view as ListRecent.
func (s *HistoryService) FilterByCategory(category string) ([]domain.Translation, error) {
	if category == domain.CategoryAll {
		return s.ListRecent(defaultHistoryLimit)
	}
	return s.translationRepo.ListByCategory(category)
}

// ToggleFavorite flips the favorite flag on a translation and returns the
// updated record
func (s *HistoryService) ToggleFavorite(id int64) (*domain.Translation, error) {
	t, err := s.translationRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrNotFound
	}

	t.IsFavorite = !t.IsFavorite
	if err := s.translationRepo.SetFavorite(id, t.IsFavorite); err != nil {
		return nil, err
	}
	return t, nil
}

// Delete removes a translation from the store
func (s *HistoryService) Delete(id int64) error {
	return s.translationRepo.Delete(id)
}
