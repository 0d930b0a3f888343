package service

import (
	"fmt"
	"time"

	"echolingo/internal/domain"
	"echolingo/internal/repository"

	"go.uber.org/zap"
)

// SummaryService produces one DailySummary per calendar date, idempotently.
// A stored summary is returned unchanged on every later request; the day's
// translations are scanned exactly once.
type SummaryService struct {
	summaryRepo     repository.SummaryRepository
	translationRepo repository.TranslationRepository
	logger          *zap.Logger
	now             func() time.Time
}

// NewSummaryService creates a new summary service
func NewSummaryService(
	summaryRepo repository.SummaryRepository,
	translationRepo repository.TranslationRepository,
	logger *zap.Logger,
) *SummaryService {
	return &SummaryService{
		summaryRepo:     summaryRepo,
		translationRepo: translationRepo,
		logger:          logger,
		now:             time.Now,
	}
}

// GetOrCreate returns the cached summary for a date key, or computes and
// stores it from that day's translations on the first request.
func (s *SummaryService) GetOrCreate(date string) (*domain.DailySummary, error) {
	cached, err := s.summaryRepo.GetByDate(date)
	if err != nil {
		return nil, err
	}
	if cached != nil {
		return cached, nil
	}

	start, end, err := domain.DayBounds(date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", date, err)
	}

	translations, err := s.translationRepo.ListByDateRange(start, end)
	if err != nil {
		return nil, err
	}

	summary := buildSummary(date, translations, s.now())
	if err := s.summaryRepo.Save(summary); err != nil {
		return nil, err
	}

	s.logger.Info("Generated daily summary",
		zap.String("date", date),
		zap.Int("translations", summary.TranslationCount),
	)
	return summary, nil
}

func buildSummary(date string, translations []domain.Translation, createdAt time.Time) *domain.DailySummary {
	playCount := 0
	for _, t := range translations {
		playCount += t.PlayCount
	}

	topExpression, topExpressionCount := findTopExpression(translations)

	return &domain.DailySummary{
		Date:               date,
		TranslationCount:   len(translations),
		NewWords:           countUniqueKeywords(translations),
		PlayCount:          playCount,
		StudyTime:          len(translations) * 2,
		TopExpression:      topExpression,
		TopExpressionCount: topExpressionCount,
		NewScenarios:       distinctCategories(translations),
		ProgressIndex:      progressIndex(len(translations)),
		Suggestions:        generateSuggestions(translations),
		CreatedAt:          createdAt,
	}
}

// countUniqueKeywords counts distinct keyword tokens across the day.
// Unlike the cumulative progress counter, tokens are deduplicated here.
func countUniqueKeywords(translations []domain.Translation) int {
	seen := make(map[string]struct{})
	for _, t := range translations {
		for _, token := range t.KeywordTokens() {
			seen[token] = struct{}{}
		}
	}
	return len(seen)
}

// findTopExpression returns the most frequent target-language text of the
// day. Ties go to the expression encountered first in creation order.
func findTopExpression(translations []domain.Translation) (string, int) {
	counts := make(map[string]int)
	for _, t := range translations {
		counts[t.TargetText]++
	}

	topExpression := ""
	topCount := 0
	for _, t := range translations {
		if c := counts[t.TargetText]; c > topCount {
			topExpression = t.TargetText
			topCount = c
		}
	}
	return topExpression, topCount
}

// distinctCategories returns the categories touched that day in
// first-encountered order.
func distinctCategories(translations []domain.Translation) []string {
	seen := make(map[string]struct{})
	categories := []string{}
	for _, t := range translations {
		if _, ok := seen[t.Category]; ok {
			continue
		}
		seen[t.Category] = struct{}{}
		categories = append(categories, t.Category)
	}
	return categories
}

// progressIndex maps the day's translation count onto a coarse 0-4 scale.
func progressIndex(count int) int {
	switch {
	case count == 0:
		return 0
	case count < 5:
		return 1
	case count < 10:
		return 2
	case count < 20:
		return 3
	default:
		return 4
	}
}

// generateSuggestions evaluates three independent rules and appends a fixed
// message for each that fires. The average-play rule is skipped entirely for
// an empty day to avoid dividing by zero.
func generateSuggestions(translations []domain.Translation) []string {
	suggestions := []string{}

	if len(translations) < 5 {
		suggestions = append(suggestions, "Add more input to build up your vocabulary.")
	}

	if len(distinctCategories(translations)) < 3 {
		suggestions = append(suggestions, "Try expressions from different scenarios to vary your study.")
	}

	if len(translations) > 0 {
		totalPlays := 0
		for _, t := range translations {
			totalPlays += t.PlayCount
		}
		avgPlays := float64(totalPlays) / float64(len(translations))
		if avgPlays < 2 {
			suggestions = append(suggestions, "Listen to more readings and imitate the pronunciation.")
		}
	}

	return suggestions
}
