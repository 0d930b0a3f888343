package service

import (
	"testing"
	"time"

	"echolingo/internal/domain"
	"echolingo/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newSummaryServiceAt(
	summaryRepo *testutil.MockSummaryRepository,
	translationRepo *testutil.MockTranslationRepository,
	now time.Time,
) *SummaryService {
	s := NewSummaryService(summaryRepo, translationRepo, testutil.NewTestLogger())
	s.now = func() time.Time { return now }
	return s
}

func TestSummaryService_GetOrCreate_CacheHit(t *testing.T) {
	summaryRepo := new(testutil.MockSummaryRepository)
	translationRepo := new(testutil.MockTranslationRepository)

	cached := &domain.DailySummary{
		ID:               4,
		Date:             "2024-06-15",
		TranslationCount: 3,
		Suggestions:      []string{},
	}
	summaryRepo.On("GetByDate", "2024-06-15").Return(cached, nil)

	s := newSummaryServiceAt(summaryRepo, translationRepo, time.Now())

	got, err := s.GetOrCreate("2024-06-15")

	assert.NoError(t, err)
	assert.Equal(t, cached, got)
	// Cached days are served as stored; no scan, no recompute
	summaryRepo.AssertExpectations(t)
	translationRepo.AssertNotCalled(t, "ListByDateRange", mock.Anything, mock.Anything)
	summaryRepo.AssertNotCalled(t, "Save", mock.Anything)
}

func TestSummaryService_GetOrCreate_GeneratesAndStores(t *testing.T) {
	summaryRepo := new(testutil.MockSummaryRepository)
	translationRepo := new(testutil.MockTranslationRepository)

	day := []domain.Translation{
		*testutil.NewTestTranslation(1, "我想吃水果", "I would like some fruit", "would,like,some,fruit"),
		*testutil.NewTestTranslation(2, "你好", "hello there", "hello,there"),
	}
	day[0].PlayCount = 3
	day[1].PlayCount = 1
	day[1].Category = "work"

	summaryRepo.On("GetByDate", "2024-06-15").Return(nil, nil)
	translationRepo.On("ListByDateRange", mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return(day, nil)

	var saved *domain.DailySummary
	summaryRepo.On("Save", mock.AnythingOfType("*domain.DailySummary")).
		Run(func(args mock.Arguments) {
			saved = args.Get(0).(*domain.DailySummary)
		}).
		Return(nil)

	now := time.Date(2024, 6, 15, 23, 0, 0, 0, time.Local)
	s := newSummaryServiceAt(summaryRepo, translationRepo, now)

	got, err := s.GetOrCreate("2024-06-15")

	assert.NoError(t, err)
	assert.NotNil(t, saved)
	assert.Equal(t, got, saved)
	assert.Equal(t, "2024-06-15", got.Date)
	assert.Equal(t, 2, got.TranslationCount)
	assert.Equal(t, 6, got.NewWords)
	assert.Equal(t, 4, got.PlayCount)
	assert.Equal(t, 4, got.StudyTime)
	assert.Equal(t, []string{"daily", "work"}, got.NewScenarios)
	assert.Equal(t, 1, got.ProgressIndex)
	assert.Equal(t, now, got.CreatedAt)
	summaryRepo.AssertExpectations(t)
	translationRepo.AssertExpectations(t)
}

func TestSummaryService_GetOrCreate_InvalidDate(t *testing.T) {
	summaryRepo := new(testutil.MockSummaryRepository)
	translationRepo := new(testutil.MockTranslationRepository)

	summaryRepo.On("GetByDate", "15-06-2024").Return(nil, nil)

	s := newSummaryServiceAt(summaryRepo, translationRepo, time.Now())

	_, err := s.GetOrCreate("15-06-2024")

	assert.Error(t, err)
	summaryRepo.AssertNotCalled(t, "Save", mock.Anything)
}

func TestBuildSummary_EmptyDay(t *testing.T) {
	got := buildSummary("2024-06-15", []domain.Translation{}, time.Now())

	assert.Equal(t, 0, got.TranslationCount)
	assert.Equal(t, 0, got.NewWords)
	assert.Equal(t, 0, got.ProgressIndex)
	assert.Equal(t, "", got.TopExpression)
	assert.Empty(t, got.NewScenarios)
	// Only the volume and variety rules fire; the average-play rule is
	// skipped when there is nothing to average over
	assert.Equal(t, []string{
		"Add more input to build up your vocabulary.",
		"Try expressions from different scenarios to vary your study.",
	}, got.Suggestions)
}

func TestFindTopExpression_FirstEncounteredWinsTies(t *testing.T) {
	translations := []domain.Translation{
		*testutil.NewTestTranslation(1, "嗨", "hi", "hi"),
		*testutil.NewTestTranslation(2, "再见", "bye", "bye"),
		*testutil.NewTestTranslation(3, "嗨", "hi", "hi"),
		*testutil.NewTestTranslation(4, "再见", "bye", "bye"),
	}

	expression, count := findTopExpression(translations)

	assert.Equal(t, "hi", expression)
	assert.Equal(t, 2, count)
}

func TestCountUniqueKeywords_Deduplicates(t *testing.T) {
	translations := []domain.Translation{
		*testutil.NewTestTranslation(1, "走", "go run", "go,run"),
		*testutil.NewTestTranslation(2, "跳", "run jump", "run,jump"),
	}

	assert.Equal(t, 3, countUniqueKeywords(translations))
}

func TestProgressIndex(t *testing.T) {
	tests := []struct {
		count    int
		expected int
	}{
		{0, 0},
		{1, 1},
		{4, 1},
		{5, 2},
		{9, 2},
		{10, 3},
		{19, 3},
		{20, 4},
		{100, 4},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, progressIndex(tt.count), "count %d", tt.count)
	}
}

func TestGenerateSuggestions_QuietOnActiveDay(t *testing.T) {
	translations := make([]domain.Translation, 0, 6)
	categories := []string{"daily", "work", "study"}
	for i := 0; i < 6; i++ {
		tr := testutil.NewTestTranslation(int64(i+1), "你好", "hello", "hello")
		tr.Category = categories[i%len(categories)]
		tr.PlayCount = 3
		translations = append(translations, *tr)
	}

	assert.Empty(t, generateSuggestions(translations))
}

func TestGenerateSuggestions_LowPlayback(t *testing.T) {
	translations := make([]domain.Translation, 0, 6)
	categories := []string{"daily", "work", "study"}
	for i := 0; i < 6; i++ {
		tr := testutil.NewTestTranslation(int64(i+1), "你好", "hello", "hello")
		tr.Category = categories[i%len(categories)]
		tr.PlayCount = 1
		translations = append(translations, *tr)
	}

	suggestions := generateSuggestions(translations)

	assert.Equal(t, []string{"Listen to more readings and imitate the pronunciation."}, suggestions)
}
