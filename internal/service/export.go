package service

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"time"

	"echolingo/internal/domain"
	"echolingo/internal/repository"

	"go.uber.org/zap"
)

const exportVersion = "1.0"

// ExportPayload is the JSON export layout
type ExportPayload struct {
	Version      string               `json:"version"`
	ExportDate   time.Time            `json:"exportDate"`
	Translations []domain.Translation `json:"translations"`
	Progress     *domain.Progress     `json:"progress"`
	Stats        ExportStats          `json:"stats"`
}

// ExportStats summarizes the exported translations
type ExportStats struct {
	TotalTranslations int `json:"totalTranslations"`
	TotalWords        int `json:"totalWords"`
	TotalFavorites    int `json:"totalFavorites"`
}

// DataStats summarizes the stored data for display
type DataStats struct {
	TotalTranslations int `json:"totalTranslations"`
	TotalWords        int `json:"totalWords"`
	TotalFavorites    int `json:"totalFavorites"`
	TotalDays         int `json:"totalDays"`
	ConsecutiveDays   int `json:"consecutiveDays"`
	Achievements      int `json:"achievements"`
}

// ImportResult reports the outcome of a data import. A malformed payload
// yields success=false with a zero count and a message.
type ImportResult struct {
	Success bool   `json:"success"`
	Count   int    `json:"count"`
	Error   string `json:"error,omitempty"`
}

// ExportService turns the stored collections into portable JSON or CSV and
// imports previously exported payloads. File I/O stays with the caller; the
// service only produces and consumes bytes.
type ExportService struct {
	translationRepo repository.TranslationRepository
	progressRepo    repository.ProgressRepository
	logger          *zap.Logger
	now             func() time.Time
}

// NewExportService creates a new export service
func NewExportService(
	translationRepo repository.TranslationRepository,
	progressRepo repository.ProgressRepository,
	logger *zap.Logger,
) *ExportService {
	return &ExportService{
		translationRepo: translationRepo,
		progressRepo:    progressRepo,
		logger:          logger,
		now:             time.Now,
	}
}

// ExportJSON returns all stored data as an indented JSON document
func (s *ExportService) ExportJSON() ([]byte, error) {
	translations, err := s.translationRepo.ListAll()
	if err != nil {
		return nil, err
	}
	progress, err := s.progressRepo.Get()
	if err != nil {
		return nil, err
	}

	payload := ExportPayload{
		Version:      exportVersion,
		ExportDate:   s.now(),
		Translations: translations,
		Progress:     progress,
		Stats:        buildExportStats(translations),
	}
	return json.MarshalIndent(payload, "", "  ")
}

// ExportCSV returns all translations as a CSV document
func (s *ExportService) ExportCSV() ([]byte, error) {
	translations, err := s.translationRepo.ListAll()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"Source", "Target", "Category", "Keywords", "Favorite", "CreatedAt"}); err != nil {
		return nil, err
	}
	for _, t := range translations {
		favorite := "no"
		if t.IsFavorite {
			favorite = "yes"
		}
		record := []string{
			t.SourceText,
			t.TargetText,
			t.Category,
			t.Keywords,
			favorite,
			t.CreatedAt.Format(time.RFC3339),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Filename suggests a download name for the given format
func (s *ExportService) Filename(format string) string {
	return "echolingo-" + s.now().Format(domain.DateKeyLayout) + "." + format
}

// Stats returns display statistics over the stored data
func (s *ExportService) Stats() (*DataStats, error) {
	translations, err := s.translationRepo.ListAll()
	if err != nil {
		return nil, err
	}
	progress, err := s.progressRepo.Get()
	if err != nil {
		return nil, err
	}

	exportStats := buildExportStats(translations)
	stats := &DataStats{
		TotalTranslations: exportStats.TotalTranslations,
		TotalWords:        exportStats.TotalWords,
		TotalFavorites:    exportStats.TotalFavorites,
	}
	if progress != nil {
		stats.TotalDays = progress.TotalDays
		stats.ConsecutiveDays = progress.ConsecutiveDays
		stats.Achievements = len(progress.Achievements)
	}
	return stats, nil
}

type importedTranslation struct {
	SourceText string     `json:"sourceText"`
	TargetText string     `json:"targetText"`
	Keywords   string     `json:"keywords"`
	Category   string     `json:"category"`
	PlayCount  int        `json:"playCount"`
	IsFavorite bool       `json:"isFavorite"`
	CreatedAt  *time.Time `json:"createdAt"`
	UpdatedAt  *time.Time `json:"updatedAt"`
}

type importPayload struct {
	Translations []importedTranslation `json:"translations"`
}

// Import inserts translations from a previously exported JSON payload.
// Progress counters are not replayed; the aggregator only tracks live
// activity.
func (s *ExportService) Import(data []byte) ImportResult {
	var payload importPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return ImportResult{Success: false, Count: 0, Error: "invalid data format"}
	}
	if payload.Translations == nil {
		return ImportResult{Success: false, Count: 0, Error: "invalid data format"}
	}

	now := s.now()
	for _, in := range payload.Translations {
		t := &domain.Translation{
			SourceText: in.SourceText,
			TargetText: in.TargetText,
			Keywords:   in.Keywords,
			Category:   in.Category,
			PlayCount:  in.PlayCount,
			IsFavorite: in.IsFavorite,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if t.Category == "" {
			t.Category = DefaultCategory
		}
		if in.CreatedAt != nil {
			t.CreatedAt = *in.CreatedAt
		}
		if in.UpdatedAt != nil {
			t.UpdatedAt = *in.UpdatedAt
		}
		if err := s.translationRepo.Save(t); err != nil {
			s.logger.Error("Import aborted on store failure", zap.Error(err))
			return ImportResult{Success: false, Count: 0, Error: err.Error()}
		}
	}

	s.logger.Info("Imported translations", zap.Int("count", len(payload.Translations)))
	return ImportResult{Success: true, Count: len(payload.Translations)}
}

func buildExportStats(translations []domain.Translation) ExportStats {
	stats := ExportStats{TotalTranslations: len(translations)}
	for _, t := range translations {
		stats.TotalWords += len(t.KeywordTokens())
		if t.IsFavorite {
			stats.TotalFavorites++
		}
	}
	return stats
}
