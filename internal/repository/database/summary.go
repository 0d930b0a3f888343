package database

import (
	"database/sql"
	"encoding/json"

	"echolingo/internal/domain"
)

// SummaryRepo implements repository.SummaryRepository.
// Scenario and suggestion lists are stored as JSON array columns; the date
// key carries a unique constraint so at most one summary exists per day.
type SummaryRepo struct {
	db *sql.DB
}

// NewSummaryRepo creates a new daily summary repository
func NewSummaryRepo(db *sql.DB) *SummaryRepo {
	return &SummaryRepo{db: db}
}

// GetByDate returns the summary for a calendar date key, or nil when absent
func (r *SummaryRepo) GetByDate(date string) (*domain.DailySummary, error) {
	query := `
		SELECT id, date, translation_count, new_words, play_count, study_time,
			top_expression, top_expression_count, new_scenarios, progress_index, suggestions, created_at
		FROM daily_summaries
		WHERE date = $1
	`
	var s domain.DailySummary
	var scenarios, suggestions string
	err := r.db.QueryRow(query, date).Scan(
		&s.ID, &s.Date, &s.TranslationCount, &s.NewWords, &s.PlayCount, &s.StudyTime,
		&s.TopExpression, &s.TopExpressionCount, &scenarios, &s.ProgressIndex, &suggestions, &s.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(scenarios), &s.NewScenarios); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(suggestions), &s.Suggestions); err != nil {
		return nil, err
	}
	if s.NewScenarios == nil {
		s.NewScenarios = []string{}
	}
	if s.Suggestions == nil {
		s.Suggestions = []string{}
	}
	return &s, nil
}

// Save inserts a freshly generated summary and assigns its store identifier
func (r *SummaryRepo) Save(s *domain.DailySummary) error {
	scenarios, err := json.Marshal(s.NewScenarios)
	if err != nil {
		return err
	}
	suggestions, err := json.Marshal(s.Suggestions)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO daily_summaries (date, translation_count, new_words, play_count, study_time,
			top_expression, top_expression_count, new_scenarios, progress_index, suggestions, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`
	return r.db.QueryRow(query,
		s.Date, s.TranslationCount, s.NewWords, s.PlayCount, s.StudyTime,
		s.TopExpression, s.TopExpressionCount, string(scenarios), s.ProgressIndex, string(suggestions), s.CreatedAt,
	).Scan(&s.ID)
}
