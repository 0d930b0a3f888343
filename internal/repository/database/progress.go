package database

import (
	"database/sql"
	"encoding/json"

	"echolingo/internal/domain"
)

// ProgressRepo implements repository.ProgressRepository.
// Exactly one row exists per installation, keyed by domain.ProgressID.
// The achievement set is stored as a JSON array column.
type ProgressRepo struct {
	db *sql.DB
}

// NewProgressRepo creates a new progress repository
func NewProgressRepo(db *sql.DB) *ProgressRepo {
	return &ProgressRepo{db: db}
}

// Get returns the singleton progress record, or nil when it does not exist yet
func (r *ProgressRepo) Get() (*domain.Progress, error) {
	query := `
		SELECT id, total_days, total_translations, total_words, total_plays, consecutive_days, last_study_date, achievements
		FROM progress
		WHERE id = $1
	`
	var p domain.Progress
	var achievements string
	err := r.db.QueryRow(query, domain.ProgressID).Scan(
		&p.ID, &p.TotalDays, &p.TotalTranslations, &p.TotalWords,
		&p.TotalPlays, &p.ConsecutiveDays, &p.LastStudyDate, &achievements,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(achievements), &p.Achievements); err != nil {
		return nil, err
	}
	if p.Achievements == nil {
		p.Achievements = []string{}
	}
	return &p, nil
}

// Put upserts the singleton progress record
func (r *ProgressRepo) Put(p *domain.Progress) error {
	achievements, err := json.Marshal(p.Achievements)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO progress (id, total_days, total_translations, total_words, total_plays, consecutive_days, last_study_date, achievements)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			total_days = EXCLUDED.total_days,
			total_translations = EXCLUDED.total_translations,
			total_words = EXCLUDED.total_words,
			total_plays = EXCLUDED.total_plays,
			consecutive_days = EXCLUDED.consecutive_days,
			last_study_date = EXCLUDED.last_study_date,
			achievements = EXCLUDED.achievements
	`
	_, err = r.db.Exec(query,
		domain.ProgressID, p.TotalDays, p.TotalTranslations, p.TotalWords,
		p.TotalPlays, p.ConsecutiveDays, p.LastStudyDate, string(achievements),
	)
	return err
}
