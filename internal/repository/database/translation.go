package database

import (
	"database/sql"
	"time"

	"echolingo/internal/domain"
)

// TranslationRepo implements repository.TranslationRepository.
// The SQL sticks to the subset shared by the embedded SQLite store and the
// optional PostgreSQL store: $N placeholders, Go-side timestamps, RETURNING
// on insert. Secondary ordering by id keeps equal-timestamp scans stable.
type TranslationRepo struct {
	db *sql.DB
}

// NewTranslationRepo creates a new translation repository
func NewTranslationRepo(db *sql.DB) *TranslationRepo {
	return &TranslationRepo{db: db}
}

const translationColumns = "id, source_text, target_text, keywords, category, play_count, is_favorite, created_at, updated_at"

// Save inserts a new translation and assigns its store identifier
func (r *TranslationRepo) Save(t *domain.Translation) error {
	query := `
		INSERT INTO translations (source_text, target_text, keywords, category, play_count, is_favorite, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	return r.db.QueryRow(query,
		t.SourceText, t.TargetText, t.Keywords, t.Category,
		t.PlayCount, t.IsFavorite, t.CreatedAt, t.UpdatedAt,
	).Scan(&t.ID)
}

// GetByID returns a translation by id, or nil when absent
func (r *TranslationRepo) GetByID(id int64) (*domain.Translation, error) {
	query := `
		SELECT ` + translationColumns + `
		FROM translations
		WHERE id = $1
	`
	var t domain.Translation
	err := r.db.QueryRow(query, id).Scan(
		&t.ID, &t.SourceText, &t.TargetText, &t.Keywords, &t.Category,
		&t.PlayCount, &t.IsFavorite, &t.CreatedAt, &t.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ListRecent returns translations ordered by creation time descending
func (r *TranslationRepo) ListRecent(limit int) ([]domain.Translation, error) {
	query := `
		SELECT ` + translationColumns + `
		FROM translations
		ORDER BY created_at DESC, id DESC
		LIMIT $1
	`
	rows, err := r.db.Query(query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTranslations(rows)
}

// ListByCategory returns translations with an exact category match,
// ordered by creation time descending
func (r *TranslationRepo) ListByCategory(category string) ([]domain.Translation, error) {
	query := `
		SELECT ` + translationColumns + `
		FROM translations
		WHERE category = $1
		ORDER BY created_at DESC, id DESC
	`
	rows, err := r.db.Query(query, category)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTranslations(rows)
}

// ListByDateRange returns translations created within [start, end] inclusive,
// in insertion order
func (r *TranslationRepo) ListByDateRange(start, end time.Time) ([]domain.Translation, error) {
	query := `
		SELECT ` + translationColumns + `
		FROM translations
		WHERE created_at >= $1 AND created_at <= $2
		ORDER BY created_at ASC, id ASC
	`
	rows, err := r.db.Query(query, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTranslations(rows)
}

// ListAll returns every stored translation in insertion order
func (r *TranslationRepo) ListAll() ([]domain.Translation, error) {
	query := `
		SELECT ` + translationColumns + `
		FROM translations
		ORDER BY id ASC
	`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTranslations(rows)
}

// IncrementPlayCount adds one playback to a translation
func (r *TranslationRepo) IncrementPlayCount(id int64) error {
	query := `
		UPDATE translations
		SET play_count = play_count + 1, updated_at = $1
		WHERE id = $2
	`
	_, err := r.db.Exec(query, time.Now(), id)
	return err
}

// SetFavorite sets the favorite flag on a translation
func (r *TranslationRepo) SetFavorite(id int64, favorite bool) error {
	query := `
		UPDATE translations
		SET is_favorite = $1, updated_at = $2
		WHERE id = $3
	`
	_, err := r.db.Exec(query, favorite, time.Now(), id)
	return err
}

// Delete removes a translation from the store
func (r *TranslationRepo) Delete(id int64) error {
	query := `
		DELETE FROM translations
		WHERE id = $1
	`
	_, err := r.db.Exec(query, id)
	return err
}

func scanTranslations(rows *sql.Rows) ([]domain.Translation, error) {
	var translations []domain.Translation
	for rows.Next() {
		var t domain.Translation
		if err := rows.Scan(
			&t.ID, &t.SourceText, &t.TargetText, &t.Keywords, &t.Category,
			&t.PlayCount, &t.IsFavorite, &t.CreatedAt, &t.UpdatedAt,
		); err != nil {
			return nil, err
		}
		translations = append(translations, t)
	}
	return translations, rows.Err()
}
