package domain

import (
	"strings"
	"time"
)

// CategoryAll is the sentinel category value that matches every translation.
const CategoryAll = "ALL"

// Translation represents a single source-to-target text pair with study metadata
type Translation struct {
	ID         int64     `json:"id"`
	SourceText string    `json:"sourceText"`
	TargetText string    `json:"targetText"`
	Keywords   string    `json:"keywords"`
	Category   string    `json:"category"`
	PlayCount  int       `json:"playCount"`
	IsFavorite bool      `json:"isFavorite"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// KeywordTokens splits the comma-joined keyword list into individual tokens.
// Empty tokens are dropped, duplicates are kept.
func (t Translation) KeywordTokens() []string {
	if t.Keywords == "" {
		return nil
	}
	parts := strings.Split(t.Keywords, ",")
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			tokens = append(tokens, p)
		}
	}
	return tokens
}
