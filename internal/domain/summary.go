package domain

import "time"

// DailySummary is a cached aggregate over one calendar day of translations.
// At most one record exists per date key; once stored it is never recomputed.
type DailySummary struct {
	ID                 int64     `json:"id"`
	Date               string    `json:"date"`
	TranslationCount   int       `json:"translationCount"`
	NewWords           int       `json:"newWords"`
	PlayCount          int       `json:"playCount"`
	StudyTime          int       `json:"studyTime"`
	TopExpression      string    `json:"topExpression"`
	TopExpressionCount int       `json:"topExpressionCount"`
	NewScenarios       []string  `json:"newScenarios"`
	ProgressIndex      int       `json:"progressIndex"`
	Suggestions        []string  `json:"suggestions"`
	CreatedAt          time.Time `json:"createdAt"`
}
