package domain

import "time"

// ProgressID is the fixed identifier of the singleton progress record.
const ProgressID = 1

// Progress tracks cumulative learning stats for the single user
type Progress struct {
	ID                int64     `json:"id"`
	TotalDays         int       `json:"totalDays"`
	TotalTranslations int       `json:"totalTranslations"`
	TotalWords        int       `json:"totalWords"`
	TotalPlays        int       `json:"totalPlays"`
	ConsecutiveDays   int       `json:"consecutiveDays"`
	LastStudyDate     time.Time `json:"lastStudyDate"`
	Achievements      []string  `json:"achievements"`
}

// HasAchievement reports whether the achievement id is already unlocked.
func (p *Progress) HasAchievement(id string) bool {
	for _, a := range p.Achievements {
		if a == id {
			return true
		}
	}
	return false
}

// Achievement is a named milestone with an unlock predicate over Progress.
// Unlocks are permanent: once an id is recorded it is never removed.
type Achievement struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Condition   func(Progress) bool `json:"-"`
}

// AchievementStatus pairs an achievement with its unlocked state.
type AchievementStatus struct {
	Achievement
	Unlocked bool `json:"unlocked"`
}

// Achievements is the fixed table of milestones, evaluated in order.
var Achievements = []Achievement{
	{
		ID:          "first_translation",
		Name:        "First Steps",
		Description: "Complete your first translation",
		Condition:   func(p Progress) bool { return p.TotalTranslations >= 1 },
	},
	{
		ID:          "ten_translations",
		Name:        "Getting Somewhere",
		Description: "Complete 10 translations",
		Condition:   func(p Progress) bool { return p.TotalTranslations >= 10 },
	},
	{
		ID:          "hundred_words",
		Name:        "Word Collector",
		Description: "Study 100 keywords in total",
		Condition:   func(p Progress) bool { return p.TotalWords >= 100 },
	},
	{
		ID:          "hundred_plays",
		Name:        "Pronunciation Regular",
		Description: "Play back 100 readings",
		Condition:   func(p Progress) bool { return p.TotalPlays >= 100 },
	},
	{
		ID:          "seven_days",
		Name:        "Streak Keeper",
		Description: "Study 7 days in a row",
		Condition:   func(p Progress) bool { return p.ConsecutiveDays >= 7 },
	},
	{
		ID:          "thirty_days",
		Name:        "Study Master",
		Description: "Study 30 days in a row",
		Condition:   func(p Progress) bool { return p.ConsecutiveDays >= 30 },
	},
}

// AchievementByID looks up an achievement definition by its id.
func AchievementByID(id string) (Achievement, bool) {
	for _, a := range Achievements {
		if a.ID == id {
			return a, true
		}
	}
	return Achievement{}, false
}
