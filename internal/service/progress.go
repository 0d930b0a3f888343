package service

import (
	"time"

	"echolingo/internal/domain"
	"echolingo/internal/repository"

	"go.uber.org/zap"
)

// ProgressService keeps the singleton progress record consistent with
// translation and playback activity and evaluates achievement unlocks.
type ProgressService struct {
	progressRepo repository.ProgressRepository
	logger       *zap.Logger
	now          func() time.Time
}

// NewProgressService creates a new progress service
func NewProgressService(progressRepo repository.ProgressRepository, logger *zap.Logger) *ProgressService {
	return &ProgressService{
		progressRepo: progressRepo,
		logger:       logger,
		now:          time.Now,
	}
}

// Get returns the progress record, creating the zero-valued singleton on first use
func (s *ProgressService) Get() (*domain.Progress, error) {
	p, err := s.progressRepo.Get()
	if err != nil {
		return nil, err
	}
	if p != nil {
		return p, nil
	}

	p = &domain.Progress{
		ID:            domain.ProgressID,
		LastStudyDate: s.now(),
		Achievements:  []string{},
	}
	if err := s.progressRepo.Put(p); err != nil {
		return nil, err
	}
	s.logger.Info("Initialized progress record")
	return p, nil
}

// RecordTranslation updates cumulative counters, the consecutive-day streak
// and the achievement set for a just-persisted translation, then stores the
// result. Keyword occurrences are counted raw, without deduplication.
func (s *ProgressService) RecordTranslation(t *domain.Translation) (*domain.Progress, error) {
	p, err := s.Get()
	if err != nil {
		return nil, err
	}

	p.TotalTranslations++
	p.TotalWords += len(t.KeywordTokens())
	s.updateStreak(p)
	s.unlockAchievements(p)

	if err := s.progressRepo.Put(p); err != nil {
		return nil, err
	}
	return p, nil
}

// RecordPlay counts one playback. It does not touch the streak and does not
// re-evaluate achievements; those are only checked when a translation is
// recorded.
func (s *ProgressService) RecordPlay() (*domain.Progress, error) {
	p, err := s.Get()
	if err != nil {
		return nil, err
	}

	p.TotalPlays++

	if err := s.progressRepo.Put(p); err != nil {
		return nil, err
	}
	return p, nil
}

// Achievements returns the full achievement table with unlocked flags
func (s *ProgressService) Achievements() ([]domain.AchievementStatus, error) {
	p, err := s.Get()
	if err != nil {
		return nil, err
	}

	statuses := make([]domain.AchievementStatus, 0, len(domain.Achievements))
	for _, a := range domain.Achievements {
		statuses = append(statuses, domain.AchievementStatus{
			Achievement: a,
			Unlocked:    p.HasAchievement(a.ID),
		})
	}
	return statuses, nil
}

// updateStreak applies the calendar-day streak policy at midnight granularity.
// Repeat activity on the same day changes nothing; the day after the last
// study extends the streak; a longer gap resets it to 1. A negative day
// difference (clock moved backwards) is treated the same as same-day.
func (s *ProgressService) updateStreak(p *domain.Progress) {
	now := s.now()
	diffDays := domain.DiffDays(p.LastStudyDate, now)

	switch {
	case diffDays <= 0:
		return
	case diffDays == 1:
		p.ConsecutiveDays++
		p.TotalDays++
	default:
		p.ConsecutiveDays = 1
		p.TotalDays++
	}

	p.LastStudyDate = now
}

// unlockAchievements appends every satisfied, not-yet-unlocked achievement
// in one pass over the fixed table. Ids already present are never touched.
func (s *ProgressService) unlockAchievements(p *domain.Progress) {
	for _, a := range domain.Achievements {
		if !p.HasAchievement(a.ID) && a.Condition(*p) {
			p.Achievements = append(p.Achievements, a.ID)
			s.logger.Info("Achievement unlocked", zap.String("achievement", a.ID))
		}
	}
}
