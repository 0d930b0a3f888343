package service

import (
	"fmt"
	"testing"
	"time"

	"echolingo/internal/domain"
	"echolingo/internal/testutil"

	"github.com/stretchr/testify/assert"
)

// fakeProgressRepo is a stateful in-memory ProgressRepository, so streak
// behavior can be exercised across several sequential calls.
type fakeProgressRepo struct {
	progress *domain.Progress
	getErr   error
	putErr   error
	putCalls int
}

func (f *fakeProgressRepo) Get() (*domain.Progress, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.progress == nil {
		return nil, nil
	}
	p := *f.progress
	p.Achievements = append([]string{}, f.progress.Achievements...)
	return &p, nil
}

func (f *fakeProgressRepo) Put(p *domain.Progress) error {
	if f.putErr != nil {
		return f.putErr
	}
	f.putCalls++
	cp := *p
	cp.Achievements = append([]string{}, p.Achievements...)
	f.progress = &cp
	return nil
}

func newProgressServiceAt(repo *fakeProgressRepo, now time.Time) *ProgressService {
	s := NewProgressService(repo, testutil.NewTestLogger())
	s.now = func() time.Time { return now }
	return s
}

func TestProgressService_Get_InitializesSingleton(t *testing.T) {
	now := time.Date(2024, 6, 15, 10, 0, 0, 0, time.Local)
	repo := &fakeProgressRepo{}
	s := newProgressServiceAt(repo, now)

	p, err := s.Get()

	assert.NoError(t, err)
	assert.Equal(t, int64(domain.ProgressID), p.ID)
	assert.Equal(t, 0, p.TotalTranslations)
	assert.Equal(t, 0, p.ConsecutiveDays)
	assert.Equal(t, now, p.LastStudyDate)
	assert.Empty(t, p.Achievements)
	assert.Equal(t, 1, repo.putCalls)
}

func TestProgressService_RecordTranslation_SameDayCountsOnce(t *testing.T) {
	now := time.Date(2024, 6, 15, 10, 0, 0, 0, time.Local)
	repo := &fakeProgressRepo{progress: testutil.NewTestProgress(now)}
	s := newProgressServiceAt(repo, now.Add(2*time.Hour))

	tr := testutil.NewTestTranslation(1, "你好", "hello there", "hello,there")
	for i := 0; i < 3; i++ {
		_, err := s.RecordTranslation(tr)
		assert.NoError(t, err)
	}

	p := repo.progress
	assert.Equal(t, 3, p.TotalTranslations)
	assert.Equal(t, 6, p.TotalWords)
	assert.Equal(t, 0, p.TotalDays)
	assert.Equal(t, 0, p.ConsecutiveDays)
	assert.Equal(t, now, p.LastStudyDate)
}

func TestProgressService_RecordTranslation_NextDayExtendsStreak(t *testing.T) {
	yesterday := time.Date(2024, 6, 14, 22, 0, 0, 0, time.Local)
	now := time.Date(2024, 6, 15, 8, 0, 0, 0, time.Local)

	seed := testutil.NewTestProgress(yesterday)
	seed.ConsecutiveDays = 3
	seed.TotalDays = 5
	repo := &fakeProgressRepo{progress: seed}
	s := newProgressServiceAt(repo, now)

	_, err := s.RecordTranslation(testutil.NewTestTranslation(1, "你好", "hello", "hello"))

	assert.NoError(t, err)
	p := repo.progress
	assert.Equal(t, 4, p.ConsecutiveDays)
	assert.Equal(t, 6, p.TotalDays)
	// The full instant is kept, not the truncated day
	assert.Equal(t, now, p.LastStudyDate)
}

func TestProgressService_RecordTranslation_GapResetsStreak(t *testing.T) {
	lastWeek := time.Date(2024, 6, 10, 12, 0, 0, 0, time.Local)
	now := time.Date(2024, 6, 15, 8, 0, 0, 0, time.Local)

	seed := testutil.NewTestProgress(lastWeek)
	seed.ConsecutiveDays = 9
	seed.TotalDays = 20
	repo := &fakeProgressRepo{progress: seed}
	s := newProgressServiceAt(repo, now)

	_, err := s.RecordTranslation(testutil.NewTestTranslation(1, "你好", "hello", "hello"))

	assert.NoError(t, err)
	p := repo.progress
	assert.Equal(t, 1, p.ConsecutiveDays)
	assert.Equal(t, 21, p.TotalDays)
}

func TestProgressService_RecordTranslation_BackdatedClock(t *testing.T) {
	lastStudy := time.Date(2024, 6, 15, 12, 0, 0, 0, time.Local)
	now := time.Date(2024, 6, 13, 12, 0, 0, 0, time.Local)

	seed := testutil.NewTestProgress(lastStudy)
	seed.ConsecutiveDays = 4
	seed.TotalDays = 4
	repo := &fakeProgressRepo{progress: seed}
	s := newProgressServiceAt(repo, now)

	_, err := s.RecordTranslation(testutil.NewTestTranslation(1, "你好", "hello", "hello"))

	assert.NoError(t, err)
	p := repo.progress
	assert.Equal(t, 4, p.ConsecutiveDays)
	assert.Equal(t, 4, p.TotalDays)
	assert.Equal(t, lastStudy, p.LastStudyDate)
}

func TestProgressService_RecordTranslation_RawKeywordCount(t *testing.T) {
	now := time.Date(2024, 6, 15, 10, 0, 0, 0, time.Local)
	repo := &fakeProgressRepo{progress: testutil.NewTestProgress(now)}
	s := newProgressServiceAt(repo, now)

	_, err := s.RecordTranslation(testutil.NewTestTranslation(1, "走", "go run", "go,run"))
	assert.NoError(t, err)
	_, err = s.RecordTranslation(testutil.NewTestTranslation(2, "跳", "run jump", "run,jump"))
	assert.NoError(t, err)

	// Occurrences are counted raw; "run" counts twice
	assert.Equal(t, 4, repo.progress.TotalWords)
}

func TestProgressService_RecordTranslation_UnlocksAchievements(t *testing.T) {
	now := time.Date(2024, 6, 15, 10, 0, 0, 0, time.Local)
	repo := &fakeProgressRepo{progress: testutil.NewTestProgress(now)}
	s := newProgressServiceAt(repo, now)

	_, err := s.RecordTranslation(testutil.NewTestTranslation(1, "你好", "hello", "hello"))

	assert.NoError(t, err)
	assert.Contains(t, repo.progress.Achievements, "first_translation")
}

func TestProgressService_RecordTranslation_StreakAchievement(t *testing.T) {
	yesterday := time.Date(2024, 6, 14, 22, 0, 0, 0, time.Local)
	now := time.Date(2024, 6, 15, 8, 0, 0, 0, time.Local)

	seed := testutil.NewTestProgress(yesterday)
	seed.ConsecutiveDays = 6
	seed.TotalDays = 6
	seed.TotalTranslations = 40
	seed.Achievements = []string{"first_translation", "ten_translations"}
	repo := &fakeProgressRepo{progress: seed}
	s := newProgressServiceAt(repo, now)

	_, err := s.RecordTranslation(testutil.NewTestTranslation(1, "你好", "hello", "hello"))

	assert.NoError(t, err)
	assert.Contains(t, repo.progress.Achievements, "seven_days")
}

func TestProgressService_AchievementsAreMonotonic(t *testing.T) {
	now := time.Date(2024, 6, 15, 10, 0, 0, 0, time.Local)
	seed := testutil.NewTestProgress(now)
	seed.Achievements = []string{"first_translation"}
	seed.TotalTranslations = 3
	repo := &fakeProgressRepo{progress: seed}
	s := newProgressServiceAt(repo, now)

	for i := 0; i < 5; i++ {
		_, err := s.RecordTranslation(testutil.NewTestTranslation(int64(i), "你好", "hello", "hello"))
		assert.NoError(t, err)
		assert.Contains(t, repo.progress.Achievements, "first_translation")
	}

	// Present exactly once, never duplicated
	count := 0
	for _, id := range repo.progress.Achievements {
		if id == "first_translation" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestProgressService_RecordPlay(t *testing.T) {
	now := time.Date(2024, 6, 15, 10, 0, 0, 0, time.Local)
	seed := testutil.NewTestProgress(now)
	seed.TotalPlays = 99
	repo := &fakeProgressRepo{progress: seed}
	s := newProgressServiceAt(repo, now)

	p, err := s.RecordPlay()

	assert.NoError(t, err)
	assert.Equal(t, 100, p.TotalPlays)
	// Plays never trigger achievement evaluation; hundred_plays stays
	// locked until the next recorded translation
	assert.Empty(t, p.Achievements)
	assert.Equal(t, 0, p.ConsecutiveDays)
}

func TestProgressService_Achievements(t *testing.T) {
	now := time.Date(2024, 6, 15, 10, 0, 0, 0, time.Local)
	seed := testutil.NewTestProgress(now)
	seed.Achievements = []string{"first_translation"}
	repo := &fakeProgressRepo{progress: seed}
	s := newProgressServiceAt(repo, now)

	statuses, err := s.Achievements()

	assert.NoError(t, err)
	assert.Len(t, statuses, len(domain.Achievements))
	for _, st := range statuses {
		assert.Equal(t, st.ID == "first_translation", st.Unlocked)
	}
}

func TestProgressService_StoreErrorPropagates(t *testing.T) {
	repo := &fakeProgressRepo{getErr: fmt.Errorf("db error")}
	s := newProgressServiceAt(repo, time.Now())

	_, err := s.RecordTranslation(testutil.NewTestTranslation(1, "你好", "hello", "hello"))

	assert.Error(t, err)
}
