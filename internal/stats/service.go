package stats

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/skilylabs/skily/internal/store"
	"github.com/skilylabs/skily/internal/topics"
)

const dayLayout = "2006-01-02"

// RewardResult describes the outcome of a daily reward claim.
type RewardResult struct {
	Claimed   bool // false when today's reward was already taken
	XPAwarded int
	Streak    int
}

// QuizResult describes what a completed quiz run contributed.
type QuizResult struct {
	XPAwarded  int
	Passed     bool
	NewAverage int
	NewMastery int
}

// Store owns the learner profile and applies every mutation to it.
// It is not safe for concurrent use; the UI drives it from a single
// goroutine.
type Store struct {
	stats     UserStats
	now       func() time.Time
	eventRepo store.EventRepo
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the wall clock, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithEventRepo enables best-effort persistence of reward claims.
func WithEventRepo(repo store.EventRepo) Option {
	return func(s *Store) { s.eventRepo = repo }
}

// NewStore creates a Store over the given starting profile.
func NewStore(initial UserStats, opts ...Option) *Store {
	s := &Store{stats: initial, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Stats returns a copy of the current profile.
func (s *Store) Stats() UserStats {
	out := s.stats
	out.Mastery = make(map[topics.Topic]int, len(s.stats.Mastery))
	for k, v := range s.stats.Mastery {
		out.Mastery[k] = v
	}
	return out
}

// CanClaimReward reports whether today's daily reward is still unclaimed.
func (s *Store) CanClaimReward() bool {
	return s.stats.LastRewardClaimed != s.now().Format(dayLayout)
}

// ClaimReward grants the daily reward. At most one claim takes effect
// per calendar day; repeat calls on the same day return Claimed false
// and change nothing.
func (s *Store) ClaimReward(ctx context.Context) RewardResult {
	today := s.now().Format(dayLayout)
	if s.stats.LastRewardClaimed == today {
		return RewardResult{Claimed: false, Streak: s.stats.CurrentStreak}
	}

	s.stats.CurrentStreak++
	if s.stats.CurrentStreak > s.stats.MaxStreak {
		s.stats.MaxStreak = s.stats.CurrentStreak
	}
	s.stats.XP += DailyRewardXP
	s.stats.LastRewardClaimed = today

	s.persistReward(ctx, today)

	return RewardResult{
		Claimed:   true,
		XPAwarded: DailyRewardXP,
		Streak:    s.stats.CurrentStreak,
	}
}

// ApplyQuizResult folds a finished quiz into the profile: one more test
// taken, the average and topic mastery blended with the new score, and
// XP for a pass or a consolation amount otherwise.
func (s *Store) ApplyQuizResult(topic topics.Topic, score int) QuizResult {
	s.stats.TestsTaken++
	s.stats.AverageScore = blend(s.stats.AverageScore, score)

	passed := score > PassThreshold
	award := ConsolationXP
	if passed {
		award = PassBonusXP
	}
	s.stats.XP += award

	if s.stats.Mastery == nil {
		s.stats.Mastery = make(map[topics.Topic]int)
	}
	s.stats.Mastery[topic] = blend(s.stats.Mastery[topic], score)

	return QuizResult{
		XPAwarded:  award,
		Passed:     passed,
		NewAverage: s.stats.AverageScore,
		NewMastery: s.stats.Mastery[topic],
	}
}

// SetSkin switches the active theme.
func (s *Store) SetSkin(name string) {
	s.stats.Skin = name
}

// SetSfxEnabled toggles sound effects.
func (s *Store) SetSfxEnabled(on bool) {
	s.stats.SfxEnabled = on
}

// SetMusicEnabled toggles background music.
func (s *Store) SetMusicEnabled(on bool) {
	s.stats.MusicEnabled = on
}

func (s *Store) persistReward(ctx context.Context, day string) {
	if s.eventRepo == nil {
		return
	}
	err := s.eventRepo.AppendRewardEvent(ctx, store.RewardEventData{
		Day:       day,
		Streak:    s.stats.CurrentStreak,
		XPAwarded: DailyRewardXP,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to record reward claim: %v\n", err)
	}
}
