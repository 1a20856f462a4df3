package stats

import (
	"math"

	"github.com/skilylabs/skily/internal/topics"
)

// XP awards and thresholds.
const (
	DailyRewardXP = 50  // granted by a daily reward claim
	PassBonusXP   = 100 // granted for a quiz score above PassThreshold
	ConsolationXP = 20  // granted for any other completed quiz
	PassThreshold = 50  // score percent a quiz must exceed to count as a pass
	XPPerLevel    = 150 // XP span of one level
)

// UserStats is the in-memory learner profile shown across the app.
// It is seeded at startup and lives only for the process lifetime.
type UserStats struct {
	// TestsTaken counts completed quiz runs.
	TestsTaken int

	// AverageScore is the running blended score percent (0-100).
	AverageScore int

	// CurrentStreak counts consecutive calendar days with a reward claim.
	CurrentStreak int

	// MaxStreak is the longest streak ever reached.
	MaxStreak int

	// XP is the lifetime experience total.
	XP int

	// LastRewardClaimed is the day of the last claim, YYYY-MM-DD.
	// Empty when no reward has ever been claimed.
	LastRewardClaimed string

	// Skin is the active visual theme name.
	Skin string

	// SfxEnabled toggles interface sound effects.
	SfxEnabled bool

	// MusicEnabled toggles background music.
	MusicEnabled bool

	// Mastery maps each topic to a 0-100 proficiency display value.
	Mastery map[topics.Topic]int
}

// Seed returns the demo profile the app starts with.
func Seed() UserStats {
	return UserStats{
		TestsTaken:        12,
		AverageScore:      68,
		CurrentStreak:     3,
		MaxStreak:         5,
		XP:                450,
		LastRewardClaimed: "2023-01-01",
		Skin:              "cadet",
		SfxEnabled:        true,
		MusicEnabled:      true,
		Mastery: map[topics.Topic]int{
			topics.General:    72,
			topics.Signals:    64,
			topics.Speed:      58,
			topics.Priority:   61,
			topics.RoadSafety: 70,
			topics.Alcohol:    80,
			topics.Documents:  55,
			topics.FirstAid:   49,
			topics.Mechanics:  44,
			topics.EcoDriving: 52,
		},
	}
}

// Level derives the learner level from lifetime XP.
func (u UserStats) Level() int {
	return 1 + u.XP/XPPerLevel
}

// LevelProgress returns XP accumulated within the current level and the
// level's span, for progress display.
func (u UserStats) LevelProgress() (int, int) {
	return u.XP % XPPerLevel, XPPerLevel
}

// Readiness estimates overall exam readiness as the mean of all topic
// mastery values, 0-100.
func (u UserStats) Readiness() int {
	if len(u.Mastery) == 0 {
		return 0
	}
	sum := 0
	for _, m := range u.Mastery {
		sum += m
	}
	return int(math.Round(float64(sum) / float64(len(u.Mastery))))
}

// blend folds a new score into a running value with the two-term
// average used for both average score and topic mastery.
func blend(current, score int) int {
	return int(math.Round(float64(current+score) / 2))
}
