package stats

import (
	"context"
	"testing"
	"time"

	"github.com/skilylabs/skily/internal/topics"
)

func fixedClock(s string) func() time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return t }
}

func TestSeedProfile(t *testing.T) {
	u := Seed()
	if u.TestsTaken != 12 || u.AverageScore != 68 || u.CurrentStreak != 3 || u.MaxStreak != 5 || u.XP != 450 {
		t.Fatalf("unexpected seed: %+v", u)
	}
	if u.Level() != 4 {
		t.Errorf("Level() = %d, want 4", u.Level())
	}
	if u.Skin != "cadet" {
		t.Errorf("Skin = %q, want cadet", u.Skin)
	}
	if len(u.Mastery) != topics.Count() {
		t.Errorf("mastery has %d topics, want %d", len(u.Mastery), topics.Count())
	}
}

func TestClaimRewardOncePerDay(t *testing.T) {
	s := NewStore(Seed(), WithClock(fixedClock("2024-01-02")))
	before := s.Stats()

	res := s.ClaimReward(context.Background())
	if !res.Claimed {
		t.Fatal("first claim rejected")
	}
	if res.XPAwarded != DailyRewardXP {
		t.Errorf("XPAwarded = %d, want %d", res.XPAwarded, DailyRewardXP)
	}
	after := s.Stats()
	if after.XP != before.XP+DailyRewardXP {
		t.Errorf("XP = %d, want %d", after.XP, before.XP+DailyRewardXP)
	}
	if after.CurrentStreak != before.CurrentStreak+1 {
		t.Errorf("CurrentStreak = %d, want %d", after.CurrentStreak, before.CurrentStreak+1)
	}
	if after.LastRewardClaimed != "2024-01-02" {
		t.Errorf("LastRewardClaimed = %q", after.LastRewardClaimed)
	}

	// Second claim on the same day must be a no-op.
	res = s.ClaimReward(context.Background())
	if res.Claimed {
		t.Fatal("second claim on the same day accepted")
	}
	again := s.Stats()
	if again.XP != after.XP || again.CurrentStreak != after.CurrentStreak {
		t.Errorf("repeat claim mutated profile: %+v", again)
	}
}

func TestClaimRewardSameDayAsLastClaim(t *testing.T) {
	seed := Seed()
	seed.LastRewardClaimed = "2024-01-01"
	s := NewStore(seed, WithClock(fixedClock("2024-01-01")))

	if s.CanClaimReward() {
		t.Error("CanClaimReward() = true on the claimed day")
	}
	if res := s.ClaimReward(context.Background()); res.Claimed {
		t.Fatal("claim accepted on already-claimed day")
	}
}

func TestClaimRewardNextDay(t *testing.T) {
	seed := Seed()
	seed.LastRewardClaimed = "2024-01-01"
	s := NewStore(seed, WithClock(fixedClock("2024-01-02")))

	if !s.CanClaimReward() {
		t.Error("CanClaimReward() = false on a new day")
	}
	res := s.ClaimReward(context.Background())
	if !res.Claimed {
		t.Fatal("claim rejected on a new day")
	}
	if res := s.ClaimReward(context.Background()); res.Claimed {
		t.Fatal("second claim on the new day accepted")
	}
}

func TestClaimRewardUpdatesMaxStreak(t *testing.T) {
	seed := Seed()
	seed.CurrentStreak = 5
	seed.MaxStreak = 5
	s := NewStore(seed, WithClock(fixedClock("2024-03-10")))

	s.ClaimReward(context.Background())
	u := s.Stats()
	if u.CurrentStreak != 6 || u.MaxStreak != 6 {
		t.Errorf("streaks = %d/%d, want 6/6", u.CurrentStreak, u.MaxStreak)
	}
}

func TestApplyQuizResultPass(t *testing.T) {
	s := NewStore(Seed())
	before := s.Stats()

	res := s.ApplyQuizResult(topics.Signals, 100)
	if !res.Passed {
		t.Fatal("score 100 not counted as pass")
	}
	if res.XPAwarded != PassBonusXP {
		t.Errorf("XPAwarded = %d, want %d", res.XPAwarded, PassBonusXP)
	}

	after := s.Stats()
	if after.TestsTaken != before.TestsTaken+1 {
		t.Errorf("TestsTaken = %d, want %d", after.TestsTaken, before.TestsTaken+1)
	}
	wantAvg := blend(before.AverageScore, 100)
	if after.AverageScore != wantAvg {
		t.Errorf("AverageScore = %d, want %d", after.AverageScore, wantAvg)
	}
	wantMastery := blend(before.Mastery[topics.Signals], 100)
	if after.Mastery[topics.Signals] != wantMastery {
		t.Errorf("mastery = %d, want %d", after.Mastery[topics.Signals], wantMastery)
	}
}

func TestApplyQuizResultConsolation(t *testing.T) {
	s := NewStore(Seed())
	before := s.Stats()

	res := s.ApplyQuizResult(topics.Speed, 40)
	if res.Passed {
		t.Fatal("score 40 counted as pass")
	}
	if res.XPAwarded != ConsolationXP {
		t.Errorf("XPAwarded = %d, want %d", res.XPAwarded, ConsolationXP)
	}
	if got := s.Stats().XP; got != before.XP+ConsolationXP {
		t.Errorf("XP = %d, want %d", got, before.XP+ConsolationXP)
	}
}

func TestApplyQuizResultThresholdIsExclusive(t *testing.T) {
	s := NewStore(Seed())
	if res := s.ApplyQuizResult(topics.General, PassThreshold); res.Passed {
		t.Errorf("score %d counted as pass, threshold is exclusive", PassThreshold)
	}
}

func TestBlendRounds(t *testing.T) {
	cases := []struct {
		current, score, want int
	}{
		{68, 100, 84},
		{68, 0, 34},
		{67, 100, 84}, // 83.5 rounds up
		{0, 0, 0},
		{100, 100, 100},
	}
	for _, c := range cases {
		if got := blend(c.current, c.score); got != c.want {
			t.Errorf("blend(%d, %d) = %d, want %d", c.current, c.score, got, c.want)
		}
	}
}

func TestLevelProgression(t *testing.T) {
	u := UserStats{XP: 0}
	if u.Level() != 1 {
		t.Errorf("Level() at 0 XP = %d, want 1", u.Level())
	}
	u.XP = 149
	if u.Level() != 1 {
		t.Errorf("Level() at 149 XP = %d, want 1", u.Level())
	}
	u.XP = 150
	if u.Level() != 2 {
		t.Errorf("Level() at 150 XP = %d, want 2", u.Level())
	}
	u.XP = 450
	in, span := u.LevelProgress()
	if in != 0 || span != XPPerLevel {
		t.Errorf("LevelProgress() = %d/%d", in, span)
	}
}

func TestReadiness(t *testing.T) {
	u := UserStats{Mastery: map[topics.Topic]int{
		topics.General: 50,
		topics.Signals: 70,
	}}
	if got := u.Readiness(); got != 60 {
		t.Errorf("Readiness() = %d, want 60", got)
	}
	if got := (UserStats{}).Readiness(); got != 0 {
		t.Errorf("Readiness() with no mastery = %d, want 0", got)
	}
}

func TestStatsReturnsCopy(t *testing.T) {
	s := NewStore(Seed())
	u := s.Stats()
	u.Mastery[topics.General] = 0
	if s.Stats().Mastery[topics.General] == 0 {
		t.Error("Stats() leaked internal mastery map")
	}
}

func TestSettingToggles(t *testing.T) {
	s := NewStore(Seed())
	s.SetSkin("neon")
	s.SetSfxEnabled(false)
	s.SetMusicEnabled(false)
	u := s.Stats()
	if u.Skin != "neon" || u.SfxEnabled || u.MusicEnabled {
		t.Errorf("settings not applied: %+v", u)
	}
}
