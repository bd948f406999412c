package domain

import (
	"testing"
	"time"
)

func day(value string) time.Time {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		panic(err)
	}
	return t
}

func TestTouchLogin_ConsecutiveDays(t *testing.T) {
	p := &PlayerProfile{}

	p.TouchLogin(day("2026-03-01"))
	if p.CurrentStreak != 1 || p.LongestStreak != 1 {
		t.Fatalf("first login: streak=%d longest=%d, want 1/1", p.CurrentStreak, p.LongestStreak)
	}
	p.TouchLogin(day("2026-03-02"))
	p.TouchLogin(day("2026-03-03"))
	if p.CurrentStreak != 3 || p.LongestStreak != 3 {
		t.Fatalf("after three days: streak=%d longest=%d, want 3/3", p.CurrentStreak, p.LongestStreak)
	}
	if p.LastLoginDate != "2026-03-03" {
		t.Errorf("LastLoginDate = %q", p.LastLoginDate)
	}
}

func TestTouchLogin_SameDayIsNoop(t *testing.T) {
	p := &PlayerProfile{}
	p.TouchLogin(day("2026-03-01"))
	p.TouchLogin(day("2026-03-01").Add(6 * time.Hour))
	if p.CurrentStreak != 1 {
		t.Errorf("streak = %d, want 1 (at most one increment per day)", p.CurrentStreak)
	}
}

func TestTouchLogin_GapResets(t *testing.T) {
	p := &PlayerProfile{}
	p.TouchLogin(day("2026-03-01"))
	p.TouchLogin(day("2026-03-02"))
	p.TouchLogin(day("2026-03-05"))
	if p.CurrentStreak != 1 {
		t.Errorf("streak = %d, want 1 after a skipped day", p.CurrentStreak)
	}
	if p.LongestStreak != 2 {
		t.Errorf("longest = %d, want 2", p.LongestStreak)
	}
}

func TestTouchLogin_UnparsableDateResets(t *testing.T) {
	p := &PlayerProfile{LastLoginDate: "not-a-date", CurrentStreak: 4, LongestStreak: 4}
	p.TouchLogin(day("2026-03-01"))
	if p.CurrentStreak != 1 {
		t.Errorf("streak = %d, want 1 when the stored date is unparsable", p.CurrentStreak)
	}
	if p.LongestStreak != 4 {
		t.Errorf("longest = %d, want 4 preserved", p.LongestStreak)
	}
}

func TestApply_XPWithoutLevelRecomputes(t *testing.T) {
	p := &PlayerProfile{XP: 0, Level: 1}
	xp := 300
	p.Apply(ProfilePatch{XP: &xp})
	if p.Level != 3 {
		t.Errorf("Level = %d, want 3 recomputed from xp", p.Level)
	}
}

func TestApply_ExplicitLevelWins(t *testing.T) {
	p := &PlayerProfile{XP: 0, Level: 1}
	xp, level := 300, 9
	p.Apply(ProfilePatch{XP: &xp, Level: &level})
	if p.Level != 9 {
		t.Errorf("Level = %d, want explicit override 9", p.Level)
	}
}

func TestApply_ProgressMerges(t *testing.T) {
	p := &PlayerProfile{Progress: map[string]int{"add-1": 2, "sub-1": 1}}
	p.Apply(ProfilePatch{Progress: map[string]int{"add-1": 5, "mul-1": 1}})
	want := map[string]int{"add-1": 5, "sub-1": 1, "mul-1": 1}
	for key, count := range want {
		if p.Progress[key] != count {
			t.Errorf("Progress[%q] = %d, want %d", key, p.Progress[key], count)
		}
	}
}

func TestAccuracy(t *testing.T) {
	if got := (PlayerStats{}).Accuracy(); got != 0 {
		t.Errorf("empty stats accuracy = %v, want 0", got)
	}
	s := PlayerStats{QuestionsAnswered: 8, CorrectAnswers: 6}
	if got := s.Accuracy(); got != 0.75 {
		t.Errorf("accuracy = %v, want 0.75", got)
	}
}
