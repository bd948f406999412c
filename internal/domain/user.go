package domain

import "time"

// Provider identifies how a credential authenticates.
const (
	ProviderLocal  = "local"
	ProviderGoogle = "google"
)

// DateLayout is the calendar-date format used for streak bookkeeping.
const DateLayout = "2006-01-02"

// UserCredential represents an authentication credential keyed by email.
// A local credential always carries a salt and password hash; a google
// credential carries neither.
type UserCredential struct {
	ID              string
	Provider        string
	SaltB64         string
	PasswordHashB64 string
}

// PlayerStats holds per-player game counters. Counters only move on
// session finish, so CorrectAnswers can never exceed QuestionsAnswered.
type PlayerStats struct {
	GamesPlayed       int
	QuestionsAnswered int
	CorrectAnswers    int
}

// PlayerProfile represents a player's profile and progression state.
type PlayerProfile struct {
	ID                    string
	Email                 string
	DisplayName           string
	Language              string
	XP                    int
	Level                 int
	Progress              map[string]int
	CurrentStreak         int
	LongestStreak         int
	LastLoginDate         string
	LessonsCompletedToday int
	LastLessonDate        string
	Stats                 PlayerStats
}

// ProfilePatch is a partial update of a PlayerProfile. A nil field means
// "leave unchanged"; Progress is merged key-wise rather than replaced.
type ProfilePatch struct {
	DisplayName           *string
	Language              *string
	XP                    *int
	Level                 *int
	Progress              map[string]int
	CurrentStreak         *int
	LongestStreak         *int
	LastLoginDate         *string
	LessonsCompletedToday *int
	LastLessonDate        *string
}

// Apply applies the patch to the profile. Setting XP without an explicit
// Level recomputes the level from the progression curve; an explicit
// Level always wins regardless of XP.
func (p *PlayerProfile) Apply(patch ProfilePatch) {
	if patch.DisplayName != nil {
		p.DisplayName = *patch.DisplayName
	}
	if patch.Language != nil {
		p.Language = *patch.Language
	}
	if patch.XP != nil {
		p.XP = *patch.XP
		if patch.Level == nil {
			p.Level = CalculateLevel(p.XP)
		}
	}
	if patch.Level != nil {
		p.Level = *patch.Level
	}
	if patch.Progress != nil {
		if p.Progress == nil {
			p.Progress = make(map[string]int, len(patch.Progress))
		}
		for key, count := range patch.Progress {
			p.Progress[key] = count
		}
	}
	if patch.CurrentStreak != nil {
		p.CurrentStreak = *patch.CurrentStreak
	}
	if patch.LongestStreak != nil {
		p.LongestStreak = *patch.LongestStreak
	}
	if patch.LastLoginDate != nil {
		p.LastLoginDate = *patch.LastLoginDate
	}
	if patch.LessonsCompletedToday != nil {
		p.LessonsCompletedToday = *patch.LessonsCompletedToday
	}
	if patch.LastLessonDate != nil {
		p.LastLessonDate = *patch.LastLessonDate
	}
}

// TouchLogin updates the login streak for the UTC calendar day of now.
// At most one streak increment per day: a login on the day after the
// last one extends the streak, any larger gap (or no prior login, or an
// unparsable stored date) resets it to 1.
func (p *PlayerProfile) TouchLogin(now time.Time) {
	today := now.UTC().Truncate(24 * time.Hour)
	last, err := time.Parse(DateLayout, p.LastLoginDate)
	if err == nil && last.Equal(today) {
		return
	}
	if err == nil && last.Equal(today.AddDate(0, 0, -1)) {
		p.CurrentStreak++
	} else {
		p.CurrentStreak = 1
	}
	if p.CurrentStreak > p.LongestStreak {
		p.LongestStreak = p.CurrentStreak
	}
	p.LastLoginDate = today.Format(DateLayout)
}

// Accuracy returns the fraction of answered questions that were correct.
func (s PlayerStats) Accuracy() float64 {
	if s.QuestionsAnswered == 0 {
		return 0
	}
	return float64(s.CorrectAnswers) / float64(s.QuestionsAnswered)
}
