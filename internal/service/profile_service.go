package service

import (
	"context"

	"mathrush/internal/config"
	"mathrush/internal/domain"
	"mathrush/internal/dto"
)

// ProfileService defines the interface for player-profile operations.
type ProfileService interface {
	Create(ctx context.Context, userID string, req *dto.CreateProfileRequest) (*dto.ProfileResponse, error)
	Get(ctx context.Context, userID string) (*dto.ProfileResponse, error)
	Update(ctx context.Context, userID string, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error)
	GetStats(ctx context.Context, userID string) (*dto.UserStatsResponse, error)
}

type profileServiceImpl struct {
	profiles domain.ProfileRepository
	txm      domain.TransactionManager
	cfg      *config.Config
}

// NewProfileService creates a new instance of ProfileService.
func NewProfileService(profiles domain.ProfileRepository, txm domain.TransactionManager, cfg *config.Config) ProfileService {
	return &profileServiceImpl{profiles: profiles, txm: txm, cfg: cfg}
}

// Create creates a profile for the user id. It fails with a conflict
// when one already exists. Absent fields default: xp 0, level derived
// from xp, streaks 0, longest streak mirroring the current streak, and
// the configured default language.
func (s *profileServiceImpl) Create(ctx context.Context, userID string, req *dto.CreateProfileRequest) (*dto.ProfileResponse, error) {
	var resp *dto.ProfileResponse
	err := s.txm.WithTransaction(ctx, func(ctx context.Context) error {
		existing, err := s.profiles.Get(ctx, userID)
		if err != nil {
			return domain.NewInternalError("failed to look up profile", err)
		}
		if existing != nil {
			return domain.NewConflictError("User already exists")
		}

		xp := 0
		if req.XP != nil {
			xp = *req.XP
		}
		level := domain.CalculateLevel(xp)
		if req.Level != nil {
			level = *req.Level
		}
		currentStreak := 0
		if req.CurrentStreak != nil {
			currentStreak = *req.CurrentStreak
		}
		longestStreak := currentStreak
		if req.LongestStreak != nil {
			longestStreak = *req.LongestStreak
		}
		lessonsToday := 0
		if req.LessonsCompletedToday != nil {
			lessonsToday = *req.LessonsCompletedToday
		}
		language := req.Language
		if language == "" {
			language = s.cfg.Game.DefaultLanguage
		}
		progress := make(map[string]int, len(req.Progress))
		for key, count := range req.Progress {
			progress[key] = count
		}

		profile := &domain.PlayerProfile{
			ID:                    userID,
			Email:                 req.Email,
			DisplayName:           req.DisplayName,
			Language:              language,
			XP:                    xp,
			Level:                 level,
			Progress:              progress,
			CurrentStreak:         currentStreak,
			LongestStreak:         longestStreak,
			LastLoginDate:         req.LastLoginDate,
			LessonsCompletedToday: lessonsToday,
			LastLessonDate:        req.LastLessonDate,
		}
		if err := s.profiles.Save(ctx, profile); err != nil {
			return domain.NewInternalError("failed to save profile", err)
		}
		resp = profileResponse(profile)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// Get returns the full profile view.
func (s *profileServiceImpl) Get(ctx context.Context, userID string) (*dto.ProfileResponse, error) {
	var resp *dto.ProfileResponse
	err := s.txm.WithReadTransaction(ctx, func(ctx context.Context) error {
		profile, err := s.getProfile(ctx, userID)
		if err != nil {
			return err
		}
		resp = profileResponse(profile)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// Update applies a partial update; only fields present in the request
// are touched.
func (s *profileServiceImpl) Update(ctx context.Context, userID string, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	var resp *dto.ProfileResponse
	err := s.txm.WithTransaction(ctx, func(ctx context.Context) error {
		profile, err := s.getProfile(ctx, userID)
		if err != nil {
			return err
		}
		profile.Apply(domain.ProfilePatch{
			DisplayName:           req.DisplayName,
			Language:              req.Language,
			XP:                    req.XP,
			Level:                 req.Level,
			Progress:              req.Progress,
			CurrentStreak:         req.CurrentStreak,
			LongestStreak:         req.LongestStreak,
			LastLoginDate:         req.LastLoginDate,
			LessonsCompletedToday: req.LessonsCompletedToday,
			LastLessonDate:        req.LastLessonDate,
		})
		if err := s.profiles.Save(ctx, profile); err != nil {
			return domain.NewInternalError("failed to save profile", err)
		}
		resp = profileResponse(profile)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// GetStats returns the per-player game counters with an accuracy ratio.
func (s *profileServiceImpl) GetStats(ctx context.Context, userID string) (*dto.UserStatsResponse, error) {
	var resp *dto.UserStatsResponse
	err := s.txm.WithReadTransaction(ctx, func(ctx context.Context) error {
		profile, err := s.getProfile(ctx, userID)
		if err != nil {
			return err
		}
		resp = &dto.UserStatsResponse{
			UserID:            profile.ID,
			GamesPlayed:       profile.Stats.GamesPlayed,
			QuestionsAnswered: profile.Stats.QuestionsAnswered,
			CorrectAnswers:    profile.Stats.CorrectAnswers,
			Accuracy:          profile.Stats.Accuracy(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *profileServiceImpl) getProfile(ctx context.Context, userID string) (*domain.PlayerProfile, error) {
	profile, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return nil, domain.NewInternalError("failed to look up profile", err)
	}
	if profile == nil {
		return nil, domain.NewNotFoundError("User profile not found")
	}
	return profile, nil
}

// profileResponse snapshots the profile into a response. The progress
// map is copied so the view stays stable once the store lock is
// released.
func profileResponse(profile *domain.PlayerProfile) *dto.ProfileResponse {
	progress := make(map[string]int, len(profile.Progress))
	for key, count := range profile.Progress {
		progress[key] = count
	}
	return &dto.ProfileResponse{
		ID:                    profile.ID,
		Email:                 profile.Email,
		DisplayName:           profile.DisplayName,
		Language:              profile.Language,
		XP:                    profile.XP,
		Level:                 profile.Level,
		Progress:              progress,
		CurrentStreak:         profile.CurrentStreak,
		LongestStreak:         profile.LongestStreak,
		LastLoginDate:         profile.LastLoginDate,
		LessonsCompletedToday: profile.LessonsCompletedToday,
		LastLessonDate:        profile.LastLessonDate,
	}
}
