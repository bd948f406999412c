package service

import (
	"context"

	"mathrush/internal/domain"
	"mathrush/internal/dto"
)

// ProgressService defines the interface for lesson-progress operations.
type ProgressService interface {
	Update(ctx context.Context, req *dto.ProgressUpdateRequest) (*dto.ProgressResponse, error)
	Get(ctx context.Context, userID string) (*dto.ProgressResponse, error)
}

type progressServiceImpl struct {
	profiles domain.ProfileRepository
	txm      domain.TransactionManager
}

// NewProgressService creates a new instance of ProgressService.
func NewProgressService(profiles domain.ProfileRepository, txm domain.TransactionManager) ProgressService {
	return &progressServiceImpl{profiles: profiles, txm: txm}
}

// Update applies an xp delta (clamped at zero), merges the supplied
// progress counts key-wise, and recomputes the level from the
// progression curve.
func (s *progressServiceImpl) Update(ctx context.Context, req *dto.ProgressUpdateRequest) (*dto.ProgressResponse, error) {
	var resp *dto.ProgressResponse
	err := s.txm.WithTransaction(ctx, func(ctx context.Context) error {
		profile, err := s.getProfile(ctx, req.UserID)
		if err != nil {
			return err
		}
		if req.XPDelta != 0 {
			profile.XP += req.XPDelta
			if profile.XP < 0 {
				profile.XP = 0
			}
		}
		if req.Progress != nil {
			if profile.Progress == nil {
				profile.Progress = make(map[string]int, len(req.Progress))
			}
			for key, count := range req.Progress {
				profile.Progress[key] = count
			}
		}
		profile.Level = domain.CalculateLevel(profile.XP)
		if err := s.profiles.Save(ctx, profile); err != nil {
			return domain.NewInternalError("failed to save profile", err)
		}
		resp = progressResponse(profile)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// Get returns the progression view of a profile.
func (s *progressServiceImpl) Get(ctx context.Context, userID string) (*dto.ProgressResponse, error) {
	var resp *dto.ProgressResponse
	err := s.txm.WithReadTransaction(ctx, func(ctx context.Context) error {
		profile, err := s.getProfile(ctx, userID)
		if err != nil {
			return err
		}
		resp = progressResponse(profile)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *progressServiceImpl) getProfile(ctx context.Context, userID string) (*domain.PlayerProfile, error) {
	profile, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return nil, domain.NewInternalError("failed to look up profile", err)
	}
	if profile == nil {
		return nil, domain.NewNotFoundError("User profile not found")
	}
	return profile, nil
}

func progressResponse(profile *domain.PlayerProfile) *dto.ProgressResponse {
	progress := make(map[string]int, len(profile.Progress))
	for key, count := range profile.Progress {
		progress[key] = count
	}
	return &dto.ProgressResponse{
		UserID:   profile.ID,
		XP:       profile.XP,
		Level:    profile.Level,
		Progress: progress,
	}
}
