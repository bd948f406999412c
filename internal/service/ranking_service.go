package service

import (
	"context"
	"time"

	"mathrush/internal/domain"
	"mathrush/internal/dto"
)

// RankingService defines the interface for leaderboard operations.
// Positions are always recomputed from a fresh sort of the whole entry
// set, so they are consistent with the ordering at the moment of the
// call and never cached stale.
type RankingService interface {
	Update(ctx context.Context, req *dto.RankingUpdateRequest) (*dto.RankingEntryResponse, error)
	GlobalRanking(ctx context.Context) ([]dto.RankingEntryResponse, error)
	GetMe(ctx context.Context, email string) (*dto.RankingEntryResponse, error)
}

type rankingServiceImpl struct {
	profiles domain.ProfileRepository
	ranking  domain.RankingRepository
	txm      domain.TransactionManager
	now      func() time.Time
}

// NewRankingService creates a new instance of RankingService.
func NewRankingService(profiles domain.ProfileRepository, ranking domain.RankingRepository, txm domain.TransactionManager) RankingService {
	return &rankingServiceImpl{
		profiles: profiles,
		ranking:  ranking,
		txm:      txm,
		now:      time.Now,
	}
}

// Update upserts the leaderboard entry for the user. When a profile
// exists, supplied xp/level are applied onto the profile first and the
// entry is derived from the profile, whose display name (or email)
// supersedes the display_name argument. Without a profile both xp and
// level are required and the entry is built from the raw arguments.
func (s *rankingServiceImpl) Update(ctx context.Context, req *dto.RankingUpdateRequest) (*dto.RankingEntryResponse, error) {
	var resp *dto.RankingEntryResponse
	err := s.txm.WithTransaction(ctx, func(ctx context.Context) error {
		profile, err := s.profiles.Get(ctx, req.UserID)
		if err != nil {
			return domain.NewInternalError("failed to look up profile", err)
		}

		var xp, level int
		var displayName string
		if profile != nil {
			if req.XP != nil {
				profile.XP = *req.XP
			}
			if req.Level != nil {
				profile.Level = *req.Level
			}
			if err := s.profiles.Save(ctx, profile); err != nil {
				return domain.NewInternalError("failed to save profile", err)
			}
			xp = profile.XP
			level = profile.Level
			displayName = profile.DisplayName
			if displayName == "" {
				displayName = profile.Email
			}
		} else {
			if req.XP == nil || req.Level == nil {
				return domain.NewNotFoundError("User profile not found")
			}
			xp = *req.XP
			level = *req.Level
			if req.DisplayName != nil {
				displayName = *req.DisplayName
			}
		}

		entry := &domain.RankingEntry{
			UserID:      req.UserID,
			DisplayName: displayName,
			XP:          xp,
			Level:       level,
			UpdatedAt:   s.now().UTC(),
		}
		if err := s.ranking.Save(ctx, entry); err != nil {
			return domain.NewInternalError("failed to save ranking entry", err)
		}
		resp, err = s.entryWithPosition(ctx, entry.UserID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// GlobalRanking returns every entry ordered by descending xp with
// ascending user id as the tie-break, decorated with 1-based positions.
func (s *rankingServiceImpl) GlobalRanking(ctx context.Context) ([]dto.RankingEntryResponse, error) {
	var resp []dto.RankingEntryResponse
	err := s.txm.WithReadTransaction(ctx, func(ctx context.Context) error {
		entries, err := s.sortedEntries(ctx)
		if err != nil {
			return err
		}
		resp = make([]dto.RankingEntryResponse, len(entries))
		for i, entry := range entries {
			resp[i] = rankingEntryResponse(entry, i+1)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// GetMe resolves the email to a profile and returns its entry with
// position, synthesizing and persisting an entry from the current
// profile state when none exists yet.
func (s *rankingServiceImpl) GetMe(ctx context.Context, email string) (*dto.RankingEntryResponse, error) {
	var resp *dto.RankingEntryResponse
	err := s.txm.WithTransaction(ctx, func(ctx context.Context) error {
		profile, err := s.profiles.GetByEmail(ctx, email)
		if err != nil {
			return domain.NewInternalError("failed to look up profile", err)
		}
		if profile == nil {
			return domain.NewNotFoundError("User profile not found")
		}

		entry, err := s.ranking.Get(ctx, profile.ID)
		if err != nil {
			return domain.NewInternalError("failed to look up ranking entry", err)
		}
		if entry == nil {
			displayName := profile.DisplayName
			if displayName == "" {
				displayName = profile.Email
			}
			entry = &domain.RankingEntry{
				UserID:      profile.ID,
				DisplayName: displayName,
				XP:          profile.XP,
				Level:       profile.Level,
				UpdatedAt:   s.now().UTC(),
			}
			if err := s.ranking.Save(ctx, entry); err != nil {
				return domain.NewInternalError("failed to save ranking entry", err)
			}
		}
		resp, err = s.entryWithPosition(ctx, entry.UserID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *rankingServiceImpl) sortedEntries(ctx context.Context) ([]*domain.RankingEntry, error) {
	entries, err := s.ranking.List(ctx)
	if err != nil {
		return nil, domain.NewInternalError("failed to list ranking entries", err)
	}
	domain.SortRanking(entries)
	return entries, nil
}

// entryWithPosition re-sorts the full entry set and scans for the user.
func (s *rankingServiceImpl) entryWithPosition(ctx context.Context, userID string) (*dto.RankingEntryResponse, error) {
	entries, err := s.sortedEntries(ctx)
	if err != nil {
		return nil, err
	}
	for i, entry := range entries {
		if entry.UserID == userID {
			resp := rankingEntryResponse(entry, i+1)
			return &resp, nil
		}
	}
	return nil, domain.NewNotFoundError("Ranking entry not found")
}

func rankingEntryResponse(entry *domain.RankingEntry, position int) dto.RankingEntryResponse {
	return dto.RankingEntryResponse{
		UserID:      entry.UserID,
		DisplayName: entry.DisplayName,
		XP:          entry.XP,
		Level:       entry.Level,
		Position:    position,
		UpdatedAt:   entry.UpdatedAt.Format(time.RFC3339),
	}
}
