package service

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"mathrush/internal/config"
	"mathrush/internal/domain"
	"mathrush/internal/dto"
	"mathrush/internal/logger"
)

// GameService runs the game-session state machine: a session starts
// ACTIVE, accepts answer submissions (including corrections of earlier
// ones), and is finished exactly once, which pays out xp and updates
// the profile, stats and leaderboard atomically.
type GameService interface {
	Start(ctx context.Context, req *dto.StartGameRequest) (*dto.StartGameResponse, error)
	Answer(ctx context.Context, req *dto.AnswerRequest) (*dto.AnswerResponse, error)
	Finish(ctx context.Context, req *dto.FinishGameRequest) (*dto.FinishGameResponse, error)
}

type gameServiceImpl struct {
	profiles  domain.ProfileRepository
	questions domain.QuestionRepository
	sessions  domain.GameSessionRepository
	ranking   domain.RankingRepository
	txm       domain.TransactionManager
	cfg       *config.Config
	now       func() time.Time
}

// NewGameService creates a new instance of GameService.
func NewGameService(
	profiles domain.ProfileRepository,
	questions domain.QuestionRepository,
	sessions domain.GameSessionRepository,
	ranking domain.RankingRepository,
	txm domain.TransactionManager,
	cfg *config.Config,
) GameService {
	return &gameServiceImpl{
		profiles:  profiles,
		questions: questions,
		sessions:  sessions,
		ranking:   ranking,
		txm:       txm,
		cfg:       cfg,
		now:       time.Now,
	}
}

// Start creates a new active session for the user at the given level.
// When fewer questions exist than requested, every available question
// is used; otherwise the requested number is drawn without replacement.
// The question order is randomized either way.
func (s *gameServiceImpl) Start(ctx context.Context, req *dto.StartGameRequest) (*dto.StartGameResponse, error) {
	if req.QuestionCount <= 0 {
		return nil, domain.NewInvalidInputError("question_count must be positive")
	}

	var resp *dto.StartGameResponse
	err := s.txm.WithTransaction(ctx, func(ctx context.Context) error {
		profile, err := s.profiles.Get(ctx, req.UserID)
		if err != nil {
			return domain.NewInternalError("failed to look up profile", err)
		}
		if profile == nil {
			return domain.NewNotFoundError("User profile not found")
		}

		available, err := s.questions.ListByLevel(ctx, req.Level)
		if err != nil {
			return domain.NewInternalError("failed to list questions", err)
		}
		if len(available) == 0 {
			return domain.NewNotFoundError("No questions for level")
		}

		selected := make([]*domain.QuestionRecord, len(available))
		copy(selected, available)
		rand.Shuffle(len(selected), func(i, j int) {
			selected[i], selected[j] = selected[j], selected[i]
		})
		if req.QuestionCount < len(selected) {
			selected = selected[:req.QuestionCount]
		}

		questionIDs := make([]string, len(selected))
		views := make([]dto.QuestionResponse, len(selected))
		for i, question := range selected {
			questionIDs[i] = question.ID
			views[i] = questionResponse(question)
		}

		session := domain.NewGameSession(
			uuid.NewString(),
			req.UserID,
			req.Level,
			questionIDs,
			s.timeLimit(req.Level),
		)
		if err := s.sessions.Save(ctx, session); err != nil {
			return domain.NewInternalError("failed to save session", err)
		}

		resp = &dto.StartGameResponse{
			SessionID:        session.ID,
			Level:            req.Level,
			TimeLimitSeconds: session.TimeLimitSeconds,
			Questions:        views,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// Answer submits (or corrects) an answer within an active session. The
// expected answer is revealed only when the submission is incorrect.
func (s *gameServiceImpl) Answer(ctx context.Context, req *dto.AnswerRequest) (*dto.AnswerResponse, error) {
	var resp *dto.AnswerResponse
	err := s.txm.WithTransaction(ctx, func(ctx context.Context) error {
		session, err := s.getSession(ctx, req.SessionID)
		if err != nil {
			return err
		}
		if session.Finished {
			return domain.NewConflictError("Session already finished")
		}
		if !session.HasQuestion(req.QuestionID) {
			return domain.NewInvalidInputError("Question not in session")
		}
		question, err := s.questions.Get(ctx, req.QuestionID)
		if err != nil {
			return domain.NewInternalError("failed to look up question", err)
		}
		if question == nil {
			return domain.NewNotFoundError("Question not found")
		}

		correct := session.RecordAnswer(req.QuestionID, req.Answer, question.Answer)
		if err := s.sessions.Save(ctx, session); err != nil {
			return domain.NewInternalError("failed to save session", err)
		}
		resp = &dto.AnswerResponse{
			Correct:        correct,
			CurrentCorrect: session.CorrectCount,
		}
		if !correct {
			answer := question.Answer
			resp.CorrectAnswer = &answer
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// Finish finalizes the session exactly once. Inside one transaction it
// marks the session finished, pays out xp, recomputes the level,
// bumps the stats counters and upserts the leaderboard entry, so no
// concurrent reader can observe the xp without the matching level,
// stats and ranking.
func (s *gameServiceImpl) Finish(ctx context.Context, req *dto.FinishGameRequest) (*dto.FinishGameResponse, error) {
	var resp *dto.FinishGameResponse
	err := s.txm.WithTransaction(ctx, func(ctx context.Context) error {
		session, err := s.getSession(ctx, req.SessionID)
		if err != nil {
			return err
		}
		if session.Finished {
			return domain.NewConflictError("Session already finished")
		}
		profile, err := s.profiles.Get(ctx, session.UserID)
		if err != nil {
			return domain.NewInternalError("failed to look up profile", err)
		}
		if profile == nil {
			// Checked before any mutation so a failed finish leaves
			// the session active and the store untouched.
			return domain.NewNotFoundError("User profile not found")
		}

		session.Finished = true
		totalQuestions := len(session.QuestionIDs)
		correctAnswers := session.CorrectCount
		xpEarned := correctAnswers * s.cfg.Game.XPPerCorrectAnswer

		profile.XP += xpEarned
		profile.Level = domain.CalculateLevel(profile.XP)
		profile.Stats.GamesPlayed++
		profile.Stats.QuestionsAnswered += totalQuestions
		profile.Stats.CorrectAnswers += correctAnswers

		if err := s.sessions.Save(ctx, session); err != nil {
			return domain.NewInternalError("failed to save session", err)
		}
		if err := s.profiles.Save(ctx, profile); err != nil {
			return domain.NewInternalError("failed to save profile", err)
		}

		displayName := profile.DisplayName
		if displayName == "" {
			displayName = profile.Email
		}
		entry := &domain.RankingEntry{
			UserID:      profile.ID,
			DisplayName: displayName,
			XP:          profile.XP,
			Level:       profile.Level,
			UpdatedAt:   s.now().UTC(),
		}
		if err := s.ranking.Save(ctx, entry); err != nil {
			return domain.NewInternalError("failed to save ranking entry", err)
		}

		resp = &dto.FinishGameResponse{
			SessionID:      session.ID,
			UserID:         session.UserID,
			CorrectAnswers: correctAnswers,
			TotalQuestions: totalQuestions,
			XPEarned:       xpEarned,
			TotalXP:        profile.XP,
			Level:          profile.Level,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Get().Info("game session finished",
		zap.String("session_id", resp.SessionID),
		zap.String("user_id", resp.UserID),
		zap.Int("correct", resp.CorrectAnswers),
		zap.Int("xp_earned", resp.XPEarned),
	)
	return resp, nil
}

func (s *gameServiceImpl) getSession(ctx context.Context, sessionID string) (*domain.GameSessionRecord, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, domain.NewInternalError("failed to look up session", err)
	}
	if session == nil {
		return nil, domain.NewNotFoundError("Session not found")
	}
	return session, nil
}

// timeLimit is advisory metadata for the caller; the engine does not
// expire sessions on elapsed time.
func (s *gameServiceImpl) timeLimit(level int) int {
	return s.cfg.Game.TimeLimitBaseSeconds + level*s.cfg.Game.TimeLimitPerLevelSeconds
}
