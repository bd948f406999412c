package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"mathrush/internal/domain"
	"mathrush/internal/dto"
	"mathrush/internal/logger"
)

// LogService records fire-and-forget client log payloads.
type LogService interface {
	LogError(ctx context.Context, req *dto.ErrorLogRequest) (*dto.MessageResponse, error)
	LogGameSession(ctx context.Context, req *dto.GameSessionLogRequest) (*dto.MessageResponse, error)
}

type logServiceImpl struct {
	logs domain.LogRepository
	txm  domain.TransactionManager
	now  func() time.Time
}

// NewLogService creates a new instance of LogService.
func NewLogService(logs domain.LogRepository, txm domain.TransactionManager) LogService {
	return &logServiceImpl{logs: logs, txm: txm, now: time.Now}
}

func (s *logServiceImpl) LogError(ctx context.Context, req *dto.ErrorLogRequest) (*dto.MessageResponse, error) {
	if req.Message == "" {
		return nil, domain.NewInvalidInputError("Message is required")
	}
	entry := &domain.ErrorLog{
		Timestamp: s.now().UTC(),
		UserID:    req.UserID,
		Message:   req.Message,
		Stack:     req.Stack,
		Context:   req.Context,
	}
	err := s.txm.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.logs.AddErrorLog(ctx, entry); err != nil {
			return domain.NewInternalError("failed to record error log", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	logger.Get().Warn("client error reported",
		zap.String("user_id", req.UserID),
		zap.String("message", req.Message),
	)
	return &dto.MessageResponse{Detail: "Error logged"}, nil
}

func (s *logServiceImpl) LogGameSession(ctx context.Context, req *dto.GameSessionLogRequest) (*dto.MessageResponse, error) {
	if req.UserID == "" || req.SessionID == "" {
		return nil, domain.NewInvalidInputError("user_id and session_id are required")
	}
	entry := &domain.GameSessionLog{
		Timestamp: s.now().UTC(),
		UserID:    req.UserID,
		SessionID: req.SessionID,
		Payload:   req.Payload,
	}
	err := s.txm.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.logs.AddGameSessionLog(ctx, entry); err != nil {
			return domain.NewInternalError("failed to record session log", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	logger.Get().Info("client session log recorded",
		zap.String("user_id", req.UserID),
		zap.String("session_id", req.SessionID),
	)
	return &dto.MessageResponse{Detail: "Session logged"}, nil
}
