package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"mathrush/internal/config"
	"mathrush/internal/domain"
	"mathrush/internal/dto"
	"mathrush/internal/logger"
	"mathrush/internal/security"
	"mathrush/internal/util"
)

// AuthService defines the interface for authentication operations.
// Every successful authentication event (register, login, google login)
// issues a fresh opaque session token and touches the login streak on
// the player's profile.
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	LoginGoogle(ctx context.Context, req *dto.GoogleLoginRequest) (*dto.AuthResponse, error)
	Logout(ctx context.Context, token string) (*dto.MessageResponse, error)
	Session(ctx context.Context, token string) (*dto.SessionResponse, error)
	ResetPassword(ctx context.Context, req *dto.ResetPasswordRequest) (*dto.MessageResponse, error)
	// ResolveToken maps a session token to the owning credential, for
	// use by the auth middleware.
	ResolveToken(ctx context.Context, token string) (*dto.UserResponse, error)
}

type authServiceImpl struct {
	users    domain.UserCredentialRepository
	profiles domain.ProfileRepository
	tokens   domain.TokenStore
	txm      domain.TransactionManager
	cfg      *config.Config
	now      func() time.Time
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(
	users domain.UserCredentialRepository,
	profiles domain.ProfileRepository,
	tokens domain.TokenStore,
	txm domain.TransactionManager,
	cfg *config.Config,
) AuthService {
	return &authServiceImpl{
		users:    users,
		profiles: profiles,
		tokens:   tokens,
		txm:      txm,
		cfg:      cfg,
		now:      time.Now,
	}
}

// Register creates a local credential and its profile, then opens a
// session. Registration conflicts when the email is already taken by
// any provider.
func (s *authServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, domain.NewInvalidInputError("Email and password are required")
	}

	var cred *domain.UserCredential
	err := s.txm.WithTransaction(ctx, func(ctx context.Context) error {
		existing, err := s.users.GetByEmail(ctx, req.Email)
		if err != nil {
			return domain.NewInternalError("failed to look up credential", err)
		}
		if existing != nil {
			return domain.NewConflictError("Email already registered")
		}

		salt, err := security.GenerateSalt()
		if err != nil {
			return domain.NewInternalError("failed to generate salt", err)
		}
		hash := security.HashPassword(req.Password, salt)
		cred = &domain.UserCredential{
			ID:              util.NewULID(),
			Provider:        domain.ProviderLocal,
			SaltB64:         security.EncodeB64(salt),
			PasswordHashB64: security.EncodeB64(hash),
		}
		if err := s.users.Save(ctx, req.Email, cred); err != nil {
			return domain.NewInternalError("failed to save credential", err)
		}
		return s.ensureProfile(ctx, req.Email, cred.ID)
	})
	if err != nil {
		return nil, err
	}

	logger.Get().Info("user registered", zap.String("email", req.Email), zap.String("user_id", cred.ID))
	return s.openSession(ctx, req.Email, cred)
}

// Login authenticates a local credential. Any mismatch, including an
// unknown email or a google-only account, yields the same error so the
// response does not leak which emails exist.
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	var cred *domain.UserCredential
	err := s.txm.WithTransaction(ctx, func(ctx context.Context) error {
		existing, err := s.users.GetByEmail(ctx, req.Email)
		if err != nil {
			return domain.NewInternalError("failed to look up credential", err)
		}
		if existing == nil || existing.Provider != domain.ProviderLocal {
			return domain.NewUnauthenticatedError("Invalid credentials")
		}
		if !security.VerifyPassword(req.Password, existing.SaltB64, existing.PasswordHashB64) {
			return domain.NewUnauthenticatedError("Invalid credentials")
		}
		cred = existing
		return s.touchLogin(ctx, req.Email)
	})
	if err != nil {
		return nil, err
	}
	return s.openSession(ctx, req.Email, cred)
}

// LoginGoogle authenticates via a Google ID token, creating the
// credential and profile on first sight of the email.
func (s *authServiceImpl) LoginGoogle(ctx context.Context, req *dto.GoogleLoginRequest) (*dto.AuthResponse, error) {
	email, err := security.EmailFromIDToken(req.IDToken)
	if err != nil {
		return nil, domain.NewInvalidInputError("Invalid id_token")
	}

	var cred *domain.UserCredential
	err = s.txm.WithTransaction(ctx, func(ctx context.Context) error {
		existing, err := s.users.GetByEmail(ctx, email)
		if err != nil {
			return domain.NewInternalError("failed to look up credential", err)
		}
		if existing == nil {
			existing = &domain.UserCredential{
				ID:       util.NewULID(),
				Provider: domain.ProviderGoogle,
			}
			if err := s.users.Save(ctx, email, existing); err != nil {
				return domain.NewInternalError("failed to save credential", err)
			}
		}
		cred = existing
		return s.ensureProfile(ctx, email, cred.ID)
	})
	if err != nil {
		return nil, err
	}
	return s.openSession(ctx, email, cred)
}

// Logout revokes the session token.
func (s *authServiceImpl) Logout(ctx context.Context, token string) (*dto.MessageResponse, error) {
	email, err := s.tokens.Resolve(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrTokenNotFound) {
			return nil, domain.NewUnauthenticatedError("Invalid session")
		}
		return nil, domain.NewInternalError("failed to resolve session", err)
	}
	if err := s.tokens.Delete(ctx, token); err != nil {
		return nil, domain.NewInternalError("failed to delete session", err)
	}
	return &dto.MessageResponse{Detail: "Logged out " + email}, nil
}

// Session reports whether the token maps to a live session. An empty or
// unknown token is not an error; the response simply says so.
func (s *authServiceImpl) Session(ctx context.Context, token string) (*dto.SessionResponse, error) {
	if token == "" {
		return &dto.SessionResponse{Authenticated: false}, nil
	}
	user, err := s.ResolveToken(ctx, token)
	if err != nil {
		var domainErr *domain.DomainError
		if errors.As(err, &domainErr) && domainErr.Code == domain.CodeUnauthenticated {
			return &dto.SessionResponse{Authenticated: false}, nil
		}
		return nil, err
	}
	return &dto.SessionResponse{Authenticated: true, User: user}, nil
}

// ResetPassword issues a reset token for local credentials. The
// response is the same whether or not the email exists.
func (s *authServiceImpl) ResetPassword(ctx context.Context, req *dto.ResetPasswordRequest) (*dto.MessageResponse, error) {
	var cred *domain.UserCredential
	err := s.txm.WithReadTransaction(ctx, func(ctx context.Context) error {
		existing, err := s.users.GetByEmail(ctx, req.Email)
		if err != nil {
			return domain.NewInternalError("failed to look up credential", err)
		}
		cred = existing
		return nil
	})
	if err != nil {
		return nil, err
	}

	if cred != nil && cred.Provider == domain.ProviderLocal {
		token, err := security.NewResetToken()
		if err != nil {
			return nil, domain.NewInternalError("failed to generate reset token", err)
		}
		if err := s.tokens.SetResetToken(ctx, req.Email, token); err != nil {
			return nil, domain.NewInternalError("failed to store reset token", err)
		}
		logger.Get().Info("password reset token issued", zap.String("email", req.Email))
	}
	return &dto.MessageResponse{Detail: "If the email exists, a reset link was sent."}, nil
}

// ResolveToken resolves a session token to its credential.
func (s *authServiceImpl) ResolveToken(ctx context.Context, token string) (*dto.UserResponse, error) {
	email, err := s.tokens.Resolve(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrTokenNotFound) {
			return nil, domain.NewUnauthenticatedError("Invalid session")
		}
		return nil, domain.NewInternalError("failed to resolve session", err)
	}

	var cred *domain.UserCredential
	err = s.txm.WithReadTransaction(ctx, func(ctx context.Context) error {
		existing, err := s.users.GetByEmail(ctx, email)
		if err != nil {
			return domain.NewInternalError("failed to look up credential", err)
		}
		cred = existing
		return nil
	})
	if err != nil {
		return nil, err
	}
	if cred == nil {
		return nil, domain.NewUnauthenticatedError("Invalid session")
	}
	return &dto.UserResponse{ID: cred.ID, Email: email, Provider: cred.Provider}, nil
}

// ensureProfile creates a default profile for the email if one does
// not exist yet, and touches the login streak either way. Must run
// inside a write transaction.
func (s *authServiceImpl) ensureProfile(ctx context.Context, email, userID string) error {
	profile, err := s.profiles.GetByEmail(ctx, email)
	if err != nil {
		return domain.NewInternalError("failed to look up profile", err)
	}
	if profile == nil {
		profile = &domain.PlayerProfile{
			ID:       userID,
			Email:    email,
			Language: s.cfg.Game.DefaultLanguage,
			Level:    1,
			Progress: make(map[string]int),
		}
	}
	profile.TouchLogin(s.now())
	if err := s.profiles.Save(ctx, profile); err != nil {
		return domain.NewInternalError("failed to save profile", err)
	}
	return nil
}

// touchLogin updates the streak on an existing profile, if any. Must
// run inside a write transaction.
func (s *authServiceImpl) touchLogin(ctx context.Context, email string) error {
	profile, err := s.profiles.GetByEmail(ctx, email)
	if err != nil {
		return domain.NewInternalError("failed to look up profile", err)
	}
	if profile == nil {
		return nil
	}
	profile.TouchLogin(s.now())
	if err := s.profiles.Save(ctx, profile); err != nil {
		return domain.NewInternalError("failed to save profile", err)
	}
	return nil
}

// openSession mints a session token. The token store is self-locking,
// so this runs outside engine transactions.
func (s *authServiceImpl) openSession(ctx context.Context, email string, cred *domain.UserCredential) (*dto.AuthResponse, error) {
	token, err := security.NewSessionToken()
	if err != nil {
		return nil, domain.NewInternalError("failed to generate session token", err)
	}
	if err := s.tokens.Save(ctx, token, email); err != nil {
		return nil, domain.NewInternalError("failed to store session token", err)
	}
	return &dto.AuthResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        dto.UserResponse{ID: cred.ID, Email: email, Provider: cred.Provider},
	}, nil
}
