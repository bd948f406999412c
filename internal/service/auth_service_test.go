package service

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mathrush/internal/domain"
	"mathrush/internal/dto"
	"mathrush/internal/repository"
)

type authFixture struct {
	profiles domain.ProfileRepository
	tokens   domain.TokenStore
	auth     AuthService
	impl     *authServiceImpl
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	store := repository.NewMemoryStore()
	txm := repository.NewMemoryTransactionManager(store)
	users := repository.NewMemoryUserRepository(store)
	profiles := repository.NewMemoryProfileRepository(store)
	tokens := repository.NewMemoryTokenStore()

	auth := NewAuthService(users, profiles, tokens, txm, testConfig())
	return &authFixture{
		profiles: profiles,
		tokens:   tokens,
		auth:     auth,
		impl:     auth.(*authServiceImpl),
	}
}

// googleIDToken builds an unsigned token carrying the email claim.
func googleIDToken(t *testing.T, email string) string {
	t.Helper()
	header, err := json.Marshal(map[string]string{"alg": "none", "typ": "JWT"})
	require.NoError(t, err)
	claims, err := json.Marshal(map[string]string{"email": email})
	require.NoError(t, err)
	enc := base64.RawURLEncoding
	return enc.EncodeToString(header) + "." + enc.EncodeToString(claims) + "."
}

func TestAuthService_Register(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	resp, err := f.auth.Register(ctx, &dto.RegisterRequest{Email: "ana@example.com", Password: "s3cret"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, "ana@example.com", resp.User.Email)
	assert.Equal(t, domain.ProviderLocal, resp.User.Provider)
	assert.NotEmpty(t, resp.User.ID)

	// Registration creates the default profile and starts the streak.
	profile, err := f.profiles.GetByEmail(ctx, "ana@example.com")
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, resp.User.ID, profile.ID)
	assert.Equal(t, "pt", profile.Language)
	assert.Equal(t, 1, profile.Level)
	assert.Equal(t, 1, profile.CurrentStreak)
	assert.Equal(t, 1, profile.LongestStreak)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	_, err := f.auth.Register(ctx, &dto.RegisterRequest{Email: "ana@example.com", Password: "s3cret"})
	require.NoError(t, err)

	_, err = f.auth.Register(ctx, &dto.RegisterRequest{Email: "ana@example.com", Password: "other"})
	requireCode(t, err, domain.CodeConflict)
}

func TestAuthService_Register_MissingFields(t *testing.T) {
	f := newAuthFixture(t)

	_, err := f.auth.Register(context.Background(), &dto.RegisterRequest{Email: "ana@example.com"})
	requireCode(t, err, domain.CodeInvalidInput)
}

func TestAuthService_Login(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	reg, err := f.auth.Register(ctx, &dto.RegisterRequest{Email: "ana@example.com", Password: "s3cret"})
	require.NoError(t, err)

	resp, err := f.auth.Login(ctx, &dto.LoginRequest{Email: "ana@example.com", Password: "s3cret"})
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, resp.User.ID)
	assert.NotEqual(t, reg.AccessToken, resp.AccessToken)
}

func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	_, err := f.auth.Register(ctx, &dto.RegisterRequest{Email: "ana@example.com", Password: "s3cret"})
	require.NoError(t, err)

	// Wrong password and unknown email fail identically.
	_, err = f.auth.Login(ctx, &dto.LoginRequest{Email: "ana@example.com", Password: "wrong"})
	requireCode(t, err, domain.CodeUnauthenticated)

	_, err = f.auth.Login(ctx, &dto.LoginRequest{Email: "nobody@example.com", Password: "s3cret"})
	requireCode(t, err, domain.CodeUnauthenticated)
}

func TestAuthService_LoginGoogle(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	token := googleIDToken(t, "g@example.com")
	resp, err := f.auth.LoginGoogle(ctx, &dto.GoogleLoginRequest{IDToken: token})
	require.NoError(t, err)
	assert.Equal(t, "g@example.com", resp.User.Email)
	assert.Equal(t, domain.ProviderGoogle, resp.User.Provider)

	profile, err := f.profiles.GetByEmail(ctx, "g@example.com")
	require.NoError(t, err)
	require.NotNil(t, profile)

	// A second login reuses the credential.
	again, err := f.auth.LoginGoogle(ctx, &dto.GoogleLoginRequest{IDToken: token})
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, again.User.ID)
}

func TestAuthService_LoginGoogle_InvalidToken(t *testing.T) {
	f := newAuthFixture(t)

	_, err := f.auth.LoginGoogle(context.Background(), &dto.GoogleLoginRequest{IDToken: "not-a-jwt"})
	requireCode(t, err, domain.CodeInvalidInput)
}

func TestAuthService_PasswordLoginOnGoogleAccount(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	_, err := f.auth.LoginGoogle(ctx, &dto.GoogleLoginRequest{IDToken: googleIDToken(t, "g@example.com")})
	require.NoError(t, err)

	_, err = f.auth.Login(ctx, &dto.LoginRequest{Email: "g@example.com", Password: "anything"})
	requireCode(t, err, domain.CodeUnauthenticated)
}

func TestAuthService_LogoutAndSession(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	reg, err := f.auth.Register(ctx, &dto.RegisterRequest{Email: "ana@example.com", Password: "s3cret"})
	require.NoError(t, err)

	session, err := f.auth.Session(ctx, reg.AccessToken)
	require.NoError(t, err)
	assert.True(t, session.Authenticated)
	require.NotNil(t, session.User)
	assert.Equal(t, "ana@example.com", session.User.Email)

	out, err := f.auth.Logout(ctx, reg.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "Logged out ana@example.com", out.Detail)

	_, err = f.auth.Logout(ctx, reg.AccessToken)
	requireCode(t, err, domain.CodeUnauthenticated)

	session, err = f.auth.Session(ctx, reg.AccessToken)
	require.NoError(t, err)
	assert.False(t, session.Authenticated)
	assert.Nil(t, session.User)
}

func TestAuthService_Session_EmptyToken(t *testing.T) {
	f := newAuthFixture(t)

	session, err := f.auth.Session(context.Background(), "")
	require.NoError(t, err)
	assert.False(t, session.Authenticated)
}

func TestAuthService_ResetPassword_NeutralResponse(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	_, err := f.auth.Register(ctx, &dto.RegisterRequest{Email: "ana@example.com", Password: "s3cret"})
	require.NoError(t, err)

	known, err := f.auth.ResetPassword(ctx, &dto.ResetPasswordRequest{Email: "ana@example.com"})
	require.NoError(t, err)
	unknown, err := f.auth.ResetPassword(ctx, &dto.ResetPasswordRequest{Email: "nobody@example.com"})
	require.NoError(t, err)
	assert.Equal(t, known.Detail, unknown.Detail)
}

func TestAuthService_LoginStreak(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	day := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	f.impl.now = func() time.Time { return day }

	_, err := f.auth.Register(ctx, &dto.RegisterRequest{Email: "ana@example.com", Password: "s3cret"})
	require.NoError(t, err)

	login := func() *domain.PlayerProfile {
		t.Helper()
		_, err := f.auth.Login(ctx, &dto.LoginRequest{Email: "ana@example.com", Password: "s3cret"})
		require.NoError(t, err)
		profile, err := f.profiles.GetByEmail(ctx, "ana@example.com")
		require.NoError(t, err)
		return profile
	}

	// Same day: no double count.
	profile := login()
	assert.Equal(t, 1, profile.CurrentStreak)

	// Next day extends the streak.
	day = day.AddDate(0, 0, 1)
	profile = login()
	assert.Equal(t, 2, profile.CurrentStreak)
	assert.Equal(t, 2, profile.LongestStreak)

	// A gap resets the streak but keeps the longest.
	day = day.AddDate(0, 0, 3)
	profile = login()
	assert.Equal(t, 1, profile.CurrentStreak)
	assert.Equal(t, 2, profile.LongestStreak)
}
