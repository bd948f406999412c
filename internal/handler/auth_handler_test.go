package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mathrush/internal/config"
	"mathrush/internal/dto"
	"mathrush/internal/handler"
	"mathrush/internal/middleware"
	"mathrush/internal/questionbank"
	"mathrush/internal/repository"
	"mathrush/internal/service"
)

// newTestApp wires the full route surface over a fresh in-memory store.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	cfg := &config.Config{
		Game: config.GameConfig{
			DefaultLanguage:          "pt",
			XPPerCorrectAnswer:       10,
			TimeLimitBaseSeconds:     60,
			TimeLimitPerLevelSeconds: 15,
		},
		Questions: config.QuestionsConfig{MaxLevel: 3, PerLevel: 5, Seed: 1},
	}

	store := repository.NewMemoryStore()
	txm := repository.NewMemoryTransactionManager(store)
	users := repository.NewMemoryUserRepository(store)
	profiles := repository.NewMemoryProfileRepository(store)
	questions := repository.NewMemoryQuestionRepository(store)
	sessions := repository.NewMemoryGameSessionRepository(store)
	ranking := repository.NewMemoryRankingRepository(store)
	tokens := repository.NewMemoryTokenStore()

	ctx := t.Context()
	for _, question := range questionbank.Generate(cfg.Questions) {
		require.NoError(t, questions.Save(ctx, question))
	}

	authService := service.NewAuthService(users, profiles, tokens, txm, cfg)
	gameService := service.NewGameService(profiles, questions, sessions, ranking, txm, cfg)
	rankingService := service.NewRankingService(profiles, ranking, txm)

	authHandler := handler.NewAuthHandler(authService)
	gameHandler := handler.NewGameHandler(gameService)
	rankingHandler := handler.NewRankingHandler(rankingService)

	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	app.Post("/auth/register", authHandler.Register)
	app.Post("/auth/login", authHandler.Login)
	app.Post("/auth/logout", middleware.Protected(authService), authHandler.Logout)
	app.Get("/auth/session", authHandler.Session)
	app.Post("/game/start", gameHandler.Start)
	app.Post("/game/answer", gameHandler.Answer)
	app.Post("/game/finish", gameHandler.Finish)
	app.Get("/ranking/me", middleware.Protected(authService), rankingHandler.Me)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}, out interface{}) int {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func TestAuthRoutes(t *testing.T) {
	app := newTestApp(t)

	var reg dto.AuthResponse
	status := doJSON(t, app, http.MethodPost, "/auth/register", "", dto.RegisterRequest{
		Email:    "ana@example.com",
		Password: "s3cret",
	}, &reg)
	assert.Equal(t, http.StatusCreated, status)
	assert.NotEmpty(t, reg.AccessToken)

	// Duplicate registration maps to 409.
	var errResp middleware.ErrorResponse
	status = doJSON(t, app, http.MethodPost, "/auth/register", "", dto.RegisterRequest{
		Email:    "ana@example.com",
		Password: "other",
	}, &errResp)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "CONFLICT", errResp.Code)

	// Wrong password maps to 401.
	status = doJSON(t, app, http.MethodPost, "/auth/login", "", dto.LoginRequest{
		Email:    "ana@example.com",
		Password: "wrong",
	}, &errResp)
	assert.Equal(t, http.StatusUnauthorized, status)

	// Session reflects the live token, then logout revokes it.
	var session dto.SessionResponse
	status = doJSON(t, app, http.MethodGet, "/auth/session", reg.AccessToken, nil, &session)
	assert.Equal(t, http.StatusOK, status)
	assert.True(t, session.Authenticated)

	var out dto.MessageResponse
	status = doJSON(t, app, http.MethodPost, "/auth/logout", reg.AccessToken, nil, &out)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Logged out ana@example.com", out.Detail)

	status = doJSON(t, app, http.MethodGet, "/auth/session", reg.AccessToken, nil, &session)
	assert.Equal(t, http.StatusOK, status)
	assert.False(t, session.Authenticated)
}

func TestProtectedRouteRequiresToken(t *testing.T) {
	app := newTestApp(t)

	var errResp middleware.ErrorResponse
	status := doJSON(t, app, http.MethodGet, "/ranking/me", "", nil, &errResp)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "MISSING_AUTH_HEADER", errResp.Code)

	status = doJSON(t, app, http.MethodGet, "/ranking/me", "bogus", nil, &errResp)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "INVALID_TOKEN", errResp.Code)
}

func TestGameRoutes_FullFlow(t *testing.T) {
	app := newTestApp(t)

	var reg dto.AuthResponse
	status := doJSON(t, app, http.MethodPost, "/auth/register", "", dto.RegisterRequest{
		Email:    "ana@example.com",
		Password: "s3cret",
	}, &reg)
	require.Equal(t, http.StatusCreated, status)

	var start dto.StartGameResponse
	status = doJSON(t, app, http.MethodPost, "/game/start", "", dto.StartGameRequest{
		UserID:        reg.User.ID,
		Level:         1,
		QuestionCount: 3,
	}, &start)
	require.Equal(t, http.StatusCreated, status)
	require.Len(t, start.Questions, 3)

	// A wrong answer reveals the expected one; resubmitting it counts.
	var answer dto.AnswerResponse
	status = doJSON(t, app, http.MethodPost, "/game/answer", "", dto.AnswerRequest{
		SessionID:  start.SessionID,
		QuestionID: start.Questions[0].ID,
		Answer:     "no",
	}, &answer)
	require.Equal(t, http.StatusOK, status)
	assert.False(t, answer.Correct)
	require.NotNil(t, answer.CorrectAnswer)

	status = doJSON(t, app, http.MethodPost, "/game/answer", "", dto.AnswerRequest{
		SessionID:  start.SessionID,
		QuestionID: start.Questions[0].ID,
		Answer:     *answer.CorrectAnswer,
	}, &answer)
	require.Equal(t, http.StatusOK, status)
	assert.True(t, answer.Correct)
	assert.Equal(t, 1, answer.CurrentCorrect)

	var finish dto.FinishGameResponse
	status = doJSON(t, app, http.MethodPost, "/game/finish", "", dto.FinishGameRequest{SessionID: start.SessionID}, &finish)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 1, finish.CorrectAnswers)
	assert.Equal(t, 10, finish.XPEarned)

	// Second finish maps to 409.
	var errResp middleware.ErrorResponse
	status = doJSON(t, app, http.MethodPost, "/game/finish", "", dto.FinishGameRequest{SessionID: start.SessionID}, &errResp)
	assert.Equal(t, http.StatusConflict, status)

	// The finish landed on the leaderboard.
	var me dto.RankingEntryResponse
	status = doJSON(t, app, http.MethodGet, "/ranking/me", reg.AccessToken, nil, &me)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 10, me.XP)
	assert.Equal(t, 1, me.Position)
}

func TestGameRoutes_UnknownSession(t *testing.T) {
	app := newTestApp(t)

	var errResp middleware.ErrorResponse
	status := doJSON(t, app, http.MethodPost, "/game/finish", "", dto.FinishGameRequest{SessionID: "missing"}, &errResp)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", errResp.Code)
}
