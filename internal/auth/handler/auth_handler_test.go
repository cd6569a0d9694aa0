package handler_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/AniTigerSib/BookTrackerBackend/config"
	"github.com/AniTigerSib/BookTrackerBackend/internal/auth/domain"
	"github.com/AniTigerSib/BookTrackerBackend/internal/auth/dto"
	"github.com/AniTigerSib/BookTrackerBackend/internal/auth/handler"
	"github.com/AniTigerSib/BookTrackerBackend/internal/auth/service"
	"github.com/AniTigerSib/BookTrackerBackend/internal/mocks"
	"github.com/AniTigerSib/BookTrackerBackend/pkg/constant"
)

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			AccessTokenTTL:  15 * time.Minute,
			RefreshTokenTTL: 720 * time.Hour,
		},
	}
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) *http.Response {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	return resp
}

func decodeTokenPair(t *testing.T, resp *http.Response) dto.TokenPair {
	t.Helper()

	var pair dto.TokenPair
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&pair))

	return pair
}

func TestRegister(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	mockTokens := mocks.NewMockTokenGenerator(ctrl)
	userService := service.NewUserService(mockRepo, mockTokens, nil, testConfig())
	authHandler := handler.NewAuthHandler(userService)

	app := fiber.New()
	app.Post("/register", authHandler.Register)

	t.Run("success", func(t *testing.T) {
		mockRepo.EXPECT().GetByLogin(gomock.Any(), "alice").Return(nil, nil)
		mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ interface{}, u *domain.User) error {
				u.ID = 1
				return nil
			})
		mockTokens.EXPECT().IssueRefreshToken(int64(1), "alice").Return("refresh-1", nil)
		mockRepo.EXPECT().UpdateRefreshToken(gomock.Any(), int64(1), gomock.Any()).Return(nil)
		mockTokens.EXPECT().IssueAccessToken(int64(1), "alice").Return("access-1", nil)

		resp := postJSON(t, app, "/register", dto.RegisterInput{Login: "alice", Password: "password"})
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

		pair := decodeTokenPair(t, resp)
		assert.Equal(t, "access-1", pair.AccessToken)
		assert.Equal(t, "refresh-1", pair.RefreshToken)
	})

	t.Run("bad request", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/register", bytes.NewReader([]byte("")))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("missing credentials", func(t *testing.T) {
		resp := postJSON(t, app, "/register", dto.RegisterInput{Login: "alice"})
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("duplicate login", func(t *testing.T) {
		mockRepo.EXPECT().GetByLogin(gomock.Any(), "alice").Return(&domain.User{ID: 1, Login: "alice"}, nil)

		resp := postJSON(t, app, "/register", dto.RegisterInput{Login: "alice", Password: "password"})
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	mockTokens := mocks.NewMockTokenGenerator(ctrl)
	userService := service.NewUserService(mockRepo, mockTokens, nil, testConfig())
	authHandler := handler.NewAuthHandler(userService)

	app := fiber.New()
	app.Post("/login", authHandler.Login)

	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.MinCost)
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		refresh := "stored-refresh"
		user := &domain.User{ID: 1, Login: "alice", PasswordHash: string(hash), RefreshToken: &refresh}

		mockRepo.EXPECT().GetByLogin(gomock.Any(), "alice").Return(user, nil)
		mockTokens.EXPECT().VerifyRefreshToken("stored-refresh").Return(&service.JWTCustomClaims{UserID: 1, Login: "alice"}, nil)
		mockTokens.EXPECT().IssueAccessToken(int64(1), "alice").Return("access-1", nil)

		resp := postJSON(t, app, "/login", dto.LoginInput{Login: "alice", Password: "password"})
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		pair := decodeTokenPair(t, resp)
		assert.Equal(t, "stored-refresh", pair.RefreshToken)
	})

	t.Run("unknown login", func(t *testing.T) {
		mockRepo.EXPECT().GetByLogin(gomock.Any(), "ghost").Return(nil, nil)

		resp := postJSON(t, app, "/login", dto.LoginInput{Login: "ghost", Password: "password"})
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("wrong password", func(t *testing.T) {
		user := &domain.User{ID: 1, Login: "alice", PasswordHash: string(hash)}
		mockRepo.EXPECT().GetByLogin(gomock.Any(), "alice").Return(user, nil)

		resp := postJSON(t, app, "/login", dto.LoginInput{Login: "alice", Password: "wrong"})
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})
}

func TestRefresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	mockTokens := mocks.NewMockTokenGenerator(ctrl)
	userService := service.NewUserService(mockRepo, mockTokens, nil, testConfig())
	authHandler := handler.NewAuthHandler(userService)

	app := fiber.New()
	app.Post("/refresh", authHandler.Refresh)

	t.Run("success rotates the refresh token", func(t *testing.T) {
		refresh := "refresh-old"
		user := &domain.User{ID: 1, Login: "alice", RefreshToken: &refresh}

		mockTokens.EXPECT().VerifyRefreshToken("refresh-old").Return(&service.JWTCustomClaims{UserID: 1, Login: "alice"}, nil)
		mockRepo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(user, nil)
		mockTokens.EXPECT().IssueRefreshToken(int64(1), "alice").Return("refresh-new", nil)
		mockRepo.EXPECT().SwapRefreshToken(gomock.Any(), int64(1), "refresh-old", "refresh-new").Return(true, nil)
		mockTokens.EXPECT().IssueAccessToken(int64(1), "alice").Return("access-2", nil)

		resp := postJSON(t, app, "/refresh", dto.RefreshInput{RefreshToken: "refresh-old"})
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		pair := decodeTokenPair(t, resp)
		assert.Equal(t, "refresh-new", pair.RefreshToken)
	})

	t.Run("invalid token", func(t *testing.T) {
		mockTokens.EXPECT().VerifyRefreshToken("garbage").Return(nil, errors.New("signature is invalid"))

		resp := postJSON(t, app, "/refresh", dto.RefreshInput{RefreshToken: "garbage"})
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})
}

func TestLogout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	mockTokens := mocks.NewMockTokenGenerator(ctrl)
	userService := service.NewUserService(mockRepo, mockTokens, nil, testConfig())
	authHandler := handler.NewAuthHandler(userService)

	app := fiber.New()
	// Stand-in for the request guard: plant verified claims.
	app.Post("/logout", func(c *fiber.Ctx) error {
		c.Locals(constant.UserContextKey, &service.JWTCustomClaims{UserID: 1, Login: "alice"})
		return c.Next()
	}, authHandler.Logout)
	app.Post("/logout-unguarded", authHandler.Logout)

	t.Run("success", func(t *testing.T) {
		mockRepo.EXPECT().UpdateRefreshToken(gomock.Any(), int64(1), gomock.Nil()).Return(nil)

		resp := postJSON(t, app, "/logout", fiber.Map{})
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("no claims", func(t *testing.T) {
		resp := postJSON(t, app, "/logout-unguarded", fiber.Map{})
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})
}
