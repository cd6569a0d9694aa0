package service

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/AniTigerSib/BookTrackerBackend/config"
	"github.com/AniTigerSib/BookTrackerBackend/internal/auth/cache"
	"github.com/AniTigerSib/BookTrackerBackend/internal/auth/domain"
	"github.com/AniTigerSib/BookTrackerBackend/internal/auth/dto"
	autherror "github.com/AniTigerSib/BookTrackerBackend/internal/errors"
	"github.com/AniTigerSib/BookTrackerBackend/pkg/constant"
)

// UserService drives the credential lifecycle: registration, login,
// refresh rotation and logout. The invariant throughout is at most one
// valid refresh token per user, enforced by comparing against the single
// stored value.
type UserService struct {
	repo     domain.UserRepository
	tokens   TokenGenerator
	sessions cache.SessionCache
	cacheTTL time.Duration
}

func NewUserService(repo domain.UserRepository, tokens TokenGenerator, sessions cache.SessionCache, cfg *config.Config) *UserService {
	return &UserService{
		repo:     repo,
		tokens:   tokens,
		sessions: sessions,
		cacheTTL: cfg.Auth.AccessTokenTTL,
	}
}

func (s *UserService) Register(ctx context.Context, input dto.RegisterInput) (*dto.TokenPair, error) {
	existing, err := s.repo.GetByLogin(ctx, input.Login)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, autherror.ErrLoginTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), constant.BcryptCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &domain.User{
		Login:        input.Login,
		PasswordHash: string(hashed),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// The repository maps a concurrent duplicate insert to ErrLoginTaken,
	// closing the race the pre-check leaves open.
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	refreshToken, err := s.tokens.IssueRefreshToken(user.ID, user.Login)
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdateRefreshToken(ctx, user.ID, &refreshToken); err != nil {
		return nil, err
	}

	accessToken, err := s.tokens.IssueAccessToken(user.ID, user.Login)
	if err != nil {
		return nil, err
	}

	s.markActive(ctx, user.ID)

	return &dto.TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

func (s *UserService) Login(ctx context.Context, input dto.LoginInput) (*dto.TokenPair, error) {
	user, err := s.repo.GetByLogin(ctx, input.Login)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, autherror.ErrUserNotFound
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)) != nil {
		return nil, autherror.ErrInvalidCredentials
	}

	refreshToken, err := s.currentOrNewRefreshToken(ctx, user)
	if err != nil {
		return nil, err
	}

	accessToken, err := s.tokens.IssueAccessToken(user.ID, user.Login)
	if err != nil {
		return nil, err
	}

	s.markActive(ctx, user.ID)

	return &dto.TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// Refresh exchanges a refresh token for a new token pair. The refresh
// token rotates on every successful call: the new value is installed with
// a compare-and-swap against the presented one, so of two concurrent
// refreshes with the same token at most one wins.
func (s *UserService) Refresh(ctx context.Context, refreshToken string) (*dto.TokenPair, error) {
	claims, err := s.tokens.VerifyRefreshToken(refreshToken)
	if err != nil {
		return nil, autherror.ErrInvalidRefreshToken
	}

	user, err := s.repo.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil || user.RefreshToken == nil || *user.RefreshToken != refreshToken {
		return nil, autherror.ErrInvalidRefreshToken
	}

	newRefreshToken, err := s.tokens.IssueRefreshToken(user.ID, user.Login)
	if err != nil {
		return nil, err
	}

	swapped, err := s.repo.SwapRefreshToken(ctx, user.ID, refreshToken, newRefreshToken)
	if err != nil {
		return nil, err
	}
	if !swapped {
		return nil, autherror.ErrInvalidRefreshToken
	}

	accessToken, err := s.tokens.IssueAccessToken(user.ID, user.Login)
	if err != nil {
		return nil, err
	}

	s.markActive(ctx, user.ID)

	return &dto.TokenPair{AccessToken: accessToken, RefreshToken: newRefreshToken}, nil
}

// Logout clears the stored refresh token. Logging out a user who holds no
// refresh token is a no-op success. The session cache keeps an inactive
// marker for the access-token TTL so outstanding access tokens are
// rejected by the guard instead of living out their expiry.
func (s *UserService) Logout(ctx context.Context, userID int64) error {
	if err := s.repo.UpdateRefreshToken(ctx, userID, nil); err != nil {
		return err
	}

	if s.sessions != nil {
		_ = s.sessions.Set(ctx, userID, false, s.cacheTTL)
	}

	return nil
}

// HasActiveSession reports whether the user still holds a refresh token,
// consulting the cache first and falling through to the store on a miss.
func (s *UserService) HasActiveSession(ctx context.Context, userID int64) (bool, error) {
	if s.sessions != nil {
		active, found, err := s.sessions.Get(ctx, userID)
		if err == nil && found {
			return active, nil
		}
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return false, err
	}

	active := user != nil && user.RefreshToken != nil
	if s.sessions != nil {
		_ = s.sessions.Set(ctx, userID, active, s.cacheTTL)
	}

	return active, nil
}

// currentOrNewRefreshToken keeps the stored refresh token while it still
// verifies, and mints a replacement when it is absent or no longer valid.
// Either way the caller ends up with exactly one usable refresh token.
func (s *UserService) currentOrNewRefreshToken(ctx context.Context, user *domain.User) (string, error) {
	if user.RefreshToken != nil {
		if _, err := s.tokens.VerifyRefreshToken(*user.RefreshToken); err == nil {
			return *user.RefreshToken, nil
		}
	}

	token, err := s.tokens.IssueRefreshToken(user.ID, user.Login)
	if err != nil {
		return "", err
	}

	if err := s.repo.UpdateRefreshToken(ctx, user.ID, &token); err != nil {
		return "", err
	}

	return token, nil
}

// markActive refreshes the liveness marker; cache failures are not worth
// failing a login over, the guard falls back to the store on a miss.
func (s *UserService) markActive(ctx context.Context, userID int64) {
	if s.sessions != nil {
		_ = s.sessions.Set(ctx, userID, true, s.cacheTTL)
	}
}
