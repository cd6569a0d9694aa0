package service

//go:generate mockgen -destination=../../mocks/mock_token_generator.go -package=mocks github.com/AniTigerSib/BookTrackerBackend/internal/auth/service TokenGenerator

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	autherror "github.com/AniTigerSib/BookTrackerBackend/internal/errors"
)

type TokenGenerator interface {
	IssueAccessToken(userID int64, login string) (string, error)
	IssueRefreshToken(userID int64, login string) (string, error)
	VerifyAccessToken(tokenString string) (*JWTCustomClaims, error)
	VerifyRefreshToken(tokenString string) (*JWTCustomClaims, error)
}

// TokenService signs and verifies HS256 tokens in two independent
// domains: access (short-lived, per-request) and refresh (long-lived,
// only ever exchanged for new access tokens). The secrets differ, so a
// refresh token presented as an access token fails verification.
type TokenService struct {
	AccessTokenSecret  string
	RefreshTokenSecret string
	AccessTokenExpiry  time.Duration
	RefreshTokenExpiry time.Duration
}

type JWTCustomClaims struct {
	jwt.RegisteredClaims
	UserID int64  `json:"user_id"`
	Login  string `json:"login"`
}

func NewTokenService(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *TokenService {
	return &TokenService{
		AccessTokenSecret:  accessSecret,
		RefreshTokenSecret: refreshSecret,
		AccessTokenExpiry:  accessTTL,
		RefreshTokenExpiry: refreshTTL,
	}
}

func (ts *TokenService) IssueAccessToken(userID int64, login string) (string, error) {
	return sign(userID, login, ts.AccessTokenSecret, ts.AccessTokenExpiry)
}

func (ts *TokenService) IssueRefreshToken(userID int64, login string) (string, error) {
	return sign(userID, login, ts.RefreshTokenSecret, ts.RefreshTokenExpiry)
}

func (ts *TokenService) VerifyAccessToken(tokenString string) (*JWTCustomClaims, error) {
	return verify(tokenString, ts.AccessTokenSecret)
}

func (ts *TokenService) VerifyRefreshToken(tokenString string) (*JWTCustomClaims, error) {
	return verify(tokenString, ts.RefreshTokenSecret)
}

func sign(userID int64, login, secret string, ttl time.Duration) (string, error) {
	now := time.Now()

	claims := JWTCustomClaims{
		UserID: userID,
		Login:  login,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// verify is all-or-nothing: any parse or signature problem yields
// ErrTokenInvalid, a good signature past its expiry yields ErrTokenExpired.
func verify(tokenString, secret string) (*JWTCustomClaims, error) {
	claims := &JWTCustomClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, autherror.ErrTokenExpired
		}
		return nil, autherror.ErrTokenInvalid
	}

	if !token.Valid {
		return nil, autherror.ErrTokenInvalid
	}

	return claims, nil
}
