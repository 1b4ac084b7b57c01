package services

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"stockroom/internal/domain"
)

var (
	// ErrTokenInvalid is returned for tokens that fail signature, kind or
	// rotation checks.
	ErrTokenInvalid = errors.New("token is invalid")
	// ErrTokenExpired is returned for well-formed tokens past their expiry.
	ErrTokenExpired = errors.New("token has expired")
)

const (
	kindAccess  = "access"
	kindRefresh = "refresh"
	issuer      = "stockroom"
)

// TokenClaims is the payload carried by both token kinds. Kind keeps an
// access token from being replayed as a refresh token and vice versa.
type TokenClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Kind   string `json:"kind"`
	jwt.RegisteredClaims
}

// TokenService signs and verifies HS256 access/refresh token pairs.
type TokenService struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewTokenService(secret string, accessTTL, refreshTTL time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), accessTTL: accessTTL, refreshTTL: refreshTTL}
}

func (s *TokenService) IssueAccess(u *domain.User) (string, error) {
	tok, _, _, err := s.issue(u, kindAccess, s.accessTTL)
	return tok, err
}

// IssueRefresh returns the signed token plus its jti and expiry so the
// caller can record it for rotation.
func (s *TokenService) IssueRefresh(u *domain.User) (string, string, time.Time, error) {
	return s.issue(u, kindRefresh, s.refreshTTL)
}

func (s *TokenService) issue(u *domain.User, kind string, ttl time.Duration) (string, string, time.Time, error) {
	now := time.Now()
	exp := now.Add(ttl)
	jti := uuid.NewString()
	claims := TokenClaims{
		UserID: u.ID,
		Email:  u.Email,
		Kind:   kind,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   u.ID,
			ID:        jti,
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	return signed, jti, exp, err
}

func (s *TokenService) ParseAccess(raw string) (*TokenClaims, error) {
	return s.parse(raw, kindAccess)
}

func (s *TokenService) ParseRefresh(raw string) (*TokenClaims, error) {
	return s.parse(raw, kindRefresh)
}

func (s *TokenService) parse(raw, kind string) (*TokenClaims, error) {
	token, err := jwt.ParseWithClaims(raw, &TokenClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}
	claims, ok := token.Claims.(*TokenClaims)
	if !ok || !token.Valid || claims.Kind != kind {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}

// AccessTTLSeconds is the expires_in value reported alongside new tokens.
func (s *TokenService) AccessTTLSeconds() int64 {
	return int64(s.accessTTL.Seconds())
}
