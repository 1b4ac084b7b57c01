package services

import (
	"errors"
	"time"

	"stockroom/internal/domain"
	"stockroom/internal/repos"

	"golang.org/x/crypto/bcrypt"
)

var ErrBadCreds = errors.New("invalid email or password")

// TokenPair is the response payload for obtain and refresh. Refresh is
// empty when rotation is disabled and the old token stays valid.
type TokenPair struct {
	Access    string
	Refresh   string
	ExpiresIn int64
}

type AuthService struct {
	Users   *repos.UserRepo
	Tokens  *TokenService
	Refresh *repos.RefreshTokenRepo
	Rotate  bool
}

// Login verifies credentials and issues a fresh token pair.
func (s *AuthService) Login(email, password string) (*domain.User, *TokenPair, error) {
	u, err := s.Users.ByEmail(email)
	if err != nil {
		return nil, nil, ErrBadCreds
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Hash), []byte(password)) != nil {
		return nil, nil, ErrBadCreds
	}
	// Housekeeping: drop refresh rows that can never be redeemed again.
	_ = s.Refresh.PurgeExpired(time.Now())
	pair, _, err := s.issuePair(u)
	if err != nil {
		return nil, nil, err
	}
	return u, pair, nil
}

// RefreshTokens redeems a refresh token. With rotation on, the presented
// token is revoked and a full new pair is issued; redeeming it a second
// time fails ErrTokenInvalid. With rotation off only a new access token
// is minted.
func (s *AuthService) RefreshTokens(raw string) (*TokenPair, error) {
	claims, err := s.Tokens.ParseRefresh(raw)
	if err != nil {
		return nil, err
	}
	u, err := s.Users.ByID(claims.UserID)
	if err != nil {
		return nil, ErrTokenInvalid
	}
	if !s.Rotate {
		access, err := s.Tokens.IssueAccess(u)
		if err != nil {
			return nil, err
		}
		return &TokenPair{Access: access, ExpiresIn: s.Tokens.AccessTTLSeconds()}, nil
	}
	// Mint the replacement before revoking the presented token so a
	// failed issuance leaves the caller holding a still-redeemable
	// token. If the old token turns out dead the replacement is
	// discarded before anyone sees it.
	pair, jti, err := s.issuePair(u)
	if err != nil {
		return nil, err
	}
	live, err := s.Refresh.Redeem(claims.ID, time.Now())
	if err == nil && !live {
		err = ErrTokenInvalid
	}
	if err != nil {
		_ = s.Refresh.Discard(jti)
		return nil, err
	}
	return pair, nil
}

// UserFromAccess resolves a presented access token to its caller.
func (s *AuthService) UserFromAccess(raw string) (*domain.User, error) {
	claims, err := s.Tokens.ParseAccess(raw)
	if err != nil {
		return nil, err
	}
	u, err := s.Users.ByID(claims.UserID)
	if err != nil {
		return nil, ErrTokenInvalid
	}
	return u, nil
}

// issuePair mints and stores a fresh pair, returning the refresh jti so
// the caller can discard the stored row if the pair is never handed out.
func (s *AuthService) issuePair(u *domain.User) (*TokenPair, string, error) {
	access, err := s.Tokens.IssueAccess(u)
	if err != nil {
		return nil, "", err
	}
	refresh, jti, exp, err := s.Tokens.IssueRefresh(u)
	if err != nil {
		return nil, "", err
	}
	if err := s.Refresh.Store(jti, u.ID, exp); err != nil {
		return nil, "", err
	}
	return &TokenPair{Access: access, Refresh: refresh, ExpiresIn: s.Tokens.AccessTTLSeconds()}, jti, nil
}
