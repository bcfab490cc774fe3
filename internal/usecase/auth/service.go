package auth

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/gordonblake/moviereviews/domain"
)

// TokenTTL is the validity window of an issued token.
const TokenTTL = time.Hour

// dummyHash is a bcrypt hash of a throwaway value. When the username does not
// match, the password is compared against this instead, so the unknown-username
// and wrong-password paths cost the same and return the same error.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// Claims is the payload of an issued bearer token.
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Service holds the single editor credential and the signing key. It issues
// and verifies bearer tokens; no session state is kept anywhere.
type Service struct {
	credential domain.Credential
	secret     []byte
	ttl        time.Duration
}

var (
	_ domain.AuthUsecase   = (*Service)(nil)
	_ domain.TokenVerifier = (*Service)(nil)
)

func NewService(credential domain.Credential, secret []byte, ttl time.Duration) *Service {
	if ttl == 0 {
		ttl = TokenTTL
	}
	return &Service{
		credential: credential,
		secret:     secret,
		ttl:        ttl,
	}
}

func (s *Service) verify(username, password string) bool {
	hash := s.credential.PasswordHash
	usernameOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.credential.Username)) == 1
	if !usernameOK {
		hash = dummyHash
	}
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return usernameOK && err == nil
}

func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", domain.ErrBadParamInput
	}
	if !s.verify(username, password) {
		return "", domain.ErrInvalidCredentials
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	})
	return token.SignedString(s.secret)
}

func (s *Service) Verify(tokenString string) (domain.Identity, error) {
	if tokenString == "" {
		return domain.Identity{}, domain.ErrNoToken
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid || claims.Username == "" {
		return domain.Identity{}, domain.ErrInvalidToken
	}

	return domain.Identity{Username: claims.Username}, nil
}
