package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/gordonblake/moviereviews/domain"
)

// AuthUsecase is a mock type for domain.AuthUsecase
type AuthUsecase struct {
	mock.Mock
}

func (m *AuthUsecase) Login(ctx context.Context, username, password string) (string, error) {
	ret := m.Called(ctx, username, password)
	return ret.String(0), ret.Error(1)
}

// TokenVerifier is a mock type for domain.TokenVerifier
type TokenVerifier struct {
	mock.Mock
}

func (m *TokenVerifier) Verify(token string) (domain.Identity, error) {
	ret := m.Called(token)
	return ret.Get(0).(domain.Identity), ret.Error(1)
}
