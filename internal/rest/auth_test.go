package rest_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/gordonblake/moviereviews/domain"
	"github.com/gordonblake/moviereviews/domain/mocks"
	"github.com/gordonblake/moviereviews/internal/rest"
)

func newAuthRouter(svc domain.AuthUsecase) *gin.Engine {
	h := rest.NewAuthHandler(svc)
	r := gin.New()
	r.POST("/api/login", h.Login)
	return r
}

func TestLoginSuccess(t *testing.T) {
	mockSvc := new(mocks.AuthUsecase)
	mockSvc.On("Login", mock.Anything, "gordonblake", "5h9bXo4sTRrV0U0ewQzk").
		Return("signed.jwt.token", nil).Once()

	w := doJSON(t, newAuthRouter(mockSvc), http.MethodPost, "/api/login", map[string]string{
		"username": "gordonblake",
		"password": "5h9bXo4sTRrV0U0ewQzk",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"token":"signed.jwt.token"}`, w.Body.String())
	mockSvc.AssertExpectations(t)
}

func TestLoginInvalidCredentials(t *testing.T) {
	mockSvc := new(mocks.AuthUsecase)
	mockSvc.On("Login", mock.Anything, "gordonblake", "wrong").
		Return("", domain.ErrInvalidCredentials).Once()

	w := doJSON(t, newAuthRouter(mockSvc), http.MethodPost, "/api/login", map[string]string{
		"username": "gordonblake",
		"password": "wrong",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestLoginMissingFields(t *testing.T) {
	mockSvc := new(mocks.AuthUsecase)

	w := doJSON(t, newAuthRouter(mockSvc), http.MethodPost, "/api/login", map[string]string{
		"username": "gordonblake",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockSvc.AssertNotCalled(t, "Login")
}
