package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gordonblake/moviereviews/domain"
	"github.com/gordonblake/moviereviews/internal/rest/request"
)

// AuthHandler represent the http handler for login
type AuthHandler struct {
	Service domain.AuthUsecase
}

func NewAuthHandler(svc domain.AuthUsecase) *AuthHandler {
	return &AuthHandler{
		Service: svc,
	}
}

// Login exchanges the editor credential for a bearer token. Any mismatch
// yields the same 401, with no hint about which field was wrong.
func (h *AuthHandler) Login(c *gin.Context) {
	var req request.Login
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := h.Service.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		c.JSON(getStatusCode(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
