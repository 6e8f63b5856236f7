package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/academically/academically-api/internal/middleware"
	"github.com/academically/academically-api/internal/models"
	"github.com/academically/academically-api/internal/service"
	appErrors "github.com/academically/academically-api/pkg/errors"
	"github.com/academically/academically-api/pkg/response"
)

// AuthHandler exposes the auth stub endpoints.
type AuthHandler struct {
	service *service.AuthService
}

// NewAuthHandler constructs an auth handler.
func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{service: svc}
}

// ClientInfo godoc
// @Summary Client type table
// @Description Static description of client types and required headers
// @Tags Auth
// @Produce json
// @Success 200 {object} models.ClientInfoResponse
// @Router /auth/client-info [get]
func (h *AuthHandler) ClientInfo(c *gin.Context) {
	response.OK(c, h.service.ClientInfo())
}

// Me godoc
// @Summary Current principal
// @Description Verifies the bearer token and returns the caller's principal
// @Tags Auth
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param X-Client-Type header string true "Client type"
// @Success 200 {object} models.Principal
// @Failure 401 {object} response.ErrorBody
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	if v, exists := c.Get(middleware.ContextPrincipalKey); exists {
		if principal, ok := v.(*models.Principal); ok {
			response.OK(c, principal)
			return
		}
	}
	response.Error(c, appErrors.ErrUnauthorized)
}

// Google godoc
// @Summary Federated sign-in (stub)
// @Tags Auth
// @Produce json
// @Failure 501 {object} response.ErrorBody
// @Router /auth/google [post]
func (h *AuthHandler) Google(c *gin.Context) {
	response.Error(c, h.service.Google(c.Request.Context()))
}

// Validate godoc
// @Summary Token validation (stub)
// @Tags Auth
// @Produce json
// @Failure 501 {object} response.ErrorBody
// @Router /auth/validate [post]
func (h *AuthHandler) Validate(c *gin.Context) {
	response.Error(c, h.service.Validate(c.Request.Context()))
}
