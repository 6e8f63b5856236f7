package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/academically/academically-api/internal/service"
	"github.com/academically/academically-api/pkg/response"
)

// ContextPrincipalKey is the gin context key storing the verified principal.
const ContextPrincipalKey = "currentPrincipal"

// ClientTypeHeader declares which application is calling.
const ClientTypeHeader = "X-Client-Type"

// RequirePrincipal blocks requests that do not carry a verifiable bearer
// token, storing the resulting principal in the context.
func RequirePrincipal(authService *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, err := authService.Me(c.Request.Context(), c.GetHeader("Authorization"), c.GetHeader(ClientTypeHeader))
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}
		c.Set(ContextPrincipalKey, principal)
		c.Next()
	}
}
