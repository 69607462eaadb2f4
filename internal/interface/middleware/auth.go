package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shoppy/storefront/pkg/helpers"
	"github.com/shoppy/storefront/pkg/response"
)

// CtxUserIDKey is the gin context key the auth gate sets for handlers.
const CtxUserIDKey = "userID"

// AuthHeader carries the bearer token, matching the storefront clients.
const AuthHeader = "auth-token"

// FetchUser gates cart endpoints. It reads the auth-token header, verifies
// it, and injects the resolved user id into the context. It never touches
// storage; the user record is resolved lazily by the cart engine.
func FetchUser(tm *helpers.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(AuthHeader)
		if token == "" {
			response.AbortErr(c, http.StatusUnauthorized, "Please authenticate using a valid token")
			return
		}
		userID, err := tm.Verify(token)
		if err != nil {
			response.AbortErr(c, http.StatusUnauthorized, "Please authenticate using a valid token")
			return
		}
		c.Set(CtxUserIDKey, userID)
		c.Next()
	}
}
